// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"fmt"
	"strings"
	"sync"
)

// Aes is a visual property of a bar that benchmark data can be mapped to.
type Aes int

const (
	AesX     Aes = iota // Category slot along the X axis
	AesY                // Bar height
	AesColor            // Bars side by side within a slot
	AesStack            // Segments stacked within a bar
	AesPage             // Separate charts

	aesMax

	aesNone = Aes(-1)
)

// Name returns the flag name of aesthetic a, such as "x".
func (a Aes) Name() string {
	switch a {
	case AesX:
		return "x"
	case AesY:
		return "y"
	case AesColor:
		return "color"
	case AesStack:
		return "stack"
	case AesPage:
		return "page"
	}
	return fmt.Sprintf("Aes(%d)", a)
}

var aesByName = sync.OnceValue(func() map[string]Aes {
	m := make(map[string]Aes, aesMax)
	for a := range aesMax {
		m[a.Name()] = a
	}
	return m
})

// AesFromName is the inverse of [Aes.Name].
func AesFromName(name string) (Aes, bool) {
	a, ok := aesByName()[name]
	return a, ok
}

// aesMap holds one T per aesthetic. It is a value type; assignment copies it.
type aesMap[T any] struct {
	vals [aesMax]T
}

func (m *aesMap[T]) Set(a Aes, v T) { m.vals[a] = v }
func (m *aesMap[T]) Get(a Aes) T    { return m.vals[a] }

func (m *aesMap[T]) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for a := range aesMax {
		if a > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s:%v", a.Name(), m.Get(a))
	}
	b.WriteByte('}')
	return b.String()
}
