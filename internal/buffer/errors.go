// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package buffer

import "fmt"

// A ConfigurationError reports a data set that cannot be turned into geometry.
// The data set is skipped for the frame; other data sets are unaffected.
type ConfigurationError struct {
	// DataSet is the index of the data set, or -1 if unknown.
	DataSet int
	Label   string
	Reason  string
}

func (e *ConfigurationError) Error() string {
	if e.Label != "" {
		return fmt.Sprintf("data set %d (%s): %s", e.DataSet, e.Label, e.Reason)
	}
	return fmt.Sprintf("data set %d: %s", e.DataSet, e.Reason)
}
