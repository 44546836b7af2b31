// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import "golang.org/x/perf/benchproc"

// Config binds benchmark projections to aesthetics.
type Config struct {
	aes aesMap[projection]

	// confidence is the confidence level of the intervals attached to
	// each bar.
	confidence float64
}

func NewConfig() *Config {
	return &Config{confidence: 0.95}
}

// SetIV maps independent variable iv to aesthetic aes. A projection with a
// .unit field also selects which metric the dependent variable reports.
func (c *Config) SetIV(aes Aes, iv *benchproc.Projection) {
	p := projection{iv: iv}
	fields := iv.Fields()
	if len(fields) == 1 && !fields[0].IsTuple {
		p.ivField = fields[0]
	}
	for _, f := range fields {
		if f.Name == ".unit" {
			p.unitField = f
		}
	}
	c.aes.Set(aes, p)
}

// SetDV maps the dependent variable, the metric value, to aesthetic aes.
func (c *Config) SetDV(aes Aes) {
	c.aes.Set(aes, projection{dv: true})
}

// SetConfidence sets the confidence level, in (0, 1), of the interval
// reported for each bar.
func (c *Config) SetConfidence(level float64) {
	c.confidence = level
}
