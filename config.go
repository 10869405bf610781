// Copyright 2023 The orthtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package orthtree

// OutOfDomainPolicy decides what Insert does with an item whose
// position lies outside the tree's domain.
type OutOfDomainPolicy int

const (
	// Reject makes Insert fail with ErrOutOfDomain.
	Reject OutOfDomainPolicy = iota
	// Clamp stores the item in the leaf nearest to its position. The
	// item keeps its own position, so Contains still reports false for
	// it and queries only find it if their rectangle also overlaps the
	// leaf it was routed to.
	Clamp
)

func (p OutOfDomainPolicy) String() string {
	switch p {
	case Reject:
		return "reject"
	case Clamp:
		return "clamp"
	default:
		return "unknown"
	}
}

// DefaultMaxDepth is the maximum tree depth used when Config.MaxDepth
// is not positive.
const DefaultMaxDepth = 128

// Config holds tree parameters.
type Config struct {
	MaxDepth    int               // deepest allowed leaf, root is depth 0, default 128
	OutOfDomain OutOfDomainPolicy // Reject (default) or Clamp
	Observer    Observer          // notified of insertions, nil for none
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		MaxDepth:    DefaultMaxDepth,
		OutOfDomain: Reject,
	}
}

// OrDefault returns DefaultConfig if c is nil, otherwise a normalized
// copy of c.
func (c *Config) OrDefault() *Config {
	if c == nil {
		return DefaultConfig()
	}
	d := *c
	if d.MaxDepth <= 0 {
		d.MaxDepth = DefaultMaxDepth
	}
	if d.OutOfDomain != Clamp {
		d.OutOfDomain = Reject
	}
	return &d
}
