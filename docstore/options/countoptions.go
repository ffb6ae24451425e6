// Copyright (C) Docstore, Inc. 2018-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package options

import "time"

// CountOptions represents the options for a Count operation.
type CountOptions struct {
	// Collation to use for string comparisons. Nil means the collection
	// default.
	Collation *Collation

	// Hint is the index to use, as its name or its key specification
	// document.
	Hint interface{}

	// Limit is the maximum number of documents to count.
	Limit *int64

	// MaxTime is the maximum amount of time the server allows the operation
	// to run.
	MaxTime *time.Duration

	// Skip is the number of matching documents to skip before counting.
	Skip *int64
}

// Count creates a new CountOptions instance.
func Count() *CountOptions {
	return &CountOptions{}
}

// SetCollation sets the collation.
func (co *CountOptions) SetCollation(c *Collation) *CountOptions {
	co.Collation = c
	return co
}

// SetHint sets the index hint.
func (co *CountOptions) SetHint(h interface{}) *CountOptions {
	co.Hint = h
	return co
}

// SetLimit sets the limit.
func (co *CountOptions) SetLimit(i int64) *CountOptions {
	co.Limit = &i
	return co
}

// SetMaxTime sets the max server execution time.
func (co *CountOptions) SetMaxTime(d time.Duration) *CountOptions {
	co.MaxTime = &d
	return co
}

// SetSkip sets the skip.
func (co *CountOptions) SetSkip(i int64) *CountOptions {
	co.Skip = &i
	return co
}

// MergeCountOptions combines the given CountOptions into a single instance,
// later values overriding earlier ones.
func MergeCountOptions(opts ...*CountOptions) *CountOptions {
	c := Count()
	for _, co := range opts {
		if co == nil {
			continue
		}
		if co.Collation != nil {
			c.Collation = co.Collation
		}
		if co.Hint != nil {
			c.Hint = co.Hint
		}
		if co.Limit != nil {
			c.Limit = co.Limit
		}
		if co.MaxTime != nil {
			c.MaxTime = co.MaxTime
		}
		if co.Skip != nil {
			c.Skip = co.Skip
		}
	}
	return c
}
