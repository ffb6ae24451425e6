// Copyright (C) Docstore, Inc. 2018-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package options

import "time"

// DistinctOptions represents the options for a Distinct operation.
type DistinctOptions struct {
	// Collation to use for string comparisons. Nil means the collection
	// default.
	Collation *Collation

	// MaxTime is the maximum amount of time the server allows the operation
	// to run.
	MaxTime *time.Duration
}

// Distinct creates a new DistinctOptions instance.
func Distinct() *DistinctOptions {
	return &DistinctOptions{}
}

// SetCollation sets the collation.
func (do *DistinctOptions) SetCollation(c *Collation) *DistinctOptions {
	do.Collation = c
	return do
}

// SetMaxTime sets the max server execution time.
func (do *DistinctOptions) SetMaxTime(d time.Duration) *DistinctOptions {
	do.MaxTime = &d
	return do
}

// MergeDistinctOptions combines the given DistinctOptions into a single
// instance, later values overriding earlier ones.
func MergeDistinctOptions(opts ...*DistinctOptions) *DistinctOptions {
	d := Distinct()
	for _, do := range opts {
		if do == nil {
			continue
		}
		if do.Collation != nil {
			d.Collation = do.Collation
		}
		if do.MaxTime != nil {
			d.MaxTime = do.MaxTime
		}
	}
	return d
}
