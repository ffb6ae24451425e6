// Copyright (C) Docstore, Inc. 2018-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package options

// DeleteOptions represents the options for DeleteOne and DeleteMany
// operations.
type DeleteOptions struct {
	// Collation to use for string comparisons. Nil means the collection
	// default.
	Collation *Collation
}

// Delete creates a new DeleteOptions instance.
func Delete() *DeleteOptions {
	return &DeleteOptions{}
}

// SetCollation sets the collation.
func (do *DeleteOptions) SetCollation(c *Collation) *DeleteOptions {
	do.Collation = c
	return do
}

// MergeDeleteOptions combines the given DeleteOptions into a single
// instance, later values overriding earlier ones.
func MergeDeleteOptions(opts ...*DeleteOptions) *DeleteOptions {
	d := Delete()
	for _, do := range opts {
		if do == nil {
			continue
		}
		if do.Collation != nil {
			d.Collation = do.Collation
		}
	}
	return d
}
