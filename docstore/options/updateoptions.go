// Copyright (C) Docstore, Inc. 2018-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package options

// UpdateOptions represents the options for UpdateOne and UpdateMany
// operations.
type UpdateOptions struct {
	// ArrayFilters specifies to which array elements an update applies. Nil
	// means the update applies to all elements.
	ArrayFilters []interface{}

	// BypassDocumentValidation opts the write out of document-level
	// validation on the server.
	BypassDocumentValidation *bool

	// Collation to use for string comparisons. Nil means the collection
	// default.
	Collation *Collation

	// Upsert inserts a new document when the filter matches nothing. The
	// default is false.
	Upsert *bool
}

// Update creates a new UpdateOptions instance.
func Update() *UpdateOptions {
	return &UpdateOptions{}
}

// SetArrayFilters sets the array filters.
func (uo *UpdateOptions) SetArrayFilters(af []interface{}) *UpdateOptions {
	uo.ArrayFilters = af
	return uo
}

// SetBypassDocumentValidation sets the bypassDocumentValidation flag.
func (uo *UpdateOptions) SetBypassDocumentValidation(b bool) *UpdateOptions {
	uo.BypassDocumentValidation = &b
	return uo
}

// SetCollation sets the collation.
func (uo *UpdateOptions) SetCollation(c *Collation) *UpdateOptions {
	uo.Collation = c
	return uo
}

// SetUpsert sets the upsert flag.
func (uo *UpdateOptions) SetUpsert(b bool) *UpdateOptions {
	uo.Upsert = &b
	return uo
}

// MergeUpdateOptions combines the given UpdateOptions into a single
// instance, later values overriding earlier ones.
func MergeUpdateOptions(opts ...*UpdateOptions) *UpdateOptions {
	u := Update()
	for _, uo := range opts {
		if uo == nil {
			continue
		}
		if uo.ArrayFilters != nil {
			u.ArrayFilters = uo.ArrayFilters
		}
		if uo.BypassDocumentValidation != nil {
			u.BypassDocumentValidation = uo.BypassDocumentValidation
		}
		if uo.Collation != nil {
			u.Collation = uo.Collation
		}
		if uo.Upsert != nil {
			u.Upsert = uo.Upsert
		}
	}
	return u
}

// ReplaceOptions represents the options for a ReplaceOne operation.
type ReplaceOptions struct {
	// BypassDocumentValidation opts the write out of document-level
	// validation on the server.
	BypassDocumentValidation *bool

	// Collation to use for string comparisons. Nil means the collection
	// default.
	Collation *Collation

	// Upsert inserts a new document when the filter matches nothing. The
	// default is false.
	Upsert *bool
}

// Replace creates a new ReplaceOptions instance.
func Replace() *ReplaceOptions {
	return &ReplaceOptions{}
}

// SetBypassDocumentValidation sets the bypassDocumentValidation flag.
func (ro *ReplaceOptions) SetBypassDocumentValidation(b bool) *ReplaceOptions {
	ro.BypassDocumentValidation = &b
	return ro
}

// SetCollation sets the collation.
func (ro *ReplaceOptions) SetCollation(c *Collation) *ReplaceOptions {
	ro.Collation = c
	return ro
}

// SetUpsert sets the upsert flag.
func (ro *ReplaceOptions) SetUpsert(b bool) *ReplaceOptions {
	ro.Upsert = &b
	return ro
}

// MergeReplaceOptions combines the given ReplaceOptions into a single
// instance, later values overriding earlier ones.
func MergeReplaceOptions(opts ...*ReplaceOptions) *ReplaceOptions {
	r := Replace()
	for _, ro := range opts {
		if ro == nil {
			continue
		}
		if ro.BypassDocumentValidation != nil {
			r.BypassDocumentValidation = ro.BypassDocumentValidation
		}
		if ro.Collation != nil {
			r.Collation = ro.Collation
		}
		if ro.Upsert != nil {
			r.Upsert = ro.Upsert
		}
	}
	return r
}
