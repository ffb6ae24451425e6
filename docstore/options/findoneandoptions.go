// Copyright (C) Docstore, Inc. 2018-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package options

import "time"

// FindOneAndDeleteOptions represents the options for a FindOneAndDelete
// operation.
type FindOneAndDeleteOptions struct {
	// Collation to use for string comparisons. Nil means the collection
	// default.
	Collation *Collation

	// MaxTime is the maximum amount of time the server allows the operation
	// to run.
	MaxTime *time.Duration

	// Projection limits the fields returned. Nil means all fields.
	Projection interface{}

	// Sort determines which matching document is modified.
	Sort interface{}
}

// FindOneAndDelete creates a new FindOneAndDeleteOptions instance.
func FindOneAndDelete() *FindOneAndDeleteOptions {
	return &FindOneAndDeleteOptions{}
}

// SetCollation sets the collation.
func (fo *FindOneAndDeleteOptions) SetCollation(c *Collation) *FindOneAndDeleteOptions {
	fo.Collation = c
	return fo
}

// SetMaxTime sets the max server execution time.
func (fo *FindOneAndDeleteOptions) SetMaxTime(d time.Duration) *FindOneAndDeleteOptions {
	fo.MaxTime = &d
	return fo
}

// SetProjection sets the projection.
func (fo *FindOneAndDeleteOptions) SetProjection(p interface{}) *FindOneAndDeleteOptions {
	fo.Projection = p
	return fo
}

// SetSort sets the sort order.
func (fo *FindOneAndDeleteOptions) SetSort(s interface{}) *FindOneAndDeleteOptions {
	fo.Sort = s
	return fo
}

// MergeFindOneAndDeleteOptions combines the given FindOneAndDeleteOptions
// into a single instance, later values overriding earlier ones.
func MergeFindOneAndDeleteOptions(opts ...*FindOneAndDeleteOptions) *FindOneAndDeleteOptions {
	f := FindOneAndDelete()
	for _, fo := range opts {
		if fo == nil {
			continue
		}
		if fo.Collation != nil {
			f.Collation = fo.Collation
		}
		if fo.MaxTime != nil {
			f.MaxTime = fo.MaxTime
		}
		if fo.Projection != nil {
			f.Projection = fo.Projection
		}
		if fo.Sort != nil {
			f.Sort = fo.Sort
		}
	}
	return f
}

// FindOneAndReplaceOptions represents the options for a FindOneAndReplace
// operation.
type FindOneAndReplaceOptions struct {
	// BypassDocumentValidation opts the write out of document-level
	// validation on the server.
	BypassDocumentValidation *bool

	// Collation to use for string comparisons. Nil means the collection
	// default.
	Collation *Collation

	// MaxTime is the maximum amount of time the server allows the operation
	// to run.
	MaxTime *time.Duration

	// Projection limits the fields returned. Nil means all fields.
	Projection interface{}

	// ReturnDocument selects the pre- or post-replacement document. The
	// default is Before.
	ReturnDocument *ReturnDocument

	// Sort determines which matching document is replaced.
	Sort interface{}

	// Upsert inserts the replacement when the filter matches nothing. The
	// default is false.
	Upsert *bool
}

// FindOneAndReplace creates a new FindOneAndReplaceOptions instance.
func FindOneAndReplace() *FindOneAndReplaceOptions {
	return &FindOneAndReplaceOptions{}
}

// SetBypassDocumentValidation sets the bypassDocumentValidation flag.
func (fo *FindOneAndReplaceOptions) SetBypassDocumentValidation(b bool) *FindOneAndReplaceOptions {
	fo.BypassDocumentValidation = &b
	return fo
}

// SetCollation sets the collation.
func (fo *FindOneAndReplaceOptions) SetCollation(c *Collation) *FindOneAndReplaceOptions {
	fo.Collation = c
	return fo
}

// SetMaxTime sets the max server execution time.
func (fo *FindOneAndReplaceOptions) SetMaxTime(d time.Duration) *FindOneAndReplaceOptions {
	fo.MaxTime = &d
	return fo
}

// SetProjection sets the projection.
func (fo *FindOneAndReplaceOptions) SetProjection(p interface{}) *FindOneAndReplaceOptions {
	fo.Projection = p
	return fo
}

// SetReturnDocument sets which document version is returned.
func (fo *FindOneAndReplaceOptions) SetReturnDocument(rd ReturnDocument) *FindOneAndReplaceOptions {
	fo.ReturnDocument = &rd
	return fo
}

// SetSort sets the sort order.
func (fo *FindOneAndReplaceOptions) SetSort(s interface{}) *FindOneAndReplaceOptions {
	fo.Sort = s
	return fo
}

// SetUpsert sets the upsert flag.
func (fo *FindOneAndReplaceOptions) SetUpsert(b bool) *FindOneAndReplaceOptions {
	fo.Upsert = &b
	return fo
}

// MergeFindOneAndReplaceOptions combines the given FindOneAndReplaceOptions
// into a single instance, later values overriding earlier ones.
func MergeFindOneAndReplaceOptions(opts ...*FindOneAndReplaceOptions) *FindOneAndReplaceOptions {
	f := FindOneAndReplace()
	for _, fo := range opts {
		if fo == nil {
			continue
		}
		if fo.BypassDocumentValidation != nil {
			f.BypassDocumentValidation = fo.BypassDocumentValidation
		}
		if fo.Collation != nil {
			f.Collation = fo.Collation
		}
		if fo.MaxTime != nil {
			f.MaxTime = fo.MaxTime
		}
		if fo.Projection != nil {
			f.Projection = fo.Projection
		}
		if fo.ReturnDocument != nil {
			f.ReturnDocument = fo.ReturnDocument
		}
		if fo.Sort != nil {
			f.Sort = fo.Sort
		}
		if fo.Upsert != nil {
			f.Upsert = fo.Upsert
		}
	}
	return f
}

// FindOneAndUpdateOptions represents the options for a FindOneAndUpdate
// operation.
type FindOneAndUpdateOptions struct {
	// ArrayFilters specifies to which array elements the update applies.
	ArrayFilters []interface{}

	// BypassDocumentValidation opts the write out of document-level
	// validation on the server.
	BypassDocumentValidation *bool

	// Collation to use for string comparisons. Nil means the collection
	// default.
	Collation *Collation

	// MaxTime is the maximum amount of time the server allows the operation
	// to run.
	MaxTime *time.Duration

	// Projection limits the fields returned. Nil means all fields.
	Projection interface{}

	// ReturnDocument selects the pre- or post-update document. The default
	// is Before.
	ReturnDocument *ReturnDocument

	// Sort determines which matching document is updated.
	Sort interface{}

	// Upsert inserts a new document when the filter matches nothing. The
	// default is false.
	Upsert *bool
}

// FindOneAndUpdate creates a new FindOneAndUpdateOptions instance.
func FindOneAndUpdate() *FindOneAndUpdateOptions {
	return &FindOneAndUpdateOptions{}
}

// SetArrayFilters sets the array filters.
func (fo *FindOneAndUpdateOptions) SetArrayFilters(af []interface{}) *FindOneAndUpdateOptions {
	fo.ArrayFilters = af
	return fo
}

// SetBypassDocumentValidation sets the bypassDocumentValidation flag.
func (fo *FindOneAndUpdateOptions) SetBypassDocumentValidation(b bool) *FindOneAndUpdateOptions {
	fo.BypassDocumentValidation = &b
	return fo
}

// SetCollation sets the collation.
func (fo *FindOneAndUpdateOptions) SetCollation(c *Collation) *FindOneAndUpdateOptions {
	fo.Collation = c
	return fo
}

// SetMaxTime sets the max server execution time.
func (fo *FindOneAndUpdateOptions) SetMaxTime(d time.Duration) *FindOneAndUpdateOptions {
	fo.MaxTime = &d
	return fo
}

// SetProjection sets the projection.
func (fo *FindOneAndUpdateOptions) SetProjection(p interface{}) *FindOneAndUpdateOptions {
	fo.Projection = p
	return fo
}

// SetReturnDocument sets which document version is returned.
func (fo *FindOneAndUpdateOptions) SetReturnDocument(rd ReturnDocument) *FindOneAndUpdateOptions {
	fo.ReturnDocument = &rd
	return fo
}

// SetSort sets the sort order.
func (fo *FindOneAndUpdateOptions) SetSort(s interface{}) *FindOneAndUpdateOptions {
	fo.Sort = s
	return fo
}

// SetUpsert sets the upsert flag.
func (fo *FindOneAndUpdateOptions) SetUpsert(b bool) *FindOneAndUpdateOptions {
	fo.Upsert = &b
	return fo
}

// MergeFindOneAndUpdateOptions combines the given FindOneAndUpdateOptions
// into a single instance, later values overriding earlier ones.
func MergeFindOneAndUpdateOptions(opts ...*FindOneAndUpdateOptions) *FindOneAndUpdateOptions {
	f := FindOneAndUpdate()
	for _, fo := range opts {
		if fo == nil {
			continue
		}
		if fo.ArrayFilters != nil {
			f.ArrayFilters = fo.ArrayFilters
		}
		if fo.BypassDocumentValidation != nil {
			f.BypassDocumentValidation = fo.BypassDocumentValidation
		}
		if fo.Collation != nil {
			f.Collation = fo.Collation
		}
		if fo.MaxTime != nil {
			f.MaxTime = fo.MaxTime
		}
		if fo.Projection != nil {
			f.Projection = fo.Projection
		}
		if fo.ReturnDocument != nil {
			f.ReturnDocument = fo.ReturnDocument
		}
		if fo.Sort != nil {
			f.Sort = fo.Sort
		}
		if fo.Upsert != nil {
			f.Upsert = fo.Upsert
		}
	}
	return f
}
