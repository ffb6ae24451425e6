// Copyright (C) Docstore, Inc. 2018-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package options

// DefaultOrdered is the default value for the Ordered option of bulk writes.
var DefaultOrdered = true

// InsertOneOptions represents the options for an InsertOne operation.
type InsertOneOptions struct {
	// BypassDocumentValidation opts the write out of document-level
	// validation on the server.
	BypassDocumentValidation *bool
}

// InsertOne creates a new InsertOneOptions instance.
func InsertOne() *InsertOneOptions {
	return &InsertOneOptions{}
}

// SetBypassDocumentValidation sets the bypassDocumentValidation flag.
func (ioo *InsertOneOptions) SetBypassDocumentValidation(b bool) *InsertOneOptions {
	ioo.BypassDocumentValidation = &b
	return ioo
}

// MergeInsertOneOptions combines the given InsertOneOptions into a single
// instance, later values overriding earlier ones.
func MergeInsertOneOptions(opts ...*InsertOneOptions) *InsertOneOptions {
	i := InsertOne()
	for _, ioo := range opts {
		if ioo == nil {
			continue
		}
		if ioo.BypassDocumentValidation != nil {
			i.BypassDocumentValidation = ioo.BypassDocumentValidation
		}
	}
	return i
}

// InsertManyOptions represents the options for an InsertMany operation.
type InsertManyOptions struct {
	// BypassDocumentValidation opts the writes out of document-level
	// validation on the server.
	BypassDocumentValidation *bool

	// Ordered stops the batch at the first failing document when true. The
	// default is true.
	Ordered *bool
}

// InsertMany creates a new InsertManyOptions instance with ordered execution
// enabled.
func InsertMany() *InsertManyOptions {
	return &InsertManyOptions{Ordered: &DefaultOrdered}
}

// SetBypassDocumentValidation sets the bypassDocumentValidation flag.
func (imo *InsertManyOptions) SetBypassDocumentValidation(b bool) *InsertManyOptions {
	imo.BypassDocumentValidation = &b
	return imo
}

// SetOrdered sets the ordered flag.
func (imo *InsertManyOptions) SetOrdered(b bool) *InsertManyOptions {
	imo.Ordered = &b
	return imo
}

// MergeInsertManyOptions combines the given InsertManyOptions into a single
// instance, later values overriding earlier ones.
func MergeInsertManyOptions(opts ...*InsertManyOptions) *InsertManyOptions {
	i := InsertMany()
	for _, imo := range opts {
		if imo == nil {
			continue
		}
		if imo.BypassDocumentValidation != nil {
			i.BypassDocumentValidation = imo.BypassDocumentValidation
		}
		if imo.Ordered != nil {
			i.Ordered = imo.Ordered
		}
	}
	return i
}
