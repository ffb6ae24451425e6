// Copyright (C) Docstore, Inc. 2018-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package options

// BulkWriteOptions represents the options for a BulkWrite operation.
type BulkWriteOptions struct {
	// BypassDocumentValidation opts the writes out of document-level
	// validation on the server.
	BypassDocumentValidation *bool

	// Ordered stops the batch at the first failing request when true. The
	// default is true.
	Ordered *bool
}

// BulkWrite creates a new BulkWriteOptions instance with ordered execution
// enabled.
func BulkWrite() *BulkWriteOptions {
	return &BulkWriteOptions{Ordered: &DefaultOrdered}
}

// SetBypassDocumentValidation sets the bypassDocumentValidation flag.
func (bwo *BulkWriteOptions) SetBypassDocumentValidation(b bool) *BulkWriteOptions {
	bwo.BypassDocumentValidation = &b
	return bwo
}

// SetOrdered sets the ordered flag.
func (bwo *BulkWriteOptions) SetOrdered(b bool) *BulkWriteOptions {
	bwo.Ordered = &b
	return bwo
}

// MergeBulkWriteOptions combines the given BulkWriteOptions into a single
// instance, later values overriding earlier ones.
func MergeBulkWriteOptions(opts ...*BulkWriteOptions) *BulkWriteOptions {
	b := BulkWrite()
	for _, bwo := range opts {
		if bwo == nil {
			continue
		}
		if bwo.BypassDocumentValidation != nil {
			b.BypassDocumentValidation = bwo.BypassDocumentValidation
		}
		if bwo.Ordered != nil {
			b.Ordered = bwo.Ordered
		}
	}
	return b
}
