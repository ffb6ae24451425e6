// Copyright (C) Docstore, Inc. 2018-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package driver

import "go.mongodb.org/mongo-driver/bson"

// RequestKind discriminates the primitive write request variants carried by a
// MixedBulkWrite batch.
type RequestKind byte

// The closed set of primitive write request kinds.
const (
	KindInsert RequestKind = iota
	KindUpdate
	KindReplace
	KindDelete
)

// String implements fmt.Stringer.
func (k RequestKind) String() string {
	switch k {
	case KindInsert:
		return "insert"
	case KindUpdate:
		return "update"
	case KindReplace:
		return "replace"
	case KindDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// WriteRequest is a single normalized, wire-ready write in a bulk batch. One
// write model translates to exactly one WriteRequest.
type WriteRequest interface {
	Kind() RequestKind
}

// InsertRequest inserts a single document.
type InsertRequest struct {
	Document bson.Raw
}

// Kind implements WriteRequest.
func (InsertRequest) Kind() RequestKind { return KindInsert }

// UpdateRequest modifies documents matching Filter. Type is KindUpdate when
// Update holds an update document and KindReplace when it holds a full
// replacement.
type UpdateRequest struct {
	Filter       bson.Raw
	Update       bson.Raw
	Type         RequestKind
	Multi        bool
	Upsert       bool
	Collation    bson.Raw   // nil when unset
	ArrayFilters []bson.Raw // nil when unset
}

// Kind implements WriteRequest.
func (r UpdateRequest) Kind() RequestKind { return r.Type }

// DeleteRequest removes documents matching Filter.
type DeleteRequest struct {
	Filter    bson.Raw
	Multi     bool
	Collation bson.Raw // nil when unset
}

// Kind implements WriteRequest.
func (DeleteRequest) Kind() RequestKind { return KindDelete }
