// Copyright (C) Docstore, Inc. 2018-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package driver

import "go.mongodb.org/mongo-driver/bson"

// Upsert is a single upserted-id entry in a bulk write result.
type Upsert struct {
	// Index is the position in the request batch of the update or replace
	// that caused the upsert.
	Index int64
	ID    interface{}
}

// BulkWriteResult is the result of a MixedBulkWrite operation.
//
// ModifiedCount is only meaningful when ModifiedCountAvailable is true; a
// false flag means the count is unknown, which is distinct from zero.
type BulkWriteResult struct {
	Acknowledged           bool
	InsertedCount          int64
	MatchedCount           int64
	ModifiedCount          int64
	ModifiedCountAvailable bool
	DeletedCount           int64
	Upserts                []Upsert
}

// WriteConcernResult describes the document-level outcome of the writes that
// preceded a write concern failure. It is reconstructed from the partial
// BulkWriteResult, never by re-querying the server.
type WriteConcernResult struct {
	// Count is the number of documents inserted, deleted, or matched
	// (including upserts), depending on the request kind.
	Count int64
	// UpdatedExisting is true when an update or replace matched at least one
	// existing document.
	UpdatedExisting bool
	// UpsertedID is the id of the first upserted document, if any.
	UpsertedID interface{}
}

// FindAndModifyResult is the result of the FindAndDelete, FindAndReplace and
// FindAndUpdate operations. A nil Value means no document matched.
type FindAndModifyResult struct {
	Value             bson.Raw
	WriteConcernError *WriteConcernError
}
