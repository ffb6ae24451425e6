// Copyright (C) Docstore, Inc. 2018-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package driver

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/readconcern"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"
)

// Count counts the documents matching Filter.
type Count struct {
	NS          Namespace
	Filter      bson.Raw
	Skip        int64
	Limit       int64
	MaxTime     time.Duration
	Collation   bson.Raw
	Hint        interface{} // index name string or key specification document
	ReadConcern *readconcern.ReadConcern
}

// Name implements Operation.
func (Count) Name() string { return "count" }

// Find returns a cursor over the documents matching Filter.
type Find struct {
	NS                  Namespace
	Filter              bson.Raw
	Sort                bson.Raw
	Projection          bson.Raw
	Skip                int64
	Limit               int64
	BatchSize           int32
	MaxTime             time.Duration
	Collation           bson.Raw
	Hint                interface{}
	AllowPartialResults bool
	NoCursorTimeout     bool
	ReadConcern         *readconcern.ReadConcern
}

// Name implements Operation.
func (Find) Name() string { return "find" }

// Distinct returns the distinct values of FieldName across the documents
// matching Filter.
type Distinct struct {
	NS          Namespace
	FieldName   string
	Filter      bson.Raw
	MaxTime     time.Duration
	Collation   bson.Raw
	ReadConcern *readconcern.ReadConcern
}

// Name implements Operation.
func (Distinct) Name() string { return "distinct" }

// Aggregate runs an aggregation pipeline. WriteConcern is only set when the
// pipeline ends in a stage that writes.
type Aggregate struct {
	NS                       Namespace
	Pipeline                 []bson.Raw
	AllowDiskUse             *bool
	BatchSize                int32
	BypassDocumentValidation *bool
	MaxTime                  time.Duration
	Collation                bson.Raw
	Comment                  string
	Hint                     interface{}
	ReadConcern              *readconcern.ReadConcern
	WriteConcern             *writeconcern.WriteConcern
}

// Name implements Operation.
func (Aggregate) Name() string { return "aggregate" }

// MixedBulkWrite executes an ordered or unordered batch of heterogeneous
// write requests. The batch is all-or-nothing from the caller's perspective:
// continuation past failures is governed entirely by Ordered and handled by
// the executor.
type MixedBulkWrite struct {
	NS                       Namespace
	Requests                 []WriteRequest
	Ordered                  bool
	WriteConcern             *writeconcern.WriteConcern
	RetryWrites              bool
	BypassDocumentValidation *bool
}

// Name implements Operation.
func (MixedBulkWrite) Name() string { return "bulkWrite" }

// FindAndDelete atomically finds one document matching Filter and deletes it.
type FindAndDelete struct {
	NS           Namespace
	Filter       bson.Raw
	Sort         bson.Raw
	Projection   bson.Raw
	MaxTime      time.Duration
	Collation    bson.Raw
	WriteConcern *writeconcern.WriteConcern
	RetryWrites  bool
}

// Name implements Operation.
func (FindAndDelete) Name() string { return "findAndDelete" }

// FindAndReplace atomically finds one document matching Filter and replaces
// it with Replacement.
type FindAndReplace struct {
	NS                       Namespace
	Filter                   bson.Raw
	Replacement              bson.Raw
	Sort                     bson.Raw
	Projection               bson.Raw
	ReturnOriginal           bool
	Upsert                   bool
	MaxTime                  time.Duration
	Collation                bson.Raw
	BypassDocumentValidation *bool
	WriteConcern             *writeconcern.WriteConcern
	RetryWrites              bool
}

// Name implements Operation.
func (FindAndReplace) Name() string { return "findAndReplace" }

// FindAndUpdate atomically finds one document matching Filter and applies
// Update to it.
type FindAndUpdate struct {
	NS                       Namespace
	Filter                   bson.Raw
	Update                   bson.Raw
	Sort                     bson.Raw
	Projection               bson.Raw
	ArrayFilters             []bson.Raw
	ReturnOriginal           bool
	Upsert                   bool
	MaxTime                  time.Duration
	Collation                bson.Raw
	BypassDocumentValidation *bool
	WriteConcern             *writeconcern.WriteConcern
	RetryWrites              bool
}

// Name implements Operation.
func (FindAndUpdate) Name() string { return "findAndUpdate" }

// DropCollection drops the collection identified by NS.
type DropCollection struct {
	NS           Namespace
	WriteConcern *writeconcern.WriteConcern
}

// Name implements Operation.
func (DropCollection) Name() string { return "dropCollection" }

// CreateIndexes creates the given index specification documents. Every
// element of Indexes carries its name; the collection layer assigns names
// before building the operation.
type CreateIndexes struct {
	NS           Namespace
	Indexes      []bson.Raw
	MaxTime      time.Duration
	WriteConcern *writeconcern.WriteConcern
}

// Name implements Operation.
func (CreateIndexes) Name() string { return "createIndexes" }

// DropIndex drops the index identified by Index, which is either the index
// name as a string or its key specification document. The wildcard name "*"
// drops every index.
type DropIndex struct {
	NS           Namespace
	Index        interface{}
	MaxTime      time.Duration
	WriteConcern *writeconcern.WriteConcern
}

// Name implements Operation.
func (DropIndex) Name() string { return "dropIndexes" }

// ListIndexes returns a cursor over the index descriptions of NS.
type ListIndexes struct {
	NS        Namespace
	BatchSize int32
	MaxTime   time.Duration
}

// Name implements Operation.
func (ListIndexes) Name() string { return "listIndexes" }

// RenameCollection renames NS to NewNS.
type RenameCollection struct {
	NS           Namespace
	NewNS        Namespace
	DropTarget   bool
	WriteConcern *writeconcern.WriteConcern
}

// Name implements Operation.
func (RenameCollection) Name() string { return "renameCollection" }

// MapReduce runs the given javascript map and reduce functions over the
// documents matching Filter and returns a cursor over the reduced results.
type MapReduce struct {
	NS             Namespace
	MapFunction    string
	ReduceFunction string
	Filter         bson.Raw
	Sort           bson.Raw
	Limit          int64
	MaxTime        time.Duration
	ReadConcern    *readconcern.ReadConcern
}

// Name implements Operation.
func (MapReduce) Name() string { return "mapReduce" }

// ChangeStream opens a change stream cursor over NS. Resumability is the
// executor's responsibility.
type ChangeStream struct {
	NS           Namespace
	Pipeline     []bson.Raw
	FullDocument string
	ResumeAfter  bson.Raw
	MaxAwaitTime time.Duration
	BatchSize    int32
	Collation    bson.Raw
	ReadConcern  *readconcern.ReadConcern
}

// Name implements Operation.
func (ChangeStream) Name() string { return "changeStream" }
