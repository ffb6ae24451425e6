// Copyright (C) Docstore, Inc. 2018-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

// Package driver contains the contract between the collection API and the
// engine that executes operations against a server. The collection layer
// builds operation values and hands each one to an Executor exactly once;
// everything below that call (wire protocol, connection pooling, server
// selection, cursor batching, retries) belongs to the Executor
// implementation.
package driver

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Executor executes a single operation against a server, optionally within a
// session. It is the only entry point the collection layer uses.
//
// The dynamic type of the returned result depends on the operation:
//
//	MixedBulkWrite                      BulkWriteResult
//	Count                               int64
//	Distinct                            bson.RawValue (the values array)
//	Find, Aggregate, ListIndexes,
//	MapReduce, ChangeStream             BatchCursor
//	FindAndDelete, FindAndReplace,
//	FindAndUpdate                       FindAndModifyResult
//	DropCollection, CreateIndexes,
//	DropIndex, RenameCollection         nil
//
// Read operations receive a read preference; write operations pass nil. A nil
// session means the operation runs outside any session.
type Executor interface {
	Execute(ctx context.Context, op Operation, rp *readpref.ReadPref, sess *Session) (interface{}, error)
}

// Operation is implemented by every operation value understood by an
// Executor.
type Operation interface {
	// Name returns the name of the server command the operation maps to.
	Name() string
}

// Namespace identifies a collection as a database name, collection name
// pair.
type Namespace struct {
	DB         string
	Collection string
}

// NewNamespace returns a Namespace for the given database and collection.
func NewNamespace(db, collection string) Namespace {
	return Namespace{DB: db, Collection: collection}
}

// FullName returns the dot-separated full name of the namespace.
func (ns Namespace) FullName() string {
	return fmt.Sprintf("%s.%s", ns.DB, ns.Collection)
}

func (ns Namespace) String() string { return ns.FullName() }
