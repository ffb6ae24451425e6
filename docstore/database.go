// Copyright (C) Docstore, Inc. 2018-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package docstore

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsoncodec"
	"go.mongodb.org/mongo-driver/mongo/readconcern"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"

	"github.com/docstore/go-driver/docstore/options"
	"github.com/docstore/go-driver/driver"
	"github.com/docstore/go-driver/event"
)

// Database is a handle for a database. It carries the executor and the
// defaults every collection handle obtained from it inherits.
type Database struct {
	name           string
	executor       driver.Executor
	readConcern    *readconcern.ReadConcern
	writeConcern   *writeconcern.WriteConcern
	readPreference *readpref.ReadPref
	registry       *bsoncodec.Registry
	retryWrites    bool
	monitor        *event.OperationMonitor
}

// NewDatabase returns a handle for the named database whose operations are
// run by executor.
func NewDatabase(name string, executor driver.Executor, opts ...*options.DatabaseOptions) (*Database, error) {
	if executor == nil {
		return nil, ErrNilExecutor
	}
	dbOpt := options.MergeDatabaseOptions(opts...)

	db := &Database{
		name:           name,
		executor:       executor,
		readConcern:    dbOpt.ReadConcern,
		writeConcern:   dbOpt.WriteConcern,
		readPreference: readpref.Primary(),
		registry:       bson.DefaultRegistry,
		monitor:        dbOpt.Monitor,
	}
	if dbOpt.ReadPreference != nil {
		db.readPreference = dbOpt.ReadPreference
	}
	if dbOpt.Registry != nil {
		db.registry = dbOpt.Registry
	}
	if dbOpt.RetryWrites != nil {
		db.retryWrites = *dbOpt.RetryWrites
	}
	return db, nil
}

// Name returns the name of the database.
func (db *Database) Name() string { return db.name }

// Collection returns a handle for the named collection, inheriting the
// database's configuration except where opts overrides it.
func (db *Database) Collection(name string, opts ...*options.CollectionOptions) *Collection {
	return newCollection(db, name, opts...)
}
