// Copyright (C) Docstore, Inc. 2018-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package options

import (
	"go.mongodb.org/mongo-driver/bson/bsoncodec"
	"go.mongodb.org/mongo-driver/mongo/readconcern"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"

	"github.com/docstore/go-driver/event"
)

// CollectionOptions represents the options for obtaining a collection handle.
type CollectionOptions struct {
	// ReadConcern for operations on the collection. Nil inherits the
	// database's read concern.
	ReadConcern *readconcern.ReadConcern

	// WriteConcern for operations on the collection. Nil inherits the
	// database's write concern.
	WriteConcern *writeconcern.WriteConcern

	// ReadPreference for operations on the collection. Nil inherits the
	// database's read preference.
	ReadPreference *readpref.ReadPref

	// Registry used to encode and decode user documents. Nil inherits the
	// database's registry.
	Registry *bsoncodec.Registry
}

// Collection creates a new CollectionOptions instance.
func Collection() *CollectionOptions {
	return &CollectionOptions{}
}

// SetReadConcern sets the read concern.
func (co *CollectionOptions) SetReadConcern(rc *readconcern.ReadConcern) *CollectionOptions {
	co.ReadConcern = rc
	return co
}

// SetWriteConcern sets the write concern.
func (co *CollectionOptions) SetWriteConcern(wc *writeconcern.WriteConcern) *CollectionOptions {
	co.WriteConcern = wc
	return co
}

// SetReadPreference sets the read preference.
func (co *CollectionOptions) SetReadPreference(rp *readpref.ReadPref) *CollectionOptions {
	co.ReadPreference = rp
	return co
}

// SetRegistry sets the codec registry.
func (co *CollectionOptions) SetRegistry(r *bsoncodec.Registry) *CollectionOptions {
	co.Registry = r
	return co
}

// MergeCollectionOptions combines the given CollectionOptions into a single
// instance, later values overriding earlier ones.
func MergeCollectionOptions(opts ...*CollectionOptions) *CollectionOptions {
	c := Collection()
	for _, co := range opts {
		if co == nil {
			continue
		}
		if co.ReadConcern != nil {
			c.ReadConcern = co.ReadConcern
		}
		if co.WriteConcern != nil {
			c.WriteConcern = co.WriteConcern
		}
		if co.ReadPreference != nil {
			c.ReadPreference = co.ReadPreference
		}
		if co.Registry != nil {
			c.Registry = co.Registry
		}
	}
	return c
}

// DatabaseOptions represents the options for obtaining a database handle.
type DatabaseOptions struct {
	// ReadConcern for operations on the database and its collections.
	ReadConcern *readconcern.ReadConcern

	// WriteConcern for operations on the database and its collections.
	WriteConcern *writeconcern.WriteConcern

	// ReadPreference for operations on the database and its collections.
	ReadPreference *readpref.ReadPref

	// Registry used to encode and decode user documents.
	Registry *bsoncodec.Registry

	// RetryWrites enables one retry of transient write failures. The default
	// is false.
	RetryWrites *bool

	// Monitor receives an event for every executed operation.
	Monitor *event.OperationMonitor
}

// Database creates a new DatabaseOptions instance.
func Database() *DatabaseOptions {
	return &DatabaseOptions{}
}

// SetReadConcern sets the read concern.
func (do *DatabaseOptions) SetReadConcern(rc *readconcern.ReadConcern) *DatabaseOptions {
	do.ReadConcern = rc
	return do
}

// SetWriteConcern sets the write concern.
func (do *DatabaseOptions) SetWriteConcern(wc *writeconcern.WriteConcern) *DatabaseOptions {
	do.WriteConcern = wc
	return do
}

// SetReadPreference sets the read preference.
func (do *DatabaseOptions) SetReadPreference(rp *readpref.ReadPref) *DatabaseOptions {
	do.ReadPreference = rp
	return do
}

// SetRegistry sets the codec registry.
func (do *DatabaseOptions) SetRegistry(r *bsoncodec.Registry) *DatabaseOptions {
	do.Registry = r
	return do
}

// SetRetryWrites sets the retryWrites flag.
func (do *DatabaseOptions) SetRetryWrites(b bool) *DatabaseOptions {
	do.RetryWrites = &b
	return do
}

// SetMonitor sets the operation monitor.
func (do *DatabaseOptions) SetMonitor(m *event.OperationMonitor) *DatabaseOptions {
	do.Monitor = m
	return do
}

// MergeDatabaseOptions combines the given DatabaseOptions into a single
// instance, later values overriding earlier ones.
func MergeDatabaseOptions(opts ...*DatabaseOptions) *DatabaseOptions {
	d := Database()
	for _, do := range opts {
		if do == nil {
			continue
		}
		if do.ReadConcern != nil {
			d.ReadConcern = do.ReadConcern
		}
		if do.WriteConcern != nil {
			d.WriteConcern = do.WriteConcern
		}
		if do.ReadPreference != nil {
			d.ReadPreference = do.ReadPreference
		}
		if do.Registry != nil {
			d.Registry = do.Registry
		}
		if do.RetryWrites != nil {
			d.RetryWrites = do.RetryWrites
		}
		if do.Monitor != nil {
			d.Monitor = do.Monitor
		}
	}
	return d
}
