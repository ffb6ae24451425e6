// Copyright (C) Docstore, Inc. 2018-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package docstore

import "github.com/docstore/go-driver/driver"

// InsertOneResult is the result of an InsertOne operation.
type InsertOneResult struct {
	// InsertedID is the _id of the inserted document, either taken from the
	// document or generated by the driver.
	InsertedID interface{}
}

// InsertManyResult is the result of an InsertMany operation.
type InsertManyResult struct {
	// InsertedIDs are the _id values of the inserted documents, in input
	// order.
	InsertedIDs []interface{}
}

// DeleteResult is the result of a DeleteOne or DeleteMany operation. The
// count accessor panics for unacknowledged writes, which carry no counts;
// check Acknowledged first when the collection's write concern may be
// unacknowledged.
type DeleteResult struct {
	acknowledged bool
	deletedCount int64
}

func newDeleteResult(res driver.BulkWriteResult) *DeleteResult {
	if !res.Acknowledged {
		return &DeleteResult{}
	}
	return &DeleteResult{acknowledged: true, deletedCount: res.DeletedCount}
}

// Acknowledged reports whether the write was acknowledged by the server.
func (dr *DeleteResult) Acknowledged() bool { return dr.acknowledged }

// DeletedCount returns the number of documents deleted. It panics if the
// write was unacknowledged.
func (dr *DeleteResult) DeletedCount() int64 {
	dr.mustBeAcknowledged()
	return dr.deletedCount
}

func (dr *DeleteResult) mustBeAcknowledged() {
	if !dr.acknowledged {
		panic("cannot read counts from the result of an unacknowledged write")
	}
}

// UpdateResult is the result of an UpdateOne, UpdateMany or ReplaceOne
// operation. The count accessors panic for unacknowledged writes.
type UpdateResult struct {
	acknowledged      bool
	matchedCount      int64
	modifiedCount     int64
	modifiedAvailable bool
	upsertedID        interface{}
}

func newUpdateResult(res driver.BulkWriteResult) *UpdateResult {
	if !res.Acknowledged {
		return &UpdateResult{}
	}
	ur := &UpdateResult{
		acknowledged:      true,
		matchedCount:      res.MatchedCount,
		modifiedCount:     res.ModifiedCount,
		modifiedAvailable: res.ModifiedCountAvailable,
	}
	if len(res.Upserts) > 0 {
		ur.upsertedID = res.Upserts[0].ID
	}
	return ur
}

// Acknowledged reports whether the write was acknowledged by the server.
func (ur *UpdateResult) Acknowledged() bool { return ur.acknowledged }

// MatchedCount returns the number of documents matched by the filter. An
// upserted document is not counted as matched. It panics if the write was
// unacknowledged.
func (ur *UpdateResult) MatchedCount() int64 {
	ur.mustBeAcknowledged()
	return ur.matchedCount
}

// ModifiedCount returns the number of documents actually modified and whether
// that number is known. A false second return means the count is unavailable,
// which is distinct from zero. It panics if the write was unacknowledged.
func (ur *UpdateResult) ModifiedCount() (int64, bool) {
	ur.mustBeAcknowledged()
	return ur.modifiedCount, ur.modifiedAvailable
}

// UpsertedID returns the _id of the upserted document, or nil when no upsert
// took place. It panics if the write was unacknowledged.
func (ur *UpdateResult) UpsertedID() interface{} {
	ur.mustBeAcknowledged()
	return ur.upsertedID
}

func (ur *UpdateResult) mustBeAcknowledged() {
	if !ur.acknowledged {
		panic("cannot read counts from the result of an unacknowledged write")
	}
}

// BulkWriteResult is the result of a BulkWrite operation. The count accessors
// panic for unacknowledged writes.
type BulkWriteResult struct {
	acknowledged      bool
	insertedCount     int64
	matchedCount      int64
	modifiedCount     int64
	modifiedAvailable bool
	deletedCount      int64
	upsertedIDs       map[int64]interface{}
	insertedIDs       map[int64]interface{}
}

func newBulkWriteResult(res driver.BulkWriteResult, insertedIDs map[int64]interface{}) *BulkWriteResult {
	if !res.Acknowledged {
		return &BulkWriteResult{}
	}
	upserted := make(map[int64]interface{}, len(res.Upserts))
	for _, u := range res.Upserts {
		upserted[u.Index] = u.ID
	}
	return &BulkWriteResult{
		acknowledged:      true,
		insertedCount:     res.InsertedCount,
		matchedCount:      res.MatchedCount,
		modifiedCount:     res.ModifiedCount,
		modifiedAvailable: res.ModifiedCountAvailable,
		deletedCount:      res.DeletedCount,
		upsertedIDs:       upserted,
		insertedIDs:       insertedIDs,
	}
}

// Acknowledged reports whether the writes were acknowledged by the server.
func (bwr *BulkWriteResult) Acknowledged() bool { return bwr.acknowledged }

// InsertedCount returns the number of documents inserted. It panics if the
// writes were unacknowledged.
func (bwr *BulkWriteResult) InsertedCount() int64 {
	bwr.mustBeAcknowledged()
	return bwr.insertedCount
}

// MatchedCount returns the number of documents matched across the update and
// replace models. An upserted document is not counted as matched. It panics
// if the writes were unacknowledged.
func (bwr *BulkWriteResult) MatchedCount() int64 {
	bwr.mustBeAcknowledged()
	return bwr.matchedCount
}

// ModifiedCount returns the number of documents actually modified and whether
// that number is known. It panics if the writes were unacknowledged.
func (bwr *BulkWriteResult) ModifiedCount() (int64, bool) {
	bwr.mustBeAcknowledged()
	return bwr.modifiedCount, bwr.modifiedAvailable
}

// DeletedCount returns the number of documents deleted. It panics if the
// writes were unacknowledged.
func (bwr *BulkWriteResult) DeletedCount() int64 {
	bwr.mustBeAcknowledged()
	return bwr.deletedCount
}

// UpsertedIDs returns the upserted _id values keyed by model index. It panics
// if the writes were unacknowledged.
func (bwr *BulkWriteResult) UpsertedIDs() map[int64]interface{} {
	bwr.mustBeAcknowledged()
	return bwr.upsertedIDs
}

// InsertedIDs returns the _id values of the InsertOneModel entries keyed by
// model index. It panics if the writes were unacknowledged.
func (bwr *BulkWriteResult) InsertedIDs() map[int64]interface{} {
	bwr.mustBeAcknowledged()
	return bwr.insertedIDs
}

func (bwr *BulkWriteResult) mustBeAcknowledged() {
	if !bwr.acknowledged {
		panic("cannot read counts from the result of an unacknowledged write")
	}
}
