// Copyright (C) Docstore, Inc. 2018-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package docstore

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/docstore/go-driver/driver"
)

// ErrNilExecutor is returned when a database handle is created without an
// executor.
var ErrNilExecutor = errors.New("executor must not be nil")

// ErrNilDocument is returned when a nil value is provided where a document is
// required.
var ErrNilDocument = errors.New("document is nil")

// ErrEmptySlice is returned when a nil or empty slice of documents or write
// models is provided to a bulk operation.
var ErrEmptySlice = errors.New("must provide at least one element in input slice")

// ErrNilSession is returned when the context carries a nil session.
var ErrNilSession = errors.New("session is nil")

// ErrNoDocuments is returned by SingleResult when the operation matched no
// documents.
var ErrNoDocuments = errors.New("no documents in result")

// ErrNilCursor is returned when a nil cursor is decoded.
var ErrNilCursor = errors.New("cursor is nil")

// ErrInvalidIndexValue is returned when an index key specification holds a
// value that a name cannot be generated from.
var ErrInvalidIndexValue = errors.New("invalid index value")

// ErrNonStringIndexName is returned when an index name option holds a
// non-string value.
var ErrNonStringIndexName = errors.New("index name must be a string")

// ErrMultipleIndexDrop is returned when DropOne is given the wildcard name
// "*". Dropping every index is only available through DropAll.
var ErrMultipleIndexDrop = errors.New("multiple indexes would be dropped")

// UnsupportedWriteModelError is returned by BulkWrite when the model slice
// contains a type it does not understand.
type UnsupportedWriteModelError struct {
	Model WriteModel
}

func (e UnsupportedWriteModelError) Error() string {
	return fmt.Sprintf("write model of type %T is not supported", e.Model)
}

// WriteError is a per-document failure reported by the server for a single
// write operation.
type WriteError struct {
	Index   int
	Code    int
	Message string
	Details bson.Raw
}

func (we WriteError) Error() string { return we.Message }

// WriteConcernError is returned when a write succeeded at the document level
// but the requested write concern could not be satisfied. Result describes
// what the write did before the concern failed.
type WriteConcernError struct {
	Code    int
	Message string
	Details bson.Raw
	Result  driver.WriteConcernResult
}

func (wce WriteConcernError) Error() string { return wce.Message }

// processWriteException translates the executor's bulk-shaped failure of a
// single-request batch into this package's error types. A write error wins
// over a write concern error; only the first write error is relevant because
// the batch held exactly one request.
func processWriteException(req driver.WriteRequest, err error) error {
	var bwe driver.BulkWriteException
	if !errors.As(err, &bwe) {
		return err
	}
	if len(bwe.WriteErrors) > 0 {
		we := bwe.WriteErrors[0]
		return WriteError{Index: we.Index, Code: we.Code, Message: we.Message, Details: we.Details}
	}
	if bwe.WriteConcernError != nil {
		wce := bwe.WriteConcernError
		return WriteConcernError{
			Code:    wce.Code,
			Message: wce.Message,
			Details: wce.Details,
			Result:  translateWriteConcernResult(req, bwe.Result),
		}
	}
	return err
}

// translateWriteConcernResult reconstructs the document-level outcome of a
// single write request from the partial bulk result that accompanied a write
// concern failure.
func translateWriteConcernResult(req driver.WriteRequest, res driver.BulkWriteResult) driver.WriteConcernResult {
	switch req.Kind() {
	case driver.KindInsert:
		return driver.WriteConcernResult{Count: res.InsertedCount}
	case driver.KindDelete:
		return driver.WriteConcernResult{Count: res.DeletedCount}
	case driver.KindUpdate, driver.KindReplace:
		wcr := driver.WriteConcernResult{
			Count:           res.MatchedCount + int64(len(res.Upserts)),
			UpdatedExisting: res.MatchedCount > 0,
		}
		if len(res.Upserts) > 0 {
			wcr.UpsertedID = res.Upserts[0].ID
		}
		return wcr
	default:
		panic(fmt.Sprintf("unexpected write request kind %v", req.Kind()))
	}
}
