// Copyright (C) Docstore, Inc. 2018-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

// Package drivertest provides in-memory implementations of the driver
// contracts for use in tests.
package drivertest

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/x/bsonx/bsoncore"

	"github.com/docstore/go-driver/driver"
)

// Call records a single Execute invocation.
type Call struct {
	Operation driver.Operation
	ReadPref  *readpref.ReadPref
	Session   *driver.Session
}

type response struct {
	result interface{}
	err    error
}

// Executor is a scriptable driver.Executor. Responses queued with Queue are
// played back in order; once the queue is exhausted, Execute returns a benign
// zero result for the operation type. Every invocation is recorded.
type Executor struct {
	mu        sync.Mutex
	calls     []Call
	responses []response
}

var _ driver.Executor = (*Executor)(nil)

// Queue appends a scripted response.
func (e *Executor) Queue(result interface{}, err error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.responses = append(e.responses, response{result: result, err: err})
}

// Execute implements driver.Executor.
func (e *Executor) Execute(_ context.Context, op driver.Operation, rp *readpref.ReadPref, sess *driver.Session) (interface{}, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.calls = append(e.calls, Call{Operation: op, ReadPref: rp, Session: sess})

	if len(e.responses) > 0 {
		resp := e.responses[0]
		e.responses = e.responses[1:]
		return resp.result, resp.err
	}
	return defaultResult(op), nil
}

// Calls returns a copy of the recorded invocations.
func (e *Executor) Calls() []Call {
	e.mu.Lock()
	defer e.mu.Unlock()
	calls := make([]Call, len(e.calls))
	copy(calls, e.calls)
	return calls
}

func defaultResult(op driver.Operation) interface{} {
	switch op.(type) {
	case driver.MixedBulkWrite:
		return driver.BulkWriteResult{Acknowledged: true}
	case driver.Count:
		return int64(0)
	case driver.Distinct:
		idx, arr := bsoncore.AppendArrayStart(nil)
		arr, _ = bsoncore.AppendArrayEnd(arr, idx)
		return bson.RawValue{Type: bsontype.Array, Value: arr}
	case driver.Find, driver.Aggregate, driver.ListIndexes, driver.MapReduce, driver.ChangeStream:
		return driver.NewEmptyBatchCursor()
	case driver.FindAndDelete, driver.FindAndReplace, driver.FindAndUpdate:
		return driver.FindAndModifyResult{}
	default:
		return nil
	}
}
