// Copyright (C) Docstore, Inc. 2018-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package drivertest

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/docstore/go-driver/driver"
)

// BatchCursor is a driver.BatchCursor that serves pre-built batches of
// documents from memory.
type BatchCursor struct {
	id      int64
	batches [][]bson.Raw
	current []bson.Raw
	err     error
	closed  bool
}

var _ driver.BatchCursor = (*BatchCursor)(nil)

// NewBatchCursor returns a cursor that yields the given batches in order.
func NewBatchCursor(id int64, batches ...[]bson.Raw) *BatchCursor {
	return &BatchCursor{id: id, batches: batches}
}

// SetError makes the cursor report err after its batches are exhausted.
func (bc *BatchCursor) SetError(err error) { bc.err = err }

// ID implements driver.BatchCursor.
func (bc *BatchCursor) ID() int64 {
	if len(bc.batches) == 0 {
		return 0
	}
	return bc.id
}

// Next implements driver.BatchCursor.
func (bc *BatchCursor) Next(context.Context) bool {
	if bc.closed || len(bc.batches) == 0 {
		return false
	}
	bc.current = bc.batches[0]
	bc.batches = bc.batches[1:]
	return true
}

// Batch implements driver.BatchCursor.
func (bc *BatchCursor) Batch(dst []byte) []byte {
	for _, doc := range bc.current {
		dst = append(dst, doc...)
	}
	return dst
}

// Err implements driver.BatchCursor.
func (bc *BatchCursor) Err() error {
	if len(bc.batches) == 0 {
		return bc.err
	}
	return nil
}

// Close implements driver.BatchCursor.
func (bc *BatchCursor) Close(context.Context) error {
	bc.closed = true
	bc.batches = nil
	return nil
}

// Closed reports whether Close was called.
func (bc *BatchCursor) Closed() bool { return bc.closed }
