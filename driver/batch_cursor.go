// Copyright (C) Docstore, Inc. 2018-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package driver

import "context"

// BatchCursor is the fetch side of a server cursor. Implementations retrieve
// batches of raw documents over the network; decoding and per-document
// iteration happen in the collection layer.
type BatchCursor interface {
	// ID returns the server cursor id. An id of 0 means the cursor is
	// exhausted on the server.
	ID() int64

	// Next fetches the next batch, returning false when no further batch is
	// available or an error occurred.
	Next(ctx context.Context) bool

	// Batch appends the raw documents of the current batch to dst.
	Batch(dst []byte) []byte

	// Err returns the error that stopped iteration, if any.
	Err() error

	// Close releases the server cursor.
	Close(ctx context.Context) error
}

type emptyBatchCursor struct{}

func (emptyBatchCursor) ID() int64                   { return 0 }
func (emptyBatchCursor) Next(context.Context) bool   { return false }
func (emptyBatchCursor) Batch(dst []byte) []byte     { return dst }
func (emptyBatchCursor) Err() error                  { return nil }
func (emptyBatchCursor) Close(context.Context) error { return nil }

// NewEmptyBatchCursor returns a BatchCursor with no results.
func NewEmptyBatchCursor() BatchCursor { return emptyBatchCursor{} }
