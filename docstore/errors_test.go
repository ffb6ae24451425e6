// Copyright (C) Docstore, Inc. 2018-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package docstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docstore/go-driver/driver"
)

type unknownKindRequest struct{}

func (unknownKindRequest) Kind() driver.RequestKind { return driver.RequestKind(99) }

func TestTranslateWriteConcernResult(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		req  driver.WriteRequest
		res  driver.BulkWriteResult
		want driver.WriteConcernResult
	}{
		{
			name: "insert counts inserted documents",
			req:  driver.InsertRequest{},
			res:  driver.BulkWriteResult{InsertedCount: 1, DeletedCount: 7},
			want: driver.WriteConcernResult{Count: 1},
		},
		{
			name: "delete counts deleted documents",
			req:  driver.DeleteRequest{Multi: true},
			res:  driver.BulkWriteResult{DeletedCount: 4, InsertedCount: 7},
			want: driver.WriteConcernResult{Count: 4},
		},
		{
			name: "update counts matches and reports the match",
			req:  driver.UpdateRequest{Type: driver.KindUpdate},
			res:  driver.BulkWriteResult{MatchedCount: 1},
			want: driver.WriteConcernResult{Count: 1, UpdatedExisting: true},
		},
		{
			name: "upsert counts as one without updating existing",
			req:  driver.UpdateRequest{Type: driver.KindUpdate, Upsert: true},
			res:  driver.BulkWriteResult{Upserts: []driver.Upsert{{Index: 0, ID: "fresh"}}},
			want: driver.WriteConcernResult{Count: 1, UpsertedID: "fresh"},
		},
		{
			name: "replace behaves like update",
			req:  driver.UpdateRequest{Type: driver.KindReplace},
			res:  driver.BulkWriteResult{MatchedCount: 1, ModifiedCount: 1},
			want: driver.WriteConcernResult{Count: 1, UpdatedExisting: true},
		},
		{
			name: "zero matches",
			req:  driver.UpdateRequest{Type: driver.KindUpdate},
			res:  driver.BulkWriteResult{},
			want: driver.WriteConcernResult{},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := translateWriteConcernResult(tc.req, tc.res)
			assert.Equal(t, tc.want, got)
		})
	}

	t.Run("unknown request kind panics", func(t *testing.T) {
		t.Parallel()
		assert.Panics(t, func() {
			translateWriteConcernResult(unknownKindRequest{}, driver.BulkWriteResult{})
		})
	})
}

func TestProcessWriteException(t *testing.T) {
	t.Parallel()

	t.Run("unrelated errors pass through", func(t *testing.T) {
		t.Parallel()
		err := processWriteException(driver.InsertRequest{}, assert.AnError)
		require.Equal(t, assert.AnError, err)
	})

	t.Run("write error wins over write concern error", func(t *testing.T) {
		t.Parallel()
		err := processWriteException(driver.InsertRequest{}, driver.BulkWriteException{
			WriteErrors:       []driver.WriteError{{Code: 11000, Message: "duplicate key"}},
			WriteConcernError: &driver.WriteConcernError{Code: 64, Message: "timed out"},
		})
		var we WriteError
		require.ErrorAs(t, err, &we)
		assert.Equal(t, 11000, we.Code)
	})

	t.Run("bare bulk exception passes through", func(t *testing.T) {
		t.Parallel()
		bwe := driver.BulkWriteException{ServerAddress: "localhost:27017"}
		err := processWriteException(driver.InsertRequest{}, bwe)
		require.Equal(t, bwe, err)
	})
}
