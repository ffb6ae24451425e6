// Copyright (C) Docstore, Inc. 2018-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package docstore

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/docstore/go-driver/driver"
)

func TestDeleteResult(t *testing.T) {
	t.Parallel()

	t.Run("acknowledged", func(t *testing.T) {
		t.Parallel()
		res := newDeleteResult(driver.BulkWriteResult{Acknowledged: true, DeletedCount: 3})
		assert.True(t, res.Acknowledged())
		assert.Equal(t, int64(3), res.DeletedCount())
	})

	t.Run("unacknowledged", func(t *testing.T) {
		t.Parallel()
		res := newDeleteResult(driver.BulkWriteResult{Acknowledged: false, DeletedCount: 3})
		assert.False(t, res.Acknowledged())
		assert.Panics(t, func() { res.DeletedCount() })
	})
}

func TestUpdateResult(t *testing.T) {
	t.Parallel()

	t.Run("modified count known", func(t *testing.T) {
		t.Parallel()
		res := newUpdateResult(driver.BulkWriteResult{
			Acknowledged:           true,
			MatchedCount:           2,
			ModifiedCount:          1,
			ModifiedCountAvailable: true,
		})
		assert.Equal(t, int64(2), res.MatchedCount())
		modified, ok := res.ModifiedCount()
		assert.True(t, ok)
		assert.Equal(t, int64(1), modified)
		assert.Nil(t, res.UpsertedID())
	})

	t.Run("modified count unknown", func(t *testing.T) {
		t.Parallel()
		res := newUpdateResult(driver.BulkWriteResult{Acknowledged: true, MatchedCount: 2})
		_, ok := res.ModifiedCount()
		assert.False(t, ok)
	})

	t.Run("first upsert id", func(t *testing.T) {
		t.Parallel()
		res := newUpdateResult(driver.BulkWriteResult{
			Acknowledged: true,
			Upserts:      []driver.Upsert{{Index: 0, ID: "first"}, {Index: 1, ID: "second"}},
		})
		assert.Equal(t, "first", res.UpsertedID())
	})

	t.Run("unacknowledged", func(t *testing.T) {
		t.Parallel()
		res := newUpdateResult(driver.BulkWriteResult{Acknowledged: false, MatchedCount: 2})
		assert.False(t, res.Acknowledged())
		assert.Panics(t, func() { res.MatchedCount() })
		assert.Panics(t, func() { res.ModifiedCount() })
		assert.Panics(t, func() { res.UpsertedID() })
	})
}

func TestBulkWriteResult(t *testing.T) {
	t.Parallel()

	t.Run("acknowledged", func(t *testing.T) {
		t.Parallel()
		res := newBulkWriteResult(driver.BulkWriteResult{
			Acknowledged:           true,
			InsertedCount:          2,
			MatchedCount:           3,
			ModifiedCount:          3,
			ModifiedCountAvailable: true,
			DeletedCount:           1,
			Upserts:                []driver.Upsert{{Index: 4, ID: "up"}},
		}, map[int64]interface{}{0: "a", 1: "b"})

		assert.Equal(t, int64(2), res.InsertedCount())
		assert.Equal(t, int64(3), res.MatchedCount())
		assert.Equal(t, int64(1), res.DeletedCount())
		assert.Equal(t, map[int64]interface{}{4: "up"}, res.UpsertedIDs())
		assert.Equal(t, map[int64]interface{}{0: "a", 1: "b"}, res.InsertedIDs())
	})

	t.Run("unacknowledged", func(t *testing.T) {
		t.Parallel()
		res := newBulkWriteResult(driver.BulkWriteResult{}, nil)
		assert.False(t, res.Acknowledged())
		assert.Panics(t, func() { res.InsertedCount() })
		assert.Panics(t, func() { res.UpsertedIDs() })
	})
}
