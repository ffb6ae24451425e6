// Copyright (C) Docstore, Inc. 2018-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package docstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/docstore/go-driver/docstore/options"
	"github.com/docstore/go-driver/driver"
)

func TestGetOrGenerateIndexName(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		keys interface{}
		want string
	}{
		{"int32 value", bson.D{{Key: "x", Value: int32(1)}}, "x_1"},
		{"int64 value", bson.D{{Key: "x", Value: int64(-1)}}, "x_-1"},
		{"string value", bson.D{{Key: "body", Value: "text"}}, "body_text"},
		{
			"compound keys",
			bson.D{{Key: "x", Value: int32(1)}, {Key: "y", Value: int32(-1)}, {Key: "z", Value: "hashed"}},
			"x_1_y_-1_z_hashed",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := getOrGenerateIndexName(mustRaw(t, tc.keys), IndexModel{})
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	t.Run("explicit name wins", func(t *testing.T) {
		t.Parallel()
		model := IndexModel{Options: options.Index().SetName("custom")}
		got, err := getOrGenerateIndexName(mustRaw(t, bson.D{{Key: "x", Value: int32(1)}}), model)
		require.NoError(t, err)
		assert.Equal(t, "custom", got)
	})

	t.Run("unsupported key value", func(t *testing.T) {
		t.Parallel()
		_, err := getOrGenerateIndexName(mustRaw(t, bson.D{{Key: "x", Value: 1.5}}), IndexModel{})
		require.Equal(t, ErrInvalidIndexValue, err)
	})
}

func TestIndexView_CreateMany(t *testing.T) {
	t.Parallel()

	t.Run("builds one spec per model", func(t *testing.T) {
		t.Parallel()
		coll, exec := newTestCollection(t)

		names, err := coll.Indexes().CreateMany(context.Background(), []IndexModel{
			{Keys: bson.D{{Key: "x", Value: int32(1)}}},
			{
				Keys:    bson.D{{Key: "y", Value: int32(-1)}},
				Options: options.Index().SetUnique(true).SetExpireAfterSeconds(30),
			},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"x_1", "y_-1"}, names)

		calls := exec.Calls()
		require.Len(t, calls, 1)
		op, ok := calls[0].Operation.(driver.CreateIndexes)
		require.True(t, ok)
		assert.Equal(t, "bar", op.NS.Collection)
		assert.Nil(t, calls[0].ReadPref)
		require.Len(t, op.Indexes, 2)

		first := op.Indexes[0]
		name, err := first.LookupErr("name")
		require.NoError(t, err)
		assert.Equal(t, "x_1", name.StringValue())
		_, err = first.LookupErr("key")
		require.NoError(t, err)
		_, err = first.LookupErr("unique")
		assert.Error(t, err)

		second := op.Indexes[1]
		unique, err := second.LookupErr("unique")
		require.NoError(t, err)
		assert.True(t, unique.Boolean())
		expire, err := second.LookupErr("expireAfterSeconds")
		require.NoError(t, err)
		assert.Equal(t, int32(30), expire.Int32())
	})

	t.Run("empty slice", func(t *testing.T) {
		t.Parallel()
		coll, exec := newTestCollection(t)
		_, err := coll.Indexes().CreateMany(context.Background(), nil)
		require.Equal(t, ErrEmptySlice, err)
		assert.Empty(t, exec.Calls())
	})

	t.Run("nil keys", func(t *testing.T) {
		t.Parallel()
		coll, exec := newTestCollection(t)
		_, err := coll.Indexes().CreateMany(context.Background(), []IndexModel{{Keys: nil}})
		require.Equal(t, ErrNilDocument, err)
		assert.Empty(t, exec.Calls())
	})
}

func TestIndexView_CreateOne(t *testing.T) {
	t.Parallel()

	coll, exec := newTestCollection(t)
	name, err := coll.Indexes().CreateOne(context.Background(), IndexModel{
		Keys: bson.D{{Key: "x", Value: int32(1)}},
	})
	require.NoError(t, err)
	assert.Equal(t, "x_1", name)
	assert.Len(t, exec.Calls(), 1)
}

func TestIndexView_Drop(t *testing.T) {
	t.Parallel()

	t.Run("drop one by name", func(t *testing.T) {
		t.Parallel()
		coll, exec := newTestCollection(t)
		require.NoError(t, coll.Indexes().DropOne(context.Background(), "x_1"))

		calls := exec.Calls()
		require.Len(t, calls, 1)
		op, ok := calls[0].Operation.(driver.DropIndex)
		require.True(t, ok)
		assert.Equal(t, "x_1", op.Index)
		assert.Nil(t, calls[0].ReadPref)
	})

	t.Run("drop one rejects the wildcard", func(t *testing.T) {
		t.Parallel()
		coll, exec := newTestCollection(t)
		err := coll.Indexes().DropOne(context.Background(), "*")
		require.Equal(t, ErrMultipleIndexDrop, err)
		assert.Empty(t, exec.Calls())
	})

	t.Run("drop all sends the wildcard", func(t *testing.T) {
		t.Parallel()
		coll, exec := newTestCollection(t)
		require.NoError(t, coll.Indexes().DropAll(context.Background()))

		calls := exec.Calls()
		require.Len(t, calls, 1)
		op := calls[0].Operation.(driver.DropIndex)
		assert.Equal(t, "*", op.Index)
	})

	t.Run("drop with key sends the key document", func(t *testing.T) {
		t.Parallel()
		coll, exec := newTestCollection(t)
		require.NoError(t, coll.Indexes().DropWithKey(context.Background(), bson.D{{Key: "x", Value: int32(1)}}))

		calls := exec.Calls()
		require.Len(t, calls, 1)
		op := calls[0].Operation.(driver.DropIndex)
		keys, ok := op.Index.(bson.Raw)
		require.True(t, ok)
		val, err := keys.LookupErr("x")
		require.NoError(t, err)
		assert.Equal(t, int32(1), val.Int32())
	})
}

func TestIndexView_List(t *testing.T) {
	t.Parallel()

	coll, exec := newTestCollection(t)
	cur, err := coll.Indexes().List(context.Background(), options.ListIndexes().SetBatchSize(10))
	require.NoError(t, err)
	require.NotNil(t, cur)

	calls := exec.Calls()
	require.Len(t, calls, 1)
	op, ok := calls[0].Operation.(driver.ListIndexes)
	require.True(t, ok)
	assert.Equal(t, int32(10), op.BatchSize)
	assert.Equal(t, coll.ReadPreference(), calls[0].ReadPref)
}
