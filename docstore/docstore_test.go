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
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestTransformDocument(t *testing.T) {
	t.Parallel()

	t.Run("nil is rejected", func(t *testing.T) {
		t.Parallel()
		_, err := transformDocument(bson.DefaultRegistry, nil)
		require.Equal(t, ErrNilDocument, err)
	})

	t.Run("raw documents pass through", func(t *testing.T) {
		t.Parallel()
		raw := mustRaw(t, bson.D{{Key: "x", Value: 1}})
		got, err := transformDocument(bson.DefaultRegistry, raw)
		require.NoError(t, err)
		assert.Equal(t, raw, got)
	})

	t.Run("invalid raw documents are rejected", func(t *testing.T) {
		t.Parallel()
		_, err := transformDocument(bson.DefaultRegistry, bson.Raw{0x01, 0x02})
		require.Error(t, err)
	})

	t.Run("structs and maps marshal", func(t *testing.T) {
		t.Parallel()
		got, err := transformDocument(bson.DefaultRegistry, struct {
			X int `bson:"x"`
		}{X: 7})
		require.NoError(t, err)
		val, err := got.LookupErr("x")
		require.NoError(t, err)
		assert.Equal(t, int32(7), val.Int32())
	})

	t.Run("unmarshalable values report the type", func(t *testing.T) {
		t.Parallel()
		_, err := transformDocument(bson.DefaultRegistry, make(chan int))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "chan int")
	})
}

func TestTransformAndEnsureID(t *testing.T) {
	t.Parallel()

	t.Run("existing id is preserved", func(t *testing.T) {
		t.Parallel()
		doc, id, err := transformAndEnsureID(bson.DefaultRegistry, bson.D{{Key: "_id", Value: "keep"}})
		require.NoError(t, err)
		assert.Equal(t, "keep", id)
		val, err := doc.LookupErr("_id")
		require.NoError(t, err)
		assert.Equal(t, "keep", val.StringValue())
	})

	t.Run("generated id comes first in the document", func(t *testing.T) {
		t.Parallel()
		doc, id, err := transformAndEnsureID(bson.DefaultRegistry, bson.D{{Key: "x", Value: 1}})
		require.NoError(t, err)
		require.IsType(t, primitive.ObjectID{}, id)

		elems, err := doc.Elements()
		require.NoError(t, err)
		require.NotEmpty(t, elems)
		assert.Equal(t, "_id", elems[0].Key())
	})

	t.Run("map documents see the generated id", func(t *testing.T) {
		t.Parallel()
		m := map[string]interface{}{"x": 1}
		_, id, err := transformAndEnsureID(bson.DefaultRegistry, m)
		require.NoError(t, err)
		assert.Equal(t, id, m["_id"])
	})
}

func TestEnsureDollarKey(t *testing.T) {
	t.Parallel()

	t.Run("operator update is valid", func(t *testing.T) {
		t.Parallel()
		doc := mustRaw(t, bson.D{{Key: "$set", Value: bson.D{{Key: "x", Value: 1}}}})
		require.NoError(t, ensureDollarKey(doc))
	})

	t.Run("plain document is rejected", func(t *testing.T) {
		t.Parallel()
		doc := mustRaw(t, bson.D{{Key: "x", Value: 1}})
		require.Error(t, ensureDollarKey(doc))
	})

	t.Run("empty document is rejected", func(t *testing.T) {
		t.Parallel()
		require.Error(t, ensureDollarKey(mustRaw(t, bson.D{})))
	})
}

func TestEnsureNoDollarKey(t *testing.T) {
	t.Parallel()

	t.Run("plain replacement is valid", func(t *testing.T) {
		t.Parallel()
		doc := mustRaw(t, bson.D{{Key: "x", Value: 1}})
		require.NoError(t, ensureNoDollarKey(doc))
	})

	t.Run("operators anywhere are rejected", func(t *testing.T) {
		t.Parallel()
		doc := mustRaw(t, bson.D{{Key: "x", Value: 1}, {Key: "$set", Value: bson.D{}}})
		require.Error(t, ensureNoDollarKey(doc))
	})
}

func TestTransformAggregatePipeline(t *testing.T) {
	t.Parallel()

	t.Run("slice of stages", func(t *testing.T) {
		t.Parallel()
		stages, writing, err := transformAggregatePipeline(bson.DefaultRegistry, bson.A{
			bson.D{{Key: "$match", Value: bson.D{}}},
			bson.D{{Key: "$limit", Value: 5}},
		})
		require.NoError(t, err)
		assert.Len(t, stages, 2)
		assert.False(t, writing)
	})

	t.Run("trailing out stage", func(t *testing.T) {
		t.Parallel()
		_, writing, err := transformAggregatePipeline(bson.DefaultRegistry, []bson.D{
			{{Key: "$match", Value: bson.D{}}},
			{{Key: "$out", Value: "target"}},
		})
		require.NoError(t, err)
		assert.True(t, writing)
	})

	t.Run("out stage in the middle does not write", func(t *testing.T) {
		t.Parallel()
		_, writing, err := transformAggregatePipeline(bson.DefaultRegistry, bson.A{
			bson.D{{Key: "$out", Value: "target"}},
			bson.D{{Key: "$match", Value: bson.D{}}},
		})
		require.NoError(t, err)
		assert.False(t, writing)
	})

	t.Run("non-slice is rejected", func(t *testing.T) {
		t.Parallel()
		_, _, err := transformAggregatePipeline(bson.DefaultRegistry, bson.D{{Key: "$match", Value: bson.D{}}})
		require.Error(t, err)
	})
}

func TestTransformDocuments(t *testing.T) {
	t.Parallel()

	t.Run("empty slice", func(t *testing.T) {
		t.Parallel()
		_, err := transformDocuments(bson.DefaultRegistry, nil)
		require.Equal(t, ErrEmptySlice, err)
	})

	t.Run("nil element rejected before any transformation", func(t *testing.T) {
		t.Parallel()
		_, err := transformDocuments(bson.DefaultRegistry, []interface{}{bson.D{}, nil})
		require.Equal(t, ErrNilDocument, err)
	})

	t.Run("element order is preserved", func(t *testing.T) {
		t.Parallel()
		docs, err := transformDocuments(bson.DefaultRegistry, []interface{}{
			bson.D{{Key: "a", Value: 1}},
			bson.D{{Key: "b", Value: 2}},
		})
		require.NoError(t, err)
		require.Len(t, docs, 2)
		_, err = docs[0].LookupErr("a")
		assert.NoError(t, err)
		_, err = docs[1].LookupErr("b")
		assert.NoError(t, err)
	})
}
