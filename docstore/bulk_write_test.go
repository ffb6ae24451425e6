// Copyright (C) Docstore, Inc. 2018-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package docstore

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/docstore/go-driver/docstore/options"
	"github.com/docstore/go-driver/driver"
)

type bogusModel struct{}

func (bogusModel) writeModel() {}

func TestTranslateWriteModels(t *testing.T) {
	t.Parallel()

	t.Run("one request per model, in order", func(t *testing.T) {
		t.Parallel()

		models := []WriteModel{
			NewInsertOneModel().SetDocument(bson.D{{Key: "_id", Value: "a"}}),
			NewUpdateManyModel().
				SetFilter(bson.D{{Key: "x", Value: 1}}).
				SetUpdate(bson.D{{Key: "$inc", Value: bson.D{{Key: "x", Value: 1}}}}),
			NewReplaceOneModel().
				SetFilter(bson.D{{Key: "x", Value: 2}}).
				SetReplacement(bson.D{{Key: "x", Value: 3}}).
				SetUpsert(true),
			NewDeleteOneModel().SetFilter(bson.D{{Key: "x", Value: 4}}),
		}

		requests, insertedIDs, err := translateWriteModels(bson.DefaultRegistry, models)
		require.NoError(t, err)
		require.Len(t, requests, len(models))

		kinds := make([]driver.RequestKind, 0, len(requests))
		for _, req := range requests {
			kinds = append(kinds, req.Kind())
		}
		want := []driver.RequestKind{driver.KindInsert, driver.KindUpdate, driver.KindReplace, driver.KindDelete}
		if diff := cmp.Diff(want, kinds); diff != "" {
			t.Fatalf("request kinds mismatch (-want +got):\n%s", diff)
		}

		update := requests[1].(driver.UpdateRequest)
		assert.True(t, update.Multi)
		assert.False(t, update.Upsert)

		replace := requests[2].(driver.UpdateRequest)
		assert.False(t, replace.Multi)
		assert.True(t, replace.Upsert)

		del := requests[3].(driver.DeleteRequest)
		assert.False(t, del.Multi)

		assert.Equal(t, map[int64]interface{}{0: "a"}, insertedIDs)
	})

	t.Run("nil slice", func(t *testing.T) {
		t.Parallel()
		_, _, err := translateWriteModels(bson.DefaultRegistry, nil)
		require.Equal(t, ErrEmptySlice, err)
	})

	t.Run("nil model rejected before any translation", func(t *testing.T) {
		t.Parallel()
		_, _, err := translateWriteModels(bson.DefaultRegistry, []WriteModel{
			NewInsertOneModel().SetDocument(bson.D{}),
			nil,
		})
		require.Equal(t, ErrNilDocument, err)
	})

	t.Run("unsupported model", func(t *testing.T) {
		t.Parallel()
		_, _, err := translateWriteModels(bson.DefaultRegistry, []WriteModel{bogusModel{}})
		var ume UnsupportedWriteModelError
		require.ErrorAs(t, err, &ume)
		assert.Contains(t, err.Error(), "bogusModel")
	})

	t.Run("update model requires an operator", func(t *testing.T) {
		t.Parallel()
		_, _, err := translateWriteModels(bson.DefaultRegistry, []WriteModel{
			NewUpdateOneModel().
				SetFilter(bson.D{}).
				SetUpdate(bson.D{{Key: "x", Value: 1}}),
		})
		require.Error(t, err)
	})

	t.Run("replace model rejects operators", func(t *testing.T) {
		t.Parallel()
		_, _, err := translateWriteModels(bson.DefaultRegistry, []WriteModel{
			NewReplaceOneModel().
				SetFilter(bson.D{}).
				SetReplacement(bson.D{{Key: "$set", Value: bson.D{{Key: "x", Value: 1}}}}),
		})
		require.Error(t, err)
	})

	t.Run("array filters and collation are carried", func(t *testing.T) {
		t.Parallel()
		collation := &options.Collation{Locale: "fr"}
		requests, _, err := translateWriteModels(bson.DefaultRegistry, []WriteModel{
			NewUpdateOneModel().
				SetFilter(bson.D{}).
				SetUpdate(bson.D{{Key: "$set", Value: bson.D{{Key: "grades.$[elem]", Value: 100}}}}).
				SetArrayFilters([]interface{}{bson.D{{Key: "elem", Value: bson.D{{Key: "$gte", Value: 85}}}}}).
				SetCollation(collation),
		})
		require.NoError(t, err)

		req := requests[0].(driver.UpdateRequest)
		require.Len(t, req.ArrayFilters, 1)
		assert.Equal(t, collation.ToDocument(), req.Collation)
	})

	t.Run("insert model generates missing ids", func(t *testing.T) {
		t.Parallel()
		requests, insertedIDs, err := translateWriteModels(bson.DefaultRegistry, []WriteModel{
			NewInsertOneModel().SetDocument(bson.D{{Key: "x", Value: 1}}),
		})
		require.NoError(t, err)

		doc := requests[0].(driver.InsertRequest).Document
		idVal, err := doc.LookupErr("_id")
		require.NoError(t, err)
		oid, ok := idVal.ObjectIDOK()
		require.True(t, ok)
		assert.Equal(t, oid, insertedIDs[0])
	})
}
