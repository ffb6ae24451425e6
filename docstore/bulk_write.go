// Copyright (C) Docstore, Inc. 2018-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package docstore

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsoncodec"

	"github.com/docstore/go-driver/docstore/options"
	"github.com/docstore/go-driver/driver"
)

// WriteModel is the interface satisfied by the models accepted by BulkWrite.
// Each model translates to exactly one write request, in input order.
type WriteModel interface {
	writeModel()
}

// InsertOneModel inserts a single document.
type InsertOneModel struct {
	Document interface{}
}

// NewInsertOneModel creates a new InsertOneModel.
func NewInsertOneModel() *InsertOneModel {
	return &InsertOneModel{}
}

// SetDocument sets the document to insert.
func (iom *InsertOneModel) SetDocument(doc interface{}) *InsertOneModel {
	iom.Document = doc
	return iom
}

func (*InsertOneModel) writeModel() {}

// DeleteOneModel deletes at most one document matching the filter.
type DeleteOneModel struct {
	Filter    interface{}
	Collation *options.Collation
}

// NewDeleteOneModel creates a new DeleteOneModel.
func NewDeleteOneModel() *DeleteOneModel {
	return &DeleteOneModel{}
}

// SetFilter sets the filter.
func (dom *DeleteOneModel) SetFilter(filter interface{}) *DeleteOneModel {
	dom.Filter = filter
	return dom
}

// SetCollation sets the collation.
func (dom *DeleteOneModel) SetCollation(collation *options.Collation) *DeleteOneModel {
	dom.Collation = collation
	return dom
}

func (*DeleteOneModel) writeModel() {}

// DeleteManyModel deletes every document matching the filter.
type DeleteManyModel struct {
	Filter    interface{}
	Collation *options.Collation
}

// NewDeleteManyModel creates a new DeleteManyModel.
func NewDeleteManyModel() *DeleteManyModel {
	return &DeleteManyModel{}
}

// SetFilter sets the filter.
func (dmm *DeleteManyModel) SetFilter(filter interface{}) *DeleteManyModel {
	dmm.Filter = filter
	return dmm
}

// SetCollation sets the collation.
func (dmm *DeleteManyModel) SetCollation(collation *options.Collation) *DeleteManyModel {
	dmm.Collation = collation
	return dmm
}

func (*DeleteManyModel) writeModel() {}

// ReplaceOneModel replaces at most one document matching the filter.
type ReplaceOneModel struct {
	Filter      interface{}
	Replacement interface{}
	Collation   *options.Collation
	Upsert      *bool
}

// NewReplaceOneModel creates a new ReplaceOneModel.
func NewReplaceOneModel() *ReplaceOneModel {
	return &ReplaceOneModel{}
}

// SetFilter sets the filter.
func (rom *ReplaceOneModel) SetFilter(filter interface{}) *ReplaceOneModel {
	rom.Filter = filter
	return rom
}

// SetReplacement sets the replacement document.
func (rom *ReplaceOneModel) SetReplacement(rep interface{}) *ReplaceOneModel {
	rom.Replacement = rep
	return rom
}

// SetCollation sets the collation.
func (rom *ReplaceOneModel) SetCollation(collation *options.Collation) *ReplaceOneModel {
	rom.Collation = collation
	return rom
}

// SetUpsert sets the upsert flag.
func (rom *ReplaceOneModel) SetUpsert(upsert bool) *ReplaceOneModel {
	rom.Upsert = &upsert
	return rom
}

func (*ReplaceOneModel) writeModel() {}

// UpdateOneModel updates at most one document matching the filter.
type UpdateOneModel struct {
	Filter       interface{}
	Update       interface{}
	ArrayFilters []interface{}
	Collation    *options.Collation
	Upsert       *bool
}

// NewUpdateOneModel creates a new UpdateOneModel.
func NewUpdateOneModel() *UpdateOneModel {
	return &UpdateOneModel{}
}

// SetFilter sets the filter.
func (uom *UpdateOneModel) SetFilter(filter interface{}) *UpdateOneModel {
	uom.Filter = filter
	return uom
}

// SetUpdate sets the update document.
func (uom *UpdateOneModel) SetUpdate(update interface{}) *UpdateOneModel {
	uom.Update = update
	return uom
}

// SetArrayFilters sets the array filters.
func (uom *UpdateOneModel) SetArrayFilters(filters []interface{}) *UpdateOneModel {
	uom.ArrayFilters = filters
	return uom
}

// SetCollation sets the collation.
func (uom *UpdateOneModel) SetCollation(collation *options.Collation) *UpdateOneModel {
	uom.Collation = collation
	return uom
}

// SetUpsert sets the upsert flag.
func (uom *UpdateOneModel) SetUpsert(upsert bool) *UpdateOneModel {
	uom.Upsert = &upsert
	return uom
}

func (*UpdateOneModel) writeModel() {}

// UpdateManyModel updates every document matching the filter.
type UpdateManyModel struct {
	Filter       interface{}
	Update       interface{}
	ArrayFilters []interface{}
	Collation    *options.Collation
	Upsert       *bool
}

// NewUpdateManyModel creates a new UpdateManyModel.
func NewUpdateManyModel() *UpdateManyModel {
	return &UpdateManyModel{}
}

// SetFilter sets the filter.
func (umm *UpdateManyModel) SetFilter(filter interface{}) *UpdateManyModel {
	umm.Filter = filter
	return umm
}

// SetUpdate sets the update document.
func (umm *UpdateManyModel) SetUpdate(update interface{}) *UpdateManyModel {
	umm.Update = update
	return umm
}

// SetArrayFilters sets the array filters.
func (umm *UpdateManyModel) SetArrayFilters(filters []interface{}) *UpdateManyModel {
	umm.ArrayFilters = filters
	return umm
}

// SetCollation sets the collation.
func (umm *UpdateManyModel) SetCollation(collation *options.Collation) *UpdateManyModel {
	umm.Collation = collation
	return umm
}

// SetUpsert sets the upsert flag.
func (umm *UpdateManyModel) SetUpsert(upsert bool) *UpdateManyModel {
	umm.Upsert = &upsert
	return umm
}

func (*UpdateManyModel) writeModel() {}

// translateWriteModels normalizes models into wire-ready write requests. The
// slice is validated in full before any model is translated: a nil or empty
// slice and a nil element are rejected up front. The returned map carries the
// _id of every insert model keyed by model index, generating ids for
// documents that have none.
func translateWriteModels(registry *bsoncodec.Registry, models []WriteModel) ([]driver.WriteRequest, map[int64]interface{}, error) {
	if len(models) == 0 {
		return nil, nil, ErrEmptySlice
	}
	for _, model := range models {
		if model == nil {
			return nil, nil, ErrNilDocument
		}
	}

	requests := make([]driver.WriteRequest, 0, len(models))
	insertedIDs := make(map[int64]interface{})
	for i, model := range models {
		var req driver.WriteRequest
		var err error
		switch m := model.(type) {
		case *InsertOneModel:
			var doc bson.Raw
			var id interface{}
			doc, id, err = transformAndEnsureID(registry, m.Document)
			if err == nil {
				insertedIDs[int64(i)] = id
				req = driver.InsertRequest{Document: doc}
			}
		case *DeleteOneModel:
			req, err = translateDelete(registry, m.Filter, m.Collation, false)
		case *DeleteManyModel:
			req, err = translateDelete(registry, m.Filter, m.Collation, true)
		case *ReplaceOneModel:
			req, err = translateReplace(registry, m.Filter, m.Replacement, m.Collation, m.Upsert)
		case *UpdateOneModel:
			req, err = translateUpdate(registry, m.Filter, m.Update, m.ArrayFilters, m.Collation, m.Upsert, false)
		case *UpdateManyModel:
			req, err = translateUpdate(registry, m.Filter, m.Update, m.ArrayFilters, m.Collation, m.Upsert, true)
		default:
			err = UnsupportedWriteModelError{Model: model}
		}
		if err != nil {
			return nil, nil, err
		}
		requests = append(requests, req)
	}
	return requests, insertedIDs, nil
}

func translateDelete(registry *bsoncodec.Registry, filter interface{}, collation *options.Collation, multi bool) (driver.WriteRequest, error) {
	f, err := transformDocument(registry, filter)
	if err != nil {
		return nil, err
	}
	return driver.DeleteRequest{Filter: f, Multi: multi, Collation: collationToRaw(collation)}, nil
}

func translateReplace(registry *bsoncodec.Registry, filter, replacement interface{}, collation *options.Collation, upsert *bool) (driver.WriteRequest, error) {
	f, err := transformDocument(registry, filter)
	if err != nil {
		return nil, err
	}
	r, err := transformDocument(registry, replacement)
	if err != nil {
		return nil, err
	}
	if err := ensureNoDollarKey(r); err != nil {
		return nil, err
	}
	return driver.UpdateRequest{
		Filter:    f,
		Update:    r,
		Type:      driver.KindReplace,
		Upsert:    upsert != nil && *upsert,
		Collation: collationToRaw(collation),
	}, nil
}

func translateUpdate(registry *bsoncodec.Registry, filter, update interface{}, arrayFilters []interface{}, collation *options.Collation, upsert *bool, multi bool) (driver.WriteRequest, error) {
	f, err := transformDocument(registry, filter)
	if err != nil {
		return nil, err
	}
	u, err := transformDocument(registry, update)
	if err != nil {
		return nil, err
	}
	if err := ensureDollarKey(u); err != nil {
		return nil, err
	}
	var af []bson.Raw
	if arrayFilters != nil {
		af, err = transformDocuments(registry, arrayFilters)
		if err != nil {
			return nil, err
		}
	}
	return driver.UpdateRequest{
		Filter:       f,
		Update:       u,
		Type:         driver.KindUpdate,
		Multi:        multi,
		Upsert:       upsert != nil && *upsert,
		Collation:    collationToRaw(collation),
		ArrayFilters: af,
	}, nil
}
