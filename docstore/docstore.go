// Copyright (C) Docstore, Inc. 2018-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

// Package docstore is the client-facing collection API of the driver. A
// Collection is an immutable handle: reconfiguring read concern, write
// concern, read preference or codec registry yields a new handle and never
// mutates the original, so handles are safe for concurrent use. Every
// operation is normalized into a driver operation value and handed to the
// executor the handle was created with.
package docstore

import (
	"reflect"
	"strings"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsoncodec"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/x/bsonx/bsoncore"

	"github.com/docstore/go-driver/docstore/options"
)

// Collectible is implemented by document types that want to observe a driver
// generated _id. When an inserted document has no _id and its type implements
// Collectible, the generated id is reported through SetGeneratedID before the
// document is sent.
type Collectible interface {
	SetGeneratedID(id interface{})
}

// transformDocument marshals val into a raw document using registry. A nil
// val is rejected with ErrNilDocument rather than encoded as an empty
// document.
func transformDocument(registry *bsoncodec.Registry, val interface{}) (bson.Raw, error) {
	if registry == nil {
		registry = bson.DefaultRegistry
	}
	if val == nil {
		return nil, ErrNilDocument
	}
	if raw, ok := val.(bson.Raw); ok {
		if err := raw.Validate(); err != nil {
			return nil, err
		}
		return raw, nil
	}
	b, err := bson.MarshalWithRegistry(registry, val)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot transform type %T to a document", val)
	}
	return bson.Raw(b), nil
}

// transformAndEnsureID transforms val into a raw document and guarantees the
// result carries an _id, generating an ObjectID when the document has none.
// For map documents the generated id is written back into the caller's value;
// for Collectible documents it is reported through SetGeneratedID. The
// returned id is the document's _id in either case.
func transformAndEnsureID(registry *bsoncodec.Registry, val interface{}) (bson.Raw, interface{}, error) {
	switch t := val.(type) {
	case bson.M:
		if _, ok := t["_id"]; !ok {
			t["_id"] = primitive.NewObjectID()
		}
	case map[string]interface{}:
		if _, ok := t["_id"]; !ok {
			t["_id"] = primitive.NewObjectID()
		}
	}

	doc, err := transformDocument(registry, val)
	if err != nil {
		return nil, nil, err
	}

	if idVal, lookupErr := doc.LookupErr("_id"); lookupErr == nil {
		var id interface{}
		if err := idVal.UnmarshalWithRegistry(registry, &id); err != nil {
			return nil, nil, err
		}
		return doc, id, nil
	}

	oid := primitive.NewObjectID()
	idx, b := bsoncore.AppendDocumentStart(nil)
	b = bsoncore.AppendObjectIDElement(b, "_id", oid)
	b = append(b, doc[4:len(doc)-1]...)
	b, _ = bsoncore.AppendDocumentEnd(b, idx)
	if c, ok := val.(Collectible); ok {
		c.SetGeneratedID(oid)
	}
	return bson.Raw(b), oid, nil
}

// ensureDollarKey verifies that doc is a valid update document, meaning its
// first key is an update operator.
func ensureDollarKey(doc bson.Raw) error {
	elems, err := doc.Elements()
	if err != nil {
		return err
	}
	if len(elems) == 0 {
		return errors.New("update document must contain at least one element")
	}
	if !strings.HasPrefix(elems[0].Key(), "$") {
		return errors.New("update document must contain key beginning with '$'")
	}
	return nil
}

// ensureNoDollarKey verifies that doc is a valid replacement document,
// meaning it contains no update operators.
func ensureNoDollarKey(doc bson.Raw) error {
	elems, err := doc.Elements()
	if err != nil {
		return err
	}
	for _, elem := range elems {
		if strings.HasPrefix(elem.Key(), "$") {
			return errors.New("replacement document cannot contain keys beginning with '$'")
		}
	}
	return nil
}

// transformFilter is transformDocument with nil meaning the match-everything
// filter. Read operations use it; write operations require an explicit
// filter.
func transformFilter(registry *bsoncodec.Registry, filter interface{}) (bson.Raw, error) {
	if filter == nil {
		filter = bson.D{}
	}
	return transformDocument(registry, filter)
}

// transformDocuments transforms every element of vals, rejecting nil and
// empty slices as well as nil elements before any element is transformed.
func transformDocuments(registry *bsoncodec.Registry, vals []interface{}) ([]bson.Raw, error) {
	if len(vals) == 0 {
		return nil, ErrEmptySlice
	}
	for _, val := range vals {
		if val == nil {
			return nil, ErrNilDocument
		}
	}
	docs := make([]bson.Raw, 0, len(vals))
	for _, val := range vals {
		doc, err := transformDocument(registry, val)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// transformAggregatePipeline transforms pipeline, which must be a slice or
// array of stage documents, and reports whether the final stage writes its
// results to a collection instead of returning them.
func transformAggregatePipeline(registry *bsoncodec.Registry, pipeline interface{}) ([]bson.Raw, bool, error) {
	val := reflect.ValueOf(pipeline)
	if !val.IsValid() || (val.Kind() != reflect.Slice && val.Kind() != reflect.Array) {
		return nil, false, errors.Errorf("cannot transform type %T to an aggregation pipeline", pipeline)
	}
	stages := make([]bson.Raw, 0, val.Len())
	for i := 0; i < val.Len(); i++ {
		stage, err := transformDocument(registry, val.Index(i).Interface())
		if err != nil {
			return nil, false, err
		}
		stages = append(stages, stage)
	}
	return stages, hasOutputStage(stages), nil
}

func hasOutputStage(stages []bson.Raw) bool {
	if len(stages) == 0 {
		return false
	}
	elems, err := stages[len(stages)-1].Elements()
	if err != nil || len(elems) == 0 {
		return false
	}
	switch elems[0].Key() {
	case "$out", "$merge":
		return true
	}
	return false
}

// collationToRaw renders a collation option into its document form, nil in
// nil out.
func collationToRaw(c *options.Collation) bson.Raw {
	if c == nil {
		return nil
	}
	return c.ToDocument()
}
