// Copyright (C) Docstore, Inc. 2018-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package docstore

import (
	"context"
	"reflect"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsoncodec"
	"go.mongodb.org/mongo-driver/x/bsonx/bsoncore"

	"github.com/docstore/go-driver/driver"
)

// Cursor iterates a stream of documents. Each document is decoded into the
// result according to the rules of the bson package.
//
// A typical usage of the Cursor type would be:
//
//	cur, err := coll.Find(ctx, filter)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer cur.Close(ctx)
//
//	for cur.Next(ctx) {
//		var elem bson.D
//		if err := cur.Decode(&elem); err != nil {
//			log.Fatal(err)
//		}
//		// do something with elem....
//	}
//
//	if err := cur.Err(); err != nil {
//		log.Fatal(err)
//	}
type Cursor struct {
	// Current is the raw bytes of the current document, valid until the next
	// call to Next.
	Current bson.Raw

	bc       driver.BatchCursor
	batch    []byte
	pos      int
	registry *bsoncodec.Registry
	err      error
}

func newCursor(bc driver.BatchCursor, registry *bsoncodec.Registry) *Cursor {
	if registry == nil {
		registry = bson.DefaultRegistry
	}
	return &Cursor{bc: bc, registry: registry}
}

// ID returns the server cursor id, 0 meaning the cursor is exhausted on the
// server.
func (c *Cursor) ID() int64 { return c.bc.ID() }

// Next advances the cursor to the next document, fetching a new batch from
// the server when the current one is spent. It returns false when the cursor
// is exhausted or an error occurred; Err distinguishes the two.
func (c *Cursor) Next(ctx context.Context) bool {
	if c.err != nil {
		return false
	}
	if ctx == nil {
		ctx = context.Background()
	}

	for c.pos >= len(c.batch) {
		if !c.bc.Next(ctx) {
			c.err = c.bc.Err()
			return false
		}
		c.batch = c.bc.Batch(c.batch[:0])
		c.pos = 0
	}

	doc, _, ok := bsoncore.ReadDocument(c.batch[c.pos:])
	if !ok {
		c.err = errors.New("invalid document in batch")
		return false
	}
	c.pos += len(doc)
	c.Current = bson.Raw(doc)
	return true
}

// Decode decodes the current document into val.
func (c *Cursor) Decode(val interface{}) error {
	return bson.UnmarshalWithRegistry(c.registry, c.Current, val)
}

// DecodeBytes returns the raw bytes of the current document.
func (c *Cursor) DecodeBytes() (bson.Raw, error) {
	if c.Current == nil {
		return nil, ErrNilCursor
	}
	return c.Current, nil
}

// Err returns the error that stopped iteration, if any.
func (c *Cursor) Err() error { return c.err }

// Close releases the server cursor. Subsequent calls to Next return false.
func (c *Cursor) Close(ctx context.Context) error { return c.bc.Close(ctx) }

// All decodes every remaining document into results, which must be a pointer
// to a slice, and closes the cursor.
func (c *Cursor) All(ctx context.Context, results interface{}) error {
	resultsVal := reflect.ValueOf(results)
	if resultsVal.Kind() != reflect.Ptr {
		return errors.Errorf("results argument must be a pointer to a slice, but was %s", resultsVal.Kind())
	}
	sliceVal := resultsVal.Elem()
	if sliceVal.Kind() != reflect.Slice {
		return errors.Errorf("results argument must be a pointer to a slice, but was pointer to %s", sliceVal.Kind())
	}

	elemType := sliceVal.Type().Elem()
	index := 0
	defer c.Close(ctx)

	for c.Next(ctx) {
		if index >= sliceVal.Len() {
			sliceVal = reflect.Append(sliceVal, reflect.New(elemType).Elem())
		}
		elem := sliceVal.Index(index).Addr().Interface()
		if err := c.Decode(elem); err != nil {
			return err
		}
		index++
	}
	if err := c.Err(); err != nil {
		return err
	}

	resultsVal.Elem().Set(sliceVal.Slice(0, index))
	return nil
}
