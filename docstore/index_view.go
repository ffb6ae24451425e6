// Copyright (C) Docstore, Inc. 2018-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package docstore

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsoncodec"
	"go.mongodb.org/mongo-driver/bson/bsontype"

	"github.com/docstore/go-driver/docstore/options"
	"github.com/docstore/go-driver/driver"
)

// IndexView is used to create, drop, and list the indexes of a collection.
type IndexView struct {
	coll *Collection
}

// IndexModel describes an index to create: the keys document and the
// per-index options.
type IndexModel struct {
	Keys    interface{}
	Options *options.IndexOptions
}

// List returns a cursor over the index descriptions of the collection.
func (iv IndexView) List(ctx context.Context, opts ...*options.ListIndexesOptions) (*Cursor, error) {
	sess, err := validSession(ctx)
	if err != nil {
		return nil, err
	}

	liOpts := options.MergeListIndexesOptions(opts...)
	op := driver.ListIndexes{NS: iv.coll.namespace()}
	if liOpts.BatchSize != nil {
		op.BatchSize = *liOpts.BatchSize
	}
	if liOpts.MaxTime != nil {
		op.MaxTime = *liOpts.MaxTime
	}

	res, err := iv.coll.executeOperation(ctx, sess, op, iv.coll.readPreference)
	if err != nil {
		return nil, err
	}
	return newCursor(res.(driver.BatchCursor), iv.coll.registry), nil
}

// CreateOne creates a single index described by model and returns its name.
func (iv IndexView) CreateOne(ctx context.Context, model IndexModel,
	opts ...*options.CreateIndexesOptions) (string, error) {

	names, err := iv.CreateMany(ctx, []IndexModel{model}, opts...)
	if err != nil {
		return "", err
	}
	return names[0], nil
}

// CreateMany creates the indexes described by models and returns their names
// in input order. An index without a name option gets one generated from its
// keys.
func (iv IndexView) CreateMany(ctx context.Context, models []IndexModel,
	opts ...*options.CreateIndexesOptions) ([]string, error) {

	sess, err := validSession(ctx)
	if err != nil {
		return nil, err
	}
	if len(models) == 0 {
		return nil, ErrEmptySlice
	}

	names := make([]string, 0, len(models))
	indexes := make([]bson.Raw, 0, len(models))
	for _, model := range models {
		if model.Keys == nil {
			return nil, ErrNilDocument
		}
		keys, err := transformDocument(iv.coll.registry, model.Keys)
		if err != nil {
			return nil, err
		}
		name, err := getOrGenerateIndexName(keys, model)
		if err != nil {
			return nil, err
		}
		names = append(names, name)

		index, err := buildIndexSpec(iv.coll.registry, keys, name, model.Options)
		if err != nil {
			return nil, err
		}
		indexes = append(indexes, index)
	}

	ciOpts := options.MergeCreateIndexesOptions(opts...)
	op := driver.CreateIndexes{
		NS:           iv.coll.namespace(),
		Indexes:      indexes,
		WriteConcern: iv.coll.writeConcern,
	}
	if ciOpts.MaxTime != nil {
		op.MaxTime = *ciOpts.MaxTime
	}

	if _, err = iv.coll.executeOperation(ctx, sess, op, nil); err != nil {
		return nil, err
	}
	return names, nil
}

// DropOne drops the index with the given name. The wildcard name "*" is
// rejected; dropping every index is only available through DropAll.
func (iv IndexView) DropOne(ctx context.Context, name string,
	opts ...*options.DropIndexesOptions) error {

	if name == "*" {
		return ErrMultipleIndexDrop
	}
	return iv.drop(ctx, name, opts...)
}

// DropWithKey drops the index identified by its key specification document.
func (iv IndexView) DropWithKey(ctx context.Context, keys interface{},
	opts ...*options.DropIndexesOptions) error {

	keysDoc, err := transformDocument(iv.coll.registry, keys)
	if err != nil {
		return err
	}
	return iv.drop(ctx, keysDoc, opts...)
}

// DropAll drops every index of the collection except the one on _id.
func (iv IndexView) DropAll(ctx context.Context, opts ...*options.DropIndexesOptions) error {
	return iv.drop(ctx, "*", opts...)
}

func (iv IndexView) drop(ctx context.Context, index interface{},
	opts ...*options.DropIndexesOptions) error {

	sess, err := validSession(ctx)
	if err != nil {
		return err
	}

	diOpts := options.MergeDropIndexesOptions(opts...)
	op := driver.DropIndex{
		NS:           iv.coll.namespace(),
		Index:        index,
		WriteConcern: iv.coll.writeConcern,
	}
	if diOpts.MaxTime != nil {
		op.MaxTime = *diOpts.MaxTime
	}

	_, err = iv.coll.executeOperation(ctx, sess, op, nil)
	return err
}

// buildIndexSpec assembles the index specification document the server
// expects for one index of a createIndexes command.
func buildIndexSpec(registry *bsoncodec.Registry, keys bson.Raw, name string, io *options.IndexOptions) (bson.Raw, error) {
	spec := bson.D{
		{Key: "key", Value: keys},
		{Key: "name", Value: name},
	}
	if io == nil {
		return transformDocument(registry, spec)
	}
	if io.Background != nil {
		spec = append(spec, bson.E{Key: "background", Value: *io.Background})
	}
	if io.ExpireAfterSeconds != nil {
		spec = append(spec, bson.E{Key: "expireAfterSeconds", Value: *io.ExpireAfterSeconds})
	}
	if io.Sparse != nil {
		spec = append(spec, bson.E{Key: "sparse", Value: *io.Sparse})
	}
	if io.StorageEngine != nil {
		spec = append(spec, bson.E{Key: "storageEngine", Value: io.StorageEngine})
	}
	if io.Unique != nil {
		spec = append(spec, bson.E{Key: "unique", Value: *io.Unique})
	}
	if io.Version != nil {
		spec = append(spec, bson.E{Key: "v", Value: *io.Version})
	}
	if io.DefaultLanguage != nil {
		spec = append(spec, bson.E{Key: "default_language", Value: *io.DefaultLanguage})
	}
	if io.LanguageOverride != nil {
		spec = append(spec, bson.E{Key: "language_override", Value: *io.LanguageOverride})
	}
	if io.TextVersion != nil {
		spec = append(spec, bson.E{Key: "textIndexVersion", Value: *io.TextVersion})
	}
	if io.Weights != nil {
		spec = append(spec, bson.E{Key: "weights", Value: io.Weights})
	}
	if io.SphereVersion != nil {
		spec = append(spec, bson.E{Key: "2dsphereIndexVersion", Value: *io.SphereVersion})
	}
	if io.Bits != nil {
		spec = append(spec, bson.E{Key: "bits", Value: *io.Bits})
	}
	if io.Max != nil {
		spec = append(spec, bson.E{Key: "max", Value: *io.Max})
	}
	if io.Min != nil {
		spec = append(spec, bson.E{Key: "min", Value: *io.Min})
	}
	if io.BucketSize != nil {
		spec = append(spec, bson.E{Key: "bucketSize", Value: *io.BucketSize})
	}
	if io.PartialFilterExpression != nil {
		spec = append(spec, bson.E{Key: "partialFilterExpression", Value: io.PartialFilterExpression})
	}
	if io.Collation != nil {
		spec = append(spec, bson.E{Key: "collation", Value: io.Collation.ToDocument()})
	}
	return transformDocument(registry, spec)
}

// getOrGenerateIndexName returns the name from the model's options, or
// generates one by joining each key and its value with underscores.
func getOrGenerateIndexName(keys bson.Raw, model IndexModel) (string, error) {
	if model.Options != nil && model.Options.Name != nil {
		return *model.Options.Name, nil
	}

	elems, err := keys.Elements()
	if err != nil {
		return "", err
	}

	var name strings.Builder
	for i, elem := range elems {
		if i > 0 {
			name.WriteRune('_')
		}
		name.WriteString(elem.Key())
		name.WriteRune('_')

		val := elem.Value()
		switch val.Type {
		case bsontype.Int32:
			fmt.Fprintf(&name, "%d", val.Int32())
		case bsontype.Int64:
			fmt.Fprintf(&name, "%d", val.Int64())
		case bsontype.String:
			name.WriteString(val.StringValue())
		default:
			return "", ErrInvalidIndexValue
		}
	}
	return name.String(), nil
}
