// Copyright (C) Docstore, Inc. 2018-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package docstore

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsoncodec"
	"go.mongodb.org/mongo-driver/mongo/readconcern"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"

	"github.com/docstore/go-driver/docstore/options"
	"github.com/docstore/go-driver/driver"
	"github.com/docstore/go-driver/event"
)

// Collection performs operations on a given collection. A Collection is
// immutable: the With and Clone methods return reconfigured copies and the
// original keeps serving operations with its own configuration, so a handle
// may be shared freely across goroutines.
type Collection struct {
	db             *Database
	name           string
	readConcern    *readconcern.ReadConcern
	writeConcern   *writeconcern.WriteConcern
	readPreference *readpref.ReadPref
	registry       *bsoncodec.Registry
	retryWrites    bool
	monitor        *event.OperationMonitor
	executor       driver.Executor
}

func newCollection(db *Database, name string, opts ...*options.CollectionOptions) *Collection {
	collOpt := options.MergeCollectionOptions(opts...)

	rc := db.readConcern
	if collOpt.ReadConcern != nil {
		rc = collOpt.ReadConcern
	}

	wc := db.writeConcern
	if collOpt.WriteConcern != nil {
		wc = collOpt.WriteConcern
	}

	rp := db.readPreference
	if collOpt.ReadPreference != nil {
		rp = collOpt.ReadPreference
	}

	reg := db.registry
	if collOpt.Registry != nil {
		reg = collOpt.Registry
	}

	return &Collection{
		db:             db,
		name:           name,
		readConcern:    rc,
		writeConcern:   wc,
		readPreference: rp,
		registry:       reg,
		retryWrites:    db.retryWrites,
		monitor:        db.monitor,
		executor:       db.executor,
	}
}

func (coll *Collection) copy() *Collection {
	return &Collection{
		db:             coll.db,
		name:           coll.name,
		readConcern:    coll.readConcern,
		writeConcern:   coll.writeConcern,
		readPreference: coll.readPreference,
		registry:       coll.registry,
		retryWrites:    coll.retryWrites,
		monitor:        coll.monitor,
		executor:       coll.executor,
	}
}

// Clone creates a copy of this collection with updated options, if any are
// given.
func (coll *Collection) Clone(opts ...*options.CollectionOptions) (*Collection, error) {
	copyColl := coll.copy()
	optsColl := options.MergeCollectionOptions(opts...)

	if optsColl.ReadConcern != nil {
		copyColl.readConcern = optsColl.ReadConcern
	}
	if optsColl.WriteConcern != nil {
		copyColl.writeConcern = optsColl.WriteConcern
	}
	if optsColl.ReadPreference != nil {
		copyColl.readPreference = optsColl.ReadPreference
	}
	if optsColl.Registry != nil {
		copyColl.registry = optsColl.Registry
	}
	return copyColl, nil
}

// WithReadConcern returns a copy of the collection that uses rc.
func (coll *Collection) WithReadConcern(rc *readconcern.ReadConcern) *Collection {
	copyColl := coll.copy()
	copyColl.readConcern = rc
	return copyColl
}

// WithWriteConcern returns a copy of the collection that uses wc.
func (coll *Collection) WithWriteConcern(wc *writeconcern.WriteConcern) *Collection {
	copyColl := coll.copy()
	copyColl.writeConcern = wc
	return copyColl
}

// WithReadPreference returns a copy of the collection that uses rp.
func (coll *Collection) WithReadPreference(rp *readpref.ReadPref) *Collection {
	copyColl := coll.copy()
	copyColl.readPreference = rp
	return copyColl
}

// WithRegistry returns a copy of the collection that uses registry.
func (coll *Collection) WithRegistry(registry *bsoncodec.Registry) *Collection {
	copyColl := coll.copy()
	copyColl.registry = registry
	return copyColl
}

// Name returns the name of the collection.
func (coll *Collection) Name() string { return coll.name }

// Database returns the database the collection belongs to.
func (coll *Collection) Database() *Database { return coll.db }

// ReadConcern returns the read concern of the collection.
func (coll *Collection) ReadConcern() *readconcern.ReadConcern { return coll.readConcern }

// WriteConcern returns the write concern of the collection.
func (coll *Collection) WriteConcern() *writeconcern.WriteConcern { return coll.writeConcern }

// ReadPreference returns the read preference of the collection.
func (coll *Collection) ReadPreference() *readpref.ReadPref { return coll.readPreference }

func (coll *Collection) namespace() driver.Namespace {
	return driver.NewNamespace(coll.db.name, coll.name)
}

// executeOperation is the single choke point between the collection API and
// the executor. Every operation passes through here exactly once, wrapped in
// monitor events when a monitor is configured.
func (coll *Collection) executeOperation(ctx context.Context, sess *driver.Session,
	op driver.Operation, rp *readpref.ReadPref) (interface{}, error) {

	if ctx == nil {
		ctx = context.Background()
	}

	if coll.monitor != nil && coll.monitor.Started != nil {
		coll.monitor.Started(ctx, &event.OperationStartedEvent{
			OperationName:  op.Name(),
			DatabaseName:   coll.db.name,
			CollectionName: coll.name,
		})
	}

	start := time.Now()
	res, err := coll.executor.Execute(ctx, op, rp, sess)
	duration := time.Since(start)

	if coll.monitor != nil {
		if err != nil {
			if coll.monitor.Failed != nil {
				coll.monitor.Failed(ctx, &event.OperationFailedEvent{
					OperationName:  op.Name(),
					DatabaseName:   coll.db.name,
					CollectionName: coll.name,
					Duration:       duration,
					Failure:        err,
				})
			}
		} else if coll.monitor.Succeeded != nil {
			coll.monitor.Succeeded(ctx, &event.OperationSucceededEvent{
				OperationName:  op.Name(),
				DatabaseName:   coll.db.name,
				CollectionName: coll.name,
				Duration:       duration,
			})
		}
	}

	return res, err
}

// executeSingleWriteRequest runs req as an ordered single-request batch and
// translates the bulk-shaped outcome back into single-write terms.
func (coll *Collection) executeSingleWriteRequest(ctx context.Context, sess *driver.Session,
	req driver.WriteRequest, bypass *bool) (driver.BulkWriteResult, error) {

	op := driver.MixedBulkWrite{
		NS:                       coll.namespace(),
		Requests:                 []driver.WriteRequest{req},
		Ordered:                  true,
		WriteConcern:             coll.writeConcern,
		RetryWrites:              coll.retryWrites,
		BypassDocumentValidation: bypass,
	}
	res, err := coll.executeOperation(ctx, sess, op, nil)
	if err != nil {
		return driver.BulkWriteResult{}, processWriteException(req, err)
	}
	return res.(driver.BulkWriteResult), nil
}

// BulkWrite performs the given write models in a single batch. By default the
// models run in order and execution stops at the first failure; SetOrdered
// false lets the executor run the remaining models past failures.
func (coll *Collection) BulkWrite(ctx context.Context, models []WriteModel,
	opts ...*options.BulkWriteOptions) (*BulkWriteResult, error) {

	sess, err := validSession(ctx)
	if err != nil {
		return nil, err
	}

	requests, insertedIDs, err := translateWriteModels(coll.registry, models)
	if err != nil {
		return nil, err
	}

	bwOpts := options.MergeBulkWriteOptions(opts...)
	op := driver.MixedBulkWrite{
		NS:                       coll.namespace(),
		Requests:                 requests,
		Ordered:                  *bwOpts.Ordered,
		WriteConcern:             coll.writeConcern,
		RetryWrites:              coll.retryWrites,
		BypassDocumentValidation: bwOpts.BypassDocumentValidation,
	}
	res, err := coll.executeOperation(ctx, sess, op, nil)
	if err != nil {
		return nil, err
	}
	return newBulkWriteResult(res.(driver.BulkWriteResult), insertedIDs), nil
}

// InsertOne inserts a single document into the collection. A document without
// an _id gets a generated ObjectID, which is reported through the result and,
// for map and Collectible documents, written back into the document.
func (coll *Collection) InsertOne(ctx context.Context, document interface{},
	opts ...*options.InsertOneOptions) (*InsertOneResult, error) {

	sess, err := validSession(ctx)
	if err != nil {
		return nil, err
	}

	doc, id, err := transformAndEnsureID(coll.registry, document)
	if err != nil {
		return nil, err
	}

	ioOpts := options.MergeInsertOneOptions(opts...)
	req := driver.InsertRequest{Document: doc}
	if _, err = coll.executeSingleWriteRequest(ctx, sess, req, ioOpts.BypassDocumentValidation); err != nil {
		return nil, err
	}
	return &InsertOneResult{InsertedID: id}, nil
}

// InsertMany inserts the given documents in a single batch. On a partial
// failure the returned error is the executor's bulk write exception and the
// result still carries the ids assigned to every document.
func (coll *Collection) InsertMany(ctx context.Context, documents []interface{},
	opts ...*options.InsertManyOptions) (*InsertManyResult, error) {

	sess, err := validSession(ctx)
	if err != nil {
		return nil, err
	}
	if len(documents) == 0 {
		return nil, ErrEmptySlice
	}
	for _, doc := range documents {
		if doc == nil {
			return nil, ErrNilDocument
		}
	}

	requests := make([]driver.WriteRequest, 0, len(documents))
	ids := make([]interface{}, 0, len(documents))
	for _, document := range documents {
		doc, id, err := transformAndEnsureID(coll.registry, document)
		if err != nil {
			return nil, err
		}
		requests = append(requests, driver.InsertRequest{Document: doc})
		ids = append(ids, id)
	}

	imOpts := options.MergeInsertManyOptions(opts...)
	op := driver.MixedBulkWrite{
		NS:                       coll.namespace(),
		Requests:                 requests,
		Ordered:                  *imOpts.Ordered,
		WriteConcern:             coll.writeConcern,
		RetryWrites:              coll.retryWrites,
		BypassDocumentValidation: imOpts.BypassDocumentValidation,
	}
	if _, err = coll.executeOperation(ctx, sess, op, nil); err != nil {
		return &InsertManyResult{InsertedIDs: ids}, err
	}
	return &InsertManyResult{InsertedIDs: ids}, nil
}

func (coll *Collection) delete(ctx context.Context, filter interface{}, multi bool,
	opts ...*options.DeleteOptions) (*DeleteResult, error) {

	sess, err := validSession(ctx)
	if err != nil {
		return nil, err
	}

	f, err := transformDocument(coll.registry, filter)
	if err != nil {
		return nil, err
	}

	delOpts := options.MergeDeleteOptions(opts...)
	req := driver.DeleteRequest{Filter: f, Multi: multi, Collation: collationToRaw(delOpts.Collation)}
	res, err := coll.executeSingleWriteRequest(ctx, sess, req, nil)
	if err != nil {
		return nil, err
	}
	return newDeleteResult(res), nil
}

// DeleteOne deletes at most one document matching the filter.
func (coll *Collection) DeleteOne(ctx context.Context, filter interface{},
	opts ...*options.DeleteOptions) (*DeleteResult, error) {
	return coll.delete(ctx, filter, false, opts...)
}

// DeleteMany deletes every document matching the filter.
func (coll *Collection) DeleteMany(ctx context.Context, filter interface{},
	opts ...*options.DeleteOptions) (*DeleteResult, error) {
	return coll.delete(ctx, filter, true, opts...)
}

func (coll *Collection) update(ctx context.Context, filter, update interface{}, multi bool,
	opts ...*options.UpdateOptions) (*UpdateResult, error) {

	sess, err := validSession(ctx)
	if err != nil {
		return nil, err
	}

	f, err := transformDocument(coll.registry, filter)
	if err != nil {
		return nil, err
	}
	u, err := transformDocument(coll.registry, update)
	if err != nil {
		return nil, err
	}
	if err := ensureDollarKey(u); err != nil {
		return nil, err
	}

	updOpts := options.MergeUpdateOptions(opts...)
	var af []bson.Raw
	if updOpts.ArrayFilters != nil {
		af, err = transformDocuments(coll.registry, updOpts.ArrayFilters)
		if err != nil {
			return nil, err
		}
	}

	req := driver.UpdateRequest{
		Filter:       f,
		Update:       u,
		Type:         driver.KindUpdate,
		Multi:        multi,
		Upsert:       updOpts.Upsert != nil && *updOpts.Upsert,
		Collation:    collationToRaw(updOpts.Collation),
		ArrayFilters: af,
	}
	res, err := coll.executeSingleWriteRequest(ctx, sess, req, updOpts.BypassDocumentValidation)
	if err != nil {
		return nil, err
	}
	return newUpdateResult(res), nil
}

// UpdateOne applies the update document to at most one document matching the
// filter.
func (coll *Collection) UpdateOne(ctx context.Context, filter, update interface{},
	opts ...*options.UpdateOptions) (*UpdateResult, error) {
	return coll.update(ctx, filter, update, false, opts...)
}

// UpdateMany applies the update document to every document matching the
// filter.
func (coll *Collection) UpdateMany(ctx context.Context, filter, update interface{},
	opts ...*options.UpdateOptions) (*UpdateResult, error) {
	return coll.update(ctx, filter, update, true, opts...)
}

// ReplaceOne replaces at most one document matching the filter with the
// replacement document, which must not contain update operators.
func (coll *Collection) ReplaceOne(ctx context.Context, filter, replacement interface{},
	opts ...*options.ReplaceOptions) (*UpdateResult, error) {

	sess, err := validSession(ctx)
	if err != nil {
		return nil, err
	}

	f, err := transformDocument(coll.registry, filter)
	if err != nil {
		return nil, err
	}
	r, err := transformDocument(coll.registry, replacement)
	if err != nil {
		return nil, err
	}
	if err := ensureNoDollarKey(r); err != nil {
		return nil, err
	}

	repOpts := options.MergeReplaceOptions(opts...)
	req := driver.UpdateRequest{
		Filter:    f,
		Update:    r,
		Type:      driver.KindReplace,
		Upsert:    repOpts.Upsert != nil && *repOpts.Upsert,
		Collation: collationToRaw(repOpts.Collation),
	}
	res, err := coll.executeSingleWriteRequest(ctx, sess, req, repOpts.BypassDocumentValidation)
	if err != nil {
		return nil, err
	}
	return newUpdateResult(res), nil
}

// Count returns the number of documents matching the filter. A nil filter
// counts every document in the collection.
func (coll *Collection) Count(ctx context.Context, filter interface{},
	opts ...*options.CountOptions) (int64, error) {

	sess, err := validSession(ctx)
	if err != nil {
		return 0, err
	}

	f, err := transformFilter(coll.registry, filter)
	if err != nil {
		return 0, err
	}

	countOpts := options.MergeCountOptions(opts...)
	op := driver.Count{
		NS:          coll.namespace(),
		Filter:      f,
		Collation:   collationToRaw(countOpts.Collation),
		Hint:        countOpts.Hint,
		ReadConcern: coll.readConcern,
	}
	if countOpts.Skip != nil {
		op.Skip = *countOpts.Skip
	}
	if countOpts.Limit != nil {
		op.Limit = *countOpts.Limit
	}
	if countOpts.MaxTime != nil {
		op.MaxTime = *countOpts.MaxTime
	}

	res, err := coll.executeOperation(ctx, sess, op, coll.readPreference)
	if err != nil {
		return 0, err
	}
	return res.(int64), nil
}

// Distinct returns the distinct values of the given field across the
// documents matching the filter. A nil filter matches every document.
func (coll *Collection) Distinct(ctx context.Context, fieldName string, filter interface{},
	opts ...*options.DistinctOptions) ([]interface{}, error) {

	sess, err := validSession(ctx)
	if err != nil {
		return nil, err
	}

	f, err := transformFilter(coll.registry, filter)
	if err != nil {
		return nil, err
	}

	distinctOpts := options.MergeDistinctOptions(opts...)
	op := driver.Distinct{
		NS:          coll.namespace(),
		FieldName:   fieldName,
		Filter:      f,
		Collation:   collationToRaw(distinctOpts.Collation),
		ReadConcern: coll.readConcern,
	}
	if distinctOpts.MaxTime != nil {
		op.MaxTime = *distinctOpts.MaxTime
	}

	res, err := coll.executeOperation(ctx, sess, op, coll.readPreference)
	if err != nil {
		return nil, err
	}

	arr := res.(bson.RawValue).Array()
	vals, err := arr.Values()
	if err != nil {
		return nil, err
	}
	retArray := make([]interface{}, 0, len(vals))
	for _, val := range vals {
		var elem interface{}
		if err := val.UnmarshalWithRegistry(coll.registry, &elem); err != nil {
			return nil, err
		}
		retArray = append(retArray, elem)
	}
	return retArray, nil
}

func (coll *Collection) buildFind(f bson.Raw, fo *options.FindOptions) (driver.Find, error) {
	op := driver.Find{
		NS:          coll.namespace(),
		Filter:      f,
		Collation:   collationToRaw(fo.Collation),
		Hint:        fo.Hint,
		ReadConcern: coll.readConcern,
	}
	if fo.Sort != nil {
		sort, err := transformDocument(coll.registry, fo.Sort)
		if err != nil {
			return driver.Find{}, err
		}
		op.Sort = sort
	}
	if fo.Projection != nil {
		proj, err := transformDocument(coll.registry, fo.Projection)
		if err != nil {
			return driver.Find{}, err
		}
		op.Projection = proj
	}
	if fo.Skip != nil {
		op.Skip = *fo.Skip
	}
	if fo.Limit != nil {
		op.Limit = *fo.Limit
	}
	if fo.BatchSize != nil {
		op.BatchSize = *fo.BatchSize
	}
	if fo.MaxTime != nil {
		op.MaxTime = *fo.MaxTime
	}
	if fo.AllowPartialResults != nil {
		op.AllowPartialResults = *fo.AllowPartialResults
	}
	if fo.NoCursorTimeout != nil {
		op.NoCursorTimeout = *fo.NoCursorTimeout
	}
	return op, nil
}

// Find returns a cursor over the documents matching the filter. A nil filter
// matches every document.
func (coll *Collection) Find(ctx context.Context, filter interface{},
	opts ...*options.FindOptions) (*Cursor, error) {

	sess, err := validSession(ctx)
	if err != nil {
		return nil, err
	}

	f, err := transformFilter(coll.registry, filter)
	if err != nil {
		return nil, err
	}

	op, err := coll.buildFind(f, options.MergeFindOptions(opts...))
	if err != nil {
		return nil, err
	}

	res, err := coll.executeOperation(ctx, sess, op, coll.readPreference)
	if err != nil {
		return nil, err
	}
	return newCursor(res.(driver.BatchCursor), coll.registry), nil
}

// FindOne returns at most one document matching the filter.
func (coll *Collection) FindOne(ctx context.Context, filter interface{},
	opts ...*options.FindOneOptions) *SingleResult {

	sess, err := validSession(ctx)
	if err != nil {
		return &SingleResult{err: err}
	}

	f, err := transformFilter(coll.registry, filter)
	if err != nil {
		return &SingleResult{err: err}
	}

	foOpts := options.MergeFindOneOptions(opts...)
	findOpts := options.Find()
	findOpts.Collation = foOpts.Collation
	findOpts.MaxTime = foOpts.MaxTime
	findOpts.Projection = foOpts.Projection
	findOpts.Skip = foOpts.Skip
	findOpts.Sort = foOpts.Sort
	findOpts.SetLimit(1)

	op, err := coll.buildFind(f, findOpts)
	if err != nil {
		return &SingleResult{err: err}
	}

	res, err := coll.executeOperation(ctx, sess, op, coll.readPreference)
	if err != nil {
		return &SingleResult{err: err}
	}

	cur := newCursor(res.(driver.BatchCursor), coll.registry)
	defer cur.Close(ctx)
	if !cur.Next(ctx) {
		if err := cur.Err(); err != nil {
			return &SingleResult{err: err}
		}
		return &SingleResult{registry: coll.registry}
	}
	return &SingleResult{rdr: cur.Current, registry: coll.registry}
}

// Aggregate runs an aggregation pipeline over the collection. When the final
// stage writes its results to a collection the operation runs as a write:
// the collection's write concern applies and no read preference is sent.
func (coll *Collection) Aggregate(ctx context.Context, pipeline interface{},
	opts ...*options.AggregateOptions) (*Cursor, error) {

	sess, err := validSession(ctx)
	if err != nil {
		return nil, err
	}

	stages, writing, err := transformAggregatePipeline(coll.registry, pipeline)
	if err != nil {
		return nil, err
	}

	aggOpts := options.MergeAggregateOptions(opts...)
	op := driver.Aggregate{
		NS:                       coll.namespace(),
		Pipeline:                 stages,
		AllowDiskUse:             aggOpts.AllowDiskUse,
		BypassDocumentValidation: aggOpts.BypassDocumentValidation,
		Collation:                collationToRaw(aggOpts.Collation),
		Hint:                     aggOpts.Hint,
		ReadConcern:              coll.readConcern,
	}
	if aggOpts.BatchSize != nil {
		op.BatchSize = *aggOpts.BatchSize
	}
	if aggOpts.MaxTime != nil {
		op.MaxTime = *aggOpts.MaxTime
	}
	if aggOpts.Comment != nil {
		op.Comment = *aggOpts.Comment
	}

	rp := coll.readPreference
	if writing {
		op.WriteConcern = coll.writeConcern
		rp = nil
	}

	res, err := coll.executeOperation(ctx, sess, op, rp)
	if err != nil {
		return nil, err
	}
	return newCursor(res.(driver.BatchCursor), coll.registry), nil
}

// Watch opens a change stream over the collection. A nil pipeline watches
// every change.
func (coll *Collection) Watch(ctx context.Context, pipeline interface{},
	opts ...*options.ChangeStreamOptions) (*ChangeStream, error) {

	sess, err := validSession(ctx)
	if err != nil {
		return nil, err
	}

	if pipeline == nil {
		pipeline = bson.A{}
	}
	stages, _, err := transformAggregatePipeline(coll.registry, pipeline)
	if err != nil {
		return nil, err
	}

	csOpts := options.MergeChangeStreamOptions(opts...)
	op := driver.ChangeStream{
		NS:          coll.namespace(),
		Pipeline:    stages,
		Collation:   collationToRaw(csOpts.Collation),
		ReadConcern: coll.readConcern,
	}
	if csOpts.FullDocument != nil {
		op.FullDocument = string(*csOpts.FullDocument)
	}
	if csOpts.ResumeAfter != nil {
		token, err := transformDocument(coll.registry, csOpts.ResumeAfter)
		if err != nil {
			return nil, err
		}
		op.ResumeAfter = token
	}
	if csOpts.MaxAwaitTime != nil {
		op.MaxAwaitTime = *csOpts.MaxAwaitTime
	}
	if csOpts.BatchSize != nil {
		op.BatchSize = *csOpts.BatchSize
	}

	res, err := coll.executeOperation(ctx, sess, op, coll.readPreference)
	if err != nil {
		return nil, err
	}
	return &ChangeStream{cursor: newCursor(res.(driver.BatchCursor), coll.registry)}, nil
}

// MapReduce runs the given javascript map and reduce functions over the
// collection and returns a cursor over the reduced results.
func (coll *Collection) MapReduce(ctx context.Context, mapFn, reduceFn string,
	opts ...*options.MapReduceOptions) (*Cursor, error) {

	sess, err := validSession(ctx)
	if err != nil {
		return nil, err
	}

	mrOpts := options.MergeMapReduceOptions(opts...)
	op := driver.MapReduce{
		NS:             coll.namespace(),
		MapFunction:    mapFn,
		ReduceFunction: reduceFn,
		ReadConcern:    coll.readConcern,
	}
	if mrOpts.Filter != nil {
		f, err := transformDocument(coll.registry, mrOpts.Filter)
		if err != nil {
			return nil, err
		}
		op.Filter = f
	}
	if mrOpts.Sort != nil {
		sort, err := transformDocument(coll.registry, mrOpts.Sort)
		if err != nil {
			return nil, err
		}
		op.Sort = sort
	}
	if mrOpts.Limit != nil {
		op.Limit = *mrOpts.Limit
	}
	if mrOpts.MaxTime != nil {
		op.MaxTime = *mrOpts.MaxTime
	}

	res, err := coll.executeOperation(ctx, sess, op, coll.readPreference)
	if err != nil {
		return nil, err
	}
	return newCursor(res.(driver.BatchCursor), coll.registry), nil
}

func (coll *Collection) executeFindAndModify(ctx context.Context, sess *driver.Session,
	op driver.Operation) *SingleResult {

	res, err := coll.executeOperation(ctx, sess, op, nil)
	if err != nil {
		return &SingleResult{err: err}
	}

	fam := res.(driver.FindAndModifyResult)
	if fam.WriteConcernError != nil {
		wce := fam.WriteConcernError
		return &SingleResult{err: WriteConcernError{Code: wce.Code, Message: wce.Message, Details: wce.Details}}
	}
	return &SingleResult{rdr: fam.Value, registry: coll.registry}
}

// FindOneAndDelete atomically finds one document matching the filter and
// deletes it, returning the document as it was before the deletion.
func (coll *Collection) FindOneAndDelete(ctx context.Context, filter interface{},
	opts ...*options.FindOneAndDeleteOptions) *SingleResult {

	sess, err := validSession(ctx)
	if err != nil {
		return &SingleResult{err: err}
	}

	f, err := transformDocument(coll.registry, filter)
	if err != nil {
		return &SingleResult{err: err}
	}

	fodOpts := options.MergeFindOneAndDeleteOptions(opts...)
	op := driver.FindAndDelete{
		NS:           coll.namespace(),
		Filter:       f,
		Collation:    collationToRaw(fodOpts.Collation),
		WriteConcern: coll.writeConcern,
		RetryWrites:  coll.retryWrites,
	}
	if fodOpts.Sort != nil {
		sort, err := transformDocument(coll.registry, fodOpts.Sort)
		if err != nil {
			return &SingleResult{err: err}
		}
		op.Sort = sort
	}
	if fodOpts.Projection != nil {
		proj, err := transformDocument(coll.registry, fodOpts.Projection)
		if err != nil {
			return &SingleResult{err: err}
		}
		op.Projection = proj
	}
	if fodOpts.MaxTime != nil {
		op.MaxTime = *fodOpts.MaxTime
	}

	return coll.executeFindAndModify(ctx, sess, op)
}

// FindOneAndReplace atomically finds one document matching the filter and
// replaces it. By default the document as it was before the replacement is
// returned; SetReturnDocument(After) returns the replaced document instead.
func (coll *Collection) FindOneAndReplace(ctx context.Context, filter, replacement interface{},
	opts ...*options.FindOneAndReplaceOptions) *SingleResult {

	sess, err := validSession(ctx)
	if err != nil {
		return &SingleResult{err: err}
	}

	f, err := transformDocument(coll.registry, filter)
	if err != nil {
		return &SingleResult{err: err}
	}
	r, err := transformDocument(coll.registry, replacement)
	if err != nil {
		return &SingleResult{err: err}
	}
	if err := ensureNoDollarKey(r); err != nil {
		return &SingleResult{err: err}
	}

	forOpts := options.MergeFindOneAndReplaceOptions(opts...)
	op := driver.FindAndReplace{
		NS:                       coll.namespace(),
		Filter:                   f,
		Replacement:              r,
		ReturnOriginal:           forOpts.ReturnDocument == nil || *forOpts.ReturnDocument == options.Before,
		Upsert:                   forOpts.Upsert != nil && *forOpts.Upsert,
		Collation:                collationToRaw(forOpts.Collation),
		BypassDocumentValidation: forOpts.BypassDocumentValidation,
		WriteConcern:             coll.writeConcern,
		RetryWrites:              coll.retryWrites,
	}
	if forOpts.Sort != nil {
		sort, err := transformDocument(coll.registry, forOpts.Sort)
		if err != nil {
			return &SingleResult{err: err}
		}
		op.Sort = sort
	}
	if forOpts.Projection != nil {
		proj, err := transformDocument(coll.registry, forOpts.Projection)
		if err != nil {
			return &SingleResult{err: err}
		}
		op.Projection = proj
	}
	if forOpts.MaxTime != nil {
		op.MaxTime = *forOpts.MaxTime
	}

	return coll.executeFindAndModify(ctx, sess, op)
}

// FindOneAndUpdate atomically finds one document matching the filter and
// applies the update document to it. By default the document as it was before
// the update is returned; SetReturnDocument(After) returns the updated
// document instead.
func (coll *Collection) FindOneAndUpdate(ctx context.Context, filter, update interface{},
	opts ...*options.FindOneAndUpdateOptions) *SingleResult {

	sess, err := validSession(ctx)
	if err != nil {
		return &SingleResult{err: err}
	}

	f, err := transformDocument(coll.registry, filter)
	if err != nil {
		return &SingleResult{err: err}
	}
	u, err := transformDocument(coll.registry, update)
	if err != nil {
		return &SingleResult{err: err}
	}
	if err := ensureDollarKey(u); err != nil {
		return &SingleResult{err: err}
	}

	fouOpts := options.MergeFindOneAndUpdateOptions(opts...)
	op := driver.FindAndUpdate{
		NS:                       coll.namespace(),
		Filter:                   f,
		Update:                   u,
		ReturnOriginal:           fouOpts.ReturnDocument == nil || *fouOpts.ReturnDocument == options.Before,
		Upsert:                   fouOpts.Upsert != nil && *fouOpts.Upsert,
		Collation:                collationToRaw(fouOpts.Collation),
		BypassDocumentValidation: fouOpts.BypassDocumentValidation,
		WriteConcern:             coll.writeConcern,
		RetryWrites:              coll.retryWrites,
	}
	if fouOpts.ArrayFilters != nil {
		af, err := transformDocuments(coll.registry, fouOpts.ArrayFilters)
		if err != nil {
			return &SingleResult{err: err}
		}
		op.ArrayFilters = af
	}
	if fouOpts.Sort != nil {
		sort, err := transformDocument(coll.registry, fouOpts.Sort)
		if err != nil {
			return &SingleResult{err: err}
		}
		op.Sort = sort
	}
	if fouOpts.Projection != nil {
		proj, err := transformDocument(coll.registry, fouOpts.Projection)
		if err != nil {
			return &SingleResult{err: err}
		}
		op.Projection = proj
	}
	if fouOpts.MaxTime != nil {
		op.MaxTime = *fouOpts.MaxTime
	}

	return coll.executeFindAndModify(ctx, sess, op)
}

// Drop drops the collection. Dropping a collection that does not exist is not
// an error.
func (coll *Collection) Drop(ctx context.Context) error {
	sess, err := validSession(ctx)
	if err != nil {
		return err
	}

	op := driver.DropCollection{NS: coll.namespace(), WriteConcern: coll.writeConcern}
	_, err = coll.executeOperation(ctx, sess, op, nil)
	return err
}

// Rename renames the collection within its database. The handle keeps its
// original name; obtain a new handle for the renamed collection from the
// database.
func (coll *Collection) Rename(ctx context.Context, newName string,
	opts ...*options.RenameOptions) error {

	sess, err := validSession(ctx)
	if err != nil {
		return err
	}

	renameOpts := options.MergeRenameOptions(opts...)
	op := driver.RenameCollection{
		NS:           coll.namespace(),
		NewNS:        driver.NewNamespace(coll.db.name, newName),
		DropTarget:   renameOpts.DropTarget != nil && *renameOpts.DropTarget,
		WriteConcern: coll.writeConcern,
	}
	_, err = coll.executeOperation(ctx, sess, op, nil)
	return err
}

// Indexes returns a view of the collection's indexes.
func (coll *Collection) Indexes() IndexView { return IndexView{coll: coll} }
