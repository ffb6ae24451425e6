// Copyright (C) Docstore, Inc. 2018-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package options

import "time"

// FindOptions represents the options for a Find operation.
type FindOptions struct {
	// AllowPartialResults allows a sharded query to return partial results
	// when a shard is unavailable.
	AllowPartialResults *bool

	// BatchSize is the maximum number of documents per server batch.
	BatchSize *int32

	// Collation to use for string comparisons. Nil means the collection
	// default.
	Collation *Collation

	// Hint is the index to use, as its name or its key specification
	// document.
	Hint interface{}

	// Limit is the maximum number of documents to return.
	Limit *int64

	// MaxTime is the maximum amount of time the server allows the operation
	// to run.
	MaxTime *time.Duration

	// NoCursorTimeout prevents the server from closing the cursor after an
	// inactivity period.
	NoCursorTimeout *bool

	// Projection limits the fields returned for each document. Nil means
	// all fields, which is not the same as an empty projection document.
	Projection interface{}

	// Skip is the number of matching documents to skip before returning.
	Skip *int64

	// Sort is the order of the returned documents. Nil means server order.
	Sort interface{}
}

// Find creates a new FindOptions instance.
func Find() *FindOptions {
	return &FindOptions{}
}

// SetAllowPartialResults sets the allowPartialResults flag.
func (fo *FindOptions) SetAllowPartialResults(b bool) *FindOptions {
	fo.AllowPartialResults = &b
	return fo
}

// SetBatchSize sets the batch size.
func (fo *FindOptions) SetBatchSize(i int32) *FindOptions {
	fo.BatchSize = &i
	return fo
}

// SetCollation sets the collation.
func (fo *FindOptions) SetCollation(c *Collation) *FindOptions {
	fo.Collation = c
	return fo
}

// SetHint sets the index hint.
func (fo *FindOptions) SetHint(h interface{}) *FindOptions {
	fo.Hint = h
	return fo
}

// SetLimit sets the limit.
func (fo *FindOptions) SetLimit(i int64) *FindOptions {
	fo.Limit = &i
	return fo
}

// SetMaxTime sets the max server execution time.
func (fo *FindOptions) SetMaxTime(d time.Duration) *FindOptions {
	fo.MaxTime = &d
	return fo
}

// SetNoCursorTimeout sets the noCursorTimeout flag.
func (fo *FindOptions) SetNoCursorTimeout(b bool) *FindOptions {
	fo.NoCursorTimeout = &b
	return fo
}

// SetProjection sets the projection.
func (fo *FindOptions) SetProjection(p interface{}) *FindOptions {
	fo.Projection = p
	return fo
}

// SetSkip sets the skip.
func (fo *FindOptions) SetSkip(i int64) *FindOptions {
	fo.Skip = &i
	return fo
}

// SetSort sets the sort order.
func (fo *FindOptions) SetSort(s interface{}) *FindOptions {
	fo.Sort = s
	return fo
}

// MergeFindOptions combines the given FindOptions into a single instance,
// later values overriding earlier ones.
func MergeFindOptions(opts ...*FindOptions) *FindOptions {
	f := Find()
	for _, fo := range opts {
		if fo == nil {
			continue
		}
		if fo.AllowPartialResults != nil {
			f.AllowPartialResults = fo.AllowPartialResults
		}
		if fo.BatchSize != nil {
			f.BatchSize = fo.BatchSize
		}
		if fo.Collation != nil {
			f.Collation = fo.Collation
		}
		if fo.Hint != nil {
			f.Hint = fo.Hint
		}
		if fo.Limit != nil {
			f.Limit = fo.Limit
		}
		if fo.MaxTime != nil {
			f.MaxTime = fo.MaxTime
		}
		if fo.NoCursorTimeout != nil {
			f.NoCursorTimeout = fo.NoCursorTimeout
		}
		if fo.Projection != nil {
			f.Projection = fo.Projection
		}
		if fo.Skip != nil {
			f.Skip = fo.Skip
		}
		if fo.Sort != nil {
			f.Sort = fo.Sort
		}
	}
	return f
}

// FindOneOptions represents the options for a FindOne operation.
type FindOneOptions struct {
	// Collation to use for string comparisons. Nil means the collection
	// default.
	Collation *Collation

	// MaxTime is the maximum amount of time the server allows the operation
	// to run.
	MaxTime *time.Duration

	// Projection limits the fields returned. Nil means all fields.
	Projection interface{}

	// Skip is the number of matching documents to skip.
	Skip *int64

	// Sort determines which matching document is returned first.
	Sort interface{}
}

// FindOne creates a new FindOneOptions instance.
func FindOne() *FindOneOptions {
	return &FindOneOptions{}
}

// SetCollation sets the collation.
func (fo *FindOneOptions) SetCollation(c *Collation) *FindOneOptions {
	fo.Collation = c
	return fo
}

// SetMaxTime sets the max server execution time.
func (fo *FindOneOptions) SetMaxTime(d time.Duration) *FindOneOptions {
	fo.MaxTime = &d
	return fo
}

// SetProjection sets the projection.
func (fo *FindOneOptions) SetProjection(p interface{}) *FindOneOptions {
	fo.Projection = p
	return fo
}

// SetSkip sets the skip.
func (fo *FindOneOptions) SetSkip(i int64) *FindOneOptions {
	fo.Skip = &i
	return fo
}

// SetSort sets the sort order.
func (fo *FindOneOptions) SetSort(s interface{}) *FindOneOptions {
	fo.Sort = s
	return fo
}

// MergeFindOneOptions combines the given FindOneOptions into a single
// instance, later values overriding earlier ones.
func MergeFindOneOptions(opts ...*FindOneOptions) *FindOneOptions {
	f := FindOne()
	for _, fo := range opts {
		if fo == nil {
			continue
		}
		if fo.Collation != nil {
			f.Collation = fo.Collation
		}
		if fo.MaxTime != nil {
			f.MaxTime = fo.MaxTime
		}
		if fo.Projection != nil {
			f.Projection = fo.Projection
		}
		if fo.Skip != nil {
			f.Skip = fo.Skip
		}
		if fo.Sort != nil {
			f.Sort = fo.Sort
		}
	}
	return f
}
