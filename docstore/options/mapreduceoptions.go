// Copyright (C) Docstore, Inc. 2018-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package options

import "time"

// MapReduceOptions represents the options for a MapReduce operation.
type MapReduceOptions struct {
	// Filter restricts the documents fed to the map function. Nil means all
	// documents.
	Filter interface{}

	// Limit is the maximum number of documents fed to the map function.
	Limit *int64

	// MaxTime is the maximum amount of time the server allows the operation
	// to run.
	MaxTime *time.Duration

	// Sort is the order the documents are fed to the map function in.
	Sort interface{}
}

// MapReduce creates a new MapReduceOptions instance.
func MapReduce() *MapReduceOptions {
	return &MapReduceOptions{}
}

// SetFilter sets the filter.
func (mro *MapReduceOptions) SetFilter(f interface{}) *MapReduceOptions {
	mro.Filter = f
	return mro
}

// SetLimit sets the limit.
func (mro *MapReduceOptions) SetLimit(i int64) *MapReduceOptions {
	mro.Limit = &i
	return mro
}

// SetMaxTime sets the max server execution time.
func (mro *MapReduceOptions) SetMaxTime(d time.Duration) *MapReduceOptions {
	mro.MaxTime = &d
	return mro
}

// SetSort sets the sort order.
func (mro *MapReduceOptions) SetSort(s interface{}) *MapReduceOptions {
	mro.Sort = s
	return mro
}

// MergeMapReduceOptions combines the given MapReduceOptions into a single
// instance, later values overriding earlier ones.
func MergeMapReduceOptions(opts ...*MapReduceOptions) *MapReduceOptions {
	m := MapReduce()
	for _, mro := range opts {
		if mro == nil {
			continue
		}
		if mro.Filter != nil {
			m.Filter = mro.Filter
		}
		if mro.Limit != nil {
			m.Limit = mro.Limit
		}
		if mro.MaxTime != nil {
			m.MaxTime = mro.MaxTime
		}
		if mro.Sort != nil {
			m.Sort = mro.Sort
		}
	}
	return m
}
