// Copyright (C) Docstore, Inc. 2018-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package options

import "time"

// AggregateOptions represents the options for an Aggregate operation.
type AggregateOptions struct {
	// AllowDiskUse lets the server write temporary files during the
	// aggregation.
	AllowDiskUse *bool

	// BatchSize is the maximum number of documents per server batch.
	BatchSize *int32

	// BypassDocumentValidation opts writing stages out of document-level
	// validation on the server.
	BypassDocumentValidation *bool

	// Collation to use for string comparisons. Nil means the collection
	// default.
	Collation *Collation

	// Comment is attached to the operation in server logs.
	Comment *string

	// Hint is the index to use, as its name or its key specification
	// document.
	Hint interface{}

	// MaxTime is the maximum amount of time the server allows the operation
	// to run.
	MaxTime *time.Duration
}

// Aggregate creates a new AggregateOptions instance.
func Aggregate() *AggregateOptions {
	return &AggregateOptions{}
}

// SetAllowDiskUse sets the allowDiskUse flag.
func (ao *AggregateOptions) SetAllowDiskUse(b bool) *AggregateOptions {
	ao.AllowDiskUse = &b
	return ao
}

// SetBatchSize sets the batch size.
func (ao *AggregateOptions) SetBatchSize(i int32) *AggregateOptions {
	ao.BatchSize = &i
	return ao
}

// SetBypassDocumentValidation sets the bypassDocumentValidation flag.
func (ao *AggregateOptions) SetBypassDocumentValidation(b bool) *AggregateOptions {
	ao.BypassDocumentValidation = &b
	return ao
}

// SetCollation sets the collation.
func (ao *AggregateOptions) SetCollation(c *Collation) *AggregateOptions {
	ao.Collation = c
	return ao
}

// SetComment sets the comment.
func (ao *AggregateOptions) SetComment(s string) *AggregateOptions {
	ao.Comment = &s
	return ao
}

// SetHint sets the index hint.
func (ao *AggregateOptions) SetHint(h interface{}) *AggregateOptions {
	ao.Hint = h
	return ao
}

// SetMaxTime sets the max server execution time.
func (ao *AggregateOptions) SetMaxTime(d time.Duration) *AggregateOptions {
	ao.MaxTime = &d
	return ao
}

// MergeAggregateOptions combines the given AggregateOptions into a single
// instance, later values overriding earlier ones.
func MergeAggregateOptions(opts ...*AggregateOptions) *AggregateOptions {
	a := Aggregate()
	for _, ao := range opts {
		if ao == nil {
			continue
		}
		if ao.AllowDiskUse != nil {
			a.AllowDiskUse = ao.AllowDiskUse
		}
		if ao.BatchSize != nil {
			a.BatchSize = ao.BatchSize
		}
		if ao.BypassDocumentValidation != nil {
			a.BypassDocumentValidation = ao.BypassDocumentValidation
		}
		if ao.Collation != nil {
			a.Collation = ao.Collation
		}
		if ao.Comment != nil {
			a.Comment = ao.Comment
		}
		if ao.Hint != nil {
			a.Hint = ao.Hint
		}
		if ao.MaxTime != nil {
			a.MaxTime = ao.MaxTime
		}
	}
	return a
}
