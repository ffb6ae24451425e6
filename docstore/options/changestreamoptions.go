// Copyright (C) Docstore, Inc. 2018-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package options

import "time"

// ChangeStreamOptions represents the options for a Watch operation.
type ChangeStreamOptions struct {
	// BatchSize is the maximum number of notifications per server batch.
	BatchSize *int32

	// Collation to use for string comparisons. Nil means the collection
	// default.
	Collation *Collation

	// FullDocument controls how update notifications populate their
	// fullDocument field. The default is Default.
	FullDocument *FullDocument

	// MaxAwaitTime is the maximum amount of time the server waits for new
	// notifications before returning an empty batch.
	MaxAwaitTime *time.Duration

	// ResumeAfter resumes notifications after the given resume token.
	ResumeAfter interface{}
}

// ChangeStream creates a new ChangeStreamOptions instance.
func ChangeStream() *ChangeStreamOptions {
	return &ChangeStreamOptions{}
}

// SetBatchSize sets the batch size.
func (cso *ChangeStreamOptions) SetBatchSize(i int32) *ChangeStreamOptions {
	cso.BatchSize = &i
	return cso
}

// SetCollation sets the collation.
func (cso *ChangeStreamOptions) SetCollation(c *Collation) *ChangeStreamOptions {
	cso.Collation = c
	return cso
}

// SetFullDocument sets the fullDocument mode.
func (cso *ChangeStreamOptions) SetFullDocument(fd FullDocument) *ChangeStreamOptions {
	cso.FullDocument = &fd
	return cso
}

// SetMaxAwaitTime sets the max await time.
func (cso *ChangeStreamOptions) SetMaxAwaitTime(d time.Duration) *ChangeStreamOptions {
	cso.MaxAwaitTime = &d
	return cso
}

// SetResumeAfter sets the resume token.
func (cso *ChangeStreamOptions) SetResumeAfter(rt interface{}) *ChangeStreamOptions {
	cso.ResumeAfter = rt
	return cso
}

// MergeChangeStreamOptions combines the given ChangeStreamOptions into a
// single instance, later values overriding earlier ones.
func MergeChangeStreamOptions(opts ...*ChangeStreamOptions) *ChangeStreamOptions {
	c := ChangeStream()
	for _, cso := range opts {
		if cso == nil {
			continue
		}
		if cso.BatchSize != nil {
			c.BatchSize = cso.BatchSize
		}
		if cso.Collation != nil {
			c.Collation = cso.Collation
		}
		if cso.FullDocument != nil {
			c.FullDocument = cso.FullDocument
		}
		if cso.MaxAwaitTime != nil {
			c.MaxAwaitTime = cso.MaxAwaitTime
		}
		if cso.ResumeAfter != nil {
			c.ResumeAfter = cso.ResumeAfter
		}
	}
	return c
}
