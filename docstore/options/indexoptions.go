// Copyright (C) Docstore, Inc. 2018-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package options

import "time"

// IndexOptions represents the per-index options for index creation.
type IndexOptions struct {
	// Background builds the index without holding a collection-wide lock.
	Background *bool

	// ExpireAfterSeconds configures a TTL index.
	ExpireAfterSeconds *int32

	// Name is the index name. When unset a name is generated from the keys.
	Name *string

	// Sparse indexes only documents that contain the indexed field.
	Sparse *bool

	// StorageEngine is a storage-engine specific configuration document.
	StorageEngine interface{}

	// Unique rejects documents that duplicate an indexed value.
	Unique *bool

	// Version is the index version number.
	Version *int32

	// DefaultLanguage is the default language for a text index.
	DefaultLanguage *string

	// LanguageOverride names the field that overrides the default language.
	LanguageOverride *string

	// TextVersion is the text index version number.
	TextVersion *int32

	// Weights ranks the fields of a text index relative to each other.
	Weights interface{}

	// SphereVersion is the 2dsphere index version number.
	SphereVersion *int32

	// Bits is the precision of a geohash value in a 2d index.
	Bits *int32

	// Max is the upper inclusive boundary for longitude and latitude in a 2d
	// index.
	Max *float64

	// Min is the lower inclusive boundary for longitude and latitude in a 2d
	// index.
	Min *float64

	// BucketSize groups location values in a geoHaystack index.
	BucketSize *int32

	// PartialFilterExpression indexes only the documents it matches.
	PartialFilterExpression interface{}

	// Collation to use for string comparisons. Nil means the collection
	// default.
	Collation *Collation
}

// Index creates a new IndexOptions instance.
func Index() *IndexOptions {
	return &IndexOptions{}
}

// SetBackground sets the background flag.
func (io *IndexOptions) SetBackground(b bool) *IndexOptions {
	io.Background = &b
	return io
}

// SetExpireAfterSeconds sets the TTL.
func (io *IndexOptions) SetExpireAfterSeconds(i int32) *IndexOptions {
	io.ExpireAfterSeconds = &i
	return io
}

// SetName sets the index name.
func (io *IndexOptions) SetName(s string) *IndexOptions {
	io.Name = &s
	return io
}

// SetSparse sets the sparse flag.
func (io *IndexOptions) SetSparse(b bool) *IndexOptions {
	io.Sparse = &b
	return io
}

// SetStorageEngine sets the storage engine document.
func (io *IndexOptions) SetStorageEngine(se interface{}) *IndexOptions {
	io.StorageEngine = se
	return io
}

// SetUnique sets the unique flag.
func (io *IndexOptions) SetUnique(b bool) *IndexOptions {
	io.Unique = &b
	return io
}

// SetVersion sets the index version.
func (io *IndexOptions) SetVersion(i int32) *IndexOptions {
	io.Version = &i
	return io
}

// SetDefaultLanguage sets the default text index language.
func (io *IndexOptions) SetDefaultLanguage(s string) *IndexOptions {
	io.DefaultLanguage = &s
	return io
}

// SetLanguageOverride sets the language override field name.
func (io *IndexOptions) SetLanguageOverride(s string) *IndexOptions {
	io.LanguageOverride = &s
	return io
}

// SetTextVersion sets the text index version.
func (io *IndexOptions) SetTextVersion(i int32) *IndexOptions {
	io.TextVersion = &i
	return io
}

// SetWeights sets the text index weights document.
func (io *IndexOptions) SetWeights(w interface{}) *IndexOptions {
	io.Weights = w
	return io
}

// SetSphereVersion sets the 2dsphere index version.
func (io *IndexOptions) SetSphereVersion(i int32) *IndexOptions {
	io.SphereVersion = &i
	return io
}

// SetBits sets the geohash precision.
func (io *IndexOptions) SetBits(i int32) *IndexOptions {
	io.Bits = &i
	return io
}

// SetMax sets the 2d index upper boundary.
func (io *IndexOptions) SetMax(f float64) *IndexOptions {
	io.Max = &f
	return io
}

// SetMin sets the 2d index lower boundary.
func (io *IndexOptions) SetMin(f float64) *IndexOptions {
	io.Min = &f
	return io
}

// SetBucketSize sets the geoHaystack bucket size.
func (io *IndexOptions) SetBucketSize(i int32) *IndexOptions {
	io.BucketSize = &i
	return io
}

// SetPartialFilterExpression sets the partial filter expression.
func (io *IndexOptions) SetPartialFilterExpression(pfe interface{}) *IndexOptions {
	io.PartialFilterExpression = pfe
	return io
}

// SetCollation sets the collation.
func (io *IndexOptions) SetCollation(c *Collation) *IndexOptions {
	io.Collation = c
	return io
}

// MergeIndexOptions combines the given IndexOptions into a single instance,
// later values overriding earlier ones.
func MergeIndexOptions(opts ...*IndexOptions) *IndexOptions {
	i := Index()
	for _, io := range opts {
		if io == nil {
			continue
		}
		if io.Background != nil {
			i.Background = io.Background
		}
		if io.ExpireAfterSeconds != nil {
			i.ExpireAfterSeconds = io.ExpireAfterSeconds
		}
		if io.Name != nil {
			i.Name = io.Name
		}
		if io.Sparse != nil {
			i.Sparse = io.Sparse
		}
		if io.StorageEngine != nil {
			i.StorageEngine = io.StorageEngine
		}
		if io.Unique != nil {
			i.Unique = io.Unique
		}
		if io.Version != nil {
			i.Version = io.Version
		}
		if io.DefaultLanguage != nil {
			i.DefaultLanguage = io.DefaultLanguage
		}
		if io.LanguageOverride != nil {
			i.LanguageOverride = io.LanguageOverride
		}
		if io.TextVersion != nil {
			i.TextVersion = io.TextVersion
		}
		if io.Weights != nil {
			i.Weights = io.Weights
		}
		if io.SphereVersion != nil {
			i.SphereVersion = io.SphereVersion
		}
		if io.Bits != nil {
			i.Bits = io.Bits
		}
		if io.Max != nil {
			i.Max = io.Max
		}
		if io.Min != nil {
			i.Min = io.Min
		}
		if io.BucketSize != nil {
			i.BucketSize = io.BucketSize
		}
		if io.PartialFilterExpression != nil {
			i.PartialFilterExpression = io.PartialFilterExpression
		}
		if io.Collation != nil {
			i.Collation = io.Collation
		}
	}
	return i
}

// CreateIndexesOptions represents the options for a CreateOne or CreateMany
// operation.
type CreateIndexesOptions struct {
	// MaxTime is the maximum amount of time the server allows the operation
	// to run.
	MaxTime *time.Duration
}

// CreateIndexes creates a new CreateIndexesOptions instance.
func CreateIndexes() *CreateIndexesOptions {
	return &CreateIndexesOptions{}
}

// SetMaxTime sets the max server execution time.
func (cio *CreateIndexesOptions) SetMaxTime(d time.Duration) *CreateIndexesOptions {
	cio.MaxTime = &d
	return cio
}

// MergeCreateIndexesOptions combines the given CreateIndexesOptions into a
// single instance, later values overriding earlier ones.
func MergeCreateIndexesOptions(opts ...*CreateIndexesOptions) *CreateIndexesOptions {
	c := CreateIndexes()
	for _, cio := range opts {
		if cio == nil {
			continue
		}
		if cio.MaxTime != nil {
			c.MaxTime = cio.MaxTime
		}
	}
	return c
}

// DropIndexesOptions represents the options for a DropOne or DropAll
// operation.
type DropIndexesOptions struct {
	// MaxTime is the maximum amount of time the server allows the operation
	// to run.
	MaxTime *time.Duration
}

// DropIndexes creates a new DropIndexesOptions instance.
func DropIndexes() *DropIndexesOptions {
	return &DropIndexesOptions{}
}

// SetMaxTime sets the max server execution time.
func (dio *DropIndexesOptions) SetMaxTime(d time.Duration) *DropIndexesOptions {
	dio.MaxTime = &d
	return dio
}

// MergeDropIndexesOptions combines the given DropIndexesOptions into a single
// instance, later values overriding earlier ones.
func MergeDropIndexesOptions(opts ...*DropIndexesOptions) *DropIndexesOptions {
	d := DropIndexes()
	for _, dio := range opts {
		if dio == nil {
			continue
		}
		if dio.MaxTime != nil {
			d.MaxTime = dio.MaxTime
		}
	}
	return d
}

// ListIndexesOptions represents the options for a List operation.
type ListIndexesOptions struct {
	// BatchSize is the maximum number of index specifications per server
	// batch.
	BatchSize *int32

	// MaxTime is the maximum amount of time the server allows the operation
	// to run.
	MaxTime *time.Duration
}

// ListIndexes creates a new ListIndexesOptions instance.
func ListIndexes() *ListIndexesOptions {
	return &ListIndexesOptions{}
}

// SetBatchSize sets the batch size.
func (lio *ListIndexesOptions) SetBatchSize(i int32) *ListIndexesOptions {
	lio.BatchSize = &i
	return lio
}

// SetMaxTime sets the max server execution time.
func (lio *ListIndexesOptions) SetMaxTime(d time.Duration) *ListIndexesOptions {
	lio.MaxTime = &d
	return lio
}

// MergeListIndexesOptions combines the given ListIndexesOptions into a single
// instance, later values overriding earlier ones.
func MergeListIndexesOptions(opts ...*ListIndexesOptions) *ListIndexesOptions {
	l := ListIndexes()
	for _, lio := range opts {
		if lio == nil {
			continue
		}
		if lio.BatchSize != nil {
			l.BatchSize = lio.BatchSize
		}
		if lio.MaxTime != nil {
			l.MaxTime = lio.MaxTime
		}
	}
	return l
}
