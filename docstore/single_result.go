// Copyright (C) Docstore, Inc. 2018-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package docstore

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsoncodec"
)

// SingleResult represents a single document returned by an operation. A
// SingleResult that matched no document yields ErrNoDocuments when decoded.
type SingleResult struct {
	err      error
	rdr      bson.Raw
	registry *bsoncodec.Registry
}

// Decode decodes the matched document into val. It returns ErrNoDocuments
// when the operation matched no document and the operation's error when the
// operation failed.
func (sr *SingleResult) Decode(val interface{}) error {
	rdr, err := sr.DecodeBytes()
	if err != nil {
		return err
	}
	reg := sr.registry
	if reg == nil {
		reg = bson.DefaultRegistry
	}
	return bson.UnmarshalWithRegistry(reg, rdr, val)
}

// DecodeBytes returns the raw bytes of the matched document.
func (sr *SingleResult) DecodeBytes() (bson.Raw, error) {
	if sr.err != nil {
		return nil, sr.err
	}
	if sr.rdr == nil {
		return nil, ErrNoDocuments
	}
	return sr.rdr, nil
}

// Err returns the operation's error, or ErrNoDocuments when the operation
// matched no document. Callers that do not need the document can check Err
// instead of decoding.
func (sr *SingleResult) Err() error {
	if sr.err != nil {
		return sr.err
	}
	if sr.rdr == nil {
		return ErrNoDocuments
	}
	return nil
}
