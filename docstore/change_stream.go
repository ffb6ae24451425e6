// Copyright (C) Docstore, Inc. 2018-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package docstore

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
)

// ChangeStream iterates the change notifications of a collection. Resuming
// after a failure is the executor's responsibility; the stream exposes the
// resume token of the current notification so callers can restart a stream
// with Watch and the ResumeAfter option.
type ChangeStream struct {
	cursor *Cursor
}

// ID returns the server cursor id of the stream.
func (cs *ChangeStream) ID() int64 { return cs.cursor.ID() }

// Next advances the stream to the next notification, blocking until one is
// available, the stream errors, or ctx expires.
func (cs *ChangeStream) Next(ctx context.Context) bool { return cs.cursor.Next(ctx) }

// Decode decodes the current notification into val.
func (cs *ChangeStream) Decode(val interface{}) error { return cs.cursor.Decode(val) }

// Current returns the raw bytes of the current notification.
func (cs *ChangeStream) Current() bson.Raw { return cs.cursor.Current }

// ResumeToken returns the resume token of the current notification, or nil
// before the first call to Next.
func (cs *ChangeStream) ResumeToken() bson.Raw {
	if cs.cursor.Current == nil {
		return nil
	}
	idVal, err := cs.cursor.Current.LookupErr("_id")
	if err != nil {
		return nil
	}
	doc, ok := idVal.DocumentOK()
	if !ok {
		return nil
	}
	return doc
}

// Err returns the error that stopped the stream, if any.
func (cs *ChangeStream) Err() error { return cs.cursor.Err() }

// Close releases the server cursor backing the stream.
func (cs *ChangeStream) Close(ctx context.Context) error { return cs.cursor.Close(ctx) }
