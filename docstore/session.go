// Copyright (C) Docstore, Inc. 2018-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package docstore

import (
	"context"

	"github.com/docstore/go-driver/driver"
)

type sessionKey struct{}

// ContextWithSession returns a copy of ctx that carries sess. Every operation
// run with the returned context is handed to the executor together with the
// session.
func ContextWithSession(ctx context.Context, sess *driver.Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, sess)
}

// SessionFromContext returns the session carried by ctx, or nil when ctx
// carries none.
func SessionFromContext(ctx context.Context) *driver.Session {
	sess, _ := ctx.Value(sessionKey{}).(*driver.Session)
	return sess
}

// WithSession runs fn with a context that carries sess. A nil sess is
// rejected before fn runs.
func WithSession(ctx context.Context, sess *driver.Session, fn func(context.Context) error) error {
	if sess == nil {
		return ErrNilSession
	}
	return fn(ContextWithSession(ctx, sess))
}

// validSession extracts the session from ctx, rejecting a context that
// carries an explicitly nil session. Operations call this before doing any
// other work.
func validSession(ctx context.Context) (*driver.Session, error) {
	val := ctx.Value(sessionKey{})
	if val == nil {
		return nil, nil
	}
	sess, ok := val.(*driver.Session)
	if !ok || sess == nil {
		return nil, ErrNilSession
	}
	return sess, nil
}
