// Copyright (C) Docstore, Inc. 2018-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package driver

import "github.com/google/uuid"

// Session identifies a logical server session. The collection layer passes
// sessions through to the Executor unchanged; starting and ending a session
// is entirely the caller's responsibility.
type Session struct {
	id uuid.UUID
}

// NewSession returns a session with a fresh identifier.
func NewSession() *Session {
	return &Session{id: uuid.New()}
}

// ID returns the session identifier.
func (s *Session) ID() uuid.UUID { return s.id }
