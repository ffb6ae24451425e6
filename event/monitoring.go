// Copyright (C) Docstore, Inc. 2018-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

// Package event contains the types for subscribing to operation lifecycle
// events emitted by the collection layer around every executor call.
package event

import (
	"context"
	"time"
)

// OperationStartedEvent is emitted immediately before an operation is handed
// to the executor.
type OperationStartedEvent struct {
	OperationName  string
	DatabaseName   string
	CollectionName string
}

// OperationSucceededEvent is emitted after the executor returned without
// error.
type OperationSucceededEvent struct {
	OperationName  string
	DatabaseName   string
	CollectionName string
	Duration       time.Duration
}

// OperationFailedEvent is emitted after the executor returned an error.
type OperationFailedEvent struct {
	OperationName  string
	DatabaseName   string
	CollectionName string
	Duration       time.Duration
	Failure        error
}

// OperationMonitor receives operation lifecycle events. Any of the callbacks
// may be nil.
type OperationMonitor struct {
	Started   func(context.Context, *OperationStartedEvent)
	Succeeded func(context.Context, *OperationSucceededEvent)
	Failed    func(context.Context, *OperationFailedEvent)
}
