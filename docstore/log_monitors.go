// Copyright (C) Docstore, Inc. 2018-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package docstore

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/docstore/go-driver/event"
)

// NewLogMonitor returns an OperationMonitor that logs every operation through
// l at debug level and then forwards the event to next, which may be nil.
func NewLogMonitor(l logrus.FieldLogger, next *event.OperationMonitor) *event.OperationMonitor {
	return &event.OperationMonitor{
		Started: func(ctx context.Context, evt *event.OperationStartedEvent) {
			l.WithFields(logrus.Fields{
				"operationName":  evt.OperationName,
				"databaseName":   evt.DatabaseName,
				"collectionName": evt.CollectionName,
			}).Debug("operation started")
			if next != nil && next.Started != nil {
				next.Started(ctx, evt)
			}
		},
		Succeeded: func(ctx context.Context, evt *event.OperationSucceededEvent) {
			l.WithFields(logrus.Fields{
				"operationName":  evt.OperationName,
				"databaseName":   evt.DatabaseName,
				"collectionName": evt.CollectionName,
				"duration":       evt.Duration,
			}).Debug("operation succeeded")
			if next != nil && next.Succeeded != nil {
				next.Succeeded(ctx, evt)
			}
		},
		Failed: func(ctx context.Context, evt *event.OperationFailedEvent) {
			l.WithFields(logrus.Fields{
				"operationName":  evt.OperationName,
				"databaseName":   evt.DatabaseName,
				"collectionName": evt.CollectionName,
				"duration":       evt.Duration,
				"failure":        evt.Failure,
			}).Debug("operation failed")
			if next != nil && next.Failed != nil {
				next.Failed(ctx, evt)
			}
		},
	}
}
