// Copyright (C) Docstore, Inc. 2018-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package docstore

import (
	"context"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docstore/go-driver/event"
)

func TestNewLogMonitor(t *testing.T) {
	t.Parallel()

	t.Run("logs every lifecycle event", func(t *testing.T) {
		t.Parallel()
		logger, hook := test.NewNullLogger()
		logger.SetLevel(logrus.DebugLevel)

		monitor := NewLogMonitor(logger, nil)
		ctx := context.Background()

		monitor.Started(ctx, &event.OperationStartedEvent{
			OperationName:  "count",
			DatabaseName:   "foo",
			CollectionName: "bar",
		})
		monitor.Succeeded(ctx, &event.OperationSucceededEvent{
			OperationName:  "count",
			DatabaseName:   "foo",
			CollectionName: "bar",
			Duration:       time.Millisecond,
		})
		monitor.Failed(ctx, &event.OperationFailedEvent{
			OperationName:  "count",
			DatabaseName:   "foo",
			CollectionName: "bar",
			Duration:       time.Millisecond,
			Failure:        assert.AnError,
		})

		entries := hook.AllEntries()
		require.Len(t, entries, 3)
		assert.Equal(t, "operation started", entries[0].Message)
		assert.Equal(t, "operation succeeded", entries[1].Message)
		assert.Equal(t, "operation failed", entries[2].Message)

		assert.Equal(t, "count", entries[0].Data["operationName"])
		assert.Equal(t, "foo", entries[0].Data["databaseName"])
		assert.Equal(t, "bar", entries[0].Data["collectionName"])
		assert.Equal(t, assert.AnError, entries[2].Data["failure"])
		for _, entry := range entries {
			assert.Equal(t, logrus.DebugLevel, entry.Level)
		}
	})

	t.Run("forwards to the next monitor", func(t *testing.T) {
		t.Parallel()
		logger, _ := test.NewNullLogger()
		logger.SetLevel(logrus.DebugLevel)

		var started, succeeded, failed int
		next := &event.OperationMonitor{
			Started:   func(context.Context, *event.OperationStartedEvent) { started++ },
			Succeeded: func(context.Context, *event.OperationSucceededEvent) { succeeded++ },
			Failed:    func(context.Context, *event.OperationFailedEvent) { failed++ },
		}
		monitor := NewLogMonitor(logger, next)
		ctx := context.Background()

		monitor.Started(ctx, &event.OperationStartedEvent{OperationName: "find"})
		monitor.Succeeded(ctx, &event.OperationSucceededEvent{OperationName: "find"})
		monitor.Failed(ctx, &event.OperationFailedEvent{OperationName: "find", Failure: assert.AnError})

		assert.Equal(t, 1, started)
		assert.Equal(t, 1, succeeded)
		assert.Equal(t, 1, failed)
	})
}
