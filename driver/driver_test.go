// Copyright (C) Docstore, Inc. 2018-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package driver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNamespace(t *testing.T) {
	t.Parallel()

	ns := NewNamespace("foo", "bar")
	assert.Equal(t, "foo.bar", ns.FullName())
	assert.Equal(t, "foo.bar", ns.String())
}

func TestRequestKindString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "insert", KindInsert.String())
	assert.Equal(t, "update", KindUpdate.String())
	assert.Equal(t, "replace", KindReplace.String())
	assert.Equal(t, "delete", KindDelete.String())
	assert.Equal(t, "unknown", RequestKind(99).String())
}

func TestBulkWriteExceptionError(t *testing.T) {
	t.Parallel()

	t.Run("write errors", func(t *testing.T) {
		t.Parallel()
		bwe := BulkWriteException{
			WriteErrors: []WriteError{
				{Index: 0, Code: 11000, Message: "duplicate key"},
				{Index: 1, Code: 121, Message: "validation failed"},
			},
		}
		assert.Equal(t,
			"bulk write exception: write errors: [{duplicate key}, {validation failed}]",
			bwe.Error())
	})

	t.Run("write concern error", func(t *testing.T) {
		t.Parallel()
		bwe := BulkWriteException{
			WriteConcernError: &WriteConcernError{Code: 64, Message: "waiting for replication timed out"},
		}
		assert.Contains(t, bwe.Error(), "write concern error: waiting for replication timed out")
	})
}
