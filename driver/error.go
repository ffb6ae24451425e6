// Copyright (C) Docstore, Inc. 2018-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package driver

import (
	"bytes"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
)

// WriteError is a per-document failure reported by the server for one request
// in a bulk batch.
type WriteError struct {
	// Index is the position in the request batch of the failing request.
	Index   int
	Code    int
	Message string
	Details bson.Raw
}

func (we WriteError) Error() string { return we.Message }

// WriteConcernError is reported when the writes succeeded at the document
// level but the requested write concern could not be satisfied.
type WriteConcernError struct {
	Code    int
	Message string
	Details bson.Raw
}

func (wce WriteConcernError) Error() string { return wce.Message }

// BulkWriteException is raised by an Executor when a MixedBulkWrite operation
// fails at the document or write concern level. Result holds the partial
// result of the requests that did succeed. With ordered execution at most the
// first write error is relevant to a single-request batch.
type BulkWriteException struct {
	Result            BulkWriteResult
	WriteErrors       []WriteError
	WriteConcernError *WriteConcernError
	ServerAddress     string
}

func (bwe BulkWriteException) Error() string {
	var buf bytes.Buffer
	fmt.Fprint(&buf, "bulk write exception: ")
	if len(bwe.WriteErrors) > 0 {
		fmt.Fprint(&buf, "write errors: [")
		for idx, err := range bwe.WriteErrors {
			if idx != 0 {
				fmt.Fprint(&buf, ", ")
			}
			fmt.Fprintf(&buf, "{%s}", err)
		}
		fmt.Fprint(&buf, "]")
	}
	if bwe.WriteConcernError != nil {
		fmt.Fprintf(&buf, ", write concern error: %s", bwe.WriteConcernError)
	}
	return buf.String()
}
