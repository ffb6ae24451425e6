// Copyright (C) Docstore, Inc. 2018-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package options

// RenameOptions represents the options for a Rename operation.
type RenameOptions struct {
	// DropTarget drops an existing collection with the target name before
	// renaming. The default is false.
	DropTarget *bool
}

// Rename creates a new RenameOptions instance.
func Rename() *RenameOptions {
	return &RenameOptions{}
}

// SetDropTarget sets the dropTarget flag.
func (ro *RenameOptions) SetDropTarget(b bool) *RenameOptions {
	ro.DropTarget = &b
	return ro
}

// MergeRenameOptions combines the given RenameOptions into a single instance,
// later values overriding earlier ones.
func MergeRenameOptions(opts ...*RenameOptions) *RenameOptions {
	r := Rename()
	for _, ro := range opts {
		if ro == nil {
			continue
		}
		if ro.DropTarget != nil {
			r.DropTarget = ro.DropTarget
		}
	}
	return r
}
