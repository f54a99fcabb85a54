// Copyright (C) OpalDB, Inc. 2024-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package options

import "time"

// CreateIndexesOptions represent all possible options for the
// IndexView.CreateOne() and IndexView.CreateMany() functions.
type CreateIndexesOptions struct {
	OperationOptions

	MaxTime *time.Duration
}

// CreateIndexes creates a new CreateIndexesOptions instance.
func CreateIndexes() *CreateIndexesOptions {
	return &CreateIndexesOptions{}
}

// SetMaxTime specifies the max time to allow the operation to run.
func (c *CreateIndexesOptions) SetMaxTime(d time.Duration) *CreateIndexesOptions {
	c.MaxTime = &d
	return c
}

// MergeCreateIndexesOptions combines the given CreateIndexesOptions instances
// into a single CreateIndexesOptions in a last-one-wins fashion.
func MergeCreateIndexesOptions(opts ...*CreateIndexesOptions) *CreateIndexesOptions {
	co := CreateIndexes()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		mergeOperationOptions(&co.OperationOptions, &opt.OperationOptions)
		if opt.MaxTime != nil {
			co.MaxTime = opt.MaxTime
		}
	}
	return co
}

// DropIndexesOptions represent all possible options for the
// IndexView.DropOne() and IndexView.DropAll() functions.
type DropIndexesOptions struct {
	OperationOptions

	MaxTime *time.Duration
}

// DropIndexes creates a new DropIndexesOptions instance.
func DropIndexes() *DropIndexesOptions {
	return &DropIndexesOptions{}
}

// SetMaxTime specifies the max time to allow the operation to run.
func (d *DropIndexesOptions) SetMaxTime(duration time.Duration) *DropIndexesOptions {
	d.MaxTime = &duration
	return d
}

// MergeDropIndexesOptions combines the given DropIndexesOptions instances
// into a single DropIndexesOptions in a last-one-wins fashion.
func MergeDropIndexesOptions(opts ...*DropIndexesOptions) *DropIndexesOptions {
	do := DropIndexes()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		mergeOperationOptions(&do.OperationOptions, &opt.OperationOptions)
		if opt.MaxTime != nil {
			do.MaxTime = opt.MaxTime
		}
	}
	return do
}

// ListIndexesOptions represent all possible options for the IndexView.List()
// function.
type ListIndexesOptions struct {
	OperationOptions

	BatchSize *int32
	MaxTime   *time.Duration
}

// ListIndexes creates a new ListIndexesOptions instance.
func ListIndexes() *ListIndexesOptions {
	return &ListIndexesOptions{}
}

// SetBatchSize sets the number of index documents to return in each batch.
func (l *ListIndexesOptions) SetBatchSize(i int32) *ListIndexesOptions {
	l.BatchSize = &i
	return l
}

// SetMaxTime specifies the max time to allow the operation to run.
func (l *ListIndexesOptions) SetMaxTime(d time.Duration) *ListIndexesOptions {
	l.MaxTime = &d
	return l
}

// MergeListIndexesOptions combines the given ListIndexesOptions instances
// into a single ListIndexesOptions in a last-one-wins fashion.
func MergeListIndexesOptions(opts ...*ListIndexesOptions) *ListIndexesOptions {
	lo := ListIndexes()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		mergeOperationOptions(&lo.OperationOptions, &opt.OperationOptions)
		if opt.BatchSize != nil {
			lo.BatchSize = opt.BatchSize
		}
		if opt.MaxTime != nil {
			lo.MaxTime = opt.MaxTime
		}
	}
	return lo
}

// IndexOptions represent options to configure a new index created by
// IndexView.CreateOne() or IndexView.CreateMany().
type IndexOptions struct {
	Background         *bool
	ExpireAfterSeconds *int32
	Name               *string
	Sparse             *bool
	Unique             *bool
	PartialFilter      interface{}
	Collation          *Collation
}

// Index creates a new IndexOptions instance.
func Index() *IndexOptions {
	return &IndexOptions{}
}

// SetBackground sets whether the index should be built in the background.
func (i *IndexOptions) SetBackground(b bool) *IndexOptions {
	i.Background = &b
	return i
}

// SetExpireAfterSeconds sets the TTL for documents in the collection.
func (i *IndexOptions) SetExpireAfterSeconds(seconds int32) *IndexOptions {
	i.ExpireAfterSeconds = &seconds
	return i
}

// SetName sets the name of the index.
func (i *IndexOptions) SetName(name string) *IndexOptions {
	i.Name = &name
	return i
}

// SetSparse sets whether the index only references documents containing the
// indexed fields.
func (i *IndexOptions) SetSparse(b bool) *IndexOptions {
	i.Sparse = &b
	return i
}

// SetUnique sets whether the index enforces uniqueness on the indexed fields.
func (i *IndexOptions) SetUnique(b bool) *IndexOptions {
	i.Unique = &b
	return i
}

// SetPartialFilter sets a filter expression limiting which documents the
// index references.
func (i *IndexOptions) SetPartialFilter(filter interface{}) *IndexOptions {
	i.PartialFilter = filter
	return i
}

// SetCollation sets the collation for the index.
func (i *IndexOptions) SetCollation(c *Collation) *IndexOptions {
	i.Collation = c
	return i
}

// RenameOptions represent all possible options for the Collection.Rename()
// function.
type RenameOptions struct {
	// If true, an existing collection at the target namespace is dropped
	// before the rename.
	DropTarget *bool
}

// Rename creates a new RenameOptions instance.
func Rename() *RenameOptions {
	return &RenameOptions{}
}

// SetDropTarget sets whether an existing collection at the target namespace
// should be dropped.
func (r *RenameOptions) SetDropTarget(b bool) *RenameOptions {
	r.DropTarget = &b
	return r
}

// MergeRenameOptions combines the given RenameOptions instances into a single
// RenameOptions in a last-one-wins fashion.
func MergeRenameOptions(opts ...*RenameOptions) *RenameOptions {
	ro := Rename()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if opt.DropTarget != nil {
			ro.DropTarget = opt.DropTarget
		}
	}
	return ro
}
