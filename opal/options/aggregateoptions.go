// Copyright (C) OpalDB, Inc. 2024-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package options

import "time"

// AggregateOptions represent all possible options to the Aggregate() function.
type AggregateOptions struct {
	OperationOptions

	AllowDiskUse             *bool
	BatchSize                *int32
	BypassDocumentValidation *bool
	Collation                *Collation
	Comment                  *string
	MaxTime                  *time.Duration
}

// Aggregate creates a new AggregateOptions instance.
func Aggregate() *AggregateOptions {
	return &AggregateOptions{}
}

// SetAllowDiskUse sets whether the server can write temporary data to disk.
func (a *AggregateOptions) SetAllowDiskUse(b bool) *AggregateOptions {
	a.AllowDiskUse = &b
	return a
}

// SetBatchSize sets the number of documents to return in each batch.
func (a *AggregateOptions) SetBatchSize(i int32) *AggregateOptions {
	a.BatchSize = &i
	return a
}

// SetBypassDocumentValidation sets the value for the BypassDocumentValidation field.
func (a *AggregateOptions) SetBypassDocumentValidation(b bool) *AggregateOptions {
	a.BypassDocumentValidation = &b
	return a
}

// SetCollation sets the value for the Collation field.
func (a *AggregateOptions) SetCollation(c *Collation) *AggregateOptions {
	a.Collation = c
	return a
}

// SetComment specifies a string to help trace the operation through the database.
func (a *AggregateOptions) SetComment(comment string) *AggregateOptions {
	a.Comment = &comment
	return a
}

// SetHint specifies the index to use.
func (a *AggregateOptions) SetHint(hint interface{}) *AggregateOptions {
	a.OperationOptions.Hint = hint
	return a
}

// SetMaxTime specifies the max time to allow the pipeline to run.
func (a *AggregateOptions) SetMaxTime(d time.Duration) *AggregateOptions {
	a.MaxTime = &d
	return a
}

// MergeAggregateOptions combines the given AggregateOptions instances into a
// single AggregateOptions in a last-one-wins fashion.
func MergeAggregateOptions(opts ...*AggregateOptions) *AggregateOptions {
	ao := Aggregate()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		mergeOperationOptions(&ao.OperationOptions, &opt.OperationOptions)
		if opt.AllowDiskUse != nil {
			ao.AllowDiskUse = opt.AllowDiskUse
		}
		if opt.BatchSize != nil {
			ao.BatchSize = opt.BatchSize
		}
		if opt.BypassDocumentValidation != nil {
			ao.BypassDocumentValidation = opt.BypassDocumentValidation
		}
		if opt.Collation != nil {
			ao.Collation = opt.Collation
		}
		if opt.Comment != nil {
			ao.Comment = opt.Comment
		}
		if opt.MaxTime != nil {
			ao.MaxTime = opt.MaxTime
		}
	}
	return ao
}

// CountOptions represent all possible options to the CountDocuments() function.
type CountOptions struct {
	OperationOptions

	Collation *Collation
	Limit     *int64
	MaxTime   *time.Duration
	Skip      *int64
}

// Count creates a new CountOptions instance.
func Count() *CountOptions {
	return &CountOptions{}
}

// SetCollation sets the value for the Collation field.
func (c *CountOptions) SetCollation(collation *Collation) *CountOptions {
	c.Collation = collation
	return c
}

// SetHint specifies the index to use.
func (c *CountOptions) SetHint(hint interface{}) *CountOptions {
	c.OperationOptions.Hint = hint
	return c
}

// SetLimit sets the maximum number of documents to count.
func (c *CountOptions) SetLimit(i int64) *CountOptions {
	c.Limit = &i
	return c
}

// SetMaxTime specifies the max time to allow the operation to run.
func (c *CountOptions) SetMaxTime(d time.Duration) *CountOptions {
	c.MaxTime = &d
	return c
}

// SetSkip sets the number of documents to skip before counting.
func (c *CountOptions) SetSkip(i int64) *CountOptions {
	c.Skip = &i
	return c
}

// MergeCountOptions combines the given CountOptions instances into a single
// CountOptions in a last-one-wins fashion.
func MergeCountOptions(opts ...*CountOptions) *CountOptions {
	co := Count()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		mergeOperationOptions(&co.OperationOptions, &opt.OperationOptions)
		if opt.Collation != nil {
			co.Collation = opt.Collation
		}
		if opt.Limit != nil {
			co.Limit = opt.Limit
		}
		if opt.MaxTime != nil {
			co.MaxTime = opt.MaxTime
		}
		if opt.Skip != nil {
			co.Skip = opt.Skip
		}
	}
	return co
}

// EstimatedDocumentCountOptions represent all possible options to the
// EstimatedDocumentCount() function.
type EstimatedDocumentCountOptions struct {
	OperationOptions

	MaxTime *time.Duration
}

// EstimatedDocumentCount creates a new EstimatedDocumentCountOptions instance.
func EstimatedDocumentCount() *EstimatedDocumentCountOptions {
	return &EstimatedDocumentCountOptions{}
}

// SetMaxTime specifies the max time to allow the operation to run.
func (e *EstimatedDocumentCountOptions) SetMaxTime(d time.Duration) *EstimatedDocumentCountOptions {
	e.MaxTime = &d
	return e
}

// MergeEstimatedDocumentCountOptions combines the given
// EstimatedDocumentCountOptions instances into a single
// EstimatedDocumentCountOptions in a last-one-wins fashion.
func MergeEstimatedDocumentCountOptions(opts ...*EstimatedDocumentCountOptions) *EstimatedDocumentCountOptions {
	eo := EstimatedDocumentCount()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		mergeOperationOptions(&eo.OperationOptions, &opt.OperationOptions)
		if opt.MaxTime != nil {
			eo.MaxTime = opt.MaxTime
		}
	}
	return eo
}

// DistinctOptions represent all possible options to the Distinct() function.
type DistinctOptions struct {
	OperationOptions

	Collation *Collation
	MaxTime   *time.Duration
}

// Distinct creates a new DistinctOptions instance.
func Distinct() *DistinctOptions {
	return &DistinctOptions{}
}

// SetCollation sets the value for the Collation field.
func (d *DistinctOptions) SetCollation(c *Collation) *DistinctOptions {
	d.Collation = c
	return d
}

// SetMaxTime specifies the max time to allow the operation to run.
func (d *DistinctOptions) SetMaxTime(duration time.Duration) *DistinctOptions {
	d.MaxTime = &duration
	return d
}

// MergeDistinctOptions combines the given DistinctOptions instances into a
// single DistinctOptions in a last-one-wins fashion.
func MergeDistinctOptions(opts ...*DistinctOptions) *DistinctOptions {
	do := Distinct()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		mergeOperationOptions(&do.OperationOptions, &opt.OperationOptions)
		if opt.Collation != nil {
			do.Collation = opt.Collation
		}
		if opt.MaxTime != nil {
			do.MaxTime = opt.MaxTime
		}
	}
	return do
}

// MapReduceOptions represent all possible options to the MapReduce() function.
type MapReduceOptions struct {
	OperationOptions

	// The output target for the operation. Required: map-reduce without an
	// output target is rejected before dispatch.
	Out interface{}

	Finalize *string
	Limit    *int64
	Scope    interface{}
	Sort     interface{}
	Verbose  *bool
}

// MapReduce creates a new MapReduceOptions instance.
func MapReduce() *MapReduceOptions {
	return &MapReduceOptions{}
}

// SetOut sets the output target for the operation.
func (m *MapReduceOptions) SetOut(out interface{}) *MapReduceOptions {
	m.Out = out
	return m
}

// SetFinalize sets a finalize function applied to reduced values.
func (m *MapReduceOptions) SetFinalize(f string) *MapReduceOptions {
	m.Finalize = &f
	return m
}

// SetLimit sets the maximum number of documents fed to the map function.
func (m *MapReduceOptions) SetLimit(i int64) *MapReduceOptions {
	m.Limit = &i
	return m
}

// SetScope sets global variables accessible from the map, reduce, and
// finalize functions.
func (m *MapReduceOptions) SetScope(scope interface{}) *MapReduceOptions {
	m.Scope = scope
	return m
}

// SetSort sets the sort order for input documents.
func (m *MapReduceOptions) SetSort(sort interface{}) *MapReduceOptions {
	m.Sort = sort
	return m
}

// SetVerbose sets whether timing statistics are included in the response.
func (m *MapReduceOptions) SetVerbose(b bool) *MapReduceOptions {
	m.Verbose = &b
	return m
}

// MergeMapReduceOptions combines the given MapReduceOptions instances into a
// single MapReduceOptions in a last-one-wins fashion.
func MergeMapReduceOptions(opts ...*MapReduceOptions) *MapReduceOptions {
	mo := MapReduce()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		mergeOperationOptions(&mo.OperationOptions, &opt.OperationOptions)
		if opt.Out != nil {
			mo.Out = opt.Out
		}
		if opt.Finalize != nil {
			mo.Finalize = opt.Finalize
		}
		if opt.Limit != nil {
			mo.Limit = opt.Limit
		}
		if opt.Scope != nil {
			mo.Scope = opt.Scope
		}
		if opt.Sort != nil {
			mo.Sort = opt.Sort
		}
		if opt.Verbose != nil {
			mo.Verbose = opt.Verbose
		}
	}
	return mo
}
