// Copyright (C) OpalDB, Inc. 2024-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package options

// InsertOneOptions represent all possible options to the InsertOne() function.
type InsertOneOptions struct {
	OperationOptions

	// If true, writes executed as part of the operation will opt out of
	// document-level validation on the server.
	BypassDocumentValidation *bool
}

// InsertOne creates a new InsertOneOptions instance.
func InsertOne() *InsertOneOptions {
	return &InsertOneOptions{}
}

// SetBypassDocumentValidation sets the value for the BypassDocumentValidation field.
func (i *InsertOneOptions) SetBypassDocumentValidation(b bool) *InsertOneOptions {
	i.BypassDocumentValidation = &b
	return i
}

// MergeInsertOneOptions combines the given InsertOneOptions instances into a
// single InsertOneOptions in a last-one-wins fashion.
func MergeInsertOneOptions(opts ...*InsertOneOptions) *InsertOneOptions {
	ioo := InsertOne()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		mergeOperationOptions(&ioo.OperationOptions, &opt.OperationOptions)
		if opt.BypassDocumentValidation != nil {
			ioo.BypassDocumentValidation = opt.BypassDocumentValidation
		}
	}
	return ioo
}

// InsertManyOptions represent all possible options to the InsertMany() function.
type InsertManyOptions struct {
	OperationOptions

	// If true, writes executed as part of the operation will opt out of
	// document-level validation on the server.
	BypassDocumentValidation *bool

	// If true, no writes will be executed after one fails. The default value
	// is true.
	Ordered *bool
}

// InsertMany creates a new InsertManyOptions instance.
func InsertMany() *InsertManyOptions {
	return &InsertManyOptions{}
}

// SetBypassDocumentValidation sets the value for the BypassDocumentValidation field.
func (i *InsertManyOptions) SetBypassDocumentValidation(b bool) *InsertManyOptions {
	i.BypassDocumentValidation = &b
	return i
}

// SetOrdered sets the value for the Ordered field.
func (i *InsertManyOptions) SetOrdered(b bool) *InsertManyOptions {
	i.Ordered = &b
	return i
}

// MergeInsertManyOptions combines the given InsertManyOptions instances into
// a single InsertManyOptions in a last-one-wins fashion.
func MergeInsertManyOptions(opts ...*InsertManyOptions) *InsertManyOptions {
	imo := InsertMany()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		mergeOperationOptions(&imo.OperationOptions, &opt.OperationOptions)
		if opt.BypassDocumentValidation != nil {
			imo.BypassDocumentValidation = opt.BypassDocumentValidation
		}
		if opt.Ordered != nil {
			imo.Ordered = opt.Ordered
		}
	}
	return imo
}

// BulkWriteOptions represent all possible options to the BulkWrite() function.
type BulkWriteOptions struct {
	OperationOptions

	// If true, writes executed as part of the operation will opt out of
	// document-level validation on the server.
	BypassDocumentValidation *bool

	// If true, no writes will be executed after one fails. The default value
	// is true.
	Ordered *bool
}

// BulkWrite creates a new BulkWriteOptions instance.
func BulkWrite() *BulkWriteOptions {
	return &BulkWriteOptions{}
}

// SetBypassDocumentValidation sets the value for the BypassDocumentValidation field.
func (b *BulkWriteOptions) SetBypassDocumentValidation(bypass bool) *BulkWriteOptions {
	b.BypassDocumentValidation = &bypass
	return b
}

// SetOrdered sets the value for the Ordered field.
func (b *BulkWriteOptions) SetOrdered(ordered bool) *BulkWriteOptions {
	b.Ordered = &ordered
	return b
}

// MergeBulkWriteOptions combines the given BulkWriteOptions instances into a
// single BulkWriteOptions in a last-one-wins fashion.
func MergeBulkWriteOptions(opts ...*BulkWriteOptions) *BulkWriteOptions {
	bwo := BulkWrite()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		mergeOperationOptions(&bwo.OperationOptions, &opt.OperationOptions)
		if opt.BypassDocumentValidation != nil {
			bwo.BypassDocumentValidation = opt.BypassDocumentValidation
		}
		if opt.Ordered != nil {
			bwo.Ordered = opt.Ordered
		}
	}
	return bwo
}
