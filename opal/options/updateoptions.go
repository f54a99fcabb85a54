// Copyright (C) OpalDB, Inc. 2024-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package options

// ArrayFilters is used to hold filters for the array filters CRUD option. If
// a registry is nil, bson.DefaultRegistry will be used when converting the
// filter interfaces to BSON.
type ArrayFilters struct {
	Filters []interface{}
}

// UpdateOptions represent all possible options to the UpdateOne() and
// UpdateMany() functions.
type UpdateOptions struct {
	OperationOptions

	// A set of filters specifying to which array elements an update should apply.
	ArrayFilters *ArrayFilters

	// If true, writes executed as part of the operation will opt out of
	// document-level validation on the server.
	BypassDocumentValidation *bool

	// Specifies a collation to use for string comparisons during the operation.
	Collation *Collation

	// If true, a new document will be inserted if the filter does not match
	// any documents in the collection.
	Upsert *bool
}

// Update creates a new UpdateOptions instance.
func Update() *UpdateOptions {
	return &UpdateOptions{}
}

// SetArrayFilters sets the value for the ArrayFilters field.
func (u *UpdateOptions) SetArrayFilters(filters ArrayFilters) *UpdateOptions {
	u.ArrayFilters = &filters
	return u
}

// SetBypassDocumentValidation sets the value for the BypassDocumentValidation field.
func (u *UpdateOptions) SetBypassDocumentValidation(b bool) *UpdateOptions {
	u.BypassDocumentValidation = &b
	return u
}

// SetCollation sets the value for the Collation field.
func (u *UpdateOptions) SetCollation(c *Collation) *UpdateOptions {
	u.Collation = c
	return u
}

// SetUpsert sets the value for the Upsert field.
func (u *UpdateOptions) SetUpsert(b bool) *UpdateOptions {
	u.Upsert = &b
	return u
}

// MergeUpdateOptions combines the given UpdateOptions instances into a single
// UpdateOptions in a last-one-wins fashion.
func MergeUpdateOptions(opts ...*UpdateOptions) *UpdateOptions {
	uo := Update()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		mergeOperationOptions(&uo.OperationOptions, &opt.OperationOptions)
		if opt.ArrayFilters != nil {
			uo.ArrayFilters = opt.ArrayFilters
		}
		if opt.BypassDocumentValidation != nil {
			uo.BypassDocumentValidation = opt.BypassDocumentValidation
		}
		if opt.Collation != nil {
			uo.Collation = opt.Collation
		}
		if opt.Upsert != nil {
			uo.Upsert = opt.Upsert
		}
	}
	return uo
}

// ReplaceOptions represent all possible options to the ReplaceOne() function.
type ReplaceOptions struct {
	OperationOptions

	// If true, writes executed as part of the operation will opt out of
	// document-level validation on the server.
	BypassDocumentValidation *bool

	// Specifies a collation to use for string comparisons during the operation.
	Collation *Collation

	// If true, a new document will be inserted if the filter does not match
	// any documents in the collection.
	Upsert *bool
}

// Replace creates a new ReplaceOptions instance.
func Replace() *ReplaceOptions {
	return &ReplaceOptions{}
}

// SetBypassDocumentValidation sets the value for the BypassDocumentValidation field.
func (r *ReplaceOptions) SetBypassDocumentValidation(b bool) *ReplaceOptions {
	r.BypassDocumentValidation = &b
	return r
}

// SetCollation sets the value for the Collation field.
func (r *ReplaceOptions) SetCollation(c *Collation) *ReplaceOptions {
	r.Collation = c
	return r
}

// SetUpsert sets the value for the Upsert field.
func (r *ReplaceOptions) SetUpsert(b bool) *ReplaceOptions {
	r.Upsert = &b
	return r
}

// MergeReplaceOptions combines the given ReplaceOptions instances into a
// single ReplaceOptions in a last-one-wins fashion.
func MergeReplaceOptions(opts ...*ReplaceOptions) *ReplaceOptions {
	ro := Replace()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		mergeOperationOptions(&ro.OperationOptions, &opt.OperationOptions)
		if opt.BypassDocumentValidation != nil {
			ro.BypassDocumentValidation = opt.BypassDocumentValidation
		}
		if opt.Collation != nil {
			ro.Collation = opt.Collation
		}
		if opt.Upsert != nil {
			ro.Upsert = opt.Upsert
		}
	}
	return ro
}

// DeleteOptions represent all possible options to the DeleteOne() and
// DeleteMany() functions.
type DeleteOptions struct {
	OperationOptions

	// Specifies a collation to use for string comparisons during the operation.
	Collation *Collation
}

// Delete creates a new DeleteOptions instance.
func Delete() *DeleteOptions {
	return &DeleteOptions{}
}

// SetCollation sets the value for the Collation field.
func (d *DeleteOptions) SetCollation(c *Collation) *DeleteOptions {
	d.Collation = c
	return d
}

// SetHint specifies the index to use.
func (d *DeleteOptions) SetHint(hint interface{}) *DeleteOptions {
	d.OperationOptions.Hint = hint
	return d
}

// MergeDeleteOptions combines the given DeleteOptions instances into a single
// DeleteOptions in a last-one-wins fashion.
func MergeDeleteOptions(opts ...*DeleteOptions) *DeleteOptions {
	do := Delete()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		mergeOperationOptions(&do.OperationOptions, &opt.OperationOptions)
		if opt.Collation != nil {
			do.Collation = opt.Collation
		}
	}
	return do
}
