// Copyright (C) OpalDB, Inc. 2024-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

// Package options defines the optional configuration accepted by the public
// entry points of the driver.
package options

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/opaldb/opal-go-driver/opal/readconcern"
	"github.com/opaldb/opal-go-driver/opal/readpref"
	"github.com/opaldb/opal-go-driver/opal/session"
	"github.com/opaldb/opal-go-driver/opal/writeconcern"
)

// PKFactory generates primary keys for documents inserted without an _id
// field.
type PKFactory interface {
	NewPrimaryKey() interface{}
}

// OperationOptions holds the options shared by every operation: the
// configuration that participates in the call-site → collection → database →
// client resolution chain. It is embedded in each per-operation options
// struct. A nil field defers to the next scope in the chain.
type OperationOptions struct {
	ReadPreference *readpref.ReadPref
	ReadConcern    *readconcern.ReadConcern
	WriteConcern   *writeconcern.WriteConcern
	BSON           *BSONOptions
	Session        *session.Session
	Hint           interface{}
}

// mergeOperationOptions folds src into dst in a last-one-wins fashion.
func mergeOperationOptions(dst, src *OperationOptions) {
	if src.ReadPreference != nil {
		dst.ReadPreference = src.ReadPreference
	}
	if src.ReadConcern != nil {
		dst.ReadConcern = src.ReadConcern
	}
	if src.WriteConcern != nil {
		dst.WriteConcern = src.WriteConcern
	}
	if src.BSON != nil {
		dst.BSON = MergeBSONOptions(dst.BSON, src.BSON)
	}
	if src.Session != nil {
		dst.Session = src.Session
	}
	if src.Hint != nil {
		dst.Hint = src.Hint
	}
}

// BSONOptions controls how documents attached to an operation are encoded by
// the executor. A nil field defers to the next scope in the resolution chain.
type BSONOptions struct {
	// If true, document payloads are handed to the executor as raw bytes
	// instead of decoded values.
	Raw *bool

	// If true, 64-bit integers that fit are decoded into plain ints.
	PromoteLongs *bool

	// If true, wrapper number types are decoded into their native values.
	PromoteValues *bool

	// If true, binary values are decoded into plain byte slices.
	PromoteBuffers *bool

	// If true, function-valued fields are serialized instead of rejected.
	SerializeFunctions *bool

	// If true, fields with undefined values are dropped during encoding
	// rather than written as nulls.
	IgnoreUndefined *bool
}

// BSON creates a new BSONOptions instance.
func BSON() *BSONOptions {
	return &BSONOptions{}
}

// SetRaw sets the value for the Raw field.
func (b *BSONOptions) SetRaw(raw bool) *BSONOptions {
	b.Raw = &raw
	return b
}

// SetPromoteLongs sets the value for the PromoteLongs field.
func (b *BSONOptions) SetPromoteLongs(promote bool) *BSONOptions {
	b.PromoteLongs = &promote
	return b
}

// SetPromoteValues sets the value for the PromoteValues field.
func (b *BSONOptions) SetPromoteValues(promote bool) *BSONOptions {
	b.PromoteValues = &promote
	return b
}

// SetPromoteBuffers sets the value for the PromoteBuffers field.
func (b *BSONOptions) SetPromoteBuffers(promote bool) *BSONOptions {
	b.PromoteBuffers = &promote
	return b
}

// SetSerializeFunctions sets the value for the SerializeFunctions field.
func (b *BSONOptions) SetSerializeFunctions(serialize bool) *BSONOptions {
	b.SerializeFunctions = &serialize
	return b
}

// SetIgnoreUndefined sets the value for the IgnoreUndefined field.
func (b *BSONOptions) SetIgnoreUndefined(ignore bool) *BSONOptions {
	b.IgnoreUndefined = &ignore
	return b
}

// MergeBSONOptions combines the given BSONOptions instances into a single
// BSONOptions in a last-one-wins fashion.
func MergeBSONOptions(opts ...*BSONOptions) *BSONOptions {
	merged := BSON()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if opt.Raw != nil {
			merged.Raw = opt.Raw
		}
		if opt.PromoteLongs != nil {
			merged.PromoteLongs = opt.PromoteLongs
		}
		if opt.PromoteValues != nil {
			merged.PromoteValues = opt.PromoteValues
		}
		if opt.PromoteBuffers != nil {
			merged.PromoteBuffers = opt.PromoteBuffers
		}
		if opt.SerializeFunctions != nil {
			merged.SerializeFunctions = opt.SerializeFunctions
		}
		if opt.IgnoreUndefined != nil {
			merged.IgnoreUndefined = opt.IgnoreUndefined
		}
	}
	return merged
}

// Collation allows users to specify language-specific rules for string
// comparison, such as rules for letter case and accent marks.
type Collation struct {
	Locale          string
	CaseLevel       bool
	CaseFirst       string
	Strength        int
	NumericOrdering bool
	Alternate       string
	MaxVariable     string
	Normalization   bool
	Backwards       bool
}

// ToDocument converts the Collation to a command sub-document.
func (co *Collation) ToDocument() bson.D {
	doc := bson.D{}
	if co.Locale != "" {
		doc = append(doc, bson.E{Key: "locale", Value: co.Locale})
	}
	if co.CaseLevel {
		doc = append(doc, bson.E{Key: "caseLevel", Value: true})
	}
	if co.CaseFirst != "" {
		doc = append(doc, bson.E{Key: "caseFirst", Value: co.CaseFirst})
	}
	if co.Strength != 0 {
		doc = append(doc, bson.E{Key: "strength", Value: co.Strength})
	}
	if co.NumericOrdering {
		doc = append(doc, bson.E{Key: "numericOrdering", Value: true})
	}
	if co.Alternate != "" {
		doc = append(doc, bson.E{Key: "alternate", Value: co.Alternate})
	}
	if co.MaxVariable != "" {
		doc = append(doc, bson.E{Key: "maxVariable", Value: co.MaxVariable})
	}
	if co.Normalization {
		doc = append(doc, bson.E{Key: "normalization", Value: true})
	}
	if co.Backwards {
		doc = append(doc, bson.E{Key: "backwards", Value: true})
	}
	return doc
}

// CursorType specifies whether a cursor should close when the last data is
// retrieved.
type CursorType int8

const (
	// NonTailable specifies that a cursor should close after retrieving the
	// last data.
	NonTailable CursorType = iota
	// Tailable specifies that a cursor should remain open after retrieving
	// the last data.
	Tailable
	// TailableAwait specifies that a cursor should remain open and block for
	// new data before returning an empty batch.
	TailableAwait
)

// ReturnDocument specifies whether a findAndModify operation should return the
// document as it was before the modification or as it is after.
type ReturnDocument int8

const (
	// Before specifies that findAndModify should return the document before
	// the modification.
	Before ReturnDocument = iota
	// After specifies that findAndModify should return the document after the
	// modification.
	After
)
