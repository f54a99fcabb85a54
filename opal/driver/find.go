// Copyright (C) OpalDB, Inc. 2024-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package driver

import (
	"encoding/binary"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/opaldb/opal-go-driver/opal/options"
	"github.com/opaldb/opal-go-driver/opal/readconcern"
	"github.com/opaldb/opal-go-driver/opal/session"
)

// FindCommand is the canonical, server-ready shape of a query. It is a value
// object: compiled once per call, never mutated afterwards.
type FindCommand struct {
	NS     Namespace
	Filter interface{}

	Fields interface{} // projection document
	Sort   bson.D
	Skip   int64
	Limit  int64
	Hint   interface{} // canonical document shape

	SingleBatch         bool
	BatchSize           *int32
	Comment             string
	Max                 interface{}
	Min                 interface{}
	MaxTimeMS           int64
	MaxAwaitTimeMS      int64
	AllowDiskUse        bool
	AllowPartialResults bool
	NoCursorTimeout     bool
	Tailable            bool
	AwaitData           bool
	ReturnKey           bool
	ShowRecordID        bool

	Collation   bson.D
	ReadConcern *readconcern.ReadConcern
	Session     *session.Session

	// SecondaryOK records whether the resolved read preference allows the
	// executor to select a non-primary member for this query.
	SecondaryOK bool
}

// CompileFind converts a filter plus options into a canonical find command.
// It performs no network interaction.
func CompileFind(ns Namespace, filter interface{}, fo *options.FindOptions, opts EffectiveOptions) (*FindCommand, error) {
	if fo == nil {
		fo = options.Find()
	}

	f, err := NormalizeFilter(filter)
	if err != nil {
		return nil, err
	}

	cmd := &FindCommand{
		NS:          ns,
		Filter:      f,
		ReadConcern: opts.ReadConcern,
		Session:     opts.Session,
		SecondaryOK: opts.SecondaryOK(),
	}

	projection := fo.Projection
	if projection == nil {
		projection = fo.Fields
	}
	cmd.Fields, err = NormalizeProjection(projection)
	if err != nil {
		return nil, err
	}

	hint := fo.OperationOptions.Hint
	if hint == nil {
		hint = opts.Hint
	}
	cmd.Hint, err = NormalizeHint(hint)
	if err != nil {
		return nil, err
	}

	cmd.Sort, err = FormatSort(fo.Sort)
	if err != nil {
		return nil, err
	}

	if fo.Skip != nil {
		cmd.Skip = *fo.Skip
	}
	if fo.Limit != nil {
		cmd.Limit = *fo.Limit
		if cmd.Limit < 0 {
			cmd.Limit = -cmd.Limit
			cmd.SingleBatch = true
		}
	}
	if fo.BatchSize != nil {
		cmd.BatchSize = fo.BatchSize
	}
	if fo.Comment != nil {
		cmd.Comment = *fo.Comment
	}
	cmd.Max = fo.Max
	cmd.Min = fo.Min
	if fo.MaxTime != nil {
		cmd.MaxTimeMS = int64(*fo.MaxTime / time.Millisecond)
	}
	if fo.MaxAwaitTime != nil {
		cmd.MaxAwaitTimeMS = int64(*fo.MaxAwaitTime / time.Millisecond)
	}
	if fo.AllowDiskUse != nil {
		cmd.AllowDiskUse = *fo.AllowDiskUse
	}
	if fo.AllowPartialResults != nil {
		cmd.AllowPartialResults = *fo.AllowPartialResults
	}
	if fo.ReturnKey != nil {
		cmd.ReturnKey = *fo.ReturnKey
	}
	if fo.ShowRecordID != nil {
		cmd.ShowRecordID = *fo.ShowRecordID
	}

	// The legacy timeout flag is passed through as the no-cursor-timeout
	// flag; the modern option wins when both are present.
	if fo.Timeout != nil {
		cmd.NoCursorTimeout = *fo.Timeout
	}
	if fo.NoCursorTimeout != nil {
		cmd.NoCursorTimeout = *fo.NoCursorTimeout
	}

	// The case-variant awaitdata flag maps onto the canonical awaitData flag.
	if fo.AwaitData != nil {
		cmd.AwaitData = *fo.AwaitData
	}
	if fo.CursorType != nil {
		switch *fo.CursorType {
		case options.Tailable:
			cmd.Tailable = true
		case options.TailableAwait:
			cmd.Tailable = true
			cmd.AwaitData = true
		}
	}

	if fo.Collation != nil {
		cmd.Collation = fo.Collation.ToDocument()
	}

	return cmd, nil
}

// NormalizeFilter coerces the supported filter shapes into an object-shaped
// document. An array-shaped filter is discarded and replaced with an empty
// filter. A raw byte buffer must carry a little-endian length prefix equal to
// its total length. A bare primary-key value is wrapped as {_id: value}.
func NormalizeFilter(filter interface{}) (interface{}, error) {
	switch f := filter.(type) {
	case nil:
		return bson.D{}, nil
	case bson.A:
		return bson.D{}, nil
	case []interface{}:
		return bson.D{}, nil
	case bson.Raw:
		return validateRawFilter(f)
	case []byte:
		return validateRawFilter(bson.Raw(f))
	case primitive.ObjectID:
		return bson.D{{Key: "_id", Value: f}}, nil
	default:
		return filter, nil
	}
}

func validateRawFilter(raw bson.Raw) (bson.Raw, error) {
	if len(raw) < 4 {
		return nil, MalformedMessageError{Expected: 0, Actual: len(raw)}
	}
	declared := int(binary.LittleEndian.Uint32(raw[0:4]))
	if declared != len(raw) {
		return nil, MalformedMessageError{Expected: declared, Actual: len(raw)}
	}
	return raw, nil
}

// NormalizeProjection rewrites a field-name sequence into an inclusion
// document. An empty sequence always includes at least the identifier.
// Document-shaped projections pass through unchanged.
func NormalizeProjection(projection interface{}) (interface{}, error) {
	switch p := projection.(type) {
	case nil:
		return nil, nil
	case []string:
		if len(p) == 0 {
			return bson.D{{Key: "_id", Value: 1}}, nil
		}
		doc := make(bson.D, 0, len(p))
		for _, field := range p {
			doc = append(doc, bson.E{Key: field, Value: 1})
		}
		return doc, nil
	case bson.D, bson.M:
		return p, nil
	default:
		return nil, InvalidArgumentError{Method: "find", Reason: "projection must be a document or a sequence of field names"}
	}
}

// NormalizeHint coerces the supported hint shapes (index name string, ordered
// field sequence, document) into one canonical document shape. It is its own
// fixed point on an already-canonical document.
func NormalizeHint(hint interface{}) (interface{}, error) {
	switch h := hint.(type) {
	case nil:
		return nil, nil
	case string:
		return bson.D{{Key: h, Value: 1}}, nil
	case []string:
		doc := make(bson.D, 0, len(h))
		for _, field := range h {
			doc = append(doc, bson.E{Key: field, Value: 1})
		}
		return doc, nil
	case bson.D, bson.M:
		return h, nil
	default:
		return nil, InvalidArgumentError{Method: "find", Reason: "hint must be a string, a sequence of field names, or a document"}
	}
}

// FormatSort normalizes a sort given as an ordered (field, direction)
// sequence, a single field name, or a document into one canonical ordered
// document. Map-shaped sorts are ordered by key for determinism; callers that
// need a specific order pass bson.D.
func FormatSort(spec interface{}) (bson.D, error) {
	switch s := spec.(type) {
	case nil:
		return nil, nil
	case string:
		return bson.D{{Key: s, Value: int32(1)}}, nil
	case []string:
		doc := make(bson.D, 0, len(s))
		for _, field := range s {
			doc = append(doc, bson.E{Key: field, Value: int32(1)})
		}
		return doc, nil
	case bson.D:
		doc := make(bson.D, 0, len(s))
		for _, e := range s {
			dir, err := sortDirection(e.Value)
			if err != nil {
				return nil, err
			}
			doc = append(doc, bson.E{Key: e.Key, Value: dir})
		}
		return doc, nil
	case bson.M:
		keys := make([]string, 0, len(s))
		for k := range s {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		doc := make(bson.D, 0, len(s))
		for _, k := range keys {
			dir, err := sortDirection(s[k])
			if err != nil {
				return nil, err
			}
			doc = append(doc, bson.E{Key: k, Value: dir})
		}
		return doc, nil
	default:
		return nil, InvalidArgumentError{Method: "find", Reason: "sort must be a string, a sequence of field names, or a document"}
	}
}

// sortDirection maps the supported direction spellings onto the canonical
// values: 1, -1, or the text-score meta document.
func sortDirection(value interface{}) (interface{}, error) {
	switch v := value.(type) {
	case int:
		return int32(v), nil
	case int32:
		return v, nil
	case int64:
		return int32(v), nil
	case float32:
		return int32(v), nil
	case float64:
		return int32(v), nil
	case string:
		switch v {
		case "asc", "ascending":
			return int32(1), nil
		case "desc", "descending":
			return int32(-1), nil
		case "textScore":
			return bson.D{{Key: "$meta", Value: "textScore"}}, nil
		}
	case bson.D, bson.M:
		// meta sort, e.g. {$meta: "textScore"}
		return v, nil
	}
	return nil, InvalidArgumentError{Method: "find", Reason: "invalid sort direction"}
}

// Document renders the command in its canonical wire-ready shape. Key order
// is part of the contract: find, filter, limit, and skip always appear, in
// that order, followed by the optional fields.
func (cmd *FindCommand) Document() bson.D {
	doc := bson.D{
		{Key: "find", Value: cmd.NS.FullName()},
		{Key: "filter", Value: cmd.Filter},
		{Key: "limit", Value: cmd.Limit},
		{Key: "skip", Value: cmd.Skip},
	}
	if cmd.Fields != nil {
		doc = append(doc, bson.E{Key: "fields", Value: cmd.Fields})
	}
	if cmd.Sort != nil {
		doc = append(doc, bson.E{Key: "sort", Value: cmd.Sort})
	}
	if cmd.Hint != nil {
		doc = append(doc, bson.E{Key: "hint", Value: cmd.Hint})
	}
	if cmd.Comment != "" {
		doc = append(doc, bson.E{Key: "comment", Value: cmd.Comment})
	}
	if cmd.Max != nil {
		doc = append(doc, bson.E{Key: "max", Value: cmd.Max})
	}
	if cmd.Min != nil {
		doc = append(doc, bson.E{Key: "min", Value: cmd.Min})
	}
	if cmd.BatchSize != nil {
		doc = append(doc, bson.E{Key: "batchSize", Value: *cmd.BatchSize})
	}
	if cmd.SingleBatch {
		doc = append(doc, bson.E{Key: "singleBatch", Value: true})
	}
	if cmd.MaxTimeMS > 0 {
		doc = append(doc, bson.E{Key: "maxTimeMS", Value: cmd.MaxTimeMS})
	}
	if cmd.AllowDiskUse {
		doc = append(doc, bson.E{Key: "allowDiskUse", Value: true})
	}
	if cmd.AllowPartialResults {
		doc = append(doc, bson.E{Key: "allowPartialResults", Value: true})
	}
	if cmd.NoCursorTimeout {
		doc = append(doc, bson.E{Key: "noCursorTimeout", Value: true})
	}
	if cmd.Tailable {
		doc = append(doc, bson.E{Key: "tailable", Value: true})
	}
	if cmd.AwaitData {
		doc = append(doc, bson.E{Key: "awaitData", Value: true})
	}
	if cmd.ReturnKey {
		doc = append(doc, bson.E{Key: "returnKey", Value: true})
	}
	if cmd.ShowRecordID {
		doc = append(doc, bson.E{Key: "showRecordId", Value: true})
	}
	if cmd.Collation != nil {
		doc = append(doc, bson.E{Key: "collation", Value: cmd.Collation})
	}
	if cmd.ReadConcern != nil {
		doc = append(doc, bson.E{Key: "readConcern", Value: cmd.ReadConcern.Document()})
	}
	if cmd.Session != nil {
		doc = append(doc, bson.E{Key: "lsid", Value: cmd.Session.Document()})
	}
	return doc
}
