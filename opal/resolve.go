// Copyright (C) OpalDB, Inc. 2024-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package opal

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/opaldb/opal-go-driver/opal/driver"
	"github.com/opaldb/opal-go-driver/opal/options"
)

// effectiveOptions resolves the configuration for one call. Precedence: a
// field explicitly present in the call options wins; otherwise the
// collection's stored value applies (which already folds in the database and
// client defaults); otherwise the hard-coded system default. The inputs are
// never mutated: every call produces a fresh EffectiveOptions.
//
// The serialization flags are resolved through the full chain even when the
// call supplied its own BSON options, so that IgnoreUndefined configured on a
// collection governs every insert/update/delete against it regardless of
// what else the call set.
func (coll *Collection) effectiveOptions(call options.OperationOptions) driver.EffectiveOptions {
	eff := driver.EffectiveOptions{
		ReadPreference: coll.readPreference,
		ReadConcern:    coll.readConcern,
		WriteConcern:   coll.writeConcern,
		Session:        call.Session,
		Hint:           coll.hint,
	}
	if call.ReadPreference != nil {
		eff.ReadPreference = call.ReadPreference
	}
	if call.ReadConcern != nil {
		eff.ReadConcern = call.ReadConcern
	}
	if call.WriteConcern != nil {
		eff.WriteConcern = call.WriteConcern
	}
	if call.Hint != nil {
		eff.Hint = call.Hint
	}

	flags := options.MergeBSONOptions(coll.bsonOpts, call.BSON)
	eff.Raw = boolOr(flags.Raw, false)
	eff.PromoteLongs = boolOr(flags.PromoteLongs, true)
	eff.PromoteValues = boolOr(flags.PromoteValues, true)
	eff.PromoteBuffers = boolOr(flags.PromoteBuffers, false)
	eff.SerializeFunctions = boolOr(flags.SerializeFunctions, false)
	eff.IgnoreUndefined = boolOr(flags.IgnoreUndefined, false)

	return eff
}

func boolOr(b *bool, def bool) bool {
	if b == nil {
		return def
	}
	return *b
}

// transformDocument coerces a user-supplied value into an ordered document.
// bson.D values pass through; everything else round-trips through the bson
// codec the way the executor will eventually encode it.
func transformDocument(val interface{}) (bson.D, error) {
	if val == nil {
		return nil, ErrNilDocument
	}
	switch d := val.(type) {
	case bson.D:
		return d, nil
	case bson.Raw:
		var out bson.D
		if err := bson.Unmarshal(d, &out); err != nil {
			return nil, err
		}
		return out, nil
	}
	b, err := bson.Marshal(val)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot transform type %T to a document", val)
	}
	var out bson.D
	if err := bson.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ensureID transforms the document and guarantees it carries an _id, using
// the collection's primary-key factory when the caller did not supply one.
// The _id is moved to the front of the document. Returns the transformed
// document and its identifier.
func (coll *Collection) ensureID(document interface{}) (bson.D, interface{}, error) {
	doc, err := transformDocument(document)
	if err != nil {
		return nil, nil, err
	}
	for i, e := range doc {
		if e.Key != "_id" {
			continue
		}
		if i > 0 {
			out := make(bson.D, 0, len(doc))
			out = append(out, e)
			out = append(out, doc[:i]...)
			out = append(out, doc[i+1:]...)
			doc = out
		}
		return doc, doc[0].Value, nil
	}
	id := coll.pkFactory.NewPrimaryKey()
	out := make(bson.D, 0, len(doc)+1)
	out = append(out, bson.E{Key: "_id", Value: id})
	out = append(out, doc...)
	return out, id, nil
}

// ensureDollarKey requires the update document to hold operator expressions.
func ensureDollarKey(update bson.D, method string) error {
	if len(update) > 0 && !strings.HasPrefix(update[0].Key, "$") {
		return driver.InvalidArgumentError{
			Method: method,
			Reason: "update document must contain key beginning with '$'",
		}
	}
	return nil
}

// ensureNoDollarKey requires the replacement document to hold no operator
// expressions.
func ensureNoDollarKey(replacement bson.D, method string) error {
	if len(replacement) > 0 && strings.HasPrefix(replacement[0].Key, "$") {
		return driver.InvalidArgumentError{
			Method: method,
			Reason: "replacement document cannot contain keys beginning with '$'",
		}
	}
	return nil
}

// transformAggregatePipeline coerces the supported pipeline shapes into an
// array and reports whether the final stage writes its output server-side.
func transformAggregatePipeline(pipeline interface{}) (bson.A, bool, error) {
	var arr bson.A
	switch p := pipeline.(type) {
	case bson.A:
		arr = p
	case []interface{}:
		arr = bson.A(p)
	case []bson.D:
		arr = make(bson.A, 0, len(p))
		for _, stage := range p {
			arr = append(arr, stage)
		}
	case []bson.M:
		arr = make(bson.A, 0, len(p))
		for _, stage := range p {
			arr = append(arr, stage)
		}
	default:
		return nil, false, driver.InvalidArgumentError{
			Method: "aggregate",
			Reason: fmt.Sprintf("pipeline must be an ordered sequence of stages, got %T", pipeline),
		}
	}

	hasOutputStage := false
	if len(arr) > 0 {
		stage, err := transformDocument(arr[len(arr)-1])
		if err != nil {
			return nil, false, err
		}
		if len(stage) > 0 && (stage[0].Key == "$out" || stage[0].Key == "$merge") {
			hasOutputStage = true
		}
	}
	return arr, hasOutputStage, nil
}
