// Copyright (C) OpalDB, Inc. 2024-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package opal

// The methods in this file are the compatibility surface for callers ported
// from the old driver generation. Each one normalizes the overloaded legacy
// argument list, logs a one-time deprecation warning, and dispatches through
// the modern entry point it names as its replacement. A trailing Callback is
// invoked synchronously with the same values the method returns.

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/opaldb/opal-go-driver/opal/driver"
	"github.com/opaldb/opal-go-driver/opal/options"
	"github.com/opaldb/opal-go-driver/opal/readpref"
)

var (
	insertTemplate = argTemplate{
		method: "insert",
		specs:  []argSpec{requiredDoc("documents"), optionalMap("options")},
	}
	updateTemplate = argTemplate{
		method: "update",
		specs:  []argSpec{optionalDoc("selector"), requiredDoc("update"), optionalMap("options")},
	}
	removeTemplate = argTemplate{
		method: "remove",
		specs:  []argSpec{optionalDoc("selector"), optionalMap("options")},
	}
	countTemplate = argTemplate{
		method: "count",
		specs:  []argSpec{optionalDoc("query"), optionalMap("options")},
	}
	findAndModifyTemplate = argTemplate{
		method: "findAndModify",
		specs:  []argSpec{optionalDoc("query"), optionalDoc("sort"), requiredDoc("update"), optionalMap("options")},
	}
	findAndRemoveTemplate = argTemplate{
		method: "findAndRemove",
		specs:  []argSpec{optionalDoc("query"), optionalDoc("sort"), optionalMap("options")},
	}
	groupTemplate = argTemplate{
		method: "group",
		specs:  []argSpec{requiredDoc("spec")},
	}
	ensureIndexTemplate = argTemplate{
		method: "ensureIndex",
		specs:  []argSpec{requiredDoc("keys"), optionalMap("options")},
	}
)

func invokeCallback(cb Callback, result interface{}, err error) {
	if cb != nil {
		cb(result, err)
	}
}

// Insert inserts one or more documents.
//
// Deprecated: use InsertOne or InsertMany. Insert always dispatches a batch
// insert; a single document becomes a batch of one. The legacy keepGoing /
// continueOnError flags map onto an unordered batch.
func (coll *Collection) Insert(ctx context.Context, args ...interface{}) (*InsertManyResult, error) {
	coll.client.warnDeprecated("insert", "InsertMany")

	norm, cb, err := insertTemplate.normalize(args)
	if err != nil {
		invokeCallback(cb, nil, err)
		return nil, err
	}
	opts, err := legacyOptions(norm[1])
	if err != nil {
		invokeCallback(cb, nil, err)
		return nil, err
	}

	var docs []interface{}
	switch d := norm[0].(type) {
	case []interface{}:
		docs = d
	case bson.A:
		docs = d
	case []bson.D:
		docs = make([]interface{}, 0, len(d))
		for _, doc := range d {
			docs = append(docs, doc)
		}
	case []bson.M:
		docs = make([]interface{}, 0, len(d))
		for _, doc := range d {
			docs = append(docs, doc)
		}
	default:
		docs = []interface{}{d}
	}

	ordered := !legacyBool(opts, "keepGoing", "continueOnError")
	res, err := coll.InsertMany(ctx, docs, options.InsertMany().SetOrdered(ordered))
	invokeCallback(cb, res, err)
	return res, err
}

// Update updates every document matched by the selector.
//
// Deprecated: use UpdateOne, UpdateMany, or ReplaceOne. The old surface
// silently updated a single document unless a multi flag was set; that
// behavior was a recurring source of lost writes, so Update now always
// updates every match.
func (coll *Collection) Update(ctx context.Context, args ...interface{}) (*UpdateResult, error) {
	coll.client.warnDeprecated("update", "UpdateMany")

	norm, cb, err := updateTemplate.normalize(args)
	if err != nil {
		invokeCallback(cb, nil, err)
		return nil, err
	}
	opts, err := legacyOptions(norm[2])
	if err != nil {
		invokeCallback(cb, nil, err)
		return nil, err
	}

	uo := options.Update()
	if legacyBool(opts, "upsert") {
		uo.SetUpsert(true)
	}
	res, err := coll.UpdateMany(ctx, norm[0], norm[1], uo)
	invokeCallback(cb, res, err)
	return res, err
}

// Remove deletes every document matched by the selector.
//
// Deprecated: use DeleteOne or DeleteMany. The old single/justOne flag is
// gone; Remove always deletes every match.
func (coll *Collection) Remove(ctx context.Context, args ...interface{}) (*DeleteResult, error) {
	coll.client.warnDeprecated("remove", "DeleteMany")

	norm, cb, err := removeTemplate.normalize(args)
	if err != nil {
		invokeCallback(cb, nil, err)
		return nil, err
	}
	res, err := coll.DeleteMany(ctx, norm[0])
	invokeCallback(cb, res, err)
	return res, err
}

// Count returns an estimate of the collection size from collection metadata.
//
// Deprecated: use CountDocuments for an exact filtered count or
// EstimatedDocumentCount for the estimate. Count ignores its query argument
// and reports the metadata estimate, matching what the old surface actually
// delivered on sharded deployments.
func (coll *Collection) Count(ctx context.Context, args ...interface{}) (int64, error) {
	coll.client.warnDeprecated("count", "EstimatedDocumentCount")

	norm, cb, err := countTemplate.normalize(args)
	if err != nil {
		invokeCallback(cb, nil, err)
		return 0, err
	}
	opts, err := legacyOptions(norm[1])
	if err != nil {
		invokeCallback(cb, nil, err)
		return 0, err
	}

	eo := options.EstimatedDocumentCount()
	if ms, ok := legacyInt64(opts, "maxTimeMS"); ok {
		eo.SetMaxTime(time.Duration(ms) * time.Millisecond)
	}
	n, err := coll.EstimatedDocumentCount(ctx, eo)
	invokeCallback(cb, n, err)
	return n, err
}

// FindAndModify atomically updates one document and returns it. It always
// runs against the primary.
//
// Deprecated: use FindOneAndUpdate or FindOneAndReplace.
func (coll *Collection) FindAndModify(ctx context.Context, args ...interface{}) *SingleResult {
	coll.client.warnDeprecated("findAndModify", "FindOneAndUpdate")

	norm, cb, err := findAndModifyTemplate.normalize(args)
	if err != nil {
		invokeCallback(cb, nil, err)
		return &SingleResult{err: err}
	}
	opts, err := legacyOptions(norm[3])
	if err != nil {
		invokeCallback(cb, nil, err)
		return &SingleResult{err: err}
	}

	update, err := transformDocument(norm[2])
	if err != nil {
		invokeCallback(cb, nil, err)
		return &SingleResult{err: err}
	}

	var body bson.D
	if sort, err := driver.FormatSort(norm[1]); err != nil {
		invokeCallback(cb, nil, err)
		return &SingleResult{err: err}
	} else if len(sort) > 0 {
		body = append(body, bson.E{Key: "sort", Value: sort})
	}
	if legacyBool(opts, "upsert") {
		body = append(body, bson.E{Key: "upsert", Value: true})
	}
	if legacyBool(opts, "new") {
		body = append(body, bson.E{Key: "new", Value: true})
	}

	res := coll.legacyFindAndModify(ctx, norm[0], update, body)
	invokeCallback(cb, res, res.Err())
	return res
}

// FindAndRemove atomically deletes one document and returns it. It always
// runs against the primary.
//
// Deprecated: use FindOneAndDelete.
func (coll *Collection) FindAndRemove(ctx context.Context, args ...interface{}) *SingleResult {
	coll.client.warnDeprecated("findAndRemove", "FindOneAndDelete")

	norm, cb, err := findAndRemoveTemplate.normalize(args)
	if err != nil {
		invokeCallback(cb, nil, err)
		return &SingleResult{err: err}
	}

	body := bson.D{{Key: "remove", Value: true}}
	if sort, err := driver.FormatSort(norm[1]); err != nil {
		invokeCallback(cb, nil, err)
		return &SingleResult{err: err}
	} else if len(sort) > 0 {
		body = append(body, bson.E{Key: "sort", Value: sort})
	}

	res := coll.legacyFindAndModify(ctx, norm[0], nil, body)
	invokeCallback(cb, res, res.Err())
	return res
}

func (coll *Collection) legacyFindAndModify(ctx context.Context, filter, update interface{}, body bson.D) *SingleResult {
	if ctx == nil {
		ctx = context.Background()
	}

	f, err := transformDocument(filter)
	if err != nil {
		return &SingleResult{err: err}
	}

	eff := coll.effectiveOptions(options.OperationOptions{})
	eff.ReadPreference = readpref.Primary()

	op, err := driver.NewFindAndModify(coll.namespace(), f, update, body, eff)
	if err != nil {
		return &SingleResult{err: err}
	}
	res, err := coll.client.executor.Execute(ctx, op)
	if err != nil {
		return &SingleResult{err: err}
	}
	if len(res.Value) == 0 {
		return &SingleResult{err: ErrNoDocuments}
	}
	return &SingleResult{rdr: res.Value}
}

// Group runs a server-side group command described by the spec document. It
// always runs against the primary.
//
// Deprecated: use Aggregate with a $group stage.
func (coll *Collection) Group(ctx context.Context, args ...interface{}) ([]interface{}, error) {
	coll.client.warnDeprecated("group", "Aggregate")

	norm, cb, err := groupTemplate.normalize(args)
	if err != nil {
		invokeCallback(cb, nil, err)
		return nil, err
	}
	if ctx == nil {
		ctx = context.Background()
	}

	spec, err := transformDocument(norm[0])
	if err != nil {
		invokeCallback(cb, nil, err)
		return nil, err
	}

	eff := coll.effectiveOptions(options.OperationOptions{})
	eff.ReadPreference = readpref.Primary()

	op := driver.NewGroup(coll.namespace(), spec, eff)
	res, err := coll.client.executor.Execute(ctx, op)
	if err != nil {
		invokeCallback(cb, nil, err)
		return nil, err
	}
	invokeCallback(cb, res.Values, nil)
	return res.Values, nil
}

// EnsureIndex creates an index described by the legacy keys/options pair.
//
// Deprecated: use Indexes().CreateOne.
func (coll *Collection) EnsureIndex(ctx context.Context, args ...interface{}) (string, error) {
	coll.client.warnDeprecated("ensureIndex", "Indexes().CreateOne")

	norm, cb, err := ensureIndexTemplate.normalize(args)
	if err != nil {
		invokeCallback(cb, "", err)
		return "", err
	}
	opts, err := legacyOptions(norm[1])
	if err != nil {
		invokeCallback(cb, "", err)
		return "", err
	}

	io := options.Index()
	if legacyBool(opts, "unique") {
		io.SetUnique(true)
	}
	if legacyBool(opts, "sparse") {
		io.SetSparse(true)
	}
	if legacyBool(opts, "background") {
		io.SetBackground(true)
	}
	if name, ok := opts["name"].(string); ok {
		io.SetName(name)
	}
	if ttl, ok := legacyInt64(opts, "expireAfterSeconds"); ok {
		io.SetExpireAfterSeconds(int32(ttl))
	}

	name, err := coll.Indexes().CreateOne(ctx, IndexModel{Keys: norm[0], Options: io})
	invokeCallback(cb, name, err)
	return name, err
}

// DropAllIndexes drops every index on the collection except the one on _id.
//
// Deprecated: use Indexes().DropAll.
func (coll *Collection) DropAllIndexes(ctx context.Context) error {
	coll.client.warnDeprecated("dropAllIndexes", "Indexes().DropAll")
	return coll.Indexes().DropAll(ctx)
}

// legacyInt64 reads a numeric option from a legacy options map.
func legacyInt64(m bson.M, key string) (int64, bool) {
	switch v := m[key].(type) {
	case int:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case float64:
		return int64(v), true
	}
	return 0, false
}
