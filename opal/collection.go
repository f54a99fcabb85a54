// Copyright (C) OpalDB, Inc. 2024-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package opal

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/opaldb/opal-go-driver/opal/driver"
	"github.com/opaldb/opal-go-driver/opal/options"
	"github.com/opaldb/opal-go-driver/opal/readconcern"
	"github.com/opaldb/opal-go-driver/opal/readpref"
	"github.com/opaldb/opal-go-driver/opal/writeconcern"
)

// Collection is a handle to an OpalDB collection. It compiles calls into
// operation descriptors and hands them to the client's executor; it performs
// no I/O of its own.
//
// A Collection is safe for concurrent use once configured. The Set* mutators
// exist for setup-time reconfiguration and must not race with in-flight
// operations; to vary configuration per call site, use Clone or the per-call
// options instead.
type Collection struct {
	client         *Client
	db             *Database
	name           string
	readConcern    *readconcern.ReadConcern
	writeConcern   *writeconcern.WriteConcern
	readPreference *readpref.ReadPref
	bsonOpts       *options.BSONOptions
	pkFactory      options.PKFactory
	hint           interface{}
}

func newCollection(db *Database, name string, opts ...*options.CollectionOptions) *Collection {
	collOpt := options.MergeCollectionOptions(opts...)

	coll := &Collection{
		client:         db.client,
		db:             db,
		name:           name,
		readConcern:    db.readConcern,
		writeConcern:   db.writeConcern,
		readPreference: db.readPreference,
		bsonOpts:       db.bsonOpts,
		pkFactory:      db.client.pkFactory,
	}
	if collOpt.ReadConcern != nil {
		coll.readConcern = collOpt.ReadConcern
	}
	if collOpt.WriteConcern != nil {
		coll.writeConcern = collOpt.WriteConcern
	}
	if collOpt.ReadPreference != nil {
		coll.readPreference = collOpt.ReadPreference
	}
	if collOpt.BSON != nil {
		coll.bsonOpts = options.MergeBSONOptions(db.bsonOpts, collOpt.BSON)
	}
	if collOpt.PKFactory != nil {
		coll.pkFactory = collOpt.PKFactory
	}
	if collOpt.Hint != nil {
		coll.hint = collOpt.Hint
	}
	return coll
}

// Clone creates a copy of the Collection configured by the given
// CollectionOptions. The original is unchanged.
func (coll *Collection) Clone(opts ...*options.CollectionOptions) *Collection {
	copied := *coll
	collOpt := options.MergeCollectionOptions(opts...)
	if collOpt.ReadConcern != nil {
		copied.readConcern = collOpt.ReadConcern
	}
	if collOpt.WriteConcern != nil {
		copied.writeConcern = collOpt.WriteConcern
	}
	if collOpt.ReadPreference != nil {
		copied.readPreference = collOpt.ReadPreference
	}
	if collOpt.BSON != nil {
		copied.bsonOpts = options.MergeBSONOptions(coll.bsonOpts, collOpt.BSON)
	}
	if collOpt.PKFactory != nil {
		copied.pkFactory = collOpt.PKFactory
	}
	if collOpt.Hint != nil {
		copied.hint = collOpt.Hint
	}
	return &copied
}

// Name returns the name of the collection.
func (coll *Collection) Name() string {
	return coll.name
}

// Database returns the Database the collection was created from.
func (coll *Collection) Database() *Database {
	return coll.db
}

// SetReadPreference replaces the collection's read preference. Must not be
// called concurrently with operations on the collection.
func (coll *Collection) SetReadPreference(rp *readpref.ReadPref) {
	coll.readPreference = rp
}

// SetReadConcern replaces the collection's read concern. Must not be called
// concurrently with operations on the collection.
func (coll *Collection) SetReadConcern(rc *readconcern.ReadConcern) {
	coll.readConcern = rc
}

// SetWriteConcern replaces the collection's write concern. Must not be called
// concurrently with operations on the collection.
func (coll *Collection) SetWriteConcern(wc *writeconcern.WriteConcern) {
	coll.writeConcern = wc
}

// SetHint replaces the collection's default index hint. Must not be called
// concurrently with operations on the collection.
func (coll *Collection) SetHint(hint interface{}) {
	coll.hint = hint
}

func (coll *Collection) namespace() driver.Namespace {
	return driver.NewNamespace(coll.db.name, coll.name)
}

// InsertOne executes an insert command for a single document. The document's
// _id is generated by the primary-key factory when absent.
func (coll *Collection) InsertOne(ctx context.Context, document interface{},
	opts ...*options.InsertOneOptions) (*InsertOneResult, error) {

	if ctx == nil {
		ctx = context.Background()
	}

	ioo := options.MergeInsertOneOptions(opts...)
	doc, id, err := coll.ensureID(document)
	if err != nil {
		return nil, err
	}

	var body bson.D
	if ioo.BypassDocumentValidation != nil {
		body = append(body, bson.E{Key: "bypassDocumentValidation", Value: *ioo.BypassDocumentValidation})
	}

	op, err := driver.NewInsertOne(coll.namespace(), doc, body, coll.effectiveOptions(ioo.OperationOptions))
	if err != nil {
		return nil, err
	}
	if _, err := coll.client.executor.Execute(ctx, op); err != nil {
		return nil, err
	}
	return &InsertOneResult{InsertedID: id}, nil
}

// InsertMany executes an insert command for a batch of documents. The batch
// is ordered unless the options say otherwise.
func (coll *Collection) InsertMany(ctx context.Context, documents []interface{},
	opts ...*options.InsertManyOptions) (*InsertManyResult, error) {

	if ctx == nil {
		ctx = context.Background()
	}
	if len(documents) == 0 {
		return nil, ErrEmptySlice
	}

	imo := options.MergeInsertManyOptions(opts...)

	docs := make([]interface{}, 0, len(documents))
	ids := make([]interface{}, 0, len(documents))
	for _, document := range documents {
		doc, id, err := coll.ensureID(document)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
		ids = append(ids, id)
	}

	ordered := true
	if imo.Ordered != nil {
		ordered = *imo.Ordered
	}
	body := bson.D{{Key: "ordered", Value: ordered}}
	if imo.BypassDocumentValidation != nil {
		body = append(body, bson.E{Key: "bypassDocumentValidation", Value: *imo.BypassDocumentValidation})
	}

	op, err := driver.NewInsertMany(coll.namespace(), docs, body, coll.effectiveOptions(imo.OperationOptions))
	if err != nil {
		return nil, err
	}
	if _, err := coll.client.executor.Execute(ctx, op); err != nil {
		return nil, err
	}
	return &InsertManyResult{InsertedIDs: ids}, nil
}

func (coll *Collection) updateOrReplace(ctx context.Context, kind driver.Kind, filter, update interface{},
	uo *options.UpdateOptions) (*UpdateResult, error) {

	if ctx == nil {
		ctx = context.Background()
	}

	f, err := transformDocument(filter)
	if err != nil {
		return nil, err
	}
	u, err := transformDocument(update)
	if err != nil {
		return nil, err
	}

	var body bson.D
	if uo.Upsert != nil {
		body = append(body, bson.E{Key: "upsert", Value: *uo.Upsert})
	}
	if uo.BypassDocumentValidation != nil {
		body = append(body, bson.E{Key: "bypassDocumentValidation", Value: *uo.BypassDocumentValidation})
	}
	if uo.ArrayFilters != nil {
		body = append(body, bson.E{Key: "arrayFilters", Value: uo.ArrayFilters.Filters})
	}
	if uo.Collation != nil {
		body = append(body, bson.E{Key: "collation", Value: uo.Collation.ToDocument()})
	}

	var op *driver.Operation
	switch kind {
	case driver.UpdateOne:
		if err := ensureDollarKey(u, "updateOne"); err != nil {
			return nil, err
		}
		op, err = driver.NewUpdateOne(coll.namespace(), f, u, body, coll.effectiveOptions(uo.OperationOptions))
	case driver.UpdateMany:
		if err := ensureDollarKey(u, "updateMany"); err != nil {
			return nil, err
		}
		op, err = driver.NewUpdateMany(coll.namespace(), f, u, body, coll.effectiveOptions(uo.OperationOptions))
	case driver.ReplaceOne:
		if err := ensureNoDollarKey(u, "replaceOne"); err != nil {
			return nil, err
		}
		op, err = driver.NewReplaceOne(coll.namespace(), f, u, body, coll.effectiveOptions(uo.OperationOptions))
	}
	if err != nil {
		return nil, err
	}

	res, err := coll.client.executor.Execute(ctx, op)
	if err != nil {
		return nil, err
	}

	result := &UpdateResult{
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
	}
	if id, ok := res.UpsertedIDs[0]; ok {
		result.UpsertedID = id
	}
	return result, nil
}

// UpdateOne updates at most one document matched by the filter. The update
// document must contain operator expressions.
func (coll *Collection) UpdateOne(ctx context.Context, filter, update interface{},
	opts ...*options.UpdateOptions) (*UpdateResult, error) {
	return coll.updateOrReplace(ctx, driver.UpdateOne, filter, update, options.MergeUpdateOptions(opts...))
}

// UpdateMany updates every document matched by the filter. The update
// document must contain operator expressions.
func (coll *Collection) UpdateMany(ctx context.Context, filter, update interface{},
	opts ...*options.UpdateOptions) (*UpdateResult, error) {
	return coll.updateOrReplace(ctx, driver.UpdateMany, filter, update, options.MergeUpdateOptions(opts...))
}

// ReplaceOne replaces at most one document matched by the filter. The
// replacement must not contain operator expressions.
func (coll *Collection) ReplaceOne(ctx context.Context, filter, replacement interface{},
	opts ...*options.ReplaceOptions) (*UpdateResult, error) {

	ro := options.MergeReplaceOptions(opts...)
	uo := &options.UpdateOptions{
		OperationOptions:         ro.OperationOptions,
		BypassDocumentValidation: ro.BypassDocumentValidation,
		Collation:                ro.Collation,
		Upsert:                   ro.Upsert,
	}
	return coll.updateOrReplace(ctx, driver.ReplaceOne, filter, replacement, uo)
}

func (coll *Collection) delete(ctx context.Context, kind driver.Kind, filter interface{},
	do *options.DeleteOptions) (*DeleteResult, error) {

	if ctx == nil {
		ctx = context.Background()
	}

	f, err := transformDocument(filter)
	if err != nil {
		return nil, err
	}

	var body bson.D
	if do.Collation != nil {
		body = append(body, bson.E{Key: "collation", Value: do.Collation.ToDocument()})
	}

	var op *driver.Operation
	if kind == driver.DeleteOne {
		op, err = driver.NewDeleteOne(coll.namespace(), f, body, coll.effectiveOptions(do.OperationOptions))
	} else {
		op, err = driver.NewDeleteMany(coll.namespace(), f, body, coll.effectiveOptions(do.OperationOptions))
	}
	if err != nil {
		return nil, err
	}

	res, err := coll.client.executor.Execute(ctx, op)
	if err != nil {
		return nil, err
	}
	return &DeleteResult{DeletedCount: res.DeletedCount}, nil
}

// DeleteOne deletes at most one document matched by the filter.
func (coll *Collection) DeleteOne(ctx context.Context, filter interface{},
	opts ...*options.DeleteOptions) (*DeleteResult, error) {
	return coll.delete(ctx, driver.DeleteOne, filter, options.MergeDeleteOptions(opts...))
}

// DeleteMany deletes every document matched by the filter.
func (coll *Collection) DeleteMany(ctx context.Context, filter interface{},
	opts ...*options.DeleteOptions) (*DeleteResult, error) {
	return coll.delete(ctx, driver.DeleteMany, filter, options.MergeDeleteOptions(opts...))
}

// BulkWrite performs a mixed batch of write operations.
func (coll *Collection) BulkWrite(ctx context.Context, models []WriteModel,
	opts ...*options.BulkWriteOptions) (*BulkWriteResult, error) {

	if ctx == nil {
		ctx = context.Background()
	}
	if len(models) == 0 {
		return nil, ErrEmptySlice
	}

	bwo := options.MergeBulkWriteOptions(opts...)

	converted := make([]driver.WriteModel, 0, len(models))
	for _, model := range models {
		if model == nil {
			return nil, ErrNilDocument
		}
		m, err := model.convertModel(coll)
		if err != nil {
			return nil, err
		}
		converted = append(converted, m)
	}

	ordered := true
	if bwo.Ordered != nil {
		ordered = *bwo.Ordered
	}
	body := bson.D{{Key: "ordered", Value: ordered}}
	if bwo.BypassDocumentValidation != nil {
		body = append(body, bson.E{Key: "bypassDocumentValidation", Value: *bwo.BypassDocumentValidation})
	}

	op, err := driver.NewBulkWrite(coll.namespace(), converted, body, coll.effectiveOptions(bwo.OperationOptions))
	if err != nil {
		return nil, err
	}
	res, err := coll.client.executor.Execute(ctx, op)
	if err != nil {
		return nil, err
	}
	return &BulkWriteResult{
		InsertedCount: res.InsertedCount,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		DeletedCount:  res.DeletedCount,
		UpsertedCount: res.UpsertedCount,
		UpsertedIDs:   res.UpsertedIDs,
	}, nil
}

// Find executes a find command and returns a cursor over the matching
// documents.
func (coll *Collection) Find(ctx context.Context, filter interface{},
	opts ...*options.FindOptions) (Cursor, error) {

	if ctx == nil {
		ctx = context.Background()
	}

	fo := options.MergeFindOptions(opts...)
	eff := coll.effectiveOptions(fo.OperationOptions)
	cmd, err := driver.CompileFind(coll.namespace(), filter, fo, eff)
	if err != nil {
		return nil, err
	}
	return coll.client.executor.ExecuteCursor(ctx, driver.NewFind(cmd, eff))
}

// FindOne returns at most one document matched by the filter. The query is
// compiled with limit 1 in single-batch mode.
func (coll *Collection) FindOne(ctx context.Context, filter interface{},
	opts ...*options.FindOneOptions) *SingleResult {

	if ctx == nil {
		ctx = context.Background()
	}

	fo := options.MergeFindOneOptions(opts...).ToFindOptions()
	fo.SetLimit(-1)
	eff := coll.effectiveOptions(fo.OperationOptions)
	cmd, err := driver.CompileFind(coll.namespace(), filter, fo, eff)
	if err != nil {
		return &SingleResult{err: err}
	}
	cur, err := coll.client.executor.ExecuteCursor(ctx, driver.NewFindOne(cmd, eff))
	if err != nil {
		return &SingleResult{err: err}
	}
	return &SingleResult{cur: cur}
}

func (coll *Collection) findAndModify(ctx context.Context, filter, update interface{}, body bson.D,
	callOpts options.OperationOptions) *SingleResult {

	if ctx == nil {
		ctx = context.Background()
	}

	f, err := transformDocument(filter)
	if err != nil {
		return &SingleResult{err: err}
	}

	op, err := driver.NewFindAndModify(coll.namespace(), f, update, body, coll.effectiveOptions(callOpts))
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

// FindOneAndUpdate atomically updates at most one document matched by the
// filter and returns it as it was before or after the update.
func (coll *Collection) FindOneAndUpdate(ctx context.Context, filter, update interface{},
	opts ...*options.FindOneAndUpdateOptions) *SingleResult {

	fm := options.MergeFindOneAndUpdateOptions(opts...)

	u, err := transformDocument(update)
	if err != nil {
		return &SingleResult{err: err}
	}
	if err := ensureDollarKey(u, "findOneAndUpdate"); err != nil {
		return &SingleResult{err: err}
	}

	body, err := findAndModifyBody(fm.Sort, fm.Projection, fm.Upsert, fm.ReturnDocument, fm.Collation, fm.MaxTime, false)
	if err != nil {
		return &SingleResult{err: err}
	}
	if fm.BypassDocumentValidation != nil {
		body = append(body, bson.E{Key: "bypassDocumentValidation", Value: *fm.BypassDocumentValidation})
	}
	if fm.ArrayFilters != nil {
		body = append(body, bson.E{Key: "arrayFilters", Value: fm.ArrayFilters.Filters})
	}
	return coll.findAndModify(ctx, filter, u, body, fm.OperationOptions)
}

// FindOneAndReplace atomically replaces at most one document matched by the
// filter and returns it as it was before or after the replacement.
func (coll *Collection) FindOneAndReplace(ctx context.Context, filter, replacement interface{},
	opts ...*options.FindOneAndReplaceOptions) *SingleResult {

	fm := options.MergeFindOneAndReplaceOptions(opts...)

	r, err := transformDocument(replacement)
	if err != nil {
		return &SingleResult{err: err}
	}
	if err := ensureNoDollarKey(r, "findOneAndReplace"); err != nil {
		return &SingleResult{err: err}
	}

	body, err := findAndModifyBody(fm.Sort, fm.Projection, fm.Upsert, fm.ReturnDocument, fm.Collation, fm.MaxTime, false)
	if err != nil {
		return &SingleResult{err: err}
	}
	if fm.BypassDocumentValidation != nil {
		body = append(body, bson.E{Key: "bypassDocumentValidation", Value: *fm.BypassDocumentValidation})
	}
	return coll.findAndModify(ctx, filter, r, body, fm.OperationOptions)
}

// FindOneAndDelete atomically deletes at most one document matched by the
// filter and returns it.
func (coll *Collection) FindOneAndDelete(ctx context.Context, filter interface{},
	opts ...*options.FindOneAndDeleteOptions) *SingleResult {

	fm := options.MergeFindOneAndDeleteOptions(opts...)

	body, err := findAndModifyBody(fm.Sort, fm.Projection, nil, nil, fm.Collation, fm.MaxTime, true)
	if err != nil {
		return &SingleResult{err: err}
	}
	return coll.findAndModify(ctx, filter, nil, body, fm.OperationOptions)
}

// findAndModifyBody assembles the command fields common to the three
// findAndModify variants.
func findAndModifyBody(sort, projection interface{}, upsert *bool, rd *options.ReturnDocument,
	collation *options.Collation, maxTime *time.Duration, remove bool) (bson.D, error) {

	var body bson.D
	if remove {
		body = append(body, bson.E{Key: "remove", Value: true})
	}
	if sort != nil {
		s, err := driver.FormatSort(sort)
		if err != nil {
			return nil, err
		}
		body = append(body, bson.E{Key: "sort", Value: s})
	}
	if projection != nil {
		p, err := driver.NormalizeProjection(projection)
		if err != nil {
			return nil, err
		}
		body = append(body, bson.E{Key: "fields", Value: p})
	}
	if upsert != nil {
		body = append(body, bson.E{Key: "upsert", Value: *upsert})
	}
	if rd != nil {
		body = append(body, bson.E{Key: "new", Value: *rd == options.After})
	}
	if collation != nil {
		body = append(body, bson.E{Key: "collation", Value: collation.ToDocument()})
	}
	if maxTime != nil {
		body = append(body, bson.E{Key: "maxTimeMS", Value: int64(*maxTime / time.Millisecond)})
	}
	return body, nil
}

// Aggregate executes an aggregation pipeline. A pipeline ending in $out or
// $merge writes server-side and therefore runs against the primary.
func (coll *Collection) Aggregate(ctx context.Context, pipeline interface{},
	opts ...*options.AggregateOptions) (Cursor, error) {

	if ctx == nil {
		ctx = context.Background()
	}

	ao := options.MergeAggregateOptions(opts...)

	arr, hasOutputStage, err := transformAggregatePipeline(pipeline)
	if err != nil {
		return nil, err
	}

	eff := coll.effectiveOptions(ao.OperationOptions)
	if hasOutputStage {
		eff.ReadPreference = readpref.Primary()
	}

	var body bson.D
	if ao.AllowDiskUse != nil {
		body = append(body, bson.E{Key: "allowDiskUse", Value: *ao.AllowDiskUse})
	}
	if ao.BatchSize != nil {
		body = append(body, bson.E{Key: "batchSize", Value: *ao.BatchSize})
	}
	if ao.BypassDocumentValidation != nil {
		body = append(body, bson.E{Key: "bypassDocumentValidation", Value: *ao.BypassDocumentValidation})
	}
	if ao.Collation != nil {
		body = append(body, bson.E{Key: "collation", Value: ao.Collation.ToDocument()})
	}
	if ao.Comment != nil {
		body = append(body, bson.E{Key: "comment", Value: *ao.Comment})
	}
	if ao.MaxTime != nil {
		body = append(body, bson.E{Key: "maxTimeMS", Value: int64(*ao.MaxTime / time.Millisecond)})
	}
	if eff.Hint != nil {
		hint, err := driver.NormalizeHint(eff.Hint)
		if err != nil {
			return nil, err
		}
		body = append(body, bson.E{Key: "hint", Value: hint})
	}

	op, err := driver.NewAggregate(coll.namespace(), arr, body, eff)
	if err != nil {
		return nil, err
	}
	return coll.client.executor.ExecuteCursor(ctx, op)
}

// CountDocuments returns the number of documents matched by the filter.
func (coll *Collection) CountDocuments(ctx context.Context, filter interface{},
	opts ...*options.CountOptions) (int64, error) {

	if ctx == nil {
		ctx = context.Background()
	}

	co := options.MergeCountOptions(opts...)

	f, err := transformDocument(filter)
	if err != nil {
		return 0, err
	}

	var body bson.D
	if co.Limit != nil {
		body = append(body, bson.E{Key: "limit", Value: *co.Limit})
	}
	if co.Skip != nil {
		body = append(body, bson.E{Key: "skip", Value: *co.Skip})
	}
	if co.MaxTime != nil {
		body = append(body, bson.E{Key: "maxTimeMS", Value: int64(*co.MaxTime / time.Millisecond)})
	}
	if co.Collation != nil {
		body = append(body, bson.E{Key: "collation", Value: co.Collation.ToDocument()})
	}

	eff := coll.effectiveOptions(co.OperationOptions)
	if eff.Hint != nil {
		hint, err := driver.NormalizeHint(eff.Hint)
		if err != nil {
			return 0, err
		}
		body = append(body, bson.E{Key: "hint", Value: hint})
	}

	op, err := driver.NewCount(coll.namespace(), f, body, eff)
	if err != nil {
		return 0, err
	}
	res, err := coll.client.executor.Execute(ctx, op)
	if err != nil {
		return 0, err
	}
	return res.N, nil
}

// EstimatedDocumentCount returns an estimate of the collection size from
// collection metadata. No filter participates.
func (coll *Collection) EstimatedDocumentCount(ctx context.Context,
	opts ...*options.EstimatedDocumentCountOptions) (int64, error) {

	if ctx == nil {
		ctx = context.Background()
	}

	eo := options.MergeEstimatedDocumentCountOptions(opts...)

	var body bson.D
	if eo.MaxTime != nil {
		body = append(body, bson.E{Key: "maxTimeMS", Value: int64(*eo.MaxTime / time.Millisecond)})
	}

	op := driver.NewEstimatedCount(coll.namespace(), body, coll.effectiveOptions(eo.OperationOptions))
	res, err := coll.client.executor.Execute(ctx, op)
	if err != nil {
		return 0, err
	}
	return res.N, nil
}

// Distinct returns the distinct values of the named field among the documents
// matched by the filter.
func (coll *Collection) Distinct(ctx context.Context, fieldName string, filter interface{},
	opts ...*options.DistinctOptions) ([]interface{}, error) {

	if ctx == nil {
		ctx = context.Background()
	}

	do := options.MergeDistinctOptions(opts...)

	f, err := transformDocument(filter)
	if err != nil {
		return nil, err
	}

	var body bson.D
	if do.Collation != nil {
		body = append(body, bson.E{Key: "collation", Value: do.Collation.ToDocument()})
	}
	if do.MaxTime != nil {
		body = append(body, bson.E{Key: "maxTimeMS", Value: int64(*do.MaxTime / time.Millisecond)})
	}

	op, err := driver.NewDistinct(coll.namespace(), fieldName, f, body, coll.effectiveOptions(do.OperationOptions))
	if err != nil {
		return nil, err
	}
	res, err := coll.client.executor.Execute(ctx, op)
	if err != nil {
		return nil, err
	}
	return res.Values, nil
}

// MapReduce runs a map-reduce job over the collection. An output target must
// be configured via the options.
func (coll *Collection) MapReduce(ctx context.Context, mapFn, reduceFn string,
	opts ...*options.MapReduceOptions) (Cursor, error) {

	if ctx == nil {
		ctx = context.Background()
	}

	mo := options.MergeMapReduceOptions(opts...)

	var body bson.D
	if mo.Finalize != nil {
		body = append(body, bson.E{Key: "finalize", Value: *mo.Finalize})
	}
	if mo.Limit != nil {
		body = append(body, bson.E{Key: "limit", Value: *mo.Limit})
	}
	if mo.Scope != nil {
		scope, err := transformDocument(mo.Scope)
		if err != nil {
			return nil, err
		}
		body = append(body, bson.E{Key: "scope", Value: scope})
	}
	if mo.Sort != nil {
		s, err := driver.FormatSort(mo.Sort)
		if err != nil {
			return nil, err
		}
		body = append(body, bson.E{Key: "sort", Value: s})
	}
	if mo.Verbose != nil {
		body = append(body, bson.E{Key: "verbose", Value: *mo.Verbose})
	}

	op, err := driver.NewMapReduce(coll.namespace(), mapFn, reduceFn, mo.Out, body, coll.effectiveOptions(mo.OperationOptions))
	if err != nil {
		return nil, err
	}
	return coll.client.executor.ExecuteCursor(ctx, op)
}

// Drop drops the collection. It always runs against the primary.
func (coll *Collection) Drop(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	op := driver.NewDropCollection(coll.namespace(), coll.effectiveOptions(options.OperationOptions{}))
	_, err := coll.client.executor.Execute(ctx, op)
	return err
}

// Rename renames the collection. It always runs against the primary. The
// handle keeps referring to the old name afterwards.
func (coll *Collection) Rename(ctx context.Context, newName string, opts ...*options.RenameOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}

	ro := options.MergeRenameOptions(opts...)

	var body bson.D
	if ro.DropTarget != nil {
		body = append(body, bson.E{Key: "dropTarget", Value: *ro.DropTarget})
	}

	target := driver.NewNamespace(coll.db.name, newName)
	op := driver.NewRenameCollection(coll.namespace(), target, body, coll.effectiveOptions(options.OperationOptions{}))
	_, err := coll.client.executor.Execute(ctx, op)
	return err
}

// Indexes returns an IndexView for managing the collection's indexes.
func (coll *Collection) Indexes() IndexView {
	return IndexView{coll: coll}
}
