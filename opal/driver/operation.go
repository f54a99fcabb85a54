// Copyright (C) OpalDB, Inc. 2024-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

// Package driver defines the boundary between the public API and the
// executing subsystem. The public layer normalizes arguments and options into
// immutable Operation descriptors; the executor owns server selection, wire
// encoding, transport, and retry.
package driver

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/opaldb/opal-go-driver/opal/readconcern"
	"github.com/opaldb/opal-go-driver/opal/readpref"
	"github.com/opaldb/opal-go-driver/opal/session"
	"github.com/opaldb/opal-go-driver/opal/writeconcern"
)

// Namespace identifies a collection as a (database, collection) pair. It is
// immutable once constructed.
type Namespace struct {
	DB         string
	Collection string
}

// NewNamespace returns a new Namespace.
func NewNamespace(db, collection string) Namespace {
	return Namespace{DB: db, Collection: collection}
}

// FullName returns the conventional "db.collection" rendering.
func (ns Namespace) FullName() string {
	return ns.DB + "." + ns.Collection
}

// Kind identifies the logical operation a descriptor carries. The set is
// closed: executors switch exhaustively over it.
type Kind uint8

const (
	InsertOne Kind = iota + 1
	InsertMany
	UpdateOne
	UpdateMany
	ReplaceOne
	DeleteOne
	DeleteMany
	Find
	FindOne
	FindAndModify
	Aggregate
	BulkWrite
	Count
	EstimatedCount
	Distinct
	MapReduce
	Group
	CreateIndexes
	DropIndexes
	ListIndexes
	RenameCollection
	DropCollection
)

// String returns the canonical command name for the kind.
func (k Kind) String() string {
	switch k {
	case InsertOne, InsertMany:
		return "insert"
	case UpdateOne, UpdateMany, ReplaceOne:
		return "update"
	case DeleteOne, DeleteMany:
		return "delete"
	case Find:
		return "find"
	case FindOne:
		return "findOne"
	case FindAndModify:
		return "findAndModify"
	case Aggregate:
		return "aggregate"
	case BulkWrite:
		return "bulkWrite"
	case Count:
		return "count"
	case EstimatedCount:
		return "estimatedCount"
	case Distinct:
		return "distinct"
	case MapReduce:
		return "mapReduce"
	case Group:
		return "group"
	case CreateIndexes:
		return "createIndexes"
	case DropIndexes:
		return "dropIndexes"
	case ListIndexes:
		return "listIndexes"
	case RenameCollection:
		return "renameCollection"
	case DropCollection:
		return "drop"
	default:
		return "unknown"
	}
}

// EffectiveOptions is the flattened configuration record attached to every
// descriptor, resolved from call-site options, collection overrides, and
// database/client defaults. It is a value object: resolved once per call and
// never mutated afterwards.
type EffectiveOptions struct {
	ReadPreference *readpref.ReadPref
	ReadConcern    *readconcern.ReadConcern
	WriteConcern   *writeconcern.WriteConcern

	Raw                bool
	PromoteLongs       bool
	PromoteValues      bool
	PromoteBuffers     bool
	SerializeFunctions bool
	IgnoreUndefined    bool

	// Session is opaque to this layer and forwarded unchanged.
	Session *session.Session

	Hint interface{}
}

// SecondaryOK reports whether the resolved read preference permits reads from
// a non-primary member.
func (o EffectiveOptions) SecondaryOK() bool {
	return o.ReadPreference.SecondaryOK()
}

// WriteModel is one entry of a bulk write. Kind is restricted to the
// single-document write kinds.
type WriteModel struct {
	Kind      Kind
	Document  interface{}
	Filter    interface{}
	Update    interface{}
	Upsert    *bool
	Collation bson.D
}

// Operation is the canonical, immutable hand-off value consumed by the
// executor. Exactly the payload fields relevant to Kind are populated; the
// rest are zero.
type Operation struct {
	Kind Kind
	NS   Namespace

	Documents []interface{} // insert, createIndexes
	Filter    interface{}   // update, delete, count, distinct, findAndModify
	Update    interface{}   // update, replace, findAndModify
	Pipeline  bson.A        // aggregate
	Models    []WriteModel  // bulkWrite
	Find      *FindCommand  // find, findOne

	// Body carries operation-specific command fields that have no dedicated
	// slot (ordered, upsert, sort, out, index names, rename target, ...).
	Body bson.D

	Options EffectiveOptions
}

// Result is the executor's acknowledgment of a completed non-cursor
// operation. This layer never inspects it; it is mapped verbatim onto the
// public result types.
type Result struct {
	Acknowledged  bool
	N             int64
	MatchedCount  int64
	ModifiedCount int64
	UpsertedCount int64
	DeletedCount  int64
	InsertedCount int64
	UpsertedIDs   map[int64]interface{}
	Values        []interface{}
	Value         bson.Raw
}

// Cursor is an iterator handle produced by the executor for operations that
// return document streams.
type Cursor interface {
	Next(ctx context.Context) bool
	Decode(val interface{}) error
	Err() error
	Close(ctx context.Context) error
}

// Executor runs compiled operations. Implementations own server selection,
// wire encoding, transport, retry, and result construction.
type Executor interface {
	Execute(ctx context.Context, op *Operation) (*Result, error)
	ExecuteCursor(ctx context.Context, op *Operation) (Cursor, error)
}

// forcePrimary pins the descriptor's read target to the primary. Used for
// naming and destructive operations that must not observe stale replicas.
func forcePrimary(opts EffectiveOptions) EffectiveOptions {
	opts.ReadPreference = readpref.Primary()
	return opts
}

// NewInsertOne returns a descriptor for a single-document insert.
func NewInsertOne(ns Namespace, document interface{}, body bson.D, opts EffectiveOptions) (*Operation, error) {
	if document == nil {
		return nil, ErrNilDocument
	}
	return &Operation{
		Kind:      InsertOne,
		NS:        ns,
		Documents: []interface{}{document},
		Body:      body,
		Options:   opts,
	}, nil
}

// NewInsertMany returns a descriptor for a multi-document insert.
func NewInsertMany(ns Namespace, documents []interface{}, body bson.D, opts EffectiveOptions) (*Operation, error) {
	if len(documents) == 0 {
		return nil, ErrEmptySlice
	}
	for _, doc := range documents {
		if doc == nil {
			return nil, ErrNilDocument
		}
	}
	return &Operation{
		Kind:      InsertMany,
		NS:        ns,
		Documents: documents,
		Body:      body,
		Options:   opts,
	}, nil
}

func newUpdate(kind Kind, ns Namespace, filter, update interface{}, body bson.D, opts EffectiveOptions) (*Operation, error) {
	if update == nil {
		return nil, ErrNilDocument
	}
	return &Operation{
		Kind:    kind,
		NS:      ns,
		Filter:  filter,
		Update:  update,
		Body:    body,
		Options: opts,
	}, nil
}

// NewUpdateOne returns a descriptor for a single-document update.
func NewUpdateOne(ns Namespace, filter, update interface{}, body bson.D, opts EffectiveOptions) (*Operation, error) {
	return newUpdate(UpdateOne, ns, filter, update, body, opts)
}

// NewUpdateMany returns a descriptor for a multi-document update.
func NewUpdateMany(ns Namespace, filter, update interface{}, body bson.D, opts EffectiveOptions) (*Operation, error) {
	return newUpdate(UpdateMany, ns, filter, update, body, opts)
}

// NewReplaceOne returns a descriptor for a single-document replacement.
func NewReplaceOne(ns Namespace, filter, replacement interface{}, body bson.D, opts EffectiveOptions) (*Operation, error) {
	return newUpdate(ReplaceOne, ns, filter, replacement, body, opts)
}

// NewDeleteOne returns a descriptor for a single-document delete.
func NewDeleteOne(ns Namespace, filter interface{}, body bson.D, opts EffectiveOptions) (*Operation, error) {
	return &Operation{Kind: DeleteOne, NS: ns, Filter: filter, Body: body, Options: opts}, nil
}

// NewDeleteMany returns a descriptor for a multi-document delete.
func NewDeleteMany(ns Namespace, filter interface{}, body bson.D, opts EffectiveOptions) (*Operation, error) {
	return &Operation{Kind: DeleteMany, NS: ns, Filter: filter, Body: body, Options: opts}, nil
}

// NewFind returns a descriptor wrapping a compiled find command.
func NewFind(cmd *FindCommand, opts EffectiveOptions) *Operation {
	return &Operation{Kind: Find, NS: cmd.NS, Find: cmd, Options: opts}
}

// NewFindOne returns a descriptor wrapping a compiled find command limited to
// a single document.
func NewFindOne(cmd *FindCommand, opts EffectiveOptions) *Operation {
	return &Operation{Kind: FindOne, NS: cmd.NS, Find: cmd, Options: opts}
}

// NewFindAndModify returns a descriptor for an atomic read-modify-write.
// Update is nil for the remove variant.
func NewFindAndModify(ns Namespace, filter, update interface{}, body bson.D, opts EffectiveOptions) (*Operation, error) {
	if filter == nil {
		return nil, InvalidArgumentError{Method: "findAndModify", Reason: "filter must not be nil"}
	}
	return &Operation{
		Kind:    FindAndModify,
		NS:      ns,
		Filter:  filter,
		Update:  update,
		Body:    body,
		Options: opts,
	}, nil
}

// NewAggregate returns a descriptor for an aggregation pipeline. The pipeline
// must already be array-shaped.
func NewAggregate(ns Namespace, pipeline bson.A, body bson.D, opts EffectiveOptions) (*Operation, error) {
	return &Operation{Kind: Aggregate, NS: ns, Pipeline: pipeline, Body: body, Options: opts}, nil
}

// NewBulkWrite returns a descriptor for a mixed batch of writes. The models
// slice must be non-empty.
func NewBulkWrite(ns Namespace, models []WriteModel, body bson.D, opts EffectiveOptions) (*Operation, error) {
	if len(models) == 0 {
		return nil, ErrEmptySlice
	}
	return &Operation{Kind: BulkWrite, NS: ns, Models: models, Body: body, Options: opts}, nil
}

// NewCount returns a descriptor for a filtered count.
func NewCount(ns Namespace, filter interface{}, body bson.D, opts EffectiveOptions) (*Operation, error) {
	return &Operation{Kind: Count, NS: ns, Filter: filter, Body: body, Options: opts}, nil
}

// NewEstimatedCount returns a descriptor for a metadata-based count. No
// filter participates: the estimate covers the whole collection.
func NewEstimatedCount(ns Namespace, body bson.D, opts EffectiveOptions) *Operation {
	return &Operation{Kind: EstimatedCount, NS: ns, Body: body, Options: opts}
}

// NewDistinct returns a descriptor for a distinct-values query.
func NewDistinct(ns Namespace, fieldName string, filter interface{}, body bson.D, opts EffectiveOptions) (*Operation, error) {
	if fieldName == "" {
		return nil, InvalidArgumentError{Method: "distinct", Reason: "field name must not be empty"}
	}
	body = append(bson.D{{Key: "key", Value: fieldName}}, body...)
	return &Operation{Kind: Distinct, NS: ns, Filter: filter, Body: body, Options: opts}, nil
}

// NewMapReduce returns a descriptor for a map-reduce run. An output target is
// required.
func NewMapReduce(ns Namespace, mapFn, reduceFn string, out interface{}, body bson.D, opts EffectiveOptions) (*Operation, error) {
	if out == nil {
		return nil, ErrMissingOutput
	}
	body = append(bson.D{
		{Key: "map", Value: mapFn},
		{Key: "reduce", Value: reduceFn},
		{Key: "out", Value: out},
	}, body...)
	return &Operation{Kind: MapReduce, NS: ns, Body: body, Options: opts}, nil
}

// NewGroup returns a descriptor for a legacy group command. Body carries the
// key/cond/initial/$reduce fields assembled by the caller.
func NewGroup(ns Namespace, body bson.D, opts EffectiveOptions) *Operation {
	return &Operation{Kind: Group, NS: ns, Body: body, Options: opts}
}

// NewCreateIndexes returns a descriptor for index creation. Each document in
// indexes is a full index specification including its key pattern and name.
func NewCreateIndexes(ns Namespace, indexes []interface{}, body bson.D, opts EffectiveOptions) (*Operation, error) {
	if len(indexes) == 0 {
		return nil, ErrEmptySlice
	}
	return &Operation{Kind: CreateIndexes, NS: ns, Documents: indexes, Body: body, Options: opts}, nil
}

// NewDropIndexes returns a descriptor dropping the named index, or all
// indexes when name is "*". The read target is pinned to the primary.
func NewDropIndexes(ns Namespace, name string, body bson.D, opts EffectiveOptions) *Operation {
	body = append(bson.D{{Key: "index", Value: name}}, body...)
	return &Operation{Kind: DropIndexes, NS: ns, Body: body, Options: forcePrimary(opts)}
}

// NewListIndexes returns a descriptor listing the collection's indexes.
func NewListIndexes(ns Namespace, body bson.D, opts EffectiveOptions) *Operation {
	return &Operation{Kind: ListIndexes, NS: ns, Body: body, Options: opts}
}

// NewRenameCollection returns a descriptor renaming the collection. The read
// target is pinned to the primary: a rename observed through a stale replica
// races collection visibility.
func NewRenameCollection(ns, target Namespace, body bson.D, opts EffectiveOptions) *Operation {
	body = append(bson.D{{Key: "to", Value: target.FullName()}}, body...)
	return &Operation{Kind: RenameCollection, NS: ns, Body: body, Options: forcePrimary(opts)}
}

// NewDropCollection returns a descriptor dropping the collection. The read
// target is pinned to the primary.
func NewDropCollection(ns Namespace, opts EffectiveOptions) *Operation {
	return &Operation{Kind: DropCollection, NS: ns, Options: forcePrimary(opts)}
}
