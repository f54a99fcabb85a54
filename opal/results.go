// Copyright (C) OpalDB, Inc. 2024-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package opal

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/opaldb/opal-go-driver/opal/driver"
)

// Cursor is an iterator over the documents returned by a query. It is
// produced by the executor; this layer forwards it unchanged.
type Cursor = driver.Cursor

// InsertOneResult is a result of an InsertOne operation.
type InsertOneResult struct {
	// The identifier that was or would be inserted.
	InsertedID interface{}
}

// InsertManyResult is a result of an InsertMany operation.
type InsertManyResult struct {
	// Maps the indexes of inserted documents to their _id fields.
	InsertedIDs []interface{}
}

// UpdateResult is a result of an update operation.
type UpdateResult struct {
	MatchedCount  int64
	ModifiedCount int64
	UpsertedCount int64
	UpsertedID    interface{}
}

// DeleteResult is a result of a delete operation.
type DeleteResult struct {
	DeletedCount int64
}

// BulkWriteResult holds the result of a bulk write operation.
type BulkWriteResult struct {
	InsertedCount int64
	MatchedCount  int64
	ModifiedCount int64
	DeletedCount  int64
	UpsertedCount int64
	UpsertedIDs   map[int64]interface{}
}

// SingleResult represents a single document returned from an operation. If
// the operation returned an error, the Err method of SingleResult will return
// that error.
type SingleResult struct {
	err error
	cur driver.Cursor
	rdr bson.Raw
}

// Decode will unmarshal the document represented by this SingleResult into v.
// If there was an error from the operation that created this SingleResult
// then the error will be returned.
func (sr *SingleResult) Decode(v interface{}) error {
	if sr.err != nil {
		return sr.err
	}
	if sr.rdr != nil {
		return bson.Unmarshal(sr.rdr, v)
	}
	if sr.cur == nil {
		return ErrNoDocuments
	}
	defer sr.cur.Close(context.Background())
	if !sr.cur.Next(context.Background()) {
		if err := sr.cur.Err(); err != nil {
			return err
		}
		return ErrNoDocuments
	}
	return sr.cur.Decode(v)
}

// Err returns the error from the operation that created the SingleResult, if
// one occurred.
func (sr *SingleResult) Err() error {
	return sr.err
}
