// Copyright (C) OpalDB, Inc. 2024-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package opal

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/opaldb/opal-go-driver/opal/driver"
	"github.com/opaldb/opal-go-driver/opal/options"
)

// ErrInvalidIndexValue is returned when an index key pattern holds a value of
// an unsupported type.
var ErrInvalidIndexValue = driver.InvalidArgumentError{
	Method: "createIndexes",
	Reason: "invalid index value",
}

// IndexModel represents a new index to be created.
type IndexModel struct {
	// A document describing which keys should be used for the index. It
	// cannot be nil. The order of the keys is significant.
	Keys interface{}

	// Options to use to create the index.
	Options *options.IndexOptions
}

// IndexView is a view of a collection's indexes. Created through
// Collection.Indexes.
type IndexView struct {
	coll *Collection
}

// List returns a cursor over the collection's index specifications.
func (iv IndexView) List(ctx context.Context, opts ...*options.ListIndexesOptions) (Cursor, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	lo := options.MergeListIndexesOptions(opts...)

	var body bson.D
	if lo.BatchSize != nil {
		body = append(body, bson.E{Key: "batchSize", Value: *lo.BatchSize})
	}
	if lo.MaxTime != nil {
		body = append(body, bson.E{Key: "maxTimeMS", Value: int64(*lo.MaxTime / time.Millisecond)})
	}

	op := driver.NewListIndexes(iv.coll.namespace(), body, iv.coll.effectiveOptions(options.OperationOptions{}))
	return iv.coll.client.executor.ExecuteCursor(ctx, op)
}

// CreateOne creates a single index and returns its name.
func (iv IndexView) CreateOne(ctx context.Context, model IndexModel,
	opts ...*options.CreateIndexesOptions) (string, error) {

	names, err := iv.CreateMany(ctx, []IndexModel{model}, opts...)
	if err != nil {
		return "", err
	}
	return names[0], nil
}

// CreateMany creates several indexes with one command and returns their
// names. An index without an explicit name gets one derived from its key
// pattern.
func (iv IndexView) CreateMany(ctx context.Context, models []IndexModel,
	opts ...*options.CreateIndexesOptions) ([]string, error) {

	if ctx == nil {
		ctx = context.Background()
	}
	if len(models) == 0 {
		return nil, ErrEmptySlice
	}

	co := options.MergeCreateIndexesOptions(opts...)

	names := make([]string, 0, len(models))
	indexes := make([]interface{}, 0, len(models))
	for _, model := range models {
		if model.Keys == nil {
			return nil, ErrNilDocument
		}
		keys, err := transformDocument(model.Keys)
		if err != nil {
			return nil, err
		}
		name, err := indexName(keys, model.Options)
		if err != nil {
			return nil, err
		}
		names = append(names, name)

		index := bson.D{
			{Key: "key", Value: keys},
			{Key: "name", Value: name},
		}
		if opt := model.Options; opt != nil {
			if opt.Background != nil {
				index = append(index, bson.E{Key: "background", Value: *opt.Background})
			}
			if opt.ExpireAfterSeconds != nil {
				index = append(index, bson.E{Key: "expireAfterSeconds", Value: *opt.ExpireAfterSeconds})
			}
			if opt.Sparse != nil {
				index = append(index, bson.E{Key: "sparse", Value: *opt.Sparse})
			}
			if opt.Unique != nil {
				index = append(index, bson.E{Key: "unique", Value: *opt.Unique})
			}
			if opt.PartialFilter != nil {
				pf, err := transformDocument(opt.PartialFilter)
				if err != nil {
					return nil, err
				}
				index = append(index, bson.E{Key: "partialFilterExpression", Value: pf})
			}
			if opt.Collation != nil {
				index = append(index, bson.E{Key: "collation", Value: opt.Collation.ToDocument()})
			}
		}
		indexes = append(indexes, index)
	}

	var body bson.D
	if co.MaxTime != nil {
		body = append(body, bson.E{Key: "maxTimeMS", Value: int64(*co.MaxTime / time.Millisecond)})
	}

	op, err := driver.NewCreateIndexes(iv.coll.namespace(), indexes, body, iv.coll.effectiveOptions(options.OperationOptions{}))
	if err != nil {
		return nil, err
	}
	if _, err := iv.coll.client.executor.Execute(ctx, op); err != nil {
		return nil, err
	}
	return names, nil
}

// DropOne drops the index with the given name. The name "*" is rejected; use
// DropAll to drop every index.
func (iv IndexView) DropOne(ctx context.Context, name string,
	opts ...*options.DropIndexesOptions) error {

	if name == "*" {
		return driver.InvalidArgumentError{
			Method: "dropIndexes",
			Reason: "cannot drop index '*', use DropAll",
		}
	}
	return iv.drop(ctx, name, opts...)
}

// DropAll drops every index on the collection except the one on _id.
func (iv IndexView) DropAll(ctx context.Context, opts ...*options.DropIndexesOptions) error {
	return iv.drop(ctx, "*", opts...)
}

func (iv IndexView) drop(ctx context.Context, name string, opts ...*options.DropIndexesOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}

	do := options.MergeDropIndexesOptions(opts...)

	var body bson.D
	if do.MaxTime != nil {
		body = append(body, bson.E{Key: "maxTimeMS", Value: int64(*do.MaxTime / time.Millisecond)})
	}

	op := driver.NewDropIndexes(iv.coll.namespace(), name, body, iv.coll.effectiveOptions(options.OperationOptions{}))
	_, err := iv.coll.client.executor.Execute(ctx, op)
	return err
}

// indexName returns the configured name, or one derived from the key pattern
// in key_direction pairs joined by underscores, e.g. "a_1_b_-1".
func indexName(keys bson.D, opts *options.IndexOptions) (string, error) {
	if opts != nil && opts.Name != nil {
		return *opts.Name, nil
	}

	var sb strings.Builder
	for i, e := range keys {
		if i > 0 {
			sb.WriteByte('_')
		}
		sb.WriteString(e.Key)
		sb.WriteByte('_')
		switch v := e.Value.(type) {
		case int, int32, int64:
			fmt.Fprintf(&sb, "%d", v)
		case float32, float64:
			fmt.Fprintf(&sb, "%.0f", v)
		case string:
			sb.WriteString(v)
		default:
			return "", ErrInvalidIndexValue
		}
	}
	return sb.String(), nil
}
