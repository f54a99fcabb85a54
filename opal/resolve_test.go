// Copyright (C) OpalDB, Inc. 2024-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package opal

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/opaldb/opal-go-driver/opal/options"
	"github.com/opaldb/opal-go-driver/opal/readconcern"
)

func TestEffectiveOptionsIdempotent(t *testing.T) {
	coll, _ := newTestCollection(t)

	call := options.OperationOptions{
		ReadConcern: readconcern.Majority(),
		BSON:        options.BSON().SetIgnoreUndefined(true),
	}

	first := coll.effectiveOptions(call)
	second := coll.effectiveOptions(call)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("resolution is not idempotent (-first +second):\n%s", diff)
	}
}

func TestEffectiveOptionsDoesNotMutateInputs(t *testing.T) {
	coll, _ := newTestCollection(t)

	callBSON := options.BSON().SetRaw(true)
	call := options.OperationOptions{BSON: callBSON}

	_ = coll.effectiveOptions(call)

	assert.Nil(t, callBSON.IgnoreUndefined, "caller-supplied options were mutated")
	assert.Nil(t, callBSON.PromoteLongs, "caller-supplied options were mutated")
	assert.Nil(t, coll.bsonOpts, "collection configuration was mutated")
}

func TestEnsureIDMovesIdentifierFirst(t *testing.T) {
	coll, _ := newTestCollection(t)

	doc, id, err := coll.ensureID(bson.D{{Key: "x", Value: 1}, {Key: "_id", Value: "me"}})
	require.NoError(t, err)
	assert.Equal(t, "me", id)
	assert.Equal(t, bson.D{{Key: "_id", Value: "me"}, {Key: "x", Value: 1}}, doc)
}

func TestTransformAggregatePipelineShapes(t *testing.T) {
	stages := bson.A{bson.D{{Key: "$match", Value: bson.D{}}}}

	arr, hasOut, err := transformAggregatePipeline(stages)
	require.NoError(t, err)
	assert.False(t, hasOut)
	assert.Equal(t, stages, arr)

	_, hasOut, err = transformAggregatePipeline([]bson.M{
		{"$match": bson.M{}},
		{"$merge": bson.M{"into": "target"}},
	})
	require.NoError(t, err)
	assert.True(t, hasOut)
}
