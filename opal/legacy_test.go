// Copyright (C) OpalDB, Inc. 2024-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package opal

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/opaldb/opal-go-driver/opal/driver"
	"github.com/opaldb/opal-go-driver/opal/options"
	"github.com/opaldb/opal-go-driver/opal/readpref"
)

func newLegacyCollection(t *testing.T) (*Collection, *recordingExecutor, *logtest.Hook) {
	t.Helper()
	logger, hook := logtest.NewNullLogger()
	exec := &recordingExecutor{}
	client, err := NewClient(exec, options.Client().SetLogger(logger))
	require.NoError(t, err)
	return client.Database("db").Collection("coll"), exec, hook
}

func TestLegacyInsertAlwaysBatches(t *testing.T) {
	coll, exec, _ := newLegacyCollection(t)

	res, err := coll.Insert(context.Background(), bson.D{{Key: "x", Value: 1}})
	require.NoError(t, err)
	require.Len(t, res.InsertedIDs, 1)

	op := exec.last(t)
	assert.Equal(t, driver.InsertMany, op.Kind)
	assert.Equal(t, bson.D{{Key: "ordered", Value: true}}, op.Body)
}

func TestLegacyInsertMatchesModernInsertMany(t *testing.T) {
	coll, exec, _ := newLegacyCollection(t)
	doc := bson.D{{Key: "_id", Value: "fixed"}, {Key: "x", Value: 1}}

	_, err := coll.Insert(context.Background(), doc)
	require.NoError(t, err)
	legacyOp := exec.last(t)

	_, err = coll.InsertMany(context.Background(), []interface{}{doc},
		options.InsertMany().SetOrdered(true))
	require.NoError(t, err)
	modernOp := exec.last(t)

	if diff := cmp.Diff(modernOp.Documents, legacyOp.Documents); diff != "" {
		t.Errorf("documents mismatch (-modern +legacy):\n%s", diff)
	}
	if diff := cmp.Diff(modernOp.Body, legacyOp.Body); diff != "" {
		t.Errorf("body mismatch (-modern +legacy):\n%s", diff)
	}
	assert.Equal(t, modernOp.Kind, legacyOp.Kind)
}

func TestLegacyInsertKeepGoing(t *testing.T) {
	coll, exec, _ := newLegacyCollection(t)

	docs := []interface{}{bson.D{{Key: "x", Value: 1}}, bson.D{{Key: "x", Value: 2}}}
	_, err := coll.Insert(context.Background(), docs, bson.M{"keepGoing": true})
	require.NoError(t, err)

	op := exec.last(t)
	assert.Equal(t, driver.InsertMany, op.Kind)
	assert.Equal(t, bson.D{{Key: "ordered", Value: false}}, op.Body)
	assert.Len(t, op.Documents, 2)
}

func TestLegacyUpdateAlwaysMany(t *testing.T) {
	coll, exec, _ := newLegacyCollection(t)

	update := bson.D{{Key: "$set", Value: bson.D{{Key: "x", Value: 2}}}}
	_, err := coll.Update(context.Background(), bson.D{{Key: "x", Value: 1}}, update)
	require.NoError(t, err)
	assert.Equal(t, driver.UpdateMany, exec.last(t).Kind)
}

func TestLegacyUpdateUpsertFlag(t *testing.T) {
	coll, exec, _ := newLegacyCollection(t)

	update := bson.D{{Key: "$set", Value: bson.D{{Key: "x", Value: 2}}}}
	_, err := coll.Update(context.Background(), bson.D{}, update, bson.M{"upsert": true})
	require.NoError(t, err)

	op := exec.last(t)
	assert.Contains(t, op.Body, bson.E{Key: "upsert", Value: true})
}

func TestLegacyRemoveAlwaysMany(t *testing.T) {
	coll, exec, _ := newLegacyCollection(t)

	_, err := coll.Remove(context.Background(), bson.D{{Key: "x", Value: 1}})
	require.NoError(t, err)
	assert.Equal(t, driver.DeleteMany, exec.last(t).Kind)

	// Omitted selector matches everything.
	_, err = coll.Remove(context.Background())
	require.NoError(t, err)
	op := exec.last(t)
	assert.Equal(t, driver.DeleteMany, op.Kind)
	assert.Equal(t, bson.D{}, op.Filter)
}

func TestLegacyCountIsEstimated(t *testing.T) {
	coll, exec, _ := newLegacyCollection(t)
	exec.result = &driver.Result{Acknowledged: true, N: 99}

	n, err := coll.Count(context.Background(), bson.D{{Key: "x", Value: 1}})
	require.NoError(t, err)
	assert.Equal(t, int64(99), n)

	// The query argument is deliberately dropped: the shim reports the
	// metadata estimate.
	op := exec.last(t)
	assert.Equal(t, driver.EstimatedCount, op.Kind)
	assert.Nil(t, op.Filter)
}

func TestLegacyFindAndModifyForcesPrimary(t *testing.T) {
	logger, _ := logtest.NewNullLogger()
	exec := &recordingExecutor{result: &driver.Result{
		Acknowledged: true,
		Value:        mustMarshal(t, bson.D{{Key: "x", Value: 1}}),
	}}
	client, err := NewClient(exec, options.Client().
		SetLogger(logger).
		SetReadPreference(readpref.Secondary()))
	require.NoError(t, err)
	coll := client.Database("db").Collection("coll")

	update := bson.D{{Key: "$inc", Value: bson.D{{Key: "x", Value: 1}}}}
	res := coll.FindAndModify(context.Background(), bson.D{}, nil, update, bson.M{"new": true})
	require.NoError(t, res.Err())

	op := exec.last(t)
	assert.Equal(t, driver.FindAndModify, op.Kind)
	assert.Equal(t, readpref.PrimaryMode, op.Options.ReadPreference.Mode)
	assert.Contains(t, op.Body, bson.E{Key: "new", Value: true})
}

func TestLegacyFindAndRemove(t *testing.T) {
	logger, _ := logtest.NewNullLogger()
	exec := &recordingExecutor{result: &driver.Result{
		Acknowledged: true,
		Value:        mustMarshal(t, bson.D{{Key: "x", Value: 1}}),
	}}
	client, err := NewClient(exec, options.Client().SetLogger(logger))
	require.NoError(t, err)
	coll := client.Database("db").Collection("coll")

	res := coll.FindAndRemove(context.Background(), bson.D{{Key: "x", Value: 1}})
	require.NoError(t, res.Err())

	op := exec.last(t)
	assert.Equal(t, driver.FindAndModify, op.Kind)
	assert.Nil(t, op.Update)
	assert.Contains(t, op.Body, bson.E{Key: "remove", Value: true})
	assert.Equal(t, readpref.PrimaryMode, op.Options.ReadPreference.Mode)
}

func TestLegacyGroupForcesPrimary(t *testing.T) {
	logger, _ := logtest.NewNullLogger()
	exec := &recordingExecutor{result: &driver.Result{
		Acknowledged: true,
		Values:       []interface{}{bson.D{{Key: "count", Value: 2}}},
	}}
	client, err := NewClient(exec, options.Client().
		SetLogger(logger).
		SetReadPreference(readpref.Nearest()))
	require.NoError(t, err)
	coll := client.Database("db").Collection("coll")

	spec := bson.D{
		{Key: "key", Value: bson.D{{Key: "x", Value: 1}}},
		{Key: "initial", Value: bson.D{{Key: "count", Value: 0}}},
	}
	values, err := coll.Group(context.Background(), spec)
	require.NoError(t, err)
	assert.Len(t, values, 1)

	op := exec.last(t)
	assert.Equal(t, driver.Group, op.Kind)
	assert.Equal(t, readpref.PrimaryMode, op.Options.ReadPreference.Mode)
}

func TestLegacyEnsureIndex(t *testing.T) {
	coll, exec, _ := newLegacyCollection(t)

	name, err := coll.EnsureIndex(context.Background(),
		bson.D{{Key: "a", Value: 1}, {Key: "b", Value: -1}},
		bson.M{"unique": true})
	require.NoError(t, err)
	assert.Equal(t, "a_1_b_-1", name)

	op := exec.last(t)
	assert.Equal(t, driver.CreateIndexes, op.Kind)
	require.Len(t, op.Documents, 1)
	index := op.Documents[0].(bson.D)
	assert.Contains(t, index, bson.E{Key: "unique", Value: true})
}

func TestLegacyCallbackInvokedSynchronously(t *testing.T) {
	coll, _, _ := newLegacyCollection(t)

	var got interface{}
	var gotErr error
	res, err := coll.Insert(context.Background(), bson.D{{Key: "x", Value: 1}},
		func(result interface{}, err error) {
			got = result
			gotErr = err
		})
	require.NoError(t, err)
	assert.NoError(t, gotErr)
	assert.Equal(t, res, got)
}

func TestLegacyCallbackReceivesErrors(t *testing.T) {
	coll, _, _ := newLegacyCollection(t)

	var gotErr error
	_, err := coll.Update(context.Background(),
		bson.D{},
		bson.D{{Key: "x", Value: 1}}, // not an operator expression
		func(_ interface{}, err error) { gotErr = err },
	)
	require.Error(t, err)
	assert.Equal(t, err, gotErr)
}

func TestLegacyCallbackReceivesArgumentErrors(t *testing.T) {
	coll, _, _ := newLegacyCollection(t)

	var gotErr error
	_, err := coll.Update(context.Background(),
		func(_ interface{}, err error) { gotErr = err }, // missing the update document
	)
	require.Error(t, err)
	var invalid driver.InvalidArgumentError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, err, gotErr)
}

func TestDeprecationWarnsOnce(t *testing.T) {
	coll, _, hook := newLegacyCollection(t)

	for i := 0; i < 3; i++ {
		_, err := coll.Remove(context.Background(), bson.D{})
		require.NoError(t, err)
	}

	entries := hook.AllEntries()
	require.Len(t, entries, 1)
	assert.Equal(t, logrus.WarnLevel, entries[0].Level)
	assert.Equal(t, "remove", entries[0].Data["method"])
	assert.Equal(t, "DeleteMany", entries[0].Data["replacement"])
}

func TestDeprecationWarnsPerMethod(t *testing.T) {
	coll, _, hook := newLegacyCollection(t)

	_, err := coll.Remove(context.Background(), bson.D{})
	require.NoError(t, err)
	update := bson.D{{Key: "$set", Value: bson.D{{Key: "x", Value: 1}}}}
	_, err = coll.Update(context.Background(), bson.D{}, update)
	require.NoError(t, err)

	assert.Len(t, hook.AllEntries(), 2)
}

func mustMarshal(t *testing.T, doc interface{}) bson.Raw {
	t.Helper()
	raw, err := bson.Marshal(doc)
	require.NoError(t, err)
	return bson.Raw(raw)
}
