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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/opaldb/opal-go-driver/opal/driver"
	"github.com/opaldb/opal-go-driver/opal/options"
	"github.com/opaldb/opal-go-driver/opal/readconcern"
	"github.com/opaldb/opal-go-driver/opal/readpref"
	"github.com/opaldb/opal-go-driver/opal/writeconcern"
)

// recordingExecutor captures every descriptor it receives and replies with a
// canned result.
type recordingExecutor struct {
	ops    []*driver.Operation
	result *driver.Result
	err    error
}

func (e *recordingExecutor) Execute(_ context.Context, op *driver.Operation) (*driver.Result, error) {
	e.ops = append(e.ops, op)
	if e.err != nil {
		return nil, e.err
	}
	if e.result != nil {
		return e.result, nil
	}
	return &driver.Result{Acknowledged: true}, nil
}

func (e *recordingExecutor) ExecuteCursor(_ context.Context, op *driver.Operation) (driver.Cursor, error) {
	e.ops = append(e.ops, op)
	return nil, e.err
}

func (e *recordingExecutor) last(t *testing.T) *driver.Operation {
	t.Helper()
	require.NotEmpty(t, e.ops)
	return e.ops[len(e.ops)-1]
}

func newTestCollection(t *testing.T, opts ...*options.ClientOptions) (*Collection, *recordingExecutor) {
	t.Helper()
	exec := &recordingExecutor{}
	client, err := NewClient(exec, opts...)
	require.NoError(t, err)
	return client.Database("db").Collection("coll"), exec
}

func TestNewClientRequiresExecutor(t *testing.T) {
	_, err := NewClient(nil)
	assert.ErrorIs(t, err, ErrNilExecutor)
}

func TestInsertOneGeneratesID(t *testing.T) {
	coll, exec := newTestCollection(t)

	res, err := coll.InsertOne(context.Background(), bson.D{{Key: "x", Value: 1}})
	require.NoError(t, err)
	require.NotNil(t, res.InsertedID)
	_, ok := res.InsertedID.(primitive.ObjectID)
	assert.True(t, ok, "expected a generated ObjectID, got %T", res.InsertedID)

	op := exec.last(t)
	assert.Equal(t, driver.InsertOne, op.Kind)
	require.Len(t, op.Documents, 1)
	doc := op.Documents[0].(bson.D)
	assert.Equal(t, "_id", doc[0].Key)
}

func TestInsertOneKeepsCallerID(t *testing.T) {
	coll, _ := newTestCollection(t)

	res, err := coll.InsertOne(context.Background(), bson.D{{Key: "x", Value: 1}, {Key: "_id", Value: "me"}})
	require.NoError(t, err)
	assert.Equal(t, "me", res.InsertedID)
}

func TestInsertManyValidation(t *testing.T) {
	coll, _ := newTestCollection(t)

	_, err := coll.InsertMany(context.Background(), nil)
	assert.ErrorIs(t, err, ErrEmptySlice)

	_, err = coll.InsertMany(context.Background(), []interface{}{nil})
	assert.ErrorIs(t, err, ErrNilDocument)
}

func TestUpdateRequiresOperatorExpression(t *testing.T) {
	coll, _ := newTestCollection(t)
	filter := bson.D{{Key: "x", Value: 1}}

	_, err := coll.UpdateOne(context.Background(), filter, bson.D{{Key: "x", Value: 2}})
	var invalid driver.InvalidArgumentError
	require.ErrorAs(t, err, &invalid)

	_, err = coll.UpdateOne(context.Background(), filter, bson.D{{Key: "$set", Value: bson.D{{Key: "x", Value: 2}}}})
	assert.NoError(t, err)
}

func TestReplaceRejectsOperatorExpression(t *testing.T) {
	coll, _ := newTestCollection(t)
	filter := bson.D{{Key: "x", Value: 1}}

	_, err := coll.ReplaceOne(context.Background(), filter, bson.D{{Key: "$set", Value: 1}})
	var invalid driver.InvalidArgumentError
	require.ErrorAs(t, err, &invalid)

	_, err = coll.ReplaceOne(context.Background(), filter, bson.D{{Key: "x", Value: 2}})
	assert.NoError(t, err)
}

func TestDeleteDispatch(t *testing.T) {
	coll, exec := newTestCollection(t)

	_, err := coll.DeleteOne(context.Background(), bson.D{})
	require.NoError(t, err)
	assert.Equal(t, driver.DeleteOne, exec.last(t).Kind)

	_, err = coll.DeleteMany(context.Background(), bson.D{})
	require.NoError(t, err)
	assert.Equal(t, driver.DeleteMany, exec.last(t).Kind)
}

func TestOptionResolutionPrecedence(t *testing.T) {
	exec := &recordingExecutor{}
	client, err := NewClient(exec, options.Client().
		SetReadConcern(readconcern.Local()).
		SetReadPreference(readpref.SecondaryPreferred()))
	require.NoError(t, err)

	db := client.Database("db", options.Database().SetReadConcern(readconcern.Majority()))
	coll := db.Collection("coll", options.Collection().SetReadPreference(readpref.Secondary()))

	t.Run("collection and database overrides apply", func(t *testing.T) {
		_, err := coll.DeleteMany(context.Background(), bson.D{})
		require.NoError(t, err)
		op := exec.last(t)
		assert.Equal(t, readconcern.Majority(), op.Options.ReadConcern)
		assert.Equal(t, readpref.Secondary(), op.Options.ReadPreference)
	})

	t.Run("call options win over everything", func(t *testing.T) {
		do := options.Delete()
		do.ReadConcern = readconcern.Linearizable()
		_, err := coll.DeleteMany(context.Background(), bson.D{}, do)
		require.NoError(t, err)
		assert.Equal(t, readconcern.Linearizable(), exec.last(t).Options.ReadConcern)
	})

	t.Run("write concern falls back to the client", func(t *testing.T) {
		wc := writeconcern.New(writeconcern.WMajority())
		client2, err := NewClient(exec, options.Client().SetWriteConcern(wc))
		require.NoError(t, err)
		coll2 := client2.Database("db").Collection("coll")
		_, err = coll2.DeleteMany(context.Background(), bson.D{})
		require.NoError(t, err)
		assert.Equal(t, wc, exec.last(t).Options.WriteConcern)
	})
}

func TestSerializationFlagDefaults(t *testing.T) {
	coll, exec := newTestCollection(t)

	_, err := coll.DeleteMany(context.Background(), bson.D{})
	require.NoError(t, err)

	op := exec.last(t)
	assert.True(t, op.Options.PromoteLongs)
	assert.True(t, op.Options.PromoteValues)
	assert.False(t, op.Options.Raw)
	assert.False(t, op.Options.PromoteBuffers)
	assert.False(t, op.Options.SerializeFunctions)
	assert.False(t, op.Options.IgnoreUndefined)
}

func TestIgnoreUndefinedCascades(t *testing.T) {
	exec := &recordingExecutor{}
	client, err := NewClient(exec, options.Client().
		SetBSON(options.BSON().SetIgnoreUndefined(true)))
	require.NoError(t, err)
	coll := client.Database("db").Collection("coll")

	// A call that brings its own serialization flags still inherits
	// IgnoreUndefined from the chain.
	do := options.Delete()
	do.BSON = options.BSON().SetRaw(true)
	_, err = coll.DeleteMany(context.Background(), bson.D{}, do)
	require.NoError(t, err)

	op := exec.last(t)
	assert.True(t, op.Options.Raw)
	assert.True(t, op.Options.IgnoreUndefined)
}

func TestFindDispatch(t *testing.T) {
	coll, exec := newTestCollection(t)

	_, err := coll.Find(context.Background(), bson.D{{Key: "x", Value: 1}},
		options.Find().SetLimit(10).SetSkip(2))
	require.NoError(t, err)

	op := exec.last(t)
	assert.Equal(t, driver.Find, op.Kind)
	require.NotNil(t, op.Find)
	assert.Equal(t, int64(10), op.Find.Limit)
	assert.Equal(t, int64(2), op.Find.Skip)
}

func TestFindOneCompilesSingleBatch(t *testing.T) {
	coll, exec := newTestCollection(t)

	coll.FindOne(context.Background(), bson.D{})

	op := exec.last(t)
	assert.Equal(t, driver.FindOne, op.Kind)
	require.NotNil(t, op.Find)
	assert.Equal(t, int64(1), op.Find.Limit)
	assert.True(t, op.Find.SingleBatch)
}

func TestAggregateOutputStageForcesPrimary(t *testing.T) {
	exec := &recordingExecutor{}
	client, err := NewClient(exec, options.Client().SetReadPreference(readpref.Secondary()))
	require.NoError(t, err)
	coll := client.Database("db").Collection("coll")

	t.Run("plain pipeline keeps the read preference", func(t *testing.T) {
		_, err := coll.Aggregate(context.Background(), []bson.D{{{Key: "$match", Value: bson.D{}}}})
		require.NoError(t, err)
		assert.Equal(t, readpref.SecondaryMode, exec.last(t).Options.ReadPreference.Mode)
	})

	t.Run("$out pipeline runs on the primary", func(t *testing.T) {
		pipeline := []bson.D{
			{{Key: "$match", Value: bson.D{}}},
			{{Key: "$out", Value: "target"}},
		}
		_, err := coll.Aggregate(context.Background(), pipeline)
		require.NoError(t, err)
		assert.Equal(t, readpref.PrimaryMode, exec.last(t).Options.ReadPreference.Mode)
	})

	t.Run("unsupported pipeline shape is rejected", func(t *testing.T) {
		_, err := coll.Aggregate(context.Background(), "not a pipeline")
		assert.Error(t, err)
	})
}

func TestCountDocumentsDispatch(t *testing.T) {
	coll, exec := newTestCollection(t)
	exec.result = &driver.Result{Acknowledged: true, N: 42}

	n, err := coll.CountDocuments(context.Background(), bson.D{{Key: "x", Value: 1}})
	require.NoError(t, err)
	assert.Equal(t, int64(42), n)
	assert.Equal(t, driver.Count, exec.last(t).Kind)
}

func TestEstimatedDocumentCountDispatch(t *testing.T) {
	coll, exec := newTestCollection(t)
	exec.result = &driver.Result{Acknowledged: true, N: 7}

	n, err := coll.EstimatedDocumentCount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(7), n)

	op := exec.last(t)
	assert.Equal(t, driver.EstimatedCount, op.Kind)
	assert.Nil(t, op.Filter)
}

func TestDistinctDispatch(t *testing.T) {
	coll, exec := newTestCollection(t)
	exec.result = &driver.Result{Acknowledged: true, Values: []interface{}{"a", "b"}}

	values, err := coll.Distinct(context.Background(), "x", bson.D{})
	require.NoError(t, err)
	assert.Equal(t, []interface{}{"a", "b"}, values)

	op := exec.last(t)
	assert.Equal(t, driver.Distinct, op.Kind)
	assert.Equal(t, bson.D{{Key: "key", Value: "x"}}, op.Body)
}

func TestMapReduceRequiresOutput(t *testing.T) {
	coll, _ := newTestCollection(t)

	_, err := coll.MapReduce(context.Background(), "m", "r")
	assert.ErrorIs(t, err, ErrMissingOutput)

	_, err = coll.MapReduce(context.Background(), "m", "r", options.MapReduce().SetOut("target"))
	assert.NoError(t, err)
}

func TestDropAndRenameForcePrimary(t *testing.T) {
	exec := &recordingExecutor{}
	client, err := NewClient(exec, options.Client().SetReadPreference(readpref.Nearest()))
	require.NoError(t, err)
	coll := client.Database("db").Collection("coll")

	require.NoError(t, coll.Drop(context.Background()))
	op := exec.last(t)
	assert.Equal(t, driver.DropCollection, op.Kind)
	assert.Equal(t, readpref.PrimaryMode, op.Options.ReadPreference.Mode)

	require.NoError(t, coll.Rename(context.Background(), "other", options.Rename().SetDropTarget(true)))
	op = exec.last(t)
	assert.Equal(t, driver.RenameCollection, op.Kind)
	assert.Equal(t, readpref.PrimaryMode, op.Options.ReadPreference.Mode)
	assert.Equal(t, bson.D{
		{Key: "to", Value: "db.other"},
		{Key: "dropTarget", Value: true},
	}, op.Body)
}

func TestBulkWriteDispatch(t *testing.T) {
	coll, exec := newTestCollection(t)

	models := []WriteModel{
		NewInsertOneModel().SetDocument(bson.D{{Key: "x", Value: 1}}),
		NewUpdateManyModel().
			SetFilter(bson.D{{Key: "x", Value: 1}}).
			SetUpdate(bson.D{{Key: "$inc", Value: bson.D{{Key: "x", Value: 1}}}}),
		NewDeleteOneModel().SetFilter(bson.D{{Key: "x", Value: 2}}),
	}
	_, err := coll.BulkWrite(context.Background(), models)
	require.NoError(t, err)

	op := exec.last(t)
	assert.Equal(t, driver.BulkWrite, op.Kind)
	require.Len(t, op.Models, 3)
	assert.Equal(t, driver.InsertOne, op.Models[0].Kind)
	assert.Equal(t, driver.UpdateMany, op.Models[1].Kind)
	assert.Equal(t, driver.DeleteOne, op.Models[2].Kind)
	assert.Equal(t, bson.D{{Key: "ordered", Value: true}}, op.Body)
}

func TestBulkWriteValidation(t *testing.T) {
	coll, _ := newTestCollection(t)

	_, err := coll.BulkWrite(context.Background(), nil)
	assert.ErrorIs(t, err, ErrEmptySlice)

	badUpdate := []WriteModel{
		NewUpdateOneModel().
			SetFilter(bson.D{}).
			SetUpdate(bson.D{{Key: "x", Value: 1}}),
	}
	_, err = coll.BulkWrite(context.Background(), badUpdate)
	var invalid driver.InvalidArgumentError
	assert.ErrorAs(t, err, &invalid)
}

func TestCloneOverrides(t *testing.T) {
	coll, exec := newTestCollection(t)

	clone := coll.Clone(options.Collection().SetReadPreference(readpref.Secondary()))

	_, err := clone.Find(context.Background(), bson.D{})
	require.NoError(t, err)
	assert.True(t, exec.last(t).Find.SecondaryOK)

	_, err = coll.Find(context.Background(), bson.D{})
	require.NoError(t, err)
	assert.False(t, exec.last(t).Find.SecondaryOK)
}

func TestCollectionHintInherited(t *testing.T) {
	exec := &recordingExecutor{}
	client, err := NewClient(exec)
	require.NoError(t, err)
	coll := client.Database("db").Collection("coll", options.Collection().SetHint("x_1"))

	_, err = coll.Find(context.Background(), bson.D{})
	require.NoError(t, err)
	assert.Equal(t, bson.D{{Key: "x_1", Value: 1}}, exec.last(t).Find.Hint)
}

func TestFindOneAndUpdateDispatch(t *testing.T) {
	coll, exec := newTestCollection(t)
	exec.result = &driver.Result{
		Acknowledged: true,
		Value:        mustMarshal(t, bson.D{{Key: "x", Value: int32(1)}}),
	}

	update := bson.D{{Key: "$inc", Value: bson.D{{Key: "x", Value: 1}}}}
	res := coll.FindOneAndUpdate(context.Background(), bson.D{{Key: "x", Value: 1}}, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After).SetUpsert(true))
	require.NoError(t, res.Err())

	var out struct {
		X int32 `bson:"x"`
	}
	require.NoError(t, res.Decode(&out))
	assert.Equal(t, int32(1), out.X)

	op := exec.last(t)
	assert.Equal(t, driver.FindAndModify, op.Kind)
	assert.Contains(t, op.Body, bson.E{Key: "new", Value: true})
	assert.Contains(t, op.Body, bson.E{Key: "upsert", Value: true})
}

func TestFindOneAndUpdateRejectsPlainDocument(t *testing.T) {
	coll, _ := newTestCollection(t)

	res := coll.FindOneAndUpdate(context.Background(), bson.D{}, bson.D{{Key: "x", Value: 1}})
	var invalid driver.InvalidArgumentError
	assert.ErrorAs(t, res.Err(), &invalid)
}

func TestFindOneAndDeleteDispatch(t *testing.T) {
	coll, exec := newTestCollection(t)
	exec.result = &driver.Result{
		Acknowledged: true,
		Value:        mustMarshal(t, bson.D{{Key: "x", Value: int32(1)}}),
	}

	res := coll.FindOneAndDelete(context.Background(), bson.D{{Key: "x", Value: 1}},
		options.FindOneAndDelete().SetSort(bson.D{{Key: "x", Value: -1}}))
	require.NoError(t, res.Err())

	op := exec.last(t)
	assert.Equal(t, driver.FindAndModify, op.Kind)
	assert.Nil(t, op.Update)
	assert.Contains(t, op.Body, bson.E{Key: "remove", Value: true})
	assert.Contains(t, op.Body, bson.E{Key: "sort", Value: bson.D{{Key: "x", Value: int32(-1)}}})
}

func TestFindOneAndModifyNoMatch(t *testing.T) {
	coll, _ := newTestCollection(t)
	// The canned result carries no document.

	res := coll.FindOneAndDelete(context.Background(), bson.D{{Key: "x", Value: 1}})
	assert.ErrorIs(t, res.Err(), ErrNoDocuments)
}

func TestTransformDocumentShapes(t *testing.T) {
	type record struct {
		X int    `bson:"x"`
		Y string `bson:"y"`
	}

	coll, exec := newTestCollection(t)

	_, err := coll.InsertOne(context.Background(), record{X: 1, Y: "a"})
	require.NoError(t, err)

	doc := exec.last(t).Documents[0].(bson.D)
	require.Equal(t, "_id", doc[0].Key)
	want := bson.D{{Key: "x", Value: int32(1)}, {Key: "y", Value: "a"}}
	if diff := cmp.Diff(want, doc[1:]); diff != "" {
		t.Errorf("document mismatch (-want +got):\n%s", diff)
	}

	_, err = coll.InsertOne(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNilDocument)
}
