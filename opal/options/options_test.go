// Copyright (C) OpalDB, Inc. 2024-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/opaldb/opal-go-driver/opal/readconcern"
	"github.com/opaldb/opal-go-driver/opal/readpref"
)

func TestMergeFindOptionsLastOneWins(t *testing.T) {
	first := Find().SetLimit(5).SetSkip(1).SetComment("first")
	second := Find().SetLimit(10)

	merged := MergeFindOptions(first, nil, second)

	require.NotNil(t, merged.Limit)
	assert.Equal(t, int64(10), *merged.Limit)
	require.NotNil(t, merged.Skip)
	assert.Equal(t, int64(1), *merged.Skip)
	require.NotNil(t, merged.Comment)
	assert.Equal(t, "first", *merged.Comment)
}

func TestMergeFindOptionsOperationFields(t *testing.T) {
	first := Find()
	first.ReadConcern = readconcern.Local()
	first.ReadPreference = readpref.Secondary()
	second := Find()
	second.ReadConcern = readconcern.Majority()

	merged := MergeFindOptions(first, second)
	assert.Equal(t, readconcern.Majority(), merged.ReadConcern)
	assert.Equal(t, readpref.Secondary(), merged.ReadPreference)
}

func TestMergeBSONOptions(t *testing.T) {
	base := BSON().SetIgnoreUndefined(true).SetPromoteLongs(false)
	override := BSON().SetPromoteLongs(true)

	merged := MergeBSONOptions(base, override)

	require.NotNil(t, merged.IgnoreUndefined)
	assert.True(t, *merged.IgnoreUndefined)
	require.NotNil(t, merged.PromoteLongs)
	assert.True(t, *merged.PromoteLongs)
	assert.Nil(t, merged.Raw)

	// Inputs are not mutated.
	require.NotNil(t, base.PromoteLongs)
	assert.False(t, *base.PromoteLongs)
}

func TestFindOneToFindOptions(t *testing.T) {
	fo := FindOne().
		SetSkip(3).
		SetSort(bson.D{{Key: "a", Value: 1}}).
		SetProjection([]string{"a"})
	fo.ReadConcern = readconcern.Majority()

	converted := fo.ToFindOptions()

	require.NotNil(t, converted.Skip)
	assert.Equal(t, int64(3), *converted.Skip)
	assert.Equal(t, bson.D{{Key: "a", Value: 1}}, converted.Sort)
	assert.Equal(t, []string{"a"}, converted.Projection)
	assert.Equal(t, readconcern.Majority(), converted.ReadConcern)
	assert.Nil(t, converted.Limit, "the caller decides the limit")
}

func TestMergeCollectionOptions(t *testing.T) {
	first := Collection().SetHint("x_1").SetReadPreference(readpref.Secondary())
	second := Collection().SetHint("y_1")

	merged := MergeCollectionOptions(first, second)
	assert.Equal(t, "y_1", merged.Hint)
	assert.Equal(t, readpref.Secondary(), merged.ReadPreference)
}

func TestCollationToDocument(t *testing.T) {
	c := &Collation{Locale: "en_US", Strength: 2, CaseLevel: true}
	doc := c.ToDocument()

	assert.Equal(t, bson.E{Key: "locale", Value: "en_US"}, doc[0])
	assert.Contains(t, doc, bson.E{Key: "strength", Value: 2})
	assert.Contains(t, doc, bson.E{Key: "caseLevel", Value: true})
}
