// Copyright (C) OpalDB, Inc. 2024-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package opal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/opaldb/opal-go-driver/opal/driver"
)

func TestArgTemplateFillsDefaults(t *testing.T) {
	template := argTemplate{
		method: "remove",
		specs:  []argSpec{optionalDoc("selector"), optionalMap("options")},
	}

	t.Run("no arguments", func(t *testing.T) {
		norm, cb, err := template.normalize(nil)
		require.NoError(t, err)
		assert.Nil(t, cb)
		assert.Equal(t, []interface{}{bson.D{}, bson.M{}}, norm)
	})

	t.Run("explicit nil is replaced by the default", func(t *testing.T) {
		norm, _, err := template.normalize([]interface{}{nil, nil})
		require.NoError(t, err)
		assert.Equal(t, []interface{}{bson.D{}, bson.M{}}, norm)
	})

	t.Run("supplied arguments pass through", func(t *testing.T) {
		selector := bson.D{{Key: "x", Value: 1}}
		norm, _, err := template.normalize([]interface{}{selector})
		require.NoError(t, err)
		assert.Equal(t, selector, norm[0])
		assert.Equal(t, bson.M{}, norm[1])
	})
}

func TestArgTemplateCallbackExtraction(t *testing.T) {
	template := argTemplate{
		method: "remove",
		specs:  []argSpec{optionalDoc("selector"), optionalMap("options")},
	}

	t.Run("trailing callback is split off", func(t *testing.T) {
		called := false
		norm, cb, err := template.normalize([]interface{}{
			bson.D{{Key: "x", Value: 1}},
			func(interface{}, error) { called = true },
		})
		require.NoError(t, err)
		require.NotNil(t, cb)
		assert.Equal(t, bson.M{}, norm[1], "callback must not occupy the options slot")

		cb(nil, nil)
		assert.True(t, called)
	})

	t.Run("named Callback type is recognized too", func(t *testing.T) {
		var cbArg Callback = func(interface{}, error) {}
		_, cb, err := template.normalize([]interface{}{bson.D{}, cbArg})
		require.NoError(t, err)
		assert.NotNil(t, cb)
	})

	t.Run("callback alone is valid", func(t *testing.T) {
		norm, cb, err := template.normalize([]interface{}{func(interface{}, error) {}})
		require.NoError(t, err)
		assert.NotNil(t, cb)
		assert.Equal(t, []interface{}{bson.D{}, bson.M{}}, norm)
	})

	t.Run("omitted options and explicit empty options normalize identically", func(t *testing.T) {
		filter := bson.D{{Key: "x", Value: 1}}
		cb := Callback(func(interface{}, error) {})

		short, _, err := template.normalize([]interface{}{filter, cb})
		require.NoError(t, err)
		long, _, err := template.normalize([]interface{}{filter, bson.M{}, cb})
		require.NoError(t, err)
		assert.Equal(t, long, short)
	})

	t.Run("callback before other arguments is rejected", func(t *testing.T) {
		_, _, err := template.normalize([]interface{}{
			func(interface{}, error) {},
			bson.D{},
		})
		var invalid driver.InvalidArgumentError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, "remove", invalid.Method)
	})
}

func TestArgTemplateArity(t *testing.T) {
	template := argTemplate{
		method: "update",
		specs:  []argSpec{optionalDoc("selector"), requiredDoc("update"), optionalMap("options")},
	}

	t.Run("too many arguments", func(t *testing.T) {
		_, _, err := template.normalize([]interface{}{bson.D{}, bson.D{}, bson.M{}, bson.M{}})
		var invalid driver.InvalidArgumentError
		require.ErrorAs(t, err, &invalid)
	})

	t.Run("missing required argument", func(t *testing.T) {
		_, _, err := template.normalize([]interface{}{bson.D{}})
		var invalid driver.InvalidArgumentError
		require.ErrorAs(t, err, &invalid)
	})

	t.Run("callback survives arity errors", func(t *testing.T) {
		cb := Callback(func(interface{}, error) {})

		_, got, err := template.normalize([]interface{}{bson.D{}, cb})
		require.Error(t, err, "required update document is missing")
		assert.NotNil(t, got)

		_, got, err = template.normalize([]interface{}{bson.D{}, bson.D{}, bson.M{}, bson.M{}, cb})
		require.Error(t, err)
		assert.NotNil(t, got)
	})

	t.Run("required argument present", func(t *testing.T) {
		norm, _, err := template.normalize([]interface{}{
			bson.D{},
			bson.D{{Key: "$set", Value: bson.D{{Key: "x", Value: 1}}}},
		})
		require.NoError(t, err)
		assert.Len(t, norm, 3)
	})
}

func TestLegacyOptionsShapes(t *testing.T) {
	t.Run("map shapes pass through", func(t *testing.T) {
		m, err := legacyOptions(bson.M{"upsert": true})
		require.NoError(t, err)
		assert.Equal(t, bson.M{"upsert": true}, m)
	})

	t.Run("ordered document is flattened", func(t *testing.T) {
		m, err := legacyOptions(bson.D{{Key: "upsert", Value: true}})
		require.NoError(t, err)
		assert.Equal(t, bson.M{"upsert": true}, m)
	})

	t.Run("nil becomes an empty map", func(t *testing.T) {
		m, err := legacyOptions(nil)
		require.NoError(t, err)
		assert.Empty(t, m)
	})

	t.Run("non-document shape is rejected", func(t *testing.T) {
		_, err := legacyOptions("keepGoing")
		assert.Error(t, err)
	})
}

func TestLegacyBool(t *testing.T) {
	m := bson.M{"keepGoing": 1, "upsert": true, "off": false}
	assert.True(t, legacyBool(m, "keepGoing"))
	assert.True(t, legacyBool(m, "upsert"))
	assert.False(t, legacyBool(m, "off"))
	assert.False(t, legacyBool(m, "missing"))
	assert.True(t, legacyBool(m, "continueOnError", "keepGoing"))
}
