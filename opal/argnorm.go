// Copyright (C) OpalDB, Inc. 2024-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package opal

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/opaldb/opal-go-driver/opal/driver"
)

// Callback is the completion function accepted as the optional final argument
// of the legacy entry points. It is invoked synchronously, after the
// operation returns, with the same values the method itself returns.
type Callback func(result interface{}, err error)

// argSpec describes one positional argument of a legacy entry point.
type argSpec struct {
	name     string
	required bool
	// def supplies the value when the caller omitted the argument or passed
	// nil. Unused for required arguments.
	def func() interface{}
}

// argTemplate is the decision table for one legacy entry point. The legacy
// surface is overloaded by arity: trailing optional arguments may be omitted,
// and a function in the final position is the completion callback rather than
// a positional argument.
type argTemplate struct {
	method string
	specs  []argSpec
}

func optionalDoc(name string) argSpec {
	return argSpec{name: name, def: func() interface{} { return bson.D{} }}
}

func optionalMap(name string) argSpec {
	return argSpec{name: name, def: func() interface{} { return bson.M{} }}
}

func requiredDoc(name string) argSpec {
	return argSpec{name: name, required: true}
}

// normalize resolves an overloaded argument list against the template. The
// returned slice always has len(t.specs) entries in template order, with
// omitted optional arguments replaced by their defaults. A trailing function
// argument is split off as the callback; a function anywhere else is an
// error, as is exceeding the template's arity or omitting a required
// argument.
func (t argTemplate) normalize(args []interface{}) ([]interface{}, Callback, error) {
	var cb Callback
	if n := len(args); n > 0 {
		if c, ok := asCallback(args[n-1]); ok {
			cb = c
			args = args[:n-1]
		}
	}

	for i, arg := range args {
		if _, ok := asCallback(arg); ok {
			return nil, nil, driver.InvalidArgumentError{
				Method: t.method,
				Reason: fmt.Sprintf("callback must be the final argument, got one at position %d", i),
			}
		}
	}

	if len(args) > len(t.specs) {
		return nil, cb, driver.InvalidArgumentError{
			Method: t.method,
			Reason: fmt.Sprintf("too many arguments: at most %d expected, got %d", len(t.specs), len(args)),
		}
	}

	out := make([]interface{}, len(t.specs))
	for i, spec := range t.specs {
		if i < len(args) && args[i] != nil {
			out[i] = args[i]
			continue
		}
		if spec.required {
			return nil, cb, driver.InvalidArgumentError{
				Method: t.method,
				Reason: fmt.Sprintf("missing required argument %q", spec.name),
			}
		}
		out[i] = spec.def()
	}
	return out, cb, nil
}

// asCallback recognizes both the named Callback type and a bare function
// literal of the same shape.
func asCallback(arg interface{}) (Callback, bool) {
	switch c := arg.(type) {
	case Callback:
		return c, true
	case func(interface{}, error):
		return c, true
	}
	return nil, false
}

// legacyOptions coerces the legacy trailing options argument into a lookup
// map. Both bson.M and bson.D shapes are accepted.
func legacyOptions(arg interface{}) (bson.M, error) {
	switch m := arg.(type) {
	case nil:
		return bson.M{}, nil
	case bson.M:
		return m, nil
	case map[string]interface{}:
		return bson.M(m), nil
	case bson.D:
		out := make(bson.M, len(m))
		for _, e := range m {
			out[e.Key] = e.Value
		}
		return out, nil
	}
	return nil, driver.InvalidArgumentError{
		Method: "options",
		Reason: fmt.Sprintf("options must be a document, got %T", arg),
	}
}

// legacyBool reads a truthy flag from a legacy options map under any of the
// given spellings.
func legacyBool(m bson.M, keys ...string) bool {
	for _, key := range keys {
		v, ok := m[key]
		if !ok {
			continue
		}
		switch b := v.(type) {
		case bool:
			return b
		case int:
			return b != 0
		case int32:
			return b != 0
		case int64:
			return b != 0
		}
	}
	return false
}
