// Copyright (C) OpalDB, Inc. 2024-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package driver

import (
	"errors"
	"fmt"
)

// ErrEmptySlice is returned when a non-empty slice is required but an empty
// one was provided.
var ErrEmptySlice = errors.New("must provide at least one element in input slice")

// ErrNilDocument is returned when a nil document is provided where a document
// is required.
var ErrNilDocument = errors.New("document is nil")

// ErrMissingOutput is returned when a map-reduce operation is dispatched
// without an output target.
var ErrMissingOutput = errors.New("map-reduce requires an output target")

// InvalidArgumentError is returned when a public entry point is called with
// the wrong arity or an argument of the wrong type. It is always produced
// before a descriptor reaches the executor.
type InvalidArgumentError struct {
	Method string
	Reason string
}

func (e InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument to %s: %s", e.Method, e.Reason)
}

// MalformedMessageError is returned when a raw byte-buffer filter declares a
// length that does not match its actual length.
type MalformedMessageError struct {
	Expected int
	Actual   int
}

func (e MalformedMessageError) Error() string {
	return fmt.Sprintf("malformed message: declared length %d does not match buffer length %d",
		e.Expected, e.Actual)
}
