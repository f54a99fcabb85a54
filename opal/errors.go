// Copyright (C) OpalDB, Inc. 2024-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package opal

import (
	"errors"

	"github.com/opaldb/opal-go-driver/opal/driver"
)

// ErrNilExecutor is returned by NewClient when no executor is supplied.
var ErrNilExecutor = errors.New("an executor is required to construct a client")

// ErrNoDocuments is returned by SingleResult methods when the operation that
// created the SingleResult did not return any documents.
var ErrNoDocuments = errors.New("no documents in result")

// ErrEmptySlice is returned when a non-empty slice is required but an empty
// one was provided.
var ErrEmptySlice = driver.ErrEmptySlice

// ErrNilDocument is returned when a nil document is provided where a document
// is required.
var ErrNilDocument = driver.ErrNilDocument

// ErrMissingOutput is returned when MapReduce is called without an output
// target.
var ErrMissingOutput = driver.ErrMissingOutput
