// Copyright (C) OpalDB, Inc. 2024-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

// Package writeconcern defines write concerns for OpalDB operations.
package writeconcern

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// WriteConcern describes the level of acknowledgment requested from the server
// for write operations.
type WriteConcern struct {
	W        interface{}
	Journal  *bool
	WTimeout time.Duration
}

// Option is an option to provide when creating a WriteConcern.
type Option func(concern *WriteConcern)

// New constructs a WriteConcern from the given options.
func New(options ...Option) *WriteConcern {
	concern := &WriteConcern{}
	for _, option := range options {
		option(concern)
	}
	return concern
}

// W requests acknowledgment that write operations propagate to the specified
// number of instances.
func W(w int) Option {
	return func(concern *WriteConcern) {
		concern.W = w
	}
}

// WMajority requests acknowledgment that write operations propagate to the
// majority of data-bearing voting members.
func WMajority() Option {
	return func(concern *WriteConcern) {
		concern.W = "majority"
	}
}

// WTagSet requests acknowledgment that write operations propagate to the
// specified instances.
func WTagSet(tag string) Option {
	return func(concern *WriteConcern) {
		concern.W = tag
	}
}

// J requests acknowledgment from instances that have written to the on-disk
// journal.
func J(j bool) Option {
	return func(concern *WriteConcern) {
		concern.Journal = &j
	}
}

// WTimeout specifies a time limit for the write concern.
func WTimeout(d time.Duration) Option {
	return func(concern *WriteConcern) {
		concern.WTimeout = d
	}
}

// Acknowledged indicates whether or not a write with the given write concern
// will be acknowledged. A nil WriteConcern falls back to the server default,
// which is acknowledged.
func (wc *WriteConcern) Acknowledged() bool {
	if wc == nil {
		return true
	}
	if w, ok := wc.W.(int); ok && w == 0 {
		return false
	}
	return true
}

// Document renders the write concern as a command sub-document.
func (wc *WriteConcern) Document() bson.D {
	doc := bson.D{}
	if wc.W != nil {
		doc = append(doc, bson.E{Key: "w", Value: wc.W})
	}
	if wc.Journal != nil {
		doc = append(doc, bson.E{Key: "j", Value: *wc.Journal})
	}
	if wc.WTimeout != 0 {
		doc = append(doc, bson.E{Key: "wtimeout", Value: int64(wc.WTimeout / time.Millisecond)})
	}
	return doc
}
