// Copyright (C) OpalDB, Inc. 2024-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

// Package readconcern defines read concerns for OpalDB operations.
package readconcern

import "go.mongodb.org/mongo-driver/bson"

// ReadConcern for replica sets and replica set shards determines which data
// to return from a query.
type ReadConcern struct {
	Level string
}

// New constructs a ReadConcern from the given level.
func New(level string) *ReadConcern {
	return &ReadConcern{Level: level}
}

// Local specifies that the query should return the instance's most recent data.
func Local() *ReadConcern {
	return New("local")
}

// Available specifies that the query should return data from the instance with
// no guarantee that the data has been written to a majority of the replica set
// members (i.e. may be rolled back).
func Available() *ReadConcern {
	return New("available")
}

// Majority specifies that the query should return the instance's most recent
// data acknowledged as having been written to a majority of members in the
// replica set.
func Majority() *ReadConcern {
	return New("majority")
}

// Linearizable specifies that the query should return data that reflects all
// successful writes issued with a write concern of "majority" and acknowledged
// prior to the start of the read operation.
func Linearizable() *ReadConcern {
	return New("linearizable")
}

// Snapshot is only available for operations within multi-document transactions.
func Snapshot() *ReadConcern {
	return New("snapshot")
}

// Document renders the read concern as a command sub-document.
func (rc *ReadConcern) Document() bson.D {
	doc := bson.D{}
	if rc.Level != "" {
		doc = append(doc, bson.E{Key: "level", Value: rc.Level})
	}
	return doc
}
