// Copyright (C) OpalDB, Inc. 2024-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package opal

import (
	"github.com/opaldb/opal-go-driver/opal/options"
	"github.com/opaldb/opal-go-driver/opal/readconcern"
	"github.com/opaldb/opal-go-driver/opal/readpref"
	"github.com/opaldb/opal-go-driver/opal/writeconcern"
)

// Database is a handle to an OpalDB database. Its configuration is the middle
// layer of the option resolution chain: collection overrides win over it, and
// it wins over the client defaults.
type Database struct {
	client         *Client
	name           string
	readConcern    *readconcern.ReadConcern
	writeConcern   *writeconcern.WriteConcern
	readPreference *readpref.ReadPref
	bsonOpts       *options.BSONOptions
}

func newDatabase(client *Client, name string, opts ...*options.DatabaseOptions) *Database {
	dbOpt := options.MergeDatabaseOptions(opts...)

	db := &Database{
		client:         client,
		name:           name,
		readConcern:    client.readConcern,
		writeConcern:   client.writeConcern,
		readPreference: client.readPreference,
		bsonOpts:       client.bsonOpts,
	}
	if dbOpt.ReadConcern != nil {
		db.readConcern = dbOpt.ReadConcern
	}
	if dbOpt.WriteConcern != nil {
		db.writeConcern = dbOpt.WriteConcern
	}
	if dbOpt.ReadPreference != nil {
		db.readPreference = dbOpt.ReadPreference
	}
	if dbOpt.BSON != nil {
		db.bsonOpts = options.MergeBSONOptions(client.bsonOpts, dbOpt.BSON)
	}
	return db
}

// Client returns the Client the database was created from.
func (db *Database) Client() *Client {
	return db.client
}

// Name returns the name of the database.
func (db *Database) Name() string {
	return db.name
}

// Collection returns a handle for a collection with the given name.
func (db *Database) Collection(name string, opts ...*options.CollectionOptions) *Collection {
	return newCollection(db, name, opts...)
}
