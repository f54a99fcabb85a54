// Copyright (C) OpalDB, Inc. 2024-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

// Package opal is the public API of the OpalDB Go driver. It normalizes the
// flexible, backward-compatible CRUD/aggregation surface into canonical
// operation descriptors consumed by an executor.
package opal

import (
	"sync"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/opaldb/opal-go-driver/opal/driver"
	"github.com/opaldb/opal-go-driver/opal/options"
	"github.com/opaldb/opal-go-driver/opal/readconcern"
	"github.com/opaldb/opal-go-driver/opal/readpref"
	"github.com/opaldb/opal-go-driver/opal/writeconcern"
)

// objectIDFactory is the default primary-key factory.
type objectIDFactory struct{}

func (objectIDFactory) NewPrimaryKey() interface{} {
	return primitive.NewObjectID()
}

// Client is a handle representing a pool of connections to an OpalDB
// deployment, owned by the injected executor. Client-level configuration is
// the lowest-precedence layer of the option resolution chain.
type Client struct {
	executor       driver.Executor
	readConcern    *readconcern.ReadConcern
	writeConcern   *writeconcern.WriteConcern
	readPreference *readpref.ReadPref
	bsonOpts       *options.BSONOptions
	pkFactory      options.PKFactory
	logger         logrus.FieldLogger

	deprecated sync.Map // entry point name -> struct{}
}

// NewClient creates a new client wired to the given executor.
func NewClient(executor driver.Executor, opts ...*options.ClientOptions) (*Client, error) {
	if executor == nil {
		return nil, ErrNilExecutor
	}

	clientOpt := options.MergeClientOptions(opts...)

	client := &Client{
		executor:       executor,
		readConcern:    clientOpt.ReadConcern,
		writeConcern:   clientOpt.WriteConcern,
		readPreference: readpref.Primary(),
		bsonOpts:       clientOpt.BSON,
		pkFactory:      objectIDFactory{},
		logger:         logrus.StandardLogger(),
	}
	if clientOpt.ReadPreference != nil {
		client.readPreference = clientOpt.ReadPreference
	}
	if clientOpt.PKFactory != nil {
		client.pkFactory = clientOpt.PKFactory
	}
	if clientOpt.Logger != nil {
		client.logger = clientOpt.Logger
	}
	return client, nil
}

// Database returns a handle for a database with the given name.
func (c *Client) Database(name string, opts ...*options.DatabaseOptions) *Database {
	return newDatabase(c, name, opts...)
}

// warnDeprecated logs a compatibility warning the first time each deprecated
// entry point is used. Execution proceeds.
func (c *Client) warnDeprecated(method, replacement string) {
	if _, loaded := c.deprecated.LoadOrStore(method, struct{}{}); loaded {
		return
	}
	c.logger.WithFields(logrus.Fields{
		"method":      method,
		"replacement": replacement,
	}).Warn("deprecated method called")
}
