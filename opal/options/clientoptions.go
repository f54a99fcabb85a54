// Copyright (C) OpalDB, Inc. 2024-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package options

import (
	"github.com/sirupsen/logrus"

	"github.com/opaldb/opal-go-driver/opal/readconcern"
	"github.com/opaldb/opal-go-driver/opal/readpref"
	"github.com/opaldb/opal-go-driver/opal/writeconcern"
)

// ClientOptions represent all possible options for configuring a Client. The
// values configured here are the lowest-precedence defaults in the option
// resolution chain.
type ClientOptions struct {
	ReadConcern    *readconcern.ReadConcern
	ReadPreference *readpref.ReadPref
	WriteConcern   *writeconcern.WriteConcern
	BSON           *BSONOptions
	PKFactory      PKFactory
	Logger         logrus.FieldLogger
}

// Client creates a new ClientOptions instance.
func Client() *ClientOptions {
	return &ClientOptions{}
}

// SetReadConcern sets the default read concern for the client.
func (c *ClientOptions) SetReadConcern(rc *readconcern.ReadConcern) *ClientOptions {
	c.ReadConcern = rc
	return c
}

// SetReadPreference sets the default read preference for the client.
func (c *ClientOptions) SetReadPreference(rp *readpref.ReadPref) *ClientOptions {
	c.ReadPreference = rp
	return c
}

// SetWriteConcern sets the default write concern for the client.
func (c *ClientOptions) SetWriteConcern(wc *writeconcern.WriteConcern) *ClientOptions {
	c.WriteConcern = wc
	return c
}

// SetBSON sets the default serialization flags for the client.
func (c *ClientOptions) SetBSON(b *BSONOptions) *ClientOptions {
	c.BSON = b
	return c
}

// SetPKFactory sets the primary-key factory used when inserted documents lack
// an _id field.
func (c *ClientOptions) SetPKFactory(factory PKFactory) *ClientOptions {
	c.PKFactory = factory
	return c
}

// SetLogger sets the logger used for compatibility warnings.
func (c *ClientOptions) SetLogger(logger logrus.FieldLogger) *ClientOptions {
	c.Logger = logger
	return c
}

// MergeClientOptions combines the given ClientOptions instances into a single
// ClientOptions in a last-one-wins fashion.
func MergeClientOptions(opts ...*ClientOptions) *ClientOptions {
	merged := Client()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if opt.ReadConcern != nil {
			merged.ReadConcern = opt.ReadConcern
		}
		if opt.ReadPreference != nil {
			merged.ReadPreference = opt.ReadPreference
		}
		if opt.WriteConcern != nil {
			merged.WriteConcern = opt.WriteConcern
		}
		if opt.BSON != nil {
			merged.BSON = MergeBSONOptions(merged.BSON, opt.BSON)
		}
		if opt.PKFactory != nil {
			merged.PKFactory = opt.PKFactory
		}
		if opt.Logger != nil {
			merged.Logger = opt.Logger
		}
	}
	return merged
}

// DatabaseOptions represent all possible options for configuring a Database.
type DatabaseOptions struct {
	ReadConcern    *readconcern.ReadConcern
	ReadPreference *readpref.ReadPref
	WriteConcern   *writeconcern.WriteConcern
	BSON           *BSONOptions
}

// Database creates a new DatabaseOptions instance.
func Database() *DatabaseOptions {
	return &DatabaseOptions{}
}

// SetReadConcern sets the read concern for the database.
func (d *DatabaseOptions) SetReadConcern(rc *readconcern.ReadConcern) *DatabaseOptions {
	d.ReadConcern = rc
	return d
}

// SetReadPreference sets the read preference for the database.
func (d *DatabaseOptions) SetReadPreference(rp *readpref.ReadPref) *DatabaseOptions {
	d.ReadPreference = rp
	return d
}

// SetWriteConcern sets the write concern for the database.
func (d *DatabaseOptions) SetWriteConcern(wc *writeconcern.WriteConcern) *DatabaseOptions {
	d.WriteConcern = wc
	return d
}

// SetBSON sets the serialization flags for the database.
func (d *DatabaseOptions) SetBSON(b *BSONOptions) *DatabaseOptions {
	d.BSON = b
	return d
}

// MergeDatabaseOptions combines the given DatabaseOptions instances into a
// single DatabaseOptions in a last-one-wins fashion.
func MergeDatabaseOptions(opts ...*DatabaseOptions) *DatabaseOptions {
	merged := Database()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if opt.ReadConcern != nil {
			merged.ReadConcern = opt.ReadConcern
		}
		if opt.ReadPreference != nil {
			merged.ReadPreference = opt.ReadPreference
		}
		if opt.WriteConcern != nil {
			merged.WriteConcern = opt.WriteConcern
		}
		if opt.BSON != nil {
			merged.BSON = MergeBSONOptions(merged.BSON, opt.BSON)
		}
	}
	return merged
}

// CollectionOptions represent all possible options for configuring a
// Collection. The values configured here override the owning database's
// defaults and are themselves overridden by call-site options.
type CollectionOptions struct {
	ReadConcern    *readconcern.ReadConcern
	ReadPreference *readpref.ReadPref
	WriteConcern   *writeconcern.WriteConcern
	BSON           *BSONOptions
	PKFactory      PKFactory
	Hint           interface{}
}

// Collection creates a new CollectionOptions instance.
func Collection() *CollectionOptions {
	return &CollectionOptions{}
}

// SetReadConcern sets the read concern for the collection.
func (c *CollectionOptions) SetReadConcern(rc *readconcern.ReadConcern) *CollectionOptions {
	c.ReadConcern = rc
	return c
}

// SetReadPreference sets the read preference for the collection.
func (c *CollectionOptions) SetReadPreference(rp *readpref.ReadPref) *CollectionOptions {
	c.ReadPreference = rp
	return c
}

// SetWriteConcern sets the write concern for the collection.
func (c *CollectionOptions) SetWriteConcern(wc *writeconcern.WriteConcern) *CollectionOptions {
	c.WriteConcern = wc
	return c
}

// SetBSON sets the serialization flags for the collection.
func (c *CollectionOptions) SetBSON(b *BSONOptions) *CollectionOptions {
	c.BSON = b
	return c
}

// SetPKFactory sets the primary-key factory for the collection.
func (c *CollectionOptions) SetPKFactory(factory PKFactory) *CollectionOptions {
	c.PKFactory = factory
	return c
}

// SetHint sets a default index hint applied to queries against the collection.
func (c *CollectionOptions) SetHint(hint interface{}) *CollectionOptions {
	c.Hint = hint
	return c
}

// MergeCollectionOptions combines the given CollectionOptions instances into
// a single CollectionOptions in a last-one-wins fashion.
func MergeCollectionOptions(opts ...*CollectionOptions) *CollectionOptions {
	merged := Collection()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if opt.ReadConcern != nil {
			merged.ReadConcern = opt.ReadConcern
		}
		if opt.ReadPreference != nil {
			merged.ReadPreference = opt.ReadPreference
		}
		if opt.WriteConcern != nil {
			merged.WriteConcern = opt.WriteConcern
		}
		if opt.BSON != nil {
			merged.BSON = MergeBSONOptions(merged.BSON, opt.BSON)
		}
		if opt.PKFactory != nil {
			merged.PKFactory = opt.PKFactory
		}
		if opt.Hint != nil {
			merged.Hint = opt.Hint
		}
	}
	return merged
}
