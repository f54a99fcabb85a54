// Copyright (C) OpalDB, Inc. 2024-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

// Package session provides opaque session handles. The normalization layer
// forwards sessions unchanged; lifecycle and server association belong to the
// executor.
package session

import (
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Session identifies a logical session. The ID is assigned at construction
// and never changes.
type Session struct {
	ID uuid.UUID
}

// New creates a Session with a fresh identifier.
func New() *Session {
	return &Session{ID: uuid.New()}
}

// Document renders the session identifier as an lsid command sub-document.
func (s *Session) Document() bson.D {
	return bson.D{{Key: "id", Value: primitive.Binary{Subtype: 0x04, Data: s.ID[:]}}}
}
