// Copyright (C) OpalDB, Inc. 2024-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package opal

import (
	"github.com/opaldb/opal-go-driver/opal/driver"
	"github.com/opaldb/opal-go-driver/opal/options"
)

// WriteModel is one entry of a BulkWrite batch.
type WriteModel interface {
	convertModel(coll *Collection) (driver.WriteModel, error)
}

// InsertOneModel is the write model for insert operations.
type InsertOneModel struct {
	Document interface{}
}

// NewInsertOneModel creates a new InsertOneModel.
func NewInsertOneModel() *InsertOneModel {
	return &InsertOneModel{}
}

// SetDocument sets the document to insert.
func (iom *InsertOneModel) SetDocument(doc interface{}) *InsertOneModel {
	iom.Document = doc
	return iom
}

func (iom *InsertOneModel) convertModel(coll *Collection) (driver.WriteModel, error) {
	doc, _, err := coll.ensureID(iom.Document)
	if err != nil {
		return driver.WriteModel{}, err
	}
	return driver.WriteModel{Kind: driver.InsertOne, Document: doc}, nil
}

// UpdateOneModel is the write model for single-document update operations.
type UpdateOneModel struct {
	Filter    interface{}
	Update    interface{}
	Upsert    *bool
	Collation *options.Collation
}

// NewUpdateOneModel creates a new UpdateOneModel.
func NewUpdateOneModel() *UpdateOneModel {
	return &UpdateOneModel{}
}

// SetFilter sets the filter selecting the document to update.
func (uom *UpdateOneModel) SetFilter(filter interface{}) *UpdateOneModel {
	uom.Filter = filter
	return uom
}

// SetUpdate sets the update document. It must contain operator expressions.
func (uom *UpdateOneModel) SetUpdate(update interface{}) *UpdateOneModel {
	uom.Update = update
	return uom
}

// SetUpsert specifies whether a new document is inserted when no document
// matches the filter.
func (uom *UpdateOneModel) SetUpsert(upsert bool) *UpdateOneModel {
	uom.Upsert = &upsert
	return uom
}

// SetCollation sets the collation for the update.
func (uom *UpdateOneModel) SetCollation(collation *options.Collation) *UpdateOneModel {
	uom.Collation = collation
	return uom
}

func (uom *UpdateOneModel) convertModel(coll *Collection) (driver.WriteModel, error) {
	return convertUpdateModel(driver.UpdateOne, "updateOne", uom.Filter, uom.Update, uom.Upsert, uom.Collation)
}

// UpdateManyModel is the write model for multi-document update operations.
type UpdateManyModel struct {
	Filter    interface{}
	Update    interface{}
	Upsert    *bool
	Collation *options.Collation
}

// NewUpdateManyModel creates a new UpdateManyModel.
func NewUpdateManyModel() *UpdateManyModel {
	return &UpdateManyModel{}
}

// SetFilter sets the filter selecting the documents to update.
func (umm *UpdateManyModel) SetFilter(filter interface{}) *UpdateManyModel {
	umm.Filter = filter
	return umm
}

// SetUpdate sets the update document. It must contain operator expressions.
func (umm *UpdateManyModel) SetUpdate(update interface{}) *UpdateManyModel {
	umm.Update = update
	return umm
}

// SetUpsert specifies whether a new document is inserted when no document
// matches the filter.
func (umm *UpdateManyModel) SetUpsert(upsert bool) *UpdateManyModel {
	umm.Upsert = &upsert
	return umm
}

// SetCollation sets the collation for the update.
func (umm *UpdateManyModel) SetCollation(collation *options.Collation) *UpdateManyModel {
	umm.Collation = collation
	return umm
}

func (umm *UpdateManyModel) convertModel(coll *Collection) (driver.WriteModel, error) {
	return convertUpdateModel(driver.UpdateMany, "updateMany", umm.Filter, umm.Update, umm.Upsert, umm.Collation)
}

// ReplaceOneModel is the write model for replace operations.
type ReplaceOneModel struct {
	Filter      interface{}
	Replacement interface{}
	Upsert      *bool
	Collation   *options.Collation
}

// NewReplaceOneModel creates a new ReplaceOneModel.
func NewReplaceOneModel() *ReplaceOneModel {
	return &ReplaceOneModel{}
}

// SetFilter sets the filter selecting the document to replace.
func (rom *ReplaceOneModel) SetFilter(filter interface{}) *ReplaceOneModel {
	rom.Filter = filter
	return rom
}

// SetReplacement sets the replacement document. It must not contain operator
// expressions.
func (rom *ReplaceOneModel) SetReplacement(replacement interface{}) *ReplaceOneModel {
	rom.Replacement = replacement
	return rom
}

// SetUpsert specifies whether a new document is inserted when no document
// matches the filter.
func (rom *ReplaceOneModel) SetUpsert(upsert bool) *ReplaceOneModel {
	rom.Upsert = &upsert
	return rom
}

// SetCollation sets the collation for the replacement.
func (rom *ReplaceOneModel) SetCollation(collation *options.Collation) *ReplaceOneModel {
	rom.Collation = collation
	return rom
}

func (rom *ReplaceOneModel) convertModel(coll *Collection) (driver.WriteModel, error) {
	return convertUpdateModel(driver.ReplaceOne, "replaceOne", rom.Filter, rom.Replacement, rom.Upsert, rom.Collation)
}

// DeleteOneModel is the write model for single-document delete operations.
type DeleteOneModel struct {
	Filter    interface{}
	Collation *options.Collation
}

// NewDeleteOneModel creates a new DeleteOneModel.
func NewDeleteOneModel() *DeleteOneModel {
	return &DeleteOneModel{}
}

// SetFilter sets the filter selecting the document to delete.
func (dom *DeleteOneModel) SetFilter(filter interface{}) *DeleteOneModel {
	dom.Filter = filter
	return dom
}

// SetCollation sets the collation for the delete.
func (dom *DeleteOneModel) SetCollation(collation *options.Collation) *DeleteOneModel {
	dom.Collation = collation
	return dom
}

func (dom *DeleteOneModel) convertModel(coll *Collection) (driver.WriteModel, error) {
	return convertDeleteModel(driver.DeleteOne, dom.Filter, dom.Collation)
}

// DeleteManyModel is the write model for multi-document delete operations.
type DeleteManyModel struct {
	Filter    interface{}
	Collation *options.Collation
}

// NewDeleteManyModel creates a new DeleteManyModel.
func NewDeleteManyModel() *DeleteManyModel {
	return &DeleteManyModel{}
}

// SetFilter sets the filter selecting the documents to delete.
func (dmm *DeleteManyModel) SetFilter(filter interface{}) *DeleteManyModel {
	dmm.Filter = filter
	return dmm
}

// SetCollation sets the collation for the delete.
func (dmm *DeleteManyModel) SetCollation(collation *options.Collation) *DeleteManyModel {
	dmm.Collation = collation
	return dmm
}

func (dmm *DeleteManyModel) convertModel(coll *Collection) (driver.WriteModel, error) {
	return convertDeleteModel(driver.DeleteMany, dmm.Filter, dmm.Collation)
}

func convertUpdateModel(kind driver.Kind, method string, filter, update interface{}, upsert *bool,
	collation *options.Collation) (driver.WriteModel, error) {

	f, err := transformDocument(filter)
	if err != nil {
		return driver.WriteModel{}, err
	}
	u, err := transformDocument(update)
	if err != nil {
		return driver.WriteModel{}, err
	}
	if kind == driver.ReplaceOne {
		err = ensureNoDollarKey(u, method)
	} else {
		err = ensureDollarKey(u, method)
	}
	if err != nil {
		return driver.WriteModel{}, err
	}

	m := driver.WriteModel{Kind: kind, Filter: f, Update: u, Upsert: upsert}
	if collation != nil {
		m.Collation = collation.ToDocument()
	}
	return m, nil
}

func convertDeleteModel(kind driver.Kind, filter interface{}, collation *options.Collation) (driver.WriteModel, error) {
	f, err := transformDocument(filter)
	if err != nil {
		return driver.WriteModel{}, err
	}
	m := driver.WriteModel{Kind: kind, Filter: f}
	if collation != nil {
		m.Collation = collation.ToDocument()
	}
	return m, nil
}
