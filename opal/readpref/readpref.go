// Copyright (C) OpalDB, Inc. 2024-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

// Package readpref defines read preferences for OpalDB queries.
package readpref

import "fmt"

// Mode indicates the user's preference on reads.
type Mode uint8

const (
	// PrimaryMode indicates that only a primary is considered for reading.
	PrimaryMode Mode = iota + 1
	// PrimaryPreferredMode indicates that if a primary is available, use it;
	// otherwise, eligible secondaries will be considered.
	PrimaryPreferredMode
	// SecondaryMode indicates that only secondaries should be considered.
	SecondaryMode
	// SecondaryPreferredMode indicates that only secondaries should be considered
	// when one is available. If none are available, then a primary will be considered.
	SecondaryPreferredMode
	// NearestMode indicates that all primaries and secondaries will be considered.
	NearestMode
)

// ModeFromString returns a mode corresponding to mode.
func ModeFromString(mode string) (Mode, error) {
	switch mode {
	case "primary":
		return PrimaryMode, nil
	case "primaryPreferred":
		return PrimaryPreferredMode, nil
	case "secondary":
		return SecondaryMode, nil
	case "secondaryPreferred":
		return SecondaryPreferredMode, nil
	case "nearest":
		return NearestMode, nil
	}
	return Mode(0), fmt.Errorf("unknown read preference %v", mode)
}

// String returns the standard name of the mode.
func (mode Mode) String() string {
	switch mode {
	case PrimaryMode:
		return "primary"
	case PrimaryPreferredMode:
		return "primaryPreferred"
	case SecondaryMode:
		return "secondary"
	case SecondaryPreferredMode:
		return "secondaryPreferred"
	case NearestMode:
		return "nearest"
	default:
		return "unknown"
	}
}

// ReadPref determines which servers are considered suitable for read operations.
type ReadPref struct {
	Mode Mode
}

// New creates a new ReadPref with the given mode.
func New(mode Mode) *ReadPref {
	return &ReadPref{Mode: mode}
}

// Primary constructs a read preference with a PrimaryMode.
func Primary() *ReadPref {
	return &ReadPref{Mode: PrimaryMode}
}

// PrimaryPreferred constructs a read preference with a PrimaryPreferredMode.
func PrimaryPreferred() *ReadPref {
	return &ReadPref{Mode: PrimaryPreferredMode}
}

// Secondary constructs a read preference with a SecondaryMode.
func Secondary() *ReadPref {
	return &ReadPref{Mode: SecondaryMode}
}

// SecondaryPreferred constructs a read preference with a SecondaryPreferredMode.
func SecondaryPreferred() *ReadPref {
	return &ReadPref{Mode: SecondaryPreferredMode}
}

// Nearest constructs a read preference with a NearestMode.
func Nearest() *ReadPref {
	return &ReadPref{Mode: NearestMode}
}

// SecondaryOK reports whether the read preference permits a read to be served
// by a non-primary member. A nil ReadPref is treated as primary.
func (r *ReadPref) SecondaryOK() bool {
	return r != nil && r.Mode != PrimaryMode
}

// String returns a human-readable description of the read preference.
func (r *ReadPref) String() string {
	if r == nil {
		return PrimaryMode.String()
	}
	return r.Mode.String()
}
