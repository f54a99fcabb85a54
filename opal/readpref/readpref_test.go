// Copyright (C) OpalDB, Inc. 2024-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package readpref

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModeFromString(t *testing.T) {
	names := []string{"primary", "primaryPreferred", "secondary", "secondaryPreferred", "nearest"}
	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			mode, err := ModeFromString(name)
			require.NoError(t, err)
			assert.Equal(t, name, mode.String())
		})
	}

	t.Run("unknown mode", func(t *testing.T) {
		_, err := ModeFromString("sometimes")
		assert.Error(t, err)
	})
}

func TestSecondaryOK(t *testing.T) {
	testCases := []struct {
		rp       *ReadPref
		expected bool
	}{
		{nil, false},
		{Primary(), false},
		{PrimaryPreferred(), true},
		{Secondary(), true},
		{SecondaryPreferred(), true},
		{Nearest(), true},
	}
	for _, tc := range testCases {
		t.Run(tc.rp.String(), func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.rp.SecondaryOK())
		})
	}
}
