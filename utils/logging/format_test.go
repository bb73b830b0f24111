// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToFormat(t *testing.T) {
	require := require.New(t)

	f, err := ToFormat("plain", os.Stdout.Fd())
	require.NoError(err)
	require.Equal(Plain, f)

	f, err = ToFormat("COLORS", os.Stdout.Fd())
	require.NoError(err)
	require.Equal(Colors, f)

	f, err = ToFormat("json", os.Stdout.Fd())
	require.NoError(err)
	require.Equal(JSON, f)

	// A pipe is never a terminal.
	r, w, err := os.Pipe()
	require.NoError(err)
	defer r.Close()
	defer w.Close()
	f, err = ToFormat("auto", w.Fd())
	require.NoError(err)
	require.Equal(Plain, f)

	_, err = ToFormat("rainbow", os.Stdout.Fd())
	require.ErrorContains(err, "unknown format mode")
}

func TestFormatMarshalJSON(t *testing.T) {
	require := require.New(t)

	b, err := json.Marshal(JSON)
	require.NoError(err)
	require.Equal(`"JSON"`, string(b))

	_, err = Format(42).MarshalJSON()
	require.ErrorIs(err, errUnknownFormat)
}
