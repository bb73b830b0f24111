// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metric

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAppendNamespace(t *testing.T) {
	tests := []struct {
		prefix   string
		suffix   string
		expected string
	}{
		{
			prefix:   "sampler",
			suffix:   "cli",
			expected: "sampler_cli",
		},
		{
			prefix:   "",
			suffix:   "cli",
			expected: "cli",
		},
		{
			prefix:   "sampler",
			suffix:   "",
			expected: "sampler",
		},
		{
			prefix:   "",
			suffix:   "",
			expected: "",
		},
	}
	for _, test := range tests {
		t.Run(test.expected, func(t *testing.T) {
			require.Equal(t, test.expected, AppendNamespace(test.prefix, test.suffix))
		})
	}
}
