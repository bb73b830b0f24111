// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package version

// String returns the current version, followed by [commit] if it is set.
func String(commit string) string {
	s := Current.String()
	if commit != "" {
		s += " [commit=" + commit + "]"
	}
	return s + "\n"
}
