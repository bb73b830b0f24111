// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ava-labs/sampling/config"
	"github.com/ava-labs/sampling/utils/constants"
	"github.com/ava-labs/sampling/version"
)

func main() {
	if err := newCommand().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	c := &cobra.Command{
		Use:          constants.AppName,
		Short:        "Draws random elements, optionally weighted",
		SilenceUsage: true,
	}
	config.AddFlags(c.PersistentFlags())

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version details",
		RunE: func(c *cobra.Command, _ []string) error {
			_, err := fmt.Fprint(c.OutOrStdout(), version.String(version.GitCommit))
			return err
		},
	}
	oneCmd := &cobra.Command{
		Use:   "one",
		Short: "Draws a single element and prints its index and value",
		Args:  cobra.NoArgs,
		RunE:  oneFunc,
	}
	manyCmd := &cobra.Command{
		Use:   "many",
		Short: "Draws --count elements and prints one per line",
		Args:  cobra.NoArgs,
		RunE:  manyFunc,
	}
	c.AddCommand(versionCmd, oneCmd, manyCmd)
	return c
}
