package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pders01/algosearch/internal/config"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "algosearch %s\n", Version)
			fmt.Fprintln(out, "Problem search for LeetCode, CodeForces and CodeChef")
			fmt.Fprintln(out, "github.com/pders01/algosearch")
		},
	}
}

func newGenerateConfigCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "generate-config",
		Short: "Write the default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := output
			if path == "" {
				home, _ := os.UserHomeDir()
				path = filepath.Join(home, ".config", "algosearch", "config.toml")
			}

			if err := config.GenerateDefaultConfig(path); err != nil {
				return fmt.Errorf("failed to generate config: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Generated default configuration at: %s\n", path)
			return nil
		},
	}
	cmd.Flags().StringVar(&output, "output", "", "Destination file (default ~/.config/algosearch/config.toml)")
	return cmd
}
