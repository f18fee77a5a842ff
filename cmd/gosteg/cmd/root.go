/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/molinab297/gosteg/pkg/di"
	"github.com/molinab297/gosteg/pkg/journal"
)

var container *di.Container

// SetContainer injects the dependency container into the cmd package
func SetContainer(c *di.Container) {
	container = c
}

type journalCtxKey struct{}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "gosteg",
	Short: "gosteg - LSB image steganography",
	Long: `gosteg hides text payloads in the least significant bits of an
image's RGB channels and recovers them exactly.

Encoded output must be written to a lossless format (PNG or BMP);
re-compressing the result as JPEG destroys the embedded bits.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		enabled, _ := cmd.Flags().GetBool("journal")
		if !enabled {
			return nil
		}
		dir, _ := cmd.Flags().GetString("journal-dir")
		jnl, err := journal.Open(dir)
		if err != nil {
			return fmt.Errorf("failed to open journal: %w", err)
		}
		// Store in command context
		cmd.SetContext(context.WithValue(cmd.Context(), journalCtxKey{}, jnl))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if jnl := journalFromContext(cmd); jnl != nil {
			jnl.Close()
		}
	},
}

// journalFromContext returns the open journal, or nil when journaling is off
func journalFromContext(cmd *cobra.Command) *journal.Journal {
	jnl, _ := cmd.Context().Value(journalCtxKey{}).(*journal.Journal)
	return jnl
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global journal flags
	rootCmd.PersistentFlags().Bool("journal", false, "Record operations in the local journal")
	rootCmd.PersistentFlags().String("journal-dir", "./journal", "Directory for the operation journal")
}
