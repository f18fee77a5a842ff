package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/molinab297/gosteg/pkg/journal"
)

// journalCmd represents the journal command
var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "List recorded encode/decode operations",
	Long: `List operations recorded in the local journal, newest first.

Operations are recorded when encode/decode run with the --journal flag.

Example:
  gosteg journal --limit 20`,
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		jnl := journalFromContext(cmd)
		if jnl == nil {
			dir, _ := cmd.Flags().GetString("journal-dir")
			var err error
			jnl, err = journal.Open(dir)
			if err != nil {
				return fmt.Errorf("failed to open journal: %w", err)
			}
			defer jnl.Close()
		}

		entries, err := jnl.List(limit)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			cmd.Println("No journal entries.")
			return nil
		}

		for _, e := range entries {
			cmd.Printf("%s  %-6s  %5d bits  %s  %s\n",
				e.CreatedAt.Format(time.RFC3339), e.Op, e.Bits, e.Image, e.ID)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(journalCmd)
	journalCmd.Flags().Int("limit", 50, "Maximum entries to list (0 for all)")
}
