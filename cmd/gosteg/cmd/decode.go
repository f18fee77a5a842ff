package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/molinab297/gosteg/pkg/imaging"
	"github.com/molinab297/gosteg/pkg/journal"
	"github.com/molinab297/gosteg/pkg/stego"
)

// decodeCmd represents the decode command
var decodeCmd = &cobra.Command{
	Use:   "decode <image>",
	Short: "Recover text hidden in an image",
	Long: `Recover the text embedded in an image by the encode command.

The recovered text is printed to stdout.

Example:
  gosteg decode cat-steg.png`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := runDecode(args[0], journalFromContext(cmd))
		if err != nil {
			return err
		}
		cmd.Println(text)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(decodeCmd)
}

func runDecode(input string, jnl *journal.Journal) (string, error) {
	buf, err := imaging.Load(input)
	if err != nil {
		return "", err
	}

	codec := stego.NewCodec(stego.DefaultConfig())
	text, err := codec.Decode(buf)
	if err != nil {
		return "", err
	}

	if jnl != nil {
		if _, err := jnl.Record("decode", input, len(text)*8); err != nil {
			fmt.Fprintf(os.Stderr, "warning: journal write failed: %v\n", err)
		}
	}
	return text, nil
}
