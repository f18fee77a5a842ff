package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/molinab297/gosteg/pkg/imaging"
	"github.com/molinab297/gosteg/pkg/journal"
	"github.com/molinab297/gosteg/pkg/stego"
)

// encodeCmd represents the encode command
var encodeCmd = &cobra.Command{
	Use:   "encode <image>",
	Short: "Embed text in an image",
	Long: `Embed text in the least significant bits of an image's RGB channels.

The output must use a lossless format (.png or .bmp). By default the result
is written next to the input as <name>-steg.png.

Examples:
  gosteg encode cat.jpg --text "meet at dawn"
  gosteg encode cat.png -t - -o secret.png < message.txt`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, _ := cmd.Flags().GetString("text")
		output, _ := cmd.Flags().GetString("output")

		if text == "-" {
			data, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("read payload from stdin: %w", err)
			}
			text = string(data)
		}
		if output == "" {
			output = defaultOutputPath(args[0])
		}

		if err := runEncode(args[0], output, text, journalFromContext(cmd)); err != nil {
			return err
		}

		cmd.Printf("Embedded %d bytes into %s\n", len(text), output)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(encodeCmd)
	encodeCmd.Flags().StringP("text", "t", "", "Text to embed ('-' reads from stdin)")
	encodeCmd.Flags().StringP("output", "o", "", "Output file (.png or .bmp)")
	_ = encodeCmd.MarkFlagRequired("text")
}

// defaultOutputPath derives the output file written next to the input image.
func defaultOutputPath(input string) string {
	base := strings.TrimSuffix(input, filepath.Ext(input))
	return base + "-steg.png"
}

func runEncode(input, output, text string, jnl *journal.Journal) error {
	buf, err := imaging.Load(input)
	if err != nil {
		return err
	}

	codec := stego.NewCodec(stego.DefaultConfig())
	encoded, err := codec.Encode(buf, text)
	if err != nil {
		return err
	}

	if err := imaging.Save(output, encoded); err != nil {
		return err
	}

	if jnl != nil {
		// Journal failures must not fail the encode; the output is written.
		if _, err := jnl.Record("encode", input, len(text)*8); err != nil {
			fmt.Fprintf(os.Stderr, "warning: journal write failed: %v\n", err)
		}
	}
	return nil
}
