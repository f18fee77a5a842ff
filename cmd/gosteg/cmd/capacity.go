package cmd

import (
	"github.com/spf13/cobra"

	"github.com/molinab297/gosteg/pkg/imaging"
	"github.com/molinab297/gosteg/pkg/stego"
)

// capacityCmd represents the capacity command
var capacityCmd = &cobra.Command{
	Use:   "capacity <image>",
	Short: "Report how much text an image can carry",
	Long: `Report the usable payload capacity of an image.

Capacity is bounded by the pixels left after the reserved header region and
by what the header's pixel-count field can address.

Example:
  gosteg capacity cat.png`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		buf, err := imaging.Load(args[0])
		if err != nil {
			return err
		}

		codec := stego.NewCodec(stego.DefaultConfig())
		bits := codec.Capacity(buf.Width, buf.Height)

		cmd.Printf("%s: %dx%d pixels, capacity %d bits (%d bytes)\n",
			args[0], buf.Width, buf.Height, bits, bits/8)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(capacityCmd)
}
