package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/k1LoW/minipng"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [PNG_FILE]",
	Short: "inspect png file",
	Long: `inspect png file.

Verifies the signature and the CRC of every chunk, then prints the header, the chunks and an average hash of the image.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f := minipng.DefaultFilename
		if len(args) > 0 {
			f = args[0]
		}
		b, err := minipng.ReadFile(f)
		if err != nil {
			return err
		}
		i, err := minipng.Inspect(b)
		if err != nil {
			return err
		}
		h := i.Header()
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "%s: %d bytes, crc32 %08X\n", f, i.Len(), i.Checksum())
		fmt.Fprintf(w, "  %dx%d, bit depth %d, color type %d, interlace %d\n", h.Width, h.Height, h.BitDepth, h.ColorType, h.InterlaceMethod)
		for _, c := range i.Chunks() {
			fmt.Fprintf(w, "  %s %s\n", color.CyanString("%s", c.Type[:]), color.GreenString("len=%d crc=%08X", len(c.Data), c.CRC()))
		}
		hash, err := i.AHash()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "  ahash %s\n", hash.ToString())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
