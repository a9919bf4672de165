package cmd

import (
	"github.com/k1LoW/minipng"
	"github.com/pkg/browser"
	"github.com/spf13/cobra"
)

var openCmd = &cobra.Command{
	Use:   "open [PNG_FILE]",
	Short: "open png file",
	Long:  `open png file with the default viewer.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f := minipng.DefaultFilename
		if len(args) > 0 {
			f = args[0]
		}
		b, err := minipng.ReadFile(f)
		if err != nil {
			return err
		}
		if _, err := minipng.ParseChunks(b); err != nil {
			return err
		}
		cmd.Println(f)
		return browser.OpenFile(f)
	},
}

func init() {
	rootCmd.AddCommand(openCmd)
}
