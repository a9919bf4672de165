/*
Copyright © 2025 Ken'ichiro Oyama <k1lowxb@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/k1LoW/errors"
	"github.com/k1LoW/minipng"
	"github.com/k1LoW/minipng/config"
	"github.com/k1LoW/minipng/handler/progress"
	"github.com/k1LoW/minipng/version"
	"github.com/mattn/go-colorable"
	"github.com/pkg/browser"
	slogmulti "github.com/samber/slog-multi"
	"github.com/spf13/cobra"
)

var (
	profile   string
	out       string
	noHexdump bool
	openFile  bool
	debug     bool
)

var rootCmd = &cobra.Command{
	Use:          "minipng",
	Short:        "minipng writes the smallest valid PNG",
	Long:         `minipng assembles a single pixel PNG byte by byte, prints a hexdump of it and writes it to a file.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	Version:      fmt.Sprintf("%s (rev:%s)", version.Version, version.Revision),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(profile)
		if err != nil {
			return err
		}
		opts := []minipng.Option{
			minipng.WithLogger(newLogger(cmd.OutOrStdout())),
			minipng.WithStdout(cmd.OutOrStdout()),
			minipng.WithHexdump(cfg.HexdumpEnabled() && !noHexdump),
		}
		switch {
		case cmd.Flags().Changed("out"):
			opts = append(opts, minipng.WithOutput(out))
		case cfg.Output != "":
			opts = append(opts, minipng.WithOutput(cfg.Output))
		}
		g, err := minipng.New(opts...)
		if err != nil {
			return err
		}
		if _, err := g.Run(cmd.Context()); err != nil {
			return err
		}
		if openFile || cfg.OpenEnabled() {
			return browser.OpenFile(g.Output())
		}
		return nil
	},
}

type errorData struct {
	StackTraces any       `json:"stack_traces"`
	CreatedAt   time.Time `json:"created_at"`
	Version     string    `json:"version"`
	Revision    string    `json:"revision"`
}

func Execute() {
	rootCmd.SetOut(colorable.NewColorableStdout())
	if err := rootCmd.Execute(); err != nil {
		// Write stack trace log to state directory
		d := &errorData{
			StackTraces: errors.StackTraces(err),
			CreatedAt:   time.Now(),
			Version:     version.Version,
			Revision:    version.Revision,
		}
		b, err := json.Marshal(d)
		if err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "%v\n", err)
		} else {
			dumpPath := filepath.Join(config.StateHomePath(), "error.json")
			if err := os.MkdirAll(filepath.Dir(dumpPath), 0o700); err != nil {
				_, _ = fmt.Fprintf(os.Stderr, "failed to create %s: %v\n", filepath.Dir(dumpPath), err)
			} else if err := os.WriteFile(dumpPath, b, 0o600); err != nil {
				_, _ = fmt.Fprintf(os.Stderr, "failed to write error.json to %s: %v\n", dumpPath, err)
			}
		}
		os.Exit(1)
	}
}

// newLogger renders progress on w. With --debug, records are also written to stderr as JSON.
func newLogger(w io.Writer) *slog.Logger {
	h := progress.New(slog.NewTextHandler(io.Discard, nil), w)
	if !debug {
		return slog.New(h)
	}
	return slog.New(slogmulti.Fanout(
		h,
		slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}),
	))
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&profile, "profile", "", "", "profile name")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "", false, "write debug logs to stderr as JSON")
	rootCmd.Flags().StringVarP(&out, "out", "o", minipng.DefaultFilename, "output file")
	rootCmd.Flags().BoolVarP(&noHexdump, "no-hexdump", "", false, "do not print a hexdump")
	rootCmd.Flags().BoolVarP(&openFile, "open", "", false, "open the generated file")
}
