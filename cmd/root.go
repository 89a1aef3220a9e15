/*
Copyright © 2026 The quill authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/quillbook/quill/internal/book"
	"github.com/quillbook/quill/internal/config"
	"github.com/quillbook/quill/internal/logging"
	"github.com/quillbook/quill/internal/tui/selector"
)

var (
	cfg     config.Config
	logSink io.Writer = io.Discard
	logDone           = func() {}
)

var rootCmd = &cobra.Command{
	Use:   "quill",
	Short: "A personal notebook of linked markdown notes.",
	Long: `quill keeps named markdown notes in single-file notebooks, with tags
and wiki-style [[cross-references]] between notes. Run without a subcommand
to pick a notebook interactively.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load()
		if err != nil {
			return err
		}
		cfg = loaded

		sink, done, err := logging.Setup()
		if err != nil {
			return err
		}
		logSink, logDone = sink, done
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logDone()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := dataDir()
		if err != nil {
			return err
		}
		names, err := book.List(dir)
		if err != nil {
			return err
		}
		if len(names) == 0 {
			fmt.Println("No notebooks yet. Make one with: quill create <name>")
			return nil
		}
		choice, err := selector.Choose(names)
		if err != nil || choice == "" {
			return err
		}
		return runNotebook(choice, false)
	},
}

// dataDir resolves the notebook directory, preferring the configured
// override.
func dataDir() (string, error) {
	if cfg.DataDir != "" {
		if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
			return "", err
		}
		return cfg.DataDir, nil
	}
	return book.DataDir()
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
