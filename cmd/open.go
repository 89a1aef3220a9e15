/*
Copyright © 2026 The quill authors
*/
package cmd

import (
	"fmt"
	"net"

	"github.com/spf13/cobra"

	"github.com/quillbook/quill/internal/book"
	"github.com/quillbook/quill/internal/client"
	"github.com/quillbook/quill/internal/core"
	"github.com/quillbook/quill/internal/server"
	"github.com/quillbook/quill/internal/tui"
)

var openReadOnly bool

var openCmd = &cobra.Command{
	Use:     "open <name>",
	Aliases: []string{"o"},
	Short:   "Open a notebook in the terminal UI.",
	Long: `Opens the named notebook, serving it on a loopback port for the
session and attaching the full-screen client to it.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runNotebook(args[0], openReadOnly)
	},
}

func init() {
	openCmd.Flags().BoolVar(&openReadOnly, "read-only", false, "forbid edits this session")
	rootCmd.AddCommand(openCmd)
}

// runNotebook serves the notebook in-process on an ephemeral loopback port
// and drives the UI against it until the user quits.
func runNotebook(name string, readOnly bool) error {
	dir, err := dataDir()
	if err != nil {
		return err
	}
	nb, err := book.Open(name, dir)
	if err != nil {
		return err
	}
	defer nb.Close()

	perms := core.ReadWrite
	if readOnly {
		perms = core.ReadOnly
	}

	srv := server.New(name, nb.Store, perms, logSink)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return fmt.Errorf("binding loopback port: %w", err)
	}
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.Listener(ln)
	}()

	app := &tui.App{
		API:      client.New("http://" + ln.Addr().String()),
		Notebook: name,
		Perms:    perms,
		Editor:   cfg.Editor,
		DataDir:  dir,
	}
	uiErr := tui.Run(app)

	if err := srv.Shutdown(); err != nil && uiErr == nil {
		uiErr = err
	}
	if err := <-serveErr; err != nil && uiErr == nil {
		uiErr = err
	}
	return uiErr
}
