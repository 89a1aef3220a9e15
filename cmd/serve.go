/*
Copyright © 2026 The quill authors
*/
package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/quillbook/quill/internal/book"
	"github.com/quillbook/quill/internal/core"
	"github.com/quillbook/quill/internal/server"
)

var (
	servePort     int
	serveReadOnly bool
)

var serveCmd = &cobra.Command{
	Use:   "serve <name>",
	Short: "Serve a notebook over HTTP without the terminal UI.",
	Long: `Serves the named notebook's API on the configured port until
interrupted. Useful for a client running in another terminal or on another
machine on a trusted network.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := dataDir()
		if err != nil {
			return err
		}
		nb, err := book.Open(args[0], dir)
		if err != nil {
			return err
		}
		defer nb.Close()

		if servePort == 0 {
			servePort = cfg.Port
		}
		perms := core.ReadWrite
		if serveReadOnly {
			perms = core.ReadOnly
		}
		srv := server.New(nb.Name, nb.Store, perms, logSink)

		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
		go func() {
			<-stop
			srv.Shutdown()
		}()

		fmt.Printf("Serving notebook %q on :%d (%s)\n", nb.Name, servePort, perms)
		return srv.Listen(fmt.Sprintf(":%d", servePort))
	},
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "port to listen on (defaults to the configured port)")
	serveCmd.Flags().BoolVar(&serveReadOnly, "read-only", false, "reject mutating requests")
	rootCmd.AddCommand(serveCmd)
}
