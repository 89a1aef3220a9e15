/*
Copyright © 2026 The quill authors
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/quillbook/quill/internal/book"
)

var createLocal bool

var createCmd = &cobra.Command{
	Use:     "create <name>",
	Aliases: []string{"c"},
	Short:   "Create a new notebook.",
	Long: `Creates <name>.book in the quill data directory, or in the current
directory with --local, and applies the schema.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := dataDir()
		if err != nil {
			return err
		}
		if createLocal {
			if dir, err = os.Getwd(); err != nil {
				return err
			}
		}

		nb, err := book.Create(args[0], dir)
		if err != nil {
			return err
		}
		defer nb.Close()

		fmt.Printf("Created notebook %q at %s\n", nb.Name, nb.Path)
		return nil
	},
}

func init() {
	createCmd.Flags().BoolVar(&createLocal, "local", false, "create the notebook in the current directory")
	rootCmd.AddCommand(createCmd)
}
