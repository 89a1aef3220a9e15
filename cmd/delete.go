/*
Copyright © 2026 The quill authors
*/
package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/quillbook/quill/internal/book"
)

var deleteYes bool

var deleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a notebook and everything in it.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		if !deleteYes {
			fmt.Printf("Delete notebook %q and all of its notes? (y/N): ", name)
			answer, _ := bufio.NewReader(os.Stdin).ReadString('\n')
			switch strings.ToLower(strings.TrimSpace(answer)) {
			case "y", "yes":
			default:
				fmt.Println("Aborted.")
				return nil
			}
		}

		dir, err := dataDir()
		if err != nil {
			return err
		}
		if err := book.Delete(name, dir); err != nil {
			return err
		}
		fmt.Printf("Deleted notebook %q\n", name)
		return nil
	},
}

func init() {
	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "skip the confirmation prompt")
	rootCmd.AddCommand(deleteCmd)
}
