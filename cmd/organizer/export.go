// Export command prints the full dataset as JSON.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all members, events, and RSVPs as JSON",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	snap, err := s.Export()
	if err != nil {
		return fmt.Errorf("export data: %w", err)
	}

	return printJSON(snap)
}
