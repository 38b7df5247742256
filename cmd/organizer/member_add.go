// Add-member command registers a community member.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/BlackRoad-OS/blackroad-community-organizer/pkg/types"
)

var addMemberRole string

var addMemberCmd = &cobra.Command{
	Use:   "add-member NAME EMAIL",
	Short: "Register a community member",
	Long: `Add-member registers a person in the community directory. The email
must be unique across all members.

Example:
  organizer add-member "Ada Lovelace" ada@example.com
  organizer add-member "Grace Hopper" grace@example.com --role organizer`,
	Args: cobra.ExactArgs(2),
	RunE: runAddMember,
}

func init() {
	addMemberCmd.Flags().StringVar(&addMemberRole, "role", types.DefaultRole, "member role")
}

func runAddMember(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	m, err := s.AddMember(args[0], args[1], addMemberRole)
	if err != nil {
		return err
	}

	if flagJSON {
		return printJSON(m)
	}

	r := newRenderer(os.Stdout)
	fmt.Printf("%s Member %s registered (id=%d)\n", r.check(), r.paint(ansiBold, m.Name), m.ID)
	return nil
}
