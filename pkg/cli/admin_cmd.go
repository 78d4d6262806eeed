package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newAdminExistsCmd(dbPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "admin-exists",
		Short: "Report whether an admin account is claimed",
		RunE: func(cmd *cobra.Command, _ []string) error {
			writeDB, readDB, provision, _, err := openStores(*dbPath)
			if err != nil {
				return err
			}
			defer writeDB.Close()
			defer readDB.Close()

			fmt.Fprintln(os.Stdout, provision.AdminExists(cmd.Context()))
			return nil
		},
	}
}
