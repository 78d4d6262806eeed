package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"omnicalc/internal/domain"
)

func newUsersCmd(dbPath *string) *cobra.Command {
	usersCmd := &cobra.Command{
		Use:   "users",
		Short: "Manage accounts",
	}
	usersCmd.AddCommand(newUsersListCmd(dbPath))
	usersCmd.AddCommand(newUsersCreateCmd(dbPath))
	return usersCmd
}

func newUsersListCmd(dbPath *string) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List accounts with their claims",
		RunE: func(cmd *cobra.Command, _ []string) error {
			writeDB, readDB, _, identity, err := openStores(*dbPath)
			if err != nil {
				return err
			}
			defer writeDB.Close()
			defer readDB.Close()

			accounts, err := identity.ListAccounts(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("list accounts: %w", err)
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "UID\tEMAIL\tNAME\tADMIN\tDISABLED\tCREATED")
			for _, a := range accounts {
				fmt.Fprintf(w, "%s\t%s\t%s\t%t\t%t\t%s\n",
					a.ID, a.Email, a.DisplayName, a.IsAdmin(), a.Disabled,
					a.CreatedAt.Format("2006-01-02"))
			}
			return w.Flush()
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 1000, "maximum number of accounts to list")
	return cmd
}

func newUsersCreateCmd(dbPath *string) *cobra.Command {
	var (
		email    string
		password string
		fullName string
		role     string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Provision a new account",
		Long:  "Provision a new account. Creating an admin fails when one already exists.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			writeDB, readDB, provision, _, err := openStores(*dbPath)
			if err != nil {
				return err
			}
			defer writeDB.Close()
			defer readDB.Close()

			uid, err := provision.CreateAccount(cmd.Context(), domain.RegistrationRequest{
				Email:    email,
				Password: password,
				FullName: fullName,
				Role:     domain.Role(role),
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(os.Stdout, uid)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email (required)")
	cmd.Flags().StringVar(&password, "password", "", "account password (required)")
	cmd.Flags().StringVar(&fullName, "name", "", "full name (required)")
	cmd.Flags().StringVar(&role, "role", "user", "role: user or admin")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}
