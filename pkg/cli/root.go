// Package cli implements the omnicalc administration CLI. It operates
// directly on the database file, so it is meant for the host the server
// runs on.
package cli

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	internaldb "omnicalc/internal/db"
	"omnicalc/internal/db/repository"
	"omnicalc/internal/service"
)

// Execute runs the CLI.
func Execute() int {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	var dbPath string

	rootCmd := &cobra.Command{
		Use:           "omnicalc",
		Short:         "OmniCalc administration CLI",
		Long:          "Command-line administration for the OmniCalc server: accounts and admin status.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "path to the SQLite database (default $DB_PATH or omnicalc.sqlite)")

	rootCmd.AddCommand(newUsersCmd(&dbPath))
	rootCmd.AddCommand(newAdminExistsCmd(&dbPath))

	return rootCmd
}

// openStores opens the database and builds the provisioning stack. The
// caller must Close both returned handles.
func openStores(dbPath string) (*sql.DB, *sql.DB, *service.ProvisionService, *repository.IdentityRepo, error) {
	if dbPath == "" {
		dbPath = os.Getenv("DB_PATH")
	}
	if dbPath == "" {
		dbPath = "omnicalc.sqlite"
	}
	writeDB, readDB, err := internaldb.OpenPair(dbPath, 2)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("open database: %w", err)
	}
	if err := internaldb.RunMigrations(writeDB); err != nil {
		writeDB.Close()
		readDB.Close()
		return nil, nil, nil, nil, fmt.Errorf("run migrations: %w", err)
	}

	identity := repository.NewIdentityRepo(writeDB)
	profiles := repository.NewProfileRepo(writeDB)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	provision := service.NewProvisionService(identity, profiles, logger)
	return writeDB, readDB, provision, identity, nil
}
