package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "steadfast",
		Short:         "Habit and relapse tracking API",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return loadDotEnv()
		},
	}

	flags := root.PersistentFlags()
	flags.String("db-driver", "", "database driver: sqlite or postgres (env DB_DRIVER)")
	flags.String("db-path", "", "SQLite database file (env DB_PATH)")
	flags.String("database-url", "", "Postgres connection string (env DATABASE_URL)")

	root.AddCommand(
		newServeCommand(),
		newMigrateCommand(),
		newCreateUserCommand(),
		newResetPasswordCommand(),
		newGenSecretCommand(),
	)
	return root
}
