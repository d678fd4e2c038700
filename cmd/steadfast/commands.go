package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/terraincognita07/steadfast/internal/cli"
	"github.com/terraincognita07/steadfast/internal/db"
	"github.com/terraincognita07/steadfast/internal/security"
	"github.com/terraincognita07/steadfast/internal/services"
	"gorm.io/gorm"
)

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations and list them",
		RunE: func(cmd *cobra.Command, _ []string) error {
			config := loadDatabaseConfig(cmd)
			database, err := openCommandDatabase(config)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if config.Driver != db.DriverSQLite {
				fmt.Fprintln(out, "Schema is up to date.")
				return nil
			}
			applied, err := db.ListAppliedMigrations(database)
			if err != nil {
				return err
			}
			for _, migration := range applied {
				fmt.Fprintf(out, "%s  %s\n", migration.Version, migration.Name)
			}
			return nil
		},
	}
}

func newCreateUserCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "create-user <username>",
		Short: "Create an account, prompting for its password",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			auth, err := commandAuthService(cmd)
			if err != nil {
				return err
			}

			password, err := cli.PromptNewPassword(cmd.ErrOrStderr(), os.Stdin)
			if err != nil {
				return err
			}
			return cli.CreateUser(auth, args[0], password, cmd.OutOrStdout())
		},
	}
}

func newResetPasswordCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reset-password <username>",
		Short: "Issue a temporary password that must be changed on next login",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			auth, err := commandAuthService(cmd)
			if err != nil {
				return err
			}
			_, err = cli.ResetPassword(auth, args[0], cmd.OutOrStdout())
			return err
		},
	}
}

func newGenSecretCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "gen-secret",
		Short: "Print a random value suitable for SECRET_KEY",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			secret, err := security.NewSecretKey()
			if err != nil {
				return fmt.Errorf("generate secret: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), secret)
			return nil
		},
	}
}

func commandAuthService(cmd *cobra.Command) (*services.AuthService, error) {
	database, err := openCommandDatabase(loadDatabaseConfig(cmd))
	if err != nil {
		return nil, err
	}
	return services.NewAuthService(db.NewUserRepository(database)), nil
}

func openCommandDatabase(config db.Config) (*gorm.DB, error) {
	database, err := db.Open(config)
	if err != nil {
		if errors.Is(err, db.ErrUnsupportedDriver) {
			return nil, fmt.Errorf("%w (use sqlite or postgres)", err)
		}
		return nil, fmt.Errorf("database init failed: %w", err)
	}
	return database, nil
}
