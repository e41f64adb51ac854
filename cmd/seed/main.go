package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"portfolio_backend/internal/auth"
	"portfolio_backend/internal/config"
	"portfolio_backend/internal/database"
	"portfolio_backend/internal/repositories"
	"portfolio_backend/internal/seed"
	"portfolio_backend/internal/services"

	"github.com/spf13/cobra"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newImportCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Wipe all collections, create the admin user and load starter content. Refuses when data exists unless --force is given",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			// Checked before any write: a wipe with no admin to
			// recreate would leave the site without a login.
			if cfg.Admin.Password == "" {
				return fmt.Errorf("ADMIN_PASSWORD is not configured; refusing to seed")
			}

			db, err := openDB(cfg)
			if err != nil {
				return err
			}

			ctx := context.Background()
			if err := seed.Import(ctx, db, force); err != nil {
				return err
			}

			tokens := auth.NewTokenManager(cfg.JWT.Secret, time.Duration(cfg.JWT.TTL)*time.Hour)
			authService := services.NewAuthService(repositories.NewUserRepository(db), tokens)
			if _, err := authService.CreateAdmin(ctx, cfg.Admin.Username, cfg.Admin.Password); err != nil {
				return err
			}

			fmt.Println("Data imported")
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing data")
	return cmd
}

func newDestroyCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "destroy",
		Short: "Delete every record in every collection, the admin user included",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				return fmt.Errorf("refusing to destroy data without --force")
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			db, err := openDB(cfg)
			if err != nil {
				return err
			}

			if err := seed.Destroy(context.Background(), db); err != nil {
				return err
			}

			fmt.Println("Data destroyed")
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "confirm destruction")
	return cmd
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "One-shot provisioning tool for the portfolio database",
	}
	cmd.AddCommand(
		newImportCmd(),
		newDestroyCmd(),
	)
	return cmd
}

func openDB(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := database.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return db, nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
