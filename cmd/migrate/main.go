package main

import (
	"fmt"
	"log"
	"os"

	"trivia-board/internal/config"
	"trivia-board/internal/database"
	"trivia-board/internal/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "migrate",
		Short:        "Apply or revert the trivia-board schema",
		SilenceUsage: true,
	}
	cmd.AddCommand(newUpCmd(), newDownCmd())
	return cmd
}

func newUpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			migrator, closeDB, err := openMigrator()
			if err != nil {
				return err
			}
			defer closeDB()

			n, err := migrator.Up(cmd.Context())
			if err != nil {
				return err
			}
			logger.Get().Info("Migrations applied", zap.Int("count", n))
			return nil
		},
	}
}

func newDownCmd() *cobra.Command {
	var steps int
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Revert applied migrations, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			migrator, closeDB, err := openMigrator()
			if err != nil {
				return err
			}
			defer closeDB()

			n, err := migrator.Down(cmd.Context(), steps)
			if err != nil {
				return err
			}
			logger.Get().Info("Migrations reverted", zap.Int("count", n))
			return nil
		},
	}
	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "number of migrations to revert (0 reverts all)")
	return cmd
}

func openMigrator() (*database.Migrator, func(), error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Printf("Failed to initialize logger: %v", err)
	}

	db, err := database.NewSQLXOracleDB(cfg)
	if err != nil {
		return nil, nil, err
	}
	closeDB := func() {
		db.Close()
		logger.Sync()
	}
	return database.NewMigrator(db, logger.Get()), closeDB, nil
}
