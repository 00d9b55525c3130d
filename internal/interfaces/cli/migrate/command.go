package migrate

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"casefile/internal/infrastructure/config"
	"casefile/internal/infrastructure/database"
	"casefile/internal/infrastructure/migration"
	"casefile/internal/shared/biztime"
	"casefile/internal/shared/logger"
)

var (
	env   string
	name  string
	steps int
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Manage database migrations: apply pending migrations, roll back, and create new migration files.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newCreateCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		RunE:  runUp,
	}
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		RunE:  runDown,
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")

	return cmd
}

func newCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new migration file",
		RunE:  runCreate,
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Name of the migration (required)")
	cmd.MarkFlagRequired("name")

	return cmd
}

func runUp(cmd *cobra.Command, args []string) error {
	if err := setup(); err != nil {
		return err
	}
	defer database.Close()

	scriptsPath, err := scriptsDir()
	if err != nil {
		return err
	}

	strategy := migration.NewGooseStrategy(scriptsPath)
	if err := strategy.Migrate(database.Get()); err != nil {
		return fmt.Errorf("migration up failed: %w", err)
	}

	logger.Info("migrations applied successfully")
	return nil
}

func runDown(cmd *cobra.Command, args []string) error {
	if err := setup(); err != nil {
		return err
	}
	defer database.Close()

	scriptsPath, err := scriptsDir()
	if err != nil {
		return err
	}

	strategy := migration.NewGooseStrategy(scriptsPath).(*migration.GooseStrategy)
	if err := strategy.MigrateDown(database.Get(), steps); err != nil {
		return fmt.Errorf("migration down failed: %w", err)
	}

	logger.Info("migrations rolled back successfully", "steps", steps)
	return nil
}

func runCreate(cmd *cobra.Command, args []string) error {
	scriptsPath, err := scriptsDir()
	if err != nil {
		return err
	}

	timestamp := biztime.NowUTC().Format("20060102150405")
	slug := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_")
	fileName := fmt.Sprintf("%s_%s.sql", timestamp, slug)
	fullPath := filepath.Join(scriptsPath, fileName)

	template := "-- +goose Up\n\n-- +goose Down\n"
	if err := os.WriteFile(fullPath, []byte(template), 0o644); err != nil {
		return fmt.Errorf("failed to create migration file: %w", err)
	}

	fmt.Printf("created %s\n", fullPath)
	return nil
}

func setup() error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	return nil
}

func scriptsDir() (string, error) {
	scriptsPath, err := filepath.Abs("./internal/infrastructure/migration/scripts")
	if err != nil {
		return "", fmt.Errorf("failed to resolve migration scripts path: %w", err)
	}
	return scriptsPath, nil
}
