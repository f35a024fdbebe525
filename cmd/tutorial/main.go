package main

import (
	"fmt"
	"os"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kazakovdmitriy/go-idioms/internal/bucket"
	"github.com/kazakovdmitriy/go-idioms/internal/config"
	"github.com/kazakovdmitriy/go-idioms/internal/logger"
	"github.com/kazakovdmitriy/go-idioms/internal/tutorial"
)

func main() {
	if err := buildRootCmd(config.NewTutorialFlags()).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// buildRootCmd собирает дерево команд; каждая подкоманда запускает одну демонстрацию.
func buildRootCmd(cfg *config.TutorialFlags) *cobra.Command {
	var (
		log   *zap.Logger
		faker *gofakeit.Faker
	)

	root := &cobra.Command{
		Use:           "tutorial",
		Short:         "Runnable demonstrations of Go idioms",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cfg.BindFlags(root.PersistentFlags())

	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if err := cfg.ParseEnv(); err != nil {
			return err
		}

		var err error
		log, err = logger.Initialize(cfg.LogLevel)
		if err != nil {
			return fmt.Errorf("logger initialization error: %w", err)
		}
		faker = gofakeit.New(cfg.Seed)
		return nil
	}

	eventsCmd := &cobra.Command{
		Use:   "events",
		Short: "Register and unregister fake users with observers attached",
		RunE: func(cmd *cobra.Command, args []string) error {
			return tutorial.Events(cmd.OutOrStdout(), log, faker, cfg.Rounds)
		},
	}

	loggingCmd := &cobra.Command{
		Use:   "logging",
		Short: "Show level inheritance in a logger hierarchy",
		RunE: func(cmd *cobra.Command, args []string) error {
			return tutorial.Logging(cmd.OutOrStdout())
		},
	}

	errorsCmd := &cobra.Command{
		Use:   "errors",
		Short: "Compare check-first and try-first error handling",
		RunE: func(cmd *cobra.Command, args []string) error {
			tutorial.Errors(cmd.OutOrStdout())
			return nil
		},
	}

	listObjectsCmd := &cobra.Command{
		Use:     "list-objects",
		Short:   "List every object key of an S3 bucket page by page",
		Example: "  tutorial list-objects --bucket my-bucket --page-size 100",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.Bucket == "" {
				return fmt.Errorf("list-objects requires --bucket")
			}
			client, err := bucket.NewS3Client(cmd.Context())
			if err != nil {
				return err
			}
			lister := bucket.NewLister(client, log, bucket.WithPageSize(cfg.PageSize))
			return tutorial.ListObjects(cmd.Context(), cmd.OutOrStdout(), lister, cfg.Bucket)
		},
	}

	usersCmd := &cobra.Command{
		Use:   "users",
		Short: "Print a fake user with derived fields",
		RunE: func(cmd *cobra.Command, args []string) error {
			tutorial.Users(cmd.OutOrStdout(), faker)
			return nil
		},
	}

	usersAdvancedCmd := &cobra.Command{
		Use:   "users-advanced",
		Short: "Print several fake users as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			return tutorial.UsersAdvanced(cmd.OutOrStdout(), faker, cfg.UsersCount)
		},
	}

	root.AddCommand(eventsCmd, loggingCmd, errorsCmd, listObjectsCmd, usersCmd, usersAdvancedCmd)
	return root
}
