// entry point to app
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/ajiang05/vibeCheck/config"
	"github.com/ajiang05/vibeCheck/internal/appServer"
	"github.com/ajiang05/vibeCheck/internal/worker"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const appName = "vibecheck"

func main() {
	logrus.SetFormatter(new(logrus.JSONFormatter))

	if err := rootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:           appName,
		Short:         "Nightlife event discovery service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (default ./config/config.yaml)")

	cmd.AddCommand(
		serveCmd(&configPath),
		migrateCmd(&configPath),
		notifyCmd(&configPath),
		versionCmd(&configPath),
	)
	return cmd
}

func loadConfig(path string) (*config.Config, error) {
	viperInstance, err := config.LoadConfig(path)
	if err != nil {
		return nil, fmt.Errorf("cannot load config: %w", err)
	}

	cfg, err := config.ParseConfig(viperInstance)
	if err != nil {
		return nil, fmt.Errorf("cannot parse config: %w", err)
	}

	if err := appServer.ConfigureLogging(&cfg.Log); err != nil {
		return nil, err
	}
	return cfg, nil
}

func serveCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the web pages and the API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			return appServer.NewServer(cfg)
		},
	}
}

func migrateCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the events and profiles tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			return appServer.Migrate(cmd.Context(), cfg)
		},
	}
}

func notifyCmd(configPath *string) *cobra.Command {
	var change worker.ChangeNotification

	cmd := &cobra.Command{
		Use:   "notify",
		Short: "Publish an events-changed notification so running servers refresh",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			if err := appServer.NotifyChange(cmd.Context(), &cfg.RabbitMQ, change); err != nil {
				return err
			}
			logrus.WithField("queue", cfg.RabbitMQ.QueueName).Info("Change notification published")
			return nil
		},
	}
	cmd.Flags().StringVar(&change.Table, "table", "events", "Changed table")
	cmd.Flags().StringVar(&change.Operation, "op", "UPDATE", "Change operation")
	cmd.Flags().StringVar(&change.ID, "id", "", "Changed row id")
	return cmd
}

func versionCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			viperInstance, err := config.LoadConfig(*configPath)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, viperInstance.GetString("server.app_version"))
			return nil
		},
	}
}

