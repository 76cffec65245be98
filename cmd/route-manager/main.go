package main

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nalindak/aws-network-routing-project/internal/config"
	"github.com/nalindak/aws-network-routing-project/internal/console"
	"github.com/nalindak/aws-network-routing-project/internal/routes"
)

const defaultRegion = "ap-southeast-4"

func main() {
	log := logrus.New()
	reporter := console.NewStdoutReporter()

	rootCmd := &cobra.Command{
		Use:   "route-manager",
		Short: "Reconcile YAML route definitions against AWS VPC route tables",
		Run: func(cmd *cobra.Command, args []string) {
			configPath := viper.GetString("config")
			region := viper.GetString("region")
			dryRun := viper.GetBool("dry-run")
			validateOnly := viper.GetBool("validate-only")

			if viper.GetBool("verbose") {
				log.SetLevel(logrus.DebugLevel)
			}

			if configPath == "" {
				reporter.Failf("The --config flag is required")
				_ = cmd.Help()
				os.Exit(1)
			}

			ctx := context.Background()

			svc, err := routes.NewServiceWithDefaultConfig(ctx, region, log)
			if err != nil {
				reporter.Failf("Error: AWS credentials not found. Please configure your credentials.")
				log.WithError(err).Error("failed to initialize AWS client")
				os.Exit(1)
			}
			rec := routes.NewReconciler(svc, reporter, log)

			reporter.Sectionf("Loading configuration from: %s", configPath)
			cfg, err := config.LoadRoutes(configPath)
			if err != nil {
				reporter.Failf("%v", err)
				os.Exit(1)
			}

			if err := rec.Validate(ctx, cfg); err != nil {
				os.Exit(1)
			}

			if validateOnly {
				for _, table := range cfg.RouteTables {
					if err := rec.DisplayTable(table); err != nil {
						log.WithError(err).Warn("failed to render route table")
					}
				}
				reporter.Successf("Configuration is valid")
				return
			}

			summary := rec.Apply(ctx, cfg, dryRun)

			if dryRun {
				reporter.Warnf("DRY RUN COMPLETED - No changes were made")
				return
			}
			if !summary.AllSucceeded() {
				reporter.Failf("Failed to apply route table updates")
				os.Exit(1)
			}
			reporter.Successf("Route table updates completed successfully")
		},
	}

	rootCmd.Flags().StringP("config", "c", "", "Path to YAML configuration file")
	rootCmd.Flags().StringP("region", "r", defaultRegion, "AWS region")
	rootCmd.Flags().Bool("dry-run", false, "Show what would be done without making changes")
	rootCmd.Flags().Bool("validate-only", false, "Only validate configuration without applying changes")
	rootCmd.Flags().BoolP("verbose", "v", false, "Enable verbose logging")

	if err := viper.BindPFlags(rootCmd.Flags()); err != nil {
		log.Fatalf("failed to bind flags: %v", err)
	}

	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
