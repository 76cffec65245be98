package main

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nalindak/aws-network-routing-project/internal/config"
	"github.com/nalindak/aws-network-routing-project/internal/console"
	"github.com/nalindak/aws-network-routing-project/internal/firewall"
)

const defaultRegion = "ap-southeast-4"

func main() {
	log := logrus.New()
	reporter := console.NewStdoutReporter()

	rootCmd := &cobra.Command{
		Use:   "firewall-manager",
		Short: "Reconcile YAML firewall policies against AWS Network Firewall",
		Run: func(cmd *cobra.Command, args []string) {
			configPath := viper.GetString("config")
			region := viper.GetString("region")
			dryRun := viper.GetBool("dry-run")
			validateOnly := viper.GetBool("validate-only")
			listPolicies := viper.GetBool("list-policies")

			if viper.GetBool("verbose") {
				log.SetLevel(logrus.DebugLevel)
			}

			ctx := context.Background()

			svc, err := firewall.NewServiceWithDefaultConfig(ctx, region, reporter, log)
			if err != nil {
				reporter.Failf("Error: AWS credentials not found. Please configure your credentials.")
				log.WithError(err).Error("failed to initialize AWS client")
				os.Exit(1)
			}
			rec := firewall.NewReconciler(svc, reporter, log)

			if listPolicies {
				if err := rec.ListPolicies(ctx); err != nil {
					log.WithError(err).Error("policy listing failed")
				}
				return
			}

			if configPath == "" {
				reporter.Failf("The --config flag is required")
				_ = cmd.Help()
				os.Exit(1)
			}

			reporter.Sectionf("Loading configuration from: %s", configPath)
			cfg, err := config.LoadFirewall(configPath)
			if err != nil {
				reporter.Failf("%v", err)
				os.Exit(1)
			}

			if err := rec.Validate(cfg); err != nil {
				os.Exit(1)
			}

			if validateOnly {
				for _, policy := range cfg.Policies {
					if err := rec.DisplayPolicy(policy); err != nil {
						log.WithError(err).Warn("failed to render policy table")
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
				reporter.Failf("Failed to apply firewall configuration")
				os.Exit(1)
			}
			reporter.Successf("Firewall configuration applied successfully")
		},
	}

	rootCmd.Flags().StringP("config", "c", "", "Path to YAML configuration file")
	rootCmd.Flags().StringP("region", "r", defaultRegion, "AWS region")
	rootCmd.Flags().Bool("dry-run", false, "Show what would be done without making changes")
	rootCmd.Flags().Bool("validate-only", false, "Only validate configuration without applying changes")
	rootCmd.Flags().Bool("list-policies", false, "List existing firewall policies")
	rootCmd.Flags().BoolP("verbose", "v", false, "Enable verbose logging")

	if err := viper.BindPFlags(rootCmd.Flags()); err != nil {
		log.Fatalf("failed to bind flags: %v", err)
	}

	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
