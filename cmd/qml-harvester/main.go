// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the qml-harvester CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/qml-harvester/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds optional values loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// rootCmd is the base command for the qml-harvester CLI.
var rootCmd = &cobra.Command{
	Use:   "qml-harvester",
	Short: "Scrape recent Quantum Machine Learning news and fetch open-access preprints",
	Long: `qml-harvester queries a publisher's search page for recent Quantum Machine
Learning articles, cross-references accepted titles against the arXiv API for
an open-access PDF, downloads the PDFs, and writes a plain-text metadata log.

The whole pipeline runs once per invocation; schedule it externally (e.g. a
cron job) for periodic harvesting.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./qml-harvester.yaml or ~/.config/qml-harvester/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("qml-harvester")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "qml-harvester"))
		}
	}

	viper.SetEnvPrefix("QML_HARVESTER")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
