// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the orkgforms CLI, the pipeline
// from NLP4RE ID card PDFs to ORKG template instances. Each stage is a
// subcommand: extract, template, instance, batch, runs.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nlp4re/orkgforms/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds ORKG credentials loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// secretDefault returns fallback when non-empty, else the secret value
// for key if one was loaded.
func secretDefault(key, fallback string) string {
	if fallback != "" {
		return fallback
	}
	if v, ok := loadedSecrets[key]; ok {
		return v
	}
	return ""
}

// rootCmd is the base command for the orkgforms CLI.
var rootCmd = &cobra.Command{
	Use:   "orkgforms",
	Short: "Convert NLP4RE ID card PDFs into ORKG templates and instances",
	Long: `orkgforms converts interactive PDF survey forms (NLP4RE ID cards) into
structured JSON question documents, and turns those documents into ORKG
templates and template instances through the ORKG REST API.

Each pipeline stage is a subcommand: extract reads PDF forms, template
builds template definitions, instance populates the published NLP4RE
template, and batch runs the whole pipeline over a folder of PDFs.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./orkgforms.yaml or ~/.config/orkgforms/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("orkgforms")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "orkgforms"))
		}
	}

	viper.SetEnvPrefix("ORKGFORMS")
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
