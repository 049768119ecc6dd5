// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nlp4re/orkgforms/internal/orkg"
	"github.com/nlp4re/orkgforms/pkg/types"
)

const (
	defaultTimeout    = 60 * time.Second
	defaultUserAgent  = "orkgforms/0.1"
	defaultMaxRetries = 5
)

// orkgClient builds an ORKG client from flags, config, and secrets.
// Precedence: flag, then ORKGFORMS_* env / config file, then secret.
func orkgClient(cmd *cobra.Command) *orkg.Client {
	host, _ := cmd.Flags().GetString("host")
	if host == "" {
		host = viper.GetString("orkg.host")
	}
	host = secretDefault("orkg-host", host)

	timeout, _ := cmd.Flags().GetDuration("timeout")
	if timeout == 0 {
		timeout = defaultTimeout
	}

	cfg := types.ORKGConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   timeout,
			UserAgent: defaultUserAgent,
		},
		Host:       host,
		Email:      secretDefault("orkg-email", viper.GetString("orkg.email")),
		Password:   secretDefault("orkg-password", ""),
		MaxRetries: defaultMaxRetries,
	}
	return orkg.New(cfg)
}

// orkgFlags registers the connection flags shared by the API commands.
func orkgFlags(cmd *cobra.Command) {
	cmd.Flags().String("host", "", "ORKG instance base URL (default https://incubating.orkg.org)")
	cmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 60s)")
}
