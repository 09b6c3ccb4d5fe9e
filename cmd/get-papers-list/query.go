// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"net/http"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/get-papers-list/internal/logger"
	"github.com/pdiddy/get-papers-list/internal/pipeline"
	"github.com/pdiddy/get-papers-list/internal/report"
	"github.com/pdiddy/get-papers-list/pkg/types"
)

func runQuery(cmd *cobra.Command, args []string) error {
	cfg, err := pipelineConfig()
	if err != nil {
		return err
	}

	debug := viper.GetBool("debug")
	log := logger.New(cmd.ErrOrStderr(), debug)
	log.Debug("arguments",
		"query", args[0],
		"max", viper.GetInt("max_results"),
		"file", cfg.Report.File,
		"format", cfg.Report.Format,
		"base_url", cfg.PubMed.BaseURL,
		"timeout", cfg.PubMed.Timeout)

	client := &http.Client{Timeout: cfg.PubMed.Timeout}
	p := pipeline.New(cfg, client, log)

	q := types.NewSearchQuery(args[0], viper.GetInt("max_results"))
	_, err = p.Run(cmd.Context(), q, cmd.OutOrStdout())
	return err
}

// pipelineConfig assembles the stage configuration from flags, the config
// file and GET_PAPERS_LIST_* environment variables.
func pipelineConfig() (types.PipelineConfig, error) {
	format, err := report.ParseFormat(viper.GetString("format"))
	if err != nil {
		return types.PipelineConfig{}, err
	}

	return types.PipelineConfig{
		PubMed: types.PubMedConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   viper.GetDuration("timeout"),
				UserAgent: viper.GetString("user_agent"),
			},
			BaseURL: viper.GetString("base_url"),
			Tool:    viper.GetString("tool"),
			Email:   viper.GetString("email"),
		}.WithDefaults(),
		Extraction: types.ExtractionConfig{
			Keywords: configuredKeywords(),
		},
		Report: types.ReportConfig{
			File:   viper.GetString("file"),
			Format: format,
		},
	}, nil
}
