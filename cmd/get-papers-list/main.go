// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the get-papers-list CLI. It searches
// PubMed, fetches the matching records, and reports the papers that have at
// least one author affiliated with a pharmaceutical or biotech company.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/get-papers-list/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd searches PubMed for the query given as its only argument.
var rootCmd = &cobra.Command{
	Use:   "get-papers-list <query>",
	Short: "Find PubMed papers with pharmaceutical or biotech authors",
	Long: `get-papers-list searches PubMed for a query, fetches the matching articles,
and keeps those with at least one author whose affiliation names a company
(Pharmaceutical, Biotech, Inc., GmbH, ...). Results print to the console or,
with --file, are written as CSV.

The query uses PubMed syntax, e.g. "mRNA vaccine" or "cancer[Title] AND 2024[dp]".`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE:         runQuery,
}

// flagKeys maps command-line flags to their viper configuration keys.
var flagKeys = map[string]string{
	"max":      "max_results",
	"debug":    "debug",
	"file":     "file",
	"format":   "format",
	"timeout":  "timeout",
	"base-url": "base_url",
	"email":    "email",
	"tool":     "tool",
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./get-papers-list.yaml or ~/.config/get-papers-list/get-papers-list.yaml)")

	f := rootCmd.Flags()
	f.IntP("max", "m", types.DefaultMaxResults, "maximum number of results to fetch")
	f.BoolP("debug", "d", false, "print request parameters, URLs and intermediate counts")
	f.StringP("file", "f", "", "write results to this CSV file instead of the console")
	f.String("format", string(types.FormatText), "console output format: text, table, json, or yaml")
	f.Duration("timeout", 0, "HTTP request timeout (default: no timeout)")
	f.String("base-url", types.DefaultBaseURL, "E-utilities base URL")
	f.String("email", "", "contact email sent to NCBI with each request")
	f.String("tool", "", "tool name sent to NCBI with each request")

	bindFlags()
}

// bindFlags registers the flag-backed configuration keys and defaults.
func bindFlags() {
	for flag, key := range flagKeys {
		if err := viper.BindPFlag(key, rootCmd.Flags().Lookup(flag)); err != nil {
			panic(err)
		}
	}
	viper.SetDefault("user_agent", "get-papers-list/"+version)
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("get-papers-list")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "get-papers-list"))
		}
	}

	viper.SetEnvPrefix("GET_PAPERS_LIST")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
