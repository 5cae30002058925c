// Package main provides the tg CLI entry point.
package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

// humanOutput controls whether to use human-readable output
var humanOutput bool

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tg",
	Short: "Agent-first translation-network analyzer",
	Long: `tg is an agent-first CLI for analyzing networks of translated works.

It stores bibliographic records in git-versionable JSONL format with an
ephemeral SQLite database for fast queries, builds co-occurrence graphs
over authors, translators, publishers, places and languages, and
computes social-network-analysis metrics. All commands output JSON by
default for easy integration with AI agents and other tools.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// .env may carry TG_ROOT for agents working outside the repo dir.
	godotenv.Load()

	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.Version = Version
}

// getRepoRoot returns the repository root, or exits with an error if not in a repository.
func getRepoRoot() (string, int) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", outputError(ExitError, "getting current directory: %v", err)
	}

	// Check TG_ROOT environment variable first
	if root := os.Getenv("TG_ROOT"); root != "" {
		cwd = root
	}

	return cwd, 0
}
