package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/ilyalavrinov/justforfun/adventofcode2023/internal/config"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool

	cfg = config.Default()
)

var rootCmd = &cobra.Command{
	Use:   "aoc2023",
	Short: "Advent of Code 2023 solutions",
	Long: `Solutions to the Advent of Code 2023 puzzles.

Every day has two parts, each part reads the puzzle input and prints a
single number. Without an input file the bundled example is used.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file, TOML or YAML")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every processed line")
}

func setup() error {
	if cfgFile != "" {
		loaded, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if verbose {
		cfg.Log.Level = "debug"
	}

	logger, err := config.NewLogger(os.Stderr, cfg.Log)
	if err != nil {
		return fmt.Errorf("cannot set up logging: %w", err)
	}
	slog.SetDefault(logger)
	return nil
}
