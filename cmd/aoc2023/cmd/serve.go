package cmd

import (
	"github.com/ilyalavrinov/justforfun/adventofcode2023/internal/server"
	"github.com/spf13/cobra"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Solves puzzles posted over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		if serveAddr != "" {
			cfg.Server.Addr = serveAddr
		}

		solver, closeSolver, err := newSolver(cfg)
		if err != nil {
			return err
		}
		defer closeCache(closeSolver)

		return server.New(solver).ListenAndServe(cfg.Server.Addr)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address, overrides the config")
	rootCmd.AddCommand(serveCmd)
}
