package main

import (
	"github.com/spf13/cobra"

	"github.com/yigit/unicrud/internal/pkg/logger"
	"github.com/yigit/unicrud/internal/server"
)

// version is overridden at build time with -ldflags "-X main.version=..."
var version = "dev"

var configPath string

var rootCmd = &cobra.Command{
	Use:           "unicrud",
	Short:         "Course and student CRUD API server",
	Long:          "unicrud serves the course catalogue and student roster over HTTP from in-memory collections.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE:  runServe,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Printf("unicrud version %s\n", version)
	},
}

func runServe(_ *cobra.Command, _ []string) error {
	srv, err := server.NewServer(configPath)
	if err != nil {
		return err
	}

	// Run blocks until a shutdown signal arrives
	if err := srv.Run(); err != nil {
		return err
	}

	logger.Info().Msg("Application finished gracefully.")
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "configs/config.yaml", "path to the YAML or TOML config file")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}
