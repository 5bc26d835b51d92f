package main

import (
	"os"

	"github.com/yigit/unicrud/internal/pkg/logger"
)

// @title unicrud API
// @version 1.0
// @description Course and student catalogue backed by in-memory collections
// @termsOfService http://swagger.io/terms/

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api
// @schemes http

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}
}
