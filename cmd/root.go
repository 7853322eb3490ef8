package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCMD = &cobra.Command{
	Use:   "brvmwatch",
	Short: "BRVM Bulletin Collection and Analysis Tool",
	Long: `A CLI application for collecting BRVM official bulletins.
It downloads the daily Bulletin Officiel de la Cote PDF, extracts index
levels and per-security quotes, stores them in Postgres and serves them
through a REST API and Excel reports.`,
}

func Execute() {
	err := rootCMD.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	// Optional .env next to the binary; real deployments use the
	// environment directly.
	_ = godotenv.Load()

	rootCMD.AddCommand(collectCMD)
	rootCMD.AddCommand(serverCMD)
	rootCMD.AddCommand(reportCMD)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
