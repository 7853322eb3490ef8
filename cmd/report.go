package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/viktsys/brvmwatch/database"
	"github.com/viktsys/brvmwatch/report"
)

var reportDate string

var reportCMD = &cobra.Command{
	Use:   "report",
	Short: "Generate the Excel report for a date",
	Run: func(cmd *cobra.Command, args []string) {
		date := mustParseDate(reportDate)

		log.Println("Initializing database...")
		if err := database.InitDB(); err != nil {
			log.Fatalf("Failed to initialize database: %v", err)
		}

		store := database.NewStore(database.DB)
		path, err := report.Generate(store, date, getEnv("REPORT_DIR", "rapports"))
		if err != nil {
			log.Fatalf("Failed to generate report: %v", err)
		}
		fmt.Printf("Report generated: %s\n", path)
	},
}

func init() {
	reportCMD.Flags().StringVar(&reportDate, "date", "", "session date (YYYY-MM-DD)")
	reportCMD.MarkFlagRequired("date")
}
