package cmd

import (
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"
	"github.com/viktsys/brvmwatch/bulletin"
	"github.com/viktsys/brvmwatch/collect"
	"github.com/viktsys/brvmwatch/database"
	"github.com/viktsys/brvmwatch/download"
	"github.com/viktsys/brvmwatch/pdfdoc"
	"github.com/viktsys/brvmwatch/report"
)

var (
	collectDate  string
	collectFrom  string
	collectTo    string
	collectPDF   string
	collectForce bool
	collectExcel bool
)

var collectCMD = &cobra.Command{
	Use:   "collect",
	Short: "Download and ingest bulletins",
	Long: `Download the official bulletin for a date (or a date range) and
extract its index levels and security quotes into the database. A local
PDF can be processed directly with --pdf.`,
	Run: func(cmd *cobra.Command, args []string) {
		log.Println("Initializing database...")
		if err := database.InitDB(); err != nil {
			log.Fatalf("Failed to initialize database: %v", err)
		}

		collector := newCollector()

		// Local file: no download involved, the flag date is only a hint.
		if collectPDF != "" {
			hint := time.Now().UTC().Truncate(24 * time.Hour)
			if collectDate != "" {
				hint = mustParseDate(collectDate)
			}
			outcome, err := collector.ProcessFile(collectPDF, hint)
			if err != nil {
				log.Fatalf("Failed to process %s: %v", collectPDF, err)
			}
			printOutcome(outcome)
			maybeExcel(outcome.Date)
			return
		}

		if collectFrom != "" {
			start := mustParseDate(collectFrom)
			end := time.Now().UTC().Truncate(24 * time.Hour)
			if collectTo != "" {
				end = mustParseDate(collectTo)
			}
			outcomes := collector.CollectRange(start, end, collectForce)
			fmt.Printf("%d bulletins processed\n", len(outcomes))
			return
		}

		date := time.Now().UTC().Truncate(24 * time.Hour)
		if collectDate != "" {
			date = mustParseDate(collectDate)
		}
		outcome, err := collector.CollectDate(date, collectForce)
		if err != nil {
			log.Fatalf("Collection failed: %v", err)
		}
		if outcome == nil {
			fmt.Printf("Nothing collected for %s\n", date.Format("2006-01-02"))
			return
		}
		printOutcome(outcome)
		maybeExcel(outcome.Date)
	},
}

func newCollector() *collect.Collector {
	store := database.NewStore(database.DB)
	dl := download.NewClient(getEnv("BULLETIN_DIR", "bulletins"))
	extractor := bulletin.NewExtractor(bulletin.DefaultRefData())
	open := func(path string) (bulletin.Document, error) {
		return pdfdoc.Open(path)
	}
	return collect.NewCollector(store, dl, open, extractor)
}

func mustParseDate(s string) time.Time {
	date, err := time.Parse("2006-01-02", s)
	if err != nil {
		log.Fatalf("Invalid date %q, expected YYYY-MM-DD", s)
	}
	return date
}

func printOutcome(o *collect.Outcome) {
	seance := "?"
	if o.SeanceNum != nil {
		seance = fmt.Sprintf("%d", *o.SeanceNum)
	}
	fmt.Printf("%d/%d cours inserted for %s (seance N°%s, %s strategy)\n",
		o.NbInseres, o.NbExtraits, o.Date.Format("2006-01-02"), seance, o.Strategy)
}

func maybeExcel(date time.Time) {
	if !collectExcel {
		return
	}
	store := database.NewStore(database.DB)
	path, err := report.Generate(store, date, getEnv("REPORT_DIR", "rapports"))
	if err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Printf("Report: %s\n", path)
}

func init() {
	collectCMD.Flags().StringVar(&collectDate, "date", "", "single date (YYYY-MM-DD), defaults to today")
	collectCMD.Flags().StringVar(&collectFrom, "from", "", "range start (YYYY-MM-DD)")
	collectCMD.Flags().StringVar(&collectTo, "to", "", "range end (YYYY-MM-DD), defaults to today")
	collectCMD.Flags().StringVar(&collectPDF, "pdf", "", "process a local PDF file directly")
	collectCMD.Flags().BoolVar(&collectForce, "force", false, "re-download even if already present")
	collectCMD.Flags().BoolVar(&collectExcel, "excel", false, "generate the Excel report afterwards")
}
