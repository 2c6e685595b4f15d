// Command linkedin-export logs into LinkedIn and writes the account's
// connections, with a best-effort current employer per contact, to a JSON
// file.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"linkedin-network-export/auth"
	"linkedin-network-export/export"
	"linkedin-network-export/persistence"
)

var (
	flagOutput    string
	flagHeadless  bool
	flagDBPath    string
	flagCookies   string
	flagSettle    time.Duration
	flagMaxRounds int
	flagVerbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "linkedin-export",
	Short: "Export your LinkedIn connections to JSON",
	Long: "Logs into LinkedIn, scrolls the connections list until it stops growing, " +
		"and writes every connection (with a best-effort employer parsed from the " +
		"headline) to a JSON file.",
	SilenceUsage: true,
	RunE:         runExport,
}

func init() {
	rootCmd.Flags().StringVarP(&flagOutput, "output", "o", "connections.json", "Output JSON path")
	rootCmd.Flags().BoolVar(&flagHeadless, "headless", true, "Run the browser headless")
	rootCmd.Flags().StringVar(&flagDBPath, "db", persistence.DefaultDBPath, "SQLite run ledger path")
	rootCmd.Flags().StringVar(&flagCookies, "cookies", auth.DefaultCookiePath, "Cookie file for session reuse")
	rootCmd.Flags().DurationVar(&flagSettle, "settle", 1500*time.Millisecond, "Pause after each scroll trigger")
	rootCmd.Flags().IntVar(&flagMaxRounds, "max-rounds", 60, "Scroll round cap before giving up (0 = unbounded)")
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Debug logging")
}

func main() {
	// Load .env if present; real env vars win either way.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runExport(_ *cobra.Command, _ []string) error {
	level := slog.LevelInfo
	if flagVerbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	creds, err := auth.FromEnv()
	if err != nil {
		return export.NewError(export.FailureConfiguration, err)
	}

	store, err := persistence.NewStore(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	runID, err := store.StartRun(flagOutput)
	if err != nil {
		return err
	}

	connections, err := runBrowserSession(creds, logger)
	if err != nil {
		logger.Error("export failed", "kind", export.KindOf(err), "error", err)
		if ferr := store.FailRun(runID, err); ferr != nil {
			logger.Warn("could not record run failure", "error", ferr)
		}
		return err
	}

	if err := persistence.WriteConnectionsJSON(connections, flagOutput); err != nil {
		logger.Error("export failed", "kind", export.KindOf(err), "error", err)
		if ferr := store.FailRun(runID, err); ferr != nil {
			logger.Warn("could not record run failure", "error", ferr)
		}
		return err
	}
	if err := store.CompleteRun(runID, connections); err != nil {
		// The JSON contract is already on disk; the ledger is best-effort.
		logger.Warn("could not archive run", "error", err)
	}

	logger.Info("saved connections", "count", len(connections), "path", flagOutput)
	return nil
}

// runBrowserSession owns the browser lifetime: launched here and closed on
// every exit path, success or failure.
func runBrowserSession(creds auth.Credentials, logger *slog.Logger) ([]export.Connection, error) {
	u, err := launcher.New().
		Leakless(false).
		Headless(flagHeadless).
		Launch()
	if err != nil {
		return nil, fmt.Errorf("launch browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("connect to browser: %w", err)
	}
	defer func() {
		if err := browser.Close(); err != nil {
			logger.Warn("browser close failed", "error", err)
		}
	}()

	if ok, err := auth.LoadCookies(browser, flagCookies); err != nil {
		logger.Warn("cookie restore failed, falling back to fresh login", "error", err)
	} else if ok {
		logger.Info("cookies loaded", "path", flagCookies)
	}

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, fmt.Errorf("open page: %w", err)
	}

	cfg := export.DefaultConfig()
	cfg.Scroll.Settle = flagSettle
	cfg.Scroll.MaxRounds = flagMaxRounds

	exporter := export.NewExporter(export.NewRodDriver(page), cfg, logger)
	connections, err := exporter.Run(creds)
	if err != nil {
		return nil, err
	}

	if err := auth.SaveCookies(browser, flagCookies); err != nil {
		logger.Warn("could not save cookies", "error", err)
	}
	return connections, nil
}
