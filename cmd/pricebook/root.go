package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/tsawler/pricebook"
	"github.com/tsawler/pricebook/internal/config"
	"github.com/tsawler/pricebook/ocr"
	"github.com/tsawler/pricebook/store"
)

// app carries state shared by subcommands after the root pre-run
type app struct {
	cfg    *config.Config
	logger *slog.Logger
	policy pricebook.Policy

	envFile string
	stderr  io.Writer
}

func newRootCmd(stderr io.Writer) *cobra.Command {
	a := &app{stderr: stderr}
	var (
		logLevel string
		onError  string
		dbDriver string
		db       string
	)

	rootCmd := &cobra.Command{
		Use:   "pricebook",
		Short: "Build a price history from supplier invoices",
		Long: `pricebook extracts dated item prices from supplier invoices.

Invoices are read as positioned HTML, the output of "pdftohtml -c -s",
or as hOCR/images from a scanner. The item table is located by its
header, rows are rebuilt from the text positions, and every price is
normalized to what one unit of the item cost.

Settings come from the environment (PRICEBOOK_*), optionally loaded from
a .env file, and can be overridden with flags.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.envFile != "" {
				cfg, err := config.LoadFile(a.envFile)
				if err != nil {
					return err
				}
				a.cfg = cfg
			} else {
				a.cfg = config.Load()
			}

			flags := cmd.Flags()
			if flags.Changed("log-level") {
				a.cfg.LogLevel = logLevel
			}
			if flags.Changed("on-error") {
				a.cfg.OnError = onError
			}
			if flags.Changed("db-driver") {
				a.cfg.Database.Driver = dbDriver
			}
			if flags.Changed("db") {
				a.cfg.Database.DSN = db
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			level, _ := config.ParseLevel(a.cfg.LogLevel)
			a.logger = slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: level}))
			slog.SetDefault(a.logger)

			policy, err := pricebook.ParsePolicy(a.cfg.OnError)
			if err != nil {
				return err
			}
			a.policy = policy
			return nil
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.envFile, "env-file", "", "load settings from this .env file instead of ./.env")
	pf.StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn or error")
	pf.StringVar(&onError, "on-error", "abort", "when an invoice fails: abort the run or skip it")
	pf.StringVar(&dbDriver, "db-driver", "sqlite", "store driver: sqlite or postgres")
	pf.StringVar(&db, "db", "pricebook.db", "store location: SQLite file or PostgreSQL URL")

	rootCmd.AddCommand(a.extractCmd())
	rootCmd.AddCommand(a.historyCmd())
	rootCmd.AddCommand(a.importCmd())
	rootCmd.AddCommand(a.showCmd())
	rootCmd.AddCommand(a.ocrCmd())

	return rootCmd
}

// extractors opens one extractor per file with the configured OCR options
func (a *app) extractors(files []string, date string) []*pricebook.Extractor {
	psm, _ := ocr.ParsePageSegMode(a.cfg.OCR.PageMode)
	out := make([]*pricebook.Extractor, len(files))
	for i, f := range files {
		e := pricebook.Open(f).
			WithLogger(a.logger).
			MinImageWidth(a.cfg.OCR.MinWidth).
			Language(a.cfg.OCR.Language).
			PageSegMode(psm)
		if date != "" {
			e = e.WithDate(date)
		}
		out[i] = e
	}
	return out
}

// openStore opens the configured store
func (a *app) openStore(ctx context.Context) (store.Store, error) {
	return store.Open(ctx, store.Config{
		Driver:  a.cfg.Database.Driver,
		DSN:     a.cfg.Database.DSN,
		Timeout: a.cfg.Database.Timeout,
	}, a.logger)
}
