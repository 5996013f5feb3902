package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/tsawler/pricebook"
	"github.com/tsawler/pricebook/export"
	"github.com/tsawler/pricebook/ocr"
	"github.com/tsawler/pricebook/store"
)

// output returns the writer for --output: stdout for "" or "-"
func output(cmd *cobra.Command, path string) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopCloser{cmd.OutOrStdout()}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", path, err)
	}
	return f, nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// outputFormat resolves --format, letting an --output extension decide
// when the flag was not given
func outputFormat(cmd *cobra.Command, name, path string) (export.Format, error) {
	f, err := export.ParseFormat(name)
	if err != nil {
		return 0, err
	}
	if !cmd.Flags().Changed("format") && path != "" && path != "-" {
		f = export.FormatFromFilename(path, f)
	}
	if f.Binary() && (path == "" || path == "-") {
		return 0, fmt.Errorf("%s output needs --output FILE", f)
	}
	return f, nil
}

func writeTo(cmd *cobra.Command, path string, write func(io.Writer) error) error {
	w, err := output(cmd, path)
	if err != nil {
		return err
	}
	if err := write(w); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}

func (a *app) extractCmd() *cobra.Command {
	var (
		rows       bool
		date       string
		formatName string
		outPath    string
	)

	cmd := &cobra.Command{
		Use:   "extract FILE...",
		Short: "Print the items of each invoice",
		Long: `Extract the dated item prices of each invoice.

With --rows the reconstructed table rows are printed instead, one tuple
per row with _ for empty cells, which helps when a layout is not
recognized.

Example:
  pricebook extract invoices/2023-04-*.html
  pricebook extract --rows --log-level debug invoice.html
  pricebook extract --format csv --output items.csv invoice.html`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := outputFormat(cmd, formatName, outPath)
			if err != nil {
				return err
			}

			if rows {
				res := &pricebook.CollectResult{}
				if err := writeTo(cmd, outPath, func(w io.Writer) error {
					for _, e := range a.extractors(args, date) {
						rs, warnings, err := e.Rows()
						a.report(warnings)
						if err != nil {
							if a.policy == pricebook.AbortOnError {
								return err
							}
							a.logger.Warn("skipping invoice", "source", e.Name(), "error", err)
							res.Failures = append(res.Failures, pricebook.Failure{Source: e.Name(), Err: err})
							continue
						}
						if len(args) > 1 {
							fmt.Fprintf(w, "# %s\n", e.Name())
						}
						if err := export.WriteRows(w, rs, f); err != nil {
							return err
						}
					}
					return nil
				}); err != nil {
					return err
				}
				return a.failed(res)
			}

			res, err := pricebook.Collect(cmd.Context(), a.extractors(args, date), a.policy, a.logger)
			if err != nil {
				return err
			}
			if err := writeTo(cmd, outPath, func(w io.Writer) error {
				return export.WriteItems(w, res.Items, f)
			}); err != nil {
				return err
			}
			return a.failed(res)
		},
	}

	cmd.Flags().BoolVar(&rows, "rows", false, "print reconstructed rows instead of items")
	cmd.Flags().StringVar(&date, "date", "", "invoice date, overriding the document's own")
	cmd.Flags().StringVarP(&formatName, "format", "f", "markdown", "output format: markdown, csv, json, yaml or xlsx")
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "output file (default stdout)")
	return cmd
}

func (a *app) historyCmd() *cobra.Command {
	var (
		formatName string
		outPath    string
	)

	cmd := &cobra.Command{
		Use:   "history FILE...",
		Short: "Build a price history from invoices",
		Long: `Aggregate the items of many invoices into one price history: one row
per item, one column per invoice date. Later invoices overwrite the price
of the same item on the same date.

Example:
  pricebook history invoices/*.html
  pricebook history --on-error skip -o prices.xlsx invoices/*.html`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := outputFormat(cmd, formatName, outPath)
			if err != nil {
				return err
			}

			res, err := pricebook.Collect(cmd.Context(), a.extractors(args, ""), a.policy, a.logger)
			if err != nil {
				return err
			}
			if err := writeTo(cmd, outPath, func(w io.Writer) error {
				return export.Write(w, res.History, f)
			}); err != nil {
				return err
			}
			return a.failed(res)
		},
	}

	cmd.Flags().StringVarP(&formatName, "format", "f", "markdown", "output format: markdown, csv, json, yaml or xlsx")
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "output file (default stdout)")
	return cmd
}

func (a *app) importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE...",
		Short: "Extract invoices and save their prices to the store",
		Long: `Extract each invoice and record its items in the configured store.
Each invoice is saved as soon as it is extracted.

Example:
  pricebook import invoices/*.html
  PRICEBOOK_DB_DRIVER=postgres PRICEBOOK_DB=postgres://localhost/prices pricebook import a.html`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			st, err := a.openStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close()

			var failures int
			for _, e := range a.extractors(args, "") {
				res, err := pricebook.Collect(ctx, []*pricebook.Extractor{e}, a.policy, a.logger)
				if err != nil {
					return err
				}
				if len(res.Failures) > 0 {
					failures++
					continue
				}

				doc := res.Documents[0]
				id, err := st.SaveDocument(ctx, store.DocumentRecord{Source: doc.Source, InvoiceDate: doc.Date}, doc.Items)
				if err != nil {
					return fmt.Errorf("save %s: %w", doc.Source, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  %d items\n", id, doc.Source, len(doc.Items))
			}
			if failures > 0 {
				return fmt.Errorf("%d invoice(s) skipped", failures)
			}
			return nil
		},
	}
}

func (a *app) showCmd() *cobra.Command {
	var (
		formatName string
		outPath    string
		documents  bool
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Render the stored price history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			st, err := a.openStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close()

			if documents {
				docs, err := st.Documents(ctx)
				if err != nil {
					return err
				}
				for _, d := range docs {
					fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  %s  %d items  %s\n",
						d.ID, d.InvoiceDate, d.ImportedAt.Format("2006-01-02 15:04"), d.ItemCount, d.Source)
				}
				return nil
			}

			f, err := outputFormat(cmd, formatName, outPath)
			if err != nil {
				return err
			}
			h, err := st.History(ctx)
			if err != nil {
				return err
			}
			return writeTo(cmd, outPath, func(w io.Writer) error {
				return export.Write(w, h, f)
			})
		},
	}

	cmd.Flags().StringVarP(&formatName, "format", "f", "markdown", "output format: markdown, csv, json, yaml or xlsx")
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&documents, "documents", false, "list imported documents instead")
	return cmd
}

func (a *app) ocrCmd() *cobra.Command {
	var (
		date     string
		pageMode string
		hocrOut  string
	)

	cmd := &cobra.Command{
		Use:   "ocr IMAGE",
		Short: "Recognize a scanned invoice and print its items",
		Long: `Recognize a scanned invoice image with Tesseract and extract its items.
Scans carry no date, so --date is required. Requires a build with
"-tags ocr".

Example:
  pricebook ocr --date 2023-04-01 scan.png
  pricebook ocr --date 2023-04-01 --hocr scan.hocr scan.tiff`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if date == "" {
				return fmt.Errorf("--date is required for scanned invoices")
			}
			if pageMode == "" {
				pageMode = a.cfg.OCR.PageMode
			}
			psm, ok := ocr.ParsePageSegMode(pageMode)
			if !ok {
				return fmt.Errorf("unknown page mode %q", pageMode)
			}

			if hocrOut != "" {
				if err := a.writeHOCR(args[0], hocrOut, psm); err != nil {
					return err
				}
			}

			items, warnings, err := pricebook.FromImage(args[0], date).
				WithLogger(a.logger).
				MinImageWidth(a.cfg.OCR.MinWidth).
				Language(a.cfg.OCR.Language).
				PageSegMode(psm).
				Items()
			a.report(warnings)
			if pricebook.IsOCRUnavailable(err) {
				return fmt.Errorf("%w (this binary was built without OCR)", err)
			}
			if err != nil {
				return err
			}
			return export.WriteItems(cmd.OutOrStdout(), items, export.Markdown)
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "invoice date (required)")
	cmd.Flags().StringVar(&pageMode, "page-mode", "", "Tesseract page segmentation: auto, column, block or sparse")
	cmd.Flags().StringVar(&hocrOut, "hocr", "", "also save the recognized hOCR to this file")
	return cmd
}

// writeHOCR saves the raw recognition output for inspection
func (a *app) writeHOCR(image, path string, psm ocr.PageSegMode) error {
	data, err := os.ReadFile(image)
	if err != nil {
		return err
	}
	prepared, err := ocr.Preprocess(data, a.cfg.OCR.MinWidth)
	if err != nil {
		return err
	}

	client, err := ocr.New()
	if err != nil {
		return err
	}
	defer client.Close()
	if err := client.SetLanguage(a.cfg.OCR.Language); err != nil {
		return err
	}
	if err := client.SetPageSegMode(psm); err != nil {
		return err
	}

	markup, err := client.HOCR(prepared)
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(markup), 0o644)
}

// report logs extraction warnings
func (a *app) report(warnings []pricebook.Warning) {
	for _, w := range warnings {
		a.logger.Warn(w.Message, "source", w.Source, "code", w.Code.String())
	}
}

// failed turns skipped documents into a non-zero exit
func (a *app) failed(res *pricebook.CollectResult) error {
	if len(res.Failures) == 0 {
		return nil
	}
	for _, f := range res.Failures {
		fmt.Fprintf(a.stderr, "skipped %s: %v\n", f.Source, f.Err)
	}
	return fmt.Errorf("%d invoice(s) skipped", len(res.Failures))
}
