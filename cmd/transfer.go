package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/theirongolddev/pointplan/internal/report"
	"github.com/theirongolddev/pointplan/internal/store"
	"github.com/theirongolddev/pointplan/internal/tui"

	"github.com/pkg/browser"
	"github.com/spf13/cobra"
)

var (
	flagName string
	flagDate string
	flagOut  string
	flagOpen bool
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a project JSON file as a new undoable change",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the project",
}

var exportJSONCmd = &cobra.Command{
	Use:   "json [file]",
	Short: "Write the project record as JSON (stdout without a file)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExportJSON,
}

var exportHTMLCmd = &cobra.Command{
	Use:   "html",
	Short: "Write a printable HTML report",
	RunE:  runExportHTML,
}

var exportTextCmd = &cobra.Command{
	Use:   "text",
	Short: "Print the report to the terminal",
	RunE:  runExportText,
}

func init() {
	for _, c := range []*cobra.Command{exportHTMLCmd, exportTextCmd} {
		c.Flags().StringVar(&flagName, "name", "", "Student name (default from config)")
		c.Flags().StringVar(&flagDate, "date", "", "Report date, YYYY-MM-DD (default today)")
	}
	exportHTMLCmd.Flags().StringVarP(&flagOut, "out", "o", "", "Output file (default proyecto-final-<name>.html)")
	exportHTMLCmd.Flags().BoolVar(&flagOpen, "open", false, "Open the report in the browser")

	exportCmd.AddCommand(exportJSONCmd)
	exportCmd.AddCommand(exportHTMLCmd)
	exportCmd.AddCommand(exportTextCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}

func runImport(_ *cobra.Command, args []string) error {
	return withWorkspace(func(w *workspace) error {
		rec, notice := store.ReadRecordFile(args[0], w.sess.Budget())
		if notice != nil {
			// The working project stays untouched.
			return errors.New(notice.String())
		}
		return w.apply(w.sess.Import(rec))
	})
}

func runExportJSON(_ *cobra.Command, args []string) error {
	return withWorkspace(func(w *workspace) error {
		rec := w.sess.Record()
		if len(args) == 0 {
			return store.EncodeRecord(os.Stdout, rec)
		}
		if err := store.WriteRecordFile(args[0], rec); err != nil {
			return err
		}
		notify("Wrote %d items to %s", len(rec.Items), args[0])
		return nil
	})
}

// reportMeta resolves the name and date flags against config and today.
func reportMeta(w *workspace) (report.Meta, error) {
	name := strings.TrimSpace(flagName)
	if name == "" {
		name = w.cfg.Student.Name
	}
	now := time.Now()
	date := now
	if flagDate != "" {
		if err := tui.ValidateDate(flagDate); err != nil {
			return report.Meta{}, fmt.Errorf("invalid --date %q: %w", flagDate, err)
		}
		date, _ = time.ParseInLocation(tui.DateLayout, strings.TrimSpace(flagDate), time.Local)
	}
	return report.Meta{StudentName: name, Date: date, Generated: now}, nil
}

func buildReport(w *workspace) (report.Report, error) {
	meta, err := reportMeta(w)
	if err != nil {
		return report.Report{}, err
	}
	return report.Build(w.sess.Items(), w.cat, w.sess.Summary(), meta), nil
}

func runExportHTML(_ *cobra.Command, _ []string) error {
	return withWorkspace(func(w *workspace) error {
		r, err := buildReport(w)
		if err != nil {
			return err
		}

		out := flagOut
		if out == "" {
			out = report.Filename(r.StudentName)
		}
		if err := report.WriteHTMLFile(out, r); err != nil {
			return err
		}
		notify("Wrote %s", out)

		if flagOpen {
			abs, err := filepath.Abs(out)
			if err != nil {
				abs = out
			}
			if err := browser.OpenFile(abs); err != nil {
				return fmt.Errorf("opening browser: %w", err)
			}
		}
		return nil
	})
}

func runExportText(_ *cobra.Command, _ []string) error {
	return withWorkspace(func(w *workspace) error {
		r, err := buildReport(w)
		if err != nil {
			return err
		}
		fmt.Println()
		fmt.Print(report.RenderText(r, 80))
		fmt.Println()
		return nil
	})
}
