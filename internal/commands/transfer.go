package commands

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/roro-dev/roro/internal/csvio"
	"github.com/roro-dev/roro/internal/ledger"
	rlog "github.com/roro-dev/roro/internal/log"
)

func newExportCommand(a *app) *cobra.Command {
	var format, output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the ledger as JSON or the records as CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if output == "" {
				return writeExport(cmd.OutOrStdout(), a, format)
			}
			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("creating export file: %w", err)
			}
			return writeAndClose(f, func(w io.Writer) error {
				return writeExport(w, a, format)
			})
		},
	}

	cmd.Flags().StringVar(&format, "format", "json", "json or csv")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")

	return cmd
}

func writeExport(w io.Writer, a *app, format string) error {
	switch format {
	case "json":
		data, err := a.ledger.Export()
		if err != nil {
			return err
		}
		if _, err := w.Write(data); err != nil {
			return fmt.Errorf("writing export: %w", err)
		}
	case "csv":
		if err := csvio.WriteRecords(w, a.ledger.Records()); err != nil {
			return fmt.Errorf("writing export: %w", err)
		}
	default:
		return fmt.Errorf("unknown format %q, want json or csv", format)
	}
	return nil
}

// writeAndClose runs write against wc and closes it. A failed close is
// reported when the write itself succeeded.
func writeAndClose(wc io.WriteCloser, write func(io.Writer) error) error {
	err := write(wc)
	if cerr := wc.Close(); cerr != nil && err == nil {
		err = fmt.Errorf("closing export file: %w", cerr)
	}
	return err
}

func newImportCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Add records from a CSV export",
		Long:  "Add records from a CSV file in the export format. Each row becomes a new record with a fresh ID.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening import file: %w", err)
			}
			defer f.Close()

			n, err := importRecords(a, f)
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d record(s)\n", n)
			return err
		},
	}
}

// importRecords adds every row of r. Rows the ledger rejects are skipped and
// reported together.
func importRecords(a *app, r io.Reader) (int, error) {
	records, err := csvio.ReadRecords(r)
	if err != nil {
		return 0, err
	}

	var errs []error
	imported := 0
	for i, rec := range records {
		_, err := a.ledger.AddRecord(ledger.AddRecordParams{
			Kind:     rec.Kind,
			Amount:   rec.Amount,
			Category: rec.Category,
			Icon:     rec.Icon,
			Note:     rec.Note,
			Date:     rec.Date,
		})
		if err != nil {
			a.log.Warn("skipping import row", rlog.FieldOperation, rlog.OpImport, "row", i+2, rlog.FieldError, err)
			errs = append(errs, fmt.Errorf("row %d: %w", i+2, err))
			continue
		}
		imported++
	}
	return imported, errors.Join(errs...)
}
