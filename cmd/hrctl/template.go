package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"sharda-hr/internal/bulkimport"
	"sharda-hr/internal/shared/dateutil"

	"github.com/spf13/cobra"
)

var (
	templateFormat string
	templateMonth  string
	templateOut    string
)

var templateCmd = &cobra.Command{
	Use:       "template <employees|attendance>",
	Short:     "Write an empty import sheet",
	Long:      "Write an empty import sheet. Attendance sheets get one column per day of --month and no employee rows; download the template from the API for a pre-filled one.",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{bulkimport.KindEmployees, bulkimport.KindAttendance},
	RunE:      runTemplate,
}

func init() {
	templateCmd.Flags().StringVar(&templateFormat, "format", bulkimport.FormatCSV, "csv or xlsx")
	templateCmd.Flags().StringVar(&templateMonth, "month", "", "YYYY-MM, attendance only (default: current month)")
	templateCmd.Flags().StringVarP(&templateOut, "out", "o", ".", "output directory")
}

func runTemplate(cmd *cobra.Command, args []string) error {
	month := dateutil.MonthOf(time.Now())
	if templateMonth != "" {
		m, err := dateutil.ParseMonth(templateMonth)
		if err != nil {
			return fmt.Errorf("invalid --month %q: %w", templateMonth, err)
		}
		month = m
	}

	f, err := bulkimport.BuildTemplate(args[0], templateFormat, month, nil)
	if err != nil {
		return err
	}

	path := filepath.Join(templateOut, f.Name)
	if err := os.WriteFile(path, f.Content, 0o644); err != nil {
		return err
	}
	cmd.Println("wrote", path)
	return nil
}
