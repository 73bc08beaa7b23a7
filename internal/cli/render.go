package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/deppfellow/lightbnb/internal/errs"
	"github.com/fatih/color"
	"github.com/pterm/pterm"
)

const (
	formatTable = "table"
	formatJSON  = "json"
)

type renderer struct {
	out    io.Writer
	format string
}

// render writes v as indented JSON, or headers and rows as a table.
func (r *renderer) render(v any, headers []string, rows [][]string) error {
	if r.format == formatJSON {
		enc := json.NewEncoder(r.out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}

	if len(rows) == 0 {
		_, err := fmt.Fprintln(r.out, "No results.")
		return err
	}

	tableData := pterm.TableData{headers}
	tableData = append(tableData, rows...)

	table, err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(r.out, table)
	return err
}

// success prints a confirmation line in table mode. JSON output stays machine-readable.
func (r *renderer) success(format string, args ...any) {
	if r.format == formatJSON {
		return
	}
	color.New(color.FgGreen, color.Bold).Fprintf(r.out, "✓ %s\n", fmt.Sprintf(format, args...))
}

func money(cents int64) string {
	return fmt.Sprintf("$%.2f", float64(cents)/100)
}

func rating(avg float64) string {
	return strconv.FormatFloat(avg, 'f', 2, 64)
}

// PrintError writes err to w. Application errors show their code and field errors.
func PrintError(w io.Writer, err error) {
	red := color.New(color.FgRed, color.Bold)

	var appErr *errs.Error
	if !errors.As(err, &appErr) {
		red.Fprintf(w, "✗ %s\n", err)
		return
	}

	red.Fprintf(w, "✗ %s (%s)\n", appErr.Message, appErr.Code)
	for _, fe := range appErr.Errors {
		fmt.Fprintf(w, "  - %s: %s\n", color.YellowString(fe.Field), fe.Error)
	}
}

// ExitCode maps an error to the process exit status.
func ExitCode(err error) int {
	switch errs.KindOf(err) {
	case "":
		return 0
	case errs.KindInvalid:
		return 2
	case errs.KindNotFound:
		return 3
	case errs.KindConflict:
		return 4
	case errs.KindUnauthorized:
		return 5
	default:
		return 1
	}
}
