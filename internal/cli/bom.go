package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/arena/pkg/bom"
)

// BOM output formats.
const (
	bomTable = "table"
	bomCSV   = "csv"
	bomJSON  = "json"
	bomXLSX  = "xlsx"
	bomHTML  = "html"
)

var bomFormats = map[string]bool{bomTable: true, bomCSV: true, bomJSON: true, bomXLSX: true, bomHTML: true}

// bomCommand creates the bom command.
func (c *CLI) bomCommand() *cobra.Command {
	var flags courtFlags
	var output, format string
	var sorted bool

	cmd := &cobra.Command{
		Use:   "bom [court.json|design.yaml]",
		Short: "Print the bill of materials for a court",
		Long: `Aggregate the parts needed to build a court: panels, goal frames,
corner pieces, gates and posts. The court comes from a court JSON file, a
design file, or the dimension flags.

The output format follows the -o extension (.csv, .json, .xlsx, .html) unless
--format is given. Without -o the table is printed.`,
		Example: `  arena bom -W 10 -L 15
  arena bom club.yaml -o club.xlsx
  arena bom court.json --format csv > parts.csv`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := bomFormatFor(format, output)
			if err != nil {
				return err
			}
			return c.runBOM(cmd.Context(), args, &flags, output, f, sorted)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file")
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: table, csv, json, xlsx, html")
	cmd.Flags().BoolVar(&sorted, "sorted", false, "order parts by name instead of build order")

	return cmd
}

// bomFormatFor picks the output format from the flag, then the output
// extension, then the table default.
func bomFormatFor(format, output string) (string, error) {
	if format == "" && output != "" {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(output)), ".")
		if format == "txt" {
			format = bomTable
		}
	}
	if format == "" {
		format = bomTable
	}
	if !bomFormats[format] {
		return "", fmt.Errorf("invalid format: %s (must be one of: table, csv, json, xlsx, html)", format)
	}
	if format == bomXLSX && output == "" {
		return "", fmt.Errorf("xlsx output needs -o")
	}
	return format, nil
}

func (c *CLI) runBOM(ctx context.Context, args []string, flags *courtFlags, output, format string, sorted bool) error {
	src, err := c.loadCourt(ctx, args, flags)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(ctx, flags.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	items, hit, err := runner.BOMWithCacheInfo(ctx, src.court)
	if err != nil {
		return err
	}
	if sorted {
		items = bom.Sorted(items)
	}
	c.Logger.Debug("bill of materials", "lines", len(items), "parts", bom.Total(items), "cached", hit)

	if output == "" {
		if format == bomTable {
			printSuccess("%s", StyleTitle.Render(src.court.String()))
			fmt.Println(bomTableView(items))
			printStats(countSections(src.court), bom.Total(items), hit)
			return nil
		}
		return writeBOM(os.Stdout, items, format, src.court.String())
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("create %s: %w", output, err)
	}
	if err := writeBOM(f, items, format, src.court.String()); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	printSuccess("Wrote %d parts (%d lines)", bom.Total(items), len(items))
	printFile(output)
	return nil
}

func writeBOM(w io.Writer, items []bom.Item, format, title string) error {
	switch format {
	case bomCSV:
		return bom.WriteCSV(w, items)
	case bomJSON:
		return bom.WriteJSON(w, items)
	case bomXLSX:
		return bom.WriteXLSX(w, items, title)
	case bomHTML:
		return bom.WriteHTMLChart(w, items, title)
	}
	_, err := fmt.Fprintln(w, bomTableView(items))
	return err
}

// bomTableView renders items as a bordered table with a total row.
func bomTableView(items []bom.Item) string {
	rows := bom.Rows(items)
	rows = append(rows, []string{"Total", strconv.Itoa(bom.Total(items))})
	last := len(rows) - 1

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	cell := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(bom.Header...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return headerStyle.Padding(0, 1)
			case row == last:
				return cell.Bold(true).Foreground(colorCyan)
			case col == 1:
				return cell.Foreground(colorCyan).Align(lipgloss.Right)
			}
			return cell.Foreground(colorWhite)
		})
	return t.Render()
}
