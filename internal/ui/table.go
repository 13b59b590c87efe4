package ui

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/footprint-tools/fm/internal/ui/style"
)

// IndexHeader is the header of the leading row-number column.
const IndexHeader = "(index)"

// Table renders rows as a bordered table with a leading index column.
func Table(headers []string, rows [][]string) string {
	indexed := make([][]string, 0, len(rows))
	for i, r := range rows {
		row := make([]string, 0, len(r)+1)
		row = append(row, strconv.Itoa(i))
		row = append(row, r...)
		indexed = append(indexed, row)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(append([]string{IndexHeader}, headers...)...).
		Rows(indexed...).
		StyleFunc(func(row, col int) lipgloss.Style {
			s := lipgloss.NewStyle().Padding(0, 1)
			if row == table.HeaderRow && style.Enabled() {
				s = s.Bold(true)
			}
			return s
		})

	return t.String()
}
