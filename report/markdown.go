// Package report renders investigation findings as a Markdown document
package report

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"angelscout/models"

	"github.com/mattn/go-runewidth"
)

// Title heads every report
const Title = "# Potential Angel Investors"

// cellWidth measures table cells independently of the terminal locale
var cellWidth = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	return c
}()

// Build renders one section per finding that has other investments, in the given order
func Build(findings []models.Finding) string {
	var sb strings.Builder

	sb.WriteString(Title)
	sb.WriteString("\n\n")

	for _, f := range findings {
		if f.Result.OtherInvestments == nil {
			continue
		}
		writeSection(&sb, f)
	}

	return sb.String()
}

func writeSection(sb *strings.Builder, f models.Finding) {
	sb.WriteString(fmt.Sprintf("### %s (%s)\n", f.Investor.Name, f.Investor.RegistrationNumber))
	sb.WriteString(fmt.Sprintf("*Owns %s of the company*\n\n", f.Investor.SharePercentage))

	sb.WriteString("### Owned by\n")
	rows := make([][]string, 0, len(f.Result.OwnerList))
	for _, owner := range f.Result.OwnerList {
		rows = append(rows, []string{owner.Name, FormatPercentage(owner.Percentage)})
	}
	sb.WriteString(table([]string{"Name", "Percentage"}, rows))
	sb.WriteString("\n")

	sb.WriteString("### Other investments\n")
	for _, investment := range f.Result.OtherInvestments {
		sb.WriteString(fmt.Sprintf("- %s\n", investment))
	}
	sb.WriteString("\n")
}

// table renders a Markdown table with columns padded to equal display width
func table(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = max(3, cellWidth.StringWidth(h))
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], cellWidth.StringWidth(cell))
		}
	}

	var sb strings.Builder
	writeRow := func(cells []string) {
		sb.WriteString("|")
		for i, cell := range cells {
			sb.WriteString(" ")
			sb.WriteString(cellWidth.FillRight(cell, widths[i]))
			sb.WriteString(" |")
		}
		sb.WriteString("\n")
	}

	writeRow(headers)

	separator := make([]string, len(headers))
	for i, w := range widths {
		separator[i] = strings.Repeat("-", w)
	}
	writeRow(separator)

	for _, row := range rows {
		writeRow(row)
	}

	return sb.String()
}

// FormatPercentage prints p with at least one decimal and a percent sign, e.g. "20.0%"
func FormatPercentage(p float64) string {
	s := strconv.FormatFloat(p, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s + "%"
}

// WriteFile creates or truncates filename and writes content to it
func WriteFile(filename, content string) error {
	if err := os.WriteFile(filename, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
