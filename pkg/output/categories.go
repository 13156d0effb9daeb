package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/sdejongh/sortnorris/pkg/classify"
)

type categoryDocument struct {
	Category   string   `json:"category"`
	Directory  string   `json:"directory"`
	Extensions []string `json:"extensions"`
}

// WriteCategories prints the extension table in declaration order.
// Format "json" emits a JSON array, anything else a rounded table.
func WriteCategories(w io.Writer, t classify.Table, format string) error {
	if format == "json" {
		docs := make([]categoryDocument, 0, len(t))
		for _, rule := range t {
			docs = append(docs, categoryDocument{
				Category:   string(rule.Category),
				Directory:  rule.Category.Dir(),
				Extensions: rule.Extensions,
			})
		}
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(docs)
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.Style().Format.Header = text.FormatDefault
	tw.AppendHeader(table.Row{"Category", "Extensions"})
	for _, rule := range t {
		tw.AppendRow(table.Row{rule.Category, joinExtensions(rule.Extensions)})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft},
		{Number: 2, Align: text.AlignLeft, WidthMax: 60, WidthMaxEnforcer: text.WrapSoft},
	})

	_, err := fmt.Fprintln(w, tw.Render())
	return err
}

// joinExtensions lists extensions comma-separated. Entries that are not
// plain alphanumerics are quoted so a literal "dmg," stays visible.
func joinExtensions(exts []string) string {
	parts := make([]string, len(exts))
	for i, ext := range exts {
		if isPlainExtension(ext) {
			parts[i] = ext
		} else {
			parts[i] = strconv.Quote(ext)
		}
	}
	return strings.Join(parts, ", ")
}

func isPlainExtension(ext string) bool {
	if ext == "" {
		return false
	}
	for _, r := range ext {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
