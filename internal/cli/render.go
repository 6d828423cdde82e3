package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/charmbracelet/glamour"
)

// renderer prints one command result either as JSON or as a markdown document.
type renderer struct {
	out   io.Writer
	json  bool
	plain bool
	query string
}

// emit writes v. The markdown callback is only invoked for table output.
func (r renderer) emit(v any, markdown func() string) error {
	if r.query != "" {
		return r.emitQuery(v)
	}
	if r.json {
		return r.emitJSON(v)
	}

	doc := markdown()
	if r.plain {
		_, err := io.WriteString(r.out, doc)
		return err
	}
	tr, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err != nil {
		return fmt.Errorf("creating markdown renderer: %w", err)
	}
	styled, err := tr.Render(doc)
	if err != nil {
		return fmt.Errorf("rendering markdown: %w", err)
	}
	_, err = io.WriteString(r.out, styled)
	return err
}

func (r renderer) emitJSON(v any) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// emitQuery evaluates the JSONPath expression against the JSON form of v.
func (r renderer) emitQuery(v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return err
	}
	result, err := jsonpath.Get(r.query, doc)
	if err != nil {
		return fmt.Errorf("evaluating query %q: %w", r.query, err)
	}
	if s, ok := result.(string); ok {
		_, err = fmt.Fprintln(r.out, s)
		return err
	}
	return r.emitJSON(result)
}

// table renders a GitHub flavoured markdown table.
func table(headers []string, rows [][]string) string {
	var b strings.Builder
	writeRow := func(cells []string) {
		b.WriteString("|")
		for _, cell := range cells {
			b.WriteString(" ")
			b.WriteString(strings.ReplaceAll(cell, "|", `\|`))
			b.WriteString(" |")
		}
		b.WriteString("\n")
	}
	writeRow(headers)
	sep := make([]string, len(headers))
	for i := range sep {
		sep[i] = "---"
	}
	writeRow(sep)
	for _, row := range rows {
		writeRow(row)
	}
	return b.String()
}

func heading(title string) string {
	return "## " + title + "\n\n"
}
