package report

import (
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"gopkg.in/yaml.v3"
)

const (
	FormatTable = "table"
	FormatHTML  = "html"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// Renderer writes tables in one output format.
type Renderer interface {
	Render(w io.Writer, tables ...*Table) error
}

func NewRenderer(format string) (Renderer, error) {
	switch format {
	case FormatTable, "":
		return ASCIIRenderer{}, nil
	case FormatHTML:
		return HTMLRenderer{}, nil
	case FormatJSON:
		return JSONRenderer{}, nil
	case FormatYAML:
		return YAMLRenderer{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

type ASCIIRenderer struct{}

func (ASCIIRenderer) Render(w io.Writer, tables ...*Table) error {
	for i, t := range tables {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, t.Title()); err != nil {
			return err
		}
		if t.NumRows() > 0 {
			if _, err := fmt.Fprintln(w, ASCII(t)); err != nil {
				return err
			}
		}
		for _, line := range t.Summary {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
	}
	return nil
}

// ASCII renders the table body as left-aligned columns with hidden borders.
func ASCII(t *Table) string {
	headerStyle := lipgloss.NewStyle().Bold(true).PaddingRight(2)
	cellStyle := lipgloss.NewStyle().PaddingRight(2)

	tbl := table.New().
		BorderBottom(false).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(t.Headers...).
		BorderHeader(false).
		Rows(t.Rows...)

	return tbl.String()
}

var htmlTemplate = template.Must(template.New("report").Parse(
	`<html><body>{{range .}}<h3>{{.Title}}</h3><table><thead><tr>{{range .Headers}}<th>{{.}}</th>{{end}}</tr></thead><tbody>{{range .Rows}}<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>{{end}}</tbody></table>{{range .Summary}}<p>{{.}}</p>{{end}}{{end}}</body></html>`,
))

type HTMLRenderer struct{}

func (HTMLRenderer) Render(w io.Writer, tables ...*Table) error {
	return htmlTemplate.Execute(w, tables)
}

// HTML renders a standalone HTML document for tables, as used for email.
func HTML(tables ...*Table) (string, error) {
	var sb strings.Builder
	if err := (HTMLRenderer{}).Render(&sb, tables...); err != nil {
		return "", err
	}
	return sb.String(), nil
}

type document struct {
	Service string              `json:"service" yaml:"service"`
	Title   string              `json:"title" yaml:"title"`
	Records []map[string]string `json:"records" yaml:"records"`
	Summary []string            `json:"summary,omitempty" yaml:"summary,omitempty"`
}

func documents(tables []*Table) []document {
	docs := make([]document, 0, len(tables))
	for _, t := range tables {
		docs = append(docs, document{
			Service: t.Service,
			Title:   t.Title(),
			Records: t.Records(),
			Summary: t.Summary,
		})
	}
	return docs
}

type JSONRenderer struct{}

func (JSONRenderer) Render(w io.Writer, tables ...*Table) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(documents(tables))
}

type YAMLRenderer struct{}

func (YAMLRenderer) Render(w io.Writer, tables ...*Table) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(documents(tables)); err != nil {
		return err
	}
	return enc.Close()
}
