package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleTable() *Table {
	t := NewTable("EC2", "Region", "Name", "State")
	t.Caption = "EC2: 2 running instances"
	t.AddRow("US-EAST-1", "web", "RUNNING")
	t.AddRow("EU-WEST-1", "<script>", "RUNNING")
	t.AddSummary("** Total monthly price for all instances in USD: %.2f", 12.5)
	return t
}

func TestTable_AddRowPads(t *testing.T) {
	tbl := NewTable("EBS", "A", "B", "C")
	tbl.AddRow("1")
	tbl.AddRow("1", "2", "3", "4")

	assert.Equal(t, []string{"1", "", ""}, tbl.Rows[0])
	assert.Equal(t, []string{"1", "2", "3"}, tbl.Rows[1])
	assert.Equal(t, 2, tbl.NumRows())
}

func TestTable_Title(t *testing.T) {
	tbl := NewTable("S3", "Bucket")
	assert.Equal(t, "S3: 0 rows", tbl.Title())
	tbl.Caption = "S3 buckets"
	assert.Equal(t, "S3 buckets", tbl.Title())
}

func TestASCIIRenderer(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ASCIIRenderer{}.Render(&buf, sampleTable(), NewTable("RDS", "Region")))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "EC2: 2 running instances\n"))
	for _, want := range []string{"Region", "US-EAST-1", "EU-WEST-1", "<script>", "Total monthly price for all instances in USD: 12.50", "RDS: 0 rows"} {
		assert.Contains(t, out, want)
	}
	for _, rule := range []string{"│", "─", "┼", "|"} {
		assert.NotContains(t, out, rule)
	}
}

func TestHTML(t *testing.T) {
	body, err := HTML(sampleTable())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(body, "<html><body>"))
	assert.True(t, strings.HasSuffix(body, "</body></html>"))
	assert.Contains(t, body, "<th>Region</th><th>Name</th><th>State</th>")
	assert.Contains(t, body, "<tr><td>US-EAST-1</td><td>web</td><td>RUNNING</td></tr>")
	assert.Contains(t, body, "&lt;script&gt;")
	assert.NotContains(t, body, "<script>")
}

func TestJSONRenderer(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSONRenderer{}.Render(&buf, sampleTable()))

	var docs []document
	require.NoError(t, json.Unmarshal(buf.Bytes(), &docs))
	require.Len(t, docs, 1)
	assert.Equal(t, "EC2", docs[0].Service)
	assert.Equal(t, "web", docs[0].Records[0]["Name"])
	assert.Len(t, docs[0].Summary, 1)
}

func TestYAMLRenderer(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, YAMLRenderer{}.Render(&buf, sampleTable()))

	var docs []document
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &docs))
	require.Len(t, docs, 1)
	assert.Equal(t, "EU-WEST-1", docs[0].Records[1]["Region"])
}

func TestNewRenderer(t *testing.T) {
	for _, format := range []string{"", FormatTable, FormatHTML, FormatJSON, FormatYAML} {
		r, err := NewRenderer(format)
		require.NoError(t, err, format)
		assert.NotNil(t, r)
	}

	_, err := NewRenderer("csv")
	assert.EqualError(t, err, "unsupported output format: csv")
}

func TestPrinter_Stdout(t *testing.T) {
	var out bytes.Buffer
	p := NewPrinter(afero.NewMemMapFs(), &out)

	require.NoError(t, p.Print(Options{Format: FormatJSON}, sampleTable()))
	assert.Contains(t, out.String(), `"service": "EC2"`)
}

func TestPrinter_File(t *testing.T) {
	fs := afero.NewMemMapFs()
	var out bytes.Buffer
	p := NewPrinter(fs, &out)

	require.NoError(t, p.Print(Options{Format: FormatHTML, File: "/reports/ec2.html"}, sampleTable()))

	data, err := afero.ReadFile(fs, "/reports/ec2.html")
	require.NoError(t, err)
	assert.Contains(t, string(data), "<td>US-EAST-1</td>")
	assert.Equal(t, "Report written to /reports/ec2.html\n", out.String())
}

func TestPrinter_BadFormat(t *testing.T) {
	p := NewPrinter(afero.NewMemMapFs(), &bytes.Buffer{})
	assert.Error(t, p.Print(Options{Format: "xml"}, sampleTable()))
}
