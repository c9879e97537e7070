package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"residencial-admin/internal/domain/report"
)

const (
	ContentTypeCSV  = "text/csv"
	ContentTypeText = "text/plain"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// EncodeDelimited renders rows as comma separated text: the header comes from the first row,
// every row is written in its own key order and there is no trailing newline.
func EncodeDelimited(rows []Row) ([]byte, error) {
	if len(rows) == 0 {
		return nil, nil
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(rows[0].Keys()); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	for i, row := range rows {
		if err := w.Write(row.Values()); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush: %w", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// EncodePlainText renders the human readable report followed by its full JSON form.
func EncodePlainText(r report.Report) ([]byte, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal report: %w", err)
	}

	var b strings.Builder
	b.WriteString(r.Title)
	b.WriteString("\nGenerado el: ")
	b.WriteString(r.GeneratedLabel())
	b.WriteString("\n\nRESUMEN:\n")
	for _, m := range r.Summary {
		fmt.Fprintf(&b, "%s: %d\n", m.Name, m.Count)
	}
	b.WriteString("\nDATOS:\n")
	b.Write(data)
	b.WriteByte('\n')
	return []byte(b.String()), nil
}

// TextFilename turns "Reporte de Pagos - Torres del Valle" into "Reporte_de_Pagos_-_Torres_del_Valle.txt".
func TextFilename(title string) string {
	return whitespaceRun.ReplaceAllString(title, "_") + ".txt"
}

// DelimitedBasename is the CSV name used by the report screens, e.g. "pagos_torres_del_valle".
func DelimitedBasename(kind report.Kind, building string) string {
	name := strings.ToLower(kind.Label() + " " + strings.TrimSpace(building))
	return whitespaceRun.ReplaceAllString(name, "_")
}

func shapeMatches(header []string, row Row) bool {
	if len(header) != len(row) {
		return false
	}
	for i, f := range row {
		if header[i] != f.Key {
			return false
		}
	}
	return true
}
