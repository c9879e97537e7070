package report

import (
	"bytes"
	"encoding/json"

	"residencial-admin/internal/pkg/civil"
)

type Metric struct {
	Name  string
	Count int
}

// Summary keeps metrics in insertion order, which is also the JSON and text order.
type Summary []Metric

func (s Summary) Get(name string) (int, bool) {
	for _, m := range s {
		if m.Name == name {
			return m.Count, true
		}
	}
	return 0, false
}

func (s Summary) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, m := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(m.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		count, err := json.Marshal(m.Count)
		if err != nil {
			return nil, err
		}
		buf.Write(count)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

type Report struct {
	Title       string
	GeneratedAt civil.Date
	Summary     Summary
	Detail      Collection
}

func (r Report) Kind() Kind {
	if r.Detail == nil {
		return ""
	}
	return r.Detail.Kind()
}

// GeneratedLabel is the date as printed on the report, e.g. "19 de octubre de 2026".
func (r Report) GeneratedLabel() string {
	return r.GeneratedAt.LongLabel()
}

// MarshalJSON emits {"title","generatedAt","summary","<kind>"} in that order.
func (r Report) MarshalJSON() ([]byte, error) {
	fields := []struct {
		key   string
		value any
	}{
		{"title", r.Title},
		{"generatedAt", r.GeneratedLabel()},
		{"summary", r.Summary},
	}
	if r.Detail != nil {
		var detail any = r.Detail
		if r.Detail.Len() == 0 {
			detail = []struct{}{}
		}
		fields = append(fields, struct {
			key   string
			value any
		}{string(r.Detail.Kind()), detail})
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		value, err := json.Marshal(f.value)
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
