package export

import (
	"encoding"
	"fmt"
	"strconv"

	"residencial-admin/internal/domain/report"
)

// Field is one key/value cell of a flat record.
type Field struct {
	Key   string
	Value any
}

// Row keeps the key order of the record it was built from.
type Row []Field

func (r Row) Keys() []string {
	keys := make([]string, len(r))
	for i, f := range r {
		keys[i] = f.Key
	}
	return keys
}

func (r Row) Values() []string {
	values := make([]string, len(r))
	for i, f := range r {
		values[i] = stringify(f.Value)
	}
	return values
}

// ToRows flattens a report collection in the column order of its JSON form.
func ToRows(c report.Collection) []Row {
	switch records := c.(type) {
	case report.Payments:
		rows := make([]Row, 0, len(records))
		for _, p := range records {
			row := Row{
				{"id", p.ID},
				{"date", p.Date},
				{"apartment", p.Apartment},
				{"owner", p.Owner},
				{"concept", p.Concept},
				{"amount", p.Amount},
				{"status", p.Status},
				{"method", p.Method},
				{"month", p.Month},
			}
			if p.Description != "" {
				row = append(row, Field{"description", p.Description})
			}
			if p.DueDate != "" {
				row = append(row, Field{"dueDate", p.DueDate})
			}
			rows = append(rows, row)
		}
		return rows
	case report.Users:
		rows := make([]Row, 0, len(records))
		for _, u := range records {
			rows = append(rows, Row{
				{"id", u.ID},
				{"name", u.Name},
				{"apartment", u.Apartment},
				{"email", u.Email},
				{"phone", u.Phone},
				{"status", u.Status},
				{"role", u.Role},
				{"balance", u.Balance},
			})
		}
		return rows
	case report.Reservations:
		rows := make([]Row, 0, len(records))
		for _, r := range records {
			row := Row{
				{"id", r.ID},
				{"date", r.Date},
				{"time", r.Time},
				{"apartment", r.Apartment},
				{"owner", r.Owner},
				{"event", r.Event},
				{"status", r.Status},
				{"attendees", r.Attendees},
			}
			if r.Description != "" {
				row = append(row, Field{"description", r.Description})
			}
			rows = append(rows, row)
		}
		return rows
	default:
		return nil
	}
}

func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	case encoding.TextMarshaler:
		b, err := t.MarshalText()
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(b)
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(v)
	}
}
