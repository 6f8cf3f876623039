package ui

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"staffdeck/internal/model"
)

// fieldOrder pins the inspector's key order to the grid's column order so
// the record reads top to bottom like the row reads left to right.
var fieldOrder = []string{
	"id", "firstName", "lastName", "gender", "birthDate", "age",
	"jobTitle", "phone", "email", "address", "city", "country",
}

// colorizeUser renders the derived record as pretty-printed colored JSON.
func colorizeUser(u model.DerivedUser, st Styles) string {
	raw, err := json.Marshal(u)
	if err != nil {
		return err.Error()
	}
	var obj map[string]any
	if err := json.Unmarshal(raw, &obj); err != nil {
		return err.Error()
	}
	var b strings.Builder
	renderJSON(&b, obj, st, 0)
	return b.String()
}

func orderedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	seen := map[string]bool{}
	for _, k := range fieldOrder {
		if _, ok := m[k]; ok {
			keys = append(keys, k)
			seen[k] = true
		}
	}
	rest := make([]string, 0, len(m))
	for k := range m {
		if !seen[k] {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	return append(keys, rest...)
}

func renderJSON(b *strings.Builder, v any, st Styles, indent int) {
	ind := strings.Repeat("  ", indent)
	switch t := v.(type) {
	case map[string]any:
		keys := orderedKeys(t)
		b.WriteString(st.JSONPunct.Render("{"))
		if len(keys) > 0 {
			b.WriteString("\n")
		}
		for i, k := range keys {
			b.WriteString(ind)
			b.WriteString("  ")
			b.WriteString(st.JSONKey.Render("\"" + escapeString(k) + "\""))
			b.WriteString(st.JSONPunct.Render(": "))
			renderJSON(b, t[k], st, indent+1)
			if i < len(keys)-1 {
				b.WriteString(st.JSONPunct.Render(","))
			}
			b.WriteString("\n")
		}
		b.WriteString(ind)
		b.WriteString(st.JSONPunct.Render("}"))
	case []any:
		b.WriteString(st.JSONPunct.Render("["))
		if len(t) > 0 {
			b.WriteString("\n")
		}
		for i, it := range t {
			b.WriteString(ind)
			b.WriteString("  ")
			renderJSON(b, it, st, indent+1)
			if i < len(t)-1 {
				b.WriteString(st.JSONPunct.Render(","))
			}
			b.WriteString("\n")
		}
		b.WriteString(ind)
		b.WriteString(st.JSONPunct.Render("]"))
	case string:
		b.WriteString(st.JSONString.Render("\"" + escapeString(t) + "\""))
	case float64:
		b.WriteString(st.JSONNumber.Render(trimFloat(t)))
	case bool:
		if t {
			b.WriteString(st.JSONBool.Render("true"))
		} else {
			b.WriteString(st.JSONBool.Render("false"))
		}
	case nil:
		b.WriteString(st.JSONNull.Render("null"))
	default:
		b.WriteString(st.JSONString.Render(fmt.Sprint(t)))
	}
}

func trimFloat(f float64) string {
	if f == float64(int64(f)) {
		return fmt.Sprintf("%.0f", f)
	}
	return fmt.Sprintf("%g", f)
}

func escapeString(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	return s
}
