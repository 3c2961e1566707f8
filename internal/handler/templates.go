package handler

import (
	"html/template"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

var funcs = template.FuncMap{
	// 100000 -> "100.000", id-ID grouping
	"rupiah": func(v float64) string {
		digits := strconv.FormatInt(int64(v), 10)
		neg := strings.HasPrefix(digits, "-")
		if neg {
			digits = digits[1:]
		}
		var b strings.Builder
		for i, d := range digits {
			if i > 0 && (len(digits)-i)%3 == 0 {
				b.WriteByte('.')
			}
			b.WriteRune(d)
		}
		if neg {
			return "-" + b.String()
		}
		return b.String()
	},
	"formatDate": func(s string) string {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			if len(s) >= 10 {
				return s[:10]
			}
			return s
		}
		return t.Format("02 Jan 2006 15:04")
	},
}

func parsePage(dir, page string) *template.Template {
	return template.Must(template.New(page).Funcs(funcs).ParseFiles(
		filepath.Join(dir, "navbar.html"),
		filepath.Join(dir, page),
	))
}
