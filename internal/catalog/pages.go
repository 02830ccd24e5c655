package catalog

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var pageNames = map[string]string{
	"about":         "About",
	"advisoryboard": "Advisory Board",
	"references":    "References",
}

// PageName returns the display name of an informational page.
func PageName(viewname string) string {
	if name, ok := pageNames[viewname]; ok {
		return name
	}

	return cases.Title(language.Und).String(viewname)
}

// RenderPage replaces {name} placeholders in raw with values. "{{" and "}}"
// produce literal braces. When any placeholder is unknown or a brace is
// unbalanced, raw is returned unchanged and ok is false.
func RenderPage(raw string, values map[string]string) (rendered string, ok bool) {
	var b strings.Builder
	b.Grow(len(raw))

	for i := 0; i < len(raw); i++ {
		switch raw[i] {
		case '{':
			if i+1 < len(raw) && raw[i+1] == '{' {
				b.WriteByte('{')
				i++

				continue
			}

			end := strings.IndexByte(raw[i+1:], '}')
			if end < 0 {
				return raw, false
			}

			value, found := values[raw[i+1:i+1+end]]
			if !found {
				return raw, false
			}

			b.WriteString(value)
			i += end + 1
		case '}':
			if i+1 < len(raw) && raw[i+1] == '}' {
				b.WriteByte('}')
				i++

				continue
			}

			return raw, false
		default:
			b.WriteByte(raw[i])
		}
	}

	return b.String(), true
}
