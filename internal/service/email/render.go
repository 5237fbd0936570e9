package email

import (
	"fmt"
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/istpublications/intake-backend/internal/domain"
)

// Render substitutes every {name} placeholder in the template's subject,
// HTML body, and optional text body with vars[name]. "{{" and "}}" produce
// literal braces. A placeholder with no entry in vars fails with
// *domain.MissingVariableError; nothing is ever replaced with "".
func Render(t *domain.EmailTemplate, vars map[string]string) (domain.RenderedEmail, error) {
	subject, err := renderPattern(t.Subject, vars)
	if err != nil {
		return domain.RenderedEmail{}, fmt.Errorf("render subject: %w", err)
	}

	body, err := renderPattern(t.BodyHTML, vars)
	if err != nil {
		return domain.RenderedEmail{}, fmt.Errorf("render html body: %w", err)
	}

	out := domain.RenderedEmail{Subject: subject, BodyHTML: body}
	if t.BodyText != nil {
		text, err := renderPattern(*t.BodyText, vars)
		if err != nil {
			return domain.RenderedEmail{}, fmt.Errorf("render text body: %w", err)
		}
		out.BodyText = &text
	}
	return out, nil
}

func renderPattern(pattern string, vars map[string]string) (string, error) {
	var b strings.Builder
	b.Grow(len(pattern))

	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		switch {
		case c == '{' && i+1 < len(pattern) && pattern[i+1] == '{':
			b.WriteByte('{')
			i++
		case c == '}' && i+1 < len(pattern) && pattern[i+1] == '}':
			b.WriteByte('}')
			i++
		case c == '{':
			end := strings.IndexByte(pattern[i+1:], '}')
			if end < 0 {
				return "", fmt.Errorf("unterminated placeholder at offset %d", i)
			}
			name := strings.TrimSpace(pattern[i+1 : i+1+end])
			if name == "" || strings.ContainsRune(name, '{') {
				return "", fmt.Errorf("malformed placeholder at offset %d", i)
			}
			val, ok := vars[name]
			if !ok {
				return "", &domain.MissingVariableError{Name: name}
			}
			b.WriteString(val)
			i += end + 1
		default:
			b.WriteByte(c)
		}
	}
	return b.String(), nil
}

var textPolicy = bluemonday.StrictPolicy()

// PlainText derives a text/plain body from rendered HTML: tags are stripped,
// entities decoded, and runs of blank lines collapsed.
func PlainText(body string) string {
	// Block-level closers become line breaks before the tags are dropped.
	r := strings.NewReplacer("</p>", "</p>\n", "<br>", "<br>\n", "<br/>", "<br/>\n", "<br />", "<br />\n",
		"</h1>", "</h1>\n", "</h2>", "</h2>\n", "</h3>", "</h3>\n", "</li>", "</li>\n", "</div>", "</div>\n")
	stripped := html.UnescapeString(textPolicy.Sanitize(r.Replace(body)))

	lines := strings.Split(stripped, "\n")
	out := make([]string, 0, len(lines))
	blank := false
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			if !blank && len(out) > 0 {
				out = append(out, "")
			}
			blank = true
			continue
		}
		out = append(out, line)
		blank = false
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}
