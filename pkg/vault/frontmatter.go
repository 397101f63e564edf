package vault

import (
	"bytes"
	"strings"

	"gopkg.in/yaml.v3"
)

// marshalFrontmatter renders a fenced YAML frontmatter block followed by
// a blank line and the body.
func marshalFrontmatter(fields interface{}, body string) ([]byte, error) {
	data, err := yaml.Marshal(fields)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteString("---\n")
	buf.Write(data)
	buf.WriteString("---\n\n")
	buf.WriteString(body)
	return buf.Bytes(), nil
}

// splitFrontmatter separates a fenced YAML frontmatter block from the
// body. Files without a frontmatter fence yield a nil block and the
// whole input as body.
func splitFrontmatter(data []byte) ([]byte, string) {
	s := string(data)
	if !strings.HasPrefix(s, "---\n") {
		return nil, s
	}

	rest := s[4:]
	idx := strings.Index(rest, "\n---")
	if idx < 0 {
		return nil, s
	}

	front := rest[:idx+1]
	body := strings.TrimLeft(rest[idx+4:], "\n")
	return []byte(front), body
}
