// DOT emission, shaped to read back as an equal graph.
package dot

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/graphein/core"
)

// Write emits g in the subset Read accepts: graph attributes, vertex
// statements in index order, then edge statements. Reading the output
// back produces a graph equal to g (core.Equal).
func Write(w io.Writer, g *core.Graph) error {
	if g == nil {
		return fmt.Errorf("dot: write: graph is nil")
	}
	var b strings.Builder
	kind, op := "graph", "--"
	if g.Directed() {
		kind, op = "digraph", "->"
	}
	b.WriteString(kind)
	if name := g.Name(); name != "" {
		b.WriteByte(' ')
		b.WriteString(quote(name))
	}
	b.WriteString(" {\n")

	for _, tag := range g.Tags() {
		key, err := g.TagKey(tag)
		if err != nil {
			return err
		}
		if v, ok := g.GraphAttribute(key); ok {
			fmt.Fprintf(&b, "\t%s=%s;\n", quote(tag), formatValue(v))
		}
	}
	for i := 0; i < g.VertexCount(); i++ {
		b.WriteByte('\t')
		b.WriteString(quote(g.Label(i)))
		if attrs := tagAttrs(g, g.VertexAttributes(i)); attrs != "" {
			b.WriteString(" [")
			b.WriteString(attrs)
			b.WriteByte(']')
		}
		b.WriteString(";\n")
	}
	for _, e := range g.Edges() {
		b.WriteByte('\t')
		b.WriteString(quote(g.Label(e.From)))
		b.WriteByte(' ')
		b.WriteString(op)
		b.WriteByte(' ')
		b.WriteString(quote(g.Label(e.To)))
		var parts []string
		if g.Weighted() {
			w, err := g.Weight(e.From, e.To)
			if err != nil {
				return err
			}
			parts = append(parts, "weight="+strconv.FormatFloat(w, 'g', -1, 64))
		}
		attrs, err := g.EdgeAttributes(e.From, e.To)
		if err != nil {
			return err
		}
		if s := tagAttrs(g, attrs); s != "" {
			parts = append(parts, s)
		}
		if len(parts) > 0 {
			b.WriteString(" [")
			b.WriteString(strings.Join(parts, ", "))
			b.WriteByte(']')
		}
		b.WriteString(";\n")
	}
	b.WriteString("}\n")
	_, err := io.WriteString(w, b.String())
	return err
}

// tagAttrs renders the user-tag attributes of one attribute map, in tag
// registration order.
func tagAttrs(g *core.Graph, attrs core.Attrib) string {
	var parts []string
	for _, tag := range g.Tags() {
		key, err := g.TagKey(tag)
		if err != nil {
			continue
		}
		if v, ok := attrs[key]; ok {
			parts = append(parts, quote(tag)+"="+formatValue(v))
		}
	}
	return strings.Join(parts, ", ")
}

// formatValue renders a tagged value as a DOT-safe token.
func formatValue(v core.Value) string {
	if f, ok := v.AsNumber(); ok {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	if bv, ok := v.AsBool(); ok {
		if bv {
			return "true"
		}
		return "false"
	}
	if s, ok := v.AsString(); ok {
		return quote(s)
	}
	return quote(v.String())
}

// quote wraps s in quotes unless it is a bare identifier or numeral.
func quote(s string) string {
	if bareOK(s) {
		return s
	}
	var b strings.Builder
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		if s[i] == '"' || s[i] == '\\' {
			b.WriteByte('\\')
		}
		b.WriteByte(s[i])
	}
	b.WriteByte('"')
	return b.String()
}

func bareOK(s string) bool {
	if s == "" {
		return false
	}
	if isNumeral(s) {
		return true
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		alpha := c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
		if i == 0 && !alpha {
			return false
		}
		if !alpha && !isDigit(c) {
			return false
		}
	}
	// bare keywords would change the statement's meaning when read back
	switch strings.ToLower(s) {
	case "graph", "digraph", "strict", "node", "edge":
		return false
	}
	return true
}

func isNumeral(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil && s[0] != '+' && !strings.ContainsAny(s, "eExX")
}

// ReadFile parses the DOT file at path.
func ReadFile(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dot: open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}

// WriteFile writes g as DOT to path, creating or truncating the file.
func WriteFile(path string, g *core.Graph) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("dot: create %s: %w", path, err)
	}
	if err := Write(f, g); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
