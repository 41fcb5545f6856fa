// Strict DOT parsing: full validation first, graph construction second.
package dot

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/graphein/core"
)

// Read parses DOT input into a graph. Parsing is strict: any malformed
// statement yields an error and no graph is returned, never a partial
// one. A weight edge attribute makes the graph weighted; other key=value
// pairs become registered user tags.
func Read(r io.Reader) (*core.Graph, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("dot: read: %w", err)
	}
	p := &parser{sc: newScanner(data), index: make(map[string]int)}
	if err := p.parse(); err != nil {
		return nil, err
	}
	return p.build()
}

type pattr struct {
	key, val string
	line     int
}

type pnode struct {
	id    string
	attrs []pattr
}

type pedge struct {
	from, to string
	attrs    []pattr
}

// parser accumulates the validated document before any graph exists.
type parser struct {
	sc  *scanner
	tok token

	directed bool
	name     string
	order    []string
	index    map[string]int
	nodes    []pnode
	edges    []pedge
	gattrs   []pattr
}

func (p *parser) advance() error {
	t, err := p.sc.next()
	if err != nil {
		return err
	}
	p.tok = t
	return nil
}

func (p *parser) expect(kind tokenKind, what string) error {
	if p.tok.kind != kind {
		return p.errf("expected %s", what)
	}
	return p.advance()
}

func (p *parser) errf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: line %d: %s", ErrSyntax, p.tok.line, fmt.Sprintf(format, args...))
}

func (p *parser) parse() error {
	if err := p.advance(); err != nil {
		return err
	}
	if p.tok.kind == tokID && strings.EqualFold(p.tok.text, "strict") {
		if err := p.advance(); err != nil {
			return err
		}
	}
	if p.tok.kind != tokID {
		return p.errf("expected graph or digraph")
	}
	switch strings.ToLower(p.tok.text) {
	case "graph":
		p.directed = false
	case "digraph":
		p.directed = true
	default:
		return p.errf("expected graph or digraph, got %q", p.tok.text)
	}
	if err := p.advance(); err != nil {
		return err
	}
	if p.tok.kind == tokID {
		p.name = p.tok.text
		if err := p.advance(); err != nil {
			return err
		}
	}
	if err := p.expect(tokLBrace, "'{'"); err != nil {
		return err
	}
	for p.tok.kind != tokRBrace {
		if p.tok.kind == tokEOF {
			return p.errf("unexpected end of input, missing '}'")
		}
		if err := p.statement(); err != nil {
			return err
		}
	}
	if err := p.advance(); err != nil { // consume '}'
		return err
	}
	if p.tok.kind != tokEOF {
		return p.errf("trailing input after '}'")
	}
	return nil
}

// statement parses one node, edge-chain, default-attribute, or
// assignment statement.
func (p *parser) statement() error {
	if p.tok.kind != tokID {
		return p.errf("expected a statement")
	}
	head := p.tok.text
	switch strings.ToLower(head) {
	case "node", "edge":
		// default-attribute statement: accepted, ignored
		if err := p.advance(); err != nil {
			return err
		}
		if _, err := p.attrLists(); err != nil {
			return err
		}
		return p.endStatement()
	case "graph":
		if err := p.advance(); err != nil {
			return err
		}
		attrs, err := p.attrLists()
		if err != nil {
			return err
		}
		p.gattrs = append(p.gattrs, attrs...)
		return p.endStatement()
	}
	if err := p.advance(); err != nil {
		return err
	}
	if p.tok.kind == tokEqual {
		// graph-level assignment: key = value
		if err := p.advance(); err != nil {
			return err
		}
		if p.tok.kind != tokID {
			return p.errf("expected a value after '='")
		}
		p.gattrs = append(p.gattrs, pattr{key: head, val: p.tok.text, line: p.tok.line})
		if err := p.advance(); err != nil {
			return err
		}
		return p.endStatement()
	}

	ids := []string{head}
	for p.tok.kind == tokUndirEdge || p.tok.kind == tokDirEdge {
		if p.directed != (p.tok.kind == tokDirEdge) {
			return fmt.Errorf("%w: line %d", ErrEdgeOp, p.tok.line)
		}
		if err := p.advance(); err != nil {
			return err
		}
		if p.tok.kind != tokID {
			return p.errf("expected a vertex after the edge operator")
		}
		ids = append(ids, p.tok.text)
		if err := p.advance(); err != nil {
			return err
		}
	}
	attrs, err := p.attrLists()
	if err != nil {
		return err
	}
	for _, id := range ids {
		p.ensure(id)
	}
	if len(ids) == 1 {
		p.nodes = append(p.nodes, pnode{id: ids[0], attrs: attrs})
	} else {
		for i := 0; i+1 < len(ids); i++ {
			p.edges = append(p.edges, pedge{from: ids[i], to: ids[i+1], attrs: attrs})
		}
	}
	return p.endStatement()
}

// attrLists parses zero or more bracket groups and merges them.
func (p *parser) attrLists() ([]pattr, error) {
	var out []pattr
	for p.tok.kind == tokLBracket {
		if err := p.advance(); err != nil {
			return nil, err
		}
		for p.tok.kind != tokRBracket {
			if p.tok.kind != tokID {
				return nil, p.errf("expected an attribute name")
			}
			key := p.tok.text
			line := p.tok.line
			if err := p.advance(); err != nil {
				return nil, err
			}
			if err := p.expect(tokEqual, "'='"); err != nil {
				return nil, err
			}
			if p.tok.kind != tokID {
				return nil, p.errf("expected a value for attribute %q", key)
			}
			out = append(out, pattr{key: key, val: p.tok.text, line: line})
			if err := p.advance(); err != nil {
				return nil, err
			}
			for p.tok.kind == tokComma || p.tok.kind == tokSemi {
				if err := p.advance(); err != nil {
					return nil, err
				}
			}
		}
		if err := p.advance(); err != nil { // consume ']'
			return nil, err
		}
	}
	return out, nil
}

// endStatement consumes optional semicolons.
func (p *parser) endStatement() error {
	for p.tok.kind == tokSemi {
		if err := p.advance(); err != nil {
			return err
		}
	}
	return nil
}

func (p *parser) ensure(id string) {
	if _, ok := p.index[id]; !ok {
		p.index[id] = len(p.order)
		p.order = append(p.order, id)
	}
}

// build materializes the graph after the whole document validated.
func (p *parser) build() (*core.Graph, error) {
	weighted := false
	for _, e := range p.edges {
		for _, a := range e.attrs {
			if a.key == "weight" {
				if _, err := strconv.ParseFloat(a.val, 64); err != nil {
					return nil, fmt.Errorf("%w: line %d: weight %q is not a number", ErrSyntax, a.line, a.val)
				}
				weighted = true
			}
		}
	}
	var opts []core.GraphOption
	if p.directed {
		opts = append(opts, core.WithDirected())
	}
	if weighted {
		opts = append(opts, core.WithWeighted())
	}
	if p.name != "" {
		opts = append(opts, core.WithName(p.name))
	}
	g, err := core.NewFromLabels(p.order, opts...)
	if err != nil {
		return nil, err
	}
	for _, a := range p.gattrs {
		g.SetGraphAttribute(g.RegisterTag(a.key), parseValue(a.val))
	}
	for _, nd := range p.nodes {
		i := p.index[nd.id]
		for _, a := range nd.attrs {
			g.SetVertexAttribute(i, g.RegisterTag(a.key), parseValue(a.val))
		}
	}
	for _, e := range p.edges {
		i, j := p.index[e.from], p.index[e.to]
		w := 1.0
		for _, a := range e.attrs {
			if a.key == "weight" {
				w, _ = strconv.ParseFloat(a.val, 64) // validated above
			}
		}
		g.AddEdgeIndex(i, j, w)
		for _, a := range e.attrs {
			if a.key == "weight" {
				continue
			}
			if err := g.SetEdgeAttribute(i, j, g.RegisterTag(a.key), parseValue(a.val)); err != nil {
				return nil, err
			}
		}
	}
	return g, nil
}

// parseValue maps DOT attribute text onto the tagged value variants.
func parseValue(s string) core.Value {
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return core.Number(f)
	}
	switch s {
	case "true":
		return core.Bool(true)
	case "false":
		return core.Bool(false)
	}
	return core.Str(s)
}
