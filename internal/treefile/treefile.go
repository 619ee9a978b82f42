// Package treefile reads and writes expression trees in an indentation based
// text format: one node per line, four spaces per depth level.
//
//	PRODUIT
//	    IMPLIQUE
//	        PROP p1
//	        PROP p2
//	    OR
//	        NOT
//	            PROP p1
//	        PROP p2
package treefile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/DjordjeVuckovic/proplogic/internal/ast"
)

const indent = "    "

var keywords = map[string]ast.Kind{
	"PROP":     ast.Prop,
	"AND":      ast.And,
	"OR":       ast.Or,
	"NOT":      ast.Not,
	"IMPLIQUE": ast.Implies,
	"PRODUIT":  ast.Product,
}

// FormatError points at the offending line, 1-based.
type FormatError struct {
	Line int
	Msg  string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("tree file line %d: %s", e.Line, e.Msg)
}

func Write(w io.Writer, n *ast.Node) error {
	bw := bufio.NewWriter(w)
	if err := write(bw, n, 0); err != nil {
		return err
	}
	return bw.Flush()
}

func write(w *bufio.Writer, n *ast.Node, depth int) error {
	if n == nil {
		return fmt.Errorf("missing operand at depth %d", depth)
	}
	if !n.Kind.Valid() {
		return fmt.Errorf("unknown node type %d", n.Kind)
	}

	w.WriteString(strings.Repeat(indent, depth))
	w.WriteString(n.Kind.String())
	if n.Kind == ast.Prop {
		w.WriteByte(' ')
		w.WriteString(n.Name)
	}
	w.WriteByte('\n')

	for _, child := range operands(n) {
		if err := write(w, child, depth+1); err != nil {
			return err
		}
	}
	return nil
}

func operands(n *ast.Node) []*ast.Node {
	switch {
	case n.Kind == ast.Not:
		return []*ast.Node{n.Left}
	case n.Kind.Binary():
		return []*ast.Node{n.Left, n.Right}
	default:
		return nil
	}
}

func WriteFile(path string, n *ast.Node) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create tree file: %w", err)
	}
	defer f.Close()

	if err := Write(f, n); err != nil {
		return fmt.Errorf("failed to write tree file: %w", err)
	}
	return f.Close()
}

type line struct {
	num   int
	depth int
	text  string
}

type reader struct {
	lines []line
	pos   int
}

// Read parses a whole tree. Blank lines are ignored; everything else must
// belong to the single root node.
func Read(r io.Reader) (*ast.Node, error) {
	var lines []line

	sc := bufio.NewScanner(r)
	num := 0
	for sc.Scan() {
		num++
		raw := strings.TrimRight(sc.Text(), " \t\r")
		if raw == "" {
			continue
		}
		body := strings.TrimLeft(raw, " ")
		spaces := len(raw) - len(body)
		if spaces%len(indent) != 0 || strings.HasPrefix(body, "\t") {
			return nil, &FormatError{Line: num, Msg: "indentation is not a multiple of four spaces"}
		}
		lines = append(lines, line{num: num, depth: spaces / len(indent), text: body})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read tree file: %w", err)
	}
	if len(lines) == 0 {
		return nil, &FormatError{Line: num, Msg: "empty tree"}
	}

	rd := &reader{lines: lines}
	root, err := rd.node(0)
	if err != nil {
		return nil, err
	}
	if rd.pos < len(lines) {
		return nil, &FormatError{Line: lines[rd.pos].num, Msg: "unexpected line after tree end"}
	}
	return root, nil
}

func (r *reader) node(depth int) (*ast.Node, error) {
	if r.pos >= len(r.lines) {
		last := r.lines[len(r.lines)-1].num
		return nil, &FormatError{Line: last, Msg: fmt.Sprintf("missing operand at depth %d", depth)}
	}

	l := r.lines[r.pos]
	if l.depth != depth {
		if l.depth < depth {
			return nil, &FormatError{Line: l.num, Msg: fmt.Sprintf("missing operand at depth %d", depth)}
		}
		return nil, &FormatError{Line: l.num, Msg: fmt.Sprintf("expected depth %d, got %d", depth, l.depth)}
	}
	r.pos++

	fields := strings.Fields(l.text)
	kind, ok := keywords[fields[0]]
	if !ok {
		return nil, &FormatError{Line: l.num, Msg: fmt.Sprintf("unknown keyword %q", fields[0])}
	}

	if kind == ast.Prop {
		if len(fields) != 2 {
			return nil, &FormatError{Line: l.num, Msg: "PROP needs exactly one name"}
		}
		return ast.NewProp(fields[1]), nil
	}
	if len(fields) != 1 {
		return nil, &FormatError{Line: l.num, Msg: fmt.Sprintf("%s takes no argument", fields[0])}
	}

	left, err := r.node(depth + 1)
	if err != nil {
		return nil, err
	}
	if kind == ast.Not {
		return ast.NewNot(left), nil
	}
	right, err := r.node(depth + 1)
	if err != nil {
		return nil, err
	}
	return ast.NewBinary(kind, left, right), nil
}

func ReadFile(path string) (*ast.Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open tree file: %w", err)
	}
	defer f.Close()

	return Read(f)
}
