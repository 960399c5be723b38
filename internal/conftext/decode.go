package conftext

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/joshuapare/confkit/pkg/conftree"
)

var (
	// ErrMalformedSection is returned for a bad section header.
	ErrMalformedSection = errors.New("malformed section")

	// ErrMalformedLine is returned for a line that is neither a section,
	// an assignment nor a comment.
	ErrMalformedLine = errors.New("malformed line")

	// ErrUnterminatedString is returned for a quoted value without its
	// closing quote.
	ErrUnterminatedString = errors.New("unterminated string")
)

// SyntaxError locates a parse failure.
type SyntaxError struct {
	Line int
	Err  error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("conftext: line %d: %v", e.Line, e.Err)
}

func (e *SyntaxError) Unwrap() error { return e.Err }

// DecodeOptions controls Decode.
type DecodeOptions struct {
	// InputEncoding is used when the data carries no byte order mark.
	// One of "", "UTF-8", "UTF-16LE", "WINDOWS-1252".
	InputEncoding string

	// Limits, when set, is checked against the whole tree after decoding.
	Limits *conftree.Limits
}

// Decode parses data into root. Existing content of root is kept and merged
// with what the data describes.
func Decode(data []byte, root *conftree.Node, opts DecodeOptions) error {
	r, err := decodingReader(data, opts.InputEncoding)
	if err != nil {
		return err
	}

	scanner := bufio.NewScanner(r)
	buf := make([]byte, 0, ScannerInitialBufferSize)
	scanner.Buffer(buf, ScannerMaxLineSize)

	b := newBuilder(root)
	current := root
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(strings.TrimRight(scanner.Text(), CR))
		if line == "" || strings.HasPrefix(line, CommentPrefix) || strings.HasPrefix(line, HashCommentPrefix) {
			continue
		}

		if strings.HasPrefix(line, SectionOpen) {
			segments, err := parseSection(line)
			if err != nil {
				return &SyntaxError{Line: lineNo, Err: err}
			}
			current = b.section(segments)
			continue
		}

		name, value, err := parseAssignment(line)
		if err != nil {
			return &SyntaxError{Line: lineNo, Err: err}
		}
		current.SetLeaf(name, value)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("conftext: scanning input: %w", err)
	}

	if opts.Limits != nil {
		if err := conftree.Validate(root, *opts.Limits); err != nil {
			return err
		}
	}
	return nil
}

// builder resolves section paths to nodes. Nodes it created itself are
// tracked so their children can be made with CreateNode: every child of such
// a node was created by the builder and recorded in seen, so a path missing
// from seen cannot exist under it.
type builder struct {
	root  *conftree.Node
	seen  map[string]*conftree.Node
	fresh map[*conftree.Node]bool
}

func newBuilder(root *conftree.Node) *builder {
	return &builder{
		root:  root,
		seen:  make(map[string]*conftree.Node),
		fresh: make(map[*conftree.Node]bool),
	}
}

func (b *builder) section(segments []string) *conftree.Node {
	cur := b.root
	for i, seg := range segments {
		key := strings.Join(segments[:i+1], SectionSeparator)
		if n, ok := b.seen[key]; ok {
			cur = n
			continue
		}
		if b.fresh[cur] {
			cur = cur.CreateNode(seg)
			b.fresh[cur] = true
		} else {
			before := cur.NodeCount()
			child := cur.AddNode(seg)
			if cur.NodeCount() > before {
				b.fresh[child] = true
			}
			cur = child
		}
		b.seen[key] = cur
	}
	return cur
}

func parseSection(line string) ([]string, error) {
	if !strings.HasSuffix(line, SectionClose) {
		return nil, fmt.Errorf("%w: %q", ErrMalformedSection, line)
	}
	inner := strings.TrimSuffix(strings.TrimPrefix(line, SectionOpen), SectionClose)
	inner = strings.TrimSpace(inner)
	if inner == "" {
		return nil, fmt.Errorf("%w: empty section name", ErrMalformedSection)
	}
	segments := strings.Split(inner, SectionSeparator)
	for _, s := range segments {
		if s == "" || strings.TrimSpace(s) != s {
			return nil, fmt.Errorf("%w: %q", ErrMalformedSection, line)
		}
	}
	return segments, nil
}

func parseAssignment(line string) (string, string, error) {
	eq := strings.Index(line, Assignment)
	if eq < 0 {
		return "", "", fmt.Errorf("%w: missing '=' in %q", ErrMalformedLine, line)
	}
	name := strings.TrimSpace(line[:eq])
	if name == "" {
		return "", "", fmt.Errorf("%w: missing name in %q", ErrMalformedLine, line)
	}
	raw := strings.TrimSpace(line[eq+1:])
	if !strings.HasPrefix(raw, Quote) {
		return name, raw, nil
	}

	value, rest, err := unquote(raw)
	if err != nil {
		return "", "", err
	}
	rest = strings.TrimSpace(rest)
	if rest != "" && !strings.HasPrefix(rest, CommentPrefix) && !strings.HasPrefix(rest, HashCommentPrefix) {
		return "", "", fmt.Errorf("%w: trailing data after value in %q", ErrMalformedLine, line)
	}
	return name, value, nil
}
