package parse

import (
	"strconv"
	"strings"

	"github.com/mikai233/gohocon/ir"
	"github.com/mikai233/gohocon/merge"
	"github.com/mikai233/gohocon/token"
)

// Parse tokenizes and parses HOCON source text into a raw, possibly
// unresolved *ir.Node tree (spec.md §4.2). The top-level braces are
// optional; Parse always returns an ObjectType node.
func Parse(data []byte, opts ...ParseOption) (*ir.Node, error) {
	toks, err := token.Tokenize(data)
	if err != nil {
		return nil, err
	}
	toks = stripComments(toks)
	o := defaultOpts()
	for _, f := range opts {
		f(o)
	}
	p := &parser{toks: toks, data: data, maxDepth: o.recursionDepthLimit}
	root, err := p.parseDocument()
	if err != nil {
		return nil, err
	}
	return root, nil
}

func stripComments(toks []token.Token) []token.Token {
	out := toks[:0:0]
	for _, t := range toks {
		if t.Type == token.TComment {
			continue
		}
		out = append(out, t)
	}
	return out
}

type parser struct {
	toks     []token.Token
	i        int
	data     []byte
	maxDepth int
	depth    int
}

func (p *parser) peek() token.Token { return p.peekAt(0) }

func (p *parser) peekAt(off int) token.Token {
	j := p.i + off
	if j >= len(p.toks) {
		if len(p.toks) == 0 {
			return token.Token{Type: token.TEOF}
		}
		return token.Token{Type: token.TEOF, Pos: p.toks[len(p.toks)-1].End}
	}
	return p.toks[j]
}

func (p *parser) advance() token.Token {
	t := p.peek()
	if p.i < len(p.toks) {
		p.i++
	}
	return t
}

func (p *parser) enterComposite(pos token.Pos) error {
	p.depth++
	if p.depth > p.maxDepth {
		return recursionErrorf(pos)
	}
	return nil
}

func (p *parser) leaveComposite() { p.depth-- }

func (p *parser) skipSeparators() {
	for p.peek().Type == token.TNewline || p.peek().Type == token.TComma {
		p.advance()
	}
}

func (p *parser) skipNewlines() {
	for p.peek().Type == token.TNewline {
		p.advance()
	}
}

// parseDocument parses the top level: braces around the root object are
// optional (spec.md §4.2).
func (p *parser) parseDocument() (*ir.Node, error) {
	p.skipNewlines()
	if p.peek().Type == token.TLBrace {
		return p.parseObjectLiteral(nil)
	}
	return p.parseObjectBody(false, nil)
}

// parseObjectLiteral parses a `{ ... }` object, enforcing the recursion
// depth limit. prefix is the fully-qualified path from the document root
// to this object, used to tag self-referencing substitutions of its
// members (spec.md §4.5 "prior binding").
func (p *parser) parseObjectLiteral(prefix []string) (*ir.Node, error) {
	pos := p.peek().Pos
	if err := p.enterComposite(pos); err != nil {
		return nil, err
	}
	defer p.leaveComposite()
	p.advance() // '{'
	return p.parseObjectBody(true, prefix)
}

func (p *parser) parseObjectBody(braced bool, prefix []string) (*ir.Node, error) {
	obj := ir.EmptyObject()
	p.skipSeparators()
	for {
		if braced && p.peek().Type == token.TRBrace {
			p.advance()
			return obj, nil
		}
		if p.peek().Type == token.TEOF {
			if braced {
				return nil, parseErrorf(p.peek().Pos, "unexpected end of input, expected '}'")
			}
			return obj, nil
		}
		if err := p.parseMember(obj, prefix); err != nil {
			return nil, err
		}
		switch p.peek().Type {
		case token.TNewline, token.TComma:
			p.skipSeparators()
		case token.TRBrace:
			if !braced {
				return nil, parseErrorf(p.peek().Pos, "unexpected '}'")
			}
		case token.TEOF:
		default:
			return nil, parseErrorf(p.peek().Pos, "expected newline or ',' after object member")
		}
	}
}

// parseMember parses one statement inside an object body: either an
// `include` directive or a key/value assignment.
func (p *parser) parseMember(obj *ir.Node, prefix []string) error {
	if p.isIncludeDirective() {
		return p.parseInclude(obj)
	}
	path, err := p.parseKeyPath()
	if err != nil {
		return err
	}
	fullPath := make([]string, 0, len(prefix)+len(path))
	fullPath = append(fullPath, prefix...)
	fullPath = append(fullPath, path...)

	var value *ir.Node
	switch p.peek().Type {
	case token.TEquals, token.TColon:
		p.advance()
		value, err = p.parseConcat(fullPath)
	case token.TPlusEquals:
		p.advance()
		value, err = p.parseSelfAppendValue(fullPath)
	case token.TLBrace:
		value, err = p.parseObjectLiteral(fullPath)
	default:
		return parseErrorf(p.peek().Pos, "expected '=', ':', '+=' or '{' after key %q", strings.Join(path, "."))
	}
	if err != nil {
		return err
	}
	assignPath(obj, path, fullPath, value)
	return nil
}

// parseKeyPath reads one key token and, for unquoted keys, splits it on
// '.' into path segments (spec.md §3 "path keys nest objects"). A quoted
// key is never split: it names a single, possibly dotted-looking, field.
func (p *parser) parseKeyPath() ([]string, error) {
	tok := p.peek()
	switch tok.Type {
	case token.TString, token.TTripleString:
		p.advance()
		return []string{tok.Text}, nil
	case token.TUnquoted:
		p.advance()
		return strings.Split(tok.Text, "."), nil
	default:
		return nil, parseErrorf(tok.Pos, "expected object key, got %s", tok.Type.String())
	}
}

// assignPath walks (creating as needed) the nested objects named by path
// under obj, merges value into the leaf binding, and marks the binding as
// self-referential where applicable (spec.md §9 "cyclic reference in data
// model").
func assignPath(obj *ir.Node, path, fullPath []string, value *ir.Node) {
	cur := obj
	for i := 0; i < len(path)-1; i++ {
		key := path[i]
		child := cur.Field(key)
		if child == nil || child.Type != ir.ObjectType {
			child = ir.EmptyObject()
			cur.SetField(key, child)
			child = cur.Field(key)
		}
		cur = child
	}
	leaf := path[len(path)-1]
	prior := merge.AssignField(cur, leaf, value)
	markSelfReferences(value, fullPath, prior)
}

// markSelfReferences tags, among value's top-level parts (value itself, or
// every part of value if it is a Concat), any Substitution whose path
// equals fullPath as a self-reference and records prior — the field's
// binding immediately before this assignment — as its SelfPrior.
func markSelfReferences(value *ir.Node, fullPath []string, prior *ir.Node) {
	parts := []*ir.Node{value}
	if value.Type == ir.ConcatType {
		parts = value.Values
	}
	for _, part := range parts {
		if part.Type == ir.SubstitutionType && samePath(part.Path, fullPath) {
			part.IsSelf = true
			if prior != nil {
				part.SelfPrior = prior.Clone()
			}
		}
	}
}

func samePath(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// parseSelfAppendValue implements the `+=` desugaring of spec.md §4.3:
// `a += v` becomes `a = ${?a} [v]`.
func (p *parser) parseSelfAppendValue(fullPath []string) (*ir.Node, error) {
	rhs, err := p.parseConcat(nil)
	if err != nil {
		return nil, err
	}
	self := &ir.Node{
		Type:     ir.SubstitutionType,
		Path:     append([]string(nil), fullPath...),
		Optional: true,
		IsSelf:   true,
	}
	arr := ir.FromSlice([]*ir.Node{rhs})
	c := &ir.Node{Type: ir.ConcatType, Values: []*ir.Node{self, arr}, Seps: []string{" "}}
	self.Parent, self.ParentIndex = c, 0
	arr.Parent, arr.ParentIndex = c, 1
	return c, nil
}

// parseConcat parses a whitespace-joined run of value parts (spec.md
// §4.5 "Concatenation rules"). prefix threads through to any bare object
// literal among the parts, since an object-valued concatenation part is
// still bound to the same path as the assignment as a whole.
func (p *parser) parseConcat(prefix []string) (*ir.Node, error) {
	first, err := p.parsePrimaryValue(prefix)
	if err != nil {
		return nil, err
	}
	parts := []*ir.Node{first}
	var seps []string
	for p.isValueStart() {
		seps = append(seps, p.gapBeforeCurrent())
		part, err := p.parsePrimaryValue(prefix)
		if err != nil {
			return nil, err
		}
		parts = append(parts, part)
	}
	if len(parts) == 1 {
		return parts[0], nil
	}
	c := &ir.Node{Type: ir.ConcatType, Values: parts, Seps: seps}
	for i, v := range parts {
		v.Parent = c
		v.ParentIndex = i
	}
	return c, nil
}

// gapBeforeCurrent returns the literal source bytes between the end of
// the previously consumed token and the start of the upcoming one, used
// to preserve inline whitespace in string concatenation (spec.md §4.5).
func (p *parser) gapBeforeCurrent() string {
	if p.i == 0 || p.i >= len(p.toks) {
		return ""
	}
	prevEnd := p.toks[p.i-1].End
	curStart := p.toks[p.i].Pos
	if prevEnd.Offset < 0 || curStart.Offset > len(p.data) || prevEnd.Offset > curStart.Offset {
		return ""
	}
	return string(p.data[prevEnd.Offset:curStart.Offset])
}

func (p *parser) isValueStart() bool {
	switch p.peek().Type {
	case token.TString, token.TTripleString, token.TUnquoted, token.TLBrace, token.TLBracket,
		token.TSubstitution, token.TSubstitutionOpt:
		return true
	default:
		return false
	}
}

func (p *parser) parsePrimaryValue(prefix []string) (*ir.Node, error) {
	tok := p.peek()
	switch tok.Type {
	case token.TLBrace:
		return p.parseObjectLiteral(prefix)
	case token.TLBracket:
		return p.parseArray()
	case token.TString, token.TTripleString:
		p.advance()
		return ir.FromString(tok.Text), nil
	case token.TSubstitution, token.TSubstitutionOpt:
		p.advance()
		return &ir.Node{
			Type:     ir.SubstitutionType,
			Path:     strings.Split(tok.Text, "."),
			Optional: tok.Type == token.TSubstitutionOpt,
		}, nil
	case token.TUnquoted:
		p.advance()
		return parseUnquotedValue(tok.Text), nil
	default:
		return nil, parseErrorf(tok.Pos, "unexpected %s, expected a value", tok.Type.String())
	}
}

func (p *parser) parseArray() (*ir.Node, error) {
	pos := p.peek().Pos
	if err := p.enterComposite(pos); err != nil {
		return nil, err
	}
	defer p.leaveComposite()
	p.advance() // '['
	arr := &ir.Node{Type: ir.ArrayType}
	p.skipSeparators()
	for {
		if p.peek().Type == token.TRBracket {
			p.advance()
			return arr, nil
		}
		if p.peek().Type == token.TEOF {
			return nil, parseErrorf(p.peek().Pos, "unterminated array, expected ']'")
		}
		val, err := p.parseConcat(nil)
		if err != nil {
			return nil, err
		}
		val.Parent = arr
		val.ParentIndex = len(arr.Values)
		val.ParentField = ""
		arr.Values = append(arr.Values, val)
		switch p.peek().Type {
		case token.TComma, token.TNewline:
			p.skipSeparators()
		case token.TRBracket:
		default:
			return nil, parseErrorf(p.peek().Pos, "expected ',' or ']' in array")
		}
	}
}

func parseUnquotedValue(text string) *ir.Node {
	switch text {
	case "null":
		return ir.Null()
	case "true":
		return ir.FromBool(true)
	case "false":
		return ir.FromBool(false)
	}
	if n, ok := parseNumber(text); ok {
		return n
	}
	return ir.FromString(text)
}

func parseNumber(text string) (*ir.Node, bool) {
	if text == "" {
		return nil, false
	}
	c := text[0]
	if !(c == '-' || c == '+' || c == '.' || (c >= '0' && c <= '9')) {
		return nil, false
	}
	if iv, err := strconv.ParseInt(text, 10, 64); err == nil {
		return ir.FromInt(iv), true
	}
	if fv, err := strconv.ParseFloat(text, 64); err == nil {
		return ir.FromFloat(fv), true
	}
	return nil, false
}

// --- include directive parsing (spec.md §4.2, §4.4) ---

func (p *parser) isIncludeDirective() bool {
	return p.peek().Type == token.TUnquoted && p.peek().Text == "include"
}

// parseInclude parses `include <locator-expr>` and appends a positional
// IncludeType placeholder to obj, occupying a slot in Fields/Values
// alongside named fields (with an empty field name) so that the include
// resolver can later splice its content in at the correct insertion
// position relative to the object's other members.
func (p *parser) parseInclude(obj *ir.Node) error {
	p.advance() // "include"
	locator, kind, required, err := p.parseIncludeLocator()
	if err != nil {
		return err
	}
	n := &ir.Node{
		Type:            ir.IncludeType,
		IncludeLocator:  locator,
		IncludeRequired: required,
		IncludeKind:     kind,
	}
	i := len(obj.Fields)
	obj.Fields = append(obj.Fields, "")
	n.Parent, n.ParentIndex, n.ParentField = obj, i, ""
	obj.Values = append(obj.Values, n)
	return nil
}

func (p *parser) parseIncludeLocator() (locator string, kind ir.IncludeKind, required bool, err error) {
	tok := p.peek()
	if tok.Type == token.TString || tok.Type == token.TTripleString {
		p.advance()
		return tok.Text, ir.IncludeHeuristic, false, nil
	}
	if tok.Type != token.TUnquoted {
		return "", 0, false, parseErrorf(tok.Pos, "expected include locator")
	}
	p.advance()
	required, kind, kerr := classifyIncludePrefix(tok.Text)
	if kerr != nil {
		return "", 0, false, parseErrorf(tok.Pos, "%s", kerr.Error())
	}
	strTok := p.peek()
	if strTok.Type != token.TString && strTok.Type != token.TTripleString {
		return "", 0, false, parseErrorf(strTok.Pos, "expected quoted locator in include directive")
	}
	p.advance()
	locator = strTok.Text
	for p.peek().Type == token.TUnquoted && isCloseParens(p.peek().Text) {
		p.advance()
	}
	return locator, kind, required, nil
}

// classifyIncludePrefix recognizes the punctuation/keyword prefix of an
// include locator expression: optional `required(`, followed by an
// optional `url(`, `file(` or `classpath(`.
func classifyIncludePrefix(s string) (required bool, kind ir.IncludeKind, err error) {
	kind = ir.IncludeHeuristic
	if strings.HasPrefix(s, "required(") {
		required = true
		s = s[len("required("):]
	}
	switch {
	case strings.HasPrefix(s, "url("):
		kind, s = ir.IncludeURL, s[len("url("):]
	case strings.HasPrefix(s, "file("):
		kind, s = ir.IncludeFile, s[len("file("):]
	case strings.HasPrefix(s, "classpath("):
		kind, s = ir.IncludeClasspath, s[len("classpath("):]
	case s == "":
		// bare required( wrapping a heuristic locator
	default:
		return false, 0, &unsupportedIncludeForm{text: s}
	}
	return required, kind, nil
}

type unsupportedIncludeForm struct{ text string }

func (e *unsupportedIncludeForm) Error() string {
	return "unsupported include form " + strconv.Quote(e.text)
}

func isCloseParens(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c != ')' {
			return false
		}
	}
	return true
}
