package parse

import (
	"fmt"
	"os"

	"github.com/vdf-format/vdf/ast"
	"github.com/vdf-format/vdf/debug"
	"github.com/vdf-format/vdf/kv"
	"github.com/vdf-format/vdf/token"
)

// Result holds the two views of a parsed document.
type Result struct {
	AST  *ast.Document
	Data *kv.Object
}

func Parse(d []byte, opts ...ParseOption) (*Result, error) {
	return ParseString(string(d), opts...)
}

func ParseString(src string, opts ...ParseOption) (*Result, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	toks, err := token.TokenizeString(nil, src, pOpts.tokenOpts...)
	if err != nil {
		return nil, err
	}
	if debug.Tokenize() {
		token.PrintTokens(os.Stderr, toks, "tokenized")
	}
	p := &parser{src: src, toks: toks}
	res := &Result{AST: &ast.Document{}, Data: kv.NewObject()}
	if err := p.body(res.AST, res.Data, nil); err != nil {
		return nil, err
	}
	eof := &toks[len(toks)-1]
	res.AST.Loc = ast.Loc{
		Start: eof.Pos.D.Pos(0).Position(),
		End:   eof.Pos.Position(),
		Raw:   src,
	}
	if debug.Parse() {
		debug.Logf("parsed %d tokens, data:\n%s\n", len(toks), res.Data)
	}
	return res, nil
}

type parser struct {
	src  string
	toks []token.Token
	i    int
}

func (p *parser) loc(first, last *token.Token) ast.Loc {
	end := last.End()
	return ast.Loc{
		Start: first.Pos.Position(),
		End:   first.Pos.D.Pos(end).Position(),
		Raw:   p.src[first.Pos.I:end],
	}
}

func (p *parser) tokLoc(t *token.Token) ast.Loc {
	return p.loc(t, t)
}

func isTrivia(t *token.Token) bool {
	return t.Type == token.TWhitespace || t.Type == token.TComment
}

// trivia consumes whitespace and comments into a single node, or returns
// nil if there are none.
func (p *parser) trivia() *ast.Whitespace {
	start := p.i
	raw := ""
	for isTrivia(&p.toks[p.i]) {
		raw += p.toks[p.i].Raw
		p.i++
	}
	if start == p.i {
		return nil
	}
	first, last := &p.toks[start], &p.toks[p.i-1]
	return &ast.Whitespace{
		Loc: ast.Loc{
			Start: first.Pos.Position(),
			End:   first.Pos.D.Pos(last.End()).Position(),
			Raw:   raw,
		},
		LineComment: last.Type == token.TComment && last.Comment == token.LineComment,
	}
}

// body parses the children of a document, or of an object when open is
// the opening brace. It stops before the closing brace.
func (p *parser) body(c ast.Container, data *kv.Object, open *token.Token) error {
	children := c.ChildNodes()
	for {
		t := &p.toks[p.i]
		switch t.Type {
		case token.TWhitespace:
			*children = append(*children, &ast.Whitespace{Loc: p.tokLoc(t)})
			p.i++
		case token.TComment:
			*children = append(*children, &ast.Comment{
				Loc:   p.tokLoc(t),
				Text:  t.Value,
				Block: t.Comment == token.BlockComment,
			})
			p.i++
		case token.TInclude, token.TBase:
			if !t.Quoted && t.Value == "" {
				return NewParseErr(fmt.Errorf("%w %s", ErrDirectiveTarget, t.Raw), t.Pos)
			}
			dir := &ast.Directive{Loc: p.tokLoc(t), Path: t.Value, Quoted: t.Quoted}
			if t.Type == token.TBase {
				dir.Directive = ast.Base
			}
			*children = append(*children, dir)
			p.i++
		case token.TString:
			kvNode, err := p.pair(data)
			if err != nil {
				return err
			}
			*children = append(*children, kvNode)
		case token.TRCurl:
			if open != nil {
				return nil
			}
			return NewParseErr(fmt.Errorf("%w: unmatched '}'", ErrUnbalanced), t.Pos)
		case token.TEOF:
			if open != nil {
				return NewParseErr(fmt.Errorf("%w: '{' at %s not closed", ErrUnexpectedEOF, open.Pos.Position()), t.Pos)
			}
			return nil
		default:
			return unexpected(t, "key")
		}
	}
}

func (p *parser) pair(data *kv.Object) (*ast.KeyValue, error) {
	keyTok := &p.toks[p.i]
	p.i++
	node := &ast.KeyValue{Key: p.stringNode(keyTok)}
	node.Separator = p.trivia()

	t := &p.toks[p.i]
	if t.Type == token.TConditional {
		node.Cond = p.conditional(t)
		node.CondBeforeValue = true
		p.i++
		node.CondSep = p.trivia()
		t = &p.toks[p.i]
	}

	var val kv.Value
	switch t.Type {
	case token.TString:
		node.Value, val = p.scalar(t)
		p.i++
	case token.TLCurl:
		obj, objData, err := p.object()
		if err != nil {
			return nil, err
		}
		node.Value, val = obj, objData
	case token.TEOF:
		return nil, NewParseErr(fmt.Errorf("%w: key %q has no value", ErrUnexpectedEOF, keyTok.Value), t.Pos)
	case token.TRCurl:
		return nil, NewParseErr(fmt.Errorf("%w: key %q has no value", ErrUnexpectedToken, keyTok.Value), t.Pos)
	default:
		return nil, unexpected(t, "value")
	}

	if !node.CondBeforeValue {
		j := p.i
		for isTrivia(&p.toks[j]) {
			j++
		}
		if p.toks[j].Type == token.TConditional {
			node.CondSep = p.trivia()
			node.Cond = p.conditional(&p.toks[p.i])
			p.i++
		}
	}
	node.Loc = p.loc(keyTok, &p.toks[p.i-1])
	data.Append(keyTok.Value, val)
	return node, nil
}

func (p *parser) object() (*ast.Object, *kv.Object, error) {
	open := &p.toks[p.i]
	p.i++
	obj := &ast.Object{Open: p.tokLoc(open)}
	data := kv.NewObject()
	if err := p.body(obj, data, open); err != nil {
		return nil, nil, err
	}
	closing := &p.toks[p.i]
	p.i++
	obj.Close = p.tokLoc(closing)
	obj.Loc = p.loc(open, closing)
	return obj, data, nil
}

func (p *parser) stringNode(t *token.Token) *ast.String {
	return &ast.String{
		Loc:       p.tokLoc(t),
		Value:     t.Value,
		Quoted:    t.Quoted,
		QuoteChar: t.QuoteChar,
	}
}

// scalar classifies a value token: unquoted numeric literals are numbers,
// everything else is a string.
func (p *parser) scalar(t *token.Token) (ast.Value, kv.Value) {
	if !t.Quoted {
		if ok, isFloat := token.IsNumber(t.Value); ok {
			return &ast.Number{Loc: p.tokLoc(t), Value: t.Value, IsFloat: isFloat}, kv.Number(t.Value)
		}
	}
	return p.stringNode(t), kv.String(t.Value)
}

func (p *parser) conditional(t *token.Token) *ast.Conditional {
	return &ast.Conditional{Loc: p.tokLoc(t), Expr: t.Value}
}
