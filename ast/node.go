package ast

import (
	"github.com/vdf-format/vdf/token"
)

type Kind int

const (
	DocumentKind Kind = iota
	ObjectKind
	KeyValueKind
	StringKind
	NumberKind
	WhitespaceKind
	CommentKind
	ConditionalKind
	DirectiveKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		DocumentKind:    "Document",
		ObjectKind:      "Object",
		KeyValueKind:    "KeyValue",
		StringKind:      "String",
		NumberKind:      "Number",
		WhitespaceKind:  "Whitespace",
		CommentKind:     "Comment",
		ConditionalKind: "Conditional",
		DirectiveKind:   "Directive",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

// Loc is the source span of a node. Raw holds the exact source text of the
// span; it is empty for synthesized leaves.
type Loc struct {
	Start token.Position
	End   token.Position
	Raw   string
}

func (l *Loc) Span() *Loc { return l }

type Node interface {
	Kind() Kind
	Span() *Loc
	isNode()
}

// Value is the value side of a key value pair.
type Value interface {
	Node
	isValue()
}

// Container is a Document or an Object.
type Container interface {
	Node
	ChildNodes() *[]Node
}

// Document is the root of a parse tree. Its children are KeyValue,
// Whitespace, Comment and Directive nodes.
type Document struct {
	Loc
	Children []Node
}

// Object is a braced list of children, with the same child kinds as a
// Document.
type Object struct {
	Loc
	Open     Loc
	Children []Node
	Close    Loc
}

// KeyValue is a key with its value.
//
// Separator holds the text between the key and what follows it. A trailing
// conditional is separated from the value by CondSep; when CondBeforeValue
// is set the conditional sits between Separator and the value instead.
type KeyValue struct {
	Loc
	Key             *String
	Separator       *Whitespace
	Value           Value
	Cond            *Conditional
	CondSep         *Whitespace
	CondBeforeValue bool
}

type String struct {
	Loc
	Value     string
	Quoted    bool
	QuoteChar byte
}

// Number is an unquoted scalar in the JSON number grammar. Value is the
// literal text.
type Number struct {
	Loc
	Value   string
	IsFloat bool
}

// Whitespace carries non semantic text verbatim in Raw. Separators may
// hold comments; LineComment is set when Raw ends inside a // comment.
type Whitespace struct {
	Loc
	LineComment bool
}

type Comment struct {
	Loc
	Text  string
	Block bool
}

// Conditional is a bracketed platform condition such as [$WIN32]. Expr is
// the text between the brackets and is not interpreted.
type Conditional struct {
	Loc
	Expr string
}

type DirectiveType int

const (
	Include DirectiveType = iota
	Base
)

func (k DirectiveType) String() string {
	if k == Base {
		return token.DirectiveBase
	}
	return token.DirectiveInclude
}

// Directive is an #include or #base line. Path is not resolved.
type Directive struct {
	Loc
	Directive DirectiveType
	Path      string
	Quoted    bool
}

func (*Document) Kind() Kind    { return DocumentKind }
func (*Object) Kind() Kind      { return ObjectKind }
func (*KeyValue) Kind() Kind    { return KeyValueKind }
func (*String) Kind() Kind      { return StringKind }
func (*Number) Kind() Kind      { return NumberKind }
func (*Whitespace) Kind() Kind  { return WhitespaceKind }
func (*Comment) Kind() Kind     { return CommentKind }
func (*Conditional) Kind() Kind { return ConditionalKind }
func (*Directive) Kind() Kind   { return DirectiveKind }

func (*Document) isNode()    {}
func (*Object) isNode()      {}
func (*KeyValue) isNode()    {}
func (*String) isNode()      {}
func (*Number) isNode()      {}
func (*Whitespace) isNode()  {}
func (*Comment) isNode()     {}
func (*Conditional) isNode() {}
func (*Directive) isNode()   {}

func (*String) isValue() {}
func (*Number) isValue() {}
func (*Object) isValue() {}

func (d *Document) ChildNodes() *[]Node { return &d.Children }
func (o *Object) ChildNodes() *[]Node   { return &o.Children }

// KeyValues returns the key value children of c whose key is k, in order.
func KeyValues(c Container, k string) []*KeyValue {
	var res []*KeyValue
	for _, n := range *c.ChildNodes() {
		kv, ok := n.(*KeyValue)
		if ok && kv.Key.Value == k {
			res = append(res, kv)
		}
	}
	return res
}
