package token

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// PosDoc maps byte offsets of a source document to lines and columns.
// Newline offsets are recorded lazily as positions are requested, so a
// forward scan registers each newline once.
type PosDoc struct {
	d       string
	n       []int
	scanned int
}

func NewPosDoc(d string) *PosDoc {
	return &PosDoc{d: d}
}

func (p *PosDoc) upTo(off int) {
	off = min(off, len(p.d))
	for p.scanned < off {
		j := strings.IndexByte(p.d[p.scanned:off], '\n')
		if j < 0 {
			p.scanned = off
			return
		}
		p.nl(p.scanned + j)
		p.scanned += j + 1
	}
}

func (p *PosDoc) nl(i int) {
	if len(p.n) > 0 && p.n[len(p.n)-1] == i {
		return
	}
	if p.d[i] != '\n' {
		panic("newline offset")
	}
	p.n = append(p.n, i)
}

// LineCol returns the 1-based line and column of byte offset off.
func (p *PosDoc) LineCol(off int) (int, int) {
	p.upTo(off)
	N := len(p.n)
	di := sort.Search(N, func(i int) bool {
		return p.n[i] >= off
	})
	if di == 0 {
		return 1, off + 1
	}
	return di + 1, off - p.n[di-1]
}

func (p *PosDoc) Pos(i int) Pos {
	p.upTo(i)
	return Pos{I: i, D: p}
}

func (p *PosDoc) end() Pos {
	return p.Pos(len(p.d))
}

// Pos is a byte offset I into the document D.
type Pos struct {
	I int
	D *PosDoc
}

func (p Pos) LineCol() (int, int) {
	if p.D == nil {
		return 0, 0
	}
	return p.D.LineCol(p.I)
}

func (p Pos) Line() int {
	l, _ := p.LineCol()
	return l
}

func (p Pos) Col() int {
	_, c := p.LineCol()
	return c
}

func (p Pos) Offset() int {
	return p.I
}

func (p Pos) Position() Position {
	l, c := p.LineCol()
	return Position{Offset: p.I, Line: l, Column: c}
}

func (p Pos) String() string {
	if p.D == nil {
		return fmt.Sprintf("offset %d", p.I)
	}
	sample := p.D.d[max(0, p.I-5):min(p.I+5, len(p.D.d))]
	sample = strconv.Quote(sample)
	sample = sample[1 : len(sample)-1]
	return fmt.Sprintf("`...%s...` at offset %d (line=%d, col=%d)", sample, p.I, p.Line(), p.Col())
}

// Position is a resolved, document independent source location.
type Position struct {
	Offset int `json:"offset"`
	Line   int `json:"line"`
	Column int `json:"column"`
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Advance returns the position reached after the text s starting at p.
func (p Position) Advance(s string) Position {
	res := p
	res.Offset += len(s)
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		res.Line += strings.Count(s, "\n")
		res.Column = len(s) - i
		return res
	}
	res.Column += len(s)
	return res
}
