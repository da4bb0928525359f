package json

import "fmt"

// A Span describes a contiguous span of a source input.
type Span struct {
	Pos int // the start offset, 0-based
	End int // the end offset, 0-based (noninclusive)
}

// A LineCol describes the line number and column of a location in
// source text. Both are 1-based; the column counts bytes.
type LineCol struct {
	Line   int
	Column int
}

func (lc LineCol) String() string { return fmt.Sprintf("%d:%d", lc.Line, lc.Column) }

// A Location describes the complete location of a range of source
// text, including line and column positions.
type Location struct {
	Span
	First, Last LineCol
}
