package json

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/csvsql/csvsql/internal/escape"

	"go4.org/mem"
)

// A Sink receives events from parsing an input stream, in document
// order. If a method reports an error, parsing stops and that error is
// returned to the caller unchanged. The Reader ensures objects and
// arrays are correctly balanced and that every Key event is followed
// by exactly one value.
//
// String and Key payloads are unescaped before delivery, and are owned
// by the sink once delivered; the Reader retains no reference to them.
type Sink interface {
	// Begin a new object.
	BeginObject() error

	// End the most-recently-opened object.
	EndObject() error

	// Begin a new array.
	BeginArray() error

	// End the most-recently-opened array.
	EndArray() error

	// Report the key of the next object member.
	Key(key string) error

	// Report a numeric value.
	Number(v float64) error

	// Report a string value.
	String(s string) error

	// Report a boolean value.
	Boolean(v bool) error

	// Report a null value.
	Null() error
}

// NopSink is a Sink that discards all events. A Reader given a nil
// sink parses with a NopSink, validating the input without
// materializing anything.
type NopSink struct{}

func (NopSink) BeginObject() error   { return nil }
func (NopSink) EndObject() error     { return nil }
func (NopSink) BeginArray() error    { return nil }
func (NopSink) EndArray() error      { return nil }
func (NopSink) Key(string) error     { return nil }
func (NopSink) Number(float64) error { return nil }
func (NopSink) String(string) error  { return nil }
func (NopSink) Boolean(bool) error   { return nil }
func (NopSink) Null() error          { return nil }

// Mode selects the error discipline of a Reader. The mode is fixed at
// construction and applies to every parse performed by that Reader.
type Mode int

const (
	// Strict mode reports lexical and grammatical failures as a typed
	// [*Error] carrying a message and a position.
	Strict Mode = iota

	// Lenient mode collapses every such failure to [ErrInvalid].
	Lenient
)

// A Reader is a grammar driver that consumes a single JSON value from
// an input stream and delivers events to a Sink. A Reader owns its
// scanner state and is good for exactly one Parse; construct a fresh
// Reader for each document.
type Reader struct {
	s    *Scanner
	sink Sink
	mode Mode
}

// NewReader constructs a Reader consuming input from r and delivering
// events to sink. A nil sink validates without delivering events.
func NewReader(r io.Reader, sink Sink, mode Mode) *Reader {
	if sink == nil {
		sink = NopSink{}
	}
	return &Reader{s: NewScanner(r), sink: sink, mode: mode}
}

// NewReaderBytes constructs a Reader over an in-memory input. The
// grammar and error semantics are identical to a streaming Reader.
func NewReaderBytes(data []byte, sink Sink, mode Mode) *Reader {
	return NewReader(bytes.NewReader(data), sink, mode)
}

// Valid reports whether r contains a single well-formed JSON value.
// It runs a lenient parse-only pass.
func Valid(r io.Reader) bool {
	return NewReader(r, nil, Lenient).Parse() == nil
}

// ValidBytes reports whether data contains a single well-formed JSON
// value.
func ValidBytes(data []byte) bool { return Valid(bytes.NewReader(data)) }

// Parse consumes one JSON value from the input, delivering events to
// the sink, and verifies that nothing but whitespace follows it.
//
// In Strict mode a syntax error is returned as [*Error]; in Lenient
// mode every syntax error is collapsed to [ErrInvalid]. An error
// reported by the sink is returned unchanged in either mode. After an
// error no guarantee is made about events already delivered; a sink
// building state must discard it.
func (r *Reader) Parse() (err error) {
	defer r.recoverParseError(&err)

	if err := r.s.Next(); err == io.EOF {
		r.syntaxError(UnexpectedEOF, "empty input")
	} else if err != nil {
		r.scanError(err)
	}
	r.parseElement()

	// Only trailing whitespace may remain.
	if err := r.s.Next(); err == nil {
		r.syntaxError(TrailingGarbage, "unexpected %v after value", r.s.Token())
	} else if err != io.EOF {
		r.scanError(err)
	}
	return nil
}

func (r *Reader) recoverParseError(errp *error) {
	if serr := recover(); serr != nil {
		switch err := serr.(type) {
		case *Error:
			if r.mode == Lenient {
				*errp = ErrInvalid
			} else {
				*errp = err
			}
		case sinkError:
			*errp = err.error
		default:
			panic(serr)
		}
	}
}

// parseElement consumes a single value of any type.
// Precondition: the scanner is positioned on the value's first token.
func (r *Reader) parseElement() {
	switch tok := r.s.Token(); tok {
	case LBrace:
		r.checkSink(r.sink.BeginObject())
		r.parseMembers()
		r.checkSink(r.sink.EndObject())
	case LSquare:
		r.checkSink(r.sink.BeginArray())
		r.parseElements()
		r.checkSink(r.sink.EndArray())
	case Integer, Number:
		v, err := strconv.ParseFloat(string(r.s.Text()), 64)
		if err != nil {
			r.syntaxError(LexError, "invalid number %q", r.s.Text())
		}
		r.checkSink(r.sink.Number(v))
	case String:
		r.checkSink(r.sink.String(r.decodeString()))
	case True:
		r.checkSink(r.sink.Boolean(true))
	case False:
		r.checkSink(r.sink.Boolean(false))
	case Null:
		r.checkSink(r.sink.Null())
	default:
		r.syntaxError(UnexpectedToken, "unexpected %v", tok)
	}
}

// parseMembers consumes zero or more key:value object members.
// Precondition: token == LBrace.
// Postcondition: token == RBrace.
func (r *Reader) parseMembers() {
	tok := r.advance()
	if tok == RBrace {
		return // end of object
	}
	for {
		if tok != String {
			r.syntaxError(UnexpectedToken, "expected %v or string, got %v", RBrace, tok)
		}

		// Parse a single member: "key": value
		r.checkSink(r.sink.Key(r.decodeString()))
		if next := r.advance(); next != Colon {
			r.syntaxError(MissingColon, "expected %v, got %v", Colon, next)
		}
		r.advance()
		r.parseElement()

		// Check whether we have more members (",") or are done ("}").
		switch next := r.advance(); next {
		case RBrace:
			return // end of object
		case Comma:
			tok = r.advance()
		case Colon:
			r.syntaxError(DuplicateColon, "unexpected second %v in member", Colon)
		default:
			if startsValue(next) {
				r.syntaxError(MissingComma, "expected %v or %v before %v", Comma, RBrace, next)
			}
			r.syntaxError(UnexpectedToken, "expected %v or %v, got %v", Comma, RBrace, next)
		}
	}
}

// parseElements consumes zero or more comma-separated array values.
// Precondition: token == LSquare.
// Postcondition: token == RSquare.
func (r *Reader) parseElements() {
	if tok := r.advance(); tok == RSquare {
		return // end of array
	}
	for {
		r.parseElement()
		switch next := r.advance(); next {
		case RSquare:
			return // end of array
		case Comma:
			r.advance()
		default:
			if startsValue(next) {
				r.syntaxError(MissingComma, "expected %v or %v before %v", Comma, RSquare, next)
			}
			r.syntaxError(UnexpectedToken, "expected %v or %v, got %v", Comma, RSquare, next)
		}
	}
}

// advance fetches the next token, converting end-of-input and lexical
// failures to syntax errors.
func (r *Reader) advance() Token {
	if err := r.s.Next(); err == io.EOF {
		r.syntaxError(UnexpectedEOF, "unexpected end of input")
	} else if err != nil {
		r.scanError(err)
	}
	return r.s.Token()
}

// decodeString unescapes the text of the current string token.
// Precondition: token == String.
func (r *Reader) decodeString() string {
	text := r.s.Text()
	dec, err := escape.Unquote(mem.B(text[1 : len(text)-1]))
	if err != nil {
		r.syntaxError(LexError, "invalid string: %v", err)
	}
	return string(dec)
}

// scanError re-raises an error reported by the scanner. Scanner errors
// already carry their position.
func (r *Reader) scanError(err error) {
	if serr, ok := err.(*Error); ok {
		panic(serr)
	}
	panic(&Error{
		Code:    LexError,
		Message: err.Error(),
		Pos:     r.s.Location().Last,
		err:     err,
	})
}

func (r *Reader) syntaxError(code Code, msg string, args ...any) {
	panic(&Error{
		Code:    code,
		Message: fmt.Sprintf(msg, args...),
		Pos:     r.s.Location().First,
	})
}

func (r *Reader) checkSink(err error) {
	if err != nil {
		panic(sinkError{err})
	}
}

type sinkError struct{ error }

func (s sinkError) Unwrap() error { return s.error }
