// Package json implements the JSON scanner and event-stream reader
// underneath the engine's schema and configuration payloads.
//
// # Scanning
//
// The Scanner type implements a lexical scanner for RFC 8259 JSON.
// Construct a scanner from an io.Reader and call its Next method to
// iterate over the stream. Next advances to the next input token and
// returns nil, or reports an error:
//
//	s := json.NewScanner(input)
//	for s.Next() == nil {
//		log.Printf("Next token: %v", s.Token())
//	}
//
// Next returns io.EOF when the input has been fully consumed. Any
// other error is an *Error describing a lexical fault and its
// position.
//
// # Reading
//
// The Reader type implements an event-driven parser for a single JSON
// value. The parser works by calling the methods of a Sink to report
// the structure of the input:
//
//	JSON type  | Methods                 | Description
//	---------- | ----------------------- | ---------------------------------
//	object     | BeginObject, EndObject  | { ... }
//	array      | BeginArray, EndArray    | [ ... ]
//	member     | Key                     | "key": ...
//	value      | Number, String,         | scalar values
//	           | Boolean, Null           |
//
// The Reader guarantees the event stream is well balanced: Begin and
// End events pair up, and each Key is followed by exactly one value
// (possibly a nested object or array subtree), in document order.
//
// A Reader's error discipline is fixed at construction by its Mode:
// Strict parses report an *Error with a message and position, Lenient
// parses collapse every syntax error to ErrInvalid. Passing a nil Sink
// selects NopSink, which makes Parse a pure validation pass:
//
//	if err := json.NewReaderBytes(data, nil, json.Strict).Parse(); err != nil {
//		log.Fatalf("Parse failed: %v", err)
//	}
package json
