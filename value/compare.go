package value

import (
	"fmt"
	"math"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// An Ordering is the result of a three-way comparison.
type Ordering int

// Constants defining the valid Ordering values.
const (
	Less         Ordering = -1
	Equiv        Ordering = 0
	Greater      Ordering = 1
	Incomparable Ordering = 2 // at least one operand is null
)

var orderingStr = map[Ordering]string{
	Less:         "less",
	Equiv:        "equivalent",
	Greater:      "greater",
	Incomparable: "incomparable",
}

func (o Ordering) String() string {
	if s, ok := orderingStr[o]; ok {
		return s
	}
	return "invalid ordering"
}

// Compare orders a against b. If either operand is null the result is
// Incomparable; callers that need a total order decide which side a
// null sorts to. Comparing values of different kinds is a contract
// violation and panics with an *Error.
//
// Ordering is the variant's natural order: Real below the equality
// tolerance compares equivalent, and String uses collation order.
func Compare(a, b Value) Ordering {
	if a.IsNull() || b.IsNull() {
		return Incomparable
	}
	if a.Kind() != b.Kind() {
		panic(&Error{
			Code:    KindMismatch,
			Message: fmt.Sprintf("unsupported comparison: %s to %s", a.Kind(), b.Kind()),
		})
	}
	switch c := a.compareSame(b); {
	case c < 0:
		return Less
	case c > 0:
		return Greater
	}
	return Equiv
}

// Equal reports whether a and b are non-null values of the same kind
// with equal payloads. A null equals nothing, itself included. Real
// payloads compare with tolerance; String payloads compare equal iff
// they collate to zero.
func Equal(a, b Value) bool {
	if a.IsNull() || b.IsNull() || a.Kind() != b.Kind() {
		return false
	}
	return a.equalSame(b)
}

// Tolerances of the Real equality comparator. A difference within the
// absolute bound, or within the relative bound scaled by the larger
// magnitude, is equality.
const (
	floatAbsTol = 1e-9
	floatRelTol = 1e-9
)

func floatEqual(a, b float64) bool {
	if a == b {
		return true
	}
	d := math.Abs(a - b)
	if d <= floatAbsTol {
		return true
	}
	return d <= floatRelTol*math.Max(math.Abs(a), math.Abs(b))
}

// collation is the shared collator for String ordering, equality, and
// hashing. A Collator is not safe for concurrent use, so access is
// serialized; values themselves stay freely shareable.
var collation = struct {
	sync.Mutex
	c *collate.Collator
}{c: collate.New(language.Und)}

func collateStrings(a, b string) int {
	collation.Lock()
	defer collation.Unlock()
	return collation.c.CompareString(a, b)
}

// collationKey returns a copy of the collation sort key of s. Strings
// with equal sort keys collate equal.
func collationKey(s string) []byte {
	collation.Lock()
	defer collation.Unlock()
	var buf collate.Buffer
	return append([]byte(nil), collation.c.KeyFromString(&buf, s)...)
}
