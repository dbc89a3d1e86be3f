package tableblock

// RichText is an opaque formatted-text payload supplied by the host. The
// editing model never inspects formatting; it only needs an emptiness test
// and equality. A nil RichText stored in a Cell is a sentinel meaning the
// cell is subsumed by a merge (see Cell.Content).
type RichText interface {
	IsEmpty() bool
	Equal(other RichText) bool
}

// Text is a plain-string RichText implementation for hosts and tests that
// do not carry a richer representation.
type Text string

// IsEmpty reports whether the text has zero length.
func (t Text) IsEmpty() bool { return len(t) == 0 }

// Equal reports whether other is a Text with the same contents.
func (t Text) Equal(other RichText) bool {
	o, ok := other.(Text)
	return ok && o == t
}

func (t Text) String() string { return string(t) }

// emptyContent is the initial content of newly created cells. It is
// deliberately non-nil: nil content marks merge-suppressed cells.
var emptyContent RichText = Text("")
