package x12

import "fmt"

// MalformedEnvelopeError is surfaced when an ISA header cannot be
// parsed, an envelope is missing its IEA trailer, or the segment
// terminator cannot be determined (spec.md §7). Parse stops at the
// first malformed envelope and returns this error with no records;
// envelopes after it are not scanned.
type MalformedEnvelopeError struct {
	Reason string
}

func (e *MalformedEnvelopeError) Error() string {
	return fmt.Sprintf("malformed 837 envelope: %s", e.Reason)
}
