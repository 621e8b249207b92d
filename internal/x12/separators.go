package x12

import (
	"bytes"
	"strings"
)

// Separators are the four delimiter bytes an ISA header declares:
// element separator (byte 4), repetition separator (byte 83),
// sub-element separator (byte 105) and segment terminator (byte 107, or
// the next non-whitespace byte after it) — spec.md §4.1.
type Separators struct {
	Element    byte
	Repetition byte
	SubElement byte
	Segment    byte
}

func isWhitespaceByte(b byte) bool {
	return b == ' ' || b == '\n' || b == '\r' || b == '\t'
}

// discoverSeparators reads the four delimiter positions out of an ISA
// header beginning at the start of data.
func discoverSeparators(data []byte) (Separators, error) {
	const minISALen = 107
	if len(data) < minISALen {
		return Separators{}, &MalformedEnvelopeError{Reason: "ISA header truncated"}
	}

	sep := Separators{
		Element:    data[3],
		Repetition: data[82],
		SubElement: data[104],
	}

	idx := 106
	for idx < len(data) && isWhitespaceByte(data[idx]) {
		idx++
	}
	if idx >= len(data) {
		return Separators{}, &MalformedEnvelopeError{Reason: "segment terminator undetectable"}
	}
	sep.Segment = data[idx]

	return sep, nil
}

// findISA locates the next "ISA" marker at or after pos, or -1.
func findISA(data []byte, pos int) int {
	if pos >= len(data) {
		return -1
	}
	rel := bytes.Index(data[pos:], []byte("ISA"))
	if rel == -1 {
		return -1
	}
	return pos + rel
}

// consumeEnvelope splits data[start:] into Segments using sep, stopping
// once an IEA segment is read. It returns the segments and the byte
// offset immediately following the IEA segment's terminator, so the
// caller can resume scanning for another envelope. Blank segments
// (consecutive terminators, or terminators followed only by whitespace)
// are skipped, matching spec.md §4.1's "Blank segments are skipped."
func consumeEnvelope(data []byte, start int, sep Separators) ([]Segment, int, error) {
	var segs []Segment
	i := start

	for {
		termRel := bytes.IndexByte(data[i:], sep.Segment)
		if termRel == -1 {
			return nil, 0, &MalformedEnvelopeError{Reason: "missing IEA trailer (unterminated envelope)"}
		}
		text := strings.TrimSpace(string(data[i : i+termRel]))
		next := i + termRel + 1

		if text != "" {
			fields := strings.Split(text, string(sep.Element))
			seg := Segment{Tag: fields[0], Fields: fields[1:]}
			segs = append(segs, seg)
			if seg.Tag == "IEA" {
				return segs, next, nil
			}
		}

		i = next
		if i >= len(data) {
			return nil, 0, &MalformedEnvelopeError{Reason: "missing IEA trailer (unterminated envelope)"}
		}
	}
}
