package types

import "strings"

const FieldSeparator = "/"

func (token Token) Disfluent() bool {
	return token.Tag == TagDisfluent
}

// Fields
// Splits the surface form on the `/` separator, e.g. `went/VBD` yields
// `["went", "VBD"]`. A plain surface is always a single field.
func (token Token) Fields() []string {
	if token.Plain {
		return []string{token.Surface}
	}
	return strings.Split(token.Surface, FieldSeparator)
}

// Word
// Returns the surface form without any part-of-speech suffix.
func (token Token) Word() string {
	if token.Plain {
		return token.Surface
	}
	if idx := strings.Index(token.Surface, FieldSeparator); idx >= 0 {
		return token.Surface[:idx]
	}
	return token.Surface
}

// String renders the token the way the annotation grammar writes an
// already-tagged literal.
func (token Token) String() string {
	if token.Tag == TagDisfluent {
		return token.Surface + FieldSeparator + DisfluentLabel
	}
	return token.Surface
}

func (segment Segment) Words() []string {
	words := make([]string, 0, len(segment))
	for idx := range segment {
		words = append(words, segment[idx].Word())
	}
	return words
}

// Raw
// Returns the words of the segment, disfluencies included.
func (segment Segment) Raw() string {
	return strings.Join(segment.Words(), " ")
}

// Clean
// Returns the words of the segment with all disfluent tokens removed.
func (segment Segment) Clean() string {
	words := make([]string, 0, len(segment))
	for idx := range segment {
		if !segment[idx].Disfluent() {
			words = append(words, segment[idx].Word())
		}
	}
	return strings.Join(words, " ")
}

func (segment Segment) Disfluent() int {
	count := 0
	for idx := range segment {
		if segment[idx].Disfluent() {
			count++
		}
	}
	return count
}

func (segment Segment) String() string {
	rendered := make([]string, 0, len(segment))
	for idx := range segment {
		rendered = append(rendered, segment[idx].String())
	}
	return strings.Join(rendered, " ")
}
