package types

import "fmt"

// Tag
// Marks a token as part of the fluent utterance or as disfluent material.
type Tag uint8

const (
	TagFluent    Tag = iota
	TagDisfluent Tag = iota
)

const (
	FluentLabel    = "O"
	DisfluentLabel = "@dis"
)

func (tag Tag) String() string {
	switch tag {
	case TagFluent:
		return FluentLabel
	case TagDisfluent:
		return DisfluentLabel
	default:
		return fmt.Sprintf("Tag(%d)", uint8(tag))
	}
}

func (tag Tag) MarshalText() ([]byte, error) {
	switch tag {
	case TagFluent, TagDisfluent:
		return []byte(tag.String()), nil
	default:
		return nil, fmt.Errorf("invalid tag %d", uint8(tag))
	}
}

func (tag *Tag) UnmarshalText(text []byte) error {
	switch string(text) {
	case FluentLabel:
		*tag = TagFluent
	case DisfluentLabel:
		*tag = TagDisfluent
	default:
		return fmt.Errorf("invalid tag label %q", string(text))
	}
	return nil
}

// Token
// A surface form as it appeared in the corpus, plus its fluency tag. The
// surface keeps any `word/POS` suffix the corpus annotates. Plain marks a
// surface taken from untagged text, where `/` is an ordinary character.
type Token struct {
	Surface string `json:"surface" msgpack:"surface"`
	Tag     Tag    `json:"tag" msgpack:"tag"`
	Plain   bool   `json:"plain,omitempty" msgpack:"plain,omitempty"`
}

// Segment
// One utterance worth of tokens, in source order.
type Segment []Token
