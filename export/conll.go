// Package export turns flattened segments into the training formats used
// for disfluency detection.
package export

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/wbrown/disfl_corpus/types"
)

// NoPOS stands in for the part-of-speech column of corpora that carry none.
const NoPOS = "_"

var ErrBadTokenShape = errors.New("bad token shape")

// TokenShapeError
// A token whose surface does not split into word or word/POS.
type TokenShapeError struct {
	Index   int
	Surface string
}

func (err *TokenShapeError) Error() string {
	return fmt.Sprintf("%v: token %d %q", ErrBadTokenShape, err.Index,
		err.Surface)
}

func (err *TokenShapeError) Unwrap() error {
	return ErrBadTokenShape
}

// Row
// One CoNLL line: the word, its part-of-speech and its disfluency label.
type Row struct {
	Word  string `msgpack:"word" json:"word"`
	POS   string `msgpack:"pos" json:"pos"`
	Label string `msgpack:"label" json:"label"`
}

type Sentence []Row

// fields
// Splits a token surface into word and POS, rejecting any other shape.
func fields(idx int, token types.Token) (string, string, error) {
	parts := token.Fields()
	switch len(parts) {
	case 1:
		if parts[0] == "" {
			return "", "", &TokenShapeError{idx, token.Surface}
		}
		return parts[0], NoPOS, nil
	case 2:
		return parts[0], parts[1], nil
	default:
		return "", "", &TokenShapeError{idx, token.Surface}
	}
}

// CoNLL
// Converts a segment into CoNLL 2002 rows.
func CoNLL(segment types.Segment) (Sentence, error) {
	sentence := make(Sentence, 0, len(segment))
	for idx, token := range segment {
		word, pos, err := fields(idx, token)
		if err != nil {
			return nil, err
		}
		sentence = append(sentence, Row{
			Word:  word,
			POS:   pos,
			Label: token.Tag.String(),
		})
	}
	return sentence, nil
}

// WriteCoNLL
// Writes tab separated rows, one sentence per block, blocks separated by a
// blank line.
func WriteCoNLL(w io.Writer, sentences []Sentence) error {
	writer := bufio.NewWriter(w)
	for idx, sentence := range sentences {
		if idx > 0 {
			if _, err := writer.WriteString("\n"); err != nil {
				return err
			}
		}
		for _, row := range sentence {
			if _, err := writer.WriteString(strings.Join(
				[]string{row.Word, row.POS, row.Label}, "\t") +
				"\n"); err != nil {
				return err
			}
		}
	}
	return writer.Flush()
}
