package export

import (
	"bufio"
	"io"
	"strings"

	"github.com/wbrown/disfl_corpus/types"
)

// Pair
// A segment as spoken, and the same segment with its disfluencies removed.
type Pair struct {
	Raw   string `msgpack:"raw" json:"raw"`
	Clean string `msgpack:"clean" json:"clean"`
}

// Bitext
// Converts a segment into its (raw, clean) pair.
func Bitext(segment types.Segment) (Pair, error) {
	raw := make([]string, 0, len(segment))
	clean := make([]string, 0, len(segment))
	for idx, token := range segment {
		word, _, err := fields(idx, token)
		if err != nil {
			return Pair{}, err
		}
		raw = append(raw, word)
		if !token.Disfluent() {
			clean = append(clean, word)
		}
	}
	return Pair{
		Raw:   strings.Join(raw, " "),
		Clean: strings.Join(clean, " "),
	}, nil
}

// WriteBitext
// Writes one tab separated raw/clean pair per line.
func WriteBitext(w io.Writer, pairs []Pair) error {
	writer := bufio.NewWriter(w)
	for _, pair := range pairs {
		if _, err := writer.WriteString(pair.Raw + "\t" + pair.Clean +
			"\n"); err != nil {
			return err
		}
	}
	return writer.Flush()
}
