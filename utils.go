package disfl_corpus

import (
	"strings"

	"github.com/wbrown/disfl_corpus/types"
)

// ASCII punctuation characters.
const Punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

const (
	OpenCurly   = "{"
	CloseCurly  = "}"
	OpenSquare  = "["
	CloseSquare = "]"
	Interrupt   = "+"
)

const disfluentSuffix = types.FieldSeparator + types.DisfluentLabel

var bracketSpacer = strings.NewReplacer(
	OpenCurly, OpenCurly+" ",
	OpenSquare, OpenSquare+" ",
	CloseCurly, " "+CloseCurly,
	CloseSquare, " "+CloseSquare,
)

// StandardizeBrackets
// Inserts a space after every `{` and `[`, and before every `}` and `]`, so
// that markup symbols always split out as standalone units.
func StandardizeBrackets(text string) string {
	return bracketSpacer.Replace(text)
}

func isPunctuationByte(b byte) bool {
	return strings.IndexByte(Punctuation, b) >= 0
}

// isPunctuationWord
// True when the word part of a literal (the text before the first `/`) is
// made only of punctuation. An empty word part counts, as with `/SYM`.
func isPunctuationWord(literal string) bool {
	word := literal
	if idx := strings.Index(literal, types.FieldSeparator); idx >= 0 {
		word = literal[:idx]
	}
	for idx := 0; idx < len(word); idx++ {
		if !isPunctuationByte(word[idx]) {
			return false
		}
	}
	return true
}

// startsWithPunctuation
// Only the first byte is inspected: `'s/POS` is punctuation here, `Mr./NNP`
// is not.
func startsWithPunctuation(literal string) bool {
	return len(literal) > 0 && isPunctuationByte(literal[0])
}

// isPartialWord
// Incomplete words are written with a trailing hyphen, either bare (`th-`)
// or before the part-of-speech suffix (`th-/XX`).
func isPartialWord(unit string) bool {
	return strings.HasSuffix(unit, "-") || strings.Contains(unit, "-/")
}

// isTurnMarker
// End-of-sentence and new-speaker markers.
func isTurnMarker(unit string) bool {
	return strings.Contains(unit, "E_S") || strings.Contains(unit, "N_S")
}

func isMarkup(unit string) bool {
	return unit == OpenCurly || unit == OpenSquare || unit == Interrupt
}

// splitTag
// Separates an already-tagged literal (`word/POS/@dis`) from its tag.
func splitTag(literal string) (string, types.Tag) {
	if strings.HasSuffix(literal, disfluentSuffix) {
		return strings.TrimSuffix(literal, disfluentSuffix), types.TagDisfluent
	}
	return literal, types.TagFluent
}
