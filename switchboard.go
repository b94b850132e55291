package disfl_corpus

import (
	"regexp"
	"strings"
)

// A speaker turn header, either the treebank form `SpeakerA1/SYM ./.` or a
// plain `Speaker A:` prefix followed by inline text.
var speakerHeader = regexp.MustCompile(
	`^Speaker\s*([A-Z]+[0-9]*)(?:/\S+)?\s*(?:\./\.|:(.*))?$`)

// SwitchboardAdapter
// Reads Switchboard `.dps` files, whose lines already carry the bracket
// annotation. Speaker headers delimit blocks; every non-empty line inside a
// block is one segment.
type SwitchboardAdapter struct{}

func NewSwitchboardAdapter() *SwitchboardAdapter {
	return &SwitchboardAdapter{}
}

func (adapter *SwitchboardAdapter) CorpusType() CorpusType {
	return CorpusSwitchboard
}

// speakerTurn
// Reports whether line opens a new speaker block, and any text that
// follows the header on the same line.
func speakerTurn(line string) (bool, string) {
	if !strings.HasPrefix(line, "Speaker") {
		return false, ""
	}
	match := speakerHeader.FindStringSubmatch(line)
	if match == nil {
		return false, ""
	}
	return true, strings.TrimSpace(match[2])
}

func (adapter *SwitchboardAdapter) Adapt(text []byte) AnnotationsIterator {
	lines := newLineScanner(text)
	inBlock := false
	return queuedIterator(func(queue []*Annotation) ([]*Annotation, bool,
		error) {
		line, ok := lines.next()
		if !ok {
			return queue, false, lines.err()
		}
		if header, inline := speakerTurn(line); header {
			// Everything before the first header is file preamble.
			inBlock = true
			line = inline
		} else if !inBlock {
			return queue, true, nil
		}
		if strings.TrimSpace(line) != "" {
			queue = append(queue, &Annotation{
				Text: StandardizeBrackets(line),
				Line: lines.line,
			})
		}
		return queue, true, nil
	})
}
