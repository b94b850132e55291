package disfl_corpus

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"
)

// CorpusType
// The closed set of transcript conventions the pipeline understands.
type CorpusType uint8

const (
	CorpusSwitchboard CorpusType = iota
	CorpusSCOTUS      CorpusType = iota
	CorpusFCIC        CorpusType = iota
	CorpusCallHome    CorpusType = iota
)

var corpusTypeNames = map[CorpusType]string{
	CorpusSwitchboard: "dps",
	CorpusSCOTUS:      "scotus",
	CorpusFCIC:        "fcic",
	CorpusCallHome:    "callhome",
}

var corpusTypeAliases = map[string]CorpusType{
	"dps":         CorpusSwitchboard,
	"switchboard": CorpusSwitchboard,
	"plain":       CorpusSwitchboard,
	"scotus":      CorpusSCOTUS,
	"read-aloud":  CorpusSCOTUS,
	"fcic":        CorpusFCIC,
	"interview":   CorpusFCIC,
	"callhome":    CorpusCallHome,
	"two-channel": CorpusCallHome,
}

func (corpusType CorpusType) String() string {
	if name, ok := corpusTypeNames[corpusType]; ok {
		return name
	}
	return fmt.Sprintf("CorpusType(%d)", uint8(corpusType))
}

// TaggedSurfaces
// Whether the corpus writes part-of-speech suffixes (`word/POS`) into its
// tokens. Only Switchboard does; the other corpora are tokenized from plain
// text.
func (corpusType CorpusType) TaggedSurfaces() bool {
	return corpusType == CorpusSwitchboard
}

// ParseCorpusType
// Resolves a configured corpus type name. Unknown names are rejected with
// ErrUnsupportedCorpusType.
func ParseCorpusType(name string) (CorpusType, error) {
	corpusType, ok := corpusTypeAliases[strings.ToLower(
		strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedCorpusType, name)
	}
	return corpusType, nil
}

// Annotation
// One canonical annotation string, plus the 1-based source line it started
// on.
type Annotation struct {
	Text string
	Line int
}

// AnnotationsIterator
// Yields canonical annotations one at a time; (nil, nil) once exhausted.
// Any error is final.
type AnnotationsIterator func() (*Annotation, error)

// Adapter
// Turns one corpus file's raw text into canonical annotation strings.
type Adapter interface {
	Adapt(text []byte) AnnotationsIterator

	// CorpusType returns the convention this adapter reads.
	CorpusType() CorpusType
}

// NewAdapter
// Static dispatch from corpus type to its adapter.
func NewAdapter(corpusType CorpusType, tokenizer Tokenizer,
	splitter SentenceSplitter) (Adapter, error) {
	switch corpusType {
	case CorpusSwitchboard:
		return NewSwitchboardAdapter(), nil
	case CorpusSCOTUS:
		return NewSCOTUSAdapter(tokenizer), nil
	case CorpusFCIC:
		return NewFCICAdapter(tokenizer, splitter), nil
	case CorpusCallHome:
		return NewCallHomeAdapter(tokenizer, splitter), nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedCorpusType,
			corpusType)
	}
}

const maxScanTokenSize = 1024 * 1024 // 1MB

// lineScanner
// Numbers the lines of a corpus file, with trailing whitespace removed.
type lineScanner struct {
	scanner *bufio.Scanner
	line    int
}

func newLineScanner(text []byte) *lineScanner {
	scanner := bufio.NewScanner(bytes.NewReader(text))
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, maxScanTokenSize)
	return &lineScanner{scanner: scanner}
}

func (scanner *lineScanner) next() (string, bool) {
	if !scanner.scanner.Scan() {
		return "", false
	}
	scanner.line++
	return strings.TrimRight(scanner.scanner.Text(), " \t\r\n\v\f"), true
}

func (scanner *lineScanner) err() error {
	return scanner.scanner.Err()
}

// queuedIterator
// Drains a queue of annotations, refilling it from fill until fill reports
// that the source is exhausted.
func queuedIterator(fill func(queue []*Annotation) ([]*Annotation, bool,
	error)) AnnotationsIterator {
	queue := make([]*Annotation, 0)
	done := false
	return func() (*Annotation, error) {
		for len(queue) == 0 {
			if done {
				return nil, nil
			}
			var err error
			var more bool
			queue, more, err = fill(queue)
			if err != nil {
				done = true
				queue = queue[:0]
				return nil, err
			}
			done = !more
		}
		next := queue[0]
		queue = queue[1:]
		return next, nil
	}
}

// canonicalize
// Tokenizes a raw unit of text and standardizes its bracket spacing. Empty
// results are reported as such so callers can skip them.
func canonicalize(tokenizer Tokenizer, text string) (string, bool) {
	tokenized := tokenizeLine(tokenizer, text)
	if strings.TrimSpace(tokenized) == "" {
		return "", false
	}
	return StandardizeBrackets(tokenized), true
}

// sourceLine
// A piece of text and the 1-based line it starts on.
type sourceLine struct {
	text string
	line int
}

// locateSentences
// Sentence-splits the entries joined by single spaces, and attributes each
// sentence to the entry its first character came from.
func locateSentences(splitter SentenceSplitter,
	entries []sourceLine) []sourceLine {
	texts := make([]string, len(entries))
	starts := make([]int, len(entries))
	offset := 0
	for idx, entry := range entries {
		if idx > 0 {
			offset++
		}
		starts[idx] = offset
		texts[idx] = entry.text
		offset += len(entry.text)
	}
	joined := strings.Join(texts, " ")
	sentences := splitter.Split(joined)
	located := make([]sourceLine, 0, len(sentences))
	cursor, entry := 0, 0
	for _, sentence := range sentences {
		// A splitter that rewrote the text leaves the sentence on the last
		// line found.
		if found := strings.Index(joined[cursor:], sentence); found >= 0 {
			cursor += found
			for entry+1 < len(starts) && starts[entry+1] <= cursor {
				entry++
			}
			cursor += len(sentence)
		}
		located = append(located, sourceLine{sentence, entries[entry].line})
	}
	return located
}
