package disfl_corpus

import "strings"

// CallHome transcription noise: overlap and uncertain-transcription
// brackets, the `&` proper-name marker, `%` filled pauses and non-speech
// events.
var CallHomeNoiseMarkers = []string{
	"((", "))", "&",
	"%uh", "%um", "%eh", "%mm", "%hm", "%ah", "%huh",
	"{breath}", "{laugh}", "{lipsmack}", "{inhale}", "{exhale}", "{sniff}",
	"{sigh}", "{cough}",
}

// CallHomeAdapter
// Reads two-channel telephone dialogue transcripts. Each line is
// `<timestamps> <channel>: <text>`; channels A and B are emitted as two
// independent streams, all of A before all of B.
type CallHomeAdapter struct {
	tokenizer Tokenizer
	splitter  SentenceSplitter
	noise     *RuneNode
}

func NewCallHomeAdapter(tokenizer Tokenizer,
	splitter SentenceSplitter) *CallHomeAdapter {
	return &CallHomeAdapter{
		tokenizer: tokenizer,
		splitter:  splitter,
		noise:     NewRuneTree(CallHomeNoiseMarkers),
	}
}

func (adapter *CallHomeAdapter) CorpusType() CorpusType {
	return CorpusCallHome
}

// StripNoise
// Replaces every noise marker in line with a single space.
func (adapter *CallHomeAdapter) StripNoise(line string) string {
	return adapter.noise.ReplaceAll(line, " ")
}

// route
// Sorts every line of the file into its channel.
func (adapter *CallHomeAdapter) route(text []byte) ([]sourceLine,
	[]sourceLine, error) {
	lines := newLineScanner(text)
	channelA := make([]sourceLine, 0)
	channelB := make([]sourceLine, 0)
	for {
		raw, ok := lines.next()
		if !ok {
			break
		}
		if strings.HasPrefix(raw, "#") {
			continue
		}
		line := strings.TrimSpace(adapter.StripNoise(raw))
		if line == "" {
			continue
		}
		label, content, found := strings.Cut(line, ":")
		if !found {
			return nil, nil, &MalformedLineError{
				Line:   lines.line,
				Text:   raw,
				Reason: "missing channel separator",
			}
		}
		switch {
		case strings.Contains(label, "A"):
			channelA = append(channelA, sourceLine{content, lines.line})
		case strings.Contains(label, "B"):
			channelB = append(channelB, sourceLine{content, lines.line})
		default:
			return nil, nil, &MalformedLineError{
				Line:   lines.line,
				Text:   raw,
				Reason: "unknown channel label " + label,
			}
		}
	}
	return channelA, channelB, lines.err()
}

// units
// Breaks one channel into segmentation units: its sentences when the
// splitter finds more than one, otherwise its raw lines.
func (adapter *CallHomeAdapter) units(channel []sourceLine) []sourceLine {
	if len(channel) == 0 {
		return nil
	}
	sentences := locateSentences(adapter.splitter, channel)
	if len(sentences) <= 1 {
		return channel
	}
	return sentences
}

func (adapter *CallHomeAdapter) Adapt(text []byte) AnnotationsIterator {
	var pending []sourceLine
	routed := false
	return queuedIterator(func(queue []*Annotation) ([]*Annotation, bool,
		error) {
		if !routed {
			channelA, channelB, err := adapter.route(text)
			if err != nil {
				return queue, false, err
			}
			routed = true
			pending = append(adapter.units(channelA),
				adapter.units(channelB)...)
		}
		if len(pending) == 0 {
			return queue, false, nil
		}
		unit := pending[0]
		pending = pending[1:]
		if canonical, ok := canonicalize(adapter.tokenizer,
			unit.text); ok {
			queue = append(queue, &Annotation{Text: canonical,
				Line: unit.line})
		}
		return queue, len(pending) > 0, nil
	})
}
