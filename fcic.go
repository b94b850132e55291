package disfl_corpus

import "strings"

// FCICAdapter
// Reads interview transcripts (Financial Crisis Inquiry Commission):
// paragraphs separated by blank lines, speaker IDs on lines of their own
// ending in a colon.
type FCICAdapter struct {
	tokenizer Tokenizer
	splitter  SentenceSplitter
}

func NewFCICAdapter(tokenizer Tokenizer,
	splitter SentenceSplitter) *FCICAdapter {
	return &FCICAdapter{tokenizer: tokenizer, splitter: splitter}
}

func (adapter *FCICAdapter) CorpusType() CorpusType {
	return CorpusFCIC
}

func (adapter *FCICAdapter) flush(queue []*Annotation,
	block []sourceLine) []*Annotation {
	if len(block) == 0 {
		return queue
	}
	for _, sentence := range locateSentences(adapter.splitter, block) {
		if canonical, ok := canonicalize(adapter.tokenizer,
			sentence.text); ok {
			queue = append(queue, &Annotation{Text: canonical,
				Line: sentence.line})
		}
	}
	return queue
}

func (adapter *FCICAdapter) Adapt(text []byte) AnnotationsIterator {
	lines := newLineScanner(text)
	block := make([]sourceLine, 0)
	return queuedIterator(func(queue []*Annotation) ([]*Annotation, bool,
		error) {
		line, ok := lines.next()
		if !ok {
			if err := lines.err(); err != nil {
				return queue, false, err
			}
			queue = adapter.flush(queue, block)
			block = block[:0]
			return queue, false, nil
		}
		if strings.TrimSpace(line) == "" {
			queue = adapter.flush(queue, block)
			block = block[:0]
			return queue, true, nil
		}
		if strings.HasSuffix(line, ":") {
			// Speaker ID line.
			return queue, true, nil
		}
		block = append(block, sourceLine{line, lines.line})
		return queue, true, nil
	})
}
