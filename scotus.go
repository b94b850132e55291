package disfl_corpus

// SCOTUSAdapter
// Reads plain read-aloud transcripts (Supreme Court oral arguments): no
// disfluency markup, one segment per line.
type SCOTUSAdapter struct {
	tokenizer Tokenizer
}

func NewSCOTUSAdapter(tokenizer Tokenizer) *SCOTUSAdapter {
	return &SCOTUSAdapter{tokenizer: tokenizer}
}

func (adapter *SCOTUSAdapter) CorpusType() CorpusType {
	return CorpusSCOTUS
}

func (adapter *SCOTUSAdapter) Adapt(text []byte) AnnotationsIterator {
	lines := newLineScanner(text)
	return queuedIterator(func(queue []*Annotation) ([]*Annotation, bool,
		error) {
		line, ok := lines.next()
		if !ok {
			return queue, false, lines.err()
		}
		if canonical, ok := canonicalize(adapter.tokenizer, line); ok {
			queue = append(queue, &Annotation{
				Text: canonical,
				Line: lines.line,
			})
		}
		return queue, true, nil
	})
}
