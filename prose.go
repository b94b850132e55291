package disfl_corpus

import (
	"fmt"
	"strings"

	"github.com/jdkato/prose/v2"
	"gopkg.in/neurosnap/sentences.v1"
	"gopkg.in/neurosnap/sentences.v1/english"
)

// ProseTokenizer
// Treebank-style word tokenization backed by prose.
type ProseTokenizer struct{}

func NewProseTokenizer() *ProseTokenizer {
	return &ProseTokenizer{}
}

func (tokenizer *ProseTokenizer) Tokenize(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	doc, err := prose.NewDocument(
		text,
		prose.WithTagging(false),
		prose.WithExtraction(false),
		prose.WithSegmentation(false),
	)
	if err != nil {
		return strings.Fields(text)
	}
	docTokens := doc.Tokens()
	tokens := make([]string, 0, len(docTokens))
	for _, token := range docTokens {
		tokens = append(tokens, token.Text)
	}
	return tokens
}

// ProseSplitter
// Sentence segmentation backed by prose's document model.
type ProseSplitter struct{}

func NewProseSplitter() *ProseSplitter {
	return &ProseSplitter{}
}

func (splitter *ProseSplitter) Split(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	doc, err := prose.NewDocument(
		text,
		prose.WithTagging(false),
		prose.WithExtraction(false),
		prose.WithTokenization(false),
	)
	if err != nil {
		return []string{text}
	}
	docSentences := doc.Sentences()
	sentences := make([]string, 0, len(docSentences))
	for _, sentence := range docSentences {
		if trimmed := strings.TrimSpace(sentence.Text); trimmed != "" {
			sentences = append(sentences, trimmed)
		}
	}
	return sentences
}

// PunktSplitter
// Sentence segmentation with the pre-trained English Punkt model.
type PunktSplitter struct {
	tokenizer *sentences.DefaultSentenceTokenizer
}

func NewPunktSplitter() (*PunktSplitter, error) {
	tokenizer, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, err
	}
	return &PunktSplitter{tokenizer: tokenizer}, nil
}

func (splitter *PunktSplitter) Split(text string) []string {
	found := splitter.tokenizer.Tokenize(text)
	sentences := make([]string, 0, len(found))
	for _, sentence := range found {
		if trimmed := strings.TrimSpace(sentence.Text); trimmed != "" {
			sentences = append(sentences, trimmed)
		}
	}
	return sentences
}

// NewSplitter
// Returns the sentence splitter registered under name, `prose` or `punkt`.
func NewSplitter(name string) (SentenceSplitter, error) {
	switch name {
	case "", "prose":
		return NewProseSplitter(), nil
	case "punkt":
		splitter, err := NewPunktSplitter()
		if err != nil {
			return nil, err
		}
		return splitter, nil
	default:
		return nil, fmt.Errorf("unknown sentence splitter: %s", name)
	}
}
