package disfl_corpus

import (
	"strings"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru"
)

const TOKENIZER_LRU_SZ = 65536

// Tokenizer
// Splits raw text into word and punctuation units, treebank style:
// contractions split, punctuation split from words. Must be deterministic.
type Tokenizer interface {
	Tokenize(text string) []string
}

// SentenceSplitter
// Splits text into whole sentences, in their original order.
type SentenceSplitter interface {
	Split(text string) []string
}

// CachedTokenizer
// Memoizes a Tokenizer. Transcripts repeat short lines ("yeah", "uh-huh")
// constantly, so most lookups hit. Safe for concurrent use when the wrapped
// Tokenizer is.
type CachedTokenizer struct {
	Tokenizer Tokenizer
	Cache     *lru.ARCCache
	Hits      atomic.Int64
	Misses    atomic.Int64
}

func NewCachedTokenizer(tokenizer Tokenizer, size int) (*CachedTokenizer,
	error) {
	if size <= 0 {
		size = TOKENIZER_LRU_SZ
	}
	cache, err := lru.NewARC(size)
	if err != nil {
		return nil, err
	}
	return &CachedTokenizer{Tokenizer: tokenizer, Cache: cache}, nil
}

func (cached *CachedTokenizer) Tokenize(text string) []string {
	if hit, ok := cached.Cache.Get(text); ok {
		cached.Hits.Add(1)
		return append([]string(nil), hit.([]string)...)
	}
	cached.Misses.Add(1)
	tokens := cached.Tokenizer.Tokenize(text)
	cached.Cache.Add(text, append([]string(nil), tokens...))
	return tokens
}

// tokenizeLine
// Runs the tokenizer and rejoins the units with single spaces, the form
// the flattener consumes.
func tokenizeLine(tokenizer Tokenizer, text string) string {
	return strings.Join(tokenizer.Tokenize(text), " ")
}
