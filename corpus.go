package disfl_corpus

import (
	"errors"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
	"github.com/wbrown/disfl_corpus/resources"
	"github.com/wbrown/disfl_corpus/types"
)

// Options
// Pipeline-scoped settings, passed explicitly to every corpus.
type Options struct {
	StripPunctuation bool
	Tokenizer        Tokenizer
	Splitter         SentenceSplitter
	Logger           *logrus.Entry
}

// DefaultOptions
// Punctuation stripped, prose tokenization and sentence splitting, logging
// to the logrus standard logger.
func DefaultOptions() Options {
	return Options{
		StripPunctuation: true,
		Tokenizer:        NewProseTokenizer(),
		Splitter:         NewProseSplitter(),
		Logger:           logrus.NewEntry(logrus.StandardLogger()),
	}
}

func (opts Options) withDefaults() Options {
	if opts.Tokenizer == nil {
		opts.Tokenizer = NewProseTokenizer()
	}
	if opts.Splitter == nil {
		opts.Splitter = NewProseSplitter()
	}
	if opts.Logger == nil {
		opts.Logger = logrus.NewEntry(logrus.StandardLogger())
	}
	return opts
}

// Stats
// Running counts for one corpus file.
type Stats struct {
	Segments  int
	Rejected  int
	Empty     int
	Tokens    int
	Disfluent int
}

func (stats Stats) String() string {
	return fmt.Sprintf("%s segments (%s rejected, %s empty), %s tokens, "+
		"%s disfluent", humanize.Comma(int64(stats.Segments)),
		humanize.Comma(int64(stats.Rejected)),
		humanize.Comma(int64(stats.Empty)),
		humanize.Comma(int64(stats.Tokens)),
		humanize.Comma(int64(stats.Disfluent)))
}

// SegmentsIterator
// Yields flattened segments one at a time; (nil, nil) once the file is
// exhausted. Any error is final for the file.
type SegmentsIterator func() (*types.Segment, error)

// Corpus
// One transcript file, read with the adapter for its corpus type.
type Corpus struct {
	Path     string
	Type     CorpusType
	Rejected []*SegmentError

	opts    Options
	adapter Adapter
	data    []byte
	rsrc    *resources.ResourceEntry
	stats   Stats
	logger  *logrus.Entry
}

// NewCorpus
// Prepares the transcript at path for parsing. A missing or unreadable
// path is reported as ErrMissingInput before any parsing begins.
func NewCorpus(path string, corpusType CorpusType,
	opts Options) (*Corpus, error) {
	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingInput, err)
	}
	if !stat.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s is not a regular file",
			ErrMissingInput, path)
	}
	return newCorpus(path, corpusType, nil, opts)
}

// NewCorpusFromBytes
// Wraps in-memory transcript text; name is only used in diagnostics.
func NewCorpusFromBytes(name string, text []byte, corpusType CorpusType,
	opts Options) (*Corpus, error) {
	if text == nil {
		text = []byte{}
	}
	return newCorpus(name, corpusType, text, opts)
}

// NewSampleCorpus
// Opens one of the sample transcripts embedded in the binary.
func NewSampleCorpus(name string, corpusType CorpusType,
	opts Options) (*Corpus, error) {
	rsrc, err := resources.GetEmbeddedResource(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingInput, err)
	}
	return newCorpus(name, corpusType, *rsrc.Data, opts)
}

func newCorpus(path string, corpusType CorpusType, text []byte,
	opts Options) (*Corpus, error) {
	opts = opts.withDefaults()
	adapter, err := NewAdapter(corpusType, opts.Tokenizer, opts.Splitter)
	if err != nil {
		return nil, err
	}
	return &Corpus{
		Path:    path,
		Type:    corpusType,
		opts:    opts,
		adapter: adapter,
		data:    text,
		logger: opts.Logger.WithFields(logrus.Fields{
			"file":   path,
			"corpus": corpusType.String(),
		}),
	}, nil
}

func (corpus *Corpus) Stats() Stats {
	return corpus.stats
}

// Close
// Releases the mapped file, if an iterator is still holding it.
func (corpus *Corpus) Close() error {
	if corpus.rsrc == nil {
		return nil
	}
	err := corpus.rsrc.Cleanup()
	corpus.rsrc = nil
	return err
}

func (corpus *Corpus) read() ([]byte, error) {
	if corpus.data != nil {
		return corpus.data, nil
	}
	rsrc, err := resources.OpenCorpusFile(corpus.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingInput, err)
	}
	corpus.rsrc = rsrc
	corpus.logger.WithField("size", humanize.Bytes(uint64(rsrc.Size))).
		Debug("mapped corpus file")
	return *rsrc.Data, nil
}

// reject
// Records a segment the flattener could not resolve. The rest of the file
// is unaffected.
func (corpus *Corpus) reject(annotation *Annotation, err error) {
	segErr := &SegmentError{
		Path:       corpus.Path,
		Line:       annotation.Line,
		Annotation: annotation.Text,
		Err:        err,
	}
	corpus.Rejected = append(corpus.Rejected, segErr)
	corpus.stats.Rejected++
	corpus.logger.WithError(err).WithFields(logrus.Fields{
		"line":    annotation.Line,
		"segment": annotation.Text,
	}).Warn("rejected segment")
}

// Segments
// Starts a fresh pass over the file and returns a lazy iterator of its
// flattened segments. Calling it again restarts from the top.
func (corpus *Corpus) Segments() (SegmentsIterator, error) {
	if err := corpus.Close(); err != nil {
		return nil, err
	}
	text, err := corpus.read()
	if err != nil {
		return nil, err
	}
	corpus.stats = Stats{}
	corpus.Rejected = nil
	nextAnnotation := corpus.adapter.Adapt(text)
	done := false
	finish := func() {
		done = true
		if closeErr := corpus.Close(); closeErr != nil {
			corpus.logger.WithError(closeErr).Warn("failed to unmap")
		}
	}
	return func() (*types.Segment, error) {
		for !done {
			annotation, err := nextAnnotation()
			if err != nil {
				finish()
				var malformed *MalformedLineError
				if errors.As(err, &malformed) {
					malformed.Path = corpus.Path
				}
				return nil, err
			}
			if annotation == nil {
				finish()
				corpus.logger.WithField("stats", corpus.stats.String()).
					Debug("finished corpus file")
				return nil, nil
			}
			segment, flatErr := Flatten(annotation.Text,
				corpus.opts.StripPunctuation)
			if flatErr != nil {
				corpus.reject(annotation, flatErr)
				continue
			}
			if len(segment) == 0 {
				corpus.stats.Empty++
				continue
			}
			if !corpus.Type.TaggedSurfaces() {
				for idx := range segment {
					segment[idx].Plain = true
				}
			}
			corpus.stats.Segments++
			corpus.stats.Tokens += len(segment)
			corpus.stats.Disfluent += segment.Disfluent()
			return &segment, nil
		}
		return nil, nil
	}, nil
}

// Parse
// Reads the whole file and returns every segment that flattened cleanly.
func (corpus *Corpus) Parse() ([]types.Segment, error) {
	nextSegment, err := corpus.Segments()
	if err != nil {
		return nil, err
	}
	segments := make([]types.Segment, 0)
	for {
		segment, segErr := nextSegment()
		if segErr != nil {
			return segments, segErr
		}
		if segment == nil {
			break
		}
		segments = append(segments, *segment)
	}
	return segments, nil
}
