package dataset

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
	"github.com/wbrown/disfl_corpus"
	"github.com/wbrown/disfl_corpus/types"
)

// Example
// One flattened segment and the file it came from.
type Example struct {
	Source  string        `msgpack:"source" json:"source"`
	Segment types.Segment `msgpack:"segment" json:"segment"`
}

// FileResult
// Everything one worker produced for one file.
type FileResult struct {
	Path     string
	Examples []Example
	Stats    disfl_corpus.Stats
	Rejected []*disfl_corpus.SegmentError
	Err      error
}

// Options
// Settings for a collection run. Corpus is shared by every worker, so its
// Tokenizer and Splitter must be safe for concurrent use.
type Options struct {
	CorpusType disfl_corpus.CorpusType
	Corpus     disfl_corpus.Options
	Workers    int
}

func collectFile(path string, opts Options) FileResult {
	result := FileResult{Path: path}
	corpus, err := disfl_corpus.NewCorpus(path, opts.CorpusType, opts.Corpus)
	if err != nil {
		result.Err = err
		return result
	}
	defer corpus.Close()
	segments, err := corpus.Parse()
	result.Stats = corpus.Stats()
	result.Rejected = corpus.Rejected
	if err != nil {
		result.Err = err
		return result
	}
	result.Examples = make([]Example, 0, len(segments))
	for _, segment := range segments {
		result.Examples = append(result.Examples, Example{
			Source:  path,
			Segment: segment,
		})
	}
	return result
}

// Collect
// Parses every file in paths, one worker goroutine per file up to
// opts.Workers at a time. Results come back in the order of paths no matter
// which worker finished first. The first failed file, in path order, is
// returned as the error alongside all results.
func Collect(paths []PathInfo, opts Options) ([]FileResult, error) {
	logger := opts.Corpus.Logger
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger())
		opts.Corpus.Logger = logger
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(paths) {
		workers = len(paths)
	}

	begin := time.Now()
	results := make([]FileResult, len(paths))
	jobs := make(chan int, len(paths))
	for idx := range paths {
		jobs <- idx
	}
	close(jobs)

	var wg sync.WaitGroup
	for worker := 0; worker < workers; worker++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				results[idx] = collectFile(paths[idx].Path, opts)
				logger.WithFields(logrus.Fields{
					"file":  paths[idx].Path,
					"size":  humanize.Bytes(uint64(paths[idx].Size)),
					"stats": results[idx].Stats.String(),
				}).Debug("collected")
			}
		}()
	}
	wg.Wait()

	var total disfl_corpus.Stats
	for idx := range results {
		if results[idx].Err != nil {
			return results, fmt.Errorf("%s: %w", results[idx].Path,
				results[idx].Err)
		}
		total.Segments += results[idx].Stats.Segments
		total.Rejected += results[idx].Stats.Rejected
		total.Empty += results[idx].Stats.Empty
		total.Tokens += results[idx].Stats.Tokens
		total.Disfluent += results[idx].Stats.Disfluent
	}
	elapsed := time.Since(begin)
	logger.WithFields(logrus.Fields{
		"files":   humanize.Comma(int64(len(paths))),
		"bytes":   humanize.Bytes(TotalSize(paths)),
		"elapsed": elapsed.Round(time.Millisecond).String(),
	}).Infof("collected %s", total.String())
	return results, nil
}

// Examples
// Concatenates the examples of results, in order.
func Examples(results []FileResult) []Example {
	count := 0
	for idx := range results {
		count += len(results[idx].Examples)
	}
	examples := make([]Example, 0, count)
	for idx := range results {
		examples = append(examples, results[idx].Examples...)
	}
	return examples
}
