// Package dataset assembles training data from whole directories of
// transcripts.
package dataset

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/yargevad/filepathx"
)

// Johnson & Charniak (2004): conversations sw40xx and sw41xx are held out
// for testing, every other .dps file is training data.
const (
	JohnsonCharniakTest  = "sw4[0-1]*.dps"
	JohnsonCharniakTrain = "*.dps"
)

type PathInfo struct {
	Path    string
	Size    int64
	ModTime time.Time
}

// GlobCorpus
// Given a directory path, recursively finds all files whose name matches
// pattern, sorted by path.
func GlobCorpus(dirPath string, pattern string) (pathInfos []PathInfo,
	err error) {
	if stat, statErr := os.Stat(dirPath); statErr != nil {
		return nil, statErr
	} else if !stat.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dirPath)
	}
	matches, err := filepathx.Glob(dirPath + "/**/" + pattern)
	if err != nil {
		return nil, err
	}
	pathInfos = make([]PathInfo, 0, len(matches))
	for _, match := range matches {
		stat, statErr := os.Stat(match)
		if statErr != nil {
			return nil, statErr
		}
		if stat.IsDir() {
			continue
		}
		pathInfos = append(pathInfos, PathInfo{
			Path:    match,
			Size:    stat.Size(),
			ModTime: stat.ModTime(),
		})
	}
	SortPathInfoByPath(pathInfos)
	return pathInfos, nil
}

func SortPathInfoByPath(pathInfos []PathInfo) {
	sort.Slice(pathInfos, func(i, j int) bool {
		return pathInfos[i].Path < pathInfos[j].Path
	})
}

// TotalSize
// Sum of the sizes of pathInfos, in bytes.
func TotalSize(pathInfos []PathInfo) (total uint64) {
	for _, pathInfo := range pathInfos {
		total += uint64(pathInfo.Size)
	}
	return total
}

// JohnsonCharniakSplit
// Partitions the Switchboard .dps files under root into train and test
// sets by conversation number.
func JohnsonCharniakSplit(root string) (train []PathInfo, test []PathInfo,
	err error) {
	matches, err := GlobCorpus(root, JohnsonCharniakTrain)
	if err != nil {
		return nil, nil, err
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("%s does not contain any .dps files",
			root)
	}
	train = make([]PathInfo, 0, len(matches))
	test = make([]PathInfo, 0)
	for _, match := range matches {
		held, matchErr := filepath.Match(JohnsonCharniakTest,
			filepath.Base(match.Path))
		if matchErr != nil {
			return nil, nil, matchErr
		}
		if held {
			test = append(test, match)
		} else {
			train = append(train, match)
		}
	}
	return train, test, nil
}
