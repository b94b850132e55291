package resources

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
)

//go:embed data/samples/*
var f embed.FS

var ErrNotRegularFile = errors.New("not a regular file")

// ResourceEntry
// The contents of a corpus file. Data is memory mapped for files on disk;
// call Cleanup once the contents are no longer referenced.
type ResourceEntry struct {
	Path  string
	Size  int64
	Data  *[]byte
	unmap func() error
	file  *os.File
}

func (rsrc *ResourceEntry) Cleanup() error {
	var unmapErr, closeErr error
	if rsrc.unmap != nil {
		unmapErr = rsrc.unmap()
		rsrc.unmap = nil
	}
	if rsrc.file != nil {
		closeErr = rsrc.file.Close()
		rsrc.file = nil
	}
	rsrc.Data = nil
	if unmapErr != nil {
		return unmapErr
	}
	return closeErr
}

// OpenCorpusFile
// Opens the file at path read-only as a mmap.Map. Missing files and
// directories are reported before anything is mapped.
func OpenCorpusFile(path string) (*ResourceEntry, error) {
	stat, statErr := os.Stat(path)
	if statErr != nil {
		return nil, statErr
	}
	if !stat.Mode().IsRegular() {
		return nil, fmt.Errorf("%s: %w", path, ErrNotRegularFile)
	}
	if stat.Size() == 0 {
		// Zero-length files cannot be mapped.
		empty := make([]byte, 0)
		return &ResourceEntry{Path: path, Data: &empty}, nil
	}
	file, openErr := os.Open(path)
	if openErr != nil {
		return nil, openErr
	}
	fileMmap, unmap, mmapErr := readMmap(file)
	if mmapErr != nil {
		file.Close()
		return nil, errors.New(
			fmt.Sprintf("error trying to mmap file: %s",
				mmapErr))
	}
	return &ResourceEntry{
		Path:  path,
		Size:  stat.Size(),
		Data:  fileMmap,
		unmap: unmap,
		file:  file,
	}, nil
}

// GetEmbeddedResource
// Returns a ResourceEntry for a sample corpus embedded in the binary.
func GetEmbeddedResource(name string) (*ResourceEntry, error) {
	resourceBytes, err := f.ReadFile(path.Join("data/samples", name))
	if err != nil {
		return nil, err
	}
	return &ResourceEntry{
		Path: name,
		Size: int64(len(resourceBytes)),
		Data: &resourceBytes,
	}, nil
}

// EmbeddedSamples
// Lists the names of the embedded sample corpora.
func EmbeddedSamples() ([]string, error) {
	entries, err := fs.ReadDir(f, "data/samples")
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}
