package dataset

import (
	"bufio"
	"os"

	"github.com/vmihailenco/msgpack/v5"
)

// Split
// A finished dataset, as written to disk.
type Split struct {
	Train      []Example `msgpack:"train"`
	Validation []Example `msgpack:"validation"`
	Test       []Example `msgpack:"test"`
}

// Save
// Writes split to path as msgpack, replacing any existing file.
func Save(path string, split *Split) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	writer := bufio.NewWriter(file)
	if encodeErr := msgpack.NewEncoder(writer).Encode(split); encodeErr != nil {
		file.Close()
		return encodeErr
	}
	if flushErr := writer.Flush(); flushErr != nil {
		file.Close()
		return flushErr
	}
	return file.Close()
}

// Load
// Reads a split written by Save.
func Load(path string) (*Split, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	split := &Split{}
	if decodeErr := msgpack.NewDecoder(bufio.NewReader(file)).Decode(
		split); decodeErr != nil {
		return nil, decodeErr
	}
	return split, nil
}
