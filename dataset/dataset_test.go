package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wbrown/disfl_corpus"
	"github.com/wbrown/disfl_corpus/types"
)

const sampleDps = `SpeakerA1/SYM ./.
Okay/UH ./. E_S
{F Uh/UH ,/, } [ I/PRP think/VBP + I/PRP know/VBP ] it/PRP ./. E_S
`

func writeTree(t *testing.T, files map[string]string) string {
	root := t.TempDir()
	for name, contents := range files {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	}
	return root
}

func quietOptions() disfl_corpus.Options {
	logger, _ := test.NewNullLogger()
	return disfl_corpus.Options{
		StripPunctuation: true,
		Logger:           logrus.NewEntry(logger),
	}
}

func basenames(pathInfos []PathInfo) []string {
	names := make([]string, 0, len(pathInfos))
	for _, pathInfo := range pathInfos {
		names = append(names, filepath.Base(pathInfo.Path))
	}
	return names
}

func TestGlobCorpus(t *testing.T) {
	root := writeTree(t, map[string]string{
		"swb1/sw2001.dps":      sampleDps,
		"swb1/deep/sw3001.dps": sampleDps,
		"swb1/readme.txt":      "not a transcript",
	})
	matches, err := GlobCorpus(root, "*.dps")
	require.NoError(t, err)
	assert.Equal(t, []string{"sw3001.dps", "sw2001.dps"}, basenames(matches))
	assert.Equal(t, int64(len(sampleDps)), matches[0].Size)

	_, err = GlobCorpus(filepath.Join(root, "missing"), "*.dps")
	assert.Error(t, err)
}

func TestJohnsonCharniakSplit(t *testing.T) {
	root := writeTree(t, map[string]string{
		"2/sw2005.dps": sampleDps,
		"4/sw4004.dps": sampleDps,
		"4/sw4153.dps": sampleDps,
		"4/sw4212.dps": sampleDps,
		"3/sw3010.dps": sampleDps,
		"4/sw4004.mrg": sampleDps,
	})
	train, held, err := JohnsonCharniakSplit(root)
	require.NoError(t, err)
	assert.Equal(t, []string{"sw2005.dps", "sw3010.dps", "sw4212.dps"},
		basenames(train))
	assert.Equal(t, []string{"sw4004.dps", "sw4153.dps"}, basenames(held))

	_, _, err = JohnsonCharniakSplit(t.TempDir())
	assert.Error(t, err)
}

func TestTrainValidationSplit(t *testing.T) {
	items := make([]int, 100)
	for idx := range items {
		items[idx] = idx
	}
	train, validation := TrainValidationSplit(items, 0.03,
		DefaultSeed)
	assert.Len(t, validation, 3)
	assert.Len(t, train, 97)
	assert.ElementsMatch(t, items, append(append([]int{}, train...),
		validation...))

	againTrain, againValidation := TrainValidationSplit(items, 0.03,
		DefaultSeed)
	assert.Equal(t, train, againTrain)
	assert.Equal(t, validation, againValidation)

	for idx := range items {
		assert.Equal(t, idx, items[idx])
	}

	train, validation = TrainValidationSplit(items[:10], 0, DefaultSeed)
	assert.Len(t, train, 10)
	assert.Empty(t, validation)
}

func TestCollectOrdered(t *testing.T) {
	root := writeTree(t, map[string]string{
		"sw2001.dps": sampleDps,
		"sw2002.dps": "SpeakerA1/SYM ./.\nyeah/UH ./. E_S\n",
		"sw2003.dps": "SpeakerB1/SYM ./.\n{ uh/UH } no/UH ./. E_S\n" +
			"[ broken/JJ ./. E_S\n",
	})
	paths, err := GlobCorpus(root, "*.dps")
	require.NoError(t, err)
	results, err := Collect(paths, Options{
		CorpusType: disfl_corpus.CorpusSwitchboard,
		Corpus:     quietOptions(),
		Workers:    3,
	})
	require.NoError(t, err)
	require.Len(t, results, 3)
	for idx := range results {
		assert.Equal(t, paths[idx].Path, results[idx].Path)
	}
	assert.Equal(t, 2, results[0].Stats.Segments)
	assert.Equal(t, 1, results[2].Stats.Rejected)
	require.Len(t, results[2].Rejected, 1)
	assert.Equal(t, 3, results[2].Rejected[0].Line)

	examples := Examples(results)
	require.Len(t, examples, 4)
	assert.Equal(t, "Okay/UH", examples[0].Segment.String())
	assert.Equal(t, "yeah/UH", examples[2].Segment.String())
	assert.Equal(t, "uh/UH/@dis no/UH", examples[3].Segment.String())
	assert.Equal(t, paths[2].Path, examples[3].Source)
}

func TestCollectFailure(t *testing.T) {
	root := writeTree(t, map[string]string{
		"a.txt": "10.0 11.0 A: hello there\n",
		"b.txt": "10.0 11.0 hello there\n",
	})
	paths, err := GlobCorpus(root, "*.txt")
	require.NoError(t, err)
	results, err := Collect(paths, Options{
		CorpusType: disfl_corpus.CorpusCallHome,
		Corpus:     quietOptions(),
		Workers:    2,
	})
	assert.ErrorIs(t, err, disfl_corpus.ErrMalformedLine)
	assert.Contains(t, err.Error(), "b.txt")
	require.Len(t, results, 2)
	assert.NoError(t, results[0].Err)

	_, err = Collect([]PathInfo{{Path: filepath.Join(root, "gone.dps")}},
		Options{Corpus: quietOptions()})
	assert.ErrorIs(t, err, disfl_corpus.ErrMissingInput)
}

func TestSaveLoad(t *testing.T) {
	split := &Split{
		Train: []Example{{
			Source: "sw2001.dps",
			Segment: types.Segment{
				{Surface: "I/PRP", Tag: types.TagDisfluent},
				{Surface: "know/VBP"},
			},
		}},
		Validation: []Example{{
			Source:  "sw2002.dps",
			Segment: types.Segment{{Surface: "yeah/UH"}},
		}},
		Test: []Example{{
			Source: "sw4004.dps",
			Segment: types.Segment{
				{Surface: "uh/UH", Tag: types.TagDisfluent},
			},
		}},
	}
	path := filepath.Join(t.TempDir(), "swbd.msgpack")
	require.NoError(t, Save(path, split))
	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, split, loaded)

	_, err = Load(filepath.Join(t.TempDir(), "missing.msgpack"))
	assert.Error(t, err)
}
