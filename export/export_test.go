package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wbrown/disfl_corpus/types"
)

var repairSegment = types.Segment{
	{Surface: "I/PRP", Tag: types.TagDisfluent},
	{Surface: "think/VBP", Tag: types.TagDisfluent},
	{Surface: "I/PRP"},
	{Surface: "know/VBP"},
}

func TestCoNLL(t *testing.T) {
	sentence, err := CoNLL(repairSegment)
	require.NoError(t, err)
	assert.Equal(t, Sentence{
		{"I", "PRP", "@dis"},
		{"think", "VBP", "@dis"},
		{"I", "PRP", "O"},
		{"know", "VBP", "O"},
	}, sentence)
}

func TestCoNLLWithoutPOS(t *testing.T) {
	sentence, err := CoNLL(types.Segment{
		{Surface: "uh", Tag: types.TagDisfluent},
		{Surface: "home"},
	})
	require.NoError(t, err)
	assert.Equal(t, Sentence{
		{"uh", NoPOS, "@dis"},
		{"home", NoPOS, "O"},
	}, sentence)
}

func TestCoNLLPlainSurfaces(t *testing.T) {
	sentence, err := CoNLL(types.Segment{
		{Surface: "1/2", Plain: true},
		{Surface: "and/or", Plain: true, Tag: types.TagDisfluent},
		{Surface: "http://x.com/a", Plain: true},
	})
	require.NoError(t, err)
	assert.Equal(t, Sentence{
		{"1/2", NoPOS, "O"},
		{"and/or", NoPOS, "@dis"},
		{"http://x.com/a", NoPOS, "O"},
	}, sentence)
}

func TestBadTokenShape(t *testing.T) {
	segments := []types.Segment{
		{{Surface: "and/or/CC"}},
		{{Surface: "home"}, {Surface: ""}},
	}
	for _, segment := range segments {
		_, err := CoNLL(segment)
		assert.ErrorIs(t, err, ErrBadTokenShape)
		_, err = Bitext(segment)
		assert.ErrorIs(t, err, ErrBadTokenShape)
	}
	var shapeErr *TokenShapeError
	_, err := CoNLL(segments[1])
	require.ErrorAs(t, err, &shapeErr)
	assert.Equal(t, 1, shapeErr.Index)
}

func TestBitext(t *testing.T) {
	pair, err := Bitext(repairSegment)
	require.NoError(t, err)
	assert.Equal(t, "I think I know", pair.Raw)
	assert.Equal(t, "I know", pair.Clean)

	pair, err = Bitext(types.Segment{})
	require.NoError(t, err)
	assert.Equal(t, Pair{}, pair)
}

func TestWriteCoNLL(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCoNLL(&buf, []Sentence{
		{{"uh", "UH", "@dis"}, {"yes", "UH", "O"}},
		{{"okay", "UH", "O"}},
	}))
	assert.Equal(t, "uh\tUH\t@dis\nyes\tUH\tO\n\nokay\tUH\tO\n",
		buf.String())
}

func TestWriteBitext(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteBitext(&buf, []Pair{
		{Raw: "I I like it", Clean: "I like it"},
	}))
	assert.Equal(t, "I I like it\tI like it\n", buf.String())
}
