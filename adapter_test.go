package disfl_corpus

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wbrown/disfl_corpus/resources"
)

// whitespaceTokenizer keeps adapter tests independent of any tokenizer
// model.
type whitespaceTokenizer struct{}

func (whitespaceTokenizer) Tokenize(text string) []string {
	return strings.Fields(text)
}

// terminalSplitter ends a sentence at `.`, `?` or `!` followed by a space.
type terminalSplitter struct{}

func (terminalSplitter) Split(text string) []string {
	sentences := make([]string, 0)
	begin := 0
	for idx := 0; idx < len(text)-1; idx++ {
		if strings.IndexByte(".?!", text[idx]) >= 0 && text[idx+1] == ' ' {
			if sentence := strings.TrimSpace(
				text[begin : idx+1]); sentence != "" {
				sentences = append(sentences, sentence)
			}
			begin = idx + 1
		}
	}
	if sentence := strings.TrimSpace(text[begin:]); sentence != "" {
		sentences = append(sentences, sentence)
	}
	return sentences
}

func sample(t *testing.T, name string) []byte {
	rsrc, err := resources.GetEmbeddedResource(name)
	require.NoError(t, err)
	return *rsrc.Data
}

func testAdapter(t *testing.T, corpusType CorpusType) Adapter {
	adapter, err := NewAdapter(corpusType, whitespaceTokenizer{},
		terminalSplitter{})
	require.NoError(t, err)
	assert.Equal(t, corpusType, adapter.CorpusType())
	return adapter
}

type annotated struct {
	text string
	line int
}

// drain collects every annotation, with runs of whitespace collapsed.
func drain(iter AnnotationsIterator) ([]annotated, error) {
	annotations := make([]annotated, 0)
	for {
		annotation, err := iter()
		if err != nil {
			return annotations, err
		}
		if annotation == nil {
			return annotations, nil
		}
		annotations = append(annotations, annotated{
			strings.Join(strings.Fields(annotation.Text), " "),
			annotation.Line,
		})
	}
}

func TestParseCorpusType(t *testing.T) {
	for name, expected := range map[string]CorpusType{
		"dps":         CorpusSwitchboard,
		"plain":       CorpusSwitchboard,
		"Switchboard": CorpusSwitchboard,
		"scotus":      CorpusSCOTUS,
		" read-aloud": CorpusSCOTUS,
		"fcic":        CorpusFCIC,
		"interview":   CorpusFCIC,
		"CALLHOME":    CorpusCallHome,
		"two-channel": CorpusCallHome,
	} {
		corpusType, err := ParseCorpusType(name)
		require.NoError(t, err, name)
		assert.Equal(t, expected, corpusType, name)
	}
	_, err := ParseCorpusType("mgd")
	assert.ErrorIs(t, err, ErrUnsupportedCorpusType)
	assert.Equal(t, "callhome", CorpusCallHome.String())
	assert.Equal(t, "CorpusType(9)", CorpusType(9).String())

	_, err = NewAdapter(CorpusType(9), whitespaceTokenizer{},
		terminalSplitter{})
	assert.ErrorIs(t, err, ErrUnsupportedCorpusType)
}

func TestSwitchboardAdapter(t *testing.T) {
	annotations, err := drain(testAdapter(t, CorpusSwitchboard).Adapt(
		sample(t, "sw4004.dps")))
	require.NoError(t, err)
	assert.Equal(t, []annotated{
		{"Okay/UH ./. E_S", 6},
		{"{ F Uh/UH ,/, } [ I/PRP think/VBP + I/PRP know/VBP ] it/PRP " +
			"was/VBD good/JJ ./. E_S", 7},
		{"{ C And/CC } we/PRP went/VBD to/IN the/DT th-/XX theater/NN " +
			"./. E_S", 10},
		{"[ [ I/PRP + I/PRP ] + I/PRP ] like/VBP it/PRP { E I/PRP " +
			"mean/VBP } yeah/UH ./. N_S", 11},
	}, annotations)
}

func TestSwitchboardInlineHeader(t *testing.T) {
	text := "preamble { ignored\n" +
		"Speaker A: I {uh} [went + go] home .\n" +
		"Speakers/NNS are/VBP loud/JJ\n" +
		"\n" +
		"SpeakerB2/SYM ./.\n" +
		"okay"
	annotations, err := drain(testAdapter(t, CorpusSwitchboard).Adapt(
		[]byte(text)))
	require.NoError(t, err)
	assert.Equal(t, []annotated{
		{"I { uh } [ went + go ] home .", 2},
		{"Speakers/NNS are/VBP loud/JJ", 3},
		{"okay", 6},
	}, annotations)
}

func TestSpeakerTurn(t *testing.T) {
	header, inline := speakerTurn("SpeakerA1/SYM ./.")
	assert.True(t, header)
	assert.Empty(t, inline)
	header, inline = speakerTurn("Speaker B: so what")
	assert.True(t, header)
	assert.Equal(t, "so what", inline)
	header, _ = speakerTurn("Speakers/NNS are/VBP")
	assert.False(t, header)
	header, _ = speakerTurn("the Speaker A: said")
	assert.False(t, header)
}

func TestSCOTUSAdapter(t *testing.T) {
	annotations, err := drain(testAdapter(t, CorpusSCOTUS).Adapt(
		sample(t, "scotus.txt")))
	require.NoError(t, err)
	assert.Equal(t, []annotated{
		{"Mr. Chief Justice, and may it please the Court.", 1},
		{"The -- the statute does not say that.", 2},
		{"We think { uh } the answer is no.", 4},
	}, annotations)
}

func TestFCICAdapter(t *testing.T) {
	annotations, err := drain(testAdapter(t, CorpusFCIC).Adapt(
		sample(t, "fcic.txt")))
	require.NoError(t, err)
	assert.Equal(t, []annotated{
		{"I think we were looking at the numbers.", 2},
		{"And then we stopped.", 2},
		{"Right.", 6},
	}, annotations)

	annotations, err = drain(testAdapter(t, CorpusFCIC).Adapt([]byte(
		"MR. BONDI:\nwe looked\nat it. Then we\nstopped. Later.\n")))
	require.NoError(t, err)
	assert.Equal(t, []annotated{
		{"we looked at it.", 2},
		{"Then we stopped.", 3},
		{"Later.", 4},
	}, annotations)
}

func TestCallHomeAdapter(t *testing.T) {
	annotations, err := drain(testAdapter(t, CorpusCallHome).Adapt(
		sample(t, "callhome.txt")))
	require.NoError(t, err)
	assert.Equal(t, []annotated{
		{"yeah I was going there and then Maria came.", 2},
		{"she said hi.", 4},
		{"oh really?", 3},
		{"mhm", 5},
	}, annotations)
}

func TestLocateSentences(t *testing.T) {
	entries := []sourceLine{
		{"first one. second", 7},
		{"half. third", 9},
		{"fourth.", 12},
	}
	located := locateSentences(terminalSplitter{}, entries)
	assert.Equal(t, []sourceLine{
		{"first one.", 7},
		{"second half.", 7},
		{"third fourth.", 9},
	}, located)
}

func TestCallHomeSingleSentence(t *testing.T) {
	text := "1.0 2.0 A: hello there\n" +
		"2.5 3.0 B: %uh hi\n" +
		"3.0 4.0 A: how are you\n"
	annotations, err := drain(testAdapter(t, CorpusCallHome).Adapt(
		[]byte(text)))
	require.NoError(t, err)
	assert.Equal(t, []annotated{
		{"hello there", 1},
		{"how are you", 3},
		{"hi", 2},
	}, annotations)
}

func TestCallHomeMalformed(t *testing.T) {
	cases := []struct {
		text   string
		reason string
		line   int
	}{
		{"1.0 2.0 A: fine\n1.0 2.0 no separator here\n", "separator", 2},
		{"1.0 2.0 A: fine\n\n3.0 4.0 C: third party\n", "label", 3},
	}
	for _, tc := range cases {
		iter := testAdapter(t, CorpusCallHome).Adapt([]byte(tc.text))
		annotation, err := iter()
		assert.Nil(t, annotation)
		require.ErrorIs(t, err, ErrMalformedLine)
		var malformed *MalformedLineError
		require.ErrorAs(t, err, &malformed)
		assert.Contains(t, malformed.Reason, tc.reason)
		assert.Equal(t, tc.line, malformed.Line)

		annotation, err = iter()
		assert.Nil(t, annotation)
		assert.NoError(t, err)
	}
}

func TestEmptyInput(t *testing.T) {
	for _, corpusType := range []CorpusType{CorpusSwitchboard,
		CorpusSCOTUS, CorpusFCIC, CorpusCallHome} {
		annotations, err := drain(testAdapter(t, corpusType).Adapt(nil))
		require.NoError(t, err)
		assert.Empty(t, annotations, corpusType.String())
	}
}
