package disfl_corpus

import (
	"strings"

	"github.com/wbrown/disfl_corpus/types"
)

// Switchboard bracket markers. `C` (coordinating conjunction) and `E`
// (editing term) spans are dropped outright; the others mark their content
// disfluent.
const (
	MarkerFiller      = "F"
	MarkerEditingTerm = "E"
	MarkerDiscourse   = "D"
	MarkerConjunction = "C"
	MarkerAside       = "A"
)

var bracketMarkers = map[string]bool{
	MarkerFiller:      true,
	MarkerEditingTerm: true,
	MarkerDiscourse:   true,
	MarkerConjunction: true,
	MarkerAside:       true,
}

type stackElement struct {
	text     string
	tag      types.Tag
	markup   bool
	position int
}

// parseStack
// Elements live in elems[0:top]; slots past top are reused by later pushes.
type parseStack struct {
	elems []stackElement
	top   int
	flat  []stackElement
}

func newParseStack(capacity int) *parseStack {
	return &parseStack{
		elems: make([]stackElement, capacity),
		flat:  make([]stackElement, 0, capacity),
	}
}

func (stack *parseStack) push(elem stackElement) {
	if stack.top < len(stack.elems) {
		stack.elems[stack.top] = elem
	} else {
		stack.elems = append(stack.elems, elem)
	}
	stack.top++
}

// lastOpen
// Index of the nearest unmatched opener of the given kind, or -1. Closed
// spans are collapsed as soon as they are reduced, so any opener still on
// the stack is unmatched.
func (stack *parseStack) lastOpen(symbol string) int {
	for idx := stack.top - 1; idx >= 0; idx-- {
		if stack.elems[idx].markup && stack.elems[idx].text == symbol {
			return idx
		}
	}
	return -1
}

// replace
// Collapses elems[from:top] into whatever was collected in flat.
func (stack *parseStack) replace(from int) {
	stack.top = from
	for idx := range stack.flat {
		stack.push(stack.flat[idx])
	}
	stack.flat = stack.flat[:0]
}

// reduceCurly
// Resolves `{ ... }` against the nearest unmatched `{`.
func (stack *parseStack) reduceCurly(position int,
	stripPunctuation bool) error {
	open := stack.lastOpen(OpenCurly)
	if open < 0 {
		return &MarkupError{position, CloseCurly, "no matching opener for"}
	}
	span := stack.elems[open+1 : stack.top]
	marker := ""
	if len(span) > 0 && !span[0].markup && bracketMarkers[span[0].text] {
		marker = span[0].text
		span = span[1:]
	}
	for idx := range span {
		elem := span[idx]
		if elem.markup {
			if elem.text != Interrupt {
				return &MarkupError{position, elem.text,
					"crossing bracket inside {} closed at"}
			}
			// An interruption point belongs to an enclosing repair.
			stack.flat = append(stack.flat, elem)
			continue
		}
		if marker == MarkerConjunction || marker == MarkerEditingTerm {
			continue
		}
		if stripPunctuation && startsWithPunctuation(elem.text) {
			continue
		}
		elem.tag = types.TagDisfluent
		stack.flat = append(stack.flat, elem)
	}
	stack.replace(open)
	return nil
}

// reduceSquare
// Resolves `[ reparandum + repair ]` against the nearest unmatched `[`.
func (stack *parseStack) reduceSquare(position int,
	stripPunctuation bool) error {
	open := stack.lastOpen(OpenSquare)
	if open < 0 {
		return &MarkupError{position, CloseSquare, "no matching opener for"}
	}
	interrupt := -1
	for idx := stack.top - 1; idx > open; idx-- {
		if stack.elems[idx].markup && stack.elems[idx].text == Interrupt {
			interrupt = idx
			break
		}
	}
	if interrupt < 0 {
		return &MarkupError{position, CloseSquare,
			"no interruption point before"}
	}
	for idx := open + 1; idx < stack.top; idx++ {
		elem := stack.elems[idx]
		if elem.markup {
			if elem.text != Interrupt {
				return &MarkupError{position, elem.text,
					"crossing bracket inside [] closed at"}
			}
			continue
		}
		if stripPunctuation && startsWithPunctuation(elem.text) {
			continue
		}
		if idx < interrupt {
			elem.tag = types.TagDisfluent
		}
		stack.flat = append(stack.flat, elem)
	}
	stack.replace(open)
	return nil
}

// segment
// Converts the fully reduced stack into its output form.
func (stack *parseStack) segment() (types.Segment, error) {
	segment := make(types.Segment, 0, stack.top)
	for idx := 0; idx < stack.top; idx++ {
		elem := stack.elems[idx]
		if elem.markup {
			return nil, &MarkupError{elem.position, elem.text, "unclosed"}
		}
		segment = append(segment, types.Token{
			Surface: elem.text,
			Tag:     elem.tag,
		})
	}
	return segment, nil
}

// Flatten
// Parses one canonical annotation string and returns its flat tagged token
// sequence. Brackets are matched to the nearest unmatched opener of the same
// kind; anything left unbalanced is reported as ErrUnbalancedMarkup.
func Flatten(annotation string, stripPunctuation bool) (types.Segment,
	error) {
	units := strings.Fields(annotation)
	stack := newParseStack(len(units))
	for position, unit := range units {
		if isPartialWord(unit) || isTurnMarker(unit) {
			continue
		}
		switch {
		case unit == CloseCurly:
			if err := stack.reduceCurly(position,
				stripPunctuation); err != nil {
				return nil, err
			}
		case unit == CloseSquare:
			if err := stack.reduceSquare(position,
				stripPunctuation); err != nil {
				return nil, err
			}
		case isMarkup(unit):
			stack.push(stackElement{text: unit, markup: true,
				position: position})
		default:
			literal, tag := splitTag(unit)
			if literal == "" {
				continue
			}
			if stripPunctuation && isPunctuationWord(literal) {
				continue
			}
			stack.push(stackElement{text: literal, tag: tag,
				position: position})
		}
	}
	return stack.segment()
}
