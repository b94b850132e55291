package disfl_corpus

import "strings"

type RuneNode struct {
	rune      rune               // The rune this node represents.
	terminal  bool               // If this node ends a complete marker.
	childs    map[rune]*RuneNode // The child nodes.
	childsArr *[]*RuneNode       // The child nodes in an array, for precedence
}

func (root *RuneNode) evaluate(node *RuneNode, r rune) (*RuneNode, bool) {
	// Small fan-outs are kept in an array as well, which is faster to scan
	// than a map lookup.
	if node.childsArr != nil {
		children := *node.childsArr
		for _, child := range children {
			if child.rune == r {
				return child, child.terminal
			}
		}
	} else {
		child, ok := node.childs[r]
		if ok {
			return child, child.terminal
		}
	}
	return nil, false
}

// NewRuneTree
// Builds a trie over the given marker strings.
func NewRuneTree(markers []string) *RuneNode {
	runeTree := &RuneNode{
		childs: make(map[rune]*RuneNode, 0),
	}

	for _, k := range markers {
		keyRunes := []rune(k)
		keyLen := len(keyRunes)
		node := runeTree
		for i := 0; i < keyLen; i++ {
			r := keyRunes[i]
			childNode, ok := node.childs[r]
			if !ok {
				children := make([]*RuneNode, 0)
				node.childs[r] = &RuneNode{
					rune:      r,
					terminal:  i == keyLen-1,
					childs:    make(map[rune]*RuneNode, 0),
					childsArr: &children,
				}
			} else if i == keyLen-1 {
				childNode.terminal = true
			}
			if len(node.childs) > 10 {
				// Past 10 children the map is faster, so drop the array.
				node.childsArr = nil
			} else {
				if node.childsArr == nil {
					children := make([]*RuneNode, 0)
					node.childsArr = &children
				}
				if len(node.childs) != len(*node.childsArr) {
					*node.childsArr = append(*node.childsArr, node.childs[r])
				}
			}
			node = node.childs[r]
		}
	}
	return runeTree
}

// longestMatch
// Length in runes of the longest marker starting at runes[0], or 0.
func (root *RuneNode) longestMatch(runes []rune) int {
	node := root
	matched := 0
	for idx, r := range runes {
		next, terminal := root.evaluate(node, r)
		if next == nil {
			break
		}
		if terminal {
			matched = idx + 1
		}
		node = next
	}
	return matched
}

// ReplaceAll
// Replaces every marker occurrence in text with replacement, scanning left
// to right and preferring the longest marker at each position.
func (root *RuneNode) ReplaceAll(text string, replacement string) string {
	runes := []rune(text)
	var sb strings.Builder
	sb.Grow(len(text))
	for idx := 0; idx < len(runes); {
		if matched := root.longestMatch(runes[idx:]); matched > 0 {
			sb.WriteString(replacement)
			idx += matched
			continue
		}
		sb.WriteRune(runes[idx])
		idx++
	}
	return sb.String()
}
