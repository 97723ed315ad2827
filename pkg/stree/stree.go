// Package stree is the core, building an online suffix tree over a byte text
// with Ukkonen's algorithm and answering substring and repeat queries on it.
//
// The tree is built once, in a single pass over the text, and is read-only
// afterwards. Construction runs in amortized linear time: every open leaf
// shares one live end marker so extending all leaf edges in a phase is a
// single increment, and suffix links let the active point jump between
// extension sites without rewalking from the root.
//
// Nodes live in a growable arena and refer to each other by int32 handles.
// A suffix link is just another handle into the same arena, never a second
// owner of the node it points at.
package stree

import "errors"

// MaxTextLen bounds the input so every text position and node handle fits
// in an int32 handle.
const MaxTextLen = 1<<30 - 2

// ErrTextTooLong is returned by New when the text cannot be indexed.
var ErrTextTooLong = errors.New("stree: text exceeds maximum indexable length")

const (
	rootNode = int32(0)
	noNode   = int32(-1)

	// openEnd marks a leaf whose edge end tracks the tree's live end marker.
	openEnd = int32(-2)

	// term is the virtual terminator symbol, outside the byte range so it
	// can never collide with text content.
	term = int16(256)
)

type node struct {
	// start and end are offsets (inclusive) into the text for the edge
	// leading to this node. end is openEnd while the leaf is still growing.
	start int32
	end   int32

	// link is a non-owning cross reference used only during construction.
	// New nodes point at the root until the algorithm resolves them.
	link int32

	children map[int16]int32
}

// Tree is a suffix tree over a fixed text.
//
// All mutation happens inside New; the active point fields below are dead
// weight once construction returns and every query method is read-only, so
// finished trees may be queried from multiple goroutines.
type Tree struct {
	text  string
	nodes []node

	// leafEnd is the live end marker shared by every open leaf.
	leafEnd int32

	activeNode   int32
	activeEdge   int32
	activeLength int32
	remaining    int32
}

// New builds the suffix tree for text. It fails only when the text is too
// long to index; any other input, including the empty string, yields a
// valid tree.
func New(text string) (*Tree, error) {
	if len(text) > MaxTextLen {
		return nil, ErrTextTooLong
	}
	t := &Tree{
		text:       text,
		leafEnd:    -1,
		activeEdge: -1,
	}
	t.nodes = append(t.nodes, node{start: 0, end: -1, link: rootNode, children: make(map[int16]int32)})

	// One phase per text position, plus a final phase for the terminator
	// so every repeated substring ends at an explicit internal node.
	for i := int32(0); i <= int32(len(text)); i++ {
		t.remaining++
		t.leafEnd++ // Rule 1: every open leaf grows by one symbol
		t.extend(i)
	}
	return t, nil
}

// Text returns the indexed text.
func (t *Tree) Text() string { return t.text }

// NodeCount reports the number of nodes in the arena, root included.
func (t *Tree) NodeCount() int { return len(t.nodes) }

// sym reads the symbol at pos, mapping the one-past-the-end position to the
// virtual terminator.
func (t *Tree) sym(pos int32) int16 {
	if pos == int32(len(t.text)) {
		return term
	}
	return int16(t.text[pos])
}

func (t *Tree) endOf(h int32) int32 {
	if t.nodes[h].end == openEnd {
		return t.leafEnd
	}
	return t.nodes[h].end
}

func (t *Tree) edgeLength(h int32) int32 {
	return t.endOf(h) - t.nodes[h].start + 1
}

func (t *Tree) newNode(start, end int32) int32 {
	h := int32(len(t.nodes))
	t.nodes = append(t.nodes, node{start: start, end: end, link: rootNode, children: make(map[int16]int32)})
	return h
}

// walkDown advances the active point past h when the matched length spans
// its whole edge. Traversal only, not an extension.
func (t *Tree) walkDown(h int32) bool {
	l := t.edgeLength(h)
	if t.activeLength < l {
		return false
	}
	t.activeLength -= l
	t.activeEdge += l
	t.activeNode = h
	return true
}

// extend performs all extensions of phase i. Rule order is fixed: walk-down
// first, then new-leaf (Rule 2), then show-stopper (Rule 3), then split.
func (t *Tree) extend(i int32) {
	last := noNode // internal node created this phase, suffix link pending

	for t.remaining > 0 {
		if t.activeLength == 0 {
			t.activeEdge = i
		}

		next, ok := t.nodes[t.activeNode].children[t.sym(t.activeEdge)]
		if !ok {
			// Rule 2: no edge starts with the current symbol here.
			leaf := t.newNode(i, openEnd)
			t.nodes[t.activeNode].children[t.sym(t.activeEdge)] = leaf
			if last != noNode {
				t.nodes[last].link = t.activeNode
				last = noNode
			}
		} else {
			if t.walkDown(next) {
				continue
			}

			if t.sym(i) == t.sym(t.nodes[next].start+t.activeLength) {
				// Rule 3: the suffix is already implicit in the tree.
				// Nothing after it needs inserting this phase.
				if last != noNode && t.activeNode != rootNode {
					t.nodes[last].link = t.activeNode
					last = noNode
				}
				t.activeLength++
				break
			}

			// Mismatch inside the edge: split it at the matched prefix.
			start := t.nodes[next].start
			split := t.newNode(start, start+t.activeLength-1)
			t.nodes[t.activeNode].children[t.sym(t.activeEdge)] = split
			leaf := t.newNode(i, openEnd)
			t.nodes[split].children[t.sym(i)] = leaf
			t.nodes[next].start += t.activeLength
			t.nodes[split].children[t.sym(t.nodes[next].start)] = next

			if last != noNode {
				t.nodes[last].link = split
			}
			last = split
		}

		t.remaining--

		if t.activeNode == rootNode && t.activeLength > 0 {
			t.activeLength--
			t.activeEdge = i - t.remaining + 1
		} else if t.activeNode != rootNode {
			t.activeNode = t.nodes[t.activeNode].link
		}
	}
}
