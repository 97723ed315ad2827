package stree

import "slices"

// Find reports the starting offset of an occurrence of pattern in the text.
// Which occurrence is returned is unspecified when the pattern repeats; the
// offset always satisfies text[off:off+len(pattern)] == pattern.
//
// The empty pattern matches at the root by convention: (0, true), even for
// the empty text. A miss is the false return, never an error.
//
// Find walks at most one edge comparison per pattern symbol and never
// mutates the tree.
func (t *Tree) Find(pattern string) (int, bool) {
	if pattern == "" {
		return 0, true
	}

	h := rootNode
	i := 0
	for {
		child, ok := t.nodes[h].children[int16(pattern[i])]
		if !ok {
			return 0, false
		}
		pos := t.nodes[child].start
		end := t.endOf(child)
		for pos <= end {
			if t.sym(pos) != int16(pattern[i]) {
				return 0, false
			}
			i++
			pos++
			if i == len(pattern) {
				return int(pos) - len(pattern), true
			}
		}
		h = child
	}
}

// LongestRepeatingSubstring returns the historical repeat answer: the
// internal node with the greatest fixed end offset wins, descending into
// the best candidate's subtree only, and the text is sliced from offset
// zero through that end offset.
//
// Both quirks are kept on purpose so callers relying on the old answers
// keep getting them: end offset is only a proxy for path depth, and the
// offset-zero slice returns a prefix of the text rather than the winning
// node's own path label. LongestRepeat answers the question the name
// suggests.
func (t *Tree) LongestRepeatingSubstring() string {
	h := t.deepestInternal()
	if h == rootNode {
		return ""
	}
	return t.text[:t.nodes[h].end]
}

// deepestInternal descends from the root, at each level moving to the child
// internal node with the greatest fixed end offset, until no internal child
// improves on the current node. Children are visited in symbol order so that
// ties resolve the same way on every call.
func (t *Tree) deepestInternal() int32 {
	h := rootNode
	for {
		best := h
		for _, c := range t.childrenInOrder(h) {
			if len(t.nodes[c].children) > 0 && t.nodes[c].end > t.nodes[best].end {
				best = c
			}
		}
		if best == h {
			return h
		}
		h = best
	}
}

// childrenInOrder returns h's child handles in ascending edge-symbol order.
// The children maps have randomized iteration order, so any walk that breaks
// ties by "first seen" must go through here to stay a pure function of the
// tree.
func (t *Tree) childrenInOrder(h int32) []int32 {
	m := t.nodes[h].children
	syms := make([]int16, 0, len(m))
	for s := range m {
		syms = append(syms, s)
	}
	slices.Sort(syms)
	out := make([]int32, len(syms))
	for i, s := range syms {
		out[i] = m[s]
	}
	return out
}

// LongestRepeat returns the longest substring that occurs at least twice in
// the text, or "" when nothing repeats. A substring repeats exactly when it
// labels the path to an internal node below the root, so this is a walk
// over internal nodes maximizing path length.
func (t *Tree) LongestRepeat() string {
	type frame struct {
		h     int32
		depth int32 // label length of the path through h
	}

	best := frame{rootNode, 0}
	stack := []frame{{rootNode, 0}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, c := range t.childrenInOrder(f.h) {
			if len(t.nodes[c].children) == 0 {
				continue
			}
			d := f.depth + t.edgeLength(c)
			if d > best.depth {
				best = frame{c, d}
			}
			stack = append(stack, frame{c, d})
		}
	}

	if best.h == rootNode {
		return ""
	}
	// An internal node's path label is the text slice ending at its fixed
	// end offset, depth symbols long. Internal labels never contain the
	// terminator, so the slice stays inside the text.
	end := t.nodes[best.h].end
	return t.text[end+1-best.depth : end+1]
}
