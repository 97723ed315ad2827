package stree

import (
	"strings"
	"testing"
)

var buildTexts = []string{
	"",
	"a",
	"aa",
	"aaaa",
	"ab",
	"banana",
	"abcabc",
	"mississippi",
	"abracadabra",
	"the quick brown fox jumps over the lazy dog",
	"xyxyxyxyxy",
}

func mustTree(t *testing.T, text string) *Tree {
	t.Helper()
	tree, err := New(text)
	if err != nil {
		t.Fatalf("New(%q): %v", text, err)
	}
	return tree
}

func TestFindConcrete(t *testing.T) {
	testCases := []struct {
		text    string
		pattern string
		found   bool
	}{
		{"banana", "ana", true},
		{"banana", "banana", true},
		{"banana", "nan", true},
		{"banana", "a", true},
		{"banana", "xyz", false},
		{"banana", "bananaa", false},
		{"banana", "ab", false},
		{"abcabc", "cab", true},
		{"abcabc", "abcabc", true},
		{"abcabc", "cc", false},
		{"", "a", false},
		{"aaaa", "aaaa", true},
		{"aaaa", "aaaaa", false},
		{"mississippi", "issip", true},
		{"mississippi", "ssippi", true},
		{"mississippi", "missis", true},
		{"mississippi", "sips", false},
	}

	for _, tc := range testCases {
		tree := mustTree(t, tc.text)
		off, found := tree.Find(tc.pattern)
		if found != tc.found {
			t.Errorf("Find(%q) in %q: found=%v, want %v", tc.pattern, tc.text, found, tc.found)
			continue
		}
		if !found {
			continue
		}
		if got := tc.text[off : off+len(tc.pattern)]; got != tc.pattern {
			t.Errorf("Find(%q) in %q returned offset %d which reads %q", tc.pattern, tc.text, off, got)
		}
	}
}

func TestFindKnownOffsets(t *testing.T) {
	tree := mustTree(t, "abcabc")
	if off, found := tree.Find("cab"); !found || off != 2 {
		t.Errorf("Find(\"cab\") = (%d, %v), want (2, true)", off, found)
	}

	tree = mustTree(t, "banana")
	off, found := tree.Find("ana")
	if !found || (off != 1 && off != 3) {
		t.Errorf("Find(\"ana\") = (%d, %v), want offset 1 or 3", off, found)
	}
}

// Every suffix of the text must be findable at a real occurrence.
func TestFindAllSuffixes(t *testing.T) {
	for _, text := range buildTexts {
		tree := mustTree(t, text)
		for i := 0; i < len(text); i++ {
			suffix := text[i:]
			off, found := tree.Find(suffix)
			if !found {
				t.Fatalf("text %q: suffix %q not found", text, suffix)
			}
			if text[off:off+len(suffix)] != suffix {
				t.Fatalf("text %q: Find(%q) returned offset %d which reads %q",
					text, suffix, off, text[off:off+len(suffix)])
			}
		}
	}
}

// Every substring must be findable, and the reported offset must be a
// genuine occurrence.
func TestFindAllSubstrings(t *testing.T) {
	for _, text := range buildTexts {
		tree := mustTree(t, text)
		for i := 0; i < len(text); i++ {
			for j := i + 1; j <= len(text); j++ {
				sub := text[i:j]
				off, found := tree.Find(sub)
				if !found {
					t.Fatalf("text %q: substring %q not found", text, sub)
				}
				if text[off:off+len(sub)] != sub {
					t.Fatalf("text %q: Find(%q) = %d, occurrence reads %q",
						text, sub, off, text[off:off+len(sub)])
				}
			}
		}
	}
}

func TestFindMisses(t *testing.T) {
	tree := mustTree(t, "banana")
	for _, pattern := range []string{"x", "bn", "anab", "bananas", "nanana", "$"} {
		if off, found := tree.Find(pattern); found {
			t.Errorf("Find(%q) = (%d, true), want miss", pattern, off)
		}
	}
}

func TestFindEmptyPattern(t *testing.T) {
	for _, text := range []string{"", "banana"} {
		tree := mustTree(t, text)
		for n := 0; n < 3; n++ {
			off, found := tree.Find("")
			if !found || off != 0 {
				t.Errorf("text %q: Find(\"\") = (%d, %v), want (0, true)", text, off, found)
			}
		}
	}
}

func TestFindIdempotent(t *testing.T) {
	tree := mustTree(t, "mississippi")
	patterns := []string{"issi", "ssi", "ppi", "miss", "zz"}
	for _, p := range patterns {
		off1, found1 := tree.Find(p)
		for n := 0; n < 10; n++ {
			off, found := tree.Find(p)
			if off != off1 || found != found1 {
				t.Fatalf("Find(%q) changed between calls: (%d,%v) then (%d,%v)",
					p, off1, found1, off, found)
			}
		}
	}
}

// Two trees built from the same text must answer every query identically.
func TestConstructionDeterministic(t *testing.T) {
	for _, text := range buildTexts {
		a := mustTree(t, text)
		b := mustTree(t, text)
		if a.NodeCount() != b.NodeCount() {
			t.Errorf("text %q: node counts differ: %d vs %d", text, a.NodeCount(), b.NodeCount())
		}
		for i := 0; i < len(text); i++ {
			for j := i + 1; j <= len(text); j++ {
				sub := text[i:j]
				offA, foundA := a.Find(sub)
				offB, foundB := b.Find(sub)
				if offA != offB || foundA != foundB {
					t.Fatalf("text %q: Find(%q) diverges: (%d,%v) vs (%d,%v)",
						text, sub, offA, foundA, offB, foundB)
				}
			}
		}
	}
}

// Tied repeat candidates must resolve the same way on every call: both walks
// visit children in symbol order, never in map order.
func TestRepeatQueriesDeterministic(t *testing.T) {
	texts := append([]string{"caabcbb", "baabbababaabbabaaa", "cbacbab"}, buildTexts...)
	for _, text := range texts {
		tree := mustTree(t, text)
		wantRepeat := tree.LongestRepeat()
		wantParity := tree.LongestRepeatingSubstring()
		for i := 0; i < 60; i++ {
			if got := tree.LongestRepeat(); got != wantRepeat {
				t.Fatalf("text %q: LongestRepeat() flipped: %q then %q", text, wantRepeat, got)
			}
			if got := tree.LongestRepeatingSubstring(); got != wantParity {
				t.Fatalf("text %q: LongestRepeatingSubstring() flipped: %q then %q", text, wantParity, got)
			}
		}
		// A fresh tree over the same text must agree too.
		other := mustTree(t, text)
		if got := other.LongestRepeat(); got != wantRepeat {
			t.Errorf("text %q: LongestRepeat() differs across builds: %q vs %q", text, wantRepeat, got)
		}
		if got := other.LongestRepeatingSubstring(); got != wantParity {
			t.Errorf("text %q: LongestRepeatingSubstring() differs across builds: %q vs %q", text, wantParity, got)
		}
	}
}

func TestLongestRepeat(t *testing.T) {
	testCases := []struct {
		text string
		want string
	}{
		{"", ""},
		{"a", ""},
		{"abcd", ""},
		{"aaaa", "aaa"},
		{"banana", "ana"},
		{"abcabc", "abc"},
		{"mississippi", "issi"},
		{"xyxyxyxyxy", "xyxyxyxy"},
	}

	for _, tc := range testCases {
		tree := mustTree(t, tc.text)
		if got := tree.LongestRepeat(); got != tc.want {
			t.Errorf("LongestRepeat(%q) = %q, want %q", tc.text, got, tc.want)
		}
	}
}

// countOccurrences counts occurrences of sub in text, overlaps included.
func countOccurrences(text, sub string) int {
	n := 0
	for i := 0; i+len(sub) <= len(text); i++ {
		if text[i:i+len(sub)] == sub {
			n++
		}
	}
	return n
}

// The repeat answer must always occur at least twice in the text.
func TestLongestRepeatOccursTwice(t *testing.T) {
	for _, text := range buildTexts {
		tree := mustTree(t, text)
		repeat := tree.LongestRepeat()
		if repeat == "" {
			continue
		}
		if countOccurrences(text, repeat) < 2 {
			t.Errorf("text %q: LongestRepeat() = %q occurs fewer than twice", text, repeat)
		}
	}
}

// LongestRepeatingSubstring keeps the historical end-offset heuristic and
// the offset-zero slice; these pins document the exact behavior.
func TestLongestRepeatingSubstringParity(t *testing.T) {
	testCases := []struct {
		text string
		want string
	}{
		{"", ""},
		{"a", ""},
		{"abcd", ""},
		{"aaaa", "aa"},
		{"banana", "ban"},
		{"abcabc", "ab"},
	}

	for _, tc := range testCases {
		tree := mustTree(t, tc.text)
		if got := tree.LongestRepeatingSubstring(); got != tc.want {
			t.Errorf("LongestRepeatingSubstring(%q) = %q, want %q", tc.text, got, tc.want)
		}
	}
}

func TestEmptyText(t *testing.T) {
	tree := mustTree(t, "")
	if off, found := tree.Find(""); !found || off != 0 {
		t.Errorf("Find(\"\") = (%d, %v), want (0, true)", off, found)
	}
	if _, found := tree.Find("a"); found {
		t.Error("Find(\"a\") on empty text reported a match")
	}
	if got := tree.LongestRepeatingSubstring(); got != "" {
		t.Errorf("LongestRepeatingSubstring() = %q, want \"\"", got)
	}
	if got := tree.LongestRepeat(); got != "" {
		t.Errorf("LongestRepeat() = %q, want \"\"", got)
	}
}

// The arena should stay linear in the text: a suffix tree over n symbols
// plus the terminator has at most 2(n+1) nodes beyond the root.
func TestNodeCountLinear(t *testing.T) {
	for _, text := range buildTexts {
		tree := mustTree(t, text)
		limit := 2*(len(text)+1) + 1
		if tree.NodeCount() > limit {
			t.Errorf("text %q: %d nodes exceeds limit %d", text, tree.NodeCount(), limit)
		}
	}
}

func TestBinaryText(t *testing.T) {
	// Texts containing every byte value, including NUL, must index fine.
	var b strings.Builder
	for i := 0; i < 256; i++ {
		b.WriteByte(byte(i))
	}
	text := b.String() + "\x00\x01\x02"
	tree := mustTree(t, text)

	off, found := tree.Find("\x00\x01\x02")
	if !found {
		t.Fatal("byte pattern not found")
	}
	if text[off:off+3] != "\x00\x01\x02" {
		t.Fatalf("offset %d is not an occurrence", off)
	}
	if got := tree.LongestRepeat(); got != "\x00\x01\x02" {
		t.Errorf("LongestRepeat() = %q, want %q", got, "\x00\x01\x02")
	}
}

func BenchmarkNew(b *testing.B) {
	text := strings.Repeat("abracadabra mississippi banana ", 64)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := New(text); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFind(b *testing.B) {
	text := strings.Repeat("abracadabra mississippi banana ", 64)
	tree, err := New(text)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree.Find("mississippi banana abracadabra")
	}
}
