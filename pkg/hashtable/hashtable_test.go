package hashtable

import (
	"fmt"
	"testing"
)

func TestPutGet(t *testing.T) {
	tbl := New[string, int]()
	if !tbl.IsEmpty() {
		t.Error("fresh table not empty")
	}

	tbl.Put("one", 1)
	tbl.Put("two", 2)
	tbl.Put("three", 3)

	if tbl.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", tbl.Len())
	}
	for key, want := range map[string]int{"one": 1, "two": 2, "three": 3} {
		if v, ok := tbl.Get(key); !ok || v != want {
			t.Errorf("Get(%q) = (%d, %v), want (%d, true)", key, v, ok, want)
		}
	}
	if _, ok := tbl.Get("four"); ok {
		t.Error("Get on missing key reported ok")
	}
}

func TestPutReplaces(t *testing.T) {
	tbl := New[string, int]()
	tbl.Put("k", 1)
	tbl.Put("k", 2)
	if tbl.Len() != 1 {
		t.Fatalf("Len() = %d after replacing, want 1", tbl.Len())
	}
	if v, _ := tbl.Get("k"); v != 2 {
		t.Errorf("Get(\"k\") = %d, want 2", v)
	}
}

func TestPop(t *testing.T) {
	tbl := NewWithBuckets[int, string](1) // single bucket forces one long chain
	for i := 0; i < 10; i++ {
		tbl.Put(i, fmt.Sprintf("v%d", i))
	}

	// Removing from the middle must leave the rest of the chain reachable.
	if v, ok := tbl.Pop(5); !ok || v != "v5" {
		t.Fatalf("Pop(5) = (%q, %v), want (\"v5\", true)", v, ok)
	}
	if _, ok := tbl.Get(5); ok {
		t.Error("popped key still present")
	}
	for _, i := range []int{0, 1, 2, 3, 4, 6, 7, 8, 9} {
		if v, ok := tbl.Get(i); !ok || v != fmt.Sprintf("v%d", i) {
			t.Errorf("Get(%d) = (%q, %v) after unrelated Pop", i, v, ok)
		}
	}

	if _, ok := tbl.Pop(5); ok {
		t.Error("second Pop of same key reported ok")
	}
	if tbl.Len() != 9 {
		t.Errorf("Len() = %d, want 9", tbl.Len())
	}
}

func TestGrowth(t *testing.T) {
	tbl := NewWithBuckets[int, int](2)
	const n = 500
	for i := 0; i < n; i++ {
		tbl.Put(i, i*i)
	}
	if tbl.Len() != n {
		t.Fatalf("Len() = %d, want %d", tbl.Len(), n)
	}
	for i := 0; i < n; i++ {
		if v, ok := tbl.Get(i); !ok || v != i*i {
			t.Fatalf("Get(%d) = (%d, %v) after growth", i, v, ok)
		}
	}
}

func TestStructKeys(t *testing.T) {
	type point struct{ x, y int }
	tbl := New[point, string]()
	tbl.Put(point{1, 2}, "a")
	tbl.Put(point{3, 4}, "b")

	if v, ok := tbl.Get(point{1, 2}); !ok || v != "a" {
		t.Errorf("Get(point{1,2}) = (%q, %v), want (\"a\", true)", v, ok)
	}
	if v, ok := tbl.Pop(point{3, 4}); !ok || v != "b" {
		t.Errorf("Pop(point{3,4}) = (%q, %v), want (\"b\", true)", v, ok)
	}
	if tbl.Len() != 1 {
		t.Errorf("Len() = %d, want 1", tbl.Len())
	}
}

func TestEmptyAfterPops(t *testing.T) {
	tbl := New[string, int]()
	tbl.Put("a", 1)
	tbl.Put("b", 2)
	tbl.Pop("a")
	tbl.Pop("b")
	if !tbl.IsEmpty() {
		t.Errorf("table not empty after popping all keys, Len() = %d", tbl.Len())
	}
}
