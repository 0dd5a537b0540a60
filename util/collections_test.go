package util

import "testing"

func TestContains(t *testing.T) {
	tests := []struct {
		name  string
		slice []int
		val   int
		want  bool
	}{
		{"found", []int{1, 2, 3}, 2, true},
		{"not found", []int{1, 2, 3}, 4, false},
		{"empty slice", []int{}, 1, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Contains(tc.slice, tc.val); got != tc.want {
				t.Errorf("Contains(%v, %d) = %v, want %v", tc.slice, tc.val, got, tc.want)
			}
		})
	}
}

func TestFilter(t *testing.T) {
	evens := Filter([]int{1, 2, 3, 4, 5, 6}, func(n int) bool { return n%2 == 0 })
	if len(evens) != 3 {
		t.Fatalf("expected 3 evens, got %d", len(evens))
	}
	for _, v := range evens {
		if v%2 != 0 {
			t.Errorf("expected even, got %d", v)
		}
	}
}

func TestMap(t *testing.T) {
	lengths := Map([]string{"a", "bb", "ccc"}, func(s string) int { return len(s) })
	expected := []int{1, 2, 3}
	for i, v := range lengths {
		if v != expected[i] {
			t.Errorf("index %d: expected %d, got %d", i, expected[i], v)
		}
	}
}

func TestUnique(t *testing.T) {
	result := Unique([]int{1, 2, 2, 3, 1, 4})
	expected := []int{1, 2, 3, 4}
	if len(result) != len(expected) {
		t.Fatalf("expected %d unique values, got %d", len(expected), len(result))
	}
	for i, v := range result {
		if v != expected[i] {
			t.Errorf("index %d: expected %d, got %d", i, expected[i], v)
		}
	}
}

func TestKeysAndValues(t *testing.T) {
	m := map[string]int{"a": 1, "b": 2}
	keys := Keys(m)
	if len(keys) != 2 || !Contains(keys, "a") || !Contains(keys, "b") {
		t.Errorf("expected keys [a b], got %v", keys)
	}
	vals := Values(m)
	if len(vals) != 2 || !Contains(vals, 1) || !Contains(vals, 2) {
		t.Errorf("expected values [1 2], got %v", vals)
	}
}

func TestPtrAndDeref(t *testing.T) {
	p := Ptr(42)
	if *p != 42 {
		t.Errorf("expected 42, got %d", *p)
	}
	if Deref(p) != 42 {
		t.Errorf("expected 42, got %d", Deref(p))
	}
	var nilp *int
	if Deref(nilp) != 0 {
		t.Errorf("expected zero value for nil pointer, got %d", Deref(nilp))
	}
}

func TestCoalesce(t *testing.T) {
	if got := Coalesce("", "second", "third"); got != "second" {
		t.Errorf("expected 'second', got %q", got)
	}
	if got := Coalesce(0, 0); got != 0 {
		t.Errorf("expected zero value, got %d", got)
	}
}

func TestCut(t *testing.T) {
	tests := []struct {
		name      string
		slice     []int
		n         int
		wantLeft  int
		wantRight int
	}{
		{"middle", []int{1, 2, 3, 4}, 2, 2, 2},
		{"at zero", []int{1, 2, 3}, 0, 0, 3},
		{"at end", []int{1, 2, 3}, 3, 3, 0},
		{"negative clamps", []int{1, 2, 3}, -1, 0, 3},
		{"beyond end clamps", []int{1, 2, 3}, 10, 3, 0},
		{"empty", []int{}, 1, 0, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			left, right := Cut(tc.slice, tc.n)
			if len(left) != tc.wantLeft || len(right) != tc.wantRight {
				t.Errorf("Cut(%v, %d) = %v, %v; want lengths %d and %d",
					tc.slice, tc.n, left, right, tc.wantLeft, tc.wantRight)
			}
		})
	}
}

func TestCutPreservesOrder(t *testing.T) {
	left, right := Cut([]string{"a", "b", "c"}, 1)
	if left[0] != "a" || right[0] != "b" || right[1] != "c" {
		t.Errorf("unexpected halves: %v, %v", left, right)
	}
}

func TestGroupBy(t *testing.T) {
	groups := GroupBy([]int{1, 2, 3, 4, 5}, func(n int) string {
		if n%2 == 0 {
			return "even"
		}
		return "odd"
	})
	if len(groups["even"]) != 2 {
		t.Errorf("expected 2 evens, got %v", groups["even"])
	}
	if len(groups["odd"]) != 3 {
		t.Errorf("expected 3 odds, got %v", groups["odd"])
	}
}

func TestGroupByPreservesOrder(t *testing.T) {
	groups := GroupBy([]string{"apple", "avocado", "banana"}, func(s string) byte { return s[0] })
	a := groups['a']
	if len(a) != 2 || a[0] != "apple" || a[1] != "avocado" {
		t.Errorf("expected insertion order inside groups, got %v", a)
	}
}

func TestGroupByEmpty(t *testing.T) {
	groups := GroupBy([]int{}, func(n int) int { return n })
	if len(groups) != 0 {
		t.Errorf("expected empty map, got %v", groups)
	}
}

func TestEmptySeq(t *testing.T) {
	count := 0
	for range EmptySeq[int]() {
		count++
	}
	if count != 0 {
		t.Errorf("expected no elements, got %d", count)
	}
}
