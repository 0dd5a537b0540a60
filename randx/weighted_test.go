package randx

import (
	"math"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/angmorpri/morelib/errors"
)

func seeded[T comparable](seed uint64) Option[T] {
	return WithRand[T](rand.New(rand.NewPCG(seed, 0)))
}

func TestFromValues(t *testing.T) {
	l, err := FromValues([]string{"a", "b", "c"}, []float64{1, 2, 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l.Len() != 3 {
		t.Fatalf("expected 3 items, got %d", l.Len())
	}
	if !slices.Equal(l.Values(), []string{"a", "b", "c"}) {
		t.Errorf("unexpected values: %v", l.Values())
	}
	if !slices.Equal(l.Weights(), []float64{1, 2, 3}) {
		t.Errorf("unexpected weights: %v", l.Weights())
	}
}

func TestFromValuesShortWeightsPadWithZero(t *testing.T) {
	l, err := FromValues([]string{"a", "b", "c"}, []float64{1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !slices.Equal(l.Weights(), []float64{1, 0, 0}) {
		t.Errorf("expected missing weights to be 0, got %v", l.Weights())
	}
}

func TestFromValuesSurplusWeightsStored(t *testing.T) {
	l, err := FromValues([]string{"a", "b"}, []float64{1, 2, 7, 9})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := l.Append("c"); err != nil {
		t.Fatalf("Append error: %v", err)
	}
	if w, _ := l.WeightOf("c"); w != 7 {
		t.Errorf("expected stored weight 7, got %v", w)
	}
	if err := l.Append("d"); err != nil {
		t.Fatalf("Append error: %v", err)
	}
	if w, _ := l.WeightOf("d"); w != 9 {
		t.Errorf("expected stored weight 9, got %v", w)
	}
	// Stored weights exhausted, next append falls back to 0.
	if err := l.Append("e"); err != nil {
		t.Fatalf("Append error: %v", err)
	}
	if w, _ := l.WeightOf("e"); w != 0 {
		t.Errorf("expected fallback weight 0, got %v", w)
	}
}

func TestFromValuesNegativeWeight(t *testing.T) {
	_, err := FromValues([]string{"a"}, []float64{-1})
	if !errors.IsCode(err, errors.ErrCodeNegativeValue) {
		t.Errorf("expected NEGATIVE_VALUE, got %v", err)
	}
}

func TestFromFunc(t *testing.T) {
	l, err := FromFunc([]string{"a", "bb", "ccc"}, func(s string) float64 { return float64(len(s)) })
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !slices.Equal(l.Weights(), []float64{1, 2, 3}) {
		t.Errorf("expected weights from key, got %v", l.Weights())
	}
	// The key sticks around for later appends.
	if err := l.Append("dddd"); err != nil {
		t.Fatalf("Append error: %v", err)
	}
	if w, _ := l.WeightOf("dddd"); w != 4 {
		t.Errorf("expected key-derived weight 4, got %v", w)
	}
}

func TestFromFuncNegativeWeight(t *testing.T) {
	_, err := FromFunc([]int{1, -5}, func(n int) float64 { return float64(n) })
	if !errors.IsCode(err, errors.ErrCodeNegativeValue) {
		t.Errorf("expected NEGATIVE_VALUE, got %v", err)
	}
}

func TestFromUniform(t *testing.T) {
	l := FromUniform([]string{"a", "b", "c", "d"})
	for _, w := range l.Weights() {
		if math.Abs(w-0.25) > 1e-9 {
			t.Errorf("expected uniform weight 0.25, got %v", w)
		}
	}
}

func TestFromUniformEmpty(t *testing.T) {
	l := FromUniform([]string{})
	if l.Len() != 0 {
		t.Errorf("expected empty list, got %d items", l.Len())
	}
}

func TestAppendWeightedNegative(t *testing.T) {
	l := New[string]()
	if err := l.AppendWeighted("a", -0.5); !errors.IsCode(err, errors.ErrCodeNegativeValue) {
		t.Errorf("expected NEGATIVE_VALUE, got %v", err)
	}
}

func TestRemove(t *testing.T) {
	l, _ := FromValues([]string{"a", "b", "a"}, []float64{1, 2, 3})
	item, err := l.Remove("a")
	if err != nil {
		t.Fatalf("Remove error: %v", err)
	}
	if item.Weight != 1 {
		t.Errorf("expected the first occurrence removed (weight 1), got %v", item.Weight)
	}
	if !slices.Equal(l.Values(), []string{"b", "a"}) {
		t.Errorf("unexpected values after remove: %v", l.Values())
	}
}

func TestRemoveMissing(t *testing.T) {
	l, _ := FromValues([]string{"a"}, []float64{1})
	_, err := l.Remove("z")
	if !errors.IsCode(err, errors.ErrCodeNotFound) {
		t.Errorf("expected NOT_FOUND, got %v", err)
	}
}

func TestPop(t *testing.T) {
	l, _ := FromValues([]string{"a", "b", "c"}, []float64{1, 2, 3})
	v, err := l.Pop()
	if err != nil {
		t.Fatalf("Pop error: %v", err)
	}
	if v != "c" {
		t.Errorf("expected 'c', got %q", v)
	}
	if l.Len() != 2 {
		t.Errorf("expected 2 items left, got %d", l.Len())
	}
}

func TestPopAt(t *testing.T) {
	l, _ := FromValues([]string{"a", "b", "c"}, []float64{1, 2, 3})
	v, err := l.PopAt(1)
	if err != nil {
		t.Fatalf("PopAt error: %v", err)
	}
	if v != "b" {
		t.Errorf("expected 'b', got %q", v)
	}
	if _, err := l.PopAt(5); !errors.IsCode(err, errors.ErrCodeOutOfRange) {
		t.Errorf("expected OUT_OF_RANGE, got %v", err)
	}
}

func TestClearAndClearAll(t *testing.T) {
	l, _ := FromValues([]string{"a", "b"}, []float64{1, 2, 3, 4})
	l.Clear()
	if l.Len() != 0 {
		t.Fatalf("expected empty list after Clear")
	}
	// Stored weights survive Clear.
	_ = l.Append("x")
	if w, _ := l.WeightOf("x"); w != 3 {
		t.Errorf("expected stored weight 3 after Clear, got %v", w)
	}

	l.ClearAll()
	_ = l.Append("y")
	if w, _ := l.WeightOf("y"); w != 0 {
		t.Errorf("expected weight 0 after ClearAll, got %v", w)
	}
}

func TestIndexOfAndCount(t *testing.T) {
	l, _ := FromValues([]string{"a", "b", "a"}, []float64{1, 1, 1})
	if got := l.IndexOf("b"); got != 1 {
		t.Errorf("IndexOf(b) = %d, want 1", got)
	}
	if got := l.IndexOf("z"); got != -1 {
		t.Errorf("IndexOf(z) = %d, want -1", got)
	}
	if got := l.Count("a"); got != 2 {
		t.Errorf("Count(a) = %d, want 2", got)
	}
}

func TestSortFunc(t *testing.T) {
	l, _ := FromValues([]string{"a", "b", "c"}, []float64{3, 1, 2})
	l.SortFunc(func(x, y Item[string]) int {
		switch {
		case x.Weight < y.Weight:
			return -1
		case x.Weight > y.Weight:
			return 1
		}
		return 0
	})
	if !slices.Equal(l.Values(), []string{"b", "c", "a"}) {
		t.Errorf("unexpected order after sort: %v", l.Values())
	}
}

func TestWeightOfAndAt(t *testing.T) {
	l, _ := FromValues([]string{"a", "b"}, []float64{0.3, 0.7})
	if w, ok := l.WeightOf("b"); !ok || w != 0.7 {
		t.Errorf("WeightOf(b) = %v, %v; want 0.7, true", w, ok)
	}
	if _, ok := l.WeightOf("z"); ok {
		t.Error("expected WeightOf(z) to report false")
	}
	if got := l.At(0); got != "a" {
		t.Errorf("At(0) = %q, want 'a'", got)
	}
}

func TestItemsReturnsCopy(t *testing.T) {
	l, _ := FromValues([]string{"a"}, []float64{1})
	items := l.Items()
	items[0].Weight = 99
	if w, _ := l.WeightOf("a"); w != 1 {
		t.Errorf("expected internal weight untouched, got %v", w)
	}
}

func TestClone(t *testing.T) {
	l, _ := FromValues([]string{"a", "b"}, []float64{1, 2}, WithNoRepeat[string](), seeded[string](1))
	if _, err := l.Choice(); err != nil {
		t.Fatalf("Choice error: %v", err)
	}

	c := l.Clone()
	if c.Len() != 2 {
		t.Fatalf("expected clone with 2 items, got %d", c.Len())
	}
	// Clone keeps the no-repeat configuration but starts with a fresh
	// repeated cache: both items are choosable exactly once more.
	got := map[string]bool{}
	for {
		v, err := c.Choice()
		if err != nil {
			break
		}
		got[v] = true
	}
	if len(got) != 2 {
		t.Errorf("expected clone to choose both values before exhaustion, got %v", got)
	}
	// The original list's cache is independent of the clone's.
	if len(l.repeated) != 1 {
		t.Errorf("expected original repeated cache untouched, got %v", l.repeated)
	}
}
