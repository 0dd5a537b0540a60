package randx

import (
	"slices"
	"testing"

	"github.com/angmorpri/morelib/errors"
)

func TestBiasedChoice(t *testing.T) {
	v, err := BiasedChoice([]string{"a", "b"}, []float64{1, 1})
	if err != nil {
		t.Fatalf("BiasedChoice error: %v", err)
	}
	if !slices.Contains([]string{"a", "b"}, v) {
		t.Errorf("unexpected value %q", v)
	}
}

func TestBiasedChoiceSinglePositive(t *testing.T) {
	for range 20 {
		v, err := BiasedChoice([]string{"a", "b", "c"}, []float64{0, 1, 0})
		if err != nil {
			t.Fatalf("BiasedChoice error: %v", err)
		}
		if v != "b" {
			t.Fatalf("expected only positively weighted value, got %q", v)
		}
	}
}

func TestBiasedChoiceNegativeWeight(t *testing.T) {
	_, err := BiasedChoice([]string{"a"}, []float64{-2})
	if !errors.IsCode(err, errors.ErrCodeNegativeValue) {
		t.Errorf("expected NEGATIVE_VALUE, got %v", err)
	}
}

func TestBiasedChoiceEmpty(t *testing.T) {
	_, err := BiasedChoice([]string{}, []float64{})
	if err != ErrNoItemsLeft {
		t.Errorf("expected ErrNoItemsLeft, got %v", err)
	}
}

func TestBiasedChoiceFunc(t *testing.T) {
	v, err := BiasedChoiceFunc([]string{"", "xxxx"}, func(s string) float64 { return float64(len(s)) })
	if err != nil {
		t.Fatalf("BiasedChoiceFunc error: %v", err)
	}
	if v != "xxxx" {
		t.Errorf("expected the only positively weighted value, got %q", v)
	}
}

func TestBiasedChoiceItems(t *testing.T) {
	v, err := BiasedChoiceItems([]Item[int]{{Value: 1, Weight: 0}, {Value: 2, Weight: 5}})
	if err != nil {
		t.Fatalf("BiasedChoiceItems error: %v", err)
	}
	if v != 2 {
		t.Errorf("expected 2, got %d", v)
	}
}
