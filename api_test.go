package mucow_test

import (
	"testing"

	"github.com/zoobzio/mucow"
)

// --- Shared test doubles ---

// countCloner records every Clone through a shared counter, so tests can
// assert exactly how many copies an operation made.
type countCloner struct {
	value  string
	clones *int
}

func (c countCloner) Clone() countCloner {
	*c.clones++
	return countCloner{value: c.value, clones: c.clones}
}

func newCountCloner(value string) (countCloner, *int) {
	clones := 0
	return countCloner{value: value, clones: &clones}, &clones
}

// countSeq is a clone-counting integer sequence for the mutate-in-place
// scenarios.
type countSeq struct {
	vals   mucow.Slice[int]
	clones *int
}

func (s countSeq) Clone() countSeq {
	*s.clones++
	return countSeq{vals: s.vals.Clone(), clones: s.clones}
}

func newCountSeq(vals ...int) (countSeq, *int) {
	clones := 0
	return countSeq{vals: vals, clones: &clones}, &clones
}

// --- Cloner interface tests ---

type clonerTestStruct struct {
	Value   string
	Pointer *string
	Slice   []string
	Map     map[string]string
}

func (c clonerTestStruct) Clone() clonerTestStruct {
	clone := clonerTestStruct{Value: c.Value}
	if c.Pointer != nil {
		p := *c.Pointer
		clone.Pointer = &p
	}
	if c.Slice != nil {
		clone.Slice = make([]string, len(c.Slice))
		copy(clone.Slice, c.Slice)
	}
	if c.Map != nil {
		clone.Map = make(map[string]string)
		for k, v := range c.Map {
			clone.Map[k] = v
		}
	}
	return clone
}

func TestCloner_DeepCopy(t *testing.T) {
	ptr := "pointer-value"
	original := clonerTestStruct{
		Value:   "test",
		Pointer: &ptr,
		Slice:   []string{"a", "b", "c"},
		Map:     map[string]string{"key": "value"},
	}

	clone := original.Clone()

	// Verify values match
	if clone.Value != original.Value {
		t.Errorf("Clone() Value = %q, want %q", clone.Value, original.Value)
	}
	if *clone.Pointer != *original.Pointer {
		t.Errorf("Clone() Pointer = %q, want %q", *clone.Pointer, *original.Pointer)
	}

	// Verify deep copy: modifying clone should not affect original
	clone.Value = "modified"
	*clone.Pointer = "modified-pointer"
	clone.Slice[0] = "modified"
	clone.Map["key"] = "modified"

	if original.Value == "modified" {
		t.Error("Clone() did not create independent Value")
	}
	if *original.Pointer == "modified-pointer" {
		t.Error("Clone() did not create independent Pointer")
	}
	if original.Slice[0] == "modified" {
		t.Error("Clone() did not create independent Slice")
	}
	if original.Map["key"] == "modified" {
		t.Error("Clone() did not create independent Map")
	}
}

func TestCloner_WorksWithBothPointerTypes(t *testing.T) {
	original := clonerTestStruct{Value: "test"}

	mc := mucow.Borrowed(&original)
	if got := mc.IntoOwned().Value; got != "test" {
		t.Errorf("MutCow IntoOwned() Value = %q, want %q", got, "test")
	}

	cw := mucow.CowBorrowed(&original)
	if got := cw.IntoOwned().Value; got != "test" {
		t.Errorf("Cow IntoOwned() Value = %q, want %q", got, "test")
	}
}
