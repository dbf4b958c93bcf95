package mucow

import "testing"

func TestEmitConsume(_ *testing.T) {
	// Should not panic
	emitConsume[Str](variantBorrowed, true)
	emitConsume[Str](variantOwned, false)
}

func TestEmitDuplicate(_ *testing.T) {
	emitDuplicate[Str](variantBorrowed)
	emitDuplicate[Str](variantOwned)
}

func TestEmitPromote(_ *testing.T) {
	emitPromote[Str]()
}

func TestTypeName(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"Str", typeName[Str](), "mucow.Str"},
		{"Bytes", typeName[Bytes](), "mucow.Bytes"},
		{"int", typeName[int](), "int"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("typeName() = %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestSignalVariables(t *testing.T) {
	// Verify signals are properly initialized
	signals := []struct {
		name   string
		signal interface{}
	}{
		{"SignalConsume", SignalConsume},
		{"SignalDuplicate", SignalDuplicate},
		{"SignalPromote", SignalPromote},
	}

	for _, s := range signals {
		t.Run(s.name, func(t *testing.T) {
			if s.signal == nil {
				t.Errorf("%s is nil", s.name)
			}
		})
	}
}
