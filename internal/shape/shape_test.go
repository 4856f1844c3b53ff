package shape

import (
	"testing"
)

// Test helpers

func assertEqualShape(t *testing.T, expected, actual Shape, msg string) {
	t.Helper()
	if !expected.Equal(actual) {
		t.Errorf("%s: expected shape %v, got %v", msg, expected, actual)
	}
}

// Shape tests

func TestShapeNumElements(t *testing.T) {
	tests := []struct {
		shape    Shape
		expected int
	}{
		{Shape{5}, 5},           // 1D
		{Shape{3, 4}, 12},       // 2D
		{Shape{2, 3, 4}, 24},    // 3D
		{Shape{1, 2, 3, 4}, 24}, // 4D with leading 1
		{Shape{1, 1, 1}, 1},     // Ones
		{Shape{0}, 0},           // Degenerate empty-sequence shape
	}

	for _, tt := range tests {
		if got := tt.shape.NumElements(); got != tt.expected {
			t.Errorf("Shape%v.NumElements() = %d, want %d", tt.shape, got, tt.expected)
		}
	}
}

func TestShapeValidate(t *testing.T) {
	validShapes := []Shape{
		{1},
		{3, 4},
		{2, 3, 4},
		{1, 1, 1, 1, 1, 1},
	}

	for _, s := range validShapes {
		if err := s.Validate(); err != nil {
			t.Errorf("Shape%v.Validate() failed: %v", s, err)
		}
	}

	invalidShapes := []Shape{
		{},
		{0},
		{3, 0},
		{-1},
		{3, -4},
	}

	for _, s := range invalidShapes {
		if err := s.Validate(); err == nil {
			t.Errorf("Shape%v.Validate() should have failed", s)
		}
	}
}

func TestShapeEqual(t *testing.T) {
	tests := []struct {
		a, b     Shape
		expected bool
	}{
		{Shape{2, 3}, Shape{2, 3}, true},
		{Shape{2, 3}, Shape{3, 2}, false},
		{Shape{2, 3}, Shape{2, 3, 1}, false},
		{Shape{1}, Shape{1}, true},
		{Shape{}, Shape{}, true},
	}

	for _, tt := range tests {
		if got := tt.a.Equal(tt.b); got != tt.expected {
			t.Errorf("Shape%v.Equal(%v) = %v, want %v", tt.a, tt.b, got, tt.expected)
		}
	}
}

func TestShapeClone(t *testing.T) {
	original := Shape{2, 3, 4}
	clone := original.Clone()

	assertEqualShape(t, original, clone, "clone equals original")

	clone[0] = 99
	if original[0] != 2 {
		t.Errorf("modifying clone changed original: %v", original)
	}
}

func TestShapeComputeStrides(t *testing.T) {
	tests := []struct {
		shape    Shape
		expected []int
	}{
		{Shape{5}, []int{1}},
		{Shape{3, 4}, []int{4, 1}},
		{Shape{2, 3, 4}, []int{12, 4, 1}},
		{Shape{1, 2, 2, 2}, []int{8, 4, 2, 1}},
	}

	for _, tt := range tests {
		got := tt.shape.ComputeStrides()
		if len(got) != len(tt.expected) {
			t.Errorf("Shape%v.ComputeStrides() = %v, want %v", tt.shape, got, tt.expected)
			continue
		}
		for i := range got {
			if got[i] != tt.expected[i] {
				t.Errorf("Shape%v.ComputeStrides() = %v, want %v", tt.shape, got, tt.expected)
				break
			}
		}
	}
}

func TestShapeString(t *testing.T) {
	if got := (Shape{2, 3, 4}).String(); got != "[2 3 4]" {
		t.Errorf("Shape{2,3,4}.String() = %q, want %q", got, "[2 3 4]")
	}
}

// Rank tests

func TestRankValid(t *testing.T) {
	for r := Rank1; r <= Rank6; r++ {
		if !r.Valid() {
			t.Errorf("Rank(%d).Valid() = false, want true", r)
		}
	}
	for _, r := range []Rank{0, -1, 7, 100} {
		if r.Valid() {
			t.Errorf("Rank(%d).Valid() = true, want false", r)
		}
	}
}

func TestRankString(t *testing.T) {
	tests := []struct {
		rank Rank
		str  string
	}{
		{Rank1, "rank1"},
		{Rank4, "rank4"},
		{Rank6, "rank6"},
		{Rank(0), "rank(0)"},
		{Rank(7), "rank(7)"},
	}

	for _, tt := range tests {
		if got := tt.rank.String(); got != tt.str {
			t.Errorf("Rank(%d).String() = %q, want %q", tt.rank, got, tt.str)
		}
	}
}
