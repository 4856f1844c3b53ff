package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shapekit/shapekit/shape"
)

func TestParseShape(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  shape.Shape
	}{
		{name: "single dim", input: "4", want: shape.Shape{4}},
		{name: "three dims", input: "1,2,3", want: shape.Shape{1, 2, 3}},
		{name: "spaces", input: " 2 , 3 ", want: shape.Shape{2, 3}},
		{name: "rank 6", input: "1,2,3,4,5,6", want: shape.Shape{1, 2, 3, 4, 5, 6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseShape(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseShapeErrors(t *testing.T) {
	inputs := []string{
		"",
		"1,,3",
		"a,b",
		"0",
		"-1,2",
		"1,2,3,4,5,6,7",
	}

	for _, input := range inputs {
		if _, err := parseShape(input); err == nil {
			t.Errorf("parseShape(%q) should have failed", input)
		}
	}
}
