package source_test

import (
	"testing"

	"go.followtheprocess.codes/test"

	"github.com/yidnekachew0/sass/internal/source"
)

func TestSpanString(t *testing.T) {
	tests := []struct {
		name string      // Name of the test case
		want string      // Expected return value
		span source.Span // Span under test
	}{
		{
			name: "named source",
			span: source.Span{
				URL:   "input.scss",
				Start: source.Location{Offset: 24, Line: 3, Column: 5},
				End:   source.Location{Offset: 31, Line: 3, Column: 12},
			},
			want: "input.scss:3:5",
		},
		{
			name: "anonymous source",
			span: source.Span{
				Start: source.Location{Offset: 0, Line: 1, Column: 1},
				End:   source.Location{Offset: 4, Line: 1, Column: 5},
			},
			want: "1:1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			test.Equal(t, tt.span.String(), tt.want)
		})
	}
}

func TestSpanValid(t *testing.T) {
	tests := []struct {
		name string      // Name of the test case
		span source.Span // Span under test
		want bool        // Expected validity
	}{
		{
			name: "empty",
			span: source.Span{},
			want: true,
		},
		{
			name: "valid",
			span: source.Span{
				Text:  "@warn",
				Start: source.Location{Offset: 10, Line: 2, Column: 1},
				End:   source.Location{Offset: 15, Line: 2, Column: 6},
			},
			want: true,
		},
		{
			name: "end before start",
			span: source.Span{
				Start: source.Location{Offset: 15, Line: 2, Column: 6},
				End:   source.Location{Offset: 10, Line: 2, Column: 1},
			},
			want: false,
		},
		{
			name: "text length mismatch",
			span: source.Span{
				Text:  "way too long for the range",
				Start: source.Location{Offset: 10, Line: 2, Column: 1},
				End:   source.Location{Offset: 15, Line: 2, Column: 6},
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			test.Equal(t, tt.span.Valid(), tt.want)
		})
	}
}

func TestCompareSpan(t *testing.T) {
	tests := []struct {
		name string      // Name of the test case
		x    source.Span // First span
		y    source.Span // Second span
		want int         // Expected comparison result
	}{
		{
			name: "equal",
			x:    source.Span{URL: "a.scss", Start: source.Location{Offset: 1}, End: source.Location{Offset: 2}},
			y:    source.Span{URL: "a.scss", Start: source.Location{Offset: 1}, End: source.Location{Offset: 2}},
			want: 0,
		},
		{
			name: "same source by offset",
			x:    source.Span{URL: "a.scss", Start: source.Location{Offset: 1}, End: source.Location{Offset: 2}},
			y:    source.Span{URL: "a.scss", Start: source.Location{Offset: 5}, End: source.Location{Offset: 9}},
			want: -1,
		},
		{
			name: "same start by end offset",
			x:    source.Span{URL: "a.scss", Start: source.Location{Offset: 1}, End: source.Location{Offset: 9}},
			y:    source.Span{URL: "a.scss", Start: source.Location{Offset: 1}, End: source.Location{Offset: 2}},
			want: 1,
		},
		{
			name: "different sources alphabetically",
			x:    source.Span{URL: "b.scss", Start: source.Location{Offset: 1}, End: source.Location{Offset: 2}},
			y:    source.Span{URL: "a.scss", Start: source.Location{Offset: 50}, End: source.Location{Offset: 60}},
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			test.Equal(t, source.CompareSpan(tt.x, tt.y), tt.want)
		})
	}
}
