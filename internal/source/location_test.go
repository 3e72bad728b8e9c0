package source_test

import (
	"slices"
	"testing"

	"go.followtheprocess.codes/test"

	"github.com/yidnekachew0/sass/internal/source"
)

func TestLocationString(t *testing.T) {
	tests := []struct {
		name     string          // Name of the test case
		want     string          // Expected return value
		location source.Location // Location under test
	}{
		{
			name:     "zero",
			location: source.Location{},
			want:     "0:0",
		},
		{
			name:     "simple",
			location: source.Location{Offset: 24, Line: 3, Column: 5},
			want:     "3:5",
		},
		{
			name:     "start of file",
			location: source.Location{Offset: 0, Line: 1, Column: 1},
			want:     "1:1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			test.Equal(t, tt.location.String(), tt.want)
		})
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name string          // Name of the test case
		x    source.Location // First location
		y    source.Location // Second location
		want int             // Expected comparison result
	}{
		{
			name: "equal",
			x:    source.Location{Offset: 10, Line: 2, Column: 3},
			y:    source.Location{Offset: 10, Line: 2, Column: 3},
			want: 0,
		},
		{
			name: "before",
			x:    source.Location{Offset: 4, Line: 1, Column: 5},
			y:    source.Location{Offset: 9, Line: 2, Column: 1},
			want: -1,
		},
		{
			name: "after",
			x:    source.Location{Offset: 9, Line: 2, Column: 1},
			y:    source.Location{Offset: 4, Line: 1, Column: 5},
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			test.Equal(t, source.Compare(tt.x, tt.y), tt.want)
		})
	}
}

func TestCompareSorts(t *testing.T) {
	locations := []source.Location{
		{Offset: 42, Line: 4, Column: 2},
		{Offset: 0, Line: 1, Column: 1},
		{Offset: 17, Line: 2, Column: 8},
	}

	slices.SortFunc(locations, source.Compare)

	test.True(t, slices.IsSortedFunc(locations, source.Compare))
	test.Equal(t, locations[0].Offset, 0)
	test.Equal(t, locations[2].Offset, 42)
}
