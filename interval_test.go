package plotkit

import (
	"math"
	"strconv"
	"testing"
)

var nan = math.NaN()

var intervalUpdateTests = []struct {
	old  Interval
	x    float64
	want Interval
}{
	{Interval{3, 6}, 4, Interval{3, 6}},
	{Interval{3, 6}, 2, Interval{2, 6}},
	{Interval{3, 6}, 7, Interval{3, 7}},
	{Interval{nan, nan}, nan, Interval{nan, nan}},
	{Interval{nan, nan}, 5, Interval{5, 5}},
	{Interval{5, 5}, nan, Interval{5, 5}},
}

func TestIntervalUpdate(t *testing.T) {
	for i, tc := range intervalUpdateTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			got := tc.old
			got.Update(tc.x)
			if !got.Equal(tc.want) {
				t.Errorf("%v update %v = %v, want %v",
					tc.old, tc.x, got, tc.want)
			}
		})
	}
}

func TestIntervalDirection(t *testing.T) {
	up, down := Interval{1, 3}, Interval{3, 1}
	if up.Descending() || !down.Descending() {
		t.Errorf("Descending wrong for %v and %v", up, down)
	}
	if down.Lo() != 1 || down.Hi() != 3 || down.Span() != -2 {
		t.Errorf("%v: lo=%g hi=%g span=%g", down, down.Lo(), down.Hi(), down.Span())
	}
	if got := down.Sorted(); !got.Equal(up) {
		t.Errorf("%v.Sorted() = %v", down, got)
	}
	if !down.Contains(2) || down.Contains(0) {
		t.Errorf("Contains wrong for %v", down)
	}
	if s := up.String(); s != "[1:3]" {
		t.Errorf("String() = %q", s)
	}
}
