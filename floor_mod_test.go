package euclideanring

import "testing"

func TestFloorMod(t *testing.T) {
	testCases := []struct {
		x    int64
		y    int64
		want int64
	}{
		{x: 5, y: 3, want: 2},
		{x: -5, y: 3, want: 1},
		{x: 5, y: -3, want: -1},
		{x: -5, y: -3, want: -2},
		{x: 5, y: 5, want: 0},
		{x: -5, y: 5, want: 0},
		{x: 5, y: -5, want: 0},
		{x: -5, y: -5, want: 0},
		{x: 3, y: 5, want: 3},
		{x: -3, y: 5, want: 2},
		{x: 3, y: -5, want: -2},
		{x: -3, y: -5, want: -3},
		{x: 7, y: 0, want: 0},
	}
	for _, tc := range testCases {
		got := FloorMod(tc.x, tc.y)
		if got != tc.want {
			t.Errorf("unexpected FloorMod x=%d, y=%d, got=%v, want=%v",
				tc.x, tc.y, got, tc.want)
		}
	}
}

func TestFloorModAgreesWithModForPositiveDivisor(t *testing.T) {
	for x := int32(-20); x <= 20; x++ {
		for y := int32(1); y <= 7; y++ {
			if got, want := FloorMod(int64(x), int64(y)), int64(Mod(x, y)); got != want {
				t.Errorf("FloorMod and Mod unmatch for x=%d, y=%d, FloorMod=%d, Mod=%d", x, y, got, want)
			}
		}
	}
}
