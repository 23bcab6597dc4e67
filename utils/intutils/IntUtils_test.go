package intutils

import "testing"

func TestClip(t *testing.T) {
	tests := []struct{ value, min, max, want int }{
		{-1, 0, 4, 0},
		{0, 0, 4, 0},
		{3, 0, 4, 3},
		{5, 0, 4, 4},
	}

	for _, test := range tests {
		if got := Clip(test.value, test.min, test.max); got != test.want {
			t.Errorf("clip(%d, %d, %d) = %d, want %d", test.value,
				test.min, test.max, got, test.want)
		}
	}
}

func TestMinMax(t *testing.T) {
	if got := Min(3, -2, 7); got != -2 {
		t.Errorf("min = %d, want -2", got)
	}
	if got := Max(3, -2, 7); got != 7 {
		t.Errorf("max = %d, want 7", got)
	}
}

func TestPow(t *testing.T) {
	if got := Pow(5, 3); got != 125 {
		t.Errorf("pow(5, 3) = %d, want 125", got)
	}
	if got := Pow(7, 0); got != 1 {
		t.Errorf("pow(7, 0) = %d, want 1", got)
	}
}
