package domain

import "testing"

func TestOffset(t *testing.T) {
	t.Parallel()

	cases := []struct {
		page int
		want int
	}{
		{page: 1, want: 0},
		{page: 2, want: 5},
		{page: 3, want: 10},
		{page: 10, want: 45},
		{page: 0, want: 0},
		{page: -4, want: 0},
	}

	for _, tc := range cases {
		if got := Offset(tc.page); got != tc.want {
			t.Fatalf("Offset(%d) = %d, want %d", tc.page, got, tc.want)
		}
	}
}
