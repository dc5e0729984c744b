package fixture

import "testing"

func TestStatusFromFlags(t *testing.T) {
	t.Parallel()

	cases := []struct {
		started, finished bool
		want              Status
	}{
		{false, false, StatusUpcoming},
		{true, false, StatusLive},
		{true, true, StatusFinished},
		{false, true, StatusFinished},
	}
	for _, tc := range cases {
		if got := StatusFromFlags(tc.started, tc.finished); got != tc.want {
			t.Fatalf("StatusFromFlags(%v, %v) = %s, want %s", tc.started, tc.finished, got, tc.want)
		}
	}
}
