package fastws

import "testing"

func TestCloseCodeIsAllowed(t *testing.T) {
	cases := []struct {
		code CloseCode
		want bool
	}{
		{CloseNormalClosure, true},
		{CloseGoingAway, true},
		{CloseInternalError, true},
		{closeReserved1004, false},
		{CloseNoStatusReceived, false},
		{CloseAbnormalClosure, false},
		{999, false},
		{1012, false},
		{3000, true},
		{3999, true},
		{4000, true},
		{4999, true},
		{5000, false},
	}

	for _, tc := range cases {
		if got := tc.code.IsAllowed(); got != tc.want {
			t.Errorf("CloseCode(%d).IsAllowed() = %v, want %v", tc.code, got, tc.want)
		}
	}
}
