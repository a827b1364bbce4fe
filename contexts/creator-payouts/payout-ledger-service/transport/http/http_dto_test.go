package http

import "testing"

func TestParseViewCount(t *testing.T) {
	cases := []struct {
		raw  string
		want int64
	}{
		{raw: "150000", want: 150000},
		{raw: "1,250,000", want: 1250000},
		{raw: " 25K ", want: 25000},
		{raw: "12.5k", want: 12500},
		{raw: "1M", want: 1000000},
		{raw: "2.5m", want: 2500000},
		{raw: "1B", want: 1000000000},
		{raw: "0", want: 0},
	}

	for _, tc := range cases {
		got, err := ParseViewCount(tc.raw)
		if err != nil {
			t.Fatalf("parse %q failed: %v", tc.raw, err)
		}
		if got != tc.want {
			t.Fatalf("parse %q: expected %d, got %d", tc.raw, tc.want, got)
		}
	}
}

func TestParseViewCountRejectsGarbage(t *testing.T) {
	for _, raw := range []string{"", "   ", "-100", "-2K", "12.5", "viral", "K", "1.2.3M"} {
		if _, err := ParseViewCount(raw); err == nil {
			t.Fatalf("expected %q to fail parsing", raw)
		}
	}
}
