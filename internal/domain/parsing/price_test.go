package parsing

import "testing"

func TestParseAmount(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want float64
	}{
		{name: "european", in: "1.234,56", want: 1234.56},
		{name: "uk thousands", in: "1,234.56", want: 1234.56},
		{name: "currency symbol", in: "£120.00", want: 120},
		{name: "plain integer", in: "95", want: 95},
		{name: "whitespace and text", in: "about 75.50 per day", want: 75.50},
		{name: "multiple dots keep last", in: "1.2.3.45", want: 123.45},
		{name: "empty", in: "", want: 0},
		{name: "letters only", in: "abc", want: 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ParseAmount(tc.in); got != tc.want {
				t.Fatalf("ParseAmount(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}
