package approval

import "testing"

func TestParseMoney(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"200", 200},
		{"200.50", 200.5},
		{"$1,234.50", 1234.5},
		{"MXN 200", 200},
		{" 1 000.25 ", 1000.25},
		{"$0.00", 0},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseMoney(tc.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestParseMoneyErrors(t *testing.T) {
	for _, in := range []string{"", "abc", "$", "1.2.3"} {
		t.Run(in, func(t *testing.T) {
			if _, err := ParseMoney(in); err != ErrUnparsableMoney {
				t.Fatalf("expected ErrUnparsableMoney, got %v", err)
			}
		})
	}
}

func TestFormatMoney(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{200, "200.00"},
		{1234.5, "1234.50"},
		{0, "0.00"},
		{19.999, "20.00"},
	}

	for _, tc := range cases {
		if got := FormatMoney(tc.in); got != tc.want {
			t.Fatalf("FormatMoney(%v): expected %s, got %s", tc.in, tc.want, got)
		}
	}
}
