package domain

import "testing"

func TestNormalizePhone(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"+79171234567", "+79171234567"},
		{"89171234567", "+79171234567"},
		{"79171234567", "+79171234567"},
		{"9171234567", "+79171234567"},
		{"8 (917) 123-45-67", "+79171234567"},
		{"+7 917 123 45 67", "+79171234567"},
		{"917123456", ""},
		{"891712345678", ""},
		{"", ""},
		{"позвоните мне", ""},
	}

	for _, tc := range cases {
		if got := NormalizePhone(tc.in); got != tc.want {
			t.Errorf("NormalizePhone(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizePhone_Stable(t *testing.T) {
	t.Parallel()

	once := NormalizePhone("8 917 123 45 67")
	twice := NormalizePhone(once)
	if once != twice {
		t.Errorf("second pass changed the result: %q vs %q", once, twice)
	}
}

func TestParseTripTime(t *testing.T) {
	t.Parallel()

	tt, err := ParseTripTime("09:05")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if tt.Hour != 9 || tt.Minute != 5 {
		t.Errorf("unexpected result %+v", tt)
	}
	if tt.String() != "09:05" {
		t.Errorf("round trip gave %s", tt)
	}

	if _, err := ParseTripTime("25:00"); err == nil {
		t.Error("expected out-of-range hour to fail")
	}
	if _, err := ParseTripTime("abc"); err == nil {
		t.Error("expected garbage to fail")
	}
}
