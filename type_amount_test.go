package privates

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestParseAmount(t *testing.T) {
	testCases := []struct {
		raw  string
		want string
		ok   bool
	}{
		{raw: "1200", want: "1200", ok: true},
		{raw: "1200.50", want: "1200.5", ok: true},
		{raw: "1200,50", want: "1200.5", ok: true},
		{raw: " -3 ", want: "-3", ok: true},
		{raw: "abc", ok: false},
		{raw: "", ok: false},
	}
	for _, tc := range testCases {
		got, err := ParseAmount(tc.raw)
		if (err == nil) != tc.ok {
			t.Errorf("ParseAmount(%q) err = %v, want ok=%v", tc.raw, err, tc.ok)
			continue
		}
		if tc.ok && got.Plain() != tc.want {
			t.Errorf("ParseAmount(%q) = %s, want %s", tc.raw, got.Plain(), tc.want)
		}
	}
}

func TestAmount_Round2(t *testing.T) {
	a, _ := ParseAmount("10.005")
	if got := a.Round2().Plain(); got != "10.01" {
		t.Errorf("Round2() = %s, want 10.01", got)
	}
}

func TestAmount_SignedString(t *testing.T) {
	if got := A(20).SignedString(); !strings.HasPrefix(got, "+") {
		t.Errorf("SignedString(20) = %q, want a leading +", got)
	}
	if got := A(-5).SignedString(); !strings.HasPrefix(got, "-") {
		t.Errorf("SignedString(-5) = %q, want a leading -", got)
	}
}

// TestAmount_JSON checks the interchange representation: a bare number on
// write, number or quoted string on read.
func TestAmount_JSON(t *testing.T) {
	data, err := json.Marshal(A(1200.5))
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if string(data) != "1200.5" {
		t.Errorf("Marshal() = %s, want a bare number", data)
	}

	for _, payload := range []string{"1200.5", `"1200.5"`} {
		var a Amount
		if err := json.Unmarshal([]byte(payload), &a); err != nil {
			t.Fatalf("Unmarshal(%s) failed: %v", payload, err)
		}
		if !a.Equal(A(1200.5)) {
			t.Errorf("Unmarshal(%s) = %s, want 1200.5", payload, a.Plain())
		}
	}

	var a Amount
	if err := json.Unmarshal([]byte(`"abc"`), &a); err == nil {
		t.Error("Unmarshal(abc) should fail")
	}
}
