package bulletin

import (
	"testing"
)

func TestParseFloatSentinels(t *testing.T) {
	for _, s := range []string{"", "   ", "-", "NC", "ND", "SP"} {
		if v := ParseFloat(s); v != nil {
			t.Errorf("ParseFloat(%q) = %v, want nil", s, *v)
		}
	}
}

func TestParseFloatFormats(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"1 234,56", 1234.56},
		{"+3,20%", 3.20},
		{"215,43", 215.43},
		{"-1,5", -1.5},
		{"22500", 22500},
		{"1 200", 1200},
	}
	for _, c := range cases {
		v := ParseFloat(c.in)
		if v == nil {
			t.Errorf("ParseFloat(%q) = nil, want %v", c.in, c.want)
			continue
		}
		if *v != c.want {
			t.Errorf("ParseFloat(%q) = %v, want %v", c.in, *v, c.want)
		}
	}
}

func TestParseFloatMalformed(t *testing.T) {
	for _, s := range []string{"abc", "12a", "--3", "1.2.3"} {
		if v := ParseFloat(s); v != nil {
			t.Errorf("ParseFloat(%q) = %v, want nil", s, *v)
		}
	}
}

func TestParseIntTruncates(t *testing.T) {
	v := ParseInt("1 234,56")
	if v == nil || *v != 1234 {
		t.Errorf("ParseInt(\"1 234,56\") = %v, want 1234", v)
	}
	if ParseInt("ND") != nil {
		t.Error("ParseInt(\"ND\") should be nil")
	}
}
