package hufftree

import (
	"testing"
)

func TestCode_Append(t *testing.T) {
	var hc Code
	for _, bit := range []uint{1, 0, 1, 1} {
		hc = hc.Append(bit)
	}
	if hc.Size != 4 {
		t.Errorf("wrong size: expect 4, actual %d", hc.Size)
	}
	if hc.Bits[0] != 0x0d {
		t.Errorf("wrong bits: expect %#x, actual %#x", 0x0d, hc.Bits[0])
	}
	if actual := hc.Text(); actual != "1011" {
		t.Errorf("wrong text: expect %q, actual %q", "1011", actual)
	}
	if actual := hc.String(); actual != "\"1011\"" {
		t.Errorf("wrong string: expect %q, actual %q", "\"1011\"", actual)
	}
	if actual := (Code{}).String(); actual != "\"\"" {
		t.Errorf("wrong string for empty code: %q", actual)
	}
}

func TestCode_LongCodes(t *testing.T) {
	var hc Code
	for i := 0; i < MaxCodeSize; i++ {
		hc = hc.Append(uint(i % 3 % 2))
	}
	for i := 0; i < MaxCodeSize; i++ {
		if expect, actual := uint(i%3%2), hc.Bit(i); expect != actual {
			t.Fatalf("bit %d: expect %d, actual %d", i, expect, actual)
		}
	}

	parsed, err := ParseCode(hc.Text())
	if err != nil {
		t.Fatalf("ParseCode failed: %v", err)
	}
	if parsed != hc {
		t.Errorf("ParseCode(Text()) differs:\n\texpect: %s\n\tactual: %s", hc, parsed)
	}
}

func TestCode_HasPrefix(t *testing.T) {
	type testRow struct {
		code   string
		prefix string
		expect bool
	}

	testData := [...]testRow{
		{code: "0110", prefix: "", expect: true},
		{code: "0110", prefix: "0", expect: true},
		{code: "0110", prefix: "011", expect: true},
		{code: "0110", prefix: "0110", expect: true},
		{code: "0110", prefix: "01100", expect: false},
		{code: "0110", prefix: "1", expect: false},
		{code: "0110", prefix: "0111", expect: false},
	}
	for _, row := range testData {
		t.Run(row.code+"/"+row.prefix, func(t *testing.T) {
			hc, err := ParseCode(row.code)
			if err != nil {
				t.Fatal(err)
			}
			prefix, err := ParseCode(row.prefix)
			if err != nil {
				t.Fatal(err)
			}
			if actual := hc.HasPrefix(prefix); actual != row.expect {
				t.Errorf("expected %v, got %v", row.expect, actual)
			}
		})
	}
}

func TestParseCode_Errors(t *testing.T) {
	for _, str := range []string{"012", "0 1", string(make([]byte, MaxCodeSize+1))} {
		if _, err := ParseCode(str); err == nil {
			t.Errorf("ParseCode(%q): expected an error", str)
		}
	}
}
