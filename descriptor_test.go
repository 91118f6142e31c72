package hufftree

import (
	"errors"
	"math/rand"
	"strings"
	"testing"
)

func mustBuildTree(t *testing.T, input string) *Tree {
	t.Helper()
	tree, err := BuildTree(CountFrequencies([]byte(input)))
	if err != nil {
		t.Fatalf("BuildTree(%q) failed: %v", input, err)
	}
	return tree
}

func TestTree_AppendDescriptor(t *testing.T) {
	type testRow struct {
		name   string
		input  string
		format DescriptorFormat
		expect string
	}

	testData := [...]testRow{
		{name: "split/aaabbc", input: "aaabbc", format: FormatSplit, expect: "\x02\x58acb"},
		{name: "split/single", input: "zzzz", format: FormatSplit, expect: "\x00\x80z"},
		{name: "split/markers", input: "0101110", format: FormatSplit, expect: "\x01\x6001"},
		{name: "interleaved/aaabbc", input: "aaabbc", format: FormatInterleaved, expect: "01a01c1b"},
		{name: "interleaved/single", input: "zzzz", format: FormatInterleaved, expect: "1z"},
		{name: "interleaved/markers", input: "0101110", format: FormatInterleaved, expect: "01011"},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			tree := mustBuildTree(t, row.input)
			actual := string(tree.AppendDescriptor([]byte("prefix:"), row.format))
			if expect := "prefix:" + row.expect; expect != actual {
				t.Errorf("wrong descriptor:\n\texpect: %q\n\tactual: %q", expect, actual)
			}

			parsed, rest, err := ParseDescriptor([]byte(row.expect+"tail"), row.format)
			if err != nil {
				t.Fatalf("ParseDescriptor failed: %v", err)
			}
			if string(rest) != "tail" {
				t.Errorf("wrong remainder: expect %q, actual %q", "tail", rest)
			}
			if !tree.Isomorphic(parsed) {
				t.Errorf("parsed tree is not isomorphic to the original")
			}
		})
	}
}

func TestParseDescriptor_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(randSeed))
	for iteration := 0; iteration < iterations; iteration++ {
		freqs := randomFrequencies(rng, NumSymbols, 1000)
		if iteration == 0 {
			freqs = make(Frequencies, NumSymbols)
			for symbol := 0; symbol < NumSymbols; symbol++ {
				freqs[Symbol(symbol)] = uint64(1 + rng.Intn(1000))
			}
		}
		tree, err := BuildTree(freqs)
		if err != nil {
			t.Fatalf("#%d: BuildTree failed: %v", iteration, err)
		}

		for _, format := range []DescriptorFormat{FormatSplit, FormatInterleaved} {
			desc := tree.AppendDescriptor(nil, format)
			parsed, rest, err := ParseDescriptor(desc, format)
			if err != nil {
				t.Fatalf("#%d: %s: ParseDescriptor failed: %v", iteration, format, err)
			}
			if len(rest) != 0 {
				t.Errorf("#%d: %s: %d bytes left over", iteration, format, len(rest))
			}
			if !tree.Isomorphic(parsed) {
				t.Errorf("#%d: %s: parsed tree is not isomorphic to the original", iteration, format)
			}
			if parsed.Len() != tree.Len() || parsed.Weight() != 0 {
				t.Errorf("#%d: %s: parsed tree has %d leaves and weight %d", iteration, format, parsed.Len(), parsed.Weight())
			}
		}
	}
}

func TestParseDescriptor_Malformed(t *testing.T) {
	type testRow struct {
		name   string
		format DescriptorFormat
		input  string
	}

	testData := [...]testRow{
		{name: "split/empty", format: FormatSplit, input: ""},
		{name: "split/truncated", format: FormatSplit, input: "\x02\x58ac"},
		{name: "split/dangling", format: FormatSplit, input: "\x02\x50acb"},
		{name: "split/early-leaf", format: FormatSplit, input: "\x02\xf8acb"},
		{name: "split/padding", format: FormatSplit, input: "\x02\x5cacb"},
		{name: "split/duplicate", format: FormatSplit, input: "\x02\x58aca"},
		{name: "interleaved/empty", format: FormatInterleaved, input: ""},
		{name: "interleaved/branch-only", format: FormatInterleaved, input: "0"},
		{name: "interleaved/dangling", format: FormatInterleaved, input: "01a"},
		{name: "interleaved/no-symbol", format: FormatInterleaved, input: "01a1"},
		{name: "interleaved/marker", format: FormatInterleaved, input: "01a2b"},
		{name: "interleaved/duplicate", format: FormatInterleaved, input: "01a1a"},
		{name: "interleaved/too-deep", format: FormatInterleaved, input: strings.Repeat("0", 2*NumSymbols)},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			tree, _, err := ParseDescriptor([]byte(row.input), row.format)
			if !errors.Is(err, ErrMalformedDescriptor) {
				t.Errorf("expected ErrMalformedDescriptor, got tree=%v err=%v", tree, err)
			}
		})
	}
}

func TestDescriptorFormat(t *testing.T) {
	for _, format := range []DescriptorFormat{FormatSplit, FormatInterleaved} {
		parsed, err := ParseDescriptorFormat(strings.ToUpper(format.String()))
		if err != nil || parsed != format {
			t.Errorf("ParseDescriptorFormat(%q) = %v, %v", format.String(), parsed, err)
		}
	}
	if _, err := ParseDescriptorFormat("bogus"); err == nil {
		t.Errorf("ParseDescriptorFormat(\"bogus\"): expected an error")
	}
	if actual := DescriptorFormat(9).String(); actual != "DescriptorFormat(9)" {
		t.Errorf("wrong string: %q", actual)
	}
	if _, _, err := ParseDescriptor([]byte("1z"), DescriptorFormat(9)); err == nil || errors.Is(err, ErrMalformedDescriptor) {
		t.Errorf("expected an unknown format error, got %v", err)
	}
}
