package aoc

import "testing"

func TestParseSample(t *testing.T) {
	tests := []struct {
		comment string
		want    sample
	}{
		{
			comment: `/*
want=1

some-input
*/`,
			want: sample{
				want: "1",
				input: `some-input
`,
			},
		},

		{
			comment: `/*
want=1234

multi-line-input
other-line
other-line-2
*/`,
			want: sample{
				want: "1234",
				input: `multi-line-input
other-line
other-line-2
`,
			},
		},

		{
			comment: "// want=42",
			want: sample{
				want: "42",
			},
		},
	}

	for _, tt := range tests {
		if got, ok := parseSample("foo", tt.comment); !ok || got != tt.want {
			t.Errorf("ParseSample = %v, want %v", got, tt.want)
		}
	}
}

func TestExtractSamples(t *testing.T) {
	src := `package main

/*
want=142

1abc2
treb7uchet
*/
func (s solver) D1p1() any { return nil }

// want=99
func (s solver) D1p2() any { return nil }

func helper() {}
`
	samples := extractSamples([]byte(src))
	if len(samples) != 2 {
		t.Fatalf("got %d samples, want 2", len(samples))
	}

	p1, ok := samples["D1p1"]
	if !ok {
		t.Fatal("no sample for D1p1")
	}
	wantInput := "1abc2\ntreb7uchet\n"
	if p1.want != "142" || p1.input != wantInput {
		t.Errorf("D1p1 sample = %+v, want {142 %q}", p1, wantInput)
	}

	// A part without its own input block inherits the previous one.
	p2, ok := samples["D1p2"]
	if !ok {
		t.Fatal("no sample for D1p2")
	}
	if p2.want != "99" || p2.input != wantInput {
		t.Errorf("D1p2 sample = %+v, want {99 %q}", p2, wantInput)
	}
}

func TestOr(t *testing.T) {
	if got := Or("", "x"); got != "x" {
		t.Errorf("Or(\"\", \"x\") = %q, want \"x\"", got)
	}
	if got := Or("a", "b"); got != "a" {
		t.Errorf("Or(\"a\", \"b\") = %q, want \"a\"", got)
	}
	if got := Or(0, 5); got != 5 {
		t.Errorf("Or(0, 5) = %d, want 5", got)
	}
	if got := Or(0, 0); got != 0 {
		t.Errorf("Or(0, 0) = %d, want 0", got)
	}
}
