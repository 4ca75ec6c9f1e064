package parse

import (
	"errors"
	"strings"
	"testing"

	"github.com/signadot/bracket/encode"
	"github.com/signadot/bracket/format"
	"github.com/signadot/bracket/ir"
	"github.com/signadot/bracket/token"

	"github.com/google/go-cmp/cmp"
)

type parseTest struct {
	in   string
	want ir.Bracket
}

func TestParseOK(t *testing.T) {
	pts := []parseTest{
		{
			in:   ``,
			want: ir.Empty(),
		},
		{
			in:   `  , ,`,
			want: ir.Empty(),
		},
		{
			in:   `hello`,
			want: ir.Lf("hello"),
		},
		{
			in:   `hello(peter,dave)`,
			want: ir.Br().SibLeaf("hello").Sib(ir.Br().SibLeaf("peter").SibLeaf("dave")),
		},
		{
			in:   `matt dave (andy steve)`,
			want: ir.Br().SibLeaf("matt").SibLeaf("dave").Sib(ir.Br().SibLeaf("andy").SibLeaf("steve")),
		},
		{
			in:   `matt () dave`,
			want: ir.Br().SibLeaf("matt").Sib(ir.Br()).SibLeaf("dave"),
		},
		{
			in: `matt ({[() ()]})`,
			want: ir.Lf("matt").Sib(
				ir.Br().Sib(
					ir.Br().Sib(
						ir.Br().Sib(ir.Br()).Sib(ir.Br())))),
		},
		{
			in:   `matt"dave"`,
			want: ir.Br().SibLeaf("matt").SibLeaf("dave"),
		},
		{
			in:   `"andy \"hates\" cheese"`,
			want: ir.Lf(`andy "hates" cheese`),
		},
		{
			in:   `"hello" 'matt"' "and \"friends\""`,
			want: ir.Br().SibLeaf("hello").SibLeaf(`matt"`).SibLeaf(`and "friends"`),
		},
		{
			in:   `"a, (b) [c]"`,
			want: ir.Lf("a, (b) [c]"),
		},
		{
			in:   `""`,
			want: ir.Lf(""),
		},
		{
			in:   `a "" b`,
			want: ir.Br(ir.Lf("a"), ir.Lf(""), ir.Lf("b")),
		},
		{
			in:   `'it\'s' "\\"`,
			want: ir.Br(ir.Lf("it's"), ir.Lf(`\`)),
		},
		{
			in:   `(a b)`,
			want: ir.Br(ir.Lf("a"), ir.Lf("b")),
		},
		{
			in:   `(a)`,
			want: ir.Br(ir.Lf("a")),
		},
		{
			in:   `((a b))`,
			want: ir.Br(ir.Br(ir.Lf("a"), ir.Lf("b"))),
		},
		{
			in:   `()`,
			want: ir.Br(),
		},
		{
			in:   `a(b)c`,
			want: ir.Br(ir.Lf("a"), ir.Br(ir.Lf("b")), ir.Lf("c")),
		},
		{
			in:   `a ) b`,
			want: ir.Br(ir.Lf("a"), ir.Lf(")"), ir.Lf("b")),
		},
		{
			in:   `(a]) {b)}`,
			// the top level adopts the first group's shape
			want: ir.Br(ir.Lf("a]"), ir.Br(ir.Lf("b)"))),
		},
		{
			in:   "a\tb\nc\r\nd",
			want: ir.Br(ir.Lf("a"), ir.Lf("b"), ir.Lf("c"), ir.Lf("d")),
		},
		{
			in:   `héllo wörld "ünï"`,
			want: ir.Br(ir.Lf("héllo"), ir.Lf("wörld"), ir.Lf("ünï")),
		},
		{
			in:   `"\é"`,
			want: ir.Lf("é"),
		},
	}
	for _, pt := range pts {
		t.Run(pt.in, func(t *testing.T) {
			got, err := ParseString(pt.in)
			if err != nil {
				t.Fatalf("error parsing %q: %v", pt.in, err)
			}
			if diff := cmp.Diff(pt.want, got); diff != "" {
				t.Errorf("parse %q mismatch (-want +got):\n%s", pt.in, diff)
			}
			if got.Type != pt.want.Type {
				t.Errorf("parse %q gave %s, want %s", pt.in, got.Type, pt.want.Type)
			}
		})
	}
}

func TestParseNormalization(t *testing.T) {
	inputs := []string{
		"a b (c d)",
		"a b( c d)",
		" a   b  (  c  d )  ",
		",a,,b,(c,,d),",
		"a\tb\n(c\n d)",
	}
	first, err := ParseString(inputs[0])
	if err != nil {
		t.Fatal(err)
	}
	for _, in := range inputs[1:] {
		got, err := ParseString(in)
		if err != nil {
			t.Fatalf("%q: %v", in, err)
		}
		if diff := cmp.Diff(first, got); diff != "" {
			t.Errorf("%q mismatch (-want +got):\n%s", in, diff)
		}
	}
}

func TestParseEquivalentBrackets(t *testing.T) {
	a, err := ParseString("x (y z)")
	if err != nil {
		t.Fatal(err)
	}
	for _, in := range []string{"x {y z}", "x [y z]"} {
		b, err := ParseString(in)
		if err != nil {
			t.Fatal(err)
		}
		if !ir.Equal(a, b) {
			t.Errorf("%q differs from x (y z)", in)
		}
	}
}

func TestParseSpaceOnly(t *testing.T) {
	got, err := ParseString("a\tb c,d", ParseSpaceOnly())
	if err != nil {
		t.Fatal(err)
	}
	want := ir.Br(ir.Lf("a\tb"), ir.Lf("c"), ir.Lf("d"))
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestParseInvalidUTF8Kept(t *testing.T) {
	got, err := Parse([]byte("a\xffb \"\xfe\""))
	if err != nil {
		t.Fatal(err)
	}
	want := ir.Br(ir.Lf("a\xffb"), ir.Lf("\xfe"))
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		in    string
		delim rune
		line  int
		col   int
	}{
		{"peop ( er", ')', 0, 5},
		{`"poop`, '"', 0, 0},
		{"x {a b", '}', 0, 2},
		{"[a ( b ]", ')', 0, 3},
		{"(a]", ')', 0, 0},
		{"a\n  'b", '\'', 1, 2},
		{`"ab\"`, '"', 0, 0},
		{"(a (b) \"c)\"", ')', 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			res, err := ParseString(tt.in)
			if err == nil {
				t.Fatalf("expected error, got %v", res)
			}
			if !errors.Is(err, ErrParse) || !errors.Is(err, token.ErrUnterminated) {
				t.Fatalf("wrong error kind: %v", err)
			}
			var ue *token.UnterminatedErr
			if !errors.As(err, &ue) {
				t.Fatalf("not an UnterminatedErr: %v", err)
			}
			if ue.Delim != tt.delim {
				t.Errorf("delim = %q, want %q", ue.Delim, tt.delim)
			}
			if l, c := ue.Open.LineCol(); l != tt.line || c != tt.col {
				t.Errorf("opened at (%d, %d), want (%d, %d)", l, c, tt.line, tt.col)
			}
			if !res.IsEmpty() {
				t.Errorf("partial result returned: %v", res)
			}
			if !strings.Contains(err.Error(), "closing delimiter") {
				t.Errorf("message = %q", err.Error())
			}
		})
	}
}

func TestParseTruncatedEscape(t *testing.T) {
	for _, in := range []string{`"abc\`, `a ('b\`} {
		_, err := ParseString(in)
		if !errors.Is(err, token.ErrTruncatedEscape) {
			t.Errorf("%q: expected truncated escape, got %v", in, err)
		}
		if errors.Is(err, token.ErrUnterminated) {
			t.Errorf("%q: truncated escape reported as unterminated", in)
		}
	}
}

func TestParseRenderRoundTrip(t *testing.T) {
	for _, in := range []string{
		`"hello" ["peter" "dave"]`,
		`"matt" [] "dave"`,
		`"a b" [["c"] "d,e"]`,
	} {
		b, err := ParseString(in)
		if err != nil {
			t.Fatal(err)
		}
		if got := encode.MustString(b); got != in {
			t.Errorf("render(parse(%q)) = %q", in, got)
		}
	}
	// quotes inside leaves are not escaped on output
	b := ir.Lf(`say "hi"`)
	back, err := ParseString(encode.MustString(b))
	if err != nil {
		t.Fatal(err)
	}
	if ir.Equal(b, back) {
		t.Errorf("expected render/parse asymmetry for %q", b.String)
	}
}

func TestParseFormats(t *testing.T) {
	want := ir.Br().SibLeaf("a").Sib(ir.Br().SibLeaf("b").SibLeaf("c"))
	for _, f := range format.AllFormats() {
		t.Run(f.String(), func(t *testing.T) {
			d, err := encode.EncodeString(want, encode.EncodeFormat(f))
			if err != nil {
				t.Fatal(err)
			}
			got, err := ParseString(d, ParseFormat(f))
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("%s round trip mismatch (-want +got):\n%s", f, diff)
			}
		})
	}
}

func TestParseBadInput(t *testing.T) {
	if _, err := Parse([]byte(`{"a": 1}`), ParseJSON()); !errors.Is(err, ErrParse) || !errors.Is(err, ir.ErrUnsupported) {
		t.Errorf("json object: %v", err)
	}
	if _, err := Parse([]byte("a: b"), ParseYAML()); !errors.Is(err, ir.ErrUnsupported) {
		t.Errorf("yaml mapping: %v", err)
	}
	if _, err := Parse([]byte{0xff}, ParseCBOR()); !errors.Is(err, ErrParse) {
		t.Errorf("bad cbor: %v", err)
	}
	if _, err := Parse(nil, ParseFormat(format.Format(99))); !errors.Is(err, format.ErrBadFormat) {
		t.Errorf("bad format: %v", err)
	}
}

func TestParseReader(t *testing.T) {
	got, err := ParseReader(strings.NewReader("a (b)"))
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(got, ir.Br(ir.Lf("a"), ir.Br(ir.Lf("b")))) {
		t.Errorf("got %v", got)
	}
}

// seqText writes a logical sequence of tokens and nested sequences as
// bracket notation, cycling through the separator and bracket styles.
func seqText(seq []any, depth int) string {
	seps := []string{" ", ",", "  ,", "\n"}
	opens := []string{"(", "{", "["}
	closes := []string{")", "}", "]"}
	var sb strings.Builder
	for i, v := range seq {
		if i > 0 {
			sb.WriteString(seps[(i+depth)%len(seps)])
		}
		switch x := v.(type) {
		case string:
			if strings.ContainsAny(x, " ,()") {
				sb.WriteString(`"` + x + `"`)
				continue
			}
			sb.WriteString(x)
		case []any:
			k := (i + depth) % len(opens)
			sb.WriteString(opens[k] + seqText(x, depth+1) + closes[k])
		}
	}
	return sb.String()
}

func seqBuild(seq []any) ir.Bracket {
	res := ir.Br()
	for _, v := range seq {
		switch x := v.(type) {
		case string:
			res = res.SibLeaf(x)
		case []any:
			res = res.Sib(seqBuild(x))
		}
	}
	return res
}

func TestParseBuilderEquivalence(t *testing.T) {
	seqs := [][]any{
		{"hello", []any{"peter", "dave"}},
		{"a", "b", "c"},
		{"w", []any{}, "x", []any{[]any{"y"}, "z"}},
		{"one two", "three,four", []any{"(five)"}},
		{"s", []any{"a"}, []any{"b", []any{"c", []any{"d", "e"}}}, "f"},
	}
	// each sequence starts with a token: a leading group at the top
	// level is adopted rather than nested
	for _, seq := range seqs {
		in := seqText(seq, 0)
		got, err := ParseString(in)
		if err != nil {
			t.Fatalf("%q: %v", in, err)
		}
		if diff := cmp.Diff(seqBuild(seq), got); diff != "" {
			t.Errorf("%q mismatch (-built +parsed):\n%s", in, diff)
		}
	}
}
