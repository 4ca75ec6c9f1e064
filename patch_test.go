package bracket

import (
	"errors"
	"testing"

	"github.com/signadot/bracket/ir"
	"github.com/signadot/bracket/parse"

	"github.com/google/go-cmp/cmp"
)

func TestPatch(t *testing.T) {
	doc, err := parse.ParseString("a (b c) d")
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name  string
		patch string
		want  ir.Bracket
	}{
		{
			name:  "replace nested",
			patch: `[{"op": "replace", "path": "/1/0", "value": "B"}]`,
			want:  ir.Br(ir.Lf("a"), ir.Br(ir.Lf("B"), ir.Lf("c")), ir.Lf("d")),
		},
		{
			name:  "remove and append",
			patch: `[{"op": "remove", "path": "/0"}, {"op": "add", "path": "/-", "value": "e"}]`,
			want:  ir.Br(ir.Br(ir.Lf("b"), ir.Lf("c")), ir.Lf("d"), ir.Lf("e")),
		},
		{
			name:  "add branch and number",
			patch: `[{"op": "add", "path": "/1", "value": ["x", 3]}]`,
			want:  ir.Br(ir.Lf("a"), ir.Br(ir.Lf("x"), ir.Lf("3")), ir.Br(ir.Lf("b"), ir.Lf("c")), ir.Lf("d")),
		},
		{
			name:  "test passes",
			patch: `[{"op": "test", "path": "/2", "value": "d"}]`,
			want:  ir.Br(ir.Lf("a"), ir.Br(ir.Lf("b"), ir.Lf("c")), ir.Lf("d")),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Patch(doc, []byte(tt.patch))
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPatchErrors(t *testing.T) {
	doc := ir.Br(ir.Lf("a"), ir.Lf("b"))
	for _, p := range []string{
		`not json`,
		`[{"op": "test", "path": "/0", "value": "z"}]`,
		`[{"op": "remove", "path": "/7"}]`,
		`[{"op": "add", "path": "/0", "value": {"k": "v"}}]`,
	} {
		if _, err := Patch(doc, []byte(p)); !errors.Is(err, ErrPatch) {
			t.Errorf("Patch(%s) err = %v", p, err)
		}
	}
	if _, err := Patch(ir.Lf("a"), []byte(`[]`)); !errors.Is(err, ErrPatch) {
		t.Errorf("leaf target err = %v", err)
	}
}

func TestDiffRoundTrip(t *testing.T) {
	from, err := parse.ParseString("one (two three) four")
	if err != nil {
		t.Fatal(err)
	}
	to, err := parse.ParseString("one (two tree) [five] six")
	if err != nil {
		t.Fatal(err)
	}
	cs := Diff(from, to)
	if len(cs) != 3 {
		t.Errorf("got %d changes", len(cs))
	}
	got, err := ApplyDiff(from, cs)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(to, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}
