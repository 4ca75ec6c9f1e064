package eval

import (
	"errors"
	"testing"

	"github.com/signadot/bracket/ir"

	"github.com/google/go-cmp/cmp"
)

func evalDoc() ir.Bracket {
	// alpha [beta [gamma delta]] epsilon
	return ir.Br(
		ir.Lf("alpha"),
		ir.Br(ir.Lf("beta"), ir.Br(ir.Lf("gamma"), ir.Lf("delta"))),
		ir.Lf("epsilon"),
	)
}

func paths(ms []Match) []string {
	var res []string
	for _, m := range ms {
		res = append(res, m.Path+"="+m.Leaf.String)
	}
	return res
}

func TestSelect(t *testing.T) {
	tests := []struct {
		code string
		want []string
	}{
		{`true`, []string{"$[0]=alpha", "$[1][0]=beta", "$[1][1][0]=gamma", "$[1][1][1]=delta", "$[2]=epsilon"}},
		{`false`, nil},
		{`depth == 1`, []string{"$[0]=alpha", "$[2]=epsilon"}},
		{`index == 1`, []string{"$[1][1][1]=delta"}},
		{`text contains "lt"`, []string{"$[1][1][1]=delta"}},
		{`len(text) > 5`, []string{"$[2]=epsilon"}},
		{`path startsWith "$[1][1]"`, []string{"$[1][1][0]=gamma", "$[1][1][1]=delta"}},
		{`text == head("$[2]")`, []string{"$[2]=epsilon"}},
		{`truth("$[1][1]") && depth == 1`, []string{"$[0]=alpha", "$[2]=epsilon"}},
		{`truth("$[9]")`, nil},
		{`len(listpath("$[*]")) == 3 && depth == 3 && index == 0`, []string{"$[1][1][0]=gamma"}},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			ms, err := Select(evalDoc(), tt.code)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, paths(ms)); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSelectAt(t *testing.T) {
	ms, err := Select(evalDoc(), `text == "delta"`)
	if err != nil {
		t.Fatal(err)
	}
	if len(ms) != 1 {
		t.Fatalf("got %d matches", len(ms))
	}
	if diff := cmp.Diff([]int{1, 1, 1}, ms[0].At); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestSelectRootLeaf(t *testing.T) {
	ms, err := Select(ir.Lf("solo"), `depth == 0 && index == 0 && path == "$"`)
	if err != nil {
		t.Fatal(err)
	}
	if len(ms) != 1 || ms[0].Leaf.String != "solo" {
		t.Errorf("got %v", paths(ms))
	}
	ms, err = Select(ir.Empty(), `true`)
	if err != nil || len(ms) != 0 {
		t.Errorf("empty: %v %v", ms, err)
	}
}

func TestSelectErrors(t *testing.T) {
	if _, err := Select(evalDoc(), `text`); !errors.Is(err, ErrNotBool) {
		t.Errorf("expected ErrNotBool, got %v", err)
	}
	if _, err := Select(evalDoc(), `text ==`); !errors.Is(err, ErrCompile) {
		t.Errorf("expected ErrCompile, got %v", err)
	}
	if _, err := Select(evalDoc(), `nosuchvar == 1`); !errors.Is(err, ErrCompile) {
		t.Errorf("expected ErrCompile, got %v", err)
	}
}

func TestFilter(t *testing.T) {
	got, err := Filter(evalDoc(), `text contains "e"`)
	if err != nil {
		t.Fatal(err)
	}
	want := ir.Br(
		ir.Br(ir.Lf("beta"), ir.Br(ir.Lf("delta"))),
		ir.Lf("epsilon"),
	)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}

	got, err = Filter(evalDoc(), `false`)
	if err != nil {
		t.Fatal(err)
	}
	want = ir.Br(ir.Br(ir.Br()))
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}

	got, err = Filter(ir.Lf("x"), `false`)
	if err != nil {
		t.Fatal(err)
	}
	if !got.IsEmpty() {
		t.Errorf("root leaf kept: %v", got)
	}
}

func TestFilterKeepsInput(t *testing.T) {
	doc := evalDoc()
	if _, err := Filter(doc, `false`); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(evalDoc(), doc); diff != "" {
		t.Errorf("input modified (-want +got):\n%s", diff)
	}
}

func TestSelectPlainEnv(t *testing.T) {
	ms, err := Select(ir.Br(ir.Lf("a"), ir.Lf("b")), `text == "a"`)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"$[0]=a"}, paths(ms)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	env := leafEnv(ir.Lf("x"), []int{2, 3})
	want := map[string]any{"text": "x", "index": 3, "depth": 2, "path": "$[2][3]"}
	if diff := cmp.Diff(want, env); diff != "" {
		t.Errorf("leafEnv mismatch (-want +got):\n%s", diff)
	}
}
