package layout

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/atomicstack/focus-tree/internal/focus"
)

func writeLayout(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "layout.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write layout: %v", err)
	}
	return path
}

func TestLoadEmptyPathUsesDefault(t *testing.T) {
	l, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(l.Lists) != 3 {
		t.Fatalf("expected 3 default lists, got %d", len(l.Lists))
	}
	if err := Default().Validate(); err != nil {
		t.Fatalf("expected default layout to validate, got %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	path := writeLayout(t, `
title: demo
lists:
  - key: z
    label: Zs
    items: [one, two]
  - key: "y"
    label: Ys
`)
	l, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l.Title != "demo" || len(l.Lists) != 2 || l.ItemCount() != 2 {
		t.Fatalf("unexpected layout %+v", l)
	}
	if l.Lists[0].Key != "z" || l.Lists[0].Label != "Zs" || l.Lists[1].Key != "y" {
		t.Fatalf("unexpected lists %+v", l.Lists)
	}
}

func TestLoadRejectsBadInput(t *testing.T) {
	cases := map[string]string{
		"unknown field": "lists:\n  - key: a\n    label: A\n    colour: red\n",
		"no lists":      "title: empty\n",
		"long key":      "lists:\n  - key: ab\n    label: A\n",
		"duplicate key": "lists:\n  - key: a\n    label: A\n  - key: a\n    label: B\n",
		"empty label":   "lists:\n  - key: a\n",
		"reserved key":  "lists:\n  - key: q\n    label: Q\n",
	}
	for name, body := range cases {
		if _, err := Load(writeLayout(t, body)); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestPathRelations(t *testing.T) {
	p := RootPath.Child("a").Child("2")
	if p != "app/a/2" {
		t.Fatalf("expected app/a/2, got %s", p)
	}
	if p.Parent() != "app/a" || Path("app").Parent() != "" {
		t.Fatalf("unexpected parents %q %q", p.Parent(), Path("app").Parent())
	}
	if !RootPath.Encloses(p) || p.Encloses(p) || Path("app/a").Encloses("app/ab") {
		t.Fatalf("unexpected enclosure results")
	}
	if Ancestry.IsAncestor("app", Path("app/a")) {
		t.Fatalf("expected plain strings not to be treated as paths")
	}
	if !Ancestry.IsAncestor(Path("app"), Path("app/a")) {
		t.Fatalf("expected app to enclose app/a")
	}
}

func TestRegionsBuildNestedForest(t *testing.T) {
	regions := Default().Regions()
	var s focus.State
	labels := map[focus.ID]string{}
	for _, r := range regions {
		s = focus.Apply(s, r.Command(), Ancestry)
		labels[r.ID] = r.Label
	}
	if err := s.Forest().Validate(); err != nil {
		t.Fatalf("unexpected invalid forest: %v", err)
	}
	var got []string
	for _, id := range s.Forest().Values() {
		got = append(got, labels[id])
	}
	want := "focus tree,List A,alpha,apricot,List B,bravo,List C"
	if strings.Join(got, ",") != want {
		t.Fatalf("expected %s, got %s", want, strings.Join(got, ","))
	}
	depths := s.Forest().Depths()
	for i, d := range []int{0, 1, 2, 2, 1, 2, 1} {
		if depths[i] != d {
			t.Fatalf("expected depths [0 1 2 2 1 2 1], got %v", depths)
		}
	}
}
