package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"callsheet/internal/model"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Harbor Lights", "harbor-lights"},
		{"The  Long   Road!", "the-long-road"},
		{"Déjà Vu 2", "d-j-vu-2"},
		{"already-slugged", "already-slugged"},
		{"Trailing space ", "trailing-space"},
	}
	for _, c := range cases {
		if got := Slugify(c.in); got != c.want {
			t.Errorf("Slugify(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFilename(t *testing.T) {
	date := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	got := Filename("Harbor Lights", "budget", date)
	want := "harbor-lights-budget-2026-03-15.json"
	if got != want {
		t.Errorf("Filename = %q, want %q", got, want)
	}
}

func TestSection_PrettyPrinted(t *testing.T) {
	p := &model.ProductionProject{
		Team: []model.TeamMember{{ID: "m1", Name: "Ana", Department: "Camera"}},
	}
	data, err := Section(p, "team")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "\n  ") {
		t.Error("expected two-space indented output")
	}

	var back []model.TeamMember
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(back) != 1 || back[0].Name != "Ana" {
		t.Errorf("round-trip = %+v", back)
	}
}

func TestSection_Unknown(t *testing.T) {
	if _, err := Section(&model.ProductionProject{}, "nope"); err == nil {
		t.Error("expected error for unknown section")
	}
}

func TestFileSink(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")
	sink := FileSink{Dir: dir}

	if err := sink.Export("a.json", []byte(`{}`)); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "a.json"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{}` {
		t.Errorf("content = %q, want {}", data)
	}
}
