package cli

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestParseList(t *testing.T) {
	tests := []struct {
		name  string
		input string
		def   []string
		want  []string
	}{
		{"empty uses default", "", []string{"svg"}, []string{"svg"}},
		{"single", "png", []string{"svg"}, []string{"png"}},
		{"multiple", "svg,png", nil, []string{"svg", "png"}},
		{"spaces and blanks", " scatter , ,map", nil, []string{"scatter", "map"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseList(tt.input, tt.def...); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseList(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestValidateRenderOpts(t *testing.T) {
	tests := []struct {
		name    string
		opts    renderOpts
		wantErr bool
	}{
		{"defaults", renderOpts{views: []string{"scatter", "map"}, formats: []string{"svg"}}, false},
		{"png", renderOpts{views: []string{"map"}, formats: []string{"png"}}, false},
		{"bad view", renderOpts{views: []string{"tower"}, formats: []string{"svg"}}, true},
		{"bad format", renderOpts{views: []string{"map"}, formats: []string{"pdf"}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := validateRenderOpts(tt.opts); (err != nil) != tt.wantErr {
				t.Errorf("validateRenderOpts() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestRenderPaths(t *testing.T) {
	single := renderPaths("talk/topics.json", renderOpts{views: []string{"map"}, formats: []string{"png"}})
	if got := single[[2]string{"map", "png"}]; got != "talk/topics.png" {
		t.Errorf("single path = %q", got)
	}

	multi := renderPaths("topics.toml", renderOpts{
		output:  "out/canvas.svg",
		views:   []string{"scatter", "map"},
		formats: []string{"svg", "png"},
	})
	want := map[[2]string]string{
		{"scatter", "svg"}: "out/canvas_scatter.svg",
		{"scatter", "png"}: "out/canvas_scatter.png",
		{"map", "svg"}:     "out/canvas_map.svg",
		{"map", "png"}:     "out/canvas_map.png",
	}
	if !reflect.DeepEqual(multi, want) {
		t.Errorf("multi paths = %v, want %v", multi, want)
	}
}

func TestLayoutPath(t *testing.T) {
	if got := layoutPath("", "a/b.json"); got != "a/b.layout.json" {
		t.Errorf("layoutPath = %q", got)
	}
	if got := layoutPath("x.json", "a/b.json"); got != "x.json" {
		t.Errorf("layoutPath with output = %q", got)
	}
}

func TestRunRenderWritesFiles(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	input := filepath.Join(dir, "topics.json")
	writeFile(t, input, `[{"id":"a","label":"Alpha","keyphrases":["one","two"]},{"id":"b","label":"Beta"}]`)

	c := newTestCLI()
	opts := renderOpts{views: []string{"scatter", "map"}, formats: []string{"svg"}, layout: true}
	if err := c.runRender(t.Context(), input, opts); err != nil {
		t.Fatalf("runRender: %v", err)
	}

	for _, name := range []string{"topics_scatter.svg", "topics_map.svg", "topics.layout.json"} {
		info, err := os.Stat(filepath.Join(dir, name))
		if err != nil {
			t.Errorf("missing %s: %v", name, err)
			continue
		}
		if info.Size() == 0 {
			t.Errorf("%s is empty", name)
		}
	}
}
