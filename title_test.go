package md2html

import (
	"errors"
	"testing"
)

func TestExtractTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{name: "heading", input: "# Hello", want: "Hello"},
		{name: "heading after text", input: "intro\n\n# Later\n", want: "Later"},
		{name: "front matter wins", input: "---\ntitle: Meta\n---\n# Heading", want: "Meta"},
		{name: "byte order mark and crlf", input: "\ufeff# Title\r\n\r\nbody", want: "Title"},
		{name: "heading inside front matter ignored", input: "---\ndescription: \"# no\"\n---\ntext", wantErr: ErrNoTitleFound},
		{name: "no heading", input: "## Sub\n\ntext", wantErr: ErrNoTitleFound},
		{name: "bad front matter", input: "---\ntitle: [\n---\n# H", wantErr: ErrFrontMatter},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ExtractTitle(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ExtractTitle() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFrontMatterKeys_ReturnsCopy(t *testing.T) {
	t.Parallel()

	keys := FrontMatterKeys()
	if len(keys) == 0 {
		t.Fatal("expected keys")
	}
	keys[0] = "mutated"
	if FrontMatterKeys()[0] == "mutated" {
		t.Error("FrontMatterKeys() exposes internal slice")
	}
}
