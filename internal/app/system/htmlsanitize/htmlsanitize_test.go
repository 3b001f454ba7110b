package htmlsanitize

import (
	"strings"
	"testing"
)

func TestEmbed(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		contains []string
		excludes []string
	}{
		{
			name:     "vimeo iframe passes",
			input:    `<iframe src="https://player.vimeo.com/video/1" width="640" height="360" frameborder="0" allowfullscreen></iframe>`,
			contains: []string{"iframe", "player.vimeo.com", `width="640"`, "allowfullscreen"},
		},
		{
			name:     "protocol-relative src passes",
			input:    `<iframe src="//www.youtube.com/embed/x"></iframe>`,
			contains: []string{"www.youtube.com"},
		},
		{
			name:     "http src stripped",
			input:    `<iframe src="http://evil.example/embed"></iframe>`,
			excludes: []string{"evil.example"},
		},
		{
			name:     "javascript src stripped",
			input:    `<iframe src="javascript:alert(1)"></iframe>`,
			excludes: []string{"javascript"},
		},
		{
			name:     "script removed",
			input:    `<script>alert(1)</script><iframe src="https://player.vimeo.com/video/1"></iframe>`,
			contains: []string{"player.vimeo.com"},
			excludes: []string{"script", "alert"},
		},
		{
			name:     "event handler removed",
			input:    `<iframe src="https://player.vimeo.com/video/1" onload="alert(1)"></iframe>`,
			contains: []string{"player.vimeo.com"},
			excludes: []string{"onload"},
		},
		{
			name:     "plain text survives as text",
			input:    "not markup",
			contains: []string{"not markup"},
		},
		{
			name:  "empty input",
			input: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Embed(tt.input)
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("output missing %q:\n%s", want, got)
				}
			}
			for _, bad := range tt.excludes {
				if strings.Contains(got, bad) {
					t.Errorf("output still contains %q:\n%s", bad, got)
				}
			}
		})
	}
}

func TestEmbedHTMLMatchesEmbed(t *testing.T) {
	in := `<iframe src="https://player.vimeo.com/video/1"></iframe>`
	if string(EmbedHTML(in)) != Embed(in) {
		t.Error("EmbedHTML and Embed disagree")
	}
}
