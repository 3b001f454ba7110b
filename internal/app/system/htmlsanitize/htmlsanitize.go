// Package htmlsanitize sanitizes the one raw-HTML surface of the
// content model: video block embed markup. It uses bluemonday to strip
// anything beyond the iframe shape video hosts hand out.
package htmlsanitize

import (
	"html/template"
	"regexp"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	embedPolicy *bluemonday.Policy
	policyOnce  sync.Once
)

// getPolicy returns the shared embed policy, creating it on first use.
func getPolicy() *bluemonday.Policy {
	policyOnce.Do(func() {
		// Embeds are iframes only: no scripts, no inline handlers,
		// sources restricted to https (or protocol-relative) URLs.
		p := bluemonday.NewPolicy()
		p.AllowElements("iframe")
		p.AllowAttrs("src").Matching(regexp.MustCompile(`^(https:)?//`)).OnElements("iframe")
		p.AllowAttrs("width", "height", "frameborder", "allow", "allowfullscreen", "title", "loading").OnElements("iframe")
		embedPolicy = p
	})
	return embedPolicy
}

// Embed sanitizes video embed markup, keeping only https iframes.
func Embed(markup string) string {
	if markup == "" {
		return ""
	}
	return getPolicy().Sanitize(markup)
}

// EmbedHTML sanitizes embed markup and returns it as template.HTML,
// safe to inject into templates without re-escaping.
func EmbedHTML(markup string) template.HTML {
	return template.HTML(Embed(markup))
}
