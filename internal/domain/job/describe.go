package job

import (
	"regexp"
	"strings"
)

// Scraped descriptions arrive with HTML fragments, double-encoded UTF-8 and
// job-board tracking lines. CleanDescription flattens them to plain text.

var (
	htmlTagRe      = regexp.MustCompile(`<[^>]*>`)
	markdownLinkRe = regexp.MustCompile(`\[.*?\]\(.*?\)`)
	bracketRe      = regexp.MustCompile(`\[.*?\]`)
	trackingLineRe = regexp.MustCompile(`(?i)Please mention the word.*(#.*)?`)
	multiSpaceRe   = regexp.MustCompile(`[ \t]+`)
	multiNewlineRe = regexp.MustCompile(`\n+`)
)

var entityReplacer = strings.NewReplacer(
	"&nbsp;", " ",
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&#39;", "'",
)

// mojibakeReplacer repairs the common UTF-8-decoded-as-latin1 sequences the
// job boards ship for curly quotes, dashes and bullets.
var mojibakeReplacer = strings.NewReplacer(
	"â", "'",
	"â", `"`,
	"â", `"`,
	"â¦", "...",
	"â", "-",
	"â", "-",
	"â¢", "*",
)

// CleanDescription strips markup and junk from a raw job description.
// An empty input yields a readable placeholder instead of an empty string.
func CleanDescription(text string) string {
	if strings.TrimSpace(text) == "" {
		return "No description available"
	}

	out := htmlTagRe.ReplaceAllString(text, "")
	out = entityReplacer.Replace(out)
	out = mojibakeReplacer.Replace(out)

	out = strings.ReplaceAll(out, `\n`, "\n")
	out = multiNewlineRe.ReplaceAllString(out, "\n")

	out = strings.ReplaceAll(out, "**", "")
	out = markdownLinkRe.ReplaceAllString(out, "")
	out = bracketRe.ReplaceAllString(out, "")
	out = trackingLineRe.ReplaceAllString(out, "")

	out = multiSpaceRe.ReplaceAllString(out, " ")

	lines := strings.Split(out, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSpace(l)
	}
	out = strings.Join(lines, "\n")

	return strings.TrimSpace(out)
}
