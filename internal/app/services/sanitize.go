package services

import (
	"html"
	"net/url"
	"regexp"
	"strings"

	"github.com/gosimple/slug"
	"github.com/microcosm-cc/bluemonday"

	"github.com/fr0stylo/contentconnector/internal/app/ports"
)

// maxStripPasses bounds repeated tag stripping of entity-encoded markup.
const maxStripPasses = 3

var (
	stripPolicy = bluemonday.StrictPolicy()

	controlChars    = regexp.MustCompile(`[\x00-\x08\x0B\x0C\x0E-\x1F\x7F]`)
	percentOctets   = regexp.MustCompile(`%[a-fA-F0-9]{2}`)
	anyWhitespace   = regexp.MustCompile(`\s+`)
	inlineSpace     = regexp.MustCompile(`[\t\f\v ]+`)
	disallowedInURL = regexp.MustCompile(`[^A-Za-z0-9\-~+_.?#=!&;,/:%@$|*'()\[\]\x{80}-\x{10FFFF}]`)
)

var allowedURLSchemes = map[string]struct{}{
	"http": {}, "https": {}, "ftp": {}, "ftps": {}, "mailto": {}, "news": {},
	"irc": {}, "gopher": {}, "nntp": {}, "feed": {}, "telnet": {},
}

var hostRequiredSchemes = map[string]struct{}{
	"http": {}, "https": {}, "ftp": {}, "ftps": {},
}

// SanitizeText reduces input to a single line of plain text.
func SanitizeText(raw string) string {
	text := stripMarkup(raw)
	text = anyWhitespace.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// SanitizeTextarea reduces input to plain text, keeping line breaks.
func SanitizeTextarea(raw string) string {
	text := strings.ReplaceAll(raw, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = stripMarkup(text)

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(inlineSpace.ReplaceAllString(line, " "), " ")
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

func stripMarkup(raw string) string {
	text := strings.ToValidUTF8(raw, "")
	for range maxStripPasses {
		stripped := html.UnescapeString(stripPolicy.Sanitize(text))
		if stripped == text {
			break
		}
		text = stripped
	}
	text = controlChars.ReplaceAllString(text, "")
	return percentOctets.ReplaceAllString(text, "")
}

// SanitizeURL returns a normalized absolute URL with an allowed scheme, or
// an empty string when the input cannot be made into one.
func SanitizeURL(raw string) string {
	candidate := strings.TrimSpace(strings.ToValidUTF8(raw, ""))
	if candidate == "" {
		return ""
	}
	candidate = strings.ReplaceAll(candidate, " ", "%20")
	candidate = disallowedInURL.ReplaceAllString(candidate, "")
	if candidate == "" {
		return ""
	}

	switch candidate[0] {
	case '/', '#', '?':
		return ""
	}
	if !strings.Contains(candidate, ":") {
		candidate = "http://" + candidate
	}

	parsed, err := url.Parse(candidate)
	if err != nil {
		return ""
	}
	scheme := strings.ToLower(parsed.Scheme)
	if _, ok := allowedURLSchemes[scheme]; !ok {
		return ""
	}
	if _, ok := hostRequiredSchemes[scheme]; ok && parsed.Host == "" {
		return ""
	}
	parsed.Scheme = scheme
	return parsed.String()
}

// Slugify derives the lookup slug of a taxonomy term name.
func Slugify(name string) string {
	return slug.Make(name)
}

// NormalizeTags sanitizes tag names, drops empty ones and keeps the first
// occurrence of each slug.
func NormalizeTags(raw []string) []ports.TermInput {
	if len(raw) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(raw))
	out := make([]ports.TermInput, 0, len(raw))
	for _, value := range raw {
		name := SanitizeText(value)
		if name == "" {
			continue
		}
		tagSlug := Slugify(name)
		if tagSlug == "" {
			continue
		}
		if _, ok := seen[tagSlug]; ok {
			continue
		}
		seen[tagSlug] = struct{}{}
		out = append(out, ports.TermInput{Name: name, Slug: tagSlug})
	}
	return out
}
