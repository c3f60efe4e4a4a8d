package content

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

var (
	errNoFrontmatter      = errors.New("no frontmatter block")
	errInvalidFrontmatter = errors.New("unterminated frontmatter block")
)

// Frontmatter is the raw YAML metadata block at the top of a content file.
// Fields are loosely typed here; a Post is built from it only after
// Validate passes.
type Frontmatter struct {
	Title         string   `yaml:"title"`
	Description   string   `yaml:"description"`
	PublishedAt   string   `yaml:"publishedAt"`
	UpdatedAt     string   `yaml:"updatedAt"`
	Author        string   `yaml:"author"`
	Category      string   `yaml:"category"`
	Tags          []string `yaml:"tags"`
	FeaturedImage string   `yaml:"featuredImage"`
	Difficulty    string   `yaml:"difficulty"`
	RelatedPosts  []string `yaml:"relatedPosts"`
}

// ValidationResult reports which required frontmatter fields are missing.
type ValidationResult struct {
	Valid         bool
	MissingFields []string
}

// requiredFields are checked in this order so MissingFields is stable.
var requiredFields = []string{"title", "description", "publishedAt", "author", "category", "tags"}

// Validate checks the required frontmatter fields for presence. A field
// counts as missing when it is absent or empty; types beyond that are
// not checked here.
func Validate(fm Frontmatter) ValidationResult {
	var missing []string
	for _, field := range requiredFields {
		switch field {
		case "title":
			if strings.TrimSpace(fm.Title) == "" {
				missing = append(missing, field)
			}
		case "description":
			if strings.TrimSpace(fm.Description) == "" {
				missing = append(missing, field)
			}
		case "publishedAt":
			if strings.TrimSpace(fm.PublishedAt) == "" {
				missing = append(missing, field)
			}
		case "author":
			if strings.TrimSpace(fm.Author) == "" {
				missing = append(missing, field)
			}
		case "category":
			if strings.TrimSpace(fm.Category) == "" {
				missing = append(missing, field)
			}
		case "tags":
			if len(fm.Tags) == 0 {
				missing = append(missing, field)
			}
		}
	}
	return ValidationResult{Valid: len(missing) == 0, MissingFields: missing}
}

// splitFrontmatter separates the fenced YAML block from the body.
// Line endings are normalized first so CRLF content parses the same way.
func splitFrontmatter(raw []byte) (Frontmatter, string, error) {
	norm := bytes.ReplaceAll(raw, []byte("\r\n"), []byte("\n"))
	norm = bytes.ReplaceAll(norm, []byte("\r"), []byte("\n"))

	const fence = "---\n"
	if !bytes.HasPrefix(norm, []byte(fence)) {
		return Frontmatter{}, "", errNoFrontmatter
	}
	rest := norm[len(fence):]

	var yamlPart, body []byte
	if parts := bytes.SplitN(rest, []byte("\n---\n"), 2); len(parts) == 2 {
		yamlPart = parts[0]
		body = parts[1]
	} else if bytes.HasSuffix(rest, []byte("\n---")) {
		// frontmatter only, no body
		yamlPart = rest[:len(rest)-len("\n---")]
	} else {
		return Frontmatter{}, "", errInvalidFrontmatter
	}

	var fm Frontmatter
	if err := yaml.Unmarshal(yamlPart, &fm); err != nil {
		return Frontmatter{}, "", fmt.Errorf("frontmatter yaml: %w", err)
	}
	return fm, strings.TrimSpace(string(body)), nil
}

// dateLayouts accepted for publishedAt/updatedAt, most common first.
var dateLayouts = []string{time.DateOnly, time.RFC3339, "2006-01-02 15:04"}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}
