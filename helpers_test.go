package kotoba

import (
	"strings"
	"testing"
	"time"

	"github.com/eringen/kotoba/content"
)

func TestBuildURL(t *testing.T) {
	tests := []struct {
		base     string
		segments []string
		expected string
	}{
		{"https://example.com", nil, "https://example.com"},
		{"https://example.com", []string{"en"}, "https://example.com/en/"},
		{"https://example.com", []string{"en", "blog", "slug"}, "https://example.com/en/blog/slug/"},
		{"https://example.com/base", []string{"en"}, "https://example.com/base/en/"},
	}
	for _, tt := range tests {
		if got := BuildURL(tt.base, tt.segments...); got != tt.expected {
			t.Errorf("BuildURL(%q, %v) = %q, want %q", tt.base, tt.segments, got, tt.expected)
		}
	}
}

func taggedPost(slug string, tags []string, related []string) content.Post {
	return content.Post{
		Slug:         slug,
		Tags:         tags,
		RelatedPosts: related,
		PublishedAt:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Locale:       content.LocaleEN,
	}
}

func TestRelatedPostsExplicitFirst(t *testing.T) {
	current := taggedPost("current", []string{"kana"}, []string{"chosen"})
	candidates := []content.Post{
		taggedPost("by-tag", []string{"kana"}, nil),
		taggedPost("chosen", []string{"unrelated"}, nil),
		taggedPost("noise", []string{"other"}, nil),
	}
	related := RelatedPosts(current, candidates, 3)
	if len(related) != 2 {
		t.Fatalf("got %d related, want 2: %v", len(related), related)
	}
	if related[0].Slug != "chosen" {
		t.Errorf("explicit related post should come first, got %s", related[0].Slug)
	}
	if related[1].Slug != "by-tag" {
		t.Errorf("tag match should follow, got %s", related[1].Slug)
	}
}

func TestRelatedPostsExcludesSelfAndRespectsLimit(t *testing.T) {
	current := taggedPost("current", []string{"kana"}, nil)
	candidates := []content.Post{
		taggedPost("current", []string{"kana"}, nil),
		taggedPost("one", []string{"kana"}, nil),
		taggedPost("two", []string{"kana"}, nil),
		taggedPost("three", []string{"kana"}, nil),
	}
	related := RelatedPosts(current, candidates, 2)
	if len(related) != 2 {
		t.Fatalf("got %d related, want 2", len(related))
	}
	for _, p := range related {
		if p.Slug == "current" {
			t.Error("related posts must not include the current post")
		}
	}
}

func TestFilterEmpty(t *testing.T) {
	got := FilterEmpty([]string{"a", "", "  ", "b"})
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("FilterEmpty = %v", got)
	}
}

func TestBlogPostingJsonLD(t *testing.T) {
	cfg := SiteConfig{Name: "Kotoba", URL: "https://example.com", Author: "Aoi"}
	post := content.Post{
		Title:       "Hiragana Basics",
		Description: "Learn the first rows.",
		Slug:        "hiragana-basics",
		PublishedAt: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Author:      "Aoi",
		Tags:        []string{"kana", "beginner"},
		ReadingTime: 4,
		Locale:      content.LocaleEN,
	}
	got := BlogPostingJsonLD(post, cfg)
	for _, want := range []string{
		`"headline":"Hiragana Basics"`,
		`"inLanguage":"en"`,
		`"timeRequired":"PT4M"`,
		`"datePublished":"2024-03-01"`,
		`https://example.com/en/blog/hiragana-basics/`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("JSON-LD missing %q: %s", want, got)
		}
	}
}

func TestWebsiteJsonLD(t *testing.T) {
	got := WebsiteJsonLD(SiteConfig{Name: "Kotoba", URL: "https://example.com", Description: "d", Author: "Aoi"})
	for _, want := range []string{`"@type":"WebSite"`, `"name":"Kotoba"`, `"Person"`} {
		if !strings.Contains(got, want) {
			t.Errorf("JSON-LD missing %q: %s", want, got)
		}
	}
}
