package content

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

// extensions recognized as content files, in lookup order.
var extensions = []string{".mdx", ".md"}

// Loader reads posts from a content root laid out as one directory per
// locale. It holds no cache: every call reflects the filesystem at call
// time. Parse and validation failures are reported to the injected
// logger and never abort a batch.
type Loader struct {
	root string
	log  zerolog.Logger
}

// NewLoader creates a Loader over the given content root. Pass
// zerolog.Nop() to silence diagnostics.
func NewLoader(root string, log zerolog.Logger) *Loader {
	return &Loader{root: root, log: log}
}

func (l *Loader) localeDir(locale Locale) string {
	return filepath.Join(l.root, string(locale))
}

// ListPosts returns every valid post in the locale's directory, sorted
// by publication date descending. A missing directory means no posts,
// not an error. Invalid files are logged and skipped.
func (l *Loader) ListPosts(locale Locale) ([]Post, error) {
	dir := l.localeDir(locale)
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("kotoba: read content dir %s: %w", dir, err)
	}

	var posts []Post
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := filepath.Ext(name)
		if !recognizedExt(ext) {
			continue
		}
		slug := strings.TrimSuffix(name, ext)
		post, err := l.parseFile(filepath.Join(dir, name), slug, locale)
		if err != nil {
			l.log.Warn().Err(err).Str("file", name).Str("locale", string(locale)).
				Msg("skipping invalid post")
			continue
		}
		posts = append(posts, post)
	}
	return SortPostsByDate(posts), nil
}

// GetPost returns the post with the given slug from the requested
// locale, falling back to the default locale when absent there. The
// returned post's Locale field reflects the locale it was served from.
// A post absent everywhere returns nil, nil.
func (l *Loader) GetPost(slug string, locale Locale) (*Post, error) {
	for _, loc := range fallbackChain(locale) {
		path, ok := l.findFile(loc, slug)
		if !ok {
			continue
		}
		post, err := l.parseFile(path, slug, loc)
		if err != nil {
			l.log.Warn().Err(err).Str("file", filepath.Base(path)).Str("locale", string(loc)).
				Msg("skipping invalid post")
			continue
		}
		return &post, nil
	}
	return nil, nil
}

// PostExists reports whether a content file for slug exists in the
// locale's directory. No fallback and no parse, just a stat.
func (l *Loader) PostExists(locale Locale, slug string) bool {
	_, ok := l.findFile(locale, slug)
	return ok
}

func (l *Loader) findFile(locale Locale, slug string) (string, bool) {
	for _, ext := range extensions {
		path := filepath.Join(l.localeDir(locale), slug+ext)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
	}
	return "", false
}

// parseFile reads and parses a single content file into a Post. The
// Post is built only after the frontmatter passes validation.
func (l *Loader) parseFile(path, slug string, locale Locale) (Post, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Post{}, fmt.Errorf("read: %w", err)
	}
	fm, body, err := splitFrontmatter(raw)
	if err != nil {
		return Post{}, err
	}
	if result := Validate(fm); !result.Valid {
		return Post{}, fmt.Errorf("missing frontmatter fields: %s", strings.Join(result.MissingFields, ", "))
	}

	publishedAt, err := parseDate(fm.PublishedAt)
	if err != nil {
		return Post{}, fmt.Errorf("publishedAt: %w", err)
	}
	post := Post{
		Title:         fm.Title,
		Description:   fm.Description,
		Slug:          slug,
		PublishedAt:   publishedAt,
		Author:        fm.Author,
		Category:      Category(fm.Category),
		Tags:          fm.Tags,
		FeaturedImage: fm.FeaturedImage,
		ReadingTime:   ReadingTime(body),
		Difficulty:    Difficulty(fm.Difficulty),
		RelatedPosts:  fm.RelatedPosts,
		Locale:        locale,
		Body:          body,
	}
	if fm.UpdatedAt != "" {
		updatedAt, err := parseDate(fm.UpdatedAt)
		if err != nil {
			return Post{}, fmt.Errorf("updatedAt: %w", err)
		}
		post.UpdatedAt = updatedAt
	}
	return post, nil
}

// fallbackChain is the lookup order for a requested locale: itself,
// then the default. A single hop, not a general chain.
func fallbackChain(locale Locale) []Locale {
	if locale == DefaultLocale {
		return []Locale{DefaultLocale}
	}
	return []Locale{locale, DefaultLocale}
}

func recognizedExt(ext string) bool {
	for _, e := range extensions {
		if strings.EqualFold(ext, e) {
			return true
		}
	}
	return false
}
