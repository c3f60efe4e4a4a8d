// Package content loads localized Markdown posts from a content directory.
// Each locale has its own subdirectory; a file's name (minus extension) is
// the post's slug. Every call reads the filesystem fresh; callers that
// need caching layer it on top.
package content

import "time"

// Category classifies a post. Frontmatter must use one of these values.
type Category string

const (
	CategoryGrammar      Category = "grammar"
	CategoryVocabulary   Category = "vocabulary"
	CategoryCulture      Category = "culture"
	CategoryKana         Category = "kana"
	CategoryKanji        Category = "kanji"
	CategoryLearningTips Category = "learning-tips"
)

// Difficulty is an optional reader-level hint.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Post is a fully parsed content file. It is constructed by the Loader
// after frontmatter validation succeeds and is never mutated afterwards.
type Post struct {
	Title         string
	Description   string
	Slug          string // derived from the filename, stable per file
	PublishedAt   time.Time
	UpdatedAt     time.Time // zero when the frontmatter omits updatedAt
	Author        string
	Category      Category
	Tags          []string
	FeaturedImage string
	ReadingTime   int // minutes, derived from the body word count
	Difficulty    Difficulty
	RelatedPosts  []string // slugs, same locale
	Locale        Locale
	Body          string // raw Markdown, frontmatter stripped
}

// LastModified returns updatedAt when present, otherwise publishedAt.
func (p Post) LastModified() time.Time {
	if !p.UpdatedAt.IsZero() {
		return p.UpdatedAt
	}
	return p.PublishedAt
}
