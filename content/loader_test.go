package content

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

const samplePost = `---
title: %s
description: A short description.
publishedAt: %s
author: Aoi
category: grammar
tags:
  - particles
---

## Overview

Some body text.
`

func writePost(t *testing.T, root string, locale Locale, slug, title, date string) {
	t.Helper()
	dir := filepath.Join(root, string(locale))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	body := strings.Replace(samplePost, "%s", title, 1)
	body = strings.Replace(body, "%s", date, 1)
	if err := os.WriteFile(filepath.Join(dir, slug+".mdx"), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}

func writeRaw(t *testing.T, root string, locale Locale, name, data string) {
	t.Helper()
	dir := filepath.Join(root, string(locale))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
}

func newTestLoader(t *testing.T) (*Loader, string) {
	t.Helper()
	root := t.TempDir()
	return NewLoader(root, zerolog.Nop()), root
}

func TestListPostsMissingDir(t *testing.T) {
	loader, _ := newTestLoader(t)
	posts, err := loader.ListPosts(LocaleJA)
	if err != nil {
		t.Fatalf("ListPosts: %v", err)
	}
	if len(posts) != 0 {
		t.Errorf("got %d posts from a missing directory, want 0", len(posts))
	}
}

func TestListPostsSortedAndParsed(t *testing.T) {
	loader, root := newTestLoader(t)
	writePost(t, root, LocaleEN, "older", "Older Post", "2023-03-01")
	writePost(t, root, LocaleEN, "newer", "Newer Post", "2024-03-01")

	posts, err := loader.ListPosts(LocaleEN)
	if err != nil {
		t.Fatalf("ListPosts: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("got %d posts, want 2", len(posts))
	}
	if posts[0].Slug != "newer" || posts[1].Slug != "older" {
		t.Errorf("order = %s, %s; want newer, older", posts[0].Slug, posts[1].Slug)
	}
	p := posts[0]
	if p.Title != "Newer Post" || p.Author != "Aoi" || p.Category != CategoryGrammar {
		t.Errorf("parsed fields wrong: %+v", p)
	}
	if p.Locale != LocaleEN {
		t.Errorf("locale = %q, want en", p.Locale)
	}
	if p.ReadingTime < 1 {
		t.Errorf("reading time = %d, want >= 1", p.ReadingTime)
	}
	if !strings.Contains(p.Body, "## Overview") {
		t.Errorf("body missing content: %q", p.Body)
	}
}

func TestListPostsSkipsInvalidFiles(t *testing.T) {
	loader, root := newTestLoader(t)
	writePost(t, root, LocaleEN, "good", "Good Post", "2024-01-01")
	writeRaw(t, root, LocaleEN, "no-frontmatter.md", "just body text\n")
	writeRaw(t, root, LocaleEN, "missing-fields.md", "---\ntitle: Only a Title\n---\nbody\n")
	writeRaw(t, root, LocaleEN, "bad-date.md",
		"---\ntitle: T\ndescription: D\npublishedAt: someday\nauthor: A\ncategory: kana\ntags: [a]\n---\nbody\n")
	writeRaw(t, root, LocaleEN, "notes.txt", "not a content file")

	posts, err := loader.ListPosts(LocaleEN)
	if err != nil {
		t.Fatalf("ListPosts: %v", err)
	}
	if len(posts) != 1 {
		t.Fatalf("got %d posts, want only the valid one", len(posts))
	}
	if posts[0].Slug != "good" {
		t.Errorf("surviving post = %q, want good", posts[0].Slug)
	}
}

func TestGetPostLocaleFallback(t *testing.T) {
	loader, root := newTestLoader(t)
	writePost(t, root, LocaleEN, "english-only", "English Only", "2024-01-01")
	writePost(t, root, LocaleEN, "both", "Both (EN)", "2024-01-02")
	writePost(t, root, LocaleJA, "both", "Both (JA)", "2024-01-02")

	// present in the requested locale
	post, err := loader.GetPost("both", LocaleJA)
	if err != nil {
		t.Fatalf("GetPost: %v", err)
	}
	if post == nil || post.Title != "Both (JA)" {
		t.Fatalf("got %+v, want the ja record", post)
	}
	if post.Locale != LocaleJA {
		t.Errorf("locale = %q, want ja", post.Locale)
	}

	// absent in ja, falls back to the default locale
	post, err = loader.GetPost("english-only", LocaleJA)
	if err != nil {
		t.Fatalf("GetPost: %v", err)
	}
	if post == nil || post.Title != "English Only" {
		t.Fatalf("got %+v, want the fallback record", post)
	}
	if post.Locale != DefaultLocale {
		t.Errorf("locale = %q, want the default locale", post.Locale)
	}

	// absent everywhere
	post, err = loader.GetPost("nowhere", LocaleJA)
	if err != nil {
		t.Fatalf("GetPost: %v", err)
	}
	if post != nil {
		t.Errorf("got %+v for an absent slug, want nil", post)
	}
}

func TestPostExists(t *testing.T) {
	loader, root := newTestLoader(t)
	writePost(t, root, LocaleEN, "present", "Present", "2024-01-01")

	if !loader.PostExists(LocaleEN, "present") {
		t.Error("PostExists(en, present) = false, want true")
	}
	if loader.PostExists(LocaleEN, "missing") {
		t.Error("PostExists(en, missing) = true, want false")
	}
	// no fallback for existence checks
	if loader.PostExists(LocaleJA, "present") {
		t.Error("PostExists(ja, present) = true, want false")
	}
}

func TestGetPostOptionalFields(t *testing.T) {
	loader, root := newTestLoader(t)
	writeRaw(t, root, LocaleEN, "full.mdx", `---
title: Full Post
description: Every optional field set.
publishedAt: 2024-04-01
updatedAt: 2024-05-01
author: Aoi
category: kanji
tags: [kanji, radicals]
featuredImage: /images/radicals.jpg
difficulty: intermediate
relatedPosts: [english-only]
---

Body.
`)
	post, err := loader.GetPost("full", LocaleEN)
	if err != nil {
		t.Fatalf("GetPost: %v", err)
	}
	if post == nil {
		t.Fatal("post not found")
	}
	if post.UpdatedAt.IsZero() {
		t.Error("UpdatedAt not parsed")
	}
	if post.LastModified() != post.UpdatedAt {
		t.Error("LastModified should prefer UpdatedAt")
	}
	if post.FeaturedImage != "/images/radicals.jpg" {
		t.Errorf("featuredImage = %q", post.FeaturedImage)
	}
	if post.Difficulty != DifficultyIntermediate {
		t.Errorf("difficulty = %q", post.Difficulty)
	}
	if len(post.RelatedPosts) != 1 || post.RelatedPosts[0] != "english-only" {
		t.Errorf("relatedPosts = %v", post.RelatedPosts)
	}
}
