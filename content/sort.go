package content

import "sort"

// SortPostsByDate returns a new slice with posts ordered by publication
// date, most recent first. The sort is stable, so posts sharing a date
// keep their input order, and the input slice is left untouched.
func SortPostsByDate(posts []Post) []Post {
	sorted := make([]Post, len(posts))
	copy(sorted, posts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].PublishedAt.After(sorted[j].PublishedAt)
	})
	return sorted
}
