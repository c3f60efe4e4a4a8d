package content

import "strings"

// wordsPerMinute is the assumed reading speed for the estimate.
const wordsPerMinute = 200

// ReadingTime estimates reading time in whole minutes for body, rounding
// up and never returning less than 1.
func ReadingTime(body string) int {
	words := len(strings.Fields(body))
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		return 1
	}
	return minutes
}
