// Package stats provides pure aggregation helpers over in-memory blog
// lists. All functions are deterministic and perform no I/O.
package stats

import "bloglist/internal/models"

// BlogSummary is the projection returned by FavoriteBlog.
type BlogSummary struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	Likes  int    `json:"likes"`
}

// AuthorBlogs pairs an author with the number of blogs they wrote.
type AuthorBlogs struct {
	Author string `json:"author"`
	Blogs  int    `json:"blogs"`
}

// AuthorLikes pairs an author with their aggregate like count.
type AuthorLikes struct {
	Author string `json:"author"`
	Likes  int    `json:"likes"`
}

// Dummy always returns 1. It exists as a smoke-test probe for the
// package wiring, not as a real statistic.
func Dummy(blogs []models.Blog) int {
	return 1
}

// TotalLikes sums the like counts of all blogs. An empty list sums to 0.
func TotalLikes(blogs []models.Blog) int {
	total := 0
	for _, b := range blogs {
		total += b.Likes
	}
	return total
}

// FavoriteBlog returns the blog with the strictly highest like count.
// Ties keep the first occurrence in input order. The second return
// value is false when the list is empty.
func FavoriteBlog(blogs []models.Blog) (BlogSummary, bool) {
	if len(blogs) == 0 {
		return BlogSummary{}, false
	}

	best := blogs[0]
	for _, b := range blogs[1:] {
		if b.Likes > best.Likes {
			best = b
		}
	}
	return BlogSummary{Title: best.Title, Author: best.Author, Likes: best.Likes}, true
}

// MostBlogs returns the author with the largest number of blogs.
// On a tie the first author to reach the maximal count in input order
// wins, which keeps the result deterministic for a given input
// sequence. The second return value is false when the list is empty.
func MostBlogs(blogs []models.Blog) (AuthorBlogs, bool) {
	if len(blogs) == 0 {
		return AuthorBlogs{}, false
	}

	counts := make(map[string]int, len(blogs))
	var top AuthorBlogs
	for _, b := range blogs {
		counts[b.Author]++
		if counts[b.Author] > top.Blogs {
			top = AuthorBlogs{Author: b.Author, Blogs: counts[b.Author]}
		}
	}
	return top, true
}

// MostLikes returns the author whose blogs collected the most likes in
// total, with the same tie-break and empty-input rules as MostBlogs.
func MostLikes(blogs []models.Blog) (AuthorLikes, bool) {
	if len(blogs) == 0 {
		return AuthorLikes{}, false
	}

	totals := make(map[string]int, len(blogs))
	var top AuthorLikes
	first := true
	for _, b := range blogs {
		totals[b.Author] += b.Likes
		if first || totals[b.Author] > top.Likes {
			top = AuthorLikes{Author: b.Author, Likes: totals[b.Author]}
			first = false
		}
	}
	return top, true
}
