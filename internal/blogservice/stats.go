package blogservice

import "context"

// BlogStats is an aggregate view over all blogs.
type BlogStats struct {
	Count      int       `json:"count"`
	TotalLikes int64     `json:"totalLikes"`
	Favorite   *BlogView `json:"favorite,omitempty"`
}

func totalLikes(blogs []Blog) int64 {
	var total int64
	for i := range blogs {
		if blogs[i].Likes.Valid {
			total += blogs[i].Likes.Int64
		}
	}

	return total
}

// favoriteBlog returns the blog with the most likes, the earliest one on a
// tie, or nil for an empty list.
func favoriteBlog(blogs []Blog) *Blog {
	if len(blogs) == 0 {
		return nil
	}

	favorite := &blogs[0]
	for i := range blogs {
		if blogs[i].Likes.Valid && blogs[i].Likes.Int64 > favorite.Likes.Int64 {
			favorite = &blogs[i]
		}
	}

	return favorite
}

// Stats aggregates likes across every blog.
func (s *BlogService) Stats(ctx context.Context) (*BlogStats, error) {
	blogs, err := s.m.getAll(ctx)
	if err != nil {
		return nil, err
	}

	stats := &BlogStats{
		Count:      len(blogs),
		TotalLikes: totalLikes(blogs),
	}

	if favorite := favoriteBlog(blogs); favorite != nil {
		stats.Favorite = viewBlog(favorite)
	}

	return stats, nil
}
