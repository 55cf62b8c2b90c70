package blogservice

// BlogView is the public representation of a stored blog. The identity field
// is exposed as a plain id, internal bookkeeping fields are dropped, and
// likes is always a materialized integer.
type BlogView struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	URL    string `json:"url"`
	Likes  int64  `json:"likes"`
	User   *Owner `json:"user,omitempty"`
}

// viewBlog maps a stored blog to its response shape. It never mutates the
// record and is applied to every blog leaving the service.
func viewBlog(b *Blog) *BlogView {
	var likes int64
	if b.Likes.Valid {
		likes = b.Likes.Int64
	}

	return &BlogView{
		ID:     b.ID,
		Title:  b.Title,
		Author: b.Author,
		URL:    b.URL,
		Likes:  likes,
		User:   b.Owner,
	}
}

func viewBlogs(blogs []Blog) []BlogView {
	views := make([]BlogView, 0, len(blogs))
	for i := range blogs {
		views = append(views, *viewBlog(&blogs[i]))
	}

	return views
}
