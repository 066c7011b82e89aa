package blogservice

import "database/sql"

type Post struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	// Date is the human-formatted publication date ("January 02, 2006"),
	// stored as text rather than a timestamp.
	Date   string `json:"date"`
	Body   string `json:"body"`
	ImgURL string `json:"img_url"`

	AuthorID   int    `json:"author_id"`
	AuthorName string `json:"author_name"`
}

type Comment struct {
	ID   int    `json:"id"`
	Text string `json:"text"`

	AuthorID    int    `json:"author_id"`
	AuthorName  string `json:"author_name"`
	AuthorEmail string `json:"author_email"`
	PostID      int    `json:"post_id"`
}

type BlogModel struct {
	db *sql.DB
}

type BlogService struct {
	m *BlogModel
}
