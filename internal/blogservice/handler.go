package blogservice

import (
	"context"
	"database/sql"

	"github.com/hueyvil/inkpost/internal/common"
)

func NewBlogService(db *sql.DB) *BlogService {
	return &BlogService{m: newBlogModel(db)}
}

type CreatePostRequest struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Date     string `json:"date"`
	Body     string `json:"body"`
	ImgURL   string `json:"img_url"`
	AuthorID int    `json:"author_id"`
}

// CreatePost creates a new blog post. The caller supplies the formatted date
// string and the author ID.
func (s *BlogService) CreatePost(ctx context.Context, req *CreatePostRequest) (*Post, error) {
	v := common.NewValidator()
	validatePostForm(v, req.Title, req.Subtitle, req.ImgURL, req.Body)
	validateInt(v, req.AuthorID, "author_id")
	v.Check(req.Date != "", "date", "must be provided")
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	p := Post{
		Title:    req.Title,
		Subtitle: req.Subtitle,
		Date:     req.Date,
		Body:     sanitizeRichText(req.Body),
		ImgURL:   req.ImgURL,
		AuthorID: req.AuthorID,
	}

	if err := s.m.insertPost(ctx, &p); err != nil {
		return nil, err
	}

	return &p, nil
}

// GetPostByID returns a blog post along with its author's name.
func (s *BlogService) GetPostByID(ctx context.Context, id int) (*Post, error) {
	v := common.NewValidator()
	validateInt(v, id, "id")
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	return s.m.getPostById(ctx, id)
}

// GetAllPosts returns every blog post.
func (s *BlogService) GetAllPosts(ctx context.Context) ([]Post, error) {
	return s.m.getAllPosts(ctx)
}

type UpdatePostRequest struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Body     string `json:"body"`
	ImgURL   string `json:"img_url"`
	AuthorID int    `json:"author_id"`
}

// UpdatePost overwrites all mutable fields of a post, including its author:
// authorship moves to whoever submits the edit. There is no ownership check
// here or in the handlers.
func (s *BlogService) UpdatePost(ctx context.Context, req *UpdatePostRequest) error {
	v := common.NewValidator()
	validatePostForm(v, req.Title, req.Subtitle, req.ImgURL, req.Body)
	validateInt(v, req.ID, "id")
	validateInt(v, req.AuthorID, "author_id")
	if !v.Valid() {
		return v.ValidationError()
	}

	p := Post{
		ID:       req.ID,
		Title:    req.Title,
		Subtitle: req.Subtitle,
		Body:     sanitizeRichText(req.Body),
		ImgURL:   req.ImgURL,
		AuthorID: req.AuthorID,
	}

	return s.m.updatePost(ctx, &p)
}

// DeletePost removes a post unconditionally. Its comments are not cleaned
// up and remain as orphaned rows.
func (s *BlogService) DeletePost(ctx context.Context, id int) error {
	v := common.NewValidator()
	validateInt(v, id, "id")
	if !v.Valid() {
		return v.ValidationError()
	}

	return s.m.deletePost(ctx, id)
}

// CreateComment persists a comment linked to its author and parent post.
func (s *BlogService) CreateComment(ctx context.Context, text string, authorID, postID int) (*Comment, error) {
	v := common.NewValidator()
	validateCommentText(v, text)
	validateInt(v, authorID, "author_id")
	validateInt(v, postID, "post_id")
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	c := Comment{
		Text:     sanitizeRichText(text),
		AuthorID: authorID,
		PostID:   postID,
	}

	if err := s.m.insertComment(ctx, &c); err != nil {
		return nil, err
	}

	return &c, nil
}

// GetAllComments returns every comment in the store, regardless of post.
// The post page renders this unscoped list, matching the behavior the site
// has always had.
func (s *BlogService) GetAllComments(ctx context.Context) ([]Comment, error) {
	return s.m.getAllComments(ctx)
}

// GetCommentsByPostID returns only the comments attached to one post.
func (s *BlogService) GetCommentsByPostID(ctx context.Context, postID int) ([]Comment, error) {
	v := common.NewValidator()
	validateInt(v, postID, "post_id")
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	return s.m.getCommentsByPostId(ctx, postID)
}
