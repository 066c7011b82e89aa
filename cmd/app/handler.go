package main

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/hueyvil/inkpost/internal/blogservice"
	"github.com/hueyvil/inkpost/internal/common"
	"github.com/hueyvil/inkpost/internal/userservice"
)

// postDateFormat renders dates like "September 01, 2026".
const postDateFormat = "January 02, 2006"

// commentView pairs a comment with the avatar URL derived from its author's
// email so the template stays free of hashing logic.
type commentView struct {
	blogservice.Comment
	AvatarURL string
}

func (app *application) listPostsHandler(w http.ResponseWriter, r *http.Request) {
	posts, err := app.blogService.GetAllPosts(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	app.renderPage(w, r, http.StatusOK, "index", map[string]any{
		"Posts": posts,
	})
}

// renderPostPage renders the single-post view: the post, the comment form,
// and every comment in the store. The comment list is deliberately not
// scoped to the requested post; the site has always shown all comments on
// every post page.
func (app *application) renderPostPage(w http.ResponseWriter, r *http.Request, status int, post *blogservice.Post, form, fieldErrors map[string]string) {
	comments, err := app.blogService.GetAllComments(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	views := make([]commentView, 0, len(comments))
	for _, c := range comments {
		views = append(views, commentView{Comment: c, AvatarURL: userservice.AvatarURL(c.AuthorEmail)})
	}

	app.renderPage(w, r, status, "post", map[string]any{
		"Post":     post,
		"Comments": views,
		"Form":     form,
		"Errors":   fieldErrors,
	})
}

func (app *application) showPostHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	post, err := app.blogService.GetPostByID(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, blogservice.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	app.renderPostPage(w, r, http.StatusOK, post, nil, nil)
}

func (app *application) createCommentHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	post, err := app.blogService.GetPostByID(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, blogservice.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	text := r.PostFormValue("comment_text")

	// The form is validated before the login check, matching the original
	// flow: an empty comment re-renders even for anonymous visitors.
	if err := blogservice.ValidateCommentText(text); err != nil {
		var validationErr common.ValidationError
		if errors.As(err, &validationErr) {
			app.renderPostPage(w, r, http.StatusUnprocessableEntity, post, map[string]string{"comment_text": text}, validationErr.Errors)
			return
		}
		app.serverErrorResponse(w, r, err)
		return
	}

	user := app.getUserContext(r)
	if user.IsAnonymous() {
		// The drafted comment is discarded, not queued for after login.
		app.setFlash(w, "error", "You need to login or register to comment on posts")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	if _, err := app.blogService.CreateComment(r.Context(), text, user.ID, post.ID); err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	http.Redirect(w, r, "/post/"+strconv.Itoa(post.ID), http.StatusSeeOther)
}

func (app *application) newPostFormHandler(w http.ResponseWriter, r *http.Request) {
	app.renderPage(w, r, http.StatusOK, "make-post", nil)
}

func (app *application) createPostHandler(w http.ResponseWriter, r *http.Request) {
	user := app.getUserContext(r)

	req := &blogservice.CreatePostRequest{
		Title:    r.PostFormValue("title"),
		Subtitle: r.PostFormValue("subtitle"),
		Body:     r.PostFormValue("body"),
		ImgURL:   r.PostFormValue("img_url"),
		Date:     time.Now().Format(postDateFormat),
		AuthorID: user.ID,
	}

	_, err := app.blogService.CreatePost(r.Context(), req)
	if err != nil {
		var validationErr common.ValidationError
		switch {
		case errors.As(err, &validationErr):
			app.renderPage(w, r, http.StatusUnprocessableEntity, "make-post", map[string]any{
				"Form":   postFormValues(req.Title, req.Subtitle, req.ImgURL, req.Body),
				"Errors": validationErr.Errors,
			})
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (app *application) editPostFormHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	post, err := app.blogService.GetPostByID(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, blogservice.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	app.renderPage(w, r, http.StatusOK, "make-post", map[string]any{
		"IsEdit": true,
		"Form":   postFormValues(post.Title, post.Subtitle, post.ImgURL, post.Body),
	})
}

func (app *application) updatePostHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	user := app.getUserContext(r)

	// Authorship is reassigned to whoever submits the edit, original author
	// or not.
	req := &blogservice.UpdatePostRequest{
		ID:       id,
		Title:    r.PostFormValue("title"),
		Subtitle: r.PostFormValue("subtitle"),
		Body:     r.PostFormValue("body"),
		ImgURL:   r.PostFormValue("img_url"),
		AuthorID: user.ID,
	}

	err = app.blogService.UpdatePost(r.Context(), req)
	if err != nil {
		var validationErr common.ValidationError
		switch {
		case errors.As(err, &validationErr):
			app.renderPage(w, r, http.StatusUnprocessableEntity, "make-post", map[string]any{
				"IsEdit": true,
				"Form":   postFormValues(req.Title, req.Subtitle, req.ImgURL, req.Body),
				"Errors": validationErr.Errors,
			})
		case errors.Is(err, blogservice.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	http.Redirect(w, r, "/post/"+strconv.Itoa(id), http.StatusSeeOther)
}

func (app *application) deletePostHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.blogService.DeletePost(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, blogservice.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (app *application) aboutHandler(w http.ResponseWriter, r *http.Request) {
	app.renderPage(w, r, http.StatusOK, "about", nil)
}

func (app *application) contactHandler(w http.ResponseWriter, r *http.Request) {
	app.renderPage(w, r, http.StatusOK, "contact", nil)
}

func (app *application) registerFormHandler(w http.ResponseWriter, r *http.Request) {
	app.renderPage(w, r, http.StatusOK, "register", nil)
}

func (app *application) registerHandler(w http.ResponseWriter, r *http.Request) {
	var (
		name     = r.PostFormValue("name")
		email    = r.PostFormValue("email")
		password = r.PostFormValue("password")
	)

	_, err := app.userService.RegisterUser(r.Context(), name, email, password)
	if err != nil {
		var validationErr common.ValidationError
		switch {
		case errors.As(err, &validationErr):
			app.renderPage(w, r, http.StatusUnprocessableEntity, "register", map[string]any{
				"Form":   map[string]string{"name": name, "email": email},
				"Errors": validationErr.Errors,
			})
		case errors.Is(err, userservice.ErrDuplicateEmail):
			app.setFlash(w, "error", "Account with that email already exists. Please login.")
			http.Redirect(w, r, "/login", http.StatusSeeOther)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	app.setFlash(w, "success", "Account created successfully.")
	http.Redirect(w, r, "/register", http.StatusSeeOther)
}

func (app *application) loginFormHandler(w http.ResponseWriter, r *http.Request) {
	app.renderPage(w, r, http.StatusOK, "login", nil)
}

func (app *application) loginHandler(w http.ResponseWriter, r *http.Request) {
	var (
		email    = r.PostFormValue("email")
		password = r.PostFormValue("password")
	)

	user, err := app.userService.AuthenticateUser(r.Context(), email, password)
	if err != nil {
		var validationErr common.ValidationError
		switch {
		case errors.As(err, &validationErr):
			app.renderPage(w, r, http.StatusUnprocessableEntity, "login", map[string]any{
				"Form":   map[string]string{"email": email},
				"Errors": validationErr.Errors,
			})
		case errors.Is(err, userservice.ErrNotFound):
			app.setFlash(w, "error", "That email does not exist, please try again.")
			http.Redirect(w, r, "/login", http.StatusSeeOther)
		case errors.Is(err, userservice.ErrAuthenticationFailure):
			app.setFlash(w, "error", "Invalid password. Please try again.")
			http.Redirect(w, r, "/login", http.StatusSeeOther)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	token, err := app.sessions.Issue(user.ID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	app.setSessionCookie(w, token)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (app *application) logoutHandler(w http.ResponseWriter, r *http.Request) {
	app.clearSessionCookie(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func postFormValues(title, subtitle, imgURL, body string) map[string]string {
	return map[string]string{
		"title":    title,
		"subtitle": subtitle,
		"img_url":  imgURL,
		"body":     body,
	}
}
