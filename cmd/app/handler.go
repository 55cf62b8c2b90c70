package main

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/jkarvanen/bloglist/internal/blogservice"
	"github.com/jkarvanen/bloglist/internal/common"
	"github.com/jkarvanen/bloglist/internal/userservice"
)

// getBlogsHandler serves both the full listing and the single lookup via the
// optional id query parameter.
func (app *application) getBlogsHandler(w http.ResponseWriter, r *http.Request) {
	rawID := r.URL.Query().Get("id")
	if rawID == "" {
		blogs, err := app.blogService.GetBlogs(r.Context())
		if err != nil {
			app.serverErrorResponse(w, r, err)
			return
		}

		err = app.writeJSON(w, http.StatusOK, blogs, nil)
		if err != nil {
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	// an id that does not parse can match no record
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		app.notFoundTextResponse(w, r)
		return
	}

	blog, err := app.blogService.GetBlogByID(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrRecordNotFound):
			app.notFoundTextResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, blog, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

type createBlogRequest struct {
	Title  *string `json:"title"`
	Author *string `json:"author"`
	URL    *string `json:"url"`
	Likes  *int64  `json:"likes"`
}

func (app *application) createBlogHandler(w http.ResponseWriter, r *http.Request) {
	identity, err := app.identityFromRequest(r)
	if err != nil {
		switch {
		case errors.Is(err, userservice.ErrTokenMissing):
			app.unauthorizedErrorResponse(w, r, "token missing")
		default:
			app.unauthorizedErrorResponse(w, r, "token invalid")
		}
		return
	}

	var input createBlogRequest
	err = app.parseJSON(w, r, &input)
	if err != nil {
		app.badRequestTextResponse(w, r)
		return
	}

	req := &blogservice.CreateBlogInput{
		Title:  input.Title,
		Author: input.Author,
		URL:    input.URL,
		Likes:  input.Likes,
	}

	blog, err := app.blogService.CreateBlog(r.Context(), req, identity.UserID)
	if err != nil {
		switch {
		case errors.Is(err, blogservice.ErrMissingField):
			app.badRequestTextResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusCreated, blog, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

type updateBlogRequest struct {
	Title  *string `json:"title"`
	Author *string `json:"author"`
	URL    *string `json:"url"`
	Likes  *int64  `json:"likes"`
}

func (app *application) updateBlogHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.notFoundTextResponse(w, r)
		return
	}

	var input updateBlogRequest
	err = app.parseJSON(w, r, &input)
	if err != nil {
		app.badRequestTextResponse(w, r)
		return
	}

	req := &blogservice.UpdateBlogInput{
		Title:  input.Title,
		Author: input.Author,
		URL:    input.URL,
		Likes:  input.Likes,
	}

	blog, err := app.blogService.UpdateBlog(r.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrRecordNotFound):
			app.notFoundTextResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, blog, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) deleteBlogHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.notFoundTextResponse(w, r)
		return
	}

	err = app.blogService.DeleteBlog(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrRecordNotFound):
			app.notFoundTextResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (app *application) blogStatsHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := app.blogService.Stats(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, stats, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

type registerUserRequest struct {
	Username *string `json:"username"`
	Name     *string `json:"name"`
	Password *string `json:"password"`
}

func (app *application) registerUserHandler(w http.ResponseWriter, r *http.Request) {
	var input registerUserRequest

	err := app.parseJSON(w, r, &input)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	req := &userservice.RegisterUserInput{
		Username: input.Username,
		Name:     input.Name,
		Password: input.Password,
	}

	user, err := app.userService.RegisterUser(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrDuplicateUsername):
			app.writeErrorResponse(w, r, http.StatusBadRequest, "expected `username` to be unique")
		case errors.As(err, &common.ValidationError{}):
			app.writeErrorResponse(w, r, http.StatusBadRequest, err.Error())
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusCreated, user, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) getUsersHandler(w http.ResponseWriter, r *http.Request) {
	users, err := app.userService.GetUsers(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, users, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

type loginUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (app *application) loginUserHandler(w http.ResponseWriter, r *http.Request) {
	var input loginUserRequest

	err := app.parseJSON(w, r, &input)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	user, token, err := app.userService.LoginUser(r.Context(), input.Username, input.Password)
	if err != nil {
		switch {
		case errors.Is(err, userservice.ErrAuthenticationFailure):
			app.unauthorizedErrorResponse(w, r, "invalid username or password")
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"token": token, "username": user.Username, "name": user.Name}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
