package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	errs "github.com/plumehq/plume/errors"
	"github.com/plumehq/plume/server/response"
	"github.com/plumehq/plume/services"
	"gorm.io/gorm"
)

// postForm pulls the submitted post fields out of the multipart form.
// The image is optional; a missing file is not an error.
func (s *Server) postForm(c *gin.Context, userID uint) (text, groupSlug, imageURL, thumbnailURL string, fieldErrs []error) {
	text = c.PostForm("text")
	groupSlug = c.PostForm("group")

	if text == "" {
		fieldErrs = append(fieldErrs, errors.New("text is required"))
		return
	}

	file, fileHeader, err := c.Request.FormFile("image")
	if err != nil {
		// no attachment submitted
		return
	}
	defer file.Close()

	imageURL, thumbnailURL, err = s.MediaService.UploadPostImage(fileHeader, userID)
	if err != nil {
		fieldErrs = append(fieldErrs, err)
	}
	return
}

func (s *Server) handleCreatePost() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := currentUserID(c)
		username := c.GetString("username")

		text, groupSlug, imageURL, thumbnailURL, fieldErrs := s.postForm(c, userID)
		if len(fieldErrs) > 0 {
			response.JSONWithFieldErrors(c, "invalid post submission", http.StatusBadRequest, fieldErrs)
			return
		}

		_, err := s.PostService.CreatePost(userID, text, groupSlug, imageURL, thumbnailURL)
		if err != nil {
			if errors.Is(err, services.ErrUnknownGroup) {
				response.JSONWithFieldErrors(c, "invalid post submission", http.StatusBadRequest, []error{err})
				return
			}
			response.JSON(c, "", http.StatusInternalServerError, nil, errs.New("Failed to create post", http.StatusInternalServerError))
			return
		}

		c.Redirect(http.StatusFound, fmt.Sprintf("/api/v1/profile/%s", username))
	}
}

func (s *Server) handleEditPost() gin.HandlerFunc {
	return func(c *gin.Context) {
		postID, ok := parseIDParam(c, "id")
		if !ok {
			response.JSON(c, "", http.StatusNotFound, nil, errs.New("Post not found", http.StatusNotFound))
			return
		}
		userID := currentUserID(c)
		detailPath := fmt.Sprintf("/api/v1/posts/%d", postID)

		// Authorship is settled before the form is touched, so a
		// non-author submission never reaches validation or the image
		// upload.
		post, err := s.PostService.GetPostByID(postID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				response.JSON(c, "", http.StatusNotFound, nil, errs.New("Post not found", http.StatusNotFound))
				return
			}
			response.JSON(c, "", http.StatusInternalServerError, nil, errs.ErrInternalServerError)
			return
		}
		if post.UserID != userID {
			// Only the author may edit; everyone else is bounced back
			// to the detail page with nothing applied.
			c.Redirect(http.StatusFound, detailPath)
			return
		}

		text, groupSlug, imageURL, thumbnailURL, fieldErrs := s.postForm(c, userID)
		if len(fieldErrs) > 0 {
			response.JSONWithFieldErrors(c, "invalid post submission", http.StatusBadRequest, fieldErrs)
			return
		}

		_, err = s.PostService.EditPost(postID, userID, text, groupSlug, imageURL, thumbnailURL)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrNotPostAuthor):
				c.Redirect(http.StatusFound, detailPath)
				return
			case errors.Is(err, services.ErrUnknownGroup):
				response.JSONWithFieldErrors(c, "invalid post submission", http.StatusBadRequest, []error{err})
				return
			case errors.Is(err, gorm.ErrRecordNotFound):
				response.JSON(c, "", http.StatusNotFound, nil, errs.New("Post not found", http.StatusNotFound))
				return
			default:
				response.JSON(c, "", http.StatusInternalServerError, nil, errs.New("Failed to update post", http.StatusInternalServerError))
				return
			}
		}

		c.Redirect(http.StatusFound, detailPath)
	}
}

func (s *Server) handlePostDetail() gin.HandlerFunc {
	return func(c *gin.Context) {
		postID, ok := parseIDParam(c, "id")
		if !ok {
			response.JSON(c, "", http.StatusNotFound, nil, errs.New("Post not found", http.StatusNotFound))
			return
		}

		detail, err := s.PostService.GetPostDetail(postID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				response.JSON(c, "", http.StatusNotFound, nil, errs.New("Post not found", http.StatusNotFound))
				return
			}
			response.JSON(c, "", http.StatusInternalServerError, nil, errs.ErrInternalServerError)
			return
		}

		response.JSON(c, "Post retrieved successfully", http.StatusOK, detail, nil)
	}
}
