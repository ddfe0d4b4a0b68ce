package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	errs "github.com/plumehq/plume/errors"
	"github.com/plumehq/plume/models"
	"github.com/plumehq/plume/server/response"
	"gorm.io/gorm"
)

func (s *Server) handleAddComment() gin.HandlerFunc {
	return func(c *gin.Context) {
		postID, ok := parseIDParam(c, "id")
		if !ok {
			response.JSON(c, "", http.StatusNotFound, nil, errs.New("Post not found", http.StatusNotFound))
			return
		}

		var req models.CommentRequest
		if err := decode(c, &req); err != nil {
			response.JSONWithFieldErrors(c, "invalid comment", http.StatusBadRequest, models.TranslateError(err, trans))
			return
		}

		userID := currentUserID(c)
		if _, err := s.CommentService.AddComment(postID, userID, req.Text); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				response.JSON(c, "", http.StatusNotFound, nil, errs.New("Post not found", http.StatusNotFound))
				return
			}
			response.JSON(c, "", http.StatusInternalServerError, nil, errs.New("Failed to add comment", http.StatusInternalServerError))
			return
		}

		c.Redirect(http.StatusFound, fmt.Sprintf("/api/v1/posts/%d", postID))
	}
}
