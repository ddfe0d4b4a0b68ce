package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	errs "github.com/plumehq/plume/errors"
	"github.com/plumehq/plume/server/response"
	"gorm.io/gorm"
)

func (s *Server) handleFollow() gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.Param("username")
		userID := currentUserID(c)

		author, err := s.FollowService.Follow(userID, username)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				response.JSON(c, "", http.StatusNotFound, nil, errs.New("user not found", http.StatusNotFound))
				return
			}
			response.JSON(c, "", http.StatusInternalServerError, nil, errs.ErrInternalServerError)
			return
		}

		c.Redirect(http.StatusFound, fmt.Sprintf("/api/v1/profile/%s", author.Username))
	}
}

func (s *Server) handleUnfollow() gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.Param("username")
		userID := currentUserID(c)

		author, err := s.FollowService.Unfollow(userID, username)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				response.JSON(c, "", http.StatusNotFound, nil, errs.New("user not found", http.StatusNotFound))
				return
			}
			response.JSON(c, "", http.StatusInternalServerError, nil, errs.ErrInternalServerError)
			return
		}

		c.Redirect(http.StatusFound, fmt.Sprintf("/api/v1/profile/%s", author.Username))
	}
}
