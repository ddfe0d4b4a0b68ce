package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	errs "github.com/plumehq/plume/errors"
	"github.com/plumehq/plume/server/response"
	"gorm.io/gorm"
)

// handleIndexFeed returns the global feed, newest posts first
func (s *Server) handleIndexFeed() gin.HandlerFunc {
	return func(c *gin.Context) {
		page := getPageFromQuery(c)

		feed, err := s.FeedService.GetIndexFeed(page)
		if err != nil {
			response.JSON(c, "", http.StatusInternalServerError, nil, errs.ErrInternalServerError)
			return
		}

		response.JSON(c, "Posts retrieved successfully", http.StatusOK, feed, nil)
	}
}

func (s *Server) handleGroupFeed() gin.HandlerFunc {
	return func(c *gin.Context) {
		slug := c.Param("slug")
		page := getPageFromQuery(c)

		group, feed, err := s.FeedService.GetGroupFeed(slug, page)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				response.JSON(c, "", http.StatusNotFound, nil, errs.New("group not found", http.StatusNotFound))
				return
			}
			response.JSON(c, "", http.StatusInternalServerError, nil, errs.ErrInternalServerError)
			return
		}

		response.JSON(c, "Group posts retrieved successfully", http.StatusOK, gin.H{
			"group": group,
			"feed":  feed,
		}, nil)
	}
}

// handleProfile returns an author's feed, their post count and whether
// the requesting user follows them. Works for anonymous requests too.
func (s *Server) handleProfile() gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.Param("username")
		page := getPageFromQuery(c)
		viewerID := currentUserID(c)

		profile, err := s.FeedService.GetProfile(username, viewerID, page)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				response.JSON(c, "", http.StatusNotFound, nil, errs.New("user not found", http.StatusNotFound))
				return
			}
			response.JSON(c, "", http.StatusInternalServerError, nil, errs.ErrInternalServerError)
			return
		}

		response.JSON(c, "Profile retrieved successfully", http.StatusOK, profile, nil)
	}
}

// handleFollowFeed returns posts from the authors the requester follows
func (s *Server) handleFollowFeed() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := currentUserID(c)
		page := getPageFromQuery(c)

		feed, err := s.FeedService.GetFollowFeed(userID, page)
		if err != nil {
			response.JSON(c, "", http.StatusInternalServerError, nil, errs.ErrInternalServerError)
			return
		}

		response.JSON(c, "Follow feed retrieved successfully", http.StatusOK, feed, nil)
	}
}

func (s *Server) handleGetAllGroups() gin.HandlerFunc {
	return func(c *gin.Context) {
		groups, err := s.GroupRepository.GetAllGroups()
		if err != nil {
			response.JSON(c, "", http.StatusInternalServerError, nil, errs.ErrInternalServerError)
			return
		}

		response.JSON(c, "Groups retrieved successfully", http.StatusOK, groups, nil)
	}
}
