package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	errs "github.com/plumehq/plume/errors"
	"github.com/plumehq/plume/models"
	"github.com/plumehq/plume/server/response"
)

func (s *Server) handleSignup() gin.HandlerFunc {
	return func(c *gin.Context) {
		var user models.User
		if err := decode(c, &user); err != nil {
			response.JSONWithFieldErrors(c, "invalid signup details", http.StatusBadRequest, models.TranslateError(err, trans))
			return
		}

		created, err := s.AuthService.SignupUser(&user)
		if err != nil {
			if apiErr, ok := err.(*errs.Error); ok {
				response.JSON(c, "", apiErr.Status, nil, apiErr)
				return
			}
			response.JSON(c, "", http.StatusBadRequest, nil, err)
			return
		}

		response.JSON(c, "Signup successful", http.StatusCreated, created.Response(), nil)
	}
}

func (s *Server) handleLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		var loginRequest models.LoginRequest
		if err := decode(c, &loginRequest); err != nil {
			response.JSONWithFieldErrors(c, "invalid login details", http.StatusBadRequest, models.TranslateError(err, trans))
			return
		}

		loginResponse, apiErr := s.AuthService.LoginUser(&loginRequest)
		if apiErr != nil {
			response.JSON(c, "", apiErr.Status, nil, apiErr)
			return
		}

		response.JSON(c, "Login successful", http.StatusOK, loginResponse, nil)
	}
}

// handleLoginPage answers requests bounced here by the auth middleware.
// API clients should authenticate and retry the path carried in next.
func (s *Server) handleLoginPage() gin.HandlerFunc {
	return func(c *gin.Context) {
		response.JSON(c, "authentication required", http.StatusUnauthorized, gin.H{
			"next": c.Query("next"),
		}, errs.ErrUnauthorized)
	}
}

func (s *Server) handleLogout() gin.HandlerFunc {
	return func(c *gin.Context) {
		accessToken := c.GetString("access_token")

		blacklist := &models.Blacklist{Token: accessToken}
		if err := s.AuthRepository.AddToBlackList(blacklist); err != nil {
			response.JSON(c, "", http.StatusInternalServerError, nil, errs.New("logout failed", http.StatusInternalServerError))
			return
		}

		response.JSON(c, "Logout successful", http.StatusOK, nil, nil)
	}
}
