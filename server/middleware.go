package server

import (
	"bytes"
	"errors"
	"io"
	"log"
	"net/http"
	"net/url"

	ratelimit "github.com/JGLTechnologies/gin-rate-limit"
	"github.com/gin-gonic/gin"
	errs "github.com/plumehq/plume/errors"
	"github.com/plumehq/plume/models"
	"github.com/plumehq/plume/server/response"
	"github.com/plumehq/plume/services/jwt"
	"gorm.io/gorm"
)

// Authorize gates a route behind a valid, non-blacklisted access token.
// Anonymous requests are redirected to the login page with the original
// target preserved in the next parameter.
func (s *Server) Authorize() gin.HandlerFunc {
	return func(c *gin.Context) {
		accessToken := getTokenFromHeader(c)
		if accessToken == "" {
			redirectToLogin(c)
			return
		}

		if s.AuthRepository.IsTokenInBlacklist(accessToken) {
			redirectToLogin(c)
			return
		}

		secret := s.Config.JWTSecret
		accessClaims, err := jwt.ValidateAndGetClaims(accessToken, secret)
		if err != nil {
			redirectToLogin(c)
			return
		}

		userIDValue := accessClaims["id"]
		var userID uint
		switch v := userIDValue.(type) {
		case float64:
			userID = uint(v)
		default:
			respondAndAbort(c, "", http.StatusBadRequest, nil, errs.New("Invalid userID format", http.StatusBadRequest))
			return
		}

		user, err := s.AuthRepository.FindUserByID(userID)
		if err != nil {
			switch {
			case errors.Is(err, gorm.ErrRecordNotFound):
				redirectToLogin(c)
				return
			default:
				respondAndAbort(c, "unable to find entity", http.StatusInternalServerError, nil, errs.New("internal server error", http.StatusInternalServerError))
				return
			}
		}

		c.Set("user", user)
		c.Set("userID", userID)
		c.Set("access_token", accessToken)
		c.Set("username", user.Username)
		c.Next()
	}
}

// identify resolves the requesting user when a valid token is present
// but never rejects the request. Public pages that vary on identity
// (profile follow state) use it.
func (s *Server) identify() gin.HandlerFunc {
	return func(c *gin.Context) {
		accessToken := getTokenFromHeader(c)
		if accessToken == "" || s.AuthRepository.IsTokenInBlacklist(accessToken) {
			c.Next()
			return
		}

		accessClaims, err := jwt.ValidateAndGetClaims(accessToken, s.Config.JWTSecret)
		if err != nil {
			c.Next()
			return
		}

		if v, ok := accessClaims["id"].(float64); ok {
			c.Set("userID", uint(v))
			c.Set("access_token", accessToken)
		}
		c.Next()
	}
}

func limitRateForPasswordReset(store ratelimit.Store) gin.HandlerFunc {
	mw := ratelimit.RateLimiter(store, &ratelimit.Options{
		ErrorHandler:   errs.ErrorHandler,
		KeyFunc:        keyFunc,
		BeforeResponse: nil,
	})
	return mw
}

// keyFunc keys the rate limiter on the email in the request body so one
// address can't be spammed from many clients.
func keyFunc(c *gin.Context) string {
	buf, err := io.ReadAll(c.Request.Body)
	if err != nil {
		response.JSON(c, "", http.StatusBadRequest, nil, err)
		return ""
	}

	c.Request.Body = io.NopCloser(bytes.NewBuffer(buf))

	var foundUser models.ForgotPassword
	err = decode(c, &foundUser)
	if err != nil {
		response.JSON(c, "", http.StatusBadRequest, nil, err)
		return ""
	}

	c.Request.Body = io.NopCloser(bytes.NewBuffer(buf))
	return foundUser.Email
}

// respondAndAbort calls response.JSON and aborts the Context
func respondAndAbort(c *gin.Context, message string, status int, data interface{}, e *errs.Error) {
	response.JSON(c, message, status, data, e)
	c.Abort()
}

// redirectToLogin sends an anonymous request to the login page, keeping
// the original target in the next parameter.
func redirectToLogin(c *gin.Context) {
	next := c.Request.URL.Path
	log.Printf("unauthenticated request to %s, redirecting to login", next)
	c.Redirect(http.StatusFound, "/api/v1/auth/login?next="+url.QueryEscape(next))
	c.Abort()
}

// getTokenFromHeader returns the token string in the authorization header
func getTokenFromHeader(c *gin.Context) string {
	authHeader := c.Request.Header.Get("Authorization")
	if len(authHeader) >= 8 {
		return authHeader[7:]
	}
	return ""
}
