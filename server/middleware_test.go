package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func headerContext(authHeader string) *gin.Context {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		c.Request.Header.Set("Authorization", authHeader)
	}
	return c
}

func TestGetTokenFromHeader(t *testing.T) {
	assert.Equal(t, "some-token", getTokenFromHeader(headerContext("Bearer some-token")))
	// a single-character token is still a token
	assert.Equal(t, "x", getTokenFromHeader(headerContext("Bearer x")))
	assert.Equal(t, "", getTokenFromHeader(headerContext("Bearer ")))
	assert.Equal(t, "", getTokenFromHeader(headerContext("")))
}
