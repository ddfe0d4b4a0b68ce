package server

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/plumehq/plume/db"
)

var trans ut.Translator

func init() {
	english := en.New()
	uni := ut.New(english, english)
	trans, _ = uni.GetTranslator("en")
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = entranslations.RegisterDefaultTranslations(v, trans)
	}
}

// decode binds the JSON body into v
func decode(c *gin.Context, v interface{}) error {
	return c.ShouldBindJSON(v)
}

// currentUserID returns the requesting user's id, or zero for anonymous
// requests.
func currentUserID(c *gin.Context) uint {
	userIDCtx, ok := c.Get("userID")
	if !ok {
		return 0
	}
	userID, ok := userIDCtx.(uint)
	if !ok {
		return 0
	}
	return userID
}

// getPageFromQuery reads the 1-based page parameter. Anything that
// isn't a positive integer falls back to the first page; pages past the
// end are clamped later, against the collection size.
func getPageFromQuery(c *gin.Context) int {
	pageStr := c.DefaultQuery("page", "1")
	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		return db.DefaultPage
	}
	return page
}

// parseIDParam reads a numeric path parameter
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
