package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	errs "github.com/plumehq/plume/errors"
	"github.com/plumehq/plume/models"
	"github.com/plumehq/plume/server/response"
	"github.com/plumehq/plume/services"
	"github.com/plumehq/plume/services/jwt"
	"gorm.io/gorm"
)

// HandleForgotPassword mails a one-hour reset link to the account's
// address. Unknown addresses get the same response as known ones so the
// endpoint can't be used to probe for accounts.
func (s *Server) HandleForgotPassword() gin.HandlerFunc {
	return func(c *gin.Context) {
		var forgotPassword models.ForgotPassword
		if err := decode(c, &forgotPassword); err != nil {
			response.JSONWithFieldErrors(c, "invalid request", http.StatusBadRequest, models.TranslateError(err, trans))
			return
		}

		const okMessage = "If that account exists, a reset link has been sent"

		user, err := s.AuthRepository.FindUserByEmail(forgotPassword.Email)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				response.JSON(c, okMessage, http.StatusOK, nil, nil)
				return
			}
			response.JSON(c, "", http.StatusInternalServerError, nil, errs.ErrInternalServerError)
			return
		}

		resetToken, err := jwt.GeneratePasswordResetToken(user.ID, s.Config.JWTSecret)
		if err != nil {
			response.JSON(c, "", http.StatusInternalServerError, nil, errs.ErrInternalServerError)
			return
		}

		resetLink := fmt.Sprintf("%s/api/v1/password/reset/%s", s.Config.BaseUrl, resetToken)
		if _, err := s.Mail.SendResetPassword(user.Email, resetLink); err != nil {
			response.JSON(c, "", http.StatusInternalServerError, nil, errs.New("could not send reset email", http.StatusInternalServerError))
			return
		}

		response.JSON(c, okMessage, http.StatusOK, nil, nil)
	}
}

// ResetPassword sets a new password for the account a reset token was
// issued to.
func (s *Server) ResetPassword() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.Param("token")

		userID, err := jwt.ValidatePasswordResetToken(token, s.Config.JWTSecret)
		if err != nil {
			response.JSON(c, "", http.StatusUnauthorized, nil, errs.New("invalid or expired reset token", http.StatusUnauthorized))
			return
		}

		var resetPassword models.ResetPassword
		if err := decode(c, &resetPassword); err != nil {
			response.JSONWithFieldErrors(c, "invalid request", http.StatusBadRequest, models.TranslateError(err, trans))
			return
		}

		if resetPassword.Password != resetPassword.ConfirmPassword {
			response.JSON(c, "", http.StatusBadRequest, nil, errs.New("passwords do not match", http.StatusBadRequest))
			return
		}

		if err := models.ValidatePassword(resetPassword.Password); err != nil {
			response.JSON(c, "", http.StatusBadRequest, nil, err)
			return
		}

		hashedPassword, err := services.GenerateHashPassword(resetPassword.Password)
		if err != nil {
			response.JSON(c, "", http.StatusInternalServerError, nil, errs.ErrInternalServerError)
			return
		}

		if err := s.AuthRepository.ResetPassword(userID, hashedPassword); err != nil {
			response.JSON(c, "", http.StatusInternalServerError, nil, errs.ErrInternalServerError)
			return
		}

		response.JSON(c, "Password reset successful", http.StatusOK, nil, nil)
	}
}
