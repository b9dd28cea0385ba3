package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/mentoraqua/guardianes-api/internal/service"
	appErrors "github.com/mentoraqua/guardianes-api/pkg/errors"
	"github.com/mentoraqua/guardianes-api/pkg/response"
)

// AccessCodeHeader carries the teacher access code on review routes.
const AccessCodeHeader = "X-Access-Code"

// AccessCode protects teacher routes with the shared access code.
func AccessCode(progressSvc *service.ProgressService) gin.HandlerFunc {
	return func(c *gin.Context) {
		code := c.GetHeader(AccessCodeHeader)
		if code == "" {
			response.Error(c, appErrors.Clone(appErrors.ErrInvalidAccessCode, "missing access code"))
			c.Abort()
			return
		}
		if !progressSvc.VerifyCode(code) {
			response.Error(c, appErrors.ErrInvalidAccessCode)
			c.Abort()
			return
		}
		c.Next()
	}
}
