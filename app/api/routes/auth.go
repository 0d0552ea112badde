package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/pathfinder/pkg/constant"
	"github.com/pathfinder/pkg/domains/auth"
	"github.com/pathfinder/pkg/dtos"
	"github.com/pathfinder/pkg/state"
	"github.com/rs/zerolog"
)

// AuthRoutes mounts email verification. limit guards token issuing and
// requireAuth guards the session endpoint.
func AuthRoutes(r *gin.RouterGroup, s auth.Service, limit gin.HandlerFunc, requireAuth gin.HandlerFunc, log zerolog.Logger) {
	r.POST("/email", limit, sendVerification(s, log))
	r.GET("/verify", verifyEmail(s, log))
	r.GET("/me", requireAuth, me(s, log))
}

func sendVerification(s auth.Service, log zerolog.Logger) func(c *gin.Context) {
	return func(c *gin.Context) {
		var req dtos.EmailAuthDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(400, gin.H{"error": constant.INVALID_REQUEST})
			return
		}

		if _, err := s.IssueVerificationToken(c.Request.Context(), req.Email); err != nil {
			fail(c, log, err, constant.VERIFICATION_FAILED)
			return
		}

		c.JSON(200, gin.H{"message": constant.VERIFICATION_SENT})
	}
}

func verifyEmail(s auth.Service, log zerolog.Logger) func(c *gin.Context) {
	return func(c *gin.Context) {
		var req dtos.VerifyEmailDTO
		if err := c.ShouldBindQuery(&req); err != nil {
			c.JSON(400, gin.H{"error": constant.INVALID_TOKEN})
			return
		}

		_, token, err := s.VerifyEmail(c.Request.Context(), req.Token)
		if err != nil {
			fail(c, log, err, constant.VERIFY_FAILED)
			return
		}

		c.JSON(200, gin.H{
			"message": constant.EMAIL_VERIFIED,
			"token":   token,
		})
	}
}

func me(s auth.Service, log zerolog.Logger) func(c *gin.Context) {
	return func(c *gin.Context) {
		user, err := s.CurrentUser(c.Request.Context(), state.CurrentUser(c))
		if err != nil {
			fail(c, log, err, constant.FETCH_USER_FAILED)
			return
		}

		c.JSON(200, user)
	}
}
