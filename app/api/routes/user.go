package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/pathfinder/pkg/constant"
	"github.com/pathfinder/pkg/domains/user"
	"github.com/pathfinder/pkg/dtos"
	"github.com/rs/zerolog"
)

func UserRoutes(r *gin.RouterGroup, s user.Service, log zerolog.Logger) {
	r.POST("", createUser(s, log))
}

// ReputationRoutes mounts reputation reads and writes. Writes pass through
// guards first, e.g. the admin key check.
func ReputationRoutes(r *gin.RouterGroup, s user.Service, log zerolog.Logger, guards ...gin.HandlerFunc) {
	r.GET("/:address", getReputation(s, log))
	r.PUT("/:address", append(guards, updateReputation(s, log))...)
}

func createUser(s user.Service, log zerolog.Logger) func(c *gin.Context) {
	return func(c *gin.Context) {
		var req dtos.DTOForUserCreate
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(400, gin.H{"error": constant.INVALID_REQUEST})
			return
		}

		created, err := s.CreateUser(c.Request.Context(), req)
		if err != nil {
			fail(c, log, err, constant.CREATE_USER_FAILED)
			return
		}

		c.JSON(201, created)
	}
}

func getReputation(s user.Service, log zerolog.Logger) func(c *gin.Context) {
	return func(c *gin.Context) {
		score, err := s.GetReputation(c.Request.Context(), c.Param("address"))
		if err != nil {
			fail(c, log, err, constant.FETCH_REPUTATION_FAILED)
			return
		}

		c.JSON(200, dtos.ReputationDTO{Score: score})
	}
}

func updateReputation(s user.Service, log zerolog.Logger) func(c *gin.Context) {
	return func(c *gin.Context) {
		var req dtos.ReputationUpdateDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(400, gin.H{"error": constant.INVALID_REQUEST})
			return
		}

		if err := s.UpdateReputation(c.Request.Context(), c.Param("address"), *req.Score); err != nil {
			fail(c, log, err, constant.UPDATE_REPUTATION_FAILED)
			return
		}

		c.JSON(200, dtos.ReputationDTO{Score: *req.Score})
	}
}
