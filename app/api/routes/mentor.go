package routes

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pathfinder/pkg/constant"
	"github.com/pathfinder/pkg/domains/mentor"
	"github.com/pathfinder/pkg/dtos"
	"github.com/rs/zerolog"
)

func MentorRoutes(r *gin.RouterGroup, s mentor.Service, log zerolog.Logger) {
	r.POST("", registerMentor(s, log))
	r.POST("/match", matchMentors(s, log))
	r.PATCH("/:id/availability", setAvailability(s, log))
}

func registerMentor(s mentor.Service, log zerolog.Logger) func(c *gin.Context) {
	return func(c *gin.Context) {
		var req dtos.DTOForMentorCreate
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(400, gin.H{"error": constant.INVALID_REQUEST})
			return
		}

		profile, err := s.Register(c.Request.Context(), req)
		if err != nil {
			fail(c, log, err, constant.REGISTER_MENTOR_FAILED)
			return
		}

		c.JSON(201, profile)
	}
}

func matchMentors(s mentor.Service, log zerolog.Logger) func(c *gin.Context) {
	return func(c *gin.Context) {
		var req dtos.MatchRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(400, gin.H{"error": constant.INVALID_REQUEST})
			return
		}

		matches, err := s.FindMatches(c.Request.Context(), req)
		if err != nil {
			fail(c, log, err, constant.FIND_MENTORS_FAILED)
			return
		}

		c.JSON(200, matches)
	}
}

func setAvailability(s mentor.Service, log zerolog.Logger) func(c *gin.Context) {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil || id == 0 {
			c.JSON(400, gin.H{"error": constant.INVALID_REQUEST})
			return
		}

		var req dtos.AvailabilityDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(400, gin.H{"error": constant.INVALID_REQUEST})
			return
		}

		profile, err := s.SetAvailability(c.Request.Context(), uint(id), *req.AvailabilityStatus)
		if err != nil {
			fail(c, log, err, constant.UPDATE_MENTOR_FAILED)
			return
		}

		c.JSON(200, profile)
	}
}
