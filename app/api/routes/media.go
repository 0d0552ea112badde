package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/pathfinder/pkg/constant"
	"github.com/pathfinder/pkg/domains/media"
	"github.com/pathfinder/pkg/dtos"
	"github.com/rs/zerolog"
)

func MediaRoutes(r *gin.RouterGroup, s media.Service, log zerolog.Logger) {
	r.POST("/generate-image", generateImage(s, log))
	r.POST("/generate-video", generateVideo(s, log))
}

func generateImage(s media.Service, log zerolog.Logger) func(c *gin.Context) {
	return func(c *gin.Context) {
		var req dtos.GenerateImageDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(400, gin.H{"error": constant.INVALID_REQUEST})
			return
		}

		resp, err := s.GenerateImage(c.Request.Context(), req)
		if err != nil {
			fail(c, log, err, constant.GENERATE_IMAGE_FAILED)
			return
		}

		c.JSON(200, resp)
	}
}

func generateVideo(s media.Service, log zerolog.Logger) func(c *gin.Context) {
	return func(c *gin.Context) {
		var req dtos.GenerateVideoDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(400, gin.H{"error": constant.INVALID_REQUEST})
			return
		}

		resp, err := s.GenerateVideo(c.Request.Context(), req)
		if err != nil {
			fail(c, log, err, constant.GENERATE_VIDEO_FAILED)
			return
		}

		c.JSON(200, resp)
	}
}
