package routes

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pathfinder/pkg/constant"
	"github.com/pathfinder/pkg/domains/story"
	"github.com/pathfinder/pkg/dtos"
	"github.com/rs/zerolog"
)

func StoryRoutes(r *gin.RouterGroup, s story.Service, log zerolog.Logger) {
	r.GET("", listStories(s, log))
	r.POST("", createStory(s, log))
}

func listStories(s story.Service, log zerolog.Logger) func(c *gin.Context) {
	return func(c *gin.Context) {
		page := 0
		if raw := c.Query("page"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 1 {
				c.JSON(400, gin.H{"error": constant.INVALID_PAGE_NUMBER})
				return
			}
			page = n
		}

		stories, err := s.ListPublished(c.Request.Context(), page)
		if err != nil {
			fail(c, log, err, constant.FETCH_STORIES_FAILED)
			return
		}

		c.JSON(200, stories)
	}
}

func createStory(s story.Service, log zerolog.Logger) func(c *gin.Context) {
	return func(c *gin.Context) {
		var req dtos.DTOForStoryCreate
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(400, gin.H{"error": constant.INVALID_REQUEST})
			return
		}

		created, err := s.CreateStory(c.Request.Context(), req)
		if err != nil {
			fail(c, log, err, constant.CREATE_STORY_FAILED)
			return
		}

		c.JSON(201, created)
	}
}
