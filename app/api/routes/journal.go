package routes

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pathfinder/pkg/constant"
	"github.com/pathfinder/pkg/domains/journal"
	"github.com/pathfinder/pkg/dtos"
	"github.com/rs/zerolog"
)

func JournalRoutes(r *gin.RouterGroup, s journal.Service, log zerolog.Logger) {
	r.GET("/:userId", listJournals(s, log))
	r.POST("", createJournal(s, log))
}

func listJournals(s journal.Service, log zerolog.Logger) func(c *gin.Context) {
	return func(c *gin.Context) {
		userID, err := strconv.ParseUint(c.Param("userId"), 10, 64)
		if err != nil || userID == 0 {
			c.JSON(400, gin.H{"error": constant.INVALID_REQUEST})
			return
		}

		journals, err := s.ListByUser(c.Request.Context(), uint(userID))
		if err != nil {
			fail(c, log, err, constant.FETCH_JOURNALS_FAILED)
			return
		}

		c.JSON(200, journals)
	}
}

func createJournal(s journal.Service, log zerolog.Logger) func(c *gin.Context) {
	return func(c *gin.Context) {
		var req dtos.DTOForJournalCreate
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(400, gin.H{"error": constant.INVALID_REQUEST})
			return
		}

		created, err := s.CreateJournal(c.Request.Context(), req)
		if err != nil {
			fail(c, log, err, constant.CREATE_JOURNAL_FAILED)
			return
		}

		c.JSON(201, created)
	}
}
