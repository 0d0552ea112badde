package routes

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/pathfinder/pkg/constant"
	"github.com/pathfinder/pkg/errs"
	"github.com/pathfinder/pkg/state"
	"github.com/rs/zerolog"
)

// fail writes the response for a service error. Only validation and
// not-found errors are described to the caller; everything else gets
// fallback and the cause goes to the log.
func fail(c *gin.Context, log zerolog.Logger, err error, fallback string) {
	switch {
	case errors.Is(err, errs.ErrValidation):
		c.JSON(400, gin.H{"error": constant.INVALID_REQUEST})
	case errors.Is(err, errs.ErrInvalidOrExpiredToken):
		c.JSON(400, gin.H{"error": constant.INVALID_TOKEN})
	case errors.Is(err, errs.ErrNotFound):
		c.JSON(404, gin.H{"error": fmt.Sprintf(constant.CANT_FIND, "Resource")})
	default:
		log.Error().Err(err).
			Str("request_id", state.RequestID(c)).
			Str("method", c.Request.Method).
			Str("path", c.FullPath()).
			Msg(fallback)
		c.JSON(500, gin.H{"error": fallback})
	}
}
