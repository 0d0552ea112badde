package database

import (
	"errors"
	"fmt"

	"github.com/pathfinder/pkg/errs"
	"gorm.io/gorm"
)

// Translate maps gorm errors onto the shared error categories.
func Translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%w: %w", errs.ErrNotFound, err)
	default:
		return fmt.Errorf("%w: %w", errs.ErrUpstream, err)
	}
}
