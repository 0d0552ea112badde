package utils

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"log"
	"math"

	"github.com/joho/godotenv"
	"github.com/pathfinder/pkg/constant"
	"golang.org/x/crypto/blake2b"
	"gorm.io/gorm"
)

var (
	ErrInvalidPage    = errors.New(constant.INVALID_PAGE_NUMBER)
	ErrPageOutOfRange = errors.New(constant.PAGE_NUMBER_OUT_OF_RANGE)
)

const (
	PageSize = 10
	// TokenBytes is the amount of randomness behind a verification token.
	TokenBytes = 32
)

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		// Don't fail if .env file doesn't exist
		// Environment variables can be provided via Docker Compose or system
		log.Println("Info: .env file not found, using system environment variables")
	}
}

// Pagination loads page pageNumber (1-based) of the rows matching query into
// item and returns the total number of pages. An empty table has a single,
// empty first page.
func Pagination(item interface{}, pageNumber int, db *gorm.DB, c context.Context, query interface{}, args ...interface{}) (int, error) {
	limit := PageSize
	offset := 0

	var totalCount int64
	if err := db.WithContext(c).Model(item).Where(query, args...).Count(&totalCount).Error; err != nil {
		return 0, err
	}

	// Calculate total pages
	totalPages := int(math.Ceil(float64(totalCount) / float64(limit)))

	if pageNumber <= 0 {
		return 0, ErrInvalidPage
	}
	if totalPages == 0 && pageNumber == 1 {
		return 0, nil
	}
	if pageNumber > totalPages {
		return 0, ErrPageOutOfRange
	}

	offset = (pageNumber - 1) * limit

	// Get items with pagination
	if err := db.WithContext(c).Limit(limit).Offset(offset).Where(query, args...).Find(item).Error; err != nil {
		return 0, err
	}
	return totalPages, nil
}

// GenerateToken returns TokenBytes of crypto/rand output, hex encoded.
func GenerateToken() (string, error) {
	bytes := make([]byte, TokenBytes)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}

// HashToken is the form a token is stored in; lookups hash the presented value
// the same way.
func HashToken(token string) string {
	sum := blake2b.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
