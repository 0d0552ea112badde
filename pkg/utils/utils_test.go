package utils

import (
	"context"
	"encoding/hex"
	"fmt"
	"strings"
	"testing"

	"github.com/pathfinder/pkg/constant"
	"github.com/pathfinder/pkg/entities"
	"github.com/pathfinder/pkg/testhelpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateToken(t *testing.T) {
	a, err := GenerateToken()
	require.NoError(t, err)
	b, err := GenerateToken()
	require.NoError(t, err)

	assert.Len(t, a, TokenBytes*2)
	_, err = hex.DecodeString(a)
	assert.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestHashToken(t *testing.T) {
	assert.Equal(t, HashToken("abc"), HashToken("abc"))
	assert.NotEqual(t, HashToken("abc"), HashToken("abd"))
	assert.Len(t, HashToken("abc"), 64)
}

func TestPagination(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	ctx := context.Background()

	var empty []entities.Story
	pages, err := Pagination(&empty, 1, db, ctx, "published = ?", true)
	require.NoError(t, err)
	assert.Equal(t, 0, pages)
	assert.Empty(t, empty)

	user := entities.User{}
	require.NoError(t, db.Create(&user).Error)
	for i := 0; i < 12; i++ {
		require.NoError(t, db.Create(&entities.Story{
			Title:     fmt.Sprintf("story %d", i),
			Content:   "once upon a time",
			UserID:    user.ID,
			Published: true,
		}).Error)
	}

	var first []entities.Story
	pages, err = Pagination(&first, 1, db, ctx, "published = ?", true)
	require.NoError(t, err)
	assert.Equal(t, 2, pages)
	assert.Len(t, first, PageSize)

	var second []entities.Story
	_, err = Pagination(&second, 2, db, ctx, "published = ?", true)
	require.NoError(t, err)
	assert.Len(t, second, 2)

	var out []entities.Story
	_, err = Pagination(&out, 3, db, ctx, "published = ?", true)
	assert.EqualError(t, err, constant.PAGE_NUMBER_OUT_OF_RANGE)

	_, err = Pagination(&out, 0, db, ctx, "published = ?", true)
	assert.EqualError(t, err, constant.INVALID_PAGE_NUMBER)
}

func TestCustomValidator(t *testing.T) {
	v := NewCustomValidator()

	type emailInput struct {
		Email string `validate:"isemail"`
	}
	assert.NoError(t, v.Validator.Struct(emailInput{Email: "ada@example.com"}))
	assert.Error(t, v.Validator.Struct(emailInput{Email: "not-an-email"}))
	assert.Error(t, v.Validator.Struct(emailInput{Email: "Ada <ada@example.com>"}))

	type expertiseInput struct {
		Expertise string `validate:"expertise"`
	}
	assert.NoError(t, v.Validator.Struct(expertiseInput{Expertise: "coding"}))
	assert.NoError(t, v.Validator.Struct(expertiseInput{Expertise: "UI/UX design"}))
	assert.Error(t, v.Validator.Struct(expertiseInput{Expertise: "   "}))
	assert.Error(t, v.Validator.Struct(expertiseInput{Expertise: "drop;table"}))
	for _, label := range []string{"R&D", "C++", "node.js", "data_eng-ops"} {
		assert.NoError(t, v.Validator.Struct(expertiseInput{Expertise: label}), label)
	}
	assert.Error(t, v.Validator.Struct(expertiseInput{Expertise: strings.Repeat("a", 101)}))
}
