package mentor

import (
	"context"
	"testing"

	"github.com/pathfinder/pkg/dtos"
	"github.com/pathfinder/pkg/entities"
	"github.com/pathfinder/pkg/errs"
	"github.com/pathfinder/pkg/testhelpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedUser(t *testing.T, db *gorm.DB, address string, reputation float64) entities.User {
	t.Helper()
	user := entities.User{Address: &address, ReputationScore: reputation}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func TestService_Register(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	s := NewService(NewRepo(db))
	ctx := context.Background()
	user := seedUser(t, db, "0xabc", 0.5)

	profile, err := s.Register(ctx, dtos.DTOForMentorCreate{
		Address:     "0xabc",
		UserID:      user.ID,
		Expertise:   " coding ",
		Experience:  experience(3),
		Bio:         "ten years of go",
		Preferences: map[string]any{"timezone": "UTC"},
	})
	require.NoError(t, err)
	assert.NotZero(t, profile.ID)
	assert.Equal(t, "coding", profile.Expertise)
	assert.True(t, profile.AvailabilityStatus)

	var stored entities.User
	require.NoError(t, db.First(&stored, user.ID).Error)
	assert.True(t, stored.IsMentor)

	var storedProfile entities.MentorProfile
	require.NoError(t, db.First(&storedProfile, profile.ID).Error)
	assert.Equal(t, "UTC", storedProfile.Preferences["timezone"])
}

func TestService_RegisterUnknownAddress(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	s := NewService(NewRepo(db))

	_, err := s.Register(context.Background(), dtos.DTOForMentorCreate{
		Address:   "0xmissing",
		UserID:    99,
		Expertise: "coding",
	})
	assert.ErrorIs(t, err, errs.ErrNotFound)

	var count int64
	require.NoError(t, db.Model(&entities.MentorProfile{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestService_FindMatches(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	s := NewService(NewRepo(db))
	ctx := context.Background()

	low := seedUser(t, db, "0x1", 0.1)
	high := seedUser(t, db, "0x2", 0.8)
	artist := seedUser(t, db, "0x3", 1)
	away := seedUser(t, db, "0x4", 1)

	for _, req := range []dtos.DTOForMentorCreate{
		{Address: "0x1", UserID: low.ID, Expertise: "coding"},
		{Address: "0x2", UserID: high.ID, Expertise: "coding", Experience: experience(2)},
		{Address: "0x3", UserID: artist.ID, Expertise: "art"},
		{Address: "0x4", UserID: away.ID, Expertise: "coding"},
	} {
		_, err := s.Register(ctx, req)
		require.NoError(t, err)
	}

	var awayProfile entities.MentorProfile
	require.NoError(t, db.Where("user_id = ?", away.ID).First(&awayProfile).Error)
	updated, err := s.SetAvailability(ctx, awayProfile.ID, false)
	require.NoError(t, err)
	assert.False(t, updated.AvailabilityStatus)
	require.NotNil(t, updated.User)

	got, err := s.FindMatches(ctx, dtos.MatchRequestDTO{
		MenteeAddress: "0xmentee",
		Preferences:   dtos.MatchPreferences{Expertise: "coding"},
	})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, high.ID, got[0].UserID)
	assert.Equal(t, 1.0, got[0].MatchScore)
	assert.Equal(t, low.ID, got[1].UserID)
	assert.InDelta(t, 0.34, got[1].MatchScore, 1e-9)

	none, err := s.FindMatches(ctx, dtos.MatchRequestDTO{Preferences: dtos.MatchPreferences{Expertise: "music"}})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestService_SetAvailabilityNotFound(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	s := NewService(NewRepo(db))

	_, err := s.SetAvailability(context.Background(), 404, true)
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestService_RegisterRejectsForeignUserID(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	s := NewService(NewRepo(db))
	ctx := context.Background()
	owner := seedUser(t, db, "0xa", 0.5)
	other := seedUser(t, db, "0xb", 0.5)

	for _, userID := range []uint{other.ID, 9999} {
		_, err := s.Register(ctx, dtos.DTOForMentorCreate{Address: "0xa", UserID: userID, Expertise: "coding"})
		assert.ErrorIs(t, err, errs.ErrValidation, "userId %d", userID)
	}

	var count int64
	require.NoError(t, db.Model(&entities.MentorProfile{}).Count(&count).Error)
	assert.Zero(t, count)
	for _, id := range []uint{owner.ID, other.ID} {
		var stored entities.User
		require.NoError(t, db.First(&stored, id).Error)
		assert.False(t, stored.IsMentor)
	}
}

func TestService_RegisterTakesOwnerFromAddress(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	s := NewService(NewRepo(db))
	owner := seedUser(t, db, "0xa", 0.5)

	profile, err := s.Register(context.Background(), dtos.DTOForMentorCreate{Address: "0xa", Expertise: "coding"})
	require.NoError(t, err)
	assert.Equal(t, owner.ID, profile.UserID)
}

func TestService_FindMatchesSkipsProfilesWithoutUser(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	s := NewService(NewRepo(db))
	ctx := context.Background()

	mentor := seedUser(t, db, "0xa", 0.5)
	_, err := s.Register(ctx, dtos.DTOForMentorCreate{Address: "0xa", Expertise: "coding"})
	require.NoError(t, err)
	require.NoError(t, db.Create(&entities.MentorProfile{UserID: 9999, Expertise: "coding", AvailabilityStatus: true}).Error)

	got, err := s.FindMatches(ctx, dtos.MatchRequestDTO{Preferences: dtos.MatchPreferences{Expertise: "coding"}})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, mentor.ID, got[0].UserID)
	require.NotNil(t, got[0].User)
}
