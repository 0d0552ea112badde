package mentor

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/pathfinder/pkg/dtos"
	"github.com/pathfinder/pkg/entities"
	"github.com/pathfinder/pkg/errs"
)

const (
	reputationWeight = 0.4
	experienceWeight = 0.3
	expertiseWeight  = 0.3
	maxScore         = 1.0
)

// MatchResult is a candidate annotated with its score. It is never stored.
type MatchResult struct {
	entities.MentorProfile
	MatchScore float64 `json:"matchScore"`
}

// Score weighs reputation, experience and an exact expertise match, then caps
// the sum at 1. Inputs are not normalized; callers rely on that scale.
func Score(profile entities.MentorProfile, prefs dtos.MatchPreferences) (float64, error) {
	if profile.User == nil {
		return 0, fmt.Errorf("%w: mentor profile %d has no user", errs.ErrInvalidCandidate, profile.ID)
	}

	score := reputationWeight * profile.User.ReputationScore

	if profile.Experience != nil {
		score += experienceWeight * *profile.Experience
	}

	if profile.Expertise == prefs.Expertise {
		score += expertiseWeight
	}

	return min(score, maxScore), nil
}

// Match scores every candidate and orders them best first. Equal scores keep
// their input order. Candidates are expected to be pre-filtered by the caller.
func Match(candidates []entities.MentorProfile, prefs dtos.MatchPreferences) ([]MatchResult, error) {
	if strings.TrimSpace(prefs.Expertise) == "" {
		return nil, fmt.Errorf("%w: expertise is required", errs.ErrValidation)
	}

	results := make([]MatchResult, 0, len(candidates))
	for _, candidate := range candidates {
		score, err := Score(candidate, prefs)
		if err != nil {
			return nil, err
		}
		results = append(results, MatchResult{MentorProfile: candidate, MatchScore: score})
	}

	slices.SortStableFunc(results, func(a, b MatchResult) int {
		return cmp.Compare(b.MatchScore, a.MatchScore)
	})

	return results, nil
}
