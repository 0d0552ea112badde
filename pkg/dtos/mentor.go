package dtos

// MatchPreferences is what a mentee asks for. Only expertise takes part in
// scoring today.
type MatchPreferences struct {
	Expertise string `json:"expertise" binding:"required,expertise"`
}

type MatchRequestDTO struct {
	MenteeAddress string           `json:"menteeAddress" binding:"omitempty,max=255"`
	Preferences   MatchPreferences `json:"preferences"`
}

type DTOForMentorCreate struct {
	Address     string         `json:"address" binding:"required,max=255"`
	UserID      uint           `json:"userId"`
	Expertise   string         `json:"expertise" binding:"required,expertise"`
	Experience  *float64       `json:"experience" binding:"omitempty,gte=0"`
	Bio         string         `json:"bio"`
	Preferences map[string]any `json:"preferences"`
}

type AvailabilityDTO struct {
	AvailabilityStatus *bool `json:"availabilityStatus" binding:"required"`
}
