package dtos

// DTO for wallet user creation
type DTOForUserCreate struct {
	Address string `json:"address" binding:"required,max=255"`
}

type EmailAuthDTO struct {
	Email string `json:"email" binding:"required,isemail,max=255"`
}

type VerifyEmailDTO struct {
	Token string `form:"token" binding:"required,hexadecimal,len=64"`
}

type ReputationUpdateDTO struct {
	Score *float64 `json:"score" binding:"required,gte=0"`
}

type ReputationDTO struct {
	Score float64 `json:"score"`
}

// VerifiedIdentityDTO is returned after a successful email verification.
type VerifiedIdentityDTO struct {
	UserID uint   `json:"userId"`
	Email  string `json:"email"`
}
