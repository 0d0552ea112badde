package dtos

type DTOForStoryCreate struct {
	Title   string `json:"title" binding:"required,max=255"`
	Content string `json:"content" binding:"required"`
	UserID  uint   `json:"userId" binding:"required"`
}

type DTOForJournalCreate struct {
	Title    string         `json:"title" binding:"required,max=255"`
	Content  string         `json:"content" binding:"required"`
	UserID   uint           `json:"userId" binding:"required"`
	Metadata map[string]any `json:"metadata"`
}
