package dtos

type GenerateImageDTO struct {
	Prompt string `json:"prompt" binding:"required,max=2000"`
	Model  string `json:"model" binding:"omitempty,max=100"`
}

type GenerateImageResponseDTO struct {
	Output []string `json:"output"`
}

type GenerateVideoDTO struct {
	Prompt string `json:"prompt" binding:"required,max=2000"`
	Style  string `json:"style" binding:"omitempty,max=50"`
	Ratio  string `json:"ratio" binding:"omitempty,oneof=16:9 9:16"`
}

type GenerateVideoResponseDTO struct {
	VideoURL string `json:"videoUrl"`
	TaskID   string `json:"taskId"`
}
