package utils

import (
	"net/mail"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

type CustomValidator struct {
	Validator *validator.Validate
}

func NewCustomValidator() *CustomValidator {
	Validator := &CustomValidator{validator.New()}
	Validator.ValidatorRegistery()
	return Validator
}

// RegisterBindingValidators installs the custom tags on gin's validator so
// that ShouldBindJSON understands them.
func RegisterBindingValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		(&CustomValidator{v}).ValidatorRegistery()
	}
}

func (c *CustomValidator) ValidatorRegistery() {
	c.Validator.RegisterValidation("isemail", c.IsValidEmail)
	c.Validator.RegisterValidation("expertise", c.IsValidExpertise)
}

func (c *CustomValidator) IsValidEmail(fl validator.FieldLevel) bool {
	email := strings.TrimSpace(fl.Field().String())
	addr, err := mail.ParseAddress(email)
	// reject display-name forms like "Bob <bob@x.io>"
	return err == nil && addr.Address == email
}

// IsValidExpertise accepts a non-blank label of at most 100 bytes made of
// letters, digits, spaces and the punctuation - _ / & + .
func (c *CustomValidator) IsValidExpertise(fl validator.FieldLevel) bool {
	label := strings.TrimSpace(fl.Field().String())
	if label == "" || len(label) > 100 {
		return false
	}
	for _, char := range label {
		if unicode.IsLetter(char) || unicode.IsDigit(char) || unicode.IsSpace(char) {
			continue
		}
		switch char {
		case '-', '_', '/', '&', '+', '.':
			continue
		}
		return false
	}
	return true
}
