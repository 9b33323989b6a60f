// util/validation_util.go

package util

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/tgechev/gonotes/model"
)

type ValidationUtil struct {
	validate *validator.Validate
}

func NewValidationUtil() *ValidationUtil {
	return &ValidationUtil{validate: validator.New()}
}

func (v *ValidationUtil) ValidateRegistration(req model.RegisterRequest) error {
	if err := v.validate.Struct(req); err != nil {
		return fmt.Errorf("invalid registration data: %w", err)
	}
	return nil
}

func (v *ValidationUtil) ValidateUserUpdate(req model.UpdateUserRequest) error {
	if err := v.validate.Struct(req); err != nil {
		return fmt.Errorf("invalid user data: %w", err)
	}
	return nil
}

func (v *ValidationUtil) ValidateNote(req model.NoteRequest) error {
	if req.Title == "" {
		return fmt.Errorf("note title cannot be empty")
	}
	if req.Content == "" {
		return fmt.Errorf("note content cannot be empty")
	}
	if err := v.validate.Struct(req); err != nil {
		return fmt.Errorf("invalid note data: %w", err)
	}
	return nil
}
