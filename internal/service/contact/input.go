package contact

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/istpublications/intake-backend/internal/domain"
)

// CreateInput is a contact-form submission.
type CreateInput struct {
	Name    string  `json:"name" validate:"required,min=3,max=255"`
	Email   string  `json:"email" validate:"required,email"`
	Phone   *string `json:"phone" validate:"omitempty,max=20"`
	Subject string  `json:"subject" validate:"required,oneof=paper_submission general_inquiry buy_journal"`
	Message string  `json:"message" validate:"required,min=10"`
}

func (i *CreateInput) normalize() {
	i.Name = strings.TrimSpace(i.Name)
	i.Email = strings.TrimSpace(i.Email)
	i.Message = strings.TrimSpace(i.Message)
	if i.Phone != nil {
		p := strings.TrimSpace(*i.Phone)
		if p == "" {
			i.Phone = nil
		} else {
			i.Phone = &p
		}
	}
}

// ReplyInput is an operator reply to a stored message.
type ReplyInput struct {
	SubjectLine  string `json:"subject_line" validate:"required,max=255"`
	ReplyMessage string `json:"reply_message" validate:"required"`
}

func (i *ReplyInput) normalize() {
	i.SubjectLine = strings.TrimSpace(i.SubjectLine)
	i.ReplyMessage = strings.TrimSpace(i.ReplyMessage)
}

// toValidationError converts validator output to the domain error.
func toValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	errs := make([]domain.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		errs = append(errs, domain.FieldError{Field: fe.Field(), Message: message(fe)})
	}
	return domain.NewValidationErrors(errs)
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required"
	case "email":
		return "invalid email address"
	case "min":
		return fmt.Sprintf("min %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("max %s characters", fe.Param())
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	}
	return "invalid"
}
