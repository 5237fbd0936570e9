package domain

import (
	"time"

	"github.com/google/uuid"
)

// ContactMessage is one contact-form submission.
type ContactMessage struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Phone     *string
	Subject   ContactSubject
	Message   string
	IsRead    bool
	CreatedAt time.Time
}
