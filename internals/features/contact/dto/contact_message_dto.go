package dto

import (
	"time"

	"shikshaksangh_backend/internals/features/contact/model"
)

type ContactMessageDTO struct {
	ContactMessageID        string    `json:"contact_message_id"`
	ContactMessageName      string    `json:"contact_message_name"`
	ContactMessageEmail     string    `json:"contact_message_email"`
	ContactMessageSubject   string    `json:"contact_message_subject"`
	ContactMessageBody      string    `json:"contact_message_body"`
	ContactMessageCreatedAt time.Time `json:"contact_message_created_at"`
}

type CreateContactMessageRequest struct {
	ContactMessageName    string `json:"contact_message_name" form:"contact_message_name" validate:"required"`
	ContactMessageEmail   string `json:"contact_message_email" form:"contact_message_email" validate:"required,email"`
	ContactMessageSubject string `json:"contact_message_subject" form:"contact_message_subject" validate:"required"`
	ContactMessageBody    string `json:"contact_message_body" form:"contact_message_body" validate:"required"`
}

func ToContactMessageDTO(m model.ContactMessageModel) ContactMessageDTO {
	return ContactMessageDTO{
		ContactMessageID:        m.ContactMessageID,
		ContactMessageName:      m.ContactMessageName,
		ContactMessageEmail:     m.ContactMessageEmail,
		ContactMessageSubject:   m.ContactMessageSubject,
		ContactMessageBody:      m.ContactMessageBody,
		ContactMessageCreatedAt: m.ContactMessageCreatedAt,
	}
}
