package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ContactMessageModel struct {
	ContactMessageID        string    `gorm:"column:contact_message_id;primaryKey;type:uuid" json:"contact_message_id"`
	ContactMessageName      string    `gorm:"column:contact_message_name;type:varchar(150);not null" json:"contact_message_name"`
	ContactMessageEmail     string    `gorm:"column:contact_message_email;type:varchar(255);not null" json:"contact_message_email"`
	ContactMessageSubject   string    `gorm:"column:contact_message_subject;type:varchar(255);not null" json:"contact_message_subject"`
	ContactMessageBody      string    `gorm:"column:contact_message_body;type:text;not null" json:"contact_message_body"`
	ContactMessageCreatedAt time.Time `gorm:"column:contact_message_created_at;autoCreateTime" json:"contact_message_created_at"`
}

func (ContactMessageModel) TableName() string {
	return "contact_messages"
}

func (m *ContactMessageModel) BeforeCreate(tx *gorm.DB) error {
	if m.ContactMessageID == "" {
		m.ContactMessageID = uuid.NewString()
	}
	return nil
}
