package entity

import (
	"time"

	"github.com/google/uuid"
)

// MessageStatus is the two-state lifecycle of an inbox message.
type MessageStatus string

const (
	MessageStatusPending MessageStatus = "pending"
	MessageStatusReplied MessageStatus = "replied"
)

// Reply is the admin's answer attached to a message. A second reply
// overwrites the first; last write wins.
type Reply struct {
	Content   string    `json:"content"`
	RepliedAt time.Time `json:"repliedAt"`
}

// Message is a contact-form submission held in the admin inbox. It starts
// pending and flips to replied exactly when a Reply is attached.
type Message struct {
	ID      uuid.UUID     `json:"id"`
	Name    string        `json:"name"`
	Email   string        `json:"email"`
	Subject string        `json:"subject"`
	Body    string        `json:"message"`
	Status  MessageStatus `json:"status"`
	Reply   *Reply        `json:"reply,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
