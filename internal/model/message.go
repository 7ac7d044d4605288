package model

import (
	"context"
	"time"
)

// MessageStore defines persistence operations for messages.
type MessageStore interface {
	List() []Message
	Get(id string) (Message, error)
	Add(ctx context.Context, message Message) (Message, error)
	Update(ctx context.Context, id string, patch MessagePatch) (Message, error)
	Delete(ctx context.Context, id string) error
}

// MessagePriority enumerates message priorities.
type MessagePriority string

const (
	PriorityLow    MessagePriority = "low"
	PriorityNormal MessagePriority = "normal"
	PriorityUrgent MessagePriority = "urgent"
)

// Valid reports whether p is a known priority.
func (p MessagePriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityNormal, PriorityUrgent:
		return true
	}
	return false
}

// MessageStatus enumerates message states.
type MessageStatus string

const (
	MessageUnread MessageStatus = "unread"
	MessageRead   MessageStatus = "read"
	MessageSent   MessageStatus = "sent"
)

// Valid reports whether s is a known message status.
func (s MessageStatus) Valid() bool {
	switch s {
	case MessageUnread, MessageRead, MessageSent:
		return true
	}
	return false
}

// Message is an internal message addressed to a patient. Recipient name and
// email are snapshots taken when the message was sent.
type Message struct {
	ID             string          `json:"id"`
	RecipientID    string          `json:"recipientId"`
	RecipientName  string          `json:"recipientName"`
	RecipientEmail string          `json:"recipientEmail,omitempty"`
	Sender         string          `json:"sender"`
	Subject        string          `json:"subject"`
	Content        string          `json:"content"`
	Priority       MessagePriority `json:"priority"`
	Status         MessageStatus   `json:"status"`
	Timestamp      time.Time       `json:"timestamp"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// EntityID implements Entity.
func (m Message) EntityID() string { return m.ID }

// MessagePatch is a shallow merge patch.
type MessagePatch struct {
	Subject  *string          `json:"subject,omitempty"`
	Content  *string          `json:"content,omitempty"`
	Priority *MessagePriority `json:"priority,omitempty"`
	Status   *MessageStatus   `json:"status,omitempty"`
}

// Apply merges the patch into m.
func (mp MessagePatch) Apply(m *Message) {
	setString(&m.Subject, mp.Subject)
	setString(&m.Content, mp.Content)
	if mp.Priority != nil {
		m.Priority = *mp.Priority
	}
	if mp.Status != nil {
		m.Status = *mp.Status
	}
}

// SendMessageParams contains parameters to send a message.
type SendMessageParams struct {
	RecipientID string          `json:"recipientId"`
	Subject     string          `json:"subject"`
	Content     string          `json:"content"`
	Priority    MessagePriority `json:"priority"`
}
