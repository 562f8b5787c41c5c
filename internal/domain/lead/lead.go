// Package lead holds the public lead-intake records. Intake is throttled per
// client identity by an injectable counter store; see infrastructure/ratelimit.
package lead

import (
	"fmt"
	"net/mail"
	"time"
)

type Lead struct {
	id        uint
	email     string
	name      string
	message   string
	sourceIP  string
	metadata  map[string]interface{}
	createdAt time.Time
}

func NewLead(email, name, message, sourceIP string, metadata map[string]interface{}) (*Lead, error) {
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("invalid email address: %w", err)
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if len(message) > 5000 {
		return nil, fmt.Errorf("message exceeds maximum length of 5000 characters")
	}
	if metadata == nil {
		metadata = make(map[string]interface{})
	}

	return &Lead{
		email:     email,
		name:      name,
		message:   message,
		sourceIP:  sourceIP,
		metadata:  metadata,
		createdAt: time.Now().UTC(),
	}, nil
}

func ReconstructLead(id uint, email, name, message, sourceIP string, metadata map[string]interface{}, createdAt time.Time) (*Lead, error) {
	if id == 0 {
		return nil, fmt.Errorf("lead ID cannot be zero")
	}
	if metadata == nil {
		metadata = make(map[string]interface{})
	}

	return &Lead{
		id:        id,
		email:     email,
		name:      name,
		message:   message,
		sourceIP:  sourceIP,
		metadata:  metadata,
		createdAt: createdAt,
	}, nil
}

func (l *Lead) ID() uint {
	return l.id
}

func (l *Lead) Email() string {
	return l.email
}

func (l *Lead) Name() string {
	return l.name
}

func (l *Lead) Message() string {
	return l.message
}

func (l *Lead) SourceIP() string {
	return l.sourceIP
}

func (l *Lead) Metadata() map[string]interface{} {
	metadataCopy := make(map[string]interface{})
	for k, v := range l.metadata {
		metadataCopy[k] = v
	}
	return metadataCopy
}

func (l *Lead) CreatedAt() time.Time {
	return l.createdAt
}

func (l *Lead) SetID(id uint) error {
	if l.id != 0 {
		return fmt.Errorf("lead ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("lead ID cannot be zero")
	}
	l.id = id
	return nil
}
