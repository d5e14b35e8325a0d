package events

import (
	"time"

	"github.com/google/uuid"
)

// EventType enumerates supported notification identifiers.
type EventType string

const (
	OrderStatusChanged EventType = "order.status_changed"
	OrderUpdated       EventType = "order.updated"
	OrderSaved         EventType = "order.saved"
	OrderAssigned      EventType = "order.assigned"
	UserRoleChanged    EventType = "user.role_changed"
	VegetableUpdated   EventType = "vegetable.updated"
)

// Event is a user-facing notification emitted after a successful mutation.
type Event struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	Subject   string    `json:"subject"`
	Actor     string    `json:"actor,omitempty"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Payload   any       `json:"payload,omitempty"`
}

// New builds an event with a fresh identifier and UTC timestamp.
func New(eventType EventType, subject, actor, message string, payload any) Event {
	return Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Subject:   subject,
		Actor:     actor,
		Message:   message,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	}
}

// StatusChange is the payload of OrderStatusChanged.
type StatusChange struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Assignment is the payload of OrderAssigned.
type Assignment struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
}

// RoleChange is the payload of UserRoleChanged.
type RoleChange struct {
	From string `json:"from"`
	To   string `json:"to"`
}
