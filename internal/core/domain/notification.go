package domain

import "time"

// Notification is an outbound message that stays pending until a dispatcher delivers it.
type Notification struct {
	NotificationID string     `json:"notificationID"`
	Title          string     `json:"title"`
	Message        string     `json:"message"`
	Sent           bool       `json:"sent"`
	SentAt         *time.Time `json:"sentAt,omitempty"`
	Attempts       int        `json:"attempts"`
	LastError      *string    `json:"lastError,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
}
