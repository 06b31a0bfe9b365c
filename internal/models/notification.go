package models

import "time"

// Notification is the notifications row.
type Notification struct {
	NotificationID string     `db:"notification_id"`
	Title          string     `db:"title"`
	Message        string     `db:"message"`
	Sent           bool       `db:"sent"`
	SentAt         *time.Time `db:"sent_at"`
	Attempts       int        `db:"attempts"`
	LastError      *string    `db:"last_error"`
	CreatedAt      time.Time  `db:"created_at"`
}
