package models

import "time"

// ActivityLog is the activity_logs table row.
type ActivityLog struct {
	LogID      string    `db:"log_id"`
	ActorID    string    `db:"actor_id"`
	ActorName  string    `db:"actor_name"`
	ActorEmail string    `db:"actor_email"`
	Action     string    `db:"action"`
	Resource   string    `db:"resource"`
	ResourceID *string   `db:"resource_id"`
	Detail     string    `db:"detail"`
	Status     string    `db:"status"`
	IP         string    `db:"ip"`
	UserAgent  string    `db:"user_agent"`
	CreatedAt  time.Time `db:"created_at"`
}
