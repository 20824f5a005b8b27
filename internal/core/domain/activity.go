package domain

import "time"

// ActivityStatus is the outcome recorded for an audited action.
type ActivityStatus string

const (
	ActivitySuccess ActivityStatus = "success"
	ActivityWarning ActivityStatus = "warning"
	ActivityError   ActivityStatus = "error"
)

// ActivityLog is an append-only audit record. Entries are never updated and
// only removed by an explicit administrative purge.
type ActivityLog struct {
	LogID      string         `json:"logID"`
	ActorID    string         `json:"actorID"`
	ActorName  string         `json:"actorName"`
	ActorEmail string         `json:"actorEmail"`
	Action     string         `json:"action"`   // e.g. "login", "create", "delete"
	Resource   string         `json:"resource"` // e.g. "users", "payrolls"
	ResourceID *string        `json:"resourceID,omitempty"`
	Detail     string         `json:"detail"`
	Status     ActivityStatus `json:"status"`
	IP         string         `json:"ip,omitempty"`
	UserAgent  string         `json:"userAgent,omitempty"`
	CreatedAt  time.Time      `json:"createdAt"`
}
