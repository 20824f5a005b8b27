package dto

import (
	"time"

	"github.com/staffdeck/payroll_hr_app/internal/core/domain"
)

// ActivityLogResponse is the public representation of one audit entry.
type ActivityLogResponse struct {
	LogID      string    `json:"logID"`
	ActorID    string    `json:"actorID"`
	ActorName  string    `json:"actorName"`
	ActorEmail string    `json:"actorEmail"`
	Action     string    `json:"action"`
	Resource   string    `json:"resource"`
	ResourceID *string   `json:"resourceID,omitempty"`
	Detail     string    `json:"detail"`
	Status     string    `json:"status"`
	IP         string    `json:"ip,omitempty"`
	UserAgent  string    `json:"userAgent,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ToActivityLogResponse converts a domain.ActivityLog to its public representation.
func ToActivityLogResponse(entry *domain.ActivityLog) ActivityLogResponse {
	return ActivityLogResponse{
		LogID:      entry.LogID,
		ActorID:    entry.ActorID,
		ActorName:  entry.ActorName,
		ActorEmail: entry.ActorEmail,
		Action:     entry.Action,
		Resource:   entry.Resource,
		ResourceID: entry.ResourceID,
		Detail:     entry.Detail,
		Status:     string(entry.Status),
		IP:         entry.IP,
		UserAgent:  entry.UserAgent,
		CreatedAt:  entry.CreatedAt,
	}
}

// ToActivityLogResponseList converts a slice of domain audit entries.
func ToActivityLogResponseList(entries []domain.ActivityLog) []ActivityLogResponse {
	out := make([]ActivityLogResponse, len(entries))
	for i := range entries {
		out[i] = ToActivityLogResponse(&entries[i])
	}
	return out
}

// PurgeActivityLogsRequest removes audit entries older than the given number of days.
type PurgeActivityLogsRequest struct {
	OlderThanDays int `json:"olderThanDays" binding:"required,min=1"`
}

// PurgeActivityLogsResponse reports how many entries were removed.
type PurgeActivityLogsResponse struct {
	Purged int64 `json:"purged"`
}
