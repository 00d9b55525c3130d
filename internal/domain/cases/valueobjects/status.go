package valueobjects

import "strings"

// Status represents the lifecycle state of a case.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in progress"
	StatusResolved   Status = "resolved"
	StatusOpen       Status = "open"
	StatusClosed     Status = "closed"
)

// NormalizeStatus canonicalizes user input: lowercase, trimmed, with
// underscores replaced by spaces ("In_Progress" -> "in progress").
func NormalizeStatus(value string) Status {
	normalized := strings.ToLower(strings.TrimSpace(value))
	normalized = strings.ReplaceAll(normalized, "_", " ")
	return Status(normalized)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusResolved, StatusOpen, StatusClosed:
		return true
	}
	return false
}

func (s Status) String() string {
	return string(s)
}

// AllStatuses lists the valid statuses, used for validation messages.
func AllStatuses() []Status {
	return []Status{StatusPending, StatusInProgress, StatusResolved, StatusOpen, StatusClosed}
}
