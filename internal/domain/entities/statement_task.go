package entities

import "time"

type StatementTaskStatus string

const (
	StatementTaskStatusPending    StatementTaskStatus = "Pending"
	StatementTaskStatusInProgress StatementTaskStatus = "InProgress"
	StatementTaskStatusCompleted  StatementTaskStatus = "Completed"
	StatementTaskStatusFailed     StatementTaskStatus = "Failed"
)

// StatementTask is a queued request to generate a site's billing statement.
// Generation itself runs elsewhere.
type StatementTask struct {
	ID                 string
	CustomerSiteID     string
	ContractID         string
	Status             StatementTaskStatus
	Source             string
	ServicePeriodStart *time.Time
	CreatedAt          time.Time
}

func (t StatementTask) IsOpen() bool {
	return t.Status == StatementTaskStatusPending || t.Status == StatementTaskStatusInProgress
}
