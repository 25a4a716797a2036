package entities

import "time"

type EmailTaskStatus string

const (
	EmailTaskStatusPending    EmailTaskStatus = "Pending"
	EmailTaskStatusInProgress EmailTaskStatus = "InProgress"
	EmailTaskStatusCompleted  EmailTaskStatus = "Completed"
	EmailTaskStatusFailed     EmailTaskStatus = "Failed"
)

// EmailSendActionAll sends a statement to every recipient. It is the action of
// bulk requests.
const EmailSendActionAll = "SendAll"

// EmailTask is a queued request to email a billing statement. SendAction is
// empty when the sender's default applies.
type EmailTask struct {
	ID                 string
	BillingStatementID string
	Status             EmailTaskStatus
	SendAction         string
	CreatedAt          time.Time
}

func (t EmailTask) IsOpen() bool {
	return t.Status == EmailTaskStatusPending || t.Status == EmailTaskStatusInProgress
}
