package domain

import "time"

// OperationKind kind of an optimistic reservation mutation
type OperationKind string

const (
	OperationCreate OperationKind = "create"
	OperationUpdate OperationKind = "update"
	OperationMove   OperationKind = "move"
	OperationDelete OperationKind = "delete"
)

// OperationStatus lifecycle of a pending operation:
// pending -> success (record dropped) or pending -> failed -> rolled_back (record kept for a while)
type OperationStatus string

const (
	OperationPending    OperationStatus = "pending"
	OperationSuccess    OperationStatus = "success"
	OperationFailed     OperationStatus = "failed"
	OperationRolledBack OperationStatus = "rolled_back"
)

// PendingOperation snapshot of an optimistic mutation awaiting the store
type PendingOperation struct {
	ID         string
	Kind       OperationKind
	Original   *Reservation // nil for create
	New        *Reservation // nil for delete
	Timestamp  time.Time
	Status     OperationStatus
	Error      string
	ResolvedAt *time.Time
}

// IsPending returns true while the store call is outstanding
func (o *PendingOperation) IsPending() bool {
	return o.Status == OperationPending
}

// OperationStats counts of tracked operations by status
type OperationStats struct {
	Total      int `json:"total"`
	Pending    int `json:"pending"`
	Failed     int `json:"failed"`
	RolledBack int `json:"rolledBack"`
	Succeeded  int `json:"succeeded"` // cumulative, successful records are not retained
}
