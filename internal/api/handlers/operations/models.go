package operations

import (
	"time"

	"github.com/sokol-matija/hotel-inventory-sub003/internal/domain"
	"github.com/sokol-matija/hotel-inventory-sub003/internal/service/reservations/models"
)

// OperationResponse операция в ответе API
type OperationResponse struct {
	ID         string                      `json:"id"`
	Kind       string                      `json:"kind"`
	Status     string                      `json:"status"`
	Timestamp  string                      `json:"timestamp"`
	Error      string                      `json:"error,omitempty"`
	ResolvedAt *string                     `json:"resolvedAt,omitempty"`
	Original   *models.ReservationResponse `json:"original,omitempty"`
	New        *models.ReservationResponse `json:"new,omitempty"`
}

// OperationListResponse список операций
type OperationListResponse struct {
	Operations []*OperationResponse `json:"operations"`
	Total      int                  `json:"total"`
}

// RollbackAllResponse результат массового отката
type RollbackAllResponse struct {
	RolledBack int `json:"rolledBack"`
}

// FromDomainOperation конвертирует доменную модель в ответ
func FromDomainOperation(op domain.PendingOperation) *OperationResponse {
	resp := &OperationResponse{
		ID:        op.ID,
		Kind:      string(op.Kind),
		Status:    string(op.Status),
		Timestamp: op.Timestamp.Format(time.RFC3339),
		Error:     op.Error,
	}
	if op.ResolvedAt != nil {
		s := op.ResolvedAt.Format(time.RFC3339)
		resp.ResolvedAt = &s
	}
	if op.Original != nil {
		resp.Original = models.FromDomainReservation(op.Original)
	}
	if op.New != nil {
		resp.New = models.FromDomainReservation(op.New)
	}
	return resp
}

// FromDomainOperationList конвертирует список
func FromDomainOperationList(ops []domain.PendingOperation) *OperationListResponse {
	resp := &OperationListResponse{
		Operations: make([]*OperationResponse, 0, len(ops)),
		Total:      len(ops),
	}
	for _, op := range ops {
		resp.Operations = append(resp.Operations, FromDomainOperation(op))
	}
	return resp
}
