package response

import (
	"pos-engine/internal/audit"
)

type AuditEntryResponse struct {
	Timestamp   int64  `json:"timestamp"`
	Description string `json:"description"`
	Actor       string `json:"actor"`
	IsError     bool   `json:"is_error"`
}

func FromAuditTrail(entries []audit.Entry) []*AuditEntryResponse {
	res := make([]*AuditEntryResponse, len(entries))
	for i, e := range entries {
		res[i] = &AuditEntryResponse{
			Timestamp:   e.Timestamp.Unix(),
			Description: e.Description,
			Actor:       e.Actor,
			IsError:     e.IsError,
		}
	}
	return res
}
