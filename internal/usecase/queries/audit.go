package queries

import (
	"pos-engine/internal/audit"
)

type AuditQueries interface {
	Trail() []audit.Entry
}

type auditQueriesImpl struct {
	recorder audit.Recorder
}

func NewAuditQueries(recorder audit.Recorder) AuditQueries {
	return &auditQueriesImpl{recorder: recorder}
}

func (q *auditQueriesImpl) Trail() []audit.Entry {
	return q.recorder.Entries()
}
