package api

import (
	"net/http"

	resdto "pos-engine/internal/handler/dto/response"
	"pos-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuditHandler struct {
	q queries.AuditQueries
}

func NewAuditHandler(q queries.AuditQueries) *AuditHandler {
	return &AuditHandler{q: q}
}

// @Summary Audit trail
// @Description Get the recent action log, newest first
// @Tags audit
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.AuditEntryResponse
// @Router /audit [get]
func (h *AuditHandler) Trail(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"entries": resdto.FromAuditTrail(h.q.Trail())})
}
