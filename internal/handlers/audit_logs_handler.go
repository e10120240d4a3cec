package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/client-registry/internal/audit"
	"github.com/BruksfildServices01/client-registry/internal/dto"
	"github.com/BruksfildServices01/client-registry/internal/httpresp"
	"github.com/BruksfildServices01/client-registry/internal/logging"
	"github.com/BruksfildServices01/client-registry/internal/models"
)

const (
	defaultAuditLimit = 50
	maxAuditLimit     = 200
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	reader *audit.Reader
}

func NewAuditLogsHandler(reader *audit.Reader) *AuditLogsHandler {
	return &AuditLogsHandler{reader: reader}
}

// List aceita action, entity, entityId, from, to (YYYY-MM-DD), page e limit.
// page e limit fora da faixa voltam ao padrão.
func (h *AuditLogsHandler) List(c *gin.Context) {
	f := audit.Filter{
		Action: c.Query("action"),
		Entity: c.Query("entity"),
		Page:   1,
		Limit:  defaultAuditLimit,
	}

	if page, err := strconv.Atoi(c.Query("page")); err == nil && page > 0 {
		f.Page = page
	}
	if limit, err := strconv.Atoi(c.Query("limit")); err == nil && limit > 0 && limit <= maxAuditLimit {
		f.Limit = limit
	}

	// --------------------------------------------------
	// Filtros que precisam ser válidos
	// --------------------------------------------------
	var problems []string

	if raw := c.Query("entityId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			problems = append(problems, fmt.Sprintf("O parâmetro 'entityId' deve ser numérico. Valor informado: %q", raw))
		} else {
			f.EntityID = &id
		}
	}
	for _, p := range []struct {
		key string
		dst **time.Time
	}{{"from", &f.From}, {"to", &f.To}} {
		raw := c.Query(p.key)
		if raw == "" {
			continue
		}
		d, err := time.Parse(dto.DateLayout, raw)
		if err != nil {
			problems = append(problems, fmt.Sprintf("O parâmetro '%s' deve estar no formato AAAA-MM-DD. Valor informado: %q", p.key, raw))
			continue
		}
		*p.dst = &d
	}

	if len(problems) > 0 {
		httpresp.Invalid[dto.Page[models.AuditLog]](c, problems...)
		return
	}

	// --------------------------------------------------
	// Listagem
	// --------------------------------------------------
	logs, total, err := h.reader.List(c.Request.Context(), f)
	if err != nil {
		logging.FromContext(c.Request.Context()).Error("audit_list_failed", "error", err)
		httpresp.Result(c, http.StatusOK, dto.Fail[dto.Page[models.AuditLog]](
			dto.KindStorage, "Erro ao listar logs de auditoria.",
		))
		return
	}

	httpresp.Result(c, http.StatusOK, dto.OK(dto.Page[models.AuditLog]{
		Items:        logs,
		CurrentPage:  f.Page,
		PageSize:     f.Limit,
		TotalRecords: total,
	}))
}
