package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/client-registry/internal/dto"
	"github.com/BruksfildServices01/client-registry/internal/httpresp"
	"github.com/BruksfildServices01/client-registry/internal/service"
	"github.com/BruksfildServices01/client-registry/internal/validators"
)

type ClientHandler struct {
	svc             *service.ClientService
	validator       *validators.ClientValidator
	defaultPageSize int
}

func NewClientHandler(
	svc *service.ClientService,
	validator *validators.ClientValidator,
	defaultPageSize int,
) *ClientHandler {
	if defaultPageSize <= 0 {
		defaultPageSize = 10
	}
	return &ClientHandler{svc: svc, validator: validator, defaultPageSize: defaultPageSize}
}

// ======================================================
// LIST
// ======================================================
func (h *ClientHandler) List(c *gin.Context) {
	var problems []string

	page, problem := queryInt(c, "page", 1)
	if problem != "" {
		problems = append(problems, problem)
	}
	size, problem := queryInt(c, "pageSize", h.defaultPageSize)
	if problem != "" {
		problems = append(problems, problem)
	}
	if len(problems) > 0 {
		// o parâmetro que converteu ainda passa pelas regras de faixa
		var ve *validators.ValidationError
		err := h.validator.ValidateList(dto.ListClientsQuery{PageNumber: page, PageSize: size})
		if errors.As(err, &ve) {
			problems = append(problems, ve.Messages...)
		}
		httpresp.Invalid[dto.Page[dto.ClientDTO]](c, problems...)
		return
	}

	httpresp.Result(c, http.StatusOK, h.svc.List(c.Request.Context(), page, size))
}

// ======================================================
// GET
// ======================================================
func (h *ClientHandler) Get(c *gin.Context) {
	id, ok := clientID(c)
	if !ok {
		return
	}

	httpresp.Result(c, http.StatusOK, h.svc.Get(c.Request.Context(), id))
}

// ======================================================
// CREATE
// ======================================================
func (h *ClientHandler) Create(c *gin.Context) {
	var req dto.CreateClientDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		httpresp.Invalid[dto.ClientDTO](c, invalidBody(err))
		return
	}

	httpresp.Result(c, http.StatusCreated, h.svc.Create(c.Request.Context(), req))
}

// ======================================================
// UPDATE
// ======================================================
func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := clientID(c)
	if !ok {
		return
	}

	var req dto.UpdateClientDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		httpresp.Invalid[dto.ClientDTO](c, invalidBody(err))
		return
	}

	httpresp.Result(c, http.StatusOK, h.svc.Update(c.Request.Context(), id, req))
}

// ======================================================
// ENABLE / DISABLE
// ======================================================
func (h *ClientHandler) Enable(c *gin.Context) {
	id, ok := clientID(c)
	if !ok {
		return
	}

	httpresp.Result(c, http.StatusOK, h.svc.Enable(c.Request.Context(), id))
}

func (h *ClientHandler) Disable(c *gin.Context) {
	id, ok := clientID(c)
	if !ok {
		return
	}

	httpresp.Result(c, http.StatusOK, h.svc.Disable(c.Request.Context(), id))
}

// ======================================================
// DELETE (remoção lógica)
// ======================================================
func (h *ClientHandler) Delete(c *gin.Context) {
	id, ok := clientID(c)
	if !ok {
		return
	}

	req := dto.DeleteClientDTO{ConcurrencyToken: c.Query("concurrencyToken")}

	httpresp.Result(c, http.StatusOK, h.svc.Delete(c.Request.Context(), id, req))
}

// ======================================================
// HELPERS
// ======================================================

func clientID(c *gin.Context) (int64, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		httpresp.Invalid[dto.ClientDTO](c, fmt.Sprintf("O id informado é inválido: %q", raw))
		return 0, false
	}
	return id, true
}

// queryInt devolve def quando o parâmetro não veio ou não é numérico;
// o texto não vazio descreve o problema.
func queryInt(c *gin.Context, key string, def int) (int, string) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return def, ""
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def, fmt.Sprintf("O parâmetro '%s' deve ser numérico. Valor informado: %q", key, raw)
	}
	return n, ""
}

func invalidBody(err error) string {
	return "Dados inválidos: " + err.Error()
}
