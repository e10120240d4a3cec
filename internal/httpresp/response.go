package httpresp

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/client-registry/internal/dto"
	"github.com/BruksfildServices01/client-registry/internal/httperr"
)

func OK(c *gin.Context, data any) {
	c.JSON(200, data)
}

// Result escreve o envelope; okStatus só vale quando Success é true.
func Result[T any](c *gin.Context, okStatus int, res dto.Result[T]) {
	status := okStatus
	if !res.Success {
		status = httperr.StatusFor(res.Kind)
	}
	c.JSON(status, res)
}

// Invalid responde uma falha de validação que nem chegou ao serviço
// (JSON malformado, id não numérico).
func Invalid[T any](c *gin.Context, messages ...string) {
	Result(c, 0, dto.Fail[T](dto.KindValidation, messages...))
}
