package httperr

import (
	"net/http"

	"github.com/BruksfildServices01/client-registry/internal/dto"
)

// StatusFor traduz o tipo de falha do envelope para o status HTTP.
func StatusFor(kind dto.ErrorKind) int {
	switch kind {
	case dto.KindValidation:
		return http.StatusBadRequest
	case dto.KindNotFound:
		return http.StatusNotFound
	case dto.KindVersionConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
