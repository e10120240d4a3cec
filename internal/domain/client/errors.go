package client

import "github.com/BruksfildServices01/client-registry/internal/httperr"

var (
	ErrClientNotFound  = httperr.ErrBusiness("client_not_found")
	ErrVersionConflict = httperr.ErrBusiness("version_conflict")
)
