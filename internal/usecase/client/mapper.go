package client

import (
	"github.com/BruksfildServices01/client-registry/internal/audit"
	domain "github.com/BruksfildServices01/client-registry/internal/domain/client"
	"github.com/BruksfildServices01/client-registry/internal/dto"
)

func ToDTO(c domain.Client) dto.ClientDTO {
	return dto.ClientDTO{
		ID:               c.ID,
		Name:             c.Name,
		IsActive:         c.IsActive,
		PhoneNumber:      c.PhoneNumber,
		ConcurrencyToken: c.ConcurrencyToken.String(),
		BirthDate:        c.BirthDate.Format(dto.DateLayout),
	}
}

func auditEvent(requestID, action string, c domain.Client) audit.Event {
	id := c.ID
	return audit.Event{
		RequestID: requestID,
		Action:    action,
		Entity:    "client",
		EntityID:  &id,
	}
}
