package dto

type ClientDTO struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	IsActive         bool   `json:"isActive"`
	PhoneNumber      string `json:"phoneNumber"`
	ConcurrencyToken string `json:"concurrencyToken"`
	BirthDate        string `json:"birthDate"`
}

type CreateClientDTO struct {
	Name        string `json:"name" validate:"required"`
	PhoneNumber string `json:"phoneNumber" validate:"required"`
	BirthDate   *Date  `json:"birthDate" validate:"required,notfuture"`
}

type UpdateClientDTO struct {
	Name             string `json:"name" validate:"required"`
	PhoneNumber      string `json:"phoneNumber" validate:"required"`
	BirthDate        *Date  `json:"birthDate,omitempty" validate:"omitempty,notfuture"`
	ConcurrencyToken string `json:"concurrencyToken" validate:"required,base64"`
}

// ListClientsQuery são os parâmetros de paginação já convertidos para int.
type ListClientsQuery struct {
	PageNumber int `validate:"min=1"`
	PageSize   int `validate:"min=1"`
}

type DeleteClientDTO struct {
	ConcurrencyToken string `validate:"required,base64"`
}
