package client

import "time"

// Client é o agregado; o repositório traduz de/para models.Client.
type Client struct {
	ID          int64
	Name        string
	PhoneNumber string
	BirthDate   time.Time
	IsActive    bool

	ConcurrencyToken ConcurrencyToken

	IsRemoved bool
	RemovedAt *time.Time
}

// Changes é a entrada de uma edição parcial. BirthDate nil mantém o valor atual.
type Changes struct {
	Name        string
	PhoneNumber string
	BirthDate   *time.Time
}

// ===============================
// Domain Actions
// ===============================

// New monta um cliente ainda não persistido (ativo, não removido).
func New(name, phone string, birthDate time.Time) *Client {
	return &Client{
		Name:        name,
		PhoneNumber: phone,
		BirthDate:   DateOnly(birthDate),
		IsActive:    true,
	}
}

// Merge aplica a edição: nome e telefone sempre sobrescritos,
// data de nascimento só quando informada.
func Merge(c *Client, ch Changes) {
	c.Name = ch.Name
	c.PhoneNumber = ch.PhoneNumber
	if ch.BirthDate != nil {
		c.BirthDate = DateOnly(*ch.BirthDate)
	}
}

func SetStatus(c *Client, active bool) {
	c.IsActive = active
}

// Remove marca a remoção lógica. Nunca é desfeita.
func Remove(c *Client, now time.Time) {
	c.IsRemoved = true
	c.RemovedAt = &now
}

// DateOnly descarta hora e fuso, mantendo o dia do calendário em UTC.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
