package client

import (
	"bytes"
	"encoding/base64"
	"fmt"

	"github.com/google/uuid"
)

// ConcurrencyToken é opaco: só é comparado e devolvido ao chamador.
type ConcurrencyToken []byte

// NewConcurrencyToken gera um token novo para cada escrita confirmada.
func NewConcurrencyToken() ConcurrencyToken {
	id := uuid.New()
	return ConcurrencyToken(id[:])
}

func ParseConcurrencyToken(s string) (ConcurrencyToken, error) {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid concurrency token: %w", err)
	}
	if len(b) == 0 {
		return nil, fmt.Errorf("invalid concurrency token: empty")
	}
	return ConcurrencyToken(b), nil
}

func (t ConcurrencyToken) String() string {
	return base64.StdEncoding.EncodeToString(t)
}

func (t ConcurrencyToken) Equal(other ConcurrencyToken) bool {
	return bytes.Equal(t, other)
}
