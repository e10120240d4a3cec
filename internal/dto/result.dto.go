package dto

// ErrorKind classifica uma falha para tratamento programático.
type ErrorKind string

const (
	KindValidation      ErrorKind = "validation"
	KindNotFound        ErrorKind = "not_found"
	KindVersionConflict ErrorKind = "version_conflict"
	KindStorage         ErrorKind = "storage"
)

// Result é o envelope único de todas as operações do serviço.
// Mensagens só são acumuladas, nunca substituídas.
type Result[T any] struct {
	Success  bool      `json:"success"`
	Kind     ErrorKind `json:"errorKind,omitempty"`
	Payload  *T        `json:"payload"`
	Messages []string  `json:"messages"`
}

func OK[T any](payload T, messages ...string) Result[T] {
	r := Result[T]{Success: true, Payload: &payload, Messages: []string{}}
	r.AddMessages(messages...)
	return r
}

// Fail sempre carrega ao menos uma mensagem.
func Fail[T any](kind ErrorKind, messages ...string) Result[T] {
	r := Result[T]{Kind: kind, Messages: []string{}}
	r.AddMessages(messages...)
	if len(r.Messages) == 0 {
		r.AddMessages(string(kind))
	}
	return r
}

func (r *Result[T]) AddMessages(messages ...string) {
	r.Messages = append(r.Messages, messages...)
}
