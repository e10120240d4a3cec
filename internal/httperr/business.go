package httperr

// BusinessError é um erro de regra de negócio identificado por código estável.
// É comparável, então serve como sentinela em errors.Is mesmo embrulhado.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}
