package courier

import (
	"errors"
	"fmt"
)

// ErrInvalidPhone — номер не удалось привести к E.164.
var ErrInvalidPhone = errors.New("invalid phone number")

// ProviderError — общий тип ошибок провайдера. Вызывающий код ветвится
// по Retryable(), а не по строкам из ответа провайдера.
type ProviderError interface {
	error
	Retryable() bool
}

// ClientError — ответ 4xx: ошибка запроса или валидации на стороне
// провайдера. Повторять бессмысленно.
type ClientError struct {
	StatusCode   int
	ProviderCode string
	Message      string
}

func (e *ClientError) Error() string {
	return fmt.Sprintf("courier: provider rejected request: status=%d code=%s message=%s",
		e.StatusCode, e.ProviderCode, e.Message)
}

func (e *ClientError) Retryable() bool { return false }

// TransientError — сетевые ошибки и 5xx после исчерпания всех попыток.
type TransientError struct {
	Attempts int
	Err      error
}

func (e *TransientError) Error() string {
	return fmt.Sprintf("courier: transient failure after %d attempts: %v", e.Attempts, e.Err)
}

func (e *TransientError) Retryable() bool { return true }

func (e *TransientError) Unwrap() error { return e.Err }
