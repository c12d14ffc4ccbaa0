// Package response содержит вспомогательные типы и функции для формирования
// унифицированных JSON‑ответов HTTP‑обработчиков: успешные ответы со статусом
// "success" и ответы об ошибке со статусом "fail".
package response

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator"
)

// Response описывает стандартную структуру JSON‑ответа сервера.
// Поле Status — "success" либо "fail".
// Поле Results — количество записей в ответе списка (опционально).
// Поле Data — данные ответа (при успехе).
// Поле Message — текст ошибки (при неуспехе).
type Response struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Results *int   `json:"results,omitempty"`
	Data    any    `json:"data,omitempty"`
}

const (
	// StatusSuccess — значение статуса для успешного ответа.
	StatusSuccess = "success"
	// StatusFail — значение статуса для ответа с ошибкой.
	StatusFail = "fail"
)

// Success возвращает успешный Response с переданными данными.
func Success(data any) Response {
	return Response{
		Status: StatusSuccess,
		Data:   data,
	}
}

// SuccessList возвращает успешный Response списка с количеством записей.
func SuccessList(results int, data any) Response {
	return Response{
		Status:  StatusSuccess,
		Results: &results,
		Data:    data,
	}
}

// Fail возвращает Response с ошибкой и переданным сообщением.
func Fail(msg string) Response {
	return Response{
		Status:  StatusFail,
		Message: msg,
	}
}

// ValidationError формирует Response со статусом fail на основе ошибок валидации.
// Каждое нарушение превращается в человеко‑читаемый текст, объединённый через запятую.
func ValidationError(errs validator.ValidationErrors) Response {
	var errsMsgs []string

	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is a required field", err.Field()))
		case "email":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s must be a valid email", err.Field()))
		case "gt":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s must be greater than %s", err.Field(), err.Param()))
		case "min":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s must contain at least %s items or characters", err.Field(), err.Param()))
		case "oneof":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s must be one of: %s", err.Field(), err.Param()))
		default:
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is not a valid", err.Field()))
		}
	}
	return Response{
		Status:  StatusFail,
		Message: strings.Join(errsMsgs, ", "),
	}
}
