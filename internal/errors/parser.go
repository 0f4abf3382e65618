package errors

import (
	"errors"
	"strings"

	"github.com/vitrineweb/vitrine-backend/internal/app/service"
	"github.com/vitrineweb/vitrine-backend/internal/sheet"
)

// ErrorInfo pairs an error code with its user-facing message.
type ErrorInfo struct {
	Code    string
	Message string
}

// ParseError maps internal errors to a code and a user-facing pt-BR message
// without leaking transport details.
func ParseError(err error) ErrorInfo {
	if err == nil {
		return ErrorInfo{Code: InternalServerError, Message: "Ocorreu um erro no servidor"}
	}

	switch {
	case errors.Is(err, sheet.ErrNotConfigured):
		return ErrorInfo{Code: SheetNotConfig, Message: "A planilha da loja não está configurada"}
	case errors.Is(err, sheet.ErrConnection):
		return ErrorInfo{Code: SheetUnavailable, Message: "Não foi possível carregar os dados da loja"}
	case errors.Is(err, sheet.ErrMalformedWorkbook):
		return ErrorInfo{Code: SheetMalformed, Message: "A planilha da loja está em um formato inválido"}
	case errors.Is(err, service.ErrCartItemNotFound):
		return ErrorInfo{Code: CartItemNotFound, Message: "Item não encontrado no carrinho"}
	case errors.Is(err, service.ErrInvalidCartItem):
		return ErrorInfo{Code: CartInvalidItem, Message: "Item inválido"}
	}

	errStr := strings.ToLower(err.Error())
	if strings.Contains(errStr, "connection refused") ||
		strings.Contains(errStr, "no such host") ||
		strings.Contains(errStr, "timeout") {
		return ErrorInfo{
			Code:    InternalExternalAPI,
			Message: "Falha ao conectar com um serviço externo. Tente novamente em instantes",
		}
	}

	return ErrorInfo{
		Code:    InternalServerError,
		Message: "Ocorreu um erro no servidor. Tente novamente em instantes",
	}
}
