package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/store"
)

var businessMessages = map[string]string{
	"invalid_date":         "Data inválida. Use AAAA-MM-DD.",
	"invalid_time":         "Horário inválido. Use HH:MM.",
	"invalid_status":       "Status inválido.",
	"invalid_month":        "Mês inválido.",
	"client_not_found":     "Cliente não encontrado.",
	"service_not_found":    "Serviço não encontrado.",
	"invalid_phone":        "Telefone inválido.",
	"invalid_email":        "Email inválido.",
	"invalid_email_domain": "Domínio de email inexistente.",
	"invalid_birth_date":   "Data de nascimento inválida.",
	"invalid_price":        "Preço não pode ser negativo.",
	"invalid_quantity":     "Quantidade não pode ser negativa.",
}

// writeError maps use case and store errors onto the JSON error envelope.
// notFound is used when the addressed record does not exist.
func writeError(c *gin.Context, err error, notFoundCode, notFoundMsg string) {
	_ = c.Error(err)

	var be httperr.BusinessError
	switch {
	case errors.Is(err, store.ErrNotFound):
		httperr.NotFound(c, notFoundCode, notFoundMsg)
	case errors.As(err, &be):
		msg, ok := businessMessages[be.Code]
		if !ok {
			msg = "Requisição inválida."
		}
		httperr.BadRequest(c, be.Code, msg)
	case store.IsTransport(err):
		httperr.BadGateway(c, "store_unavailable", "Armazenamento indisponível. Tente novamente.")
	default:
		httperr.Internal(c, "internal_error", "Erro interno.")
	}
}

// bindJSON is used for partial updates: unknown fields are rejected
// instead of being silently dropped, then the binding tags run.
func bindJSON(c *gin.Context, obj any) error {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return err
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	if err := dec.Decode(obj); err != nil {
		return fmt.Errorf("decode body: %w", err)
	}

	return binding.Validator.ValidateStruct(obj)
}

func badRequest(c *gin.Context, err error) {
	_ = c.Error(err)
	httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
}
