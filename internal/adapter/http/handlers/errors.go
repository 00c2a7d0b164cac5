package handlers

import (
	"errors"
	"net/http"

	"assessoria_licitacoes/internal/adapter/http/dto/request"
	"assessoria_licitacoes/internal/usecase"
	"assessoria_licitacoes/pkg"
	"assessoria_licitacoes/pkg/logger"

	"github.com/gin-gonic/gin"
)

var errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)

// mapError translates use-case errors into the HTTP error envelope. Validation failures carry
// the offending field and reason so the form can highlight them.
func mapError(err error) *pkg.AppError {
	var fieldErr *request.FieldError
	var validationErr *usecase.ValidationError
	var transitionErr *usecase.TransitionError

	switch {
	case errors.As(err, &fieldErr):
		return pkg.NewDomainError("VALIDATION_FAILED", "Validation failed", err, http.StatusUnprocessableEntity).
			WithDetail("field", fieldErr.Field).
			WithDetail("reason", fieldErr.Reason)
	case errors.As(err, &validationErr):
		return pkg.NewDomainError("VALIDATION_FAILED", "Validation failed", err, http.StatusUnprocessableEntity).
			WithDetail("field", validationErr.Field).
			WithDetail("reason", validationErr.Reason)
	case errors.As(err, &transitionErr):
		return pkg.NewDomainError("INVALID_STATUS_TRANSITION", "Operation not allowed in the current status", err, http.StatusConflict).
			WithDetail("operation", transitionErr.Operation).
			WithDetail("status", string(transitionErr.From))
	case errors.Is(err, usecase.ErrInvalidBidID), errors.Is(err, usecase.ErrInvalidDebitID):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBidNotFound):
		return pkg.NewDomainError("LICITACAO_NOT_FOUND", "Licitação not found", err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrItemNotFound):
		return pkg.NewDomainError("ITEM_NOT_FOUND", "Proposal item not found", err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrDebitNotFound):
		return pkg.NewDomainError("DEBIT_NOT_FOUND", "Debit not found", err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrDisputeNotWon):
		return pkg.NewDomainError("DISPUTE_NOT_WON", "Dispute was not won by the client", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrDebitAlreadyPaid):
		return pkg.NewDomainError("DEBIT_ALREADY_PAID", "Debit already paid", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrDebitCancelled):
		return pkg.NewDomainError("DEBIT_CANCELLED", "Debit cancelled", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidPaymentPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainError("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainError("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainError("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrDocumentStorage):
		return pkg.NewDomainError("DOCUMENT_STORAGE_FAILURE", "Could not reach document storage", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrGatewayNotWired), errors.Is(err, usecase.ErrDebitRepoNotWired), errors.Is(err, usecase.ErrDocumentsNotWired):
		return pkg.NewDomainError("SERVICE_UNAVAILABLE", "Service not configured", err, http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrPersistence):
		return pkg.NewDomainError("PERSISTENCE_FAILURE", "Could not save the licitação, try again", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func respondError(c *gin.Context, area string, err error) {
	appErr := mapError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		logger.Error(c.Request.Context(), "["+area+"][handler] request failed", "path", c.FullPath(), "code", appErr.Code, "err", err)
	} else {
		logger.Info(c.Request.Context(), "["+area+"][handler] request rejected", "path", c.FullPath(), "code", appErr.Code, "err", err)
	}
	_ = c.Error(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func respondInvalidPayload(c *gin.Context, area string, err error) {
	logger.Info(c.Request.Context(), "["+area+"][handler] invalid payload", "path", c.FullPath(), "err", err)
	c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
}
