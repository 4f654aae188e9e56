package httpresponse

import (
	"encoding/json"
	"errors"
	"net/http"

	"pickup-service/internal/service/assignment"
	"pickup-service/internal/service/driver"
	"pickup-service/pkg/logger"
	"pickup-service/pkg/tx"
)

type responseLogger interface {
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type ErrorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

const (
	KindUnauthorized    = "unauthorized"
	KindBadRequest      = "bad_request"
	KindUnprocessable   = "unprocessable"
	KindRateLimited     = "rate_limited"
	KindPayloadTooLarge = "payload_too_large"
	KindTransient       = assignment.KindTransient
	KindInternal        = assignment.KindInternal
	internalErrMessage  = "internal server error"
)

func WriteJSON(w http.ResponseWriter, log responseLogger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(body)
	if err != nil {
		log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func WriteError(w http.ResponseWriter, log responseLogger, status int, kind, message string) {
	WriteJSON(w, log, status, ErrorBody{Error: kind, Message: message})
}

// WriteInternal детали внутренних ошибок остаются в логах, клиенту уходит общее сообщение.
func WriteInternal(w http.ResponseWriter, log responseLogger, err error) {
	log.With(
		logger.NewField("error", err),
	).Error("internal error")
	WriteError(w, log, http.StatusInternalServerError, KindInternal, internalErrMessage)
}

// WriteAssignmentError переводит ошибку сервиса заявок в HTTP статус по ее категории.
func WriteAssignmentError(w http.ResponseWriter, log responseLogger, err error) {
	kind := assignment.Kind(err)

	var status int
	switch kind {
	case assignment.KindValidation:
		status = http.StatusBadRequest
	case assignment.KindNotFound:
		status = http.StatusNotFound
	case assignment.KindConflict,
		assignment.KindIllegalTransition,
		assignment.KindTerminal:
		status = http.StatusConflict
	case assignment.KindNotOwner,
		assignment.KindAuthorizationDenied:
		status = http.StatusForbidden
	case assignment.KindTransient:
		w.Header().Set("Retry-After", "1")
		status = http.StatusServiceUnavailable
	default:
		WriteInternal(w, log, err)
		return
	}

	WriteError(w, log, status, kind, err.Error())
}

func WriteUnauthorized(w http.ResponseWriter, log responseLogger) {
	WriteError(w, log, http.StatusUnauthorized, KindUnauthorized, "authentication required")
}

func WriteBadRequest(w http.ResponseWriter, log responseLogger, message string) {
	WriteError(w, log, http.StatusBadRequest, assignment.KindValidation, message)
}

// WriteDriverError ошибки сервиса водителей в тех же категориях, что и у заявок.
func WriteDriverError(w http.ResponseWriter, log responseLogger, err error) {
	switch {
	case errors.Is(err, driver.ErrValidation):
		WriteError(w, log, http.StatusBadRequest, assignment.KindValidation, err.Error())
	case errors.Is(err, driver.ErrDriverNotFound),
		errors.Is(err, driver.ErrTenantNotFound):
		WriteError(w, log, http.StatusNotFound, assignment.KindNotFound, err.Error())
	case errors.Is(err, driver.ErrConflict):
		WriteError(w, log, http.StatusConflict, assignment.KindConflict, err.Error())
	case errors.Is(err, driver.ErrForbidden):
		WriteError(w, log, http.StatusForbidden, assignment.KindAuthorizationDenied, err.Error())
	case errors.Is(err, driver.ErrTransient),
		errors.Is(err, tx.ErrSerializationFailure):
		w.Header().Set("Retry-After", "1")
		WriteError(w, log, http.StatusServiceUnavailable, assignment.KindTransient, err.Error())
	default:
		WriteInternal(w, log, err)
	}
}
