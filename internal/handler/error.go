package handler

import (
	"errors"
	"net/http"

	"github.com/quickcar/lead-notification-service/internal/client"
	"github.com/quickcar/lead-notification-service/internal/service"
)

const (
	ErrCodeInvalidPayload  = "invalid_payload"
	ErrCodeSMSTooLong      = "sms_too_long"
	ErrCodeNoSMSRecipients = "no_sms_recipients"
	ErrCodeSMSFailed       = "sms_failed"
	ErrCodeSendFailed      = "send_failed"
)

type ErrorResponse struct {
	OK     bool   `json:"ok"`
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

// responseFor maps a notifier error onto the wire envelope. Anything not
// in the taxonomy is a send_failed at 500.
func responseFor(err error) (int, ErrorResponse) {
	var tooLong *service.SMSTooLongError
	var provider *client.ProviderError

	switch {
	case errors.Is(err, service.ErrInvalidPayload):
		return http.StatusBadRequest, ErrorResponse{Error: ErrCodeInvalidPayload}
	case errors.As(err, &tooLong):
		return http.StatusBadRequest, ErrorResponse{Error: ErrCodeSMSTooLong, Detail: tooLong.Error()}
	case errors.Is(err, service.ErrNoRecipients):
		return http.StatusBadRequest, ErrorResponse{Error: ErrCodeNoSMSRecipients}
	case errors.As(err, &provider):
		return http.StatusBadGateway, ErrorResponse{Error: ErrCodeSMSFailed, Detail: provider.Detail()}
	default:
		return http.StatusInternalServerError, ErrorResponse{Error: ErrCodeSendFailed, Detail: err.Error()}
	}
}
