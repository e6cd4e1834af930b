package handler

import (
	"errors"
	"net/http"
	"testing"

	"github.com/quickcar/lead-notification-service/internal/client"
	"github.com/quickcar/lead-notification-service/internal/service"
	"github.com/stretchr/testify/assert"
)

func TestResponseFor(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "invalid payload",
			err:            service.ErrInvalidPayload,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   ErrCodeInvalidPayload,
		},
		{
			name:           "wrapped invalid payload",
			err:            errors.Join(errors.New("context"), service.ErrInvalidPayload),
			expectedStatus: http.StatusBadRequest,
			expectedCode:   ErrCodeInvalidPayload,
		},
		{
			name:           "sms too long",
			err:            &service.SMSTooLongError{Length: 60},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   ErrCodeSMSTooLong,
		},
		{
			name:           "no recipients",
			err:            service.ErrNoRecipients,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   ErrCodeNoSMSRecipients,
		},
		{
			name:           "provider error",
			err:            &client.ProviderError{StatusCode: 503, Body: []byte("down")},
			expectedStatus: http.StatusBadGateway,
			expectedCode:   ErrCodeSMSFailed,
		},
		{
			name:           "transport-level provider error",
			err:            &client.ProviderError{Err: errors.New("dial tcp4: timeout")},
			expectedStatus: http.StatusBadGateway,
			expectedCode:   ErrCodeSMSFailed,
		},
		{
			name:           "anything else",
			err:            errors.New("boom"),
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   ErrCodeSendFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, resp := responseFor(tt.err)

			assert.Equal(t, tt.expectedStatus, status)
			assert.Equal(t, tt.expectedCode, resp.Error)
			assert.False(t, resp.OK)
		})
	}
}
