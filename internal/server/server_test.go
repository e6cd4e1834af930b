package server

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/quickcar/lead-notification-service/internal/client"
	"github.com/quickcar/lead-notification-service/internal/handler"
	mockmail "github.com/quickcar/lead-notification-service/internal/mail/mock"
	"github.com/quickcar/lead-notification-service/internal/metrics"
	"github.com/quickcar/lead-notification-service/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.uber.org/fx/fxtest"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

// newTestServer wires the whole request path against a fake SOLAPI
// endpoint and a mocked mail transport. The listener is never started.
func newTestServer(t *testing.T, solapiURL string) (*HTTPServer, *mockmail.MockMailProvider) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })
	meter := provider.Meter("test")

	serverCollector, err := metrics.NewHTTPServerCollector(meter)
	require.NoError(t, err)
	clientCollector, err := metrics.NewHTTPClientCollector(nil)
	require.NoError(t, err)

	logger := zap.NewNop()

	sms := client.NewSolapiClient(client.SolapiClientParams{
		Config: client.SolapiConfig{
			BaseURL:   solapiURL,
			APIKey:    "test-key",
			APISecret: "test-secret",
			Timeout:   10 * time.Second,
		},
		Signer: client.NewSigner(),
		CircuitBreakerRegistry: client.NewCircuitBreakerRegistry(client.CircuitBreakerRegistryParams{
			Config: client.CircuitBreakerRegistryConfig{
				MaxHalfOpenRequests:     5,
				OpenStateTimeout:        60 * time.Second,
				MinRequestsBeforeTrip:   3,
				FailureThresholdPercent: 60,
			},
			Logger: logger,
		}),
		MetricsCollector: clientCollector,
		Logger:           logger,
	})

	ctrl := gomock.NewController(t)
	mailer := mockmail.NewMockMailProvider(ctrl)

	notifier := service.NewNotifier(service.NotifierParams{
		Mailer: mailer,
		SMS:    sms,
		Config: service.NotifierConfig{
			Sender:       "070-123-4567",
			ManagerPhone: "010-1111-2222",
			DealerPhone:  "010-3333-4444",
		},
		Logger: logger,
	})

	srv := NewHTTP(fxtest.NewLifecycle(t), HTTPParams{
		Config:      HTTPConfig{Port: ":0"},
		Handler:     handler.NewSubmissionHandler(handler.SubmissionParams{Notifier: notifier}),
		HTTPMetrics: serverCollector,
		Logger:      logger,
	})

	return srv, mailer
}

func TestHTTPServer_Healthz(t *testing.T) {
	srv, _ := newTestServer(t, "http://127.0.0.1:0")

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	recorder := httptest.NewRecorder()
	srv.router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestHTTPServer_SendLead(t *testing.T) {
	t.Run("happy path returns provider payload", func(t *testing.T) {
		solapi := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/messages/v4/send-many/detail", r.URL.Path)
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"groupInfo":{"count":{"total":2}}}`))
		}))
		defer solapi.Close()

		srv, mailer := newTestServer(t, solapi.URL)
		mailer.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		body := `{"carNumber":"12가3456","phone":"01011112222","region":"서울","mileage":"50000"}`
		req := httptest.NewRequest(http.MethodPost, "/api/send", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()
		srv.router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t,
			`{"ok":true,"sms":{"groupInfo":{"count":{"total":2}}}}`,
			recorder.Body.String(),
		)
	})

	t.Run("provider rejection surfaces as 502", func(t *testing.T) {
		solapi := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"errorCode":"ValidationError"}`))
		}))
		defer solapi.Close()

		srv, mailer := newTestServer(t, solapi.URL)
		mailer.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		body := `{"carNumber":"12가3456","phone":"01011112222","region":"서울","mileage":"50000"}`
		req := httptest.NewRequest(http.MethodPost, "/api/send", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()
		srv.router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusBadGateway, recorder.Code)
		assert.JSONEq(t,
			`{"ok":false,"error":"sms_failed","detail":"{\"errorCode\":\"ValidationError\"}"}`,
			recorder.Body.String(),
		)
	})

	t.Run("missing field is rejected without outbound calls", func(t *testing.T) {
		srv, _ := newTestServer(t, "http://127.0.0.1:0")

		body := `{"carNumber":"12가3456","phone":"","region":"서울","mileage":"50000"}`
		req := httptest.NewRequest(http.MethodPost, "/api/send", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()
		srv.router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.JSONEq(t, `{"ok":false,"error":"invalid_payload"}`, recorder.Body.String())
	})
}
