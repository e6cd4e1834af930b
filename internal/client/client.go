package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/quickcar/lead-notification-service/internal/metrics"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const sendManyPath = "/messages/v4/send-many/detail"

//go:generate mockgen -package mockclient -destination ./mock/mockclient.go . SMSProvider
type SMSProvider interface {
	SendMany(ctx context.Context, messages []Message) (json.RawMessage, error)
}

var _ SMSProvider = (*SolapiClient)(nil)

// ProviderError carries whatever the SMS gateway gave back: the HTTP status
// and body for a rejected call, or the transport error when the call never
// completed.
type ProviderError struct {
	StatusCode int
	Body       []byte
	Err        error
}

func (e *ProviderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("solapi: %v", e.Err)
	}
	return fmt.Sprintf("solapi: status %d: %s", e.StatusCode, e.Body)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// Detail is the diagnostic string surfaced to the caller: the provider body
// when one exists, the transport error otherwise.
func (e *ProviderError) Detail() string {
	if len(e.Body) > 0 {
		return string(e.Body)
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return http.StatusText(e.StatusCode)
}

type SolapiClient struct {
	httpclient             *http.Client
	signer                 *Signer
	config                 SolapiConfig
	circuitBreakerRegistry *CircuitBreakerRegistry
	metricsCollector       *metrics.HTTPClientCollector
	logger                 *zap.Logger
}

type SolapiConfig struct {
	BaseURL   string        `envconfig:"SOLAPI_BASE_URL" default:"https://api.solapi.com"`
	APIKey    string        `envconfig:"SOLAPI_API_KEY"`
	APISecret string        `envconfig:"SOLAPI_API_SECRET"`
	Timeout   time.Duration `envconfig:"SOLAPI_TIMEOUT" default:"10s"`
}

type SolapiClientParams struct {
	fx.In

	Config                 SolapiConfig
	Signer                 *Signer
	CircuitBreakerRegistry *CircuitBreakerRegistry
	MetricsCollector       *metrics.HTTPClientCollector
	Logger                 *zap.Logger
}

func NewSolapiClient(params SolapiClientParams) *SolapiClient {
	// SOLAPI has flaky IPv6 routes, so the transport dials IPv4 only.
	dialer := &net.Dialer{
		Timeout:   30 * time.Second,
		KeepAlive: 30 * time.Second,
	}
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: func(ctx context.Context, _, addr string) (net.Conn, error) {
			return dialer.DialContext(ctx, "tcp4", addr)
		},
		MaxIdleConns:    100,
		IdleConnTimeout: 90 * time.Second,
	}

	return &SolapiClient{
		httpclient: &http.Client{
			Transport: transport,
			Timeout:   params.Config.Timeout,
		},
		signer:                 params.Signer,
		config:                 params.Config,
		circuitBreakerRegistry: params.CircuitBreakerRegistry,
		metricsCollector:       params.MetricsCollector,
		logger:                 params.Logger,
	}
}

func NewSolapiConfig() SolapiConfig {
	var cfg SolapiConfig
	envconfig.MustProcess("", &cfg)

	return cfg
}

// SendMany submits one batch call carrying every recipient. The
// authorization header is rebuilt for each call.
func (c *SolapiClient) SendMany(ctx context.Context, messages []Message) (json.RawMessage, error) {
	start := time.Now()

	u := c.config.BaseURL + sendManyPath
	host, err := extractHost(u)
	if err != nil {
		return nil, err
	}

	circuitBreaker := c.circuitBreakerRegistry.GetOrCreate(host)
	c.metricsCollector.RecordCircuitBreakerState(ctx, host, circuitBreaker.State().String())

	authorization, err := c.signer.Authorization(c.config.APIKey, c.config.APISecret)
	if err != nil {
		return nil, err
	}

	jsonBody, err := json.Marshal(sendManyRequest{Messages: messages})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		u,
		bytes.NewBuffer(jsonBody),
	)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", authorization)
	req.Header.Set("Content-Type", "application/json")

	resp, err := circuitBreaker.Execute(func() (CircuitBreakerResponse, error) {
		resp, err := c.httpclient.Do(req)
		if err != nil {
			return CircuitBreakerResponse{}, err
		}
		defer resp.Body.Close()

		rawBody, err := io.ReadAll(resp.Body)
		if err != nil {
			return CircuitBreakerResponse{}, err
		}

		return CircuitBreakerResponse{
			Body:       rawBody,
			StatusCode: resp.StatusCode,
		}, nil
	})

	duration := time.Since(start)

	if err != nil {
		c.metricsCollector.RecordRequest(ctx, http.MethodPost, host, 0, duration, err)
		c.logger.Error("sms send failed", zap.Error(err))
		return nil, &ProviderError{Err: err}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		providerErr := &ProviderError{StatusCode: resp.StatusCode, Body: resp.Body}
		c.metricsCollector.RecordRequest(ctx, http.MethodPost, host, resp.StatusCode, duration, providerErr)
		c.logger.Error("sms send rejected",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", resp.Body),
		)
		return nil, providerErr
	}

	c.metricsCollector.RecordRequest(ctx, http.MethodPost, host, resp.StatusCode, duration, nil)
	c.logger.Info("sms sent",
		zap.Int("status", resp.StatusCode),
		zap.Int("messages", len(messages)),
	)

	return json.RawMessage(resp.Body), nil
}

func extractHost(u string) (string, error) {
	parsed, err := url.Parse(u)
	if err != nil {
		return "", err
	}
	return parsed.Host, nil
}
