package client

import (
	"sync"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/sony/gobreaker/v2"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// CircuitBreakerRegistry hands out one breaker per provider host so a
// misbehaving SMS gateway stops being hammered while it is down.
type CircuitBreakerRegistry struct {
	breakers *sync.Map
	settings gobreaker.Settings
	logger   *zap.Logger
}

type CircuitBreakerResponse struct {
	Body       []byte
	StatusCode int
}

type CircuitBreakerRegistryParams struct {
	fx.In

	Config CircuitBreakerRegistryConfig
	Logger *zap.Logger
}

func NewCircuitBreakerRegistry(params CircuitBreakerRegistryParams) *CircuitBreakerRegistry {
	return &CircuitBreakerRegistry{
		breakers: &sync.Map{},
		logger:   params.Logger,
		settings: gobreaker.Settings{
			MaxRequests: params.Config.MaxHalfOpenRequests,
			Timeout:     params.Config.OpenStateTimeout,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)

				return counts.Requests >= params.Config.MinRequestsBeforeTrip &&
					failureRatio >= (params.Config.FailureThresholdPercent/100)
			},
		},
	}
}

type CircuitBreakerRegistryConfig struct {
	MaxHalfOpenRequests     uint32        `envconfig:"CIRCUIT_BREAKER_MAX_HALF_OPEN_REQUESTS" default:"5"`
	OpenStateTimeout        time.Duration `envconfig:"CIRCUIT_BREAKER_OPEN_STATE_TIMEOUT" default:"60s"`
	MinRequestsBeforeTrip   uint32        `envconfig:"CIRCUIT_BREAKER_MIN_REQUESTS_BEFORE_TRIP" default:"3"`
	FailureThresholdPercent float64       `envconfig:"CIRCUIT_BREAKER_FAILURE_THRESHOLD_PERCENT" default:"60"`
}

func NewCircuitBreakerRegistryConfig() CircuitBreakerRegistryConfig {
	var cfg CircuitBreakerRegistryConfig
	envconfig.MustProcess("", &cfg)

	return cfg
}

func (r *CircuitBreakerRegistry) GetOrCreate(host string) *gobreaker.CircuitBreaker[CircuitBreakerResponse] {
	if cb, ok := r.breakers.Load(host); ok {
		return cb.(*gobreaker.CircuitBreaker[CircuitBreakerResponse])
	}

	settings := r.settings
	settings.Name = host
	settings.OnStateChange = func(name string, from, to gobreaker.State) {
		r.logger.Warn("circuit breaker state change",
			zap.String("host", name),
			zap.String("from", from.String()),
			zap.String("to", to.String()),
		)
	}

	cb := gobreaker.NewCircuitBreaker[CircuitBreakerResponse](settings)

	actual, _ := r.breakers.LoadOrStore(host, cb)
	return actual.(*gobreaker.CircuitBreaker[CircuitBreakerResponse])
}
