package server

import (
	"context"
	"net"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/kelseyhightower/envconfig"
	"github.com/quickcar/lead-notification-service/internal/handler"
	"github.com/quickcar/lead-notification-service/internal/metrics"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("http_server",
	fx.Provide(
		NewHTTP,
		NewConfig,
	),
)

type HTTPParams struct {
	fx.In

	Config      HTTPConfig
	Handler     *handler.Submission
	HTTPMetrics *metrics.HTTPServerCollector
	Logger      *zap.Logger
}

type HTTPServer struct {
	router *gin.Engine
	srv    *http.Server

	handler     *handler.Submission
	httpMetrics *metrics.HTTPServerCollector
	logger      *zap.Logger
}

// NewHTTP builds the engine and routes without binding a socket; the
// listener comes up in the fx OnStart hook, so tests can drive the router
// directly.
func NewHTTP(lc fx.Lifecycle, params HTTPParams) *HTTPServer {
	router := gin.New()
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	router.Use(cors.New(corsConfig))

	httpServer := &HTTPServer{
		router: router,
		srv: &http.Server{
			Addr:    params.Config.Port,
			Handler: router,
		},
		handler:     params.Handler,
		httpMetrics: params.HTTPMetrics,
		logger:      params.Logger,
	}

	httpServer.setupRoutes()

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", httpServer.srv.Addr)
			if err != nil {
				return err
			}
			params.Logger.Info("api listening", zap.String("addr", httpServer.srv.Addr))
			go httpServer.srv.Serve(ln)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return httpServer.srv.Shutdown(ctx)
		},
	})

	return httpServer
}

type HTTPConfig struct {
	Port string `envconfig:"HTTP_SERVER_PORT" default:":8081"`
}

func NewConfig() HTTPConfig {
	var cfg HTTPConfig
	envconfig.MustProcess("", &cfg)

	return cfg
}
