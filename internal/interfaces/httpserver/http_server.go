package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"titan-server/internal/config"
	"titan-server/internal/infrastructure"
	middleware "titan-server/internal/interfaces/httpserver/middlewares"
	"titan-server/internal/interfaces/httpserver/routes/api"

	_ "titan-server/docs/swagger"
)

type HTTPServer struct {
	engine   *gin.Engine
	infra    *infrastructure.Infrastructure
	apiRoute *api.ApiRoute
	config   *config.Config
}

func NewHttpServer(
	apiRoute *api.ApiRoute,
	infra *infrastructure.Infrastructure,
	cfg *config.Config,
) *HTTPServer {
	gin.SetMode(gin.ReleaseMode)
	server := HTTPServer{
		gin.New(),
		infra,
		apiRoute,
		cfg,
	}
	server.engine.Use(middleware.RequestID())
	server.engine.Use(middleware.TracingMiddleware(cfg.ServiceName))
	server.engine.Use(middleware.LoggingMiddleware(infra.Logger))
	server.engine.Use(middleware.CORSMiddleware())
	server.engine.Use(middleware.MetricsMiddleware())

	server.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	server.engine.GET("/readyz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	server.engine.GET("/healthcheck", func(c *gin.Context) {
		c.JSON(200, "ok")
	})

	server.engine.GET("/ws", func(c *gin.Context) {
		server.infra.Hub.ServeWS(c.Writer, c.Request)
	})

	if cfg.EnableSwagger {
		server.bindSwagger()
	}
	return &server
}

func (s *HTTPServer) bindSwagger() {
	s.engine.GET("/api/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// shutdownTimeout bounds how long in-flight requests may drain.
const shutdownTimeout = 10 * time.Second

// Run serves until the listener fails or ctx is cancelled. On cancellation it
// drains in-flight requests and disconnects realtime clients before returning.
func (httpServer *HTTPServer) Run(ctx context.Context) error {
	httpServer.apiRoute.RegisterRoutes(httpServer.engine)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", httpServer.config.HTTPPort),
		Handler: httpServer.engine,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	err := server.Shutdown(shutdownCtx)
	httpServer.infra.Hub.Shutdown()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
