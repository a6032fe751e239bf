package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"go.uber.org/zap"
)

const (
	serverErrorTemplateConstant      = "http server error: %w"
	networkTCPConstant               = "tcp"
	logMessageServerStartingConstant = "Starting HTTP server"
	logMessageServerStoppingConstant = "Shutting down HTTP server"
	logFieldAddressConstant          = "address"
)

// Server wraps http.Server with context-driven graceful shutdown.
type Server struct {
	httpServer    *http.Server
	configuration ServerConfiguration
	logger        *zap.Logger
}

// NewServer creates a server for handler.
func NewServer(configuration ServerConfiguration, handler http.Handler, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	sanitized := configuration.Sanitize()
	return &Server{
		httpServer: &http.Server{
			Addr:         sanitized.Address,
			Handler:      handler,
			ReadTimeout:  sanitized.ReadTimeout,
			WriteTimeout: sanitized.WriteTimeout,
		},
		configuration: sanitized,
		logger:        logger,
	}
}

// Serve accepts connections on listener until executionContext is cancelled,
// then drains in-flight requests within the shutdown timeout.
func (server *Server) Serve(executionContext context.Context, listener net.Listener) error {
	server.logger.Info(logMessageServerStartingConstant, zap.String(logFieldAddressConstant, listener.Addr().String()))

	serveErrors := make(chan error, 1)
	go func() {
		serveErrors <- server.httpServer.Serve(listener)
	}()

	select {
	case serveError := <-serveErrors:
		if errors.Is(serveError, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf(serverErrorTemplateConstant, serveError)
	case <-executionContext.Done():
	}

	server.logger.Info(logMessageServerStoppingConstant)
	shutdownContext, cancel := context.WithTimeout(context.Background(), server.configuration.ShutdownTimeout)
	defer cancel()
	return server.httpServer.Shutdown(shutdownContext)
}

// ListenAndServe listens on the configured address and calls Serve.
func (server *Server) ListenAndServe(executionContext context.Context) error {
	listener, listenError := net.Listen(networkTCPConstant, server.httpServer.Addr)
	if listenError != nil {
		return fmt.Errorf(serverErrorTemplateConstant, listenError)
	}
	return server.Serve(executionContext, listener)
}
