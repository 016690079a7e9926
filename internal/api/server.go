package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
	"github/w3kit/go-smart-account/internal/account/derive"
	"github/w3kit/go-smart-account/internal/account/signature"
	"github/w3kit/go-smart-account/internal/account/signer"
	httpClient "github/w3kit/go-smart-account/internal/client/http"
	"github/w3kit/go-smart-account/internal/client/modular"
	"github/w3kit/go-smart-account/internal/config"
	"github/w3kit/go-smart-account/internal/metrics"
)

// DeriveService is the wallet address-derivation capability used by handlers.
type DeriveService = derive.Service

// SignatureEncoder is the packed-signature capability used by handlers.
type SignatureEncoder = signature.Encoder

// Router holds the echo route groups.
type Router struct {
	Routes      []*echo.Route
	Root        *echo.Group
	Management  *echo.Group
	APIV1Wallet *echo.Group
}

// Server is a central struct keeping all the dependencies.
type Server struct {
	// initialized by router.Init
	Echo   *echo.Echo
	Router *Router

	Config   config.Server
	Registry *prometheus.Registry
	Metrics  *metrics.Service
	Derive   DeriveService
	Encoder  SignatureEncoder
}

// NewServer constructs the dependency graph from config: local signer,
// signature encoder, provider transport and derive service. The echo instance
// is attached separately via router.Init.
func NewServer(cfg config.Server) (*Server, error) {
	registry := prometheus.NewRegistry()

	metricsService, err := metrics.NewService(registry)
	if err != nil {
		return nil, err
	}

	localSigner, err := signer.NewLocalSigner(cfg.Signer.PrivateKeyHex)
	if err != nil {
		return nil, err
	}

	encoder, err := signature.NewEncoder(localSigner)
	if err != nil {
		return nil, err
	}

	retryConfig := httpClient.DefaultRetryConfig()
	retryConfig.MaxRetries = cfg.Transport.MaxRetries

	transport := modular.NewClient(
		cfg.Transport.APIKey,
		httpClient.WithBaseURL(cfg.Transport.BaseURL),
		httpClient.WithTimeout(cfg.Transport.Timeout),
		httpClient.WithRetryConfig(retryConfig),
		httpClient.WithMetricsCollector(metricsService),
	)

	deriveService, err := derive.NewService(transport)
	if err != nil {
		return nil, err
	}

	return &Server{
		Config:   cfg,
		Registry: registry,
		Metrics:  metricsService,
		Derive:   deriveService,
		Encoder:  encoder,
	}, nil
}

// Ready reports whether all components are initialized.
func (s *Server) Ready() bool {
	return s.Echo != nil &&
		s.Router != nil &&
		s.Metrics != nil &&
		s.Derive != nil &&
		s.Encoder != nil
}

// Start begins serving on the configured listen address. Blocks until the
// server stops.
func (s *Server) Start() error {
	if !s.Ready() {
		return errors.New("server is not ready")
	}

	err := s.Echo.Start(s.Config.Echo.ListenAddress)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	log.Warn().Msg("Shutting down server")

	if s.Echo != nil {
		return s.Echo.Shutdown(ctx)
	}

	return nil
}
