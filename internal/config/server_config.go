package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EchoServer configures the echo HTTP server.
type EchoServer struct {
	ListenAddress                  string
	HideInternalServerErrorDetails bool
}

// LoggerServer configures the zerolog root logger.
type LoggerServer struct {
	Level              string
	PrettyPrintConsole bool
}

// TransportServer configures the modular wallet provider client.
type TransportServer struct {
	BaseURL    string
	APIKey     string `json:"-"` // Prevent leaking credentials
	Timeout    time.Duration
	MaxRetries int
}

// SignerServer configures the local owner key.
type SignerServer struct {
	PrivateKeyHex string `json:"-"` // Prevent leaking the owner key
}

// AuthServer configures API authentication.
type AuthServer struct {
	APIToken string `json:"-"` // Prevent leaking credentials
}

// WalletServer configures wallet derivation defaults.
type WalletServer struct {
	DefaultScaCore string
}

// Server is the root service configuration, requires configuration through ENV.
type Server struct {
	Echo      EchoServer
	Logger    LoggerServer
	Transport TransportServer
	Signer    SignerServer
	Auth      AuthServer
	Wallet    WalletServer
}

// DefaultServiceConfigFromEnv returns the server config as parsed from the
// environment, with defaults for everything that is not security sensitive.
func DefaultServiceConfigFromEnv() Server {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("echo.listen_address", ":8080")
	v.SetDefault("echo.hide_internal_server_error_details", true)
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.pretty_print_console", false)
	v.SetDefault("transport.base_url", "https://api.circle.com/v1/w3s")
	v.SetDefault("transport.timeout", 30*time.Second)
	v.SetDefault("transport.max_retries", 3)
	v.SetDefault("wallet.default_sca_core", "circle_6900_v1")

	return Server{
		Echo: EchoServer{
			ListenAddress:                  v.GetString("echo.listen_address"),
			HideInternalServerErrorDetails: v.GetBool("echo.hide_internal_server_error_details"),
		},
		Logger: LoggerServer{
			Level:              v.GetString("logger.level"),
			PrettyPrintConsole: v.GetBool("logger.pretty_print_console"),
		},
		Transport: TransportServer{
			BaseURL:    v.GetString("transport.base_url"),
			APIKey:     v.GetString("transport.api_key"),
			Timeout:    v.GetDuration("transport.timeout"),
			MaxRetries: v.GetInt("transport.max_retries"),
		},
		Signer: SignerServer{
			PrivateKeyHex: v.GetString("signer.private_key"),
		},
		Auth: AuthServer{
			APIToken: v.GetString("auth.api_token"),
		},
		Wallet: WalletServer{
			DefaultScaCore: v.GetString("wallet.default_sca_core"),
		},
	}
}
