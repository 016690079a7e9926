package probe

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github/w3kit/go-smart-account/internal/config"
	"github/w3kit/go-smart-account/internal/util/command"
)

const probeTimeout = 5 * time.Second

func New() *cobra.Command {
	return command.NewSubcommandGroup("probe",
		newLiveness(),
		newReadiness(),
	)
}

func newLiveness() *cobra.Command {
	return &cobra.Command{
		Use:   "liveness",
		Short: "Checks the /-/healthy endpoint",
		Run: func(_ *cobra.Command, _ []string) {
			probeManagementEndpoint("/-/healthy")
		},
	}
}

func newReadiness() *cobra.Command {
	return &cobra.Command{
		Use:   "readiness",
		Short: "Checks the /-/ready endpoint",
		Run: func(_ *cobra.Command, _ []string) {
			probeManagementEndpoint("/-/ready")
		},
	}
}

func probeManagementEndpoint(path string) {
	cfg := config.DefaultServiceConfigFromEnv()

	listenAddress := cfg.Echo.ListenAddress
	if strings.HasPrefix(listenAddress, ":") {
		listenAddress = "localhost" + listenAddress
	}

	client := &http.Client{Timeout: probeTimeout}

	//nolint:noctx // one-shot probe binary, the client timeout bounds it
	res, err := client.Get("http://" + listenAddress + path)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	defer res.Body.Close()

	body, _ := io.ReadAll(res.Body)
	fmt.Println(string(body))

	if res.StatusCode != http.StatusOK {
		os.Exit(1)
	}
}
