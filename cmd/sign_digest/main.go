//go:build tools
// +build tools

package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github/w3kit/go-smart-account/internal/account/signature"
	"github/w3kit/go-smart-account/internal/account/signer"
	"github/w3kit/go-smart-account/internal/config"
)

func main() {
	var (
		messageHash  = flag.String("hash", "", "0x-prefixed 32-byte message hash to sign")
		hasUserOpGas = flag.Bool("userop", false, "Tag the signature for a gas-bearing user operation")
	)
	flag.Parse()

	if *messageHash == "" {
		fmt.Println("Error: -hash is required")
		flag.Usage()
		os.Exit(1)
	}

	cfg := config.DefaultServiceConfigFromEnv()
	if cfg.Signer.PrivateKeyHex == "" {
		fmt.Println("Error: SIGNER_PRIVATE_KEY is not set")
		os.Exit(1)
	}

	localSigner, err := signer.NewLocalSigner(cfg.Signer.PrivateKeyHex)
	if err != nil {
		fmt.Printf("Error creating signer: %v\n", err)
		os.Exit(1)
	}

	encoder, err := signature.NewEncoder(localSigner)
	if err != nil {
		fmt.Printf("Error creating encoder: %v\n", err)
		os.Exit(1)
	}

	packed, err := encoder.SignMessage(context.Background(), *messageHash, *hasUserOpGas)
	if err != nil {
		fmt.Printf("Error signing digest: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(packed)
}
