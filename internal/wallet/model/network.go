package model

import (
	"fmt"
	"strings"
)

type Network string

var (
	Mainnet  Network = "mainnet"
	Devnet   Network = "devnet"
	Testnet  Network = "testnet"
	Localnet Network = "localnet"
)

// ParseNetwork resolves a configured network name.
func ParseNetwork(s string) (Network, error) {
	switch n := Network(strings.ToLower(strings.TrimSpace(s))); n {
	case Mainnet, Devnet, Testnet, Localnet:
		return n, nil
	default:
		return "", fmt.Errorf("unknown network %q", s)
	}
}
