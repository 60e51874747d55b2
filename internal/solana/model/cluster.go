package model

import "fmt"

// Cluster names the Solana network a record was ingested from.
type Cluster string

const (
	MainnetBeta Cluster = "mainnet-beta"
	Devnet      Cluster = "devnet"
	Testnet     Cluster = "testnet"
)

// ParseCluster validates a cluster name.
func ParseCluster(s string) (Cluster, error) {
	switch c := Cluster(s); c {
	case MainnetBeta, Devnet, Testnet:
		return c, nil
	default:
		return "", fmt.Errorf("unknown cluster %q", s)
	}
}
