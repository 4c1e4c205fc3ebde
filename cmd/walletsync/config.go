package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/wallet/model"
)

type config struct {
	Networks  []string `long:"network" env:"WALLETSYNC_NETWORKS" env-delim:"," default:"mainnet" description:"enabled networks"`
	RPCURLs   []string `long:"rpc-url" env:"WALLETSYNC_RPC_URLS" env-delim:"," description:"network=url, repeated in failover order"`
	Accounts  []string `long:"account" env:"WALLETSYNC_ACCOUNTS" env-delim:"," description:"id=address, repeated"`
	StatePath string   `long:"state-path" env:"WALLETSYNC_STATE_PATH" default:"walletsync.db" description:"bbolt state file"`

	SignatureLimit int           `long:"signature-limit" env:"WALLETSYNC_SIGNATURE_LIMIT" default:"50" description:"signatures requested per account and network"`
	HistoryLimit   int           `long:"history-limit" env:"WALLETSYNC_HISTORY_LIMIT" default:"0" description:"stored transactions per account, 0 keeps all"`
	WorkerCount    int           `long:"workers" env:"WALLETSYNC_WORKERS" default:"8" description:"concurrent signature requests"`
	SyncInterval   time.Duration `long:"sync-interval" env:"WALLETSYNC_SYNC_INTERVAL" default:"1m" description:"pass interval"`
	LockTTL        time.Duration `long:"lock-ttl" env:"WALLETSYNC_LOCK_TTL" default:"15m" description:"age after which a held pass lock is taken over, 0 disables"`
	ResetLock      bool          `long:"reset-lock" env:"WALLETSYNC_RESET_LOCK" description:"clear a stuck pass lock at startup"`

	CapabilityHeader  string        `long:"capability-header" env:"WALLETSYNC_CAPABILITY_HEADER" default:"X-Archive-Lookup" description:"header toggled per method"`
	CapabilityMethods []string      `long:"capability-method" env:"WALLETSYNC_CAPABILITY_METHODS" env-delim:"," description:"methods sent with the capability enabled"`
	HTTPTimeout       time.Duration `long:"http-timeout" env:"WALLETSYNC_HTTP_TIMEOUT" default:"30s" description:"rpc request timeout"`
	RateLimit         int           `long:"rate-limit" env:"WALLETSYNC_RATE_LIMIT" default:"0" description:"requests per second per endpoint, 0 is unlimited"`

	ClickhouseDSN      string        `long:"clickhouse-dsn" env:"WALLETSYNC_CLICKHOUSE_DSN" description:"archive transactions to clickhouse when set"`
	ArchiveFlushSize   int           `long:"archive-flush-size" env:"WALLETSYNC_ARCHIVE_FLUSH_SIZE" default:"500" description:"archive batch size"`
	ArchiveFlushPeriod time.Duration `long:"archive-flush-period" env:"WALLETSYNC_ARCHIVE_FLUSH_PERIOD" default:"5s" description:"archive flush interval"`
	ArchiveRPS         int           `long:"archive-rps" env:"WALLETSYNC_ARCHIVE_RPS" default:"0" description:"archive flushes per second, 0 is unlimited"`

	HTTPAddr    string `long:"http-addr" env:"WALLETSYNC_HTTP_ADDR" default:":8080" description:"control api addr"`
	GRPCAddr    string `long:"grpc-addr" env:"WALLETSYNC_GRPC_ADDR" default:":8081" description:"grpc health addr"`
	MetricsAddr string `long:"metrics-addr" env:"WALLETSYNC_METRICS_ADDR" default:":9090" description:"prometheus addr"`
}

func parseNetworks(raw []string) ([]model.Network, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("at least one network is required")
	}
	out := make([]model.Network, 0, len(raw))
	seen := make(map[model.Network]struct{}, len(raw))
	for _, s := range raw {
		n, err := model.ParseNetwork(s)
		if err != nil {
			return nil, err
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out, nil
}

// parseEndpoints groups network=url pairs, keeping the order given per network.
func parseEndpoints(raw []string, networks []model.Network) (map[model.Network][]string, error) {
	out := make(map[model.Network][]string, len(networks))
	for _, pair := range raw {
		name, url, err := splitPair(pair)
		if err != nil {
			return nil, fmt.Errorf("parse rpc url: %w", err)
		}
		network, err := model.ParseNetwork(name)
		if err != nil {
			return nil, fmt.Errorf("parse rpc url %q: %w", pair, err)
		}
		out[network] = append(out[network], url)
	}
	for _, n := range networks {
		if len(out[n]) == 0 {
			return nil, fmt.Errorf("no rpc url configured for network %s", n)
		}
	}
	return out, nil
}

func parseAccounts(raw []string) ([]model.Account, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("at least one account is required")
	}
	out := make([]model.Account, 0, len(raw))
	for _, pair := range raw {
		id, address, err := splitPair(pair)
		if err != nil {
			return nil, fmt.Errorf("parse account: %w", err)
		}
		acc := model.Account{ID: id, Address: address}
		if err := acc.Validate(); err != nil {
			return nil, err
		}
		out = append(out, acc)
	}
	return out, nil
}

func splitPair(s string) (string, string, error) {
	key, value, ok := strings.Cut(strings.TrimSpace(s), "=")
	key, value = strings.TrimSpace(key), strings.TrimSpace(value)
	if !ok || key == "" || value == "" {
		return "", "", fmt.Errorf("expected key=value, got %q", s)
	}
	return key, value, nil
}

// engineLockTTL maps the flag, where 0 disables takeover, onto the engine setting.
func engineLockTTL(d time.Duration) time.Duration {
	if d <= 0 {
		return -1
	}
	return d
}
