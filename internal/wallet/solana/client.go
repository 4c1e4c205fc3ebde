package solana

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/wallet/model"
	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/wallet/rpc"
	"go.uber.org/zap"
)

const defaultCommitment = "confirmed"

// Client issues typed Solana RPC calls through one pipeline per network.
type Client struct {
	transports map[model.Network]rpc.Transport
	commitment string
	logger     *zap.Logger
}

// NewClient builds a client over per-network transports.
func NewClient(transports map[model.Network]rpc.Transport, logger *zap.Logger) (*Client, error) {
	if len(transports) == 0 {
		return nil, errors.New("at least one network transport is required")
	}
	return &Client{
		transports: transports,
		commitment: defaultCommitment,
		logger:     logger,
	}, nil
}

// Networks lists the networks the client can reach.
func (c *Client) Networks() []model.Network {
	out := make([]model.Network, 0, len(c.transports))
	for network := range c.transports {
		out = append(out, network)
	}
	return out
}

func (c *Client) transport(network model.Network) (rpc.Transport, error) {
	t, ok := c.transports[network]
	if !ok {
		return nil, fmt.Errorf("no transport configured for network %s", network)
	}
	return t, nil
}

func (c *Client) call(ctx context.Context, network model.Network, req *rpc.Request) (*rpc.Response, error) {
	t, err := c.transport(network)
	if err != nil {
		return nil, err
	}
	resp, err := t.Call(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%s on %s: %w", req.Method(), network, err)
	}
	return resp, nil
}

// LatestSignatures returns up to limit most recent signatures for address, newest first.
func (c *Client) LatestSignatures(ctx context.Context, network model.Network, address string, limit int) ([]string, error) {
	resp, err := c.call(ctx, network, rpc.NewRequest("getSignaturesForAddress", address, map[string]any{
		"limit":      limit,
		"commitment": c.commitment,
	}))
	if err != nil {
		return nil, err
	}
	var infos []SignatureInfo
	if err := resp.Decode(0, &infos); err != nil {
		return nil, fmt.Errorf("decode signatures for %s: %w", address, err)
	}
	sigs := make([]string, 0, len(infos))
	for _, info := range infos {
		if info.Signature != "" {
			sigs = append(sigs, info.Signature)
		}
	}
	return sigs, nil
}

// FetchTransactions loads all signatures in one batched request. Signatures
// whose entry carries an error or a null result are absent from the map;
// entries that cannot be decoded are present with a nil value.
func (c *Client) FetchTransactions(ctx context.Context, network model.Network, signatures []string) (map[string]*Transaction, error) {
	out := make(map[string]*Transaction, len(signatures))
	if len(signatures) == 0 {
		return out, nil
	}

	calls := make([]rpc.Call, len(signatures))
	for i, sig := range signatures {
		calls[i] = rpc.Call{Method: "getTransaction", Params: []any{sig, map[string]any{
			"encoding":                       "jsonParsed",
			"commitment":                     c.commitment,
			"maxSupportedTransactionVersion": 0,
		}}}
	}
	resp, err := c.call(ctx, network, rpc.NewBatchRequest(calls...))
	if err != nil {
		return nil, err
	}
	if len(resp.Results) != len(signatures) {
		return nil, fmt.Errorf("getTransaction batch on %s: got %d results for %d signatures", network, len(resp.Results), len(signatures))
	}

	for i, sig := range signatures {
		res := resp.Results[i]
		if res.Error != nil {
			c.logger.Debug("transaction unavailable", zap.String("signature", sig), zap.Error(res.Error))
			continue
		}
		if isNull(res.Result) {
			continue
		}
		var tx Transaction
		if err := json.Unmarshal(res.Result, &tx); err != nil {
			c.logger.Warn("undecodable transaction", zap.String("signature", sig), zap.Error(err))
			out[sig] = nil
			continue
		}
		out[sig] = &tx
	}
	return out, nil
}

// GetBalance returns the lamport balance of address.
func (c *Client) GetBalance(ctx context.Context, network model.Network, address string) (uint64, error) {
	resp, err := c.call(ctx, network, rpc.NewRequest("getBalance", address, map[string]any{
		"commitment": c.commitment,
	}))
	if err != nil {
		return 0, err
	}
	var out contextValue[uint64]
	if err := resp.Decode(0, &out); err != nil {
		return 0, fmt.Errorf("decode balance of %s: %w", address, err)
	}
	return out.Value, nil
}

// GetTokenAccounts lists token accounts of owner under both token programs.
func (c *Client) GetTokenAccounts(ctx context.Context, network model.Network, owner string) ([]TokenAccount, error) {
	programs := []string{TokenProgramID, Token2022ProgramID}
	calls := make([]rpc.Call, len(programs))
	for i, program := range programs {
		calls[i] = rpc.Call{Method: "getTokenAccountsByOwner", Params: []any{
			owner,
			map[string]any{"programId": program},
			map[string]any{"encoding": "jsonParsed", "commitment": c.commitment},
		}}
	}
	resp, err := c.call(ctx, network, rpc.NewBatchRequest(calls...))
	if err != nil {
		return nil, err
	}

	var accounts []TokenAccount
	for i := range programs {
		var raw contextValue[[]rawTokenAccount]
		if err := resp.Decode(i, &raw); err != nil {
			return nil, fmt.Errorf("decode token accounts of %s: %w", owner, err)
		}
		for _, ra := range raw.Value {
			info := ra.Account.Data.Parsed.Info
			accounts = append(accounts, TokenAccount{
				Pubkey:  ra.Pubkey,
				Mint:    info.Mint,
				Owner:   info.Owner,
				Program: ra.Account.Data.Program,
				Amount:  info.TokenAmount,
			})
		}
	}
	return accounts, nil
}

func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
