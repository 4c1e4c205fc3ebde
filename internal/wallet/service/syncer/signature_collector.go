package syncer

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/wallet/model"
	"github.com/goodnatureofminers/blockinsight7000-walletsync/pkg/workerpool"
	"go.uber.org/zap"
)

// SignatureIndex holds the outcome of one collection round.
type SignatureIndex struct {
	// ByNetwork lists new signatures per network, deduplicated across accounts.
	ByNetwork map[model.Network][]string
	// ByAccount lists new signatures per account and network, in RPC order.
	ByAccount map[string]map[model.Network][]string
	// Window is the full latest list per account and network.
	Window map[string]map[model.Network][]string
}

// Empty reports whether no new signatures were found.
func (i SignatureIndex) Empty() bool {
	for _, sigs := range i.ByNetwork {
		if len(sigs) > 0 {
			return false
		}
	}
	return true
}

type collectTask struct {
	account model.Account
	network model.Network
	known   map[string]struct{}
}

type collectResult struct {
	latest []string
	fresh  []string
}

type signatureCollector struct {
	source   ChainSource
	networks []model.Network
	limit    int
	workers  int
	logger   *zap.Logger
}

// Collect asks every (account, network) pair for its latest signatures and
// subtracts the known set recorded in state.
func (c *signatureCollector) Collect(ctx context.Context, accounts []model.Account, state model.SyncState) (SignatureIndex, error) {
	tasks := make([]collectTask, 0, len(accounts)*len(c.networks))
	for _, account := range accounts {
		for _, network := range c.networks {
			tasks = append(tasks, collectTask{
				account: account,
				network: network,
				known:   state.KnownSignatures(account.ID, network),
			})
		}
	}

	results, err := workerpool.Map(ctx, c.workers, tasks, func(ctx context.Context, task collectTask) (collectResult, error) {
		latest, err := c.source.LatestSignatures(ctx, task.network, task.account.Address, c.limit)
		if err != nil {
			return collectResult{}, fmt.Errorf("collect signatures of %s on %s: %w", task.account.ID, task.network, err)
		}
		return collectResult{latest: latest, fresh: newSignatures(latest, task.known)}, nil
	})
	if err != nil {
		return SignatureIndex{}, err
	}

	index := SignatureIndex{
		ByNetwork: make(map[model.Network][]string),
		ByAccount: make(map[string]map[model.Network][]string, len(accounts)),
		Window:    make(map[string]map[model.Network][]string, len(accounts)),
	}
	seen := make(map[model.Network]map[string]struct{})
	for i, task := range tasks {
		res := results[i]
		id := task.account.ID
		if index.Window[id] == nil {
			index.Window[id] = make(map[model.Network][]string)
		}
		index.Window[id][task.network] = res.latest
		if len(res.fresh) == 0 {
			continue
		}
		if index.ByAccount[id] == nil {
			index.ByAccount[id] = make(map[model.Network][]string)
		}
		index.ByAccount[id][task.network] = res.fresh

		if seen[task.network] == nil {
			seen[task.network] = make(map[string]struct{})
		}
		for _, sig := range res.fresh {
			if _, ok := seen[task.network][sig]; ok {
				continue
			}
			seen[task.network][sig] = struct{}{}
			index.ByNetwork[task.network] = append(index.ByNetwork[task.network], sig)
		}
		c.logger.Debug("new signatures",
			zap.String("account", id),
			zap.String("network", string(task.network)),
			zap.Int("count", len(res.fresh)),
		)
	}
	return index, nil
}

func newSignatures(latest []string, known map[string]struct{}) []string {
	var out []string
	dup := make(map[string]struct{}, len(latest))
	for _, sig := range latest {
		if _, ok := known[sig]; ok {
			continue
		}
		if _, ok := dup[sig]; ok {
			continue
		}
		dup[sig] = struct{}{}
		out = append(out, sig)
	}
	return out
}

// mergeKnown keeps the window first, then older known entries, up to max.
// Window entries that were new and not resolved stay unknown.
func mergeKnown(previous, window []string, resolved map[string]struct{}, max int) []string {
	prevSet := make(map[string]struct{}, len(previous))
	for _, sig := range previous {
		prevSet[sig] = struct{}{}
	}
	out := make([]string, 0, len(window)+len(previous))
	added := make(map[string]struct{}, len(window)+len(previous))
	for _, sig := range window {
		_, known := prevSet[sig]
		_, ok := resolved[sig]
		if !known && !ok {
			continue
		}
		if _, dup := added[sig]; dup {
			continue
		}
		added[sig] = struct{}{}
		out = append(out, sig)
	}
	for _, sig := range previous {
		if _, dup := added[sig]; dup {
			continue
		}
		added[sig] = struct{}{}
		out = append(out, sig)
	}
	if max > 0 && len(out) > max {
		out = out[:max]
	}
	return out
}
