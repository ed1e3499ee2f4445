package watcher

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/stravex/internal/adapters/logger"
	"go.trai.ch/stravex/internal/core/ports"
)

// NodeID is the unique identifier for the export folder watcher Graft node.
// The node is not cacheable: a watcher serves exactly one run.
const NodeID graft.ID = "adapter.watcher"

func init() {
	graft.Register(graft.Node[ports.Watcher]{
		ID:        NodeID,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Watcher, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewWatcher(log)
		},
	})
}
