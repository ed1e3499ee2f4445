package uia

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/stravex/internal/adapters/keyboard" //nolint:depguard // Clicks are injected by the keyboard adapter
	"go.trai.ch/stravex/internal/core/ports"
)

// NodeID is the unique identifier for the UI Automation desktop Graft node.
const NodeID graft.ID = "adapter.uia"

func init() {
	graft.Register(graft.Node[ports.Desktop]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{keyboard.PointerNodeID},
		Run: func(ctx context.Context) (ports.Desktop, error) {
			pointer, err := graft.Dep[ports.Pointer](ctx)
			if err != nil {
				return nil, err
			}
			return New(pointer), nil
		},
	})
}
