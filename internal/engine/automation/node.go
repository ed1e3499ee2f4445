package automation

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/stravex/internal/adapters/keyboard" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/stravex/internal/adapters/uia"      //nolint:depguard // Wired in engine wiring
	"go.trai.ch/stravex/internal/core/ports"
)

// NodeID is the unique identifier for the automation driver Graft node.
const NodeID graft.ID = "engine.automation"

func init() {
	graft.Register(graft.Node[ports.Automation]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			uia.NodeID,
			keyboard.NodeID,
		},
		Run: func(ctx context.Context) (ports.Automation, error) {
			desktop, err := graft.Dep[ports.Desktop](ctx)
			if err != nil {
				return nil, err
			}

			kb, err := graft.Dep[ports.Keyboard](ctx)
			if err != nil {
				return nil, err
			}

			return NewDriver(desktop, kb), nil
		},
	})
}
