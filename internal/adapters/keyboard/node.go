package keyboard

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/stravex/internal/core/ports"
)

const (
	// DeviceNodeID is the unique identifier for the shared input device Graft node.
	DeviceNodeID graft.ID = "adapter.input"
	// NodeID is the unique identifier for the keyboard Graft node.
	NodeID graft.ID = "adapter.keyboard"
	// PointerNodeID is the unique identifier for the pointer Graft node.
	PointerNodeID graft.ID = "adapter.pointer"
)

func init() {
	// Keys and clicks share one device so they serialize on one lock.
	graft.Register(graft.Node[*Keyboard]{
		ID:        DeviceNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Keyboard, error) {
			return New(), nil
		},
	})

	graft.Register(graft.Node[ports.Keyboard]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{DeviceNodeID},
		Run: func(ctx context.Context) (ports.Keyboard, error) {
			device, err := graft.Dep[*Keyboard](ctx)
			if err != nil {
				return nil, err
			}
			return device, nil
		},
	})

	graft.Register(graft.Node[ports.Pointer]{
		ID:        PointerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{DeviceNodeID},
		Run: func(ctx context.Context) (ports.Pointer, error) {
			device, err := graft.Dep[*Keyboard](ctx)
			if err != nil {
				return nil, err
			}
			return device, nil
		},
	})
}
