package rules

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/conform/internal/adapters/manifest"
	"go.trai.ch/conform/internal/core/ports"
)

// NodeID is the unique identifier for the rule registry Graft node.
const NodeID graft.ID = "rules.registry"

func init() {
	graft.Register(graft.Node[*Registry]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{manifest.NodeID},
		Run: func(ctx context.Context) (*Registry, error) {
			reader, err := graft.Dep[ports.ManifestReader](ctx)
			if err != nil {
				return nil, err
			}
			return NewRegistry(reader), nil
		},
	})
}
