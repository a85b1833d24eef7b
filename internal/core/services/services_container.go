package services

import (
	portsrepo "github.com/Namer-kimhyojin/Budget-sub000/internal/core/ports/repositories"
	portssvc "github.com/Namer-kimhyojin/Budget-sub000/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	relocation := NewRelocationService(repos.NodeRepo)

	container.Node = NewNodeService(repos.NodeRepo, repos.EntryRepo)
	container.Tree = NewTreeService(repos.NodeRepo)
	container.Reorder = NewReorderService(repos.NodeRepo)
	container.Relocation = relocation
	container.Clipboard = NewClipboardService(repos.NodeRepo, relocation)
	container.Aggregation = NewAggregationService(repos.NodeRepo, repos.EntryRepo)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.NodeSvcFacade        = (*NodeService)(nil)
	_ portssvc.TreeSvcFacade        = (*TreeService)(nil)
	_ portssvc.ReorderSvcFacade     = (*ReorderService)(nil)
	_ portssvc.RelocationSvcFacade  = (*RelocationService)(nil)
	_ portssvc.ClipboardSvcFacade   = (*ClipboardService)(nil)
	_ portssvc.AggregationSvcFacade = (*AggregationService)(nil)
)
