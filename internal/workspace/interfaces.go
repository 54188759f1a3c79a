package workspace

import (
	"github.com/qiniu/wsmanager/pkg/models"
)

// Registry defines the interface for workspace lookup and selection
type Registry interface {
	// Lookup
	GetWorkspace(name string) (models.Workspace, bool)
	GetCurrentWorkspace() models.Workspace
	CurrentName() string

	// Mutation
	SetCurrentWorkspace(name string) error
	AddWorkspace(ws models.Workspace)

	// Listing
	Count() int
	Names() []string
	Workspaces() []models.Workspace
}

// Ensure both implementations satisfy the Registry interface
var (
	_ Registry = (*Manager)(nil)
	_ Registry = (*SyncManager)(nil)
)
