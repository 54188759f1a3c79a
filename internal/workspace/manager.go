package workspace

import (
	"fmt"
	"sort"

	"github.com/qiniu/wsmanager/pkg/models"
	"github.com/qiniu/x/log"
)

// Manager is an in-memory registry of workspaces keyed by name, with one
// of them selected as current.
//
// Manager is not safe for concurrent use; wrap it in a SyncManager when it
// is shared between goroutines.
type Manager struct {
	// key: workspace name
	workspaces map[string]models.Workspace
	current    string
}

// FromSingleWorkspace creates a manager holding only ws, which is also the
// current workspace.
func FromSingleWorkspace(ws models.Workspace) *Manager {
	return &Manager{
		workspaces: map[string]models.Workspace{ws.Name: ws},
		current:    ws.Name,
	}
}

// NewManager creates a manager from a list of workspaces and selects
// defaultWorkspace as current. Workspaces sharing a name overwrite each
// other, the later one wins.
//
// A *NotFoundError is returned when no element of workspaces is named
// defaultWorkspace.
func NewManager(workspaces []models.Workspace, defaultWorkspace string) (*Manager, error) {
	found := false
	for _, ws := range workspaces {
		if ws.Name == defaultWorkspace {
			found = true
			break
		}
	}
	if !found {
		return nil, NewNotFoundError(defaultWorkspace)
	}

	m := &Manager{
		workspaces: make(map[string]models.Workspace, len(workspaces)),
		current:    defaultWorkspace,
	}
	for _, ws := range workspaces {
		if _, exists := m.workspaces[ws.Name]; exists {
			log.Warnf("Workspace %s defined more than once, keeping path %s", ws.Name, ws.Path)
		}
		m.workspaces[ws.Name] = ws
	}
	return m, nil
}

// GetWorkspace returns the workspace with the given name.
func (m *Manager) GetWorkspace(name string) (models.Workspace, bool) {
	ws, ok := m.workspaces[name]
	return ws, ok
}

// SetCurrentWorkspace selects name as the current workspace. If name is not
// registered a *NotFoundError is returned and the selection is unchanged.
func (m *Manager) SetCurrentWorkspace(name string) error {
	if _, ok := m.workspaces[name]; !ok {
		return NewNotFoundError(name)
	}
	if m.current != name {
		log.Debugf("Switching current workspace: %s -> %s", m.current, name)
	}
	m.current = name
	return nil
}

// GetCurrentWorkspace returns the current workspace.
//
// Every constructor leaves the manager with a valid selection, so a missing
// entry means the manager was used as a zero value; that is a programming
// error and GetCurrentWorkspace panics.
func (m *Manager) GetCurrentWorkspace() models.Workspace {
	ws, ok := m.workspaces[m.current]
	if !ok {
		panic(fmt.Sprintf("workspace: current workspace %q is not registered", m.current))
	}
	return ws
}

// AddWorkspace registers ws, replacing any workspace with the same name.
// The current selection is never changed, not even when the manager was
// empty.
func (m *Manager) AddWorkspace(ws models.Workspace) {
	if m.workspaces == nil {
		m.workspaces = make(map[string]models.Workspace)
	}
	if old, exists := m.workspaces[ws.Name]; exists {
		log.Debugf("Replacing workspace %s: %s -> %s", ws.Name, old.Path, ws.Path)
	}
	m.workspaces[ws.Name] = ws
}

// CurrentName returns the name of the current workspace.
func (m *Manager) CurrentName() string {
	return m.current
}

// Count returns the number of registered workspaces.
func (m *Manager) Count() int {
	return len(m.workspaces)
}

// Names returns the registered names in sorted order.
func (m *Manager) Names() []string {
	names := make([]string, 0, len(m.workspaces))
	for name := range m.workspaces {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Workspaces returns a copy of all registered workspaces sorted by name.
func (m *Manager) Workspaces() []models.Workspace {
	result := make([]models.Workspace, 0, len(m.workspaces))
	for _, name := range m.Names() {
		result = append(result, m.workspaces[name])
	}
	return result
}
