package workspace

import (
	"sync"

	"github.com/qiniu/wsmanager/pkg/models"
)

// SyncManager guards a Manager with a read/write mutex so it can be shared
// between goroutines.
type SyncManager struct {
	manager *Manager
	mutex   sync.RWMutex
}

// NewSyncManager wraps m. The caller must not use m directly afterwards.
func NewSyncManager(m *Manager) *SyncManager {
	return &SyncManager{manager: m}
}

func (s *SyncManager) GetWorkspace(name string) (models.Workspace, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.manager.GetWorkspace(name)
}

func (s *SyncManager) GetCurrentWorkspace() models.Workspace {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.manager.GetCurrentWorkspace()
}

func (s *SyncManager) CurrentName() string {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.manager.CurrentName()
}

func (s *SyncManager) SetCurrentWorkspace(name string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.manager.SetCurrentWorkspace(name)
}

func (s *SyncManager) AddWorkspace(ws models.Workspace) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.manager.AddWorkspace(ws)
}

// AddAndSelect registers ws and makes it current in one step, so no reader
// observes ws registered but not yet selected.
func (s *SyncManager) AddAndSelect(ws models.Workspace) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.manager.AddWorkspace(ws)
	// ws was just added, selection cannot fail
	_ = s.manager.SetCurrentWorkspace(ws.Name)
}

func (s *SyncManager) Count() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.manager.Count()
}

func (s *SyncManager) Names() []string {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.manager.Names()
}

func (s *SyncManager) Workspaces() []models.Workspace {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.manager.Workspaces()
}
