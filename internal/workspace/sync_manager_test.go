package workspace

import (
	"fmt"
	"sync"
	"testing"

	"github.com/qiniu/wsmanager/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyncManagerDelegates(t *testing.T) {
	m, err := NewManager([]models.Workspace{
		{Name: "a", Path: "/p1"},
		{Name: "b", Path: "/p2"},
	}, "a")
	require.NoError(t, err)
	s := NewSyncManager(m)

	require.NoError(t, s.SetCurrentWorkspace("b"))
	assert.Equal(t, "b", s.GetCurrentWorkspace().Name)

	err = s.SetCurrentWorkspace("c")
	assert.True(t, IsNotFound(err))
	assert.Equal(t, "b", s.CurrentName())

	s.AddWorkspace(models.Workspace{Name: "c", Path: "/p3"})
	ws, ok := s.GetWorkspace("c")
	require.True(t, ok)
	assert.Equal(t, "/p3", ws.Path)
	assert.Equal(t, 3, s.Count())
	assert.Equal(t, []string{"a", "b", "c"}, s.Names())
	assert.Len(t, s.Workspaces(), 3)
	assert.Equal(t, "b", s.CurrentName())
}

func TestSyncManagerAddAndSelect(t *testing.T) {
	s := NewSyncManager(FromSingleWorkspace(models.Workspace{Name: "a", Path: "/p1"}))

	s.AddAndSelect(models.Workspace{Name: "b", Path: "/p2"})

	assert.Equal(t, "b", s.CurrentName())
	assert.Equal(t, "/p2", s.GetCurrentWorkspace().Path)
}

func TestSyncManagerConcurrentAccess(t *testing.T) {
	s := NewSyncManager(FromSingleWorkspace(models.Workspace{Name: "ws-0", Path: "/0"}))

	const workers = 8
	var wg sync.WaitGroup
	for i := 1; i <= workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			name := fmt.Sprintf("ws-%d", i)
			s.AddWorkspace(models.Workspace{Name: name, Path: fmt.Sprintf("/%d", i)})
			_ = s.SetCurrentWorkspace(name)
			_ = s.GetCurrentWorkspace()
			_ = s.Names()
		}(i)
	}
	wg.Wait()

	assert.Equal(t, workers+1, s.Count())
	_, ok := s.GetWorkspace(s.CurrentName())
	assert.True(t, ok, "current selection must stay registered")
}
