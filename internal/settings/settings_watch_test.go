package settings

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordingSetter struct {
	mu   sync.Mutex
	docs []CompanySettings
}

func (r *recordingSetter) SetDefaults(doc CompanySettings) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.docs = append(r.docs, doc)
}

func (r *recordingSetter) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.docs)
}

func TestWatchDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "statutory.yaml")
	require.NoError(t, os.WriteFile(path, embeddedDefaults, 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	target := &recordingSetter{}
	require.NoError(t, WatchDefaults(ctx, path, target, zap.NewNop()))

	t.Run("broken file keeps the previous defaults", func(t *testing.T) {
		require.NoError(t, os.WriteFile(path, []byte("working_day_policy: SOMETIMES\n"), 0o644))
		time.Sleep(200 * time.Millisecond)
		assert.Equal(t, 0, target.count())
	})

	t.Run("valid rewrite is applied", func(t *testing.T) {
		require.NoError(t, os.WriteFile(path, embeddedDefaults, 0o644))
		require.Eventually(t, func() bool { return target.count() > 0 }, 3*time.Second, 50*time.Millisecond)

		target.mu.Lock()
		defer target.mu.Unlock()
		assert.Equal(t, PolicyCalendar, target.docs[len(target.docs)-1].WorkingDayPolicy)
	})

	t.Run("other files in the directory are ignored", func(t *testing.T) {
		before := target.count()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
		time.Sleep(200 * time.Millisecond)
		assert.Equal(t, before, target.count())
	})
}

func TestService_SetDefaults(t *testing.T) {
	svc := NewService(nil, nil, MustEmbeddedDefaults(), zap.NewNop())

	doc := svc.Defaults()
	doc.WorkingDayPolicy = PolicyFixed26
	svc.SetDefaults(doc)

	assert.Equal(t, PolicyFixed26, svc.Defaults().WorkingDayPolicy)
}
