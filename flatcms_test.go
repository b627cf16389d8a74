package flatcms_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/flatcms"
	"github.com/aretw0/flatcms/pkg/core"
)

func TestInit(t *testing.T) {
	base := t.TempDir()

	repo, err := flatcms.Init(base, flatcms.WithTestMode(true))
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, repo.Write(ctx, "about.md", []byte("hi")))

	names, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"about.md"}, names)

	same := flatcms.ResolveStoreRoot(base, true, "", "")
	assert.Equal(t, filepath.Join(base, "cms", "test", "data"), same)
}

func TestInit_MustExist(t *testing.T) {
	_, err := flatcms.Init(t.TempDir(), flatcms.WithMustExist(true))
	assert.ErrorIs(t, err, core.ErrStoreUnavailable)
}
