package scaffold

import (
	"context"
	"errors"
	"io/fs"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kjuulh/mkcomponent/internal/templates"
	"github.com/kjuulh/mkcomponent/internal/testutil"
)

func TestGeneratorCreateDirectory(t *testing.T) {
	t.Parallel()

	t.Run("creates directory", func(t *testing.T) {
		memFs := afero.NewMemMapFs()
		ui, logs := testutil.Logger()

		err := NewGenerator(memFs, ui).CreateDirectory(context.Background(), "MyComponent")
		require.NoError(t, err)

		isDir, err := afero.IsDir(memFs, "MyComponent")
		require.NoError(t, err)
		assert.True(t, isDir)
		assert.Contains(t, logs.String(), "Directory created successfully")
	})

	t.Run("existing directory", func(t *testing.T) {
		osFs := afero.NewBasePathFs(afero.NewOsFs(), t.TempDir())
		require.NoError(t, osFs.Mkdir("MyComponent", 0o755))
		ui, logs := testutil.Logger()

		err := NewGenerator(osFs, ui).CreateDirectory(context.Background(), "MyComponent")

		var dirErr *DirectoryCreationError
		require.ErrorAs(t, err, &dirErr)
		assert.Equal(t, "MyComponent", dirErr.Name)
		assert.True(t, errors.Is(err, fs.ErrExist))
		assert.Contains(t, logs.String(), "Error while creating directory")
	})

	t.Run("empty name", func(t *testing.T) {
		ui, _ := testutil.Logger()

		err := NewGenerator(afero.NewMemMapFs(), ui).CreateDirectory(context.Background(), "")

		var emptyErr *EmptyNameError
		require.ErrorAs(t, err, &emptyErr)
		assert.ErrorIs(t, err, ErrEmptyName)
	})
}

func TestGeneratorCreateFiles(t *testing.T) {
	t.Parallel()

	t.Run("writes the four files", func(t *testing.T) {
		root := t.TempDir()
		osFs := afero.NewBasePathFs(afero.NewOsFs(), root)
		require.NoError(t, osFs.Mkdir("MyComponent", 0o755))
		ui, logs := testutil.Logger()

		err := NewGenerator(osFs, ui).CreateFiles(context.Background(), "MyComponent")
		require.NoError(t, err)

		testutil.Golden(t, "testdata/single_component/expected").Compare(root)
		assert.Contains(t, logs.String(), "File created successfully")
	})

	t.Run("missing directory", func(t *testing.T) {
		osFs := afero.NewBasePathFs(afero.NewOsFs(), t.TempDir())
		ui, logs := testutil.Logger()

		err := NewGenerator(osFs, ui).CreateFiles(context.Background(), "MyComponent")

		var writeErr *templates.FileWriteError
		require.ErrorAs(t, err, &writeErr)
		assert.True(t, errors.Is(err, fs.ErrNotExist))
		assert.Contains(t, logs.String(), "Error while creating file")
	})

	t.Run("empty name", func(t *testing.T) {
		ui, _ := testutil.Logger()

		err := NewGenerator(afero.NewMemMapFs(), ui).CreateFiles(context.Background(), "")
		assert.ErrorIs(t, err, ErrEmptyName)
	})
}
