package testutil

import (
	"bytes"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// GoldenFixture compares a scaffolded directory against a checked in expected directory. Either way they have to match: if the scaffolder generated more files than expected it fails, if their content differs the test fails.
type GoldenFixture struct {
	t            *testing.T
	expectedPath string
}

func Golden(t *testing.T, expectedPath string) *GoldenFixture {
	t.Helper()

	return &GoldenFixture{
		t:            t,
		expectedPath: expectedPath,
	}
}

// Compare walks actualPath and checks it against the expected files
func (g *GoldenFixture) Compare(actualPath string) {
	t := g.t
	t.Helper()

	actualFiles, err := getFiles(actualPath)
	require.NoError(t, err, "failed to get actual files")

	expectedFiles, err := getFiles(g.expectedPath)
	require.NoError(t, err, "failed to get expected files")

	slices.Sort(actualFiles)
	slices.Sort(expectedFiles)

	assert.Equal(
		t,
		makeRelative(g.expectedPath, expectedFiles),
		makeRelative(actualPath, actualFiles),
		"expected and actual files didn't match",
	)

	compareFiles(t,
		g.expectedPath, actualPath,
		expectedFiles, actualFiles,
	)
}

func compareFiles(t *testing.T, expectedPath, actualPath string, expectedFiles, actualFiles []string) {
	t.Helper()

	expectedRelativeFiles := makeRelative(expectedPath, expectedFiles)
	actualRelativeFiles := makeRelative(actualPath, actualFiles)

	for expectedIndex, expectedRelativeFile := range expectedRelativeFiles {
		actualIndex := slices.Index(actualRelativeFiles, expectedRelativeFile)
		if actualIndex == -1 {
			continue
		}

		expectedFilePath := expectedFiles[expectedIndex]
		actualFilePath := actualFiles[actualIndex]

		expectedFile, err := os.ReadFile(expectedFilePath)
		require.NoError(t, err, "failed to read expected file")

		actualFile, err := os.ReadFile(actualFilePath)
		require.NoError(t, err, "failed to read actual file")

		assert.Equal(t,
			string(expectedFile), string(actualFile),
			"expected and actual file doesn't match\n\texpected path=%s\n\t  actual path=%s",
			expectedFilePath, actualFilePath,
		)
	}
}

// makeRelative, files are prefixed with either the actual or the expected root, this strips that prefix so they can be compared.
func makeRelative(prefix string, filePaths []string) []string {
	output := make([]string, 0, len(filePaths))
	for _, filePath := range filePaths {
		relative, err := filepath.Rel(prefix, filePath)
		if err != nil {
			relative = strings.TrimPrefix(strings.TrimPrefix(filePath, prefix), "/")
		}

		output = append(output, filepath.ToSlash(relative))
	}
	return output
}

func getFiles(root string) ([]string, error) {
	actualFiles := make([]string, 0)
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.Type().IsRegular() {
			actualFiles = append(actualFiles, path)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return actualFiles, nil
}

// Logger returns a ui logger, and the buffer it writes its text output to
func Logger() (*slog.Logger, *SyncBuffer) {
	buf := &SyncBuffer{}

	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})), buf
}

// SyncBuffer is a bytes.Buffer that can be shared between the goroutines of a scaffold run
type SyncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *SyncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.Write(p)
}

func (b *SyncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.String()
}

// FailingFs wraps an afero.Fs, failing any file open for the configured paths with os.ErrPermission. It also records every path opened for writing.
type FailingFs struct {
	afero.Fs

	mu       sync.Mutex
	failOn   map[string]struct{}
	attempts []string
}

func NewFailingFs(base afero.Fs, failOn ...string) *FailingFs {
	paths := make(map[string]struct{}, len(failOn))
	for _, p := range failOn {
		paths[filepath.Clean(p)] = struct{}{}
	}

	return &FailingFs{
		Fs:     base,
		failOn: paths,
	}
}

func (f *FailingFs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	name = filepath.Clean(name)

	f.mu.Lock()
	if flag&(os.O_WRONLY|os.O_RDWR) != 0 {
		f.attempts = append(f.attempts, name)
	}
	_, fail := f.failOn[name]
	f.mu.Unlock()

	if fail {
		return nil, &os.PathError{Op: "open", Path: name, Err: os.ErrPermission}
	}

	return f.Fs.OpenFile(name, flag, perm)
}

// Attempts returns the paths opened for writing, in order
func (f *FailingFs) Attempts() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	return slices.Clone(f.attempts)
}
