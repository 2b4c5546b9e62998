package file_test

import (
	"errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planvet/planvet/internal/infra/persistence/file"
)

func assertNoTempFiles(t *testing.T, fs afero.Fs, dir string) {
	t.Helper()
	entries, _ := afero.ReadDir(fs, dir)
	for _, entry := range entries {
		if len(entry.Name()) >= 5 && entry.Name()[:5] == ".tmp-" {
			t.Errorf("temp file left behind: %s", entry.Name())
		}
	}
}

func TestWriteFileAtomic(t *testing.T) {
	tests := []struct {
		name string
		path string
		data []byte
	}{
		{"new file in new directory", "store/sessions/a.json", []byte(`{"id":"a"}`)},
		{"deeply nested directory", "a/b/c/d/e.json", []byte("nested")},
		{"empty payload", "empty.json", []byte{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()

			require.NoError(t, file.WriteFileAtomic(fs, tt.path, tt.data))

			content, err := afero.ReadFile(fs, tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.data, content)
			assertNoTempFiles(t, fs, "store/sessions")
		})
	}
}

func TestWriteFileAtomic_ReplacesExisting(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "s/rec.json", []byte("old"), 0o644))

	require.NoError(t, file.WriteFileAtomic(fs, "s/rec.json", []byte("new")))

	content, err := afero.ReadFile(fs, "s/rec.json")
	require.NoError(t, err)
	assert.Equal(t, "new", string(content))
	assertNoTempFiles(t, fs, "s")
}

// renameFailFs fails every rename, exercising the cleanup path.
type renameFailFs struct {
	afero.Fs
}

func (f *renameFailFs) Rename(oldname, newname string) error {
	return errors.New("rename failed")
}

func TestWriteFileAtomic_RenameFailureCleansUp(t *testing.T) {
	fs := &renameFailFs{Fs: afero.NewMemMapFs()}

	err := file.WriteFileAtomic(fs, "s/rec.json", []byte("content"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "rename")
	assertNoTempFiles(t, fs, "s")

	// The target must not exist either; a failed write never looks like a
	// success.
	exists, statErr := afero.Exists(fs, "s/rec.json")
	require.NoError(t, statErr)
	assert.False(t, exists)
}
