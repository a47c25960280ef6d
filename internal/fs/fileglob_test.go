package fs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createFiles(t *testing.T, basedir string, paths []string) {
	t.Helper()

	for _, p := range paths {
		fullpath := filepath.Join(basedir, p)
		require.NoError(t, os.MkdirAll(filepath.Dir(fullpath), 0o755))

		f, err := os.Create(fullpath)
		if err != nil {
			t.Fatal("creating file failed:", err)
		}

		f.Close()
	}
}

func TestFileGlob(t *testing.T) {
	testcases := []struct {
		name            string
		files           []string
		pattern         string
		expectedMatches []string
	}{
		{
			name: "extension",
			files: []string{
				"b.toml",
				"a.toml",
				"c.yaml",
			},
			pattern:         "*.toml",
			expectedMatches: []string{"a.toml", "b.toml"},
		},
		{
			name: "recursive",
			files: []string{
				"params.yml",
				"1/params.yml",
				"1/2/params.yml",
				"1/2/other.json",
			},
			pattern: "**/params.yml",
			expectedMatches: []string{
				"1/2/params.yml",
				"1/params.yml",
				"params.yml",
			},
		},
		{
			name:            "directories are ignored",
			files:           []string{"dir.toml/file"},
			pattern:         "*.toml",
			expectedMatches: []string{},
		},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			tempdir := t.TempDir()
			createFiles(t, tempdir, tc.files)

			res, err := FileGlob(filepath.Join(tempdir, tc.pattern))
			require.NoError(t, err)

			rel := make([]string, 0, len(res))
			for _, p := range res {
				r, err := filepath.Rel(tempdir, p)
				require.NoError(t, err)
				rel = append(rel, filepath.ToSlash(r))
			}

			assert.Equal(t, tc.expectedMatches, rel)
		})
	}
}

func TestFileGlobNonExistingDir(t *testing.T) {
	_, err := FileGlob(filepath.Join(t.TempDir(), "missing", "*.toml"))
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}
