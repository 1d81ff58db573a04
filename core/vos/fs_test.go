package vos

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelativeFs(t *testing.T) {
	base := afero.NewMemMapFs()
	require.NoError(t, base.MkdirAll("/home/user", 0755))

	cwd := "/home/user"
	fs := NewRelativeFs(base, func() string { return cwd })

	require.NoError(t, afero.WriteFile(fs, "notes.txt", []byte("hi"), 0644))

	got, err := afero.ReadFile(base, "/home/user/notes.txt")
	require.NoError(t, err)
	assert.Equal(t, "hi", string(got))

	// Same file through a dotted relative path.
	got, err = afero.ReadFile(fs, "../user/./notes.txt")
	require.NoError(t, err)
	assert.Equal(t, "hi", string(got))

	// Resolution tracks the working directory.
	cwd = "/home"
	_, err = fs.Stat("notes.txt")
	assert.Error(t, err)
	_, err = fs.Stat("user/notes.txt")
	assert.NoError(t, err)
}
