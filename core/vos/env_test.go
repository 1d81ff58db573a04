package vos

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapEnv(t *testing.T) {
	env := NewMapEnv()

	_, ok := env.LookupEnv("HOME")
	assert.False(t, ok)
	assert.Equal(t, "", env.Getenv("HOME"), "unset variables are empty")

	assert.NoError(t, env.Setenv("HOME", "/root"))
	assert.Equal(t, "/root", env.Getenv("HOME"))

	got, ok := env.LookupEnv("HOME")
	assert.True(t, ok)
	assert.Equal(t, "/root", got)

	assert.NoError(t, env.Unsetenv("HOME"))
	assert.Equal(t, "", env.Getenv("HOME"))
}

func TestMapEnv_ExpandEnv(t *testing.T) {
	env := NewMapEnvFromEnvList([]string{"A=B", "EMPTY="})

	assert.Equal(t, "B", env.ExpandEnv("$A"))
	assert.Equal(t, "B-B", env.ExpandEnv("${A}-$A"))
	assert.Equal(t, "", env.ExpandEnv("$EMPTY"))
	assert.Equal(t, "", env.ExpandEnv("$UNSET"), "unset expands to empty")
}

func TestMapEnv_Environ(t *testing.T) {
	env := NewMapEnvFromEnvList([]string{"B=2", "A=1"})

	assert.Equal(t, []string{"A=1", "B=2"}, env.Environ(), "sorted by key")
}
