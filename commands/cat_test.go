package commands

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"

	"github.com/wshell/wsh/core/vos"
	"github.com/wshell/wsh/core/vos/vostest"
)

func TestCat(t *testing.T) {
	cases := goldenTestSuite{
		"no-arg":  {Args: []string{"cat"}, Stdin: "piped through\n"},
		"missing": {Args: []string{"cat", "does-not-exist.txt"}},
		"file": {
			Args: []string{"cat", "/foo.txt"},
			Setup: func(virtOS vos.VOS) error {
				return afero.WriteFile(virtOS, "/foo.txt", []byte("Hello, world!\n"), 0600)
			},
		},
	}

	cases.Run(t, Cat)
}

func TestCat_missingFileStatus(t *testing.T) {
	cmd := vostest.Command(Cat, "cat", "/foo.txt")

	assert.Nil(t, cmd.Run())
	assert.NotEqual(t, 0, cmd.ExitStatus, "exit code")

	helloWorld := []byte("Hello, world!")
	assert.Nil(t, afero.WriteFile(cmd.VOS, "/foo.txt", helloWorld, 0600))

	out, err := cmd.CombinedOutput()
	assert.Nil(t, err)
	assert.Equal(t, 0, cmd.ExitStatus, "exit code")
	assert.Equal(t, string(helloWorld), string(out))
}
