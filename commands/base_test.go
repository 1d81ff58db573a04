package commands

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/wshell/wsh/core/vos"
	"github.com/wshell/wsh/core/vos/vostest"
)

func TestAllCommands(t *testing.T) {
	for _, cmdEntry := range ListBuiltinCommands() {
		t.Run(cmdEntry.Name, func(t *testing.T) {
			if cmdEntry.Proc == nil {
				t.Fatal("nil command", cmdEntry.Name)
			}
			if cmdEntry.Short == "" {
				t.Fatal("missing description", cmdEntry.Name)
			}
		})
	}
}

func TestLookup(t *testing.T) {
	if Lookup("echo") == nil {
		t.Error("expected echo to be registered")
	}
	if Lookup("no-such-command") != nil {
		t.Error("expected lookup miss for unknown name")
	}
}

type goldenTestSuite map[string]goldenTest

type goldenTest struct {
	Args  []string
	Stdin string
	Setup func(vos.VOS) error
}

func (gts goldenTestSuite) Run(t *testing.T, cmd vos.ProcessFunc) {
	t.Helper()

	g := goldie.New(
		t,
		goldie.WithFixtureDir(filepath.Join("testdata", "golden")),
		goldie.WithDiffEngine(goldie.ColoredDiff),
		goldie.WithTestNameForDir(true),
	)

	for tn, tc := range gts {
		t.Run(tn, func(t *testing.T) {
			cmd := vostest.Command(cmd, tc.Args[0], tc.Args[1:]...)
			cmd.Stdin = strings.NewReader(tc.Stdin)
			cmd.Setup = tc.Setup

			out, err := cmd.CombinedOutput()
			if err != nil {
				t.Fatal(err)
			}

			g.Assert(t, tn, out)
		})
	}
}
