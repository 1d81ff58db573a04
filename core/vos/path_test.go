package vos

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	cases := []struct {
		cwd      string
		name     string
		expected string
	}{
		{"/", "foo", "/foo"},
		{"/home/user", "foo.txt", "/home/user/foo.txt"},
		{"/home/user", "/etc/motd", "/etc/motd"},
		{"/home/user", ".", "/home/user"},
		{"/home/user", "..", "/home"},
		{"/home/user", "../..", "/"},
		{"/home/user", "../../..", "/"},
		{"/", "..", "/"},
		{"/home", "./a/./b", "/home/a/b"},
		{"/home", "a/../b", "/home/b"},
		{"/home/", "a/", "/home/a"},
		{"", "a", "/a"},
		{"/home", "", "/home"},
	}

	for _, tc := range cases {
		t.Run(tc.cwd+" "+tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Resolve(tc.cwd, tc.name))
		})
	}
}
