package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_HasExpectedCommands(t *testing.T) {
	root := newRootCmd()

	names := make([]string, 0)
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.Contains(t, names, "users")
	assert.Contains(t, names, "admin-exists")
}

func TestUsersCreate_RequiresFlags(t *testing.T) {
	root := newRootCmd()
	root.SetArgs([]string{"users", "create"})
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required")
}
