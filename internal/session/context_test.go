package session

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewContext(t *testing.T) {
	c := NewContext("alice", "/home/alice")
	require.Equal(t, "alice", c.UserName())
	require.Equal(t, "/home/alice", c.Location())

	c.SetLocation("/tmp")
	require.Equal(t, "/tmp", c.Location())
	require.Equal(t, "alice", c.UserName())
}

func TestNewContext_DefaultUserName(t *testing.T) {
	c := NewContext("", "/")
	require.Equal(t, DefaultUserName, c.UserName())
	require.Equal(t, "Unknown", c.UserName())
}
