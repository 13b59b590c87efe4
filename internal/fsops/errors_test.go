package fsops

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorMessage(t *testing.T) {
	err := newError("copy", "/a", KindExists, nil)
	require.Equal(t, "copy /a: already exists", err.Error())

	err = newError("read", "/b", KindNotFound, fs.ErrNotExist)
	require.Equal(t, "read /b: does not exist: file does not exist", err.Error())
	require.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestKindOf(t *testing.T) {
	require.Equal(t, KindUnknown, KindOf(errors.New("plain")))
	require.Equal(t, KindUnknown, KindOf(nil))
	require.Equal(t, KindIsDir, KindOf(newError("rm", "/x", KindIsDir, nil)))
}

func TestClassify(t *testing.T) {
	require.Equal(t, KindNotFound, classify(fs.ErrNotExist))
	require.Equal(t, KindExists, classify(fs.ErrExist))
	require.Equal(t, KindUnknown, classify(errors.New("x")))
}
