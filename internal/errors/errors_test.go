package errors

import (
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAsType(t *testing.T) {
	pathErr := &fs.PathError{Op: "open", Path: "cars/a.jpg", Err: fs.ErrNotExist}
	wrapped := Wrap(fmt.Errorf("load image: %w", pathErr), "serve image")

	got, ok := AsType[*fs.PathError](wrapped)
	assert.True(t, ok)
	assert.Same(t, pathErr, got)
	assert.True(t, Is(wrapped, fs.ErrNotExist))

	_, ok = AsType[*fs.PathError](New("plain"))
	assert.False(t, ok)
}

func TestWrapKeepsNil(t *testing.T) {
	assert.NoError(t, Wrap(nil, "ignored"))
	assert.NoError(t, WithStack(nil))
}
