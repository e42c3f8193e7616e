package fault

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMatchesKind(t *testing.T) {
	err := New("open_menu", ErrIllegalArgument, "cannot open menu of %d rows", 7)

	assert.True(t, IsIllegalArgument(err))
	assert.False(t, IsIllegalState(err))
	assert.False(t, IsNotFound(err))
	assert.Equal(t, "gridmenu: open_menu: illegal argument: cannot open menu of 7 rows", err.Error())
}

func TestErrorWithoutDetail(t *testing.T) {
	err := New("register", ErrIllegalState, "")

	assert.True(t, IsIllegalState(err))
	assert.Equal(t, "gridmenu: register: illegal state", err.Error())
}

func TestErrorSurvivesWrapping(t *testing.T) {
	wrapped := fmt.Errorf("loading menus: %w", New("lookup_item", ErrNotFound, "id %d", 42))

	assert.True(t, IsNotFound(wrapped))

	var ferr *Error
	assert.True(t, errors.As(wrapped, &ferr))
	assert.Equal(t, "lookup_item", ferr.Op)
}
