package collab_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cyclicplan/lmheuristic/collab"
)

func TestFactString(t *testing.T) {
	f := collab.Fact{Var: 3, Val: 1}
	assert.Equal(t, "3=1", f.String())
}

func TestErrUnsupportedTask(t *testing.T) {
	assert.True(t, errors.Is(collab.ErrUnsupportedTask, collab.ErrUnsupportedTask))
}
