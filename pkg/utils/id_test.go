package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateIDWithPrefix(t *testing.T) {
	id, err := GenerateIDWithPrefix(PrefixOrder)
	require.NoError(t, err)
	assert.Regexp(t, `^CMD-[A-Za-z0-9]{6}$`, id)

	other, err := GenerateIDWithPrefix(PrefixOrder)
	require.NoError(t, err)
	assert.NotEqual(t, id, other)
}
