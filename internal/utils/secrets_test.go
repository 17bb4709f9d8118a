package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateJWTSecrets(t *testing.T) {
	access, refresh, err := GenerateJWTSecrets()
	require.NoError(t, err)

	assert.Len(t, access, JWTSecretBytes*2)
	assert.Len(t, refresh, JWTSecretBytes*2)
	assert.NotEqual(t, access, refresh)
}

func TestGenerateSecret_InvalidLength(t *testing.T) {
	_, err := GenerateSecret(0)
	assert.Error(t, err)
}
