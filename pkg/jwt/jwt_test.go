package jwt_test

import (
	"testing"

	pkgjwt "github.com/jhoicas/comex-api/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-unit-tests"

func TestGenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "ops@comex", pkgjwt.RoleAnalyst, "comex-api-test", 60)
	require.NoError(t, err)

	subject, role, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, "ops@comex", subject)
	assert.Equal(t, pkgjwt.RoleAnalyst, role)
}

func TestParse_TokenExpirado(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "ops@comex", pkgjwt.RoleAdmin, "comex-api-test", -1)
	require.NoError(t, err)
	_, _, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err)
}

func TestParse_SecretIncorrecto(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "ops@comex", pkgjwt.RoleAdmin, "comex-api-test", 60)
	require.NoError(t, err)
	_, _, err = pkgjwt.Parse("otro-secret", tok)
	assert.Error(t, err)
}

func TestGenerate_SinSecretOSubject(t *testing.T) {
	_, err := pkgjwt.Generate("", "ops", pkgjwt.RoleAdmin, "x", 60)
	assert.Error(t, err)
	_, err = pkgjwt.Generate(testSecret, "", pkgjwt.RoleAdmin, "x", 60)
	assert.Error(t, err)
}
