package jwt_test

import (
	"testing"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/tucontable-api/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

var testIdentity = pkgjwt.Identity{
	UserID:    "00000000-0000-0000-0000-000000000001",
	CompanyID: "00000000-0000-0000-0000-000000000002",
	Role:      pkgjwt.RoleContador,
}

func TestJWT_GenerateAndParse_ConRole(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testIdentity, "tucontable-test", 60)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	id, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, testIdentity, id)
}

func TestJWT_TokenExpirado_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testIdentity, "tucontable-test", -1)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestJWT_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testIdentity, "tucontable-test", 60)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}

func TestJWT_SecretVacio(t *testing.T) {
	_, err := pkgjwt.Generate("", testIdentity, "x", 60)
	assert.ErrorIs(t, err, pkgjwt.ErrSecretVacio)

	_, err = pkgjwt.Parse("", "abc")
	assert.ErrorIs(t, err, pkgjwt.ErrSecretVacio)
}

func TestJWT_SinUserID_Rechazado(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, pkgjwt.Identity{CompanyID: "c"}, "x", 60)
	require.NoError(t, err)
	_, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err)
}

func TestJWT_AlgoritmoNone_Rechazado(t *testing.T) {
	claims := pkgjwt.Claims{UserID: "u", CompanyID: "c", Role: pkgjwt.RoleAdmin}
	tok, err := gojwt.NewWithClaims(gojwt.SigningMethodNone, claims).SignedString(gojwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err)
}
