package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCreateAndValidateToken(t *testing.T) {
	userID := uuid.New()

	token, err := CreateToken(userID, "user")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := ValidateToken(token)
	assert.NoError(t, err)
	if assert.NotNil(t, claims) {
		assert.Equal(t, userID.String(), claims.UserID)
		assert.Equal(t, "user", claims.Role)
	}
}

func TestValidateToken_Garbage(t *testing.T) {
	claims, err := ValidateToken("not.a.token")

	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestHashAndComparePasswords(t *testing.T) {
	hash, err := HashPassword("s3cret-password")
	assert.NoError(t, err)
	assert.NotEqual(t, "s3cret-password", hash)

	assert.NoError(t, ComparePasswords(hash, "s3cret-password"))
	assert.Error(t, ComparePasswords(hash, "wrong-password"))
}

func TestGenerateSecureToken(t *testing.T) {
	token, err := GenerateSecureToken(32)
	assert.NoError(t, err)
	assert.Len(t, token, 64)

	other, _ := GenerateSecureToken(32)
	assert.NotEqual(t, token, other)

	_, err = GenerateSecureToken(0)
	assert.Error(t, err)
}
