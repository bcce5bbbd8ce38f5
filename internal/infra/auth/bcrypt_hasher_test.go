package auth

import (
	"testing"

	"github.com/Fire-Devils/filaman-system/config"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func testHasherConfig(cost int) *config.Config {
	return &config.Config{Auth: &config.AuthConfig{BcryptCost: cost}}
}

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := NewBcryptHasher(testHasherConfig(bcrypt.MinCost))

	secret := "s3ss10n-s3cr3t"
	hash, err := hasher.Hash(secret)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, secret, hash)

	assert.True(t, hasher.Check(secret, hash))
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := NewBcryptHasher(testHasherConfig(bcrypt.MinCost))
	secret := "s3ss10n-s3cr3t"

	hash, err := hasher.Hash(secret)
	assert.NoError(t, err)

	// Correct secret
	assert.True(t, hasher.Check(secret, hash))

	// Wrong secret
	assert.False(t, hasher.Check("wrong-secret", hash))

	// Empty secret
	assert.False(t, hasher.Check("", hash))

	// Garbage hash
	assert.False(t, hasher.Check(secret, "invalid_hash"))
}

func TestBcryptHasher_ConfiguredCost(t *testing.T) {
	customCost := 6
	hasher := NewBcryptHasher(testHasherConfig(customCost))

	hash, err := hasher.Hash("s3ss10n-s3cr3t")
	assert.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	assert.NoError(t, err)
	assert.Equal(t, customCost, cost)
}

func TestBcryptHasher_DefaultCost(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{})

	hash, err := hasher.Hash("s3ss10n-s3cr3t")
	assert.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	assert.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}
