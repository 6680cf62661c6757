package mem

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResetTokens_ConsumeIsSingleUse(t *testing.T) {
	store := NewResetTokens()
	store.Set("tok", "user@example.com", time.Minute)

	assert.Equal(t, "user@example.com", store.Consume("tok"))
	assert.Equal(t, "", store.Consume("tok"))
}

func TestResetTokens_Expiry(t *testing.T) {
	store := NewResetTokens()
	store.Set("tok", "user@example.com", -time.Second)

	assert.Equal(t, "", store.Consume("tok"))
}

func TestResetTokens_UnknownToken(t *testing.T) {
	store := NewResetTokens()

	assert.Equal(t, "", store.Consume("missing"))
}

func TestResetTokens_ReissueReplacesBinding(t *testing.T) {
	store := NewResetTokens()
	store.Set("tok", "old@example.com", time.Minute)
	store.Set("tok", "new@example.com", time.Minute)

	assert.Equal(t, "new@example.com", store.Consume("tok"))
}

func TestResetTokens_SetSweepsExpiredEntries(t *testing.T) {
	store := NewResetTokens()
	store.Set("stale", "old@example.com", -time.Second)
	store.Set("fresh", "user@example.com", time.Minute)

	assert.Equal(t, 1, len(store.entries))
	assert.Equal(t, "user@example.com", store.Consume("fresh"))
}
