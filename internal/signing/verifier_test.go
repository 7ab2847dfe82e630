package signing

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEd25519VerifierAcceptsValidSignature(t *testing.T) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	v, err := NewEd25519(&Config{
		Keys: map[string]ed25519.PublicKey{"player-1": pub},
	})
	require.NoError(t, err)

	message := []byte("duel-id:1748779200")
	sig := ed25519.Sign(priv, message)

	err = v.Verify(context.Background(), "player-1", message, sig)
	assert.NoError(t, err)
}

func TestEd25519VerifierRejectsWrongMessage(t *testing.T) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	v, err := NewEd25519(&Config{
		Keys: map[string]ed25519.PublicKey{"player-1": pub},
	})
	require.NoError(t, err)

	sig := ed25519.Sign(priv, []byte("duel-id:1748779200"))

	// A signature over a previous turn must not validate the next one
	err = v.Verify(context.Background(), "player-1", []byte("duel-id:1748779300"), sig)
	assert.ErrorIs(t, err, ErrSignatureNotVerified)
}

func TestEd25519VerifierRejectsWrongSigner(t *testing.T) {
	pub, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	_, otherPriv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	v, err := NewEd25519(&Config{
		Keys: map[string]ed25519.PublicKey{"player-1": pub},
	})
	require.NoError(t, err)

	message := []byte("duel-id:1748779200")
	sig := ed25519.Sign(otherPriv, message)

	err = v.Verify(context.Background(), "player-1", message, sig)
	assert.ErrorIs(t, err, ErrSignatureNotVerified)
}

func TestEd25519VerifierUnknownSigner(t *testing.T) {
	v, err := NewEd25519(&Config{})
	require.NoError(t, err)

	err = v.Verify(context.Background(), "stranger", []byte("message"), make([]byte, ed25519.SignatureSize))
	assert.ErrorIs(t, err, ErrUnknownSigner)
}

func TestEd25519VerifierMalformedSignature(t *testing.T) {
	pub, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	v, err := NewEd25519(&Config{
		Keys: map[string]ed25519.PublicKey{"player-1": pub},
	})
	require.NoError(t, err)

	err = v.Verify(context.Background(), "player-1", []byte("message"), []byte("too-short"))
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestEd25519VerifierRegisterKey(t *testing.T) {
	v, err := NewEd25519(&Config{})
	require.NoError(t, err)

	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	v.RegisterKey("player-1", pub)

	message := []byte("duel-id:1748779200")
	err = v.Verify(context.Background(), "player-1", message, ed25519.Sign(priv, message))
	assert.NoError(t, err)
}

func TestDisabledVerifierAcceptsAnything(t *testing.T) {
	v := NewDisabled()

	err := v.Verify(context.Background(), "anyone", []byte("message"), []byte("garbage"))
	assert.NoError(t, err)

	err = v.Verify(context.Background(), "anyone", nil, nil)
	assert.NoError(t, err)
}
