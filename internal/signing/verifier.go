package signing

import (
	"context"
	"crypto/ed25519"
	"errors"
	"log"
)

// Signature verification errors
var (
	// ErrUnknownSigner is returned when no public key is registered for
	// the signer
	ErrUnknownSigner = errors.New("no public key registered for signer")

	// ErrSignatureNotVerified is returned when the signature does not
	// verify against the signer's key and message
	ErrSignatureNotVerified = errors.New("signature verification failed")

	// ErrInvalidSignature is returned for malformed signature bytes
	ErrInvalidSignature = errors.New("invalid signature format")
)

//go:generate mockgen -package=mocks -destination=mocks/mock_verifier.go github.com/solapet/petduel/internal/signing Verifier

// Verifier confirms that attack signatures were produced by the acting
// player over the current duel context. The duel service consumes the
// signature bytes for damage entropy only after this check passes.
type Verifier interface {
	// Verify checks sig against the signer's registered key and the
	// given message
	Verify(ctx context.Context, signerID string, message, sig []byte) error
}

// Ed25519Verifier implements Verifier against a registry of ed25519
// public keys, one per player
type Ed25519Verifier struct {
	keys map[string]ed25519.PublicKey
}

// Config holds configuration for the ed25519 verifier
type Config struct {
	// Keys maps player IDs to their ed25519 public keys
	Keys map[string]ed25519.PublicKey
}

// NewEd25519 creates a verifier backed by a static key registry
func NewEd25519(cfg *Config) (*Ed25519Verifier, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	keys := make(map[string]ed25519.PublicKey, len(cfg.Keys))
	for id, key := range cfg.Keys {
		keys[id] = key
	}

	return &Ed25519Verifier{keys: keys}, nil
}

// RegisterKey adds or replaces a player's public key
func (v *Ed25519Verifier) RegisterKey(signerID string, key ed25519.PublicKey) {
	v.keys[signerID] = key
}

// Verify checks that sig is a valid ed25519 signature by signerID over message.
func (v *Ed25519Verifier) Verify(ctx context.Context, signerID string, message, sig []byte) error {
	key, ok := v.keys[signerID]
	if !ok {
		return ErrUnknownSigner
	}

	if len(sig) != ed25519.SignatureSize {
		return ErrInvalidSignature
	}

	if !ed25519.Verify(key, message, sig) {
		return ErrSignatureNotVerified
	}

	return nil
}

// DisabledVerifier accepts every signature without checking it. With
// verification off, damage entropy is attacker-controlled: a player can
// grind signature bytes for maximum rolls. Only suitable for local
// development.
type DisabledVerifier struct {
	warned bool
}

// NewDisabled creates a verifier that skips all checks
func NewDisabled() *DisabledVerifier {
	return &DisabledVerifier{}
}

// Verify always succeeds, logging a warning the first time.
func (v *DisabledVerifier) Verify(ctx context.Context, signerID string, message, sig []byte) error {
	if !v.warned {
		log.Println("WARNING: signature verification is disabled; attack damage is forgeable")
		v.warned = true
	}
	return nil
}
