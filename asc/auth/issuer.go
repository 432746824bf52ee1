// Package auth mints the short-lived ES256 tokens that authorize every
// App Store Connect request.
package auth

import (
	"context"
	"crypto/ecdsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/viant/afs"
)

// Audience is the fixed audience claim the App Store Connect API expects.
const Audience = "appstoreconnect-v1"

// TokenValidity bounds every issued token; the API rejects anything longer.
const TokenValidity = 20 * time.Minute

// CredentialError kinds.
const (
	KeyUnreadable = "key unreadable"
	KeyInvalid    = "key invalid"
	SignFailed    = "sign failed"
)

// CredentialError reports a failure to produce a signed token. It surfaces
// as a tool-call failure, never as a startup error.
type CredentialError struct {
	Kind     string
	Location string
	Err      error
}

func (e *CredentialError) Error() string {
	return fmt.Sprintf("credential error: %v: %q: %v", e.Kind, e.Location, e.Err)
}

func (e *CredentialError) Unwrap() error { return e.Err }

// Issuer produces one signed, time-bounded token per call. The private key
// is re-read on every issuance so that a rotated or revoked key file takes
// effect on the next request; there is no cached state and the value is safe
// for concurrent use.
type Issuer struct {
	keyID    string
	issuerID string
	key      string // private key path or afs URL
	fs       afs.Service
}

// New returns an issuer for the supplied key identifier, issuer identifier
// and private key location.
func New(keyID, issuerID, keyLocation string) *Issuer {
	return &Issuer{keyID: keyID, issuerID: issuerID, key: keyLocation, fs: afs.New()}
}

// Issue reads the private key and signs a fresh token: iss and kid from
// configuration, aud fixed to Audience, exp at TokenValidity from now.
func (i *Issuer) Issue(ctx context.Context) (string, error) {
	data, err := i.fs.DownloadWithURL(ctx, i.key)
	if err != nil {
		return "", &CredentialError{Kind: KeyUnreadable, Location: i.key, Err: err}
	}
	key, err := parsePrivateKey(data)
	if err != nil {
		return "", &CredentialError{Kind: KeyInvalid, Location: i.key, Err: err}
	}
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodES256, jwt.RegisteredClaims{
		Issuer:    i.issuerID,
		Audience:  jwt.ClaimStrings{Audience},
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(TokenValidity)),
	})
	token.Header["kid"] = i.keyID
	signed, err := token.SignedString(key)
	if err != nil {
		return "", &CredentialError{Kind: SignFailed, Location: i.key, Err: err}
	}
	return signed, nil
}

// parsePrivateKey accepts the PEM encodings App Store Connect keys ship in:
// PKCS#8 (the .p8 download format) or SEC 1.
func parsePrivateKey(data []byte) (*ecdsa.PrivateKey, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, fmt.Errorf("no PEM block found")
	}
	if key, err := x509.ParsePKCS8PrivateKey(block.Bytes); err == nil {
		ecKey, ok := key.(*ecdsa.PrivateKey)
		if !ok {
			return nil, fmt.Errorf("expected EC private key, got %T", key)
		}
		return ecKey, nil
	}
	return x509.ParseECPrivateKey(block.Bytes)
}
