// Package secret encrypts data provider credentials at rest using fernet
// tokens. Only the synchronization path ever sees a decrypted key.
package secret

import (
	"fmt"

	"github.com/fernet/fernet-go"
)

// Codec encrypts and decrypts API keys with a single fernet key.
type Codec struct {
	key *fernet.Key
}

// NewCodec builds a Codec from a base64-encoded fernet key.
func NewCodec(encodedKey string) (*Codec, error) {
	key, err := fernet.DecodeKey(encodedKey)
	if err != nil {
		return nil, fmt.Errorf("invalid fernet key: %w", err)
	}
	return &Codec{key: key}, nil
}

// GenerateKey returns a freshly generated, encoded fernet key. Used when no
// key is configured; tokens from an ephemeral key do not survive a restart.
func GenerateKey() (string, error) {
	var key fernet.Key
	if err := key.Generate(); err != nil {
		return "", fmt.Errorf("failed to generate fernet key: %w", err)
	}
	return key.Encode(), nil
}

// Encrypt returns the fernet token for the given plaintext.
func (c *Codec) Encrypt(plaintext string) (string, error) {
	token, err := fernet.EncryptAndSign([]byte(plaintext), c.key)
	if err != nil {
		return "", fmt.Errorf("failed to encrypt secret: %w", err)
	}
	return string(token), nil
}

// Decrypt verifies and decrypts a fernet token. Tokens do not expire; key
// rotation is an operational concern, not a TTL one.
func (c *Codec) Decrypt(token string) (string, error) {
	plaintext := fernet.VerifyAndDecrypt([]byte(token), 0, []*fernet.Key{c.key})
	if plaintext == nil {
		return "", fmt.Errorf("failed to decrypt secret: invalid token")
	}
	return string(plaintext), nil
}
