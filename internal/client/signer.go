package client

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"time"
)

const (
	authScheme = "HMAC-SHA256"
	saltBytes  = 16
	// SOLAPI expects the date in ISO-8601 UTC with millisecond precision.
	dateLayout = "2006-01-02T15:04:05.000Z"
)

// Signer builds the SOLAPI authorization header. Every call produces a new
// date and salt; the provider rejects reused signatures.
type Signer struct {
	now     func() time.Time
	entropy io.Reader
}

func NewSigner() *Signer {
	return &Signer{
		now:     time.Now,
		entropy: rand.Reader,
	}
}

// Authorization returns a header value of the form
// "HMAC-SHA256 apiKey=..., date=..., salt=..., signature=..." where the
// signature is HMAC-SHA256(secret, date+salt), hex encoded.
func (s *Signer) Authorization(apiKey, apiSecret string) (string, error) {
	date := s.now().UTC().Format(dateLayout)

	raw := make([]byte, saltBytes)
	if _, err := io.ReadFull(s.entropy, raw); err != nil {
		return "", fmt.Errorf("salt: %w", err)
	}
	salt := hex.EncodeToString(raw)

	mac := hmac.New(sha256.New, []byte(apiSecret))
	mac.Write([]byte(date + salt))
	signature := hex.EncodeToString(mac.Sum(nil))

	return fmt.Sprintf("%s apiKey=%s, date=%s, salt=%s, signature=%s",
		authScheme, apiKey, date, salt, signature), nil
}
