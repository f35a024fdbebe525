// Package signerservice подписывает тела вебхуков ключом HMAC-SHA256.
package signerservice

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

type SHA256Signer struct {
	key []byte
}

func NewSHA256Signer(key string) *SHA256Signer {
	return &SHA256Signer{key: []byte(key)}
}

// Sign возвращает HMAC-SHA256 от data в hex.
func (s *SHA256Signer) Sign(data []byte) string {
	mac := hmac.New(sha256.New, s.key)
	mac.Write(data)
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify сравнивает подпись за постоянное время.
func (s *SHA256Signer) Verify(data []byte, expectedHash string) bool {
	expected, err := hex.DecodeString(expectedHash)
	if err != nil {
		return false
	}
	mac := hmac.New(sha256.New, s.key)
	mac.Write(data)
	return hmac.Equal(mac.Sum(nil), expected)
}
