package service

import (
	"crypto/rand"
	"errors"
	"fmt"

	"golang.org/x/crypto/nacl/secretbox"
)

const nonceSize = 24

var errSealedTokenCorrupt = errors.New("sealed token is corrupt")

// TokenSealer encrypts bearer tokens before they reach the database
type TokenSealer struct {
	key [32]byte
}

func NewTokenSealer(key [32]byte) *TokenSealer {
	return &TokenSealer{key: key}
}

// Seal prefixes the box with its random nonce
func (s *TokenSealer) Seal(token string) ([]byte, error) {
	var nonce [nonceSize]byte
	if _, err := rand.Read(nonce[:]); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}
	return secretbox.Seal(nonce[:], []byte(token), &nonce, &s.key), nil
}

func (s *TokenSealer) Open(sealed []byte) (string, error) {
	if len(sealed) < nonceSize+secretbox.Overhead {
		return "", errSealedTokenCorrupt
	}
	var nonce [nonceSize]byte
	copy(nonce[:], sealed[:nonceSize])

	plain, ok := secretbox.Open(nil, sealed[nonceSize:], &nonce, &s.key)
	if !ok {
		return "", errSealedTokenCorrupt
	}
	return string(plain), nil
}
