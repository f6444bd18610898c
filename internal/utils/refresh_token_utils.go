package utils

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"
)

// HashRefreshToken generates a SHA256 hash of a refresh token.
func HashRefreshToken(token string) string {
	hasher := sha256.New()
	hasher.Write([]byte(token))
	return hex.EncodeToString(hasher.Sum(nil))
}

// CompareRefreshTokenHash compares a plain refresh token with its stored SHA256 hash.
// The token parameter is the raw token string, not a hash.
func CompareRefreshTokenHash(token string, storedHash string) bool {
	return subtle.ConstantTimeCompare([]byte(HashRefreshToken(token)), []byte(storedHash)) == 1
}

// PackRefreshCookie joins the user ID and the raw refresh token into one cookie value.
func PackRefreshCookie(userID, rawToken string) string {
	return userID + ":" + rawToken
}

// UnpackRefreshCookie splits a cookie value produced by PackRefreshCookie.
func UnpackRefreshCookie(value string) (userID, rawToken string, ok bool) {
	userID, rawToken, ok = strings.Cut(value, ":")
	if !ok || userID == "" || rawToken == "" {
		return "", "", false
	}
	return userID, rawToken, true
}
