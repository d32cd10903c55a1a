package session

import (
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CookieName is the name of the admin session cookie
const CookieName = "admin_sid"

// CookieCodec signs session tokens into cookie values and reads them back
type CookieCodec struct {
	secret []byte
	ttl    time.Duration
	secure bool
}

// NewCookieCodec creates a new cookie codec
func NewCookieCodec(secret string, ttl time.Duration, secure bool) *CookieCodec {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &CookieCodec{
		secret: []byte(secret),
		ttl:    ttl,
		secure: secure,
	}
}

// Encode wraps the session token into a signed value
func (c *CookieCodec) Encode(token string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		ID:        token,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session cookie: %w", err)
	}

	return signed, nil
}

// Decode validates the signed value and returns the session token
func (c *CookieCodec) Decode(value string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(value, claims, func(token *jwt.Token) (any, error) {
		return c.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", fmt.Errorf("failed to parse session cookie: %w", err)
	}
	if !token.Valid || claims.ID == "" {
		return "", fmt.Errorf("session cookie is invalid")
	}

	return claims.ID, nil
}

// Read extracts the session token from the request cookie
func (c *CookieCodec) Read(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	token, err := c.Decode(cookie.Value)
	if err != nil {
		return "", false
	}
	return token, true
}

// Write sets the session cookie on the response
func (c *CookieCodec) Write(w http.ResponseWriter, token string) error {
	value, err := c.Encode(token)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   int(c.ttl.Seconds()),
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Clear expires the session cookie on the client
func (c *CookieCodec) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
