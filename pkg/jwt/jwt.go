// Package jwt valida y genera los session tokens de una app Shopify embebida:
// JWT HS256 firmados con el API secret de la app.
package jwt

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Leeway tolerancia de reloj para exp/nbf/iat.
const Leeway = 5 * time.Second

var (
	ErrEmptySecret = errors.New("jwt: secret vacío")
	ErrInvalidDest = errors.New("jwt: dest no es una URL https de tienda")
)

// Claims claims del session token. Dest es la URL de la tienda
// (https://<shop>.myshopify.com) y Audience el API key de la app.
type Claims struct {
	jwt.RegisteredClaims
	Dest      string `json:"dest"`
	SessionID string `json:"sid,omitempty"`
}

// Shop host de la tienda extraído de Dest.
func (c *Claims) Shop() (string, error) {
	return ShopFromDest(c.Dest)
}

// Generate firma un session token para la tienda (ddtctl token y tests).
func Generate(secret, apiKey, shop, userID string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", ErrEmptySecret
	}
	now := time.Now()
	dest := "https://" + shop
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    dest + "/admin",
			Subject:   userID,
			Audience:  jwt.ClaimStrings{apiKey},
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Dest: dest,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida firma HS256, audiencia (= apiKey), exp/nbf con Leeway y que
// dest e iss apunten a la misma tienda. Devuelve los claims validados.
func Parse(secret, apiKey, tokenString string) (*Claims, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithAudience(apiKey),
		jwt.WithLeeway(Leeway),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("claims inválidos")
	}

	shop, err := claims.Shop()
	if err != nil {
		return nil, err
	}
	if claims.Issuer != "" {
		iss, err := url.Parse(claims.Issuer)
		if err != nil || !strings.EqualFold(iss.Host, shop) {
			return nil, fmt.Errorf("jwt: iss %q no corresponde a dest %q", claims.Issuer, claims.Dest)
		}
	}
	return claims, nil
}

// ShopFromDest devuelve el host de la tienda a partir del claim dest.
func ShopFromDest(dest string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(dest))
	if err != nil || u.Scheme != "https" || u.Host == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidDest, dest)
	}
	return strings.ToLower(u.Host), nil
}
