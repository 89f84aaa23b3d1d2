package middleware

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	apierrors "github.com/cfd-platform/cfd-backend/internal/api/shared/errors"
	"github.com/cfd-platform/cfd-backend/internal/domain"
	"github.com/cfd-platform/cfd-backend/internal/logger"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const CALLER_KEY contextKey = "caller"

// AuthMethod is the scheme a caller authenticated with
type AuthMethod string

const (
	AuthMethodJWT    AuthMethod = "jwt"
	AuthMethodAPIKey AuthMethod = "apikey"
)

// AuthConfig holds authentication configuration
type AuthConfig struct {
	JWTPublicKey string // RSA public key in PEM format
	APIKeys      []string
}

// Claims are the JWT claims issued to wallet holders and operators
type Claims struct {
	jwt.RegisteredClaims
	// Wallet binds the token to a single wallet
	Wallet string `json:"wallet,omitempty"`
	// Admin grants the treasury operator role
	Admin bool `json:"admin,omitempty"`
}

// Caller is the authenticated party of a request.
// API keys belong to operators and always carry the admin role.
type Caller struct {
	Method  AuthMethod
	Subject string
	// Wallet is the normalized wallet bound to the token, empty for operators
	Wallet string
	Admin  bool
}

// CanAccessWallet reports whether the caller may act on behalf of wallet
func (c *Caller) CanAccessWallet(wallet string) bool {
	if c == nil {
		return false
	}
	if c.Admin {
		return true
	}
	return c.Wallet != "" && c.Wallet == domain.NormalizeAddress(wallet)
}

// authenticator holds the parsed credentials of an AuthConfig
type authenticator struct {
	publicKey *rsa.PublicKey
	keyErr    error
	apiKeys   map[string]struct{}
}

func newAuthenticator(cfg AuthConfig) *authenticator {
	a := &authenticator{apiKeys: make(map[string]struct{}, len(cfg.APIKeys))}
	for _, key := range cfg.APIKeys {
		if key != "" {
			a.apiKeys[key] = struct{}{}
		}
	}

	if cfg.JWTPublicKey == "" {
		a.keyErr = errors.New("JWT public key not configured")
	} else if key, err := parseRSAPublicKey(cfg.JWTPublicKey); err != nil {
		a.keyErr = fmt.Errorf("failed to parse RSA public key: %w", err)
	} else {
		a.publicKey = key
	}

	return a
}

// Authenticate validates an Authorization header value and returns its caller
func Authenticate(authHeader string, cfg AuthConfig) (*Caller, error) {
	return newAuthenticator(cfg).authenticate(authHeader)
}

func (a *authenticator) authenticate(authHeader string) (*Caller, error) {
	if authHeader == "" {
		return nil, errors.New("missing Authorization header")
	}

	scheme, credentials, ok := strings.Cut(authHeader, " ")
	if !ok || credentials == "" {
		return nil, errors.New("invalid Authorization header format")
	}

	switch strings.ToLower(scheme) {
	case "bearer":
		return a.verifyToken(credentials)
	case "apikey":
		return a.verifyAPIKey(credentials)
	default:
		return nil, fmt.Errorf("unsupported authorization type: %s", scheme)
	}
}

// verifyToken checks an RS-signed token that must carry an expiry
func (a *authenticator) verifyToken(raw string) (*Caller, error) {
	if a.publicKey == nil {
		return nil, a.keyErr
	}

	claims := &Claims{}
	_, err := jwt.ParseWithClaims(raw, claims,
		func(*jwt.Token) (interface{}, error) { return a.publicKey, nil },
		jwt.WithValidMethods([]string{"RS256", "RS384", "RS512"}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	caller := &Caller{
		Method:  AuthMethodJWT,
		Subject: claims.Subject,
		Admin:   claims.Admin,
	}
	if claims.Wallet != "" {
		if !domain.IsHexAddress(claims.Wallet) {
			return nil, errors.New("wallet claim is not a valid address")
		}
		caller.Wallet = domain.NormalizeAddress(claims.Wallet)
		if caller.Subject == "" {
			caller.Subject = caller.Wallet
		}
	}
	if !caller.Admin && caller.Wallet == "" {
		return nil, errors.New("token grants no wallet and no admin role")
	}

	return caller, nil
}

func (a *authenticator) verifyAPIKey(key string) (*Caller, error) {
	if len(a.apiKeys) == 0 {
		return nil, errors.New("no API keys configured")
	}
	if _, ok := a.apiKeys[key]; !ok {
		return nil, errors.New("invalid API key")
	}
	return &Caller{
		Method:  AuthMethodAPIKey,
		Subject: apiKeySubject(key),
		Admin:   true,
	}, nil
}

// Auth returns a gin middleware accepting a Bearer JWT or an operator API key
func Auth(cfg AuthConfig) gin.HandlerFunc {
	auth := newAuthenticator(cfg)

	return func(c *gin.Context) {
		caller, err := auth.authenticate(c.GetHeader("Authorization"))
		if err != nil {
			logger.WarnCtx(c.Request.Context(), "Authentication failed",
				zap.Error(err),
				zap.String("path", c.Request.URL.Path),
				zap.String("client_ip", c.ClientIP()),
			)
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierrors.NewUnauthorizedError("Authentication failed", err.Error()))
			return
		}

		logger.DebugCtx(c.Request.Context(), "Authentication successful",
			zap.String("method", string(caller.Method)),
			zap.String("subject", caller.Subject),
			zap.String("path", c.Request.URL.Path),
		)
		c.Set(CALLER_KEY, caller)
		c.Next()
	}
}

// RequireAdmin rejects callers without the operator role. It must run after Auth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		caller := CallerFrom(c)
		if caller == nil || !caller.Admin {
			logger.WarnCtx(c.Request.Context(), "Admin access denied",
				zap.String("subject", Principal(c)),
				zap.String("path", c.Request.URL.Path),
			)
			c.AbortWithStatusJSON(http.StatusForbidden, apierrors.NewForbiddenError("Admin access required"))
			return
		}
		c.Next()
	}
}

// CallerFrom returns the authenticated caller of the request, or nil
func CallerFrom(c *gin.Context) *Caller {
	v, ok := c.Get(CALLER_KEY)
	if !ok {
		return nil
	}
	caller, _ := v.(*Caller)
	return caller
}

// Principal returns the authenticated subject of the request, or the system principal
func Principal(c *gin.Context) string {
	if caller := CallerFrom(c); caller != nil && caller.Subject != "" {
		return caller.Subject
	}
	return domain.SYSTEM_PRINCIPAL
}

// parseRSAPublicKey parses a PKIX or PKCS1 RSA public key in PEM format
func parseRSAPublicKey(publicKeyPEM string) (*rsa.PublicKey, error) {
	block, _ := pem.Decode([]byte(publicKeyPEM))
	if block == nil {
		return nil, errors.New("failed to parse PEM block containing public key")
	}

	pub, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return x509.ParsePKCS1PublicKey(block.Bytes)
	}

	rsaKey, ok := pub.(*rsa.PublicKey)
	if !ok {
		return nil, errors.New("public key is not an RSA key")
	}

	return rsaKey, nil
}

// apiKeySubject identifies an API key caller without exposing the key
func apiKeySubject(apiKey string) string {
	if len(apiKey) <= 4 {
		return "apikey"
	}
	return "apikey:" + apiKey[len(apiKey)-4:]
}
