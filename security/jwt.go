package security

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/noordwind/Coolector-Common/types"
)

const defaultTokenExpiry = 24 * time.Hour

// JWTOptions configure a JWTHandler.
type JWTOptions struct {
	Secret        string
	Issuer        string        // optional; checked on Parse when set
	DefaultExpiry time.Duration // 0 => 24h
}

type claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// JWTHandler is a TokenHandler signing HS256 JSON Web Tokens.
type JWTHandler struct {
	secret []byte
	issuer string
	expiry time.Duration
	now    func() time.Time
}

var _ TokenHandler = (*JWTHandler)(nil)

func NewJWTHandler(opts JWTOptions) (*JWTHandler, error) {
	if opts.Secret == "" {
		return nil, errors.New("security: jwt secret is required")
	}
	expiry := opts.DefaultExpiry
	if expiry <= 0 {
		expiry = defaultTokenExpiry
	}
	return &JWTHandler{
		secret: []byte(opts.Secret),
		issuer: opts.Issuer,
		expiry: expiry,
		now:    time.Now,
	}, nil
}

func (h *JWTHandler) Create(userID, role string, expiry time.Duration) types.Maybe[TokenCredential] {
	if strings.TrimSpace(userID) == "" {
		return types.None[TokenCredential]()
	}
	if expiry <= 0 {
		expiry = h.expiry
	}
	now := h.now()
	expires := now.Add(expiry)
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   userID,
			Issuer:    h.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	})
	signed, err := tok.SignedString(h.secret)
	if err != nil {
		return types.None[TokenCredential]()
	}
	return types.Some(TokenCredential{Token: signed, Role: role, Expires: expires})
}

func (h *JWTHandler) Parse(token string) types.Maybe[TokenDetails] {
	c, err := h.parse(token)
	if err != nil {
		return types.None[TokenDetails]()
	}
	d := TokenDetails{Subject: c.Subject, Role: c.Role, ID: c.ID}
	if c.IssuedAt != nil {
		d.IssuedAt = c.IssuedAt.Time
	}
	if c.ExpiresAt != nil {
		d.ExpiresAt = c.ExpiresAt.Time
	}
	return types.Some(d)
}

func (h *JWTHandler) parse(token string) (*claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(h.now),
	}
	if h.issuer != "" {
		opts = append(opts, jwt.WithIssuer(h.issuer))
	}
	parsed, err := jwt.ParseWithClaims(token, &claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return h.secret, nil
	}, opts...)
	if err != nil {
		return nil, err
	}
	c, ok := parsed.Claims.(*claims)
	if !ok || !parsed.Valid || c.Subject == "" {
		return nil, errors.New("security: invalid token claims")
	}
	return c, nil
}

func (h *JWTHandler) FromAuthorizationHeader(header string) types.Maybe[string] {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "bearer") {
		return types.None[string]()
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return types.None[string]()
	}
	return types.Some(token)
}
