package auth

import (
	"errors"
	"time"

	"nishad_gateway/internal/domain/entities"
	"nishad_gateway/internal/usecase/interfaces"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
	issuer           = "nishad-gateway"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)

// Claims represents the JWT claims for admin tokens.
type Claims struct {
	AdminID string `json:"admin_id"`
	Email   string `json:"email"`
	Type    string `json:"typ"`
	jwt.RegisteredClaims
}

// TokenService signs access and refresh tokens with separate keys so a
// refresh token can never be replayed as an access token.
type TokenService struct {
	accessKey  []byte
	refreshKey []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

var _ interfaces.ITokenService = (*TokenService)(nil)

func NewTokenService(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *TokenService {
	return &TokenService{
		accessKey:  []byte(accessSecret),
		refreshKey: []byte(refreshSecret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		now:        time.Now,
	}
}

func (s *TokenService) Issue(admin entities.Admin) (entities.TokenPair, error) {
	now := s.now()
	access, accessExp, err := s.sign(admin, tokenTypeAccess, s.accessKey, now, s.accessTTL)
	if err != nil {
		return entities.TokenPair{}, err
	}
	refresh, refreshExp, err := s.sign(admin, tokenTypeRefresh, s.refreshKey, now, s.refreshTTL)
	if err != nil {
		return entities.TokenPair{}, err
	}
	return entities.TokenPair{
		AccessToken:      access,
		AccessExpiresAt:  accessExp,
		RefreshToken:     refresh,
		RefreshExpiresAt: refreshExp,
	}, nil
}

// ParseAccess returns the admin id carried by a valid access token.
func (s *TokenService) ParseAccess(token string) (string, error) {
	return s.parse(token, tokenTypeAccess, s.accessKey)
}

// ParseRefresh returns the admin id carried by a valid refresh token.
func (s *TokenService) ParseRefresh(token string) (string, error) {
	return s.parse(token, tokenTypeRefresh, s.refreshKey)
}

func (s *TokenService) sign(admin entities.Admin, typ string, key []byte, now time.Time, ttl time.Duration) (string, time.Time, error) {
	exp := now.Add(ttl)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		AdminID: admin.ID,
		Email:   admin.Email,
		Type:    typ,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   admin.ID,
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    issuer,
			ID:        uuid.NewString(),
		},
	})
	signed, err := token.SignedString(key)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}

func (s *TokenService) parse(tokenString, typ string, key []byte) (string, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenUnverifiable
		}
		return key, nil
	}, jwt.WithIssuer(issuer), jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrExpiredToken
		}
		return "", ErrInvalidToken
	}
	if !parsed.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || claims.Type != typ || claims.AdminID == "" {
		return "", ErrInvalidToken
	}
	return claims.AdminID, nil
}
