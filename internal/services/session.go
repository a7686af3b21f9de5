package services

import (
	"crypto/subtle"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/funopi/funopi-backend/internal/config"
	"github.com/funopi/funopi-backend/internal/platform/logger"
)

const SessionCookieName = "admin_session"

type SessionClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// SessionService is the stateless admin session guard. Tokens are HS256 JWTs
// carrying the admin username and an expiry; nothing is stored server-side,
// so a token stands until it expires. There is exactly one admin identity.
type SessionService interface {
	ValidateCredentials(username, password string) (bool, error)
	Issue(username string) (string, error)
	Verify(token string) (*SessionClaims, bool)
	TTL() time.Duration
}

type sessionService struct {
	log          *logger.Logger
	username     string
	password     string
	passwordHash string
	secret       []byte
	ttl          time.Duration
	now          func() time.Time
}

func NewSessionService(cfg *config.Config, baseLog *logger.Logger) SessionService {
	return &sessionService{
		log:          baseLog.With("service", "SessionService"),
		username:     cfg.AdminUsername,
		password:     cfg.AdminPassword,
		passwordHash: cfg.AdminPasswordHash,
		secret:       []byte(cfg.SessionSecret),
		ttl:          cfg.SessionTTL,
		now:          time.Now,
	}
}

func (ss *sessionService) ValidateCredentials(username, password string) (bool, error) {
	if ss.username == "" || (ss.password == "" && ss.passwordHash == "") {
		return false, errors.New("admin credentials are not configured")
	}
	if subtle.ConstantTimeCompare([]byte(username), []byte(ss.username)) != 1 {
		return false, nil
	}
	if ss.passwordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(ss.passwordHash), []byte(password)) == nil, nil
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(ss.password)) == 1, nil
}

func (ss *sessionService) Issue(username string) (string, error) {
	now := ss.now()
	claims := SessionClaims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ss.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(ss.secret)
}

func (ss *sessionService) Verify(token string) (*SessionClaims, bool) {
	if token == "" {
		return nil, false
	}
	claims := &SessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims,
		func(t *jwt.Token) (interface{}, error) { return ss.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(ss.now),
	)
	if err != nil || !parsed.Valid {
		return nil, false
	}
	// A token minted for any other username is worthless even if the
	// signature checks out.
	if claims.Username == "" || claims.Username != ss.username {
		return nil, false
	}
	return claims, true
}

func (ss *sessionService) TTL() time.Duration {
	return ss.ttl
}
