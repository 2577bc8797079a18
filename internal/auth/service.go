package auth

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Credentials is the minimal projection the service needs to check a login.
type Credentials struct {
	UserID       int64
	PasswordHash string
	IsActive     bool
}

// RepositoryAPI defines the data access methods for authentication.
type RepositoryAPI interface {
	GetCredentials(email string) (*Credentials, error)
	GetActor(userID int64) (*Actor, error)
}

type Service struct {
	repo       RepositoryAPI
	tokens     TokenGeneratorAPI
	bcryptCost int
	logger     *slog.Logger
}

func NewService(repo RepositoryAPI, tokens TokenGeneratorAPI, bcryptCost int, logger *slog.Logger) *Service {
	return &Service{
		repo:       repo,
		tokens:     tokens,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

func NewJWTTokenGenerator(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *JWTTokenGenerator {
	return &JWTTokenGenerator{
		AccessTokenSecret:  []byte(accessSecret),
		RefreshTokenSecret: []byte(refreshSecret),
		AccessTokenTTL:     accessTTL,
		RefreshTokenTTL:    refreshTTL,
	}
}

// Authenticate validates credentials and returns tokens plus the actor view
// sent back to the client.
func (s *Service) Authenticate(dto LoginDTO) (AuthTokens, *Actor, error) {
	if err := dto.Validate(); err != nil {
		return AuthTokens{}, nil, err
	}

	creds, err := s.repo.GetCredentials(dto.Email)
	if err != nil {
		s.logger.Warn("login failed: unknown email", "email", dto.Email)
		return AuthTokens{}, nil, ErrInvalidCredentials
	}
	if !creds.IsActive {
		return AuthTokens{}, nil, ErrUserInactive
	}

	if err := VerifyPassword(creds.PasswordHash, dto.Password); err != nil {
		s.logger.Warn("login failed: bad password", "user_id", creds.UserID)
		return AuthTokens{}, nil, ErrInvalidCredentials
	}

	actor, err := s.repo.GetActor(creds.UserID)
	if err != nil {
		return AuthTokens{}, nil, err
	}

	tokens, err := s.issueTokens(actor)
	if err != nil {
		return AuthTokens{}, nil, err
	}

	s.logger.Info("user authenticated", "user_id", actor.ID, "role", actor.Role)
	return tokens, actor, nil
}

// RefreshTokens validates a refresh token and issues a new pair.
func (s *Service) RefreshTokens(refreshToken string) (AuthTokens, error) {
	claims, err := s.tokens.ValidateToken(refreshToken)
	if err != nil {
		return AuthTokens{}, err
	}

	actor, err := s.GetActor(claims)
	if err != nil {
		return AuthTokens{}, err
	}

	return s.issueTokens(actor)
}

func (s *Service) ValidateAccessToken(tokenString string) (*Claims, error) {
	return s.tokens.ValidateToken(tokenString)
}

// GetActor resolves token claims into the current actor, rejecting
// deactivated accounts.
func (s *Service) GetActor(claims *Claims) (*Actor, error) {
	var uid int64
	if _, err := fmt.Sscanf(claims.UserID, "%d", &uid); err != nil {
		return nil, ErrInvalidToken
	}

	actor, err := s.repo.GetActor(uid)
	if err != nil {
		return nil, ErrInvalidToken.WithCause(err)
	}
	return actor, nil
}

func (s *Service) HashPassword(password string) (string, error) {
	return HashPassword(password, s.bcryptCost)
}

func (s *Service) issueTokens(actor *Actor) (AuthTokens, error) {
	uid := fmt.Sprintf("%d", actor.ID)

	accessToken, err := s.tokens.GenerateAccessToken(uid, actor.Email, string(actor.Role))
	if err != nil {
		return AuthTokens{}, err
	}

	refreshToken, err := s.tokens.GenerateRefreshToken(uid, actor.Email, string(actor.Role))
	if err != nil {
		return AuthTokens{}, err
	}

	return AuthTokens{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

func (j *JWTTokenGenerator) GenerateAccessToken(userID, email, role string) (string, error) {
	return j.signed(userID, email, role, j.AccessTokenTTL, j.AccessTokenSecret)
}

func (j *JWTTokenGenerator) GenerateRefreshToken(userID, email, role string) (string, error) {
	return j.signed(userID, email, role, j.RefreshTokenTTL, j.RefreshTokenSecret)
}

func (j *JWTTokenGenerator) signed(userID, email, role string, ttl time.Duration, secret []byte) (string, error) {
	claims := &Claims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Subject:   userID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ValidateToken validates a JWT token and returns its claims. Tokens with a
// lifetime beyond the access TTL are verified against the refresh secret.
func (j *JWTTokenGenerator) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		if claims, ok := token.Claims.(*Claims); ok && claims.ExpiresAt != nil {
			if time.Until(claims.ExpiresAt.Time) > j.AccessTokenTTL {
				return j.RefreshTokenSecret, nil
			}
		}
		return j.AccessTokenSecret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, ErrInvalidToken
}
