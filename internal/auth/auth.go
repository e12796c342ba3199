// Package auth — проверка access-токенов внешнего auth-провайдера.
//
// Сервис не выпускает и не хранит учётные данные: он только валидирует
// подписанный HS256-токен и извлекает из него действующую Identity.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/hadge13/ya-news/internal/config"
	"github.com/hadge13/ya-news/internal/models"
)

var (
	// ErrInvalidToken — токен не прошёл проверку (подпись/формат/claims).
	ErrInvalidToken = errors.New("invalid token")
	// ErrTokenExpired — срок действия токена истёк.
	ErrTokenExpired = errors.New("token expired")
)

type accessClaims struct {
	UserID   string `json:"uid"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Authenticator валидирует access-токены и отдаёт Identity.
type Authenticator struct {
	secret []byte
	issuer string
}

// New создаёт Authenticator по настройкам auth-секции.
func New(cfg config.AuthConfig) *Authenticator {
	return &Authenticator{
		secret: []byte(cfg.Secret),
		issuer: cfg.Issuer,
	}
}

// Verify проверяет токен и возвращает аутентифицированную Identity.
// Любой дефект токена, кроме истечения срока, схлопывается в ErrInvalidToken.
func (a *Authenticator) Verify(tokenStr string) (models.Identity, error) {
	const op = "auth.Verify"

	token, err := jwt.ParseWithClaims(tokenStr, &accessClaims{},
		func(t *jwt.Token) (interface{}, error) {
			if t.Method != jwt.SigningMethodHS256 {
				return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
			}

			return a.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(5*time.Second),
		jwt.WithIssuer(a.issuer),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Anonymous, fmt.Errorf("%s: %w", op, ErrTokenExpired)
		}

		return models.Anonymous, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	claims, ok := token.Claims.(*accessClaims)
	if !ok || !token.Valid {
		return models.Anonymous, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	uid, err := uuid.Parse(claims.UserID)
	if err != nil || uid == uuid.Nil {
		return models.Anonymous, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	return models.Identity{UserID: uid, Username: claims.Username}, nil
}
