package authenticating

import (
	"errors"
	"time"

	"github.com/adkpi/kpi-dashboard-api/internal/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// Claims são as claims do token emitido no login do dashboard
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Authenticator autentica a credencial única do dashboard e valida tokens.
// Não há gerenciamento de múltiplos usuários: o controle de acesso
// multi-tenant está fora do escopo do sistema.
type Authenticator interface {
	Login(username, password string) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

type Service struct {
	cfg *config.Config
}

// NewService cria uma nova instância do serviço de autenticação
func NewService(cfg *config.Config) Authenticator {
	return &Service{
		cfg: cfg,
	}
}

// Login compara a credencial informada com a credencial configurada (bcrypt)
// e emite um JWT com o TTL configurado.
func (s *Service) Login(username, password string) (string, error) {
	if username != s.cfg.Auth.DashboardUser {
		return "", ErrInvalidCredentials
	}

	err := bcrypt.CompareHashAndPassword([]byte(s.cfg.Auth.DashboardPasswordHash), []byte(password))
	if err != nil {
		logrus.Warn("Tentativa de login com senha inválida")
		return "", ErrInvalidCredentials
	}

	ttl := time.Duration(s.cfg.Auth.TokenTTLHours) * time.Hour
	claims := &Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(s.cfg.Auth.Secret))
	if err != nil {
		return "", err
	}

	return signed, nil
}

// ValidateToken verifica a assinatura e a expiração do token
func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(s.cfg.Auth.Secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	if !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
