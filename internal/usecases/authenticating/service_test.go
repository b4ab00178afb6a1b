package authenticating

import (
	"testing"
	"time"

	"github.com/adkpi/kpi-dashboard-api/internal/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("senha-correta"), bcrypt.MinCost)
	require.NoError(t, err)

	return &config.Config{
		Auth: config.Auth{
			Secret:                "segredo-de-teste",
			DashboardUser:         "admin",
			DashboardPasswordHash: string(hash),
			TokenTTLHours:         1,
		},
	}
}

func TestService_Login(t *testing.T) {
	service := &Service{cfg: testConfig(t)}

	tests := []struct {
		name     string
		username string
		password string
		validate func(t *testing.T, token string, err error)
	}{
		{
			name:     "Credenciais corretas - emite token",
			username: "admin",
			password: "senha-correta",
			validate: func(t *testing.T, token string, err error) {
				assert.NoError(t, err)
				assert.NotEmpty(t, token)
			},
		},
		{
			name:     "Senha errada",
			username: "admin",
			password: "senha-errada",
			validate: func(t *testing.T, token string, err error) {
				assert.ErrorIs(t, err, ErrInvalidCredentials)
				assert.Empty(t, token)
			},
		},
		{
			name:     "Usuário desconhecido",
			username: "outro",
			password: "senha-correta",
			validate: func(t *testing.T, token string, err error) {
				assert.ErrorIs(t, err, ErrInvalidCredentials)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := service.Login(tt.username, tt.password)
			tt.validate(t, token, err)
		})
	}
}

func TestService_ValidateToken(t *testing.T) {
	cfg := testConfig(t)
	service := &Service{cfg: cfg}

	t.Run("Token emitido pelo próprio serviço é aceito", func(t *testing.T) {
		token, err := service.Login("admin", "senha-correta")
		require.NoError(t, err)

		claims, err := service.ValidateToken(token)

		assert.NoError(t, err)
		assert.Equal(t, "admin", claims.Username)
	})

	t.Run("Token expirado", func(t *testing.T) {
		expired := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
			Username: "admin",
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
				IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			},
		})
		signed, err := expired.SignedString([]byte(cfg.Auth.Secret))
		require.NoError(t, err)

		_, err = service.ValidateToken(signed)

		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("Token assinado com outro segredo", func(t *testing.T) {
		forged := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
			Username: "admin",
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		})
		signed, err := forged.SignedString([]byte("outro-segredo"))
		require.NoError(t, err)

		_, err = service.ValidateToken(signed)

		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Token malformado", func(t *testing.T) {
		_, err := service.ValidateToken("nao-é-um-jwt")

		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
