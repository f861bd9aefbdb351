package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/XarpitX/Facebook-vs-Adwords/internal/config"
	"github.com/XarpitX/Facebook-vs-Adwords/internal/domain"
	"github.com/XarpitX/Facebook-vs-Adwords/internal/usecases/authenticating"
)

func testAuthenticator(t *testing.T) authenticating.Authenticator {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("s3nh4-forte"), bcrypt.MinCost)
	assert.NoError(t, err)

	return authenticating.NewService(&config.Config{
		Auth: config.Auth{
			Username:             "analyst",
			PasswordHash:         string(hash),
			TokenExpirationHours: 24,
		},
		SecretKey: "test_secret_key",
	})
}

func TestAuthMiddleware(t *testing.T) {
	authService := testAuthenticator(t)

	nextCalled := false
	var claimsSeen *domain.Claims
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		claimsSeen, _ = r.Context().Value(ContextKeyUser).(*domain.Claims)
		w.WriteHeader(http.StatusOK)
	})

	protected := AuthMiddleware(authService)(next)

	t.Run("Rota pública dispensa token", func(t *testing.T) {
		nextCalled = false
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodPost, "/v1/login", nil)

		protected.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.True(t, nextCalled)
	})

	t.Run("Sem header de autorização responde não autorizado", func(t *testing.T) {
		nextCalled = false
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/v1/insights/key", nil)

		protected.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.False(t, nextCalled)
	})

	t.Run("Header sem prefixo Bearer é rejeitado", func(t *testing.T) {
		nextCalled = false
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/v1/insights/key", nil)
		request.Header.Set("Authorization", "token-cru")

		protected.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.False(t, nextCalled)
	})

	t.Run("Token inválido é rejeitado", func(t *testing.T) {
		nextCalled = false
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/v1/insights/key", nil)
		request.Header.Set("Authorization", "Bearer nem-um-jwt")

		protected.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.False(t, nextCalled)
	})

	t.Run("Token válido propaga as claims no contexto", func(t *testing.T) {
		nextCalled = false
		token, err := authService.LoginUser("analyst", "s3nh4-forte")
		assert.NoError(t, err)

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/v1/insights/key", nil)
		request.Header.Set("Authorization", "Bearer "+token)

		protected.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.True(t, nextCalled)
		assert.NotNil(t, claimsSeen)
		assert.Equal(t, "analyst", claimsSeen.Username)
	})
}
