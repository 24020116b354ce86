package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"userhub/pkg/utils"
)

type capturedIdentity struct {
	userID string
	email  string
}

func newTestRouter(verifier utils.TokenVerifier) (*gin.Engine, *capturedIdentity) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	captured := &capturedIdentity{}
	r.GET("/protected", JWTAuthMiddleware(verifier), func(c *gin.Context) {
		captured.userID = c.GetString("user_id")
		captured.email = c.GetString("email")
		c.Status(http.StatusOK)
	})
	return r, captured
}

func doRequest(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) utils.APIResponse {
	t.Helper()
	var resp utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestJWTAuthMiddleware_MissingHeader(t *testing.T) {
	provider := utils.NewTokenProvider([]byte("secret"), time.Hour)
	r, _ := newTestRouter(provider)

	tests := []struct {
		name   string
		header string
	}{
		{name: "no header", header: ""},
		{name: "not bearer", header: "Basic abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(r, tt.header)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			resp := decodeEnvelope(t, w)
			assert.False(t, resp.Success)
			assert.Equal(t, "Access token required", resp.Message)
		})
	}
}

func TestJWTAuthMiddleware_InvalidToken(t *testing.T) {
	provider := utils.NewTokenProvider([]byte("secret"), time.Hour)
	r, _ := newTestRouter(provider)

	w := doRequest(r, "Bearer not-a-real-token")
	assert.Equal(t, http.StatusForbidden, w.Code)
	resp := decodeEnvelope(t, w)
	assert.Equal(t, "Invalid or expired token", resp.Message)
}

func TestJWTAuthMiddleware_ExpiredToken(t *testing.T) {
	issuer := utils.NewTokenProvider([]byte("secret"), -time.Minute)
	verifier := utils.NewTokenProvider([]byte("secret"), time.Hour)
	token, err := issuer.Issue(uuid.New(), "a@b.com")
	require.NoError(t, err)

	r, _ := newTestRouter(verifier)
	w := doRequest(r, "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, w.Code)
	resp := decodeEnvelope(t, w)
	assert.Equal(t, "Invalid or expired token", resp.Message)
}

func TestJWTAuthMiddleware_ValidToken(t *testing.T) {
	provider := utils.NewTokenProvider([]byte("secret"), time.Hour)
	userID := uuid.New()
	token, err := provider.Issue(userID, "a@b.com")
	require.NoError(t, err)

	r, captured := newTestRouter(provider)
	w := doRequest(r, "Bearer "+token)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, userID.String(), captured.userID)
	assert.Equal(t, "a@b.com", captured.email)
}
