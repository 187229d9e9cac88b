package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"ecartx_back_end/internal/models"
	"ecartx_back_end/internal/utils"

	"github.com/gin-gonic/gin"
)

func newProtectedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", AuthRequired(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetString("user_id")})
	})
	return r
}

func TestAuthRequired(t *testing.T) {
	r := newProtectedRouter()

	token, err := utils.GenerateJWT(models.User{ID: "u1", Email: "test@example.com"})
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	tests := []struct {
		name     string
		header   string
		wantCode int
	}{
		{"token valide", "Bearer " + token, http.StatusOK},
		{"header absent", "", http.StatusUnauthorized},
		{"format invalide", token, http.StatusUnauthorized},
		{"mauvais schéma", "Basic " + token, http.StatusUnauthorized},
		{"token corrompu", "Bearer pas.un.jwt", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.wantCode {
				t.Errorf("code %d, attendu %d (body %s)", w.Code, tt.wantCode, w.Body.String())
			}
		})
	}
}
