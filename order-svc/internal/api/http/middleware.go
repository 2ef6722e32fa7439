package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"tableside/config"

	"github.com/golang-jwt/jwt/v5"
)

// Demo dashboard credentials; there is no real account model.
var (
	managerUser = config.Getenv("MANAGER_USER", "manager")
	managerPass = config.Getenv("MANAGER_PASS", "tableside2024")
)

type managerClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateManagerToken issues a signed 24h token for the dashboards.
func GenerateManagerToken() (string, error) {
	claims := managerClaims{
		Role: "manager",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(config.JWTSecret)
}

// CheckManagerLogin validates the demo credentials.
func CheckManagerLogin(user, pass string) bool {
	return user == managerUser && pass == managerPass
}

// ManagerRequired guards the manager/chef endpoints with a bearer token.
func ManagerRequired(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			writeAuthError(w, "Authorization header required (Bearer <token>)")
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims := &managerClaims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			return config.JWTSecret, nil
		})
		if err != nil || !token.Valid || claims.Role != "manager" {
			writeAuthError(w, "Invalid or expired token")
			return
		}

		next(w, r)
	}
}

func writeAuthError(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
