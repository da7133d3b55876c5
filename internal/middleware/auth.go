package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

const customerKey contextKey = "customer"

// Customer is the authenticated storefront customer, when there is one.
type Customer struct {
	ID    string
	Email string
}

// CustomerFrom returns the customer stored by Auth, if any.
func CustomerFrom(ctx context.Context) (Customer, bool) {
	c, ok := ctx.Value(customerKey).(Customer)
	return c, ok
}

// Auth is passive bearer-token authentication: a valid token puts the
// customer into the request context, an absent or non-Bearer header passes
// through anonymously, and an invalid Bearer token is rejected.
func Auth(secret string) func(http.Handler) http.Handler {
	key := []byte(secret)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				next.ServeHTTP(w, r)
				return
			}

			tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
			token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
				return key, nil
			}, jwt.WithValidMethods([]string{"HS256"}))
			if err != nil || !token.Valid {
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			customer := Customer{}
			if id, ok := claims["customer_id"].(string); ok {
				customer.ID = id
			}
			if email, ok := claims["email"].(string); ok {
				customer.Email = email
			}
			if customer.ID != "" {
				ctx := context.WithValue(r.Context(), customerKey, customer)
				r = r.WithContext(ctx)
			}

			next.ServeHTTP(w, r)
		})
	}
}
