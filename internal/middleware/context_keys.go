package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

const (
	cashierIDKey    = contextKey("cashierID")
	cashierNameKey  = contextKey("cashierName")
	cashierEmailKey = contextKey("cashierEmail")
)

// Cashier is the identity carried by a verified token.
type Cashier struct {
	ID    string
	Name  string
	Email string
}

// WithCashier returns a copy of ctx carrying the cashier identity.
func WithCashier(ctx context.Context, cashier Cashier) context.Context {
	ctx = context.WithValue(ctx, cashierIDKey, cashier.ID)
	ctx = context.WithValue(ctx, cashierNameKey, cashier.Name)
	return context.WithValue(ctx, cashierEmailKey, cashier.Email)
}

// GetCashierIDFromContext retrieves the authenticated cashier ID from the request context.
// It returns the ID and a boolean indicating if it was found.
func GetCashierIDFromContext(c *gin.Context) (string, bool) {
	id, ok := c.Request.Context().Value(cashierIDKey).(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

// GetCashierFromContext retrieves the full cashier identity, if the request was authenticated.
func GetCashierFromContext(c *gin.Context) (Cashier, bool) {
	id, ok := GetCashierIDFromContext(c)
	if !ok {
		return Cashier{}, false
	}
	ctx := c.Request.Context()
	name, _ := ctx.Value(cashierNameKey).(string)
	email, _ := ctx.Value(cashierEmailKey).(string)
	return Cashier{ID: id, Name: name, Email: email}, true
}
