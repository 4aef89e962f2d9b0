package imagesapi

import (
	"context"
	"log"

	"portfolio-app/internal/assets"

	"github.com/gin-gonic/gin"
)

type sessionKey struct{}

// requestContext carries the authenticated admin from the gin context into
// the request context, where the lifecycle manager's SessionProvider can
// see it.
func requestContext(c *gin.Context) context.Context {
	email := c.GetString("email")
	if email == "" {
		return c.Request.Context()
	}
	return context.WithValue(c.Request.Context(), sessionKey{}, assets.Session{
		Email: email,
		Role:  c.GetString("role"),
	})
}

type contextSessionProvider struct{}

func (contextSessionProvider) Session(ctx context.Context) (assets.Session, error) {
	s, ok := ctx.Value(sessionKey{}).(assets.Session)
	if !ok {
		return assets.Session{}, assets.ErrNoSession
	}
	return s, nil
}

// logNotifier reports pipeline outcomes to the server log; the HTTP layer
// separately returns them to the client.
type logNotifier struct{}

func (logNotifier) Success(msg string) { log.Println(msg) }
func (logNotifier) Error(msg string)   { log.Println("ERROR:", msg) }
