package auth

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"net/http"

	"portfolio-app/config"
	"portfolio-app/database"
	"portfolio-app/internal/domain/users"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/gin-gonic/gin"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

func googleOAuthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     config.GOOGLE_CLIENT_ID,
		ClientSecret: config.GOOGLE_CLIENT_SECRET,
		RedirectURL:  config.GOOGLE_REDIRECT_URL,
		Scopes: []string{
			"openid",
			"email",
		},
		Endpoint: google.Endpoint,
	}
}

func randomState() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// GET /auth/google
func GoogleStart(c *gin.Context) {
	if config.GOOGLE_CLIENT_ID == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "Google sign-in not configured"})
		return
	}

	state, err := randomState()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate state"})
		return
	}

	// store state in an HttpOnly cookie
	c.SetCookie(
		"oauth_state",
		state,
		300, // 5 minutes
		"/",
		"",    // domain (set in prod)
		false, // secure (true in prod HTTPS)
		true,  // httpOnly
	)

	url := googleOAuthConfig().AuthCodeURL(state, oauth2.AccessTypeOnline)
	c.Redirect(http.StatusFound, url)
}

type googleClaims struct {
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Sub           string `json:"sub"`
}

func verifyGoogleIDToken(c *gin.Context, rawIDToken string) (*googleClaims, error) {
	provider, err := oidc.NewProvider(c.Request.Context(), "https://accounts.google.com")
	if err != nil {
		return nil, fmt.Errorf("failed to reach google oidc provider")
	}

	verifier := provider.Verifier(&oidc.Config{ClientID: config.GOOGLE_CLIENT_ID})
	idToken, err := verifier.Verify(c.Request.Context(), rawIDToken)
	if err != nil {
		return nil, fmt.Errorf("invalid id_token")
	}

	var claims googleClaims
	if err := idToken.Claims(&claims); err != nil {
		return nil, fmt.Errorf("failed to parse id_token claims")
	}
	return &claims, nil
}

// GET /auth/google/callback
//
// Only the configured admin address may sign in this way; this is a
// single-admin site, not a federated signup.
func GoogleCallback(c *gin.Context) {
	state := c.Query("state")
	code := c.Query("code")
	if code == "" || state == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing code/state"})
		return
	}

	cookieState, err := c.Cookie("oauth_state")
	if err != nil || cookieState != state {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid oauth state"})
		return
	}

	tok, err := googleOAuthConfig().Exchange(c.Request.Context(), code)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "failed to exchange code"})
		return
	}

	rawIDToken, ok := tok.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing id_token"})
		return
	}

	claims, err := verifyGoogleIDToken(c, rawIDToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	if claims.Email == "" || !claims.EmailVerified {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "google account has no verified email"})
		return
	}
	if claims.Email != config.ADMIN_EMAIL {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}

	var user users.AdminUser
	if err := database.DB.Where("email = ?", claims.Email).First(&user).Error; err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}

	if user.GoogleSub == nil {
		sub := claims.Sub
		if err := database.DB.Model(&users.AdminUser{}).
			Where("id = ?", user.ID).
			Update("google_sub", sub).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to link google account"})
			return
		}
	}

	tokenString, err := issueAppJWT(&user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create token"})
		return
	}

	if config.GOOGLE_FRONTEND_REDIRECT != "" {
		c.Redirect(http.StatusFound, fmt.Sprintf("%s?token=%s", config.GOOGLE_FRONTEND_REDIRECT, tokenString))
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": tokenString})
}
