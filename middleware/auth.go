package middleware

import (
	"errors"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const sessionTokenKey = "session_token"

// SessionClaims ties a signed token to one seat in one room.
type SessionClaims struct {
	RoomCode string `json:"room_code"`
	PlayerID string `json:"player_id"`
	jwt.RegisteredClaims
}

func jwtKey() []byte {
	return []byte(os.Getenv("KEY"))
}

// MintSessionToken issues the token a player uses for every later request
// in the room, valid well past any realistic game length.
func MintSessionToken(roomCode string, playerID string) (string, error) {
	claims := &SessionClaims{
		RoomCode: roomCode,
		PlayerID: playerID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtKey())
}

// ParseSessionToken validates the signature and expiry and returns the
// claims.
func ParseSessionToken(tokenString string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return jwtKey(), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.RoomCode == "" || claims.PlayerID == "" {
		return nil, errors.New("incomplete session claims")
	}
	return claims, nil
}

// StoreSessionToken keeps the freshly minted token in the cookie session so
// browser clients stay identified without resending the header.
func StoreSessionToken(c *gin.Context, token string) {
	session := sessions.Default(c)
	session.Set(sessionTokenKey, token)
	if err := session.Save(); err != nil {
		log.Printf("[SESSION-ERROR] Could not save session cookie: %v", err)
	}
}

// SessionFromRequest resolves the caller's identity from the Authorization
// header first, falling back to the cookie session.
func SessionFromRequest(c *gin.Context) (*SessionClaims, error) {
	if header := c.GetHeader("Authorization"); header != "" {
		raw := strings.TrimPrefix(header, "Bearer ")
		return ParseSessionToken(raw)
	}
	session := sessions.Default(c)
	if v := session.Get(sessionTokenKey); v != nil {
		if raw, ok := v.(string); ok {
			return ParseSessionToken(raw)
		}
	}
	return nil, errors.New("no session token")
}

// AuthRequired rejects requests with no resolvable player session and
// stashes the claims for the handler.
func AuthRequired(c *gin.Context) {
	claims, err := SessionFromRequest(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	c.Set("session_claims", claims)
	c.Next()
}

// ClaimsFromContext fetches what AuthRequired stored.
func ClaimsFromContext(c *gin.Context) (*SessionClaims, error) {
	v, ok := c.Get("session_claims")
	if !ok {
		return nil, errors.New("no session in context")
	}
	claims, ok := v.(*SessionClaims)
	if !ok {
		return nil, errors.New("no session in context")
	}
	return claims, nil
}
