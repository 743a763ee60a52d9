package middleware

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/sessions"
)

const (
	sessionName = "minimart_session"

	// CartIDKey is the gin context key carrying the cart session id.
	CartIDKey = "cart_id"
)

var store *sessions.CookieStore

// InitSessionStore configures the cookie store. Without SESSION_SECRET an
// ephemeral secret is used — carts then die with the process, which is fine
// for a demo shop but logged anyway.
func InitSessionStore() {
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		secret = uuid.NewString()
		log.Println("⚠️ SESSION_SECRET not set — using an ephemeral session secret")
	}

	store = sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 30,
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteLaxMode,
	}
}

// CartSession gives every request a stable cart id, minting one on first
// visit.
func CartSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		session, _ := store.Get(c.Request, sessionName)

		id, ok := session.Values[CartIDKey].(string)
		if !ok || id == "" {
			id = uuid.NewString()
			session.Values[CartIDKey] = id
			if err := session.Save(c.Request, c.Writer); err != nil {
				log.Println("⚠️ Could not save cart session:", err)
			}
		}

		c.Set(CartIDKey, id)
		c.Next()
	}
}
