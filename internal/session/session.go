package session

import (
	"errors"
	"net/http"

	"github.com/gofrs/uuid/v5"
)

// Cookie contract shared with the HTTP boundary. Sessions live entirely on
// the client; the cookie expiry is the only lifetime enforcement.
const (
	CookieName   = "sessionId"
	CookiePath   = "/"
	CookieMaxAge = 7 * 24 * 60 * 60 // 7 days
)

// ErrUnauthorized is returned when no session token was presented and the
// operation does not mint one.
var ErrUnauthorized = errors.New("session: no token presented")

// Resolution is the outcome of resolving a request's session token.
// IsNew tells the caller the token must be persisted on the client.
type Resolution struct {
	Token string
	IsNew bool
}

// Resolve returns the presented token unchanged when there is one. When the
// token is absent, it either mints a fresh random token (create path) or
// rejects the request (read paths).
func Resolve(presented string, mintIfAbsent bool) (Resolution, error) {
	if presented != "" {
		return Resolution{Token: presented}, nil
	}

	if !mintIfAbsent {
		return Resolution{}, ErrUnauthorized
	}

	token, err := uuid.NewV4()
	if err != nil {
		return Resolution{}, err
	}

	return Resolution{Token: token.String(), IsNew: true}, nil
}

// Cookie builds the session cookie for a newly minted token. The resolver
// never touches the transport itself; handlers attach this to the response.
func Cookie(token string) http.Cookie {
	return http.Cookie{
		Name:   CookieName,
		Value:  token,
		Path:   CookiePath,
		MaxAge: CookieMaxAge,
	}
}
