package httpapi

import (
	"context"
	"net/http"

	"github.com/manevdusko/fitbody-sub000/internal/cart"
	"github.com/manevdusko/fitbody-sub000/internal/i18n"
)

type contextKey string

const (
	sessionContextKey  contextKey = "session"
	languageContextKey contextKey = "language"

	sessionCookie  = "fitbody_session"
	languageCookie = "fitbody_lang"
)

// LanguageMiddleware resolves the active language: explicit ?lang=
// query parameter first, then the persisted cookie, then the default.
// An explicit choice is persisted for the next visit.
func LanguageMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lang := r.URL.Query().Get("lang")
		fromQuery := lang != ""
		if !fromQuery {
			if c, err := r.Cookie(languageCookie); err == nil {
				lang = c.Value
			}
		}
		lang = i18n.Normalize(lang)

		if fromQuery {
			http.SetCookie(w, &http.Cookie{
				Name:     languageCookie,
				Value:    lang,
				Path:     "/",
				MaxAge:   60 * 60 * 24 * 365,
				SameSite: http.SameSiteLaxMode,
			})
		}

		ctx := context.WithValue(r.Context(), languageContextKey, lang)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SessionMiddleware binds the request to a visitor session, creating
// one (and setting the cookie) when none exists.
func SessionMiddleware(store *cart.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var id string
			if c, err := r.Cookie(sessionCookie); err == nil {
				id = c.Value
			}

			sess := store.GetOrCreate(id)
			if sess.ID != id {
				http.SetCookie(w, &http.Cookie{
					Name:     sessionCookie,
					Value:    sess.ID,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			ctx := context.WithValue(r.Context(), sessionContextKey, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func sessionFromContext(ctx context.Context) *cart.Session {
	sess, _ := ctx.Value(sessionContextKey).(*cart.Session)
	return sess
}

func languageFromContext(ctx context.Context) string {
	if lang, ok := ctx.Value(languageContextKey).(string); ok {
		return lang
	}
	return i18n.Default
}
