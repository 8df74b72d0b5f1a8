package middleware

import (
	"context"
	"net/http"

	"github.com/m04kA/SMC-TableBooking/internal/service/wizard"
)

// SessionHeader заголовок с ID сессии гостя
const SessionHeader = "X-Session-ID"

type sessionKey struct{}

// Session находит или создает сессию гостя и сохраняет ее снимок после обработки запроса
func Session(registry SessionRegistry, logger Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, created := registry.Acquire(r.Context(), r.Header.Get(SessionHeader))
			if created {
				logger.Info("Session: new session=%s", sess.ID())
			}

			w.Header().Set(SessionHeader, sess.ID())
			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), sess)))

			// Запрос мог быть отменен клиентом, снимок все равно сохраняем
			if err := registry.Save(context.WithoutCancel(r.Context()), sess); err != nil {
				logger.Error("Session: failed to persist session=%s: %v", sess.ID(), err)
			}
		})
	}
}

// WithSession кладет сессию в контекст
func WithSession(ctx context.Context, sess *wizard.Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, sess)
}

// SessionFromContext достает сессию из контекста
func SessionFromContext(ctx context.Context) (*wizard.Session, bool) {
	sess, ok := ctx.Value(sessionKey{}).(*wizard.Session)
	return sess, ok && sess != nil
}
