package httpx

import (
	"net/http"
	"runtime/debug"

	"go.uber.org/zap"
)

// RecoveryMiddleware is the outermost fault boundary: the cause is logged
// in full, the client only ever sees a generic message.
func RecoveryMiddleware(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					log.Error("panic recovered",
						zap.Any("error", err),
						zap.String("request_id", RequestIDFrom(r)),
						zap.ByteString("stack", debug.Stack()),
					)

					var wroteHeader bool
					if rw, ok := w.(*responseWriter); ok {
						wroteHeader = rw.wroteHeader()
					}
					if !wroteHeader {
						WriteError(w, r, http.StatusInternalServerError, CodeInternalError, "Something went wrong. Please try again!")
					}
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
