package middleware

import (
	"log/slog"
	"net/http"

	shared "github.com/mcoot/dicegame-go/internal/middleware"
	"github.com/mcoot/dicegame-go/internal/web/templates/pages"
)

// Recovery renders the HTML error page when a handler panics
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return shared.Recovery(logger, webPanicHandler)
}

func webPanicHandler(w http.ResponseWriter, r *http.Request, _ any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	_ = pages.Error(http.StatusInternalServerError, "Something went wrong. Please try again later.").Render(r.Context(), w)
}
