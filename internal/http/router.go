package http

import (
	nethttp "net/http"

	"github.com/preston-bernstein/youth-soccer-scout/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux. The admin routes are only
// mounted when admin is non-nil.
func NewRouter(handler *handlers.Handler, admin *handlers.AdminHandler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/ready", handler.Ready)
	mux.HandleFunc("/rankings", handler.Rankings)
	mux.HandleFunc("/rankings/", handler.TeamByName)
	mux.HandleFunc("/match", handler.Match)
	mux.HandleFunc("/compare", handler.Compare)
	mux.HandleFunc("/opponents", handler.Opponents)
	mux.HandleFunc("/review", handler.Review)
	if admin != nil {
		mux.HandleFunc("/admin/rankings/refresh", admin.RefreshRankings)
	}
	return mux
}
