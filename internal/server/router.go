package server

import (
	"net/http"

	"github.com/shouni/canon-forge-kit/internal/server/handlers"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter は、ミドルウェアとルーティングを統合した http.Handler を構築します。
func NewRouter(h *handlers.Handler) http.Handler {
	r := chi.NewRouter()

	setupCommonMiddleware(r)
	setupRoutes(r, h)

	return r
}

func setupCommonMiddleware(r *chi.Mux) {
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.CleanPath)
}

func setupRoutes(r chi.Router, h *handlers.Handler) {
	r.Route("/api", func(r chi.Router) {
		r.Get("/state", h.State)
		r.Post("/auth/clear", h.ClearAuth)

		// --- 作業中プロファイル ---
		r.Route("/character", func(r chi.Router) {
			r.Put("/", h.UpdateCharacter)
			r.Post("/randomize", h.RandomizeCharacter)
			r.Post("/images/{category}", h.GenerateCharacterImage)
		})
		r.Route("/set", func(r chi.Router) {
			r.Put("/", h.UpdateSet)
			r.Post("/randomize", h.RandomizeSet)
			r.Post("/images/{category}", h.GenerateSetImage)
		})
		r.Post("/composite", h.GenerateComposite)
		r.Post("/composite/randomize", h.RandomizeComposite)

		// --- 保存済みコレクション ---
		r.Route("/characters", func(r chi.Router) {
			r.Get("/", h.ListCharacters)
			r.Post("/", h.SaveCharacter)
			r.Post("/{id}/select", h.SelectCharacter)
			r.Delete("/{id}", h.DeleteCharacter)
		})
		r.Route("/sets", func(r chi.Router) {
			r.Get("/", h.ListSets)
			r.Post("/", h.SaveSet)
			r.Post("/{id}/select", h.SelectSet)
			r.Delete("/{id}", h.DeleteSet)
		})
	})
}
