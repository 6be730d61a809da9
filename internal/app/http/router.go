package http

import (
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"github.com/ellin72/Elquote/internal/app/config"
	"github.com/ellin72/Elquote/internal/app/http/handlers"
	"github.com/ellin72/Elquote/internal/app/http/middleware"
	"github.com/ellin72/Elquote/internal/domain/quotation/pdf"
	"github.com/ellin72/Elquote/internal/infra/store"
)

func NewRouter(cfg config.Config, st store.Store, gen pdf.Generator, log *logrus.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logging(log))
	r.Use(middleware.CORS(cfg.CORSAllowOrigin))

	h := handlers.New(st, gen, log)

	r.Get("/health", h.Health)

	r.Route("/api", func(r chi.Router) {
		r.Post("/generate-pdf", h.GeneratePDF)
		r.Post("/save-quotation", h.SaveQuotation)
		r.Get("/quotations", h.ListQuotations)
	})

	// The browser form lives in the public dir; serving it is a thin
	// collaborator surface, skipped when the dir is absent.
	if info, err := os.Stat(cfg.PublicDir); err == nil && info.IsDir() {
		r.Handle("/*", http.FileServer(http.Dir(cfg.PublicDir)))
	}

	return r
}
