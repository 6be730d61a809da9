package app

import (
	"context"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ellin72/Elquote/internal/app/config"
	apphttp "github.com/ellin72/Elquote/internal/app/http"
	"github.com/ellin72/Elquote/internal/domain/quotation/pdf"
	pdfgen "github.com/ellin72/Elquote/internal/domain/quotation/pdf/gofpdf"
	"github.com/ellin72/Elquote/internal/infra/store"
	"github.com/ellin72/Elquote/internal/infra/store/jsonfile"
	"github.com/ellin72/Elquote/internal/infra/store/memory"
	"github.com/ellin72/Elquote/internal/infra/store/postgres"
)

func Run() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	cfg := config.Load()

	st := newStore(cfg, log)
	if closer, ok := st.(interface{ Close() }); ok {
		defer closer.Close()
	}

	gen := pdfgen.New(
		pdf.Company{
			Name:    cfg.CompanyName,
			Tagline: cfg.CompanyTagline,
			Phone:   cfg.CompanyPhone,
			Email:   cfg.CompanyEmail,
			Website: cfg.CompanyWebsite,
		},
		pdf.Assets{
			LogoPath:         cfg.LogoPath,
			PaymentQRPath:    cfg.PaymentQRPath,
			PaymentReference: cfg.PaymentReference,
		},
		log,
	)

	router := apphttp.NewRouter(cfg, st, gen, log)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.WithField("addr", cfg.HTTPAddr).Info("listening")
	log.Fatal(srv.ListenAndServe())
}

// newStore picks the persistence backend: Postgres when configured,
// otherwise the JSON file, otherwise (read-only filesystem) in-process
// memory so the API contract survives unchanged.
func newStore(cfg config.Config, log *logrus.Logger) store.Store {
	if cfg.DatabaseURL != "" {
		st, err := postgres.New(context.Background(), cfg.DatabaseURL)
		if err != nil {
			log.WithError(err).Fatal("postgres store init failed")
		}
		log.Info("using postgres quotation store")
		return st
	}

	st, err := jsonfile.New(cfg.DataFile, log)
	if err != nil {
		log.WithError(err).WithField("path", cfg.DataFile).
			Warn("data file unavailable, falling back to in-memory store")
		return memory.New()
	}
	log.WithField("path", cfg.DataFile).Info("using json file quotation store")
	return st
}
