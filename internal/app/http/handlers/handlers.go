package handlers

import (
	"github.com/sirupsen/logrus"

	"github.com/ellin72/Elquote/internal/domain/quotation/pdf"
	"github.com/ellin72/Elquote/internal/infra/store"
)

type Handlers struct {
	Store store.Store
	PDF   pdf.Generator
	Log   *logrus.Logger
}

func New(st store.Store, gen pdf.Generator, log *logrus.Logger) *Handlers {
	return &Handlers{
		Store: st,
		PDF:   gen,
		Log:   log,
	}
}
