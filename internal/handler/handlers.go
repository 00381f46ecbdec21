// Package handler is the first layer. The first entry point
// for business logic after the router.
//
// It parses requests, handles input validation using the
// validation package, and calls the appropriate service layer.
// It acts as the interface between the HTTP request and the core
// business logic.
package handler

import (
	"github.com/pkg/errors"

	"github.com/lawfully-illegal/masterhub/internal/docs"
	"github.com/lawfully-illegal/masterhub/internal/server"
	"github.com/lawfully-illegal/masterhub/internal/service"
)

// Handlers is a container that groups all HTTP handlers.
//
// Router setup receives this one object instead of many.
type Handlers struct {
	System   *SystemHandler
	Legal    *LegalHandler
	Money    *MoneyHandler
	Statute  *StatuteHandler
	Evidence *EvidenceHandler
	Trust    *TrustHandler
	Tender   *TenderHandler
}

// NewHandlers constructs the handler container.
func NewHandlers(s *server.Server, services *service.Services) (*Handlers, error) {
	generator, err := docs.NewGenerator(s.Config.Hub, services.Letters)
	if err != nil {
		return nil, errors.WithMessage(err, "docs generator")
	}

	return &Handlers{
		System:   NewSystemHandler(s, services.System, generator),
		Legal:    NewLegalHandler(s, services.Legal),
		Money:    NewMoneyHandler(s, services.Money),
		Statute:  NewStatuteHandler(s, services.Statute),
		Evidence: NewEvidenceHandler(s, services.Evidence),
		Trust:    NewTrustHandler(s, services.Trust),
		Tender:   NewTenderHandler(s, services.Tender),
	}, nil
}
