package service

import (
	"github.com/pkg/errors"

	"github.com/lawfully-illegal/masterhub/internal/lib/letter"
	"github.com/lawfully-illegal/masterhub/internal/lib/stamp"
	"github.com/lawfully-illegal/masterhub/internal/repository"
	"github.com/lawfully-illegal/masterhub/internal/server"
)

type Services struct {
	System   *SystemService
	Legal    *LegalService
	Money    *MoneyService
	Statute  *StatuteService
	Evidence *EvidenceService
	Trust    *TrustService
	Tender   *TenderService

	// Letters is shared with the documentation generator.
	Letters *letter.Renderer
}

func NewService(s *server.Server, repos *repository.Repositories) (*Services, error) {
	return NewServiceWithStamper(s, repos, stamp.New())
}

// NewServiceWithStamper is NewService with a caller-provided clock and id
// source.
func NewServiceWithStamper(s *server.Server, repos *repository.Repositories, st *stamp.Stamper) (*Services, error) {
	renderer, err := letter.NewRenderer()
	if err != nil {
		return nil, errors.WithMessage(err, "letter renderer")
	}

	return &Services{
		System:   NewSystemService(s, repos, st),
		Legal:    NewLegalService(repos.Terms),
		Money:    NewMoneyService(repos.MoneyTypes),
		Statute:  NewStatuteService(repos.Statutes),
		Evidence: NewEvidenceService(s, st),
		Trust:    NewTrustService(s, repos.Obligations, st),
		Tender:   NewTenderService(s, renderer, st),
		Letters:  renderer,
	}, nil
}
