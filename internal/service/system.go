package service

import (
	"github.com/lawfully-illegal/masterhub/internal/lib/stamp"
	"github.com/lawfully-illegal/masterhub/internal/model"
	"github.com/lawfully-illegal/masterhub/internal/repository"
	"github.com/lawfully-illegal/masterhub/internal/server"
)

const hubStatusActive = "active"

// SystemService describes the hub itself: its identity and its health.
type SystemService struct {
	server  *server.Server
	repos   *repository.Repositories
	stamper *stamp.Stamper
}

func NewSystemService(s *server.Server, repos *repository.Repositories, st *stamp.Stamper) *SystemService {
	return &SystemService{server: s, repos: repos, stamper: st}
}

// Index returns the hub descriptor served at the root.
func (s *SystemService) Index() *model.HubDescriptor {
	hub := s.server.Config.Hub

	return &model.HubDescriptor{
		Name:        hub.Name,
		Version:     hub.Version,
		Status:      hubStatusActive,
		Description: hub.Description,
		Endpoints: map[string]string{
			"legal":    "/api/legal/define/:term",
			"money":    "/api/money/types",
			"statute":  "/api/statute/search",
			"evidence": "/api/evidence/submit",
			"trust":    "/api/trust/verify",
			"tender":   "/api/tender/generate",
			"docs":     "/docs",
		},
		Documentation: hub.DocumentationURL,
	}
}

// Status checks that every reference table has rows.
func (s *SystemService) Status() *model.StatusReport {
	report := &model.StatusReport{
		Status:      model.StatusHealthy,
		Timestamp:   stamp.Timestamp(s.stamper.Now()),
		Environment: s.server.Config.Primary.Env,
		Version:     s.server.Config.Hub.Version,
		Checks: model.StatusChecks{
			ReferenceData: map[string]model.TableCheck{},
		},
	}

	for table, rows := range s.repos.Sizes() {
		check := model.TableCheck{Status: model.StatusHealthy, Rows: rows}
		if rows == 0 {
			check.Status = model.StatusUnhealthy
			report.Status = model.StatusUnhealthy
		}
		report.Checks.ReferenceData[table] = check
	}

	return report
}
