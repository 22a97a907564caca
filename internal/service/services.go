package service

import (
	"github.com/MKhiriev/sales-admin/internal/adapter"
	"github.com/MKhiriev/sales-admin/internal/config"
	"github.com/MKhiriev/sales-admin/internal/logger"
	"github.com/MKhiriev/sales-admin/internal/store"
	"github.com/MKhiriev/sales-admin/internal/validators"
	"github.com/MKhiriev/sales-admin/models"
)

type ClientServices struct {
	Sessions    SessionService
	ClientDraft DraftService
	AgentDraft  DraftService
	Entities    EntityService
}

// NewClientServices wires the services over one adapter and one local
// store. Unless cfg.KeepSessionOnUnauthorized is set, any 401 on an
// authenticated request ends the session.
func NewClientServices(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, cfg config.ClientApp, logger *logger.Logger) *ClientServices {
	validator := validators.NewEntityValidator()
	sessions := NewSessionService(storages.Tokens, serverAdapter, logger)

	if !cfg.KeepSessionOnUnauthorized {
		serverAdapter.OnUnauthorized(sessions.HandleUnauthorized)
	}

	return &ClientServices{
		Sessions:    sessions,
		ClientDraft: NewClientDraftService(serverAdapter, storages.Drafts, validator, logger),
		AgentDraft:  NewAgentDraftService(serverAdapter, storages.Drafts, validator, logger),
		Entities:    NewEntityService(serverAdapter, logger),
	}
}

// Drafts returns the controller of kind, or nil for an unknown kind.
func (s *ClientServices) Drafts(kind models.EntityKind) DraftService {
	switch kind {
	case models.KindClient:
		return s.ClientDraft
	case models.KindAgent:
		return s.AgentDraft
	default:
		return nil
	}
}

// AllDrafts returns every draft controller.
func (s *ClientServices) AllDrafts() []DraftService {
	return []DraftService{s.ClientDraft, s.AgentDraft}
}
