package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/sales-admin/internal/adapter"
	"github.com/MKhiriev/sales-admin/internal/logger"
	"github.com/MKhiriev/sales-admin/models"
)

type entityService struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

func NewEntityService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) EntityService {
	return &entityService{adapter: serverAdapter, logger: logger.WithComponent("entities")}
}

func (s *entityService) ListClients(ctx context.Context, hidden bool) ([]models.Client, error) {
	clients, err := s.adapter.ListClients(ctx, hidden)
	if err != nil {
		s.logger.Err(err).Str("func", "entityService.ListClients").Msg("failed to list clients")
		return nil, mapAdapterError(err)
	}
	return clients, nil
}

func (s *entityService) ListAgents(ctx context.Context, hidden bool) ([]models.Agent, error) {
	agents, err := s.adapter.ListAgents(ctx, hidden)
	if err != nil {
		s.logger.Err(err).Str("func", "entityService.ListAgents").Msg("failed to list agents")
		return nil, mapAdapterError(err)
	}
	return agents, nil
}

func (s *entityService) Get(ctx context.Context, kind models.EntityKind, id models.ID) (models.Fields, error) {
	if id.IsZero() {
		return nil, ErrMissingID
	}
	fields, err := s.adapter.Fetch(ctx, kind, id)
	if err != nil {
		return nil, mapAdapterError(err)
	}
	return fields, nil
}

func (s *entityService) Delete(ctx context.Context, kind models.EntityKind, id models.ID) error {
	if id.IsZero() {
		return ErrMissingID
	}

	var (
		res models.DeleteResult
		err error
	)
	switch kind {
	case models.KindClient:
		res, err = s.adapter.DeleteClient(ctx, id)
	case models.KindAgent:
		res, err = s.adapter.DeleteAgent(ctx, id)
	default:
		return fmt.Errorf("%w: %q", models.ErrUnknownEntityKind, kind)
	}
	if err != nil {
		s.logger.Err(err).Str("func", "entityService.Delete").Str("kind", kind.String()).Str("id", id.String()).Msg("failed to delete entity")
		return mapAdapterError(err)
	}

	if !res.Deleted {
		s.logger.Info().Str("kind", kind.String()).Str("id", id.String()).Msg("deletion refused, entity has associations")
		return ErrHasAssociations
	}
	return nil
}
