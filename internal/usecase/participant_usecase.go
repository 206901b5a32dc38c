package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/splitpot/splitpot/internal/domain"
)

// ParticipantUseCase handles participant business logic.
type ParticipantUseCase struct {
	participantRepo ParticipantRepository
	idGen           IDGenerator
	snapshots       *snapshotInvalidator
}

// NewParticipantUseCase creates a new ParticipantUseCase.
func NewParticipantUseCase(participantRepo ParticipantRepository, idGen IDGenerator, cache Cache) *ParticipantUseCase {
	return &ParticipantUseCase{
		participantRepo: participantRepo,
		idGen:           idGen,
		snapshots:       &snapshotInvalidator{cache: cache},
	}
}

// CreateParticipantInput represents input for registering a participant.
type CreateParticipantInput struct {
	Name string
}

// CreateParticipant registers a new participant.
func (uc *ParticipantUseCase) CreateParticipant(ctx context.Context, input CreateParticipantInput) (*domain.Participant, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domain.ErrInvalidName
	}

	participant := &domain.Participant{
		ID:        uc.idGen.Generate(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}

	if err := uc.participantRepo.Create(ctx, participant); err != nil {
		return nil, err
	}

	uc.snapshots.invalidate(ctx)

	return participant, nil
}

// GetParticipant retrieves a participant by ID.
func (uc *ParticipantUseCase) GetParticipant(ctx context.Context, id string) (*domain.Participant, error) {
	return uc.participantRepo.GetByID(ctx, id)
}

// ListParticipants lists all participants in registration order.
func (uc *ParticipantUseCase) ListParticipants(ctx context.Context) ([]*domain.Participant, error) {
	return uc.participantRepo.List(ctx)
}

// RenameParticipant changes a participant's display name.
func (uc *ParticipantUseCase) RenameParticipant(ctx context.Context, id, name string) (*domain.Participant, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ErrInvalidName
	}

	if err := uc.participantRepo.UpdateName(ctx, id, name); err != nil {
		return nil, err
	}

	return uc.participantRepo.GetByID(ctx, id)
}

// DeleteParticipant removes a participant. The deletion cascades: the
// participant is removed from every expense's share set, and every expense
// they paid for is deleted outright.
func (uc *ParticipantUseCase) DeleteParticipant(ctx context.Context, id string) error {
	if err := uc.participantRepo.Delete(ctx, id); err != nil {
		return err
	}

	uc.snapshots.invalidate(ctx)

	return nil
}
