package service

import (
	"context"
	"fmt"

	"github.com/memvault/memvault/internal/adapter"
	"github.com/memvault/memvault/internal/logger"
	"github.com/memvault/memvault/models"
)

type noteService struct {
	adapter adapter.BackendAdapter
	logger  *logger.Logger
}

func NewNoteService(backend adapter.BackendAdapter, log *logger.Logger) NoteService {
	return &noteService{adapter: backend, logger: log}
}

func (n *noteService) Create(ctx context.Context, userID string, note models.Note) (models.Note, error) {
	if userID == "" {
		return models.Note{}, ErrValidationNoUserID
	}
	if note.Title == "" {
		return models.Note{}, ErrValidationNoTitle
	}

	note.UserID = userID
	created, err := n.adapter.CreateNote(ctx, note)
	if err != nil {
		return models.Note{}, fmt.Errorf("create note: %w", err)
	}
	return created, nil
}

func (n *noteService) List(ctx context.Context, userID string) ([]models.Note, error) {
	if userID == "" {
		return nil, ErrValidationNoUserID
	}

	notes, err := n.adapter.ListNotes(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	return notes, nil
}

func (n *noteService) Update(ctx context.Context, note models.Note) error {
	if note.Title == "" {
		return ErrValidationNoTitle
	}

	if err := n.adapter.UpdateNote(ctx, note); err != nil {
		return fmt.Errorf("update note: %w", err)
	}
	return nil
}

func (n *noteService) Delete(ctx context.Context, id string) error {
	if err := n.adapter.DeleteNote(ctx, id); err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	return nil
}
