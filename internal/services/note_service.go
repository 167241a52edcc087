package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/vaibhav/lifehub-api/internal/models"
	"github.com/vaibhav/lifehub-api/internal/repository"
	"gorm.io/gorm"
)

// NoteService manages notepad notes and their categories. Categories are a
// weak reference: deleting one leaves its notes in place, rendered as
// uncategorized.
type NoteService struct {
	noteRepo     repository.NoteRepository
	categoryRepo repository.NoteCategoryRepository
}

// NewNoteService creates a new note service
func NewNoteService(noteRepo repository.NoteRepository, categoryRepo repository.NoteCategoryRepository) *NoteService {
	return &NoteService{
		noteRepo:     noteRepo,
		categoryRepo: categoryRepo,
	}
}

// CreateNoteInput carries the fields for creating a note
type CreateNoteInput struct {
	CategoryID *uint    `json:"category_id"`
	Title      string   `json:"title" binding:"required"`
	Content    *string  `json:"content"`
	Tags       []string `json:"tags"`
}

// CreateNote creates a note. A category ID that does not resolve is accepted
// as-is; display falls back to uncategorized.
func (s *NoteService) CreateNote(ctx context.Context, input CreateNoteInput) (*models.Note, error) {
	note := &models.Note{
		CategoryID: input.CategoryID,
		Title:      input.Title,
		Content:    input.Content,
		Tags:       input.Tags,
	}
	if note.Tags == nil {
		note.Tags = []string{}
	}
	if err := s.noteRepo.Create(ctx, note); err != nil {
		return nil, fmt.Errorf("creating note: %w", err)
	}
	return s.GetNote(ctx, note.ID)
}

// GetNote returns a note with its category resolved
func (s *NoteService) GetNote(ctx context.Context, id uint) (*models.Note, error) {
	note, err := s.noteRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return note, nil
}

// ListNotes returns all notes, pinned first then newest first
func (s *NoteService) ListNotes(ctx context.Context) ([]models.Note, error) {
	return s.noteRepo.FindAll(ctx)
}

// ListNotesByCategory returns the notes in one category
func (s *NoteService) ListNotesByCategory(ctx context.Context, categoryID uint) ([]models.Note, error) {
	return s.noteRepo.FindByCategoryID(ctx, categoryID)
}

// UpdateNoteInput carries the updatable note fields
type UpdateNoteInput struct {
	CategoryID *uint    `json:"category_id"`
	Title      *string  `json:"title"`
	Content    *string  `json:"content"`
	Tags       []string `json:"tags"`
}

// UpdateNote applies a partial update to a note
func (s *NoteService) UpdateNote(ctx context.Context, id uint, input UpdateNoteInput) (*models.Note, error) {
	note, err := s.GetNote(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.CategoryID != nil {
		note.CategoryID = input.CategoryID
	}
	if input.Title != nil {
		note.Title = *input.Title
	}
	if input.Content != nil {
		note.Content = input.Content
	}
	if input.Tags != nil {
		note.Tags = input.Tags
	}

	if err := s.noteRepo.Update(ctx, note); err != nil {
		return nil, fmt.Errorf("updating note %d: %w", id, err)
	}
	return s.GetNote(ctx, id)
}

// SetNotePinned pins or unpins a note
func (s *NoteService) SetNotePinned(ctx context.Context, id uint, pinned bool) (*models.Note, error) {
	if _, err := s.GetNote(ctx, id); err != nil {
		return nil, err
	}
	if err := s.noteRepo.SetPinned(ctx, id, pinned); err != nil {
		return nil, fmt.Errorf("pinning note %d: %w", id, err)
	}
	return s.GetNote(ctx, id)
}

// DeleteNote removes a note
func (s *NoteService) DeleteNote(ctx context.Context, id uint) error {
	if _, err := s.GetNote(ctx, id); err != nil {
		return err
	}
	return s.noteRepo.Delete(ctx, id)
}

// CreateCategoryInput carries the fields for creating a note category
type CreateCategoryInput struct {
	Name      string `json:"name" binding:"required"`
	Color     string `json:"color"`
	Icon      string `json:"icon"`
	SortOrder int    `json:"sort_order"`
}

// CreateCategory creates a note category. Names are unique; duplicates come
// back as a validation error.
func (s *NoteService) CreateCategory(ctx context.Context, input CreateCategoryInput) (*models.NoteCategory, error) {
	color := input.Color
	if color == "" {
		color = models.CategoryColorPurple
	}
	if !models.IsValidCategoryColor(color) {
		return nil, fmt.Errorf("%w: unknown color %q", ErrValidation, color)
	}

	category := &models.NoteCategory{
		Name:      input.Name,
		Color:     color,
		Icon:      input.Icon,
		SortOrder: input.SortOrder,
	}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		if errors.Is(err, repository.ErrDuplicateName) {
			return nil, fmt.Errorf("%w: category %q already exists", ErrValidation, input.Name)
		}
		return nil, fmt.Errorf("creating category: %w", err)
	}
	return category, nil
}

// ListCategories returns all categories in sort order
func (s *NoteService) ListCategories(ctx context.Context) ([]models.NoteCategory, error) {
	return s.categoryRepo.FindAll(ctx)
}

// UpdateCategoryInput carries the updatable category fields
type UpdateCategoryInput struct {
	Name      *string `json:"name"`
	Color     *string `json:"color"`
	Icon      *string `json:"icon"`
	SortOrder *int    `json:"sort_order"`
}

// UpdateCategory applies a partial update to a category
func (s *NoteService) UpdateCategory(ctx context.Context, id uint, input UpdateCategoryInput) (*models.NoteCategory, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if input.Name != nil {
		category.Name = *input.Name
	}
	if input.Color != nil {
		if !models.IsValidCategoryColor(*input.Color) {
			return nil, fmt.Errorf("%w: unknown color %q", ErrValidation, *input.Color)
		}
		category.Color = *input.Color
	}
	if input.Icon != nil {
		category.Icon = *input.Icon
	}
	if input.SortOrder != nil {
		category.SortOrder = *input.SortOrder
	}

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, fmt.Errorf("updating category %d: %w", id, err)
	}
	return category, nil
}

// DeleteCategory removes a category. Its notes keep their dangling category
// ID and render as uncategorized.
func (s *NoteService) DeleteCategory(ctx context.Context, id uint) error {
	if _, err := s.categoryRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.categoryRepo.Delete(ctx, id)
}
