package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/vaibhav/lifehub-api/internal/models"

	"gorm.io/gorm"
)

// ErrDuplicateName is returned when a unique name constraint is violated
var ErrDuplicateName = errors.New("a record with this name already exists")

// NoteRepository defines the interface for note data access
type NoteRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Note, error)
	FindAll(ctx context.Context) ([]models.Note, error)
	FindByCategoryID(ctx context.Context, categoryID uint) ([]models.Note, error)
	Create(ctx context.Context, note *models.Note) error
	Update(ctx context.Context, note *models.Note) error
	SetPinned(ctx context.Context, id uint, pinned bool) error
	Delete(ctx context.Context, id uint) error
}

type noteRepository struct {
	db *gorm.DB
}

// NewNoteRepository creates a new note repository
func NewNoteRepository(db *gorm.DB) NoteRepository {
	return &noteRepository{db: db}
}

func (r *noteRepository) FindByID(ctx context.Context, id uint) (*models.Note, error) {
	var note models.Note
	err := r.db.WithContext(ctx).
		Preload("Category").
		First(&note, id).Error
	if err != nil {
		return nil, err
	}
	return &note, nil
}

// FindAll returns pinned notes first, then the rest by recency. A dangling
// category_id simply leaves Category nil; no join failure.
func (r *noteRepository) FindAll(ctx context.Context) ([]models.Note, error) {
	var notes []models.Note
	err := r.db.WithContext(ctx).
		Preload("Category").
		Order("is_pinned DESC, updated_at DESC").
		Find(&notes).Error
	return notes, err
}

func (r *noteRepository) FindByCategoryID(ctx context.Context, categoryID uint) ([]models.Note, error) {
	var notes []models.Note
	err := r.db.WithContext(ctx).
		Preload("Category").
		Where("category_id = ?", categoryID).
		Order("is_pinned DESC, updated_at DESC").
		Find(&notes).Error
	return notes, err
}

func (r *noteRepository) Create(ctx context.Context, note *models.Note) error {
	return r.db.WithContext(ctx).Create(note).Error
}

func (r *noteRepository) Update(ctx context.Context, note *models.Note) error {
	return r.db.WithContext(ctx).Save(note).Error
}

func (r *noteRepository) SetPinned(ctx context.Context, id uint, pinned bool) error {
	return r.db.WithContext(ctx).
		Model(&models.Note{}).
		Where("id = ?", id).
		Update("is_pinned", pinned).Error
}

func (r *noteRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Note{}, id).Error
}

// NoteCategoryRepository defines the interface for note category data access
type NoteCategoryRepository interface {
	FindByID(ctx context.Context, id uint) (*models.NoteCategory, error)
	FindAll(ctx context.Context) ([]models.NoteCategory, error)
	Create(ctx context.Context, category *models.NoteCategory) error
	Update(ctx context.Context, category *models.NoteCategory) error
	Delete(ctx context.Context, id uint) error
}

type noteCategoryRepository struct {
	db *gorm.DB
}

// NewNoteCategoryRepository creates a new note category repository
func NewNoteCategoryRepository(db *gorm.DB) NoteCategoryRepository {
	return &noteCategoryRepository{db: db}
}

func (r *noteCategoryRepository) FindByID(ctx context.Context, id uint) (*models.NoteCategory, error) {
	var category models.NoteCategory
	if err := r.db.WithContext(ctx).First(&category, id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *noteCategoryRepository) FindAll(ctx context.Context) ([]models.NoteCategory, error) {
	var categories []models.NoteCategory
	err := r.db.WithContext(ctx).
		Order("sort_order ASC, name ASC").
		Find(&categories).Error
	return categories, err
}

func (r *noteCategoryRepository) Create(ctx context.Context, category *models.NoteCategory) error {
	if err := r.db.WithContext(ctx).Create(category).Error; err != nil {
		if isDuplicateName(err) {
			return ErrDuplicateName
		}
		return err
	}
	return nil
}

func (r *noteCategoryRepository) Update(ctx context.Context, category *models.NoteCategory) error {
	return r.db.WithContext(ctx).Save(category).Error
}

// Delete removes the category only. Notes keep their category_id (weak
// reference); they render as uncategorized from then on.
func (r *noteCategoryRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.NoteCategory{}, id).Error
}

func isDuplicateName(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
