package models

import (
	"time"
)

// Note is a notepad entry. The category reference is weak: deleting a
// category does not cascade, and unresolved lookups render as uncategorized.
type Note struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	CategoryID *uint     `gorm:"index" json:"category_id,omitempty"`
	Title      string    `gorm:"not null" json:"title"`
	Content    *string   `gorm:"type:text" json:"content,omitempty"`
	Tags       []string  `gorm:"serializer:json" json:"tags"`
	IsPinned   bool      `gorm:"default:false;index" json:"is_pinned"`
	CreatedAt  time.Time `gorm:"index" json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// Associations
	Category *NoteCategory `gorm:"foreignKey:CategoryID;constraint:OnDelete:NO ACTION" json:"category,omitempty"`
}

// TableName specifies the table name for Note
func (Note) TableName() string {
	return "notes"
}

// UncategorizedName is the display fallback for a missing or deleted category
const UncategorizedName = "Uncategorized"

// CategoryName returns the resolved category name or the fallback
func (n *Note) CategoryName() string {
	if n.Category == nil || n.Category.ID == 0 {
		return UncategorizedName
	}
	return n.Category.Name
}

// NoteCategory groups notes in the sidebar
type NoteCategory struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null;uniqueIndex" json:"name"`
	Color     string    `gorm:"default:purple;not null" json:"color"`
	Icon      string    `gorm:"not null" json:"icon"`
	SortOrder int       `gorm:"default:0;not null" json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for NoteCategory
func (NoteCategory) TableName() string {
	return "note_categories"
}

// Category color constants (fixed palette of six)
const (
	CategoryColorPurple = "purple"
	CategoryColorSky    = "sky"
	CategoryColorPink   = "pink"
	CategoryColorYellow = "yellow"
	CategoryColorGreen  = "green"
	CategoryColorCoral  = "coral"
)

// CategoryColors lists the valid palette entries
var CategoryColors = []string{
	CategoryColorPurple,
	CategoryColorSky,
	CategoryColorPink,
	CategoryColorYellow,
	CategoryColorGreen,
	CategoryColorCoral,
}

// IsValidCategoryColor reports whether color is in the palette
func IsValidCategoryColor(color string) bool {
	for _, c := range CategoryColors {
		if c == color {
			return true
		}
	}
	return false
}

// NoteResponse is the JSON response format for notes
type NoteResponse struct {
	ID           uint      `json:"id"`
	CategoryID   *uint     `json:"category_id,omitempty"`
	CategoryName string    `json:"category_name"`
	Title        string    `json:"title"`
	Content      *string   `json:"content,omitempty"`
	Tags         []string  `json:"tags"`
	IsPinned     bool      `json:"is_pinned"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ToResponse converts Note to NoteResponse
func (n *Note) ToResponse() NoteResponse {
	tags := n.Tags
	if tags == nil {
		tags = []string{}
	}
	return NoteResponse{
		ID:           n.ID,
		CategoryID:   n.CategoryID,
		CategoryName: n.CategoryName(),
		Title:        n.Title,
		Content:      n.Content,
		Tags:         tags,
		IsPinned:     n.IsPinned,
		CreatedAt:    n.CreatedAt,
		UpdatedAt:    n.UpdatedAt,
	}
}
