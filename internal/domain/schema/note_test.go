package schema

import (
	"testing"

	"github.com/ledgerly/finance-tracker-backend/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNote(t *testing.T) {
	s := New()

	t.Run("should default tags to an empty slice", func(t *testing.T) {
		// when
		note, err := s.NewNote(&NoteInput{Title: "Ideas", Content: "save more"})

		// then
		require.NoError(t, err)
		assert.NotNil(t, note.Tags)
		assert.Empty(t, note.Tags)
		assert.False(t, note.IsPinned)
		assert.False(t, note.CreatedAt.IsZero())
		assert.Equal(t, note.CreatedAt, note.UpdatedAt)
	})

	t.Run("should keep explicit pin and tags", func(t *testing.T) {
		// given
		pinned := true

		// when
		note, err := s.NewNote(&NoteInput{
			Title:    "Taxes",
			Content:  "file by april",
			Tags:     []string{"deadline"},
			IsPinned: &pinned,
		})

		// then
		require.NoError(t, err)
		assert.True(t, note.IsPinned)
		assert.Equal(t, []string{"deadline"}, note.Tags)
	})

	t.Run("should reject empty content", func(t *testing.T) {
		// when
		_, err := s.NewNote(&NoteInput{Title: "Ideas"})

		// then
		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "Content", validationErr.Field)
	})
}

func TestCheckNotePatch(t *testing.T) {
	s := New()

	t.Run("should reject an empty tag", func(t *testing.T) {
		// given
		tags := []string{"ok", ""}
		patch := models.NotePatch{Tags: &tags}

		// when
		err := s.CheckNotePatch(&patch)

		// then
		assert.Error(t, err)
	})

	t.Run("should accept a title-only patch", func(t *testing.T) {
		// given
		title := "Renamed"
		patch := models.NotePatch{Title: &title}

		// then
		assert.NoError(t, s.CheckNotePatch(&patch))
	})
}
