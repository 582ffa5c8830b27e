package factory

import (
	"github.com/ledgerly/finance-tracker-backend/internal/domain/schema"
	"github.com/ledgerly/finance-tracker-backend/internal/infra/db/mongodb/note_repository"
	controllers "github.com/ledgerly/finance-tracker-backend/internal/presentation/controllers/note"
	"go.mongodb.org/mongo-driver/mongo"
)

func MakeCreateNoteController(db *mongo.Database) *controllers.CreateNoteController {
	createNote := note_repository.NewCreateNoteRepository(db)
	return controllers.NewCreateNoteController(createNote, schema.New())
}

func MakeGetNotesController(db *mongo.Database) *controllers.GetNotesController {
	findNotes := note_repository.NewFindNotesRepository(db)
	return controllers.NewGetNotesController(findNotes)
}

func MakeGetNoteByIdController(db *mongo.Database) *controllers.GetNoteByIdController {
	findNoteById := note_repository.NewFindNoteByIdRepository(db)
	return controllers.NewGetNoteByIdController(findNoteById)
}

func MakeUpdateNoteController(db *mongo.Database) *controllers.UpdateNoteController {
	updateNote := note_repository.NewUpdateNoteRepository(db)
	return controllers.NewUpdateNoteController(updateNote, schema.New())
}

func MakeToggleNotePinController(db *mongo.Database) *controllers.ToggleNotePinController {
	toggleNotePin := note_repository.NewToggleNotePinRepository(db)
	return controllers.NewToggleNotePinController(toggleNotePin)
}

func MakeDeleteNoteController(db *mongo.Database) *controllers.DeleteNoteController {
	deleteNote := note_repository.NewDeleteNoteRepository(db)
	return controllers.NewDeleteNoteController(deleteNote)
}
