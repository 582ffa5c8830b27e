package routes

import (
	"net/http"

	"github.com/ledgerly/finance-tracker-backend/internal/setup/adapters"
	"github.com/ledgerly/finance-tracker-backend/internal/setup/factory"
	"github.com/ledgerly/finance-tracker-backend/internal/setup/middlewares"
	"go.mongodb.org/mongo-driver/mongo"
)

func NoteRoutes(server *http.ServeMux, db *mongo.Database) {
	server.Handle("POST /notes", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeCreateNoteController(db)),
	))

	server.Handle("GET /notes", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeGetNotesController(db)),
	))

	server.Handle("GET /notes/{noteId}", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeGetNoteByIdController(db)),
	))

	server.Handle("PUT /notes/{noteId}", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeUpdateNoteController(db)),
	))

	server.Handle("PUT /notes/{noteId}/pin", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeToggleNotePinController(db)),
	))

	server.Handle("DELETE /notes/{noteId}", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeDeleteNoteController(db)),
	))
}
