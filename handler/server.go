package handler

import (
	"net/http"

	"anchor/core"
	"anchor/handler/render"
	"anchor/handler/rest"

	"github.com/go-chi/chi"
	"github.com/twitchtv/twirp"
)

// Server server
type Server struct {
	engine   core.IEngineService
	registry *core.Registry
	ledger   core.ILedgerStore
	journal  core.IJournalStore
}

// New new server
func New(
	engine core.IEngineService,
	registry *core.Registry,
	ledger core.ILedgerStore,
	journal core.IJournalStore,
) Server {
	return Server{
		engine:   engine,
		registry: registry,
		ledger:   ledger,
		journal:  journal,
	}
}

// HandleRestAPI handle restful apis
func (s Server) HandleRestAPI() http.Handler {
	r := chi.NewRouter()
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		render.Error(w, twirp.NotFoundError("not found"))
	})

	r.Mount("/", rest.Handle(s.engine, s.registry, s.ledger, s.journal))
	return r
}
