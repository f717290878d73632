// Package browse serves a read-only REST view over the fixture
// repositories: agents, workers and claims, plus per-bounty claims.
package browse

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/meatsuits/bountyboard/internal/agent"
	"github.com/meatsuits/bountyboard/internal/bounty"
	"github.com/meatsuits/bountyboard/internal/claim"
	"github.com/meatsuits/bountyboard/internal/fixture"
	"github.com/meatsuits/bountyboard/internal/worker"
	"github.com/meatsuits/bountyboard/pkg/cerr"
)

type AgentsResponse struct {
	Agents []*agent.Agent `json:"agents"`
	Total  int            `json:"total"`
}

type WorkersResponse struct {
	Workers []*worker.Worker `json:"workers"`
	Total   int              `json:"total"`
}

type BountiesResponse struct {
	Bounties []*bounty.Bounty `json:"bounties"`
	Total    int              `json:"total"`
}

type ClaimsResponse struct {
	Claims []*claim.Claim `json:"claims"`
	Total  int            `json:"total"`
}

type Server struct {
	agents   agent.Repository
	workers  worker.Repository
	bounties bounty.Repository
	claims   claim.Repository
}

func NewServer(agents agent.Repository, workers worker.Repository, bounties bounty.Repository, claims claim.Repository) *Server {
	return &Server{agents: agents, workers: workers, bounties: bounties, claims: claims}
}

// Routes registers the browse endpoints on r. Handlers report through the
// cerr response receiver, so r must carry cerr.NewJSONResponseChiMiddleware.
func (s *Server) Routes(r chi.Router) {
	r.Get("/agents", s.listAgents)
	r.Get("/agents/{id}", s.getAgent)
	r.Get("/agents/{id}/bounties", s.listAgentBounties)
	r.Get("/workers", s.listWorkers)
	r.Get("/workers/{id}", s.getWorker)
	r.Get("/workers/{id}/claims", s.listWorkerClaims)
	r.Get("/bounties/{id}/claims", s.listBountyClaims)
	r.Get("/claims", s.listClaims)
}

func (s *Server) listAgents(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	agents, err := s.agents.List(ctx)
	if err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}
	cerr.SetJSONResponse(ctx, AgentsResponse{Agents: agents, Total: len(agents)})
}

func (s *Server) getAgent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	a, err := s.agents.Get(ctx, chi.URLParam(r, "id"))
	if err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}
	cerr.SetJSONResponse(ctx, a)
}

func (s *Server) listAgentBounties(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")
	if _, err := s.agents.Get(ctx, id); err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}
	bounties, err := s.bounties.ListByAgent(ctx, id)
	if err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}
	cerr.SetJSONResponse(ctx, BountiesResponse{Bounties: bounties, Total: len(bounties)})
}

// listWorkers accepts optional status and sector query filters. A sector
// without a status narrows the full roster.
func (s *Server) listWorkers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()
	status := worker.Status(q.Get("status"))
	sector := q.Get("sector")

	var (
		workers []*worker.Worker
		err     error
	)
	switch {
	case status == "":
		workers, err = s.workers.List(ctx)
		if err == nil && sector != "" {
			workers = fixture.Filter(workers, func(w *worker.Worker) bool { return w.Sector == sector })
		}
	case !status.Valid():
		cerr.SetNewJSONError(ctx, cerr.InvalidArgument, "unknown worker status: "+string(status), nil)
		return
	default:
		workers, err = s.workers.ListByStatus(ctx, status, sector)
	}
	if err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}
	cerr.SetJSONResponse(ctx, WorkersResponse{Workers: workers, Total: len(workers)})
}

func (s *Server) getWorker(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	wk, err := s.workers.Get(ctx, chi.URLParam(r, "id"))
	if err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}
	cerr.SetJSONResponse(ctx, wk)
}

func (s *Server) listWorkerClaims(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")
	if _, err := s.workers.Get(ctx, id); err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}
	claims, err := s.claims.ListByWorker(ctx, id)
	if err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}
	cerr.SetJSONResponse(ctx, ClaimsResponse{Claims: claims, Total: len(claims)})
}

func (s *Server) listBountyClaims(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")
	if _, err := s.bounties.Get(ctx, id); err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}
	claims, err := s.claims.ListByBounty(ctx, id)
	if err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}
	cerr.SetJSONResponse(ctx, ClaimsResponse{Claims: claims, Total: len(claims)})
}

func (s *Server) listClaims(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	claims, err := s.claims.List(ctx)
	if err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}
	cerr.SetJSONResponse(ctx, ClaimsResponse{Claims: claims, Total: len(claims)})
}
