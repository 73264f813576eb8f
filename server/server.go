// Package server exposes the itinera planner over HTTP.
//
// Routes:
//
//	GET  /           liveness message
//	GET  /healthz    liveness message
//	POST /itinerary  plan a route
//
// POST /itinerary accepts {"start", "targets", "max_iterations",
// "time_limit"} (budgets optional; deployment defaults 2000 iterations and
// 10 seconds) and answers 200 with the route, 400 for rejected input
// (unknown node, oversized target set, malformed body or budgets), or 503
// when no route was found within the budgets — the retry-with-larger-
// budgets case, deliberately distinct from 400.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	log "github.com/sirupsen/logrus"

	"github.com/aerovia/itinera/graph"
	"github.com/aerovia/itinera/search"
)

// Deployment defaults for requests that omit budgets. The iteration budget
// is deliberately tighter than the library default: an HTTP caller should
// opt in to long searches.
const (
	DefaultMaxIterations = 2000
	DefaultTimeLimit     = 10 * time.Second
)

type itineraryRequest struct {
	Start         string   `json:"start"`
	Targets       []string `json:"targets"`
	MaxIterations *int     `json:"max_iterations"`
	TimeLimitSecs *float64 `json:"time_limit"`
}

type legResponse struct {
	From     string  `json:"from"`
	To       string  `json:"to"`
	Distance float64 `json:"distance"`
	Record   any     `json:"record,omitempty"`
}

type itineraryResponse struct {
	Path          []string      `json:"path"`
	Cost          float64       `json:"cost"`
	Legs          []legResponse `json:"legs"`
	TotalDistance float64       `json:"total_distance"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// New returns the HTTP handler serving the planner over g. The graph must
// stay immutable while the handler is mounted; concurrent requests share
// it read-only.
func New(g *graph.Graph) http.Handler {
	router := httprouter.New()

	alive := func(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
		writeJSON(w, http.StatusOK, messageResponse{Message: "itinera planner is running"})
	}
	router.GET("/", alive)
	router.GET("/healthz", alive)

	router.POST("/itinerary", func(w http.ResponseWriter, req *http.Request, _ httprouter.Params) {
		handleItinerary(g, w, req)
	})

	return router
}

func handleItinerary(g *graph.Graph, w http.ResponseWriter, req *http.Request) {
	var body itineraryRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "malformed request body: " + err.Error()})
		return
	}

	maxIterations := DefaultMaxIterations
	if body.MaxIterations != nil {
		if *body.MaxIterations < 0 {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "max_iterations must be non-negative"})
			return
		}
		maxIterations = *body.MaxIterations
	}

	timeLimit := DefaultTimeLimit
	if body.TimeLimitSecs != nil {
		if *body.TimeLimitSecs <= 0 {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "time_limit must be positive"})
			return
		}
		timeLimit = time.Duration(*body.TimeLimitSecs * float64(time.Second))
	}

	res, err := search.Solve(g, body.Start, body.Targets,
		search.WithMaxIterations(maxIterations),
		search.WithTimeLimit(timeLimit),
	)
	if err != nil {
		// Every Solve error is an input rejection by contract.
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	if !res.Found {
		log.Infof("no itinerary for start=%s targets=%v: %s after %d iterations",
			body.Start, body.Targets, res.Reason, res.Iterations)
		writeJSON(w, http.StatusServiceUnavailable,
			errorResponse{Error: "no itinerary found within limits"})
		return
	}

	legs, total, err := search.Reconstruct(g, res.Path)
	if err != nil {
		// Reconstruction can only fail on an internal inconsistency.
		log.WithError(err).Error("itinerary reconstruction failed")
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal inconsistency"})
		return
	}

	out := itineraryResponse{
		Path:          res.Path,
		Cost:          res.Cost,
		Legs:          make([]legResponse, 0, len(legs)),
		TotalDistance: total,
	}
	for _, leg := range legs {
		out.Legs = append(out.Legs, legResponse{
			From:     leg.From,
			To:       leg.To,
			Distance: leg.Weight,
			Record:   leg.Payload,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.WithError(err).Debug("writing response failed")
	}
}
