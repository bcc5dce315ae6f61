package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/fetsare/manbacken-depart/internal/models"
	"github.com/fetsare/manbacken-depart/internal/store"
	"github.com/fetsare/manbacken-depart/pkg/board"
)

// Handler handles HTTP requests
type Handler struct {
	client board.Client
}

// NewHandler creates a new HTTP handler
func NewHandler(client board.Client) *Handler {
	return &Handler{client: client}
}

// RegisterRoutes registers all routes
func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/", h.handleIndex).Methods("GET")
	r.HandleFunc("/boards", h.handleBoards).Methods("GET")
	r.HandleFunc("/boards/{board}", h.handleBoard).Methods("GET")
	r.HandleFunc("/boards/{board}/departures", h.handleDepartures).Methods("GET")
}

// ResponseMetadata is shared by all data responses
type ResponseMetadata struct {
	Updated string `json:"updated,omitempty"`
}

// BoardSummary describes a board in the board listing
type BoardSummary struct {
	Name  string `json:"name"`
	Title string `json:"title"`
}

// BoardsResponse lists the configured boards
type BoardsResponse struct {
	Data []BoardSummary `json:"data"`
	ResponseMetadata
}

// BoardResponse carries a full board snapshot
type BoardResponse struct {
	Data store.Snapshot `json:"data"`
	ResponseMetadata
}

// DeparturesResponse carries only the departures of a board
type DeparturesResponse struct {
	Data  []models.Departure `json:"data"`
	Error string             `json:"error,omitempty"`
	ResponseMetadata
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	response := map[string]string{
		"title":  "manbacken-depart",
		"readme": "Real time departures per board, see /boards",
	}
	h.writeJSON(w, response)
}

func (h *Handler) handleBoards(w http.ResponseWriter, r *http.Request) {
	names, err := h.client.GetBoards()
	if err != nil {
		h.writeError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	data := make([]BoardSummary, len(names))
	for i, name := range names {
		data[i] = BoardSummary{Name: name, Title: store.BoardTitle(name)}
	}

	h.writeJSON(w, BoardsResponse{
		Data:             data,
		ResponseMetadata: h.getResponseMetadata(h.client.GetLastUpdate()),
	})
}

func (h *Handler) handleBoard(w http.ResponseWriter, r *http.Request) {
	snap, ok := h.lookupBoard(w, r)
	if !ok {
		return
	}

	h.writeJSON(w, BoardResponse{
		Data:             snap,
		ResponseMetadata: h.getResponseMetadata(snap.Updated),
	})
}

func (h *Handler) handleDepartures(w http.ResponseWriter, r *http.Request) {
	snap, ok := h.lookupBoard(w, r)
	if !ok {
		return
	}

	h.writeJSON(w, DeparturesResponse{
		Data:             snap.Departures,
		Error:            snap.Error,
		ResponseMetadata: h.getResponseMetadata(snap.Updated),
	})
}

func (h *Handler) lookupBoard(w http.ResponseWriter, r *http.Request) (store.Snapshot, bool) {
	name := mux.Vars(r)["board"]

	snap, err := h.client.GetBoard(name)
	if errors.Is(err, store.ErrBoardNotFound) {
		h.writeError(w, err.Error(), http.StatusNotFound)
		return store.Snapshot{}, false
	}
	if err != nil {
		h.writeError(w, err.Error(), http.StatusInternalServerError)
		return store.Snapshot{}, false
	}
	return snap, true
}

func (h *Handler) getResponseMetadata(updated time.Time) ResponseMetadata {
	if updated.IsZero() {
		return ResponseMetadata{}
	}
	return ResponseMetadata{Updated: updated.Format(time.RFC3339)}
}

func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.writeError(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}
