package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/nightingaleproject/csv2fhir/client"
	"github.com/nightingaleproject/csv2fhir/datasource"
	"github.com/nightingaleproject/csv2fhir/deathrecord"
)

// Router wires the record-to-document engine to its HTTP surface
type Router struct {
	transformer *deathrecord.Transformer
	sqlSource   *datasource.SQLSource
	submitter   *client.Client
	log         zerolog.Logger
}

// NewRouter creates a new Router. sqlSource and submitter are optional.
func NewRouter(transformer *deathrecord.Transformer, sqlSource *datasource.SQLSource, submitter *client.Client, log zerolog.Logger) *Router {
	return &Router{
		transformer: transformer,
		sqlSource:   sqlSource,
		submitter:   submitter,
		log:         log,
	}
}

// Handler builds the route table
func (rt *Router) Handler() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/health", rt.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/fhir/json", rt.handleUpload).Methods(http.MethodPost)
	if rt.sqlSource != nil {
		r.HandleFunc("/fhir/json/db", rt.handleDatabase).Methods(http.MethodPost)
	}
	return r
}

type recordIssue struct {
	Record int    `json:"record"`
	Error  string `json:"error"`
}

type batchResponse struct {
	Bundles []map[string]any `json:"bundles"`
	Errors  []recordIssue    `json:"errors,omitempty"`
}

func (rt *Router) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (rt *Router) handleUpload(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "missing multipart field 'file'")
		return
	}
	defer file.Close()

	records, err := datasource.NewCSVSource(file, rt.log).Read()
	if err != nil {
		rt.log.Warn().Err(err).Msg("Failed to parse uploaded CSV")
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	rt.respondWithBatch(w, r.Context(), records)
}

func (rt *Router) handleDatabase(w http.ResponseWriter, r *http.Request) {
	records, err := rt.sqlSource.Read(r.Context())
	if err != nil {
		rt.log.Error().Err(err).Msg("Failed to read records from database")
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	rt.respondWithBatch(w, r.Context(), records)
}

func (rt *Router) respondWithBatch(w http.ResponseWriter, ctx context.Context, records []deathrecord.Record) {
	result, err := rt.transformer.TransformBatch(records)
	if err != nil {
		// only internal-consistency defects abort the batch
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	response := batchResponse{Bundles: result.Documents}
	for _, recordErr := range result.Errors {
		response.Errors = append(response.Errors, recordIssue{
			Record: recordErr.Index,
			Error:  recordErr.Error(),
		})
	}

	respondWithJSON(w, http.StatusOK, response)

	if rt.submitter != nil {
		rt.forward(ctx, result.Documents)
	}
}

func (rt *Router) forward(ctx context.Context, bundles []map[string]any) {
	for i, bundle := range bundles {
		if err := rt.submitter.SubmitBundle(ctx, bundle); err != nil {
			rt.log.Error().Err(err).Int("bundle", i).Msg("Failed to forward bundle")
		}
	}
}

func respondWithError(w http.ResponseWriter, status int, message string) {
	respondWithJSON(w, status, map[string]string{"error": message})
}

func respondWithJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/fhir+json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
