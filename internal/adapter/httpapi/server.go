// Package httpapi exposes the collateral valuation service over JSON REST:
// the calculate endpoint, a liveness probe, and mock upstream endpoints
// serving the wired data sources for manual exercise.
package httpapi

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/finmesh/collateral-backend/internal/domain"
	"github.com/finmesh/collateral-backend/internal/infrastructure/config"
	"github.com/finmesh/collateral-backend/internal/usecase/valuation"
)

// Server wires the valuation service and the three data sources into HTTP
// handlers.
type Server struct {
	Valuation   *valuation.Service
	Positions   domain.PositionSource
	Eligibility domain.EligibilitySource
	Prices      domain.PriceSource

	cfg *config.Config
}

// NewServer creates a new HTTP API server instance
func NewServer(
	valuationService *valuation.Service,
	positions domain.PositionSource,
	eligibility domain.EligibilitySource,
	prices domain.PriceSource,
	cfg *config.Config,
) *Server {
	return &Server{
		Valuation:   valuationService,
		Positions:   positions,
		Eligibility: eligibility,
		Prices:      prices,
		cfg:         cfg,
	}
}

// Handler returns the full handler chain: request logging, CORS, optional
// token auth, then routing.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/collateral/calculate", s.handleCalculate)
	mux.HandleFunc("GET "+healthPath, s.handleHealth)
	mux.HandleFunc("POST /api/mock/positions", s.handleMockPositions)
	mux.HandleFunc("POST /api/mock/eligibility", s.handleMockEligibility)
	mux.HandleFunc("POST /api/mock/prices", s.handleMockPrices)

	var handler http.Handler = mux
	handler = tokenAuth(s.cfg.Auth.Token)(handler)
	handler = corsMiddleware(s.cfg.CORS.AllowedOrigins)(handler)
	if s.cfg.Log.Requests {
		handler = requestLogger(handler)
	}

	return handler
}

// handleCalculate accepts a JSON array of account IDs and responds with the
// computed collateral value per account. An empty or malformed list is a
// client error; any source failure fails the whole request.
func (s *Server) handleCalculate(w http.ResponseWriter, r *http.Request) {
	var accountIDs []string
	if err := json.NewDecoder(r.Body).Decode(&accountIDs); err != nil {
		http.Error(w, "request body must be a JSON array of account IDs", http.StatusBadRequest)
		return
	}
	if len(accountIDs) == 0 {
		http.Error(w, "account ID list cannot be empty", http.StatusBadRequest)
		return
	}

	results, err := s.Valuation.CalculateCollateral(r.Context(), accountIDs)
	if err != nil {
		log.Printf("collateral calculation failed: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, toCollateralResultDTOs(results))
}

// handleHealth reports liveness without touching any downstream source.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("Collateral Service is running"))
}

func (s *Server) handleMockPositions(w http.ResponseWriter, r *http.Request) {
	var accountIDs []string
	if err := json.NewDecoder(r.Body).Decode(&accountIDs); err != nil {
		http.Error(w, "request body must be a JSON array of account IDs", http.StatusBadRequest)
		return
	}

	positions, err := s.Positions.GetPositions(r.Context(), accountIDs)
	if err != nil {
		log.Printf("position lookup failed: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, toAccountPositionDTOs(positions))
}

func (s *Server) handleMockEligibility(w http.ResponseWriter, r *http.Request) {
	var req eligibilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "request body must contain accountIds and assetIds", http.StatusBadRequest)
		return
	}

	rules, err := s.Eligibility.GetEligibility(r.Context(), req.AccountIDs, req.AssetIDs)
	if err != nil {
		log.Printf("eligibility lookup failed: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, toEligibilityRuleDTOs(rules))
}

func (s *Server) handleMockPrices(w http.ResponseWriter, r *http.Request) {
	var assetIDs []string
	if err := json.NewDecoder(r.Body).Decode(&assetIDs); err != nil {
		http.Error(w, "request body must be a JSON array of asset IDs", http.StatusBadRequest)
		return
	}

	prices, err := s.Prices.GetPrices(r.Context(), assetIDs)
	if err != nil {
		log.Printf("price lookup failed: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, toAssetPriceDTOs(prices))
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}
