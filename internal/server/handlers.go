package server

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/kenh/donor-rfm/internal/ingestion"
	"github.com/kenh/donor-rfm/internal/pipeline"
	"github.com/kenh/donor-rfm/internal/schemas"
	"github.com/kenh/donor-rfm/internal/types"
	schemadocs "github.com/kenh/donor-rfm/schemas"
)

// EnrichResponse is the response body for POST /enrich.
type EnrichResponse struct {
	RunID      string              `json:"run_id"`
	Mode       types.Mode          `json:"mode"`
	AsOf       string              `json:"as_of"`
	RowCount   int                 `json:"row_count"`
	DonorCount int                 `json:"donor_count"`
	Rows       []types.EnrichedRow `json:"rows"`
}

// TokenResponse is the response body for POST /auth/token.
type TokenResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"token_type"`
}

// handleEnrich runs the enrichment pipeline over a JSON gift batch.
func (s *Server) handleEnrich(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "failed to read request body")
		return
	}

	if err := schemas.ValidateBytes(schemadocs.EnrichRequest(), body); err != nil {
		var valErr *schemas.ValidationError
		if errors.As(err, &valErr) {
			s.errorResponse(w, http.StatusUnprocessableEntity, valErr.Error())
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	var req types.EnrichRequest
	if err := unmarshalStrict(body, &req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	gifts, err := parseGifts(req.Gifts)
	if err != nil {
		s.errorResponse(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	var asOf time.Time
	if req.AsOf != "" {
		asOf, err = time.Parse("2006-01-02", req.AsOf)
		if err != nil {
			s.errorResponse(w, http.StatusUnprocessableEntity, "as_of must be YYYY-MM-DD")
			return
		}
	}

	result, err := pipeline.Run(r.Context(), pipeline.RunOptions{
		Gifts:       gifts,
		AsOf:        asOf,
		Mode:        req.Mode,
		DatabaseURL: s.databaseURL,
		Logger:      s.logger,
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("enrichment run failed")
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	var regime *pipeline.RegimeResult
	if req.Mode == types.ModeDiscrete {
		regime = result.Discrete
	} else {
		regime = result.Continuous
	}

	s.jsonResponse(w, http.StatusOK, EnrichResponse{
		RunID:      result.RunID.String(),
		Mode:       req.Mode,
		AsOf:       result.AsOf.Format("2006-01-02"),
		RowCount:   result.RowCount(),
		DonorCount: result.DonorCount(),
		Rows:       regime.Rows,
	})
}

// handleToken exchanges a valid API key for a signed bearer token.
func (s *Server) handleToken(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "failed to read request body")
		return
	}

	var req types.TokenRequest
	if err := unmarshalStrict(body, &req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	if !s.apiKeys.VerifyAPIKey(req.APIKey) {
		s.errorResponse(w, http.StatusUnauthorized, "invalid API key")
		return
	}

	token, err := s.jwtService.GenerateToken("api")
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to generate token")
		s.errorResponse(w, http.StatusInternalServerError, "failed to generate token")
		return
	}

	s.jsonResponse(w, http.StatusOK, TokenResponse{Token: token, TokenType: "Bearer"})
}

// parseGifts converts API gift inputs to validated gift records.
func parseGifts(inputs []types.GiftInput) ([]types.Gift, error) {
	gifts := make([]types.Gift, 0, len(inputs))
	for i, in := range inputs {
		date, err := ingestion.ParseGiftDate(in.GiftDate)
		if err != nil {
			return nil, &giftParseError{index: i, giftID: in.GiftID, cause: err}
		}
		gifts = append(gifts, types.Gift{
			DonorID:      in.DonorID,
			DonorSegment: in.DonorSegment,
			DonorName:    in.DonorName,
			DonorCountry: in.DonorCountry,
			DonorState:   in.DonorState,
			DonorCity:    in.DonorCity,
			DonorZip:     in.DonorZip,
			GiftID:       in.GiftID,
			GiftDate:     date,
			GiftAmount:   in.GiftAmount,
			Channel:      in.Channel,
			CampaignName: in.CampaignName,
			Fund:         in.Fund,
			GiftType:     in.GiftType,
		})
	}
	return gifts, nil
}
