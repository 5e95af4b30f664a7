package api

import (
	"errors"
	"slices"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/papercomputeco/lineage/pkg/lineage"
	"github.com/papercomputeco/lineage/pkg/recorder"
	"github.com/papercomputeco/lineage/pkg/storage"
)

// defaultListLimit caps /records when no limit is given.
const defaultListLimit = 50

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// RecordListResponse is the body of GET /records.
type RecordListResponse struct {
	Count   int               `json:"count"`
	Records []*lineage.Record `json:"records"`
}

// ChainStateResponse is the tip of the chain without the run snapshot.
type ChainStateResponse struct {
	LastHash     string `json:"last_hash"`
	LastSequence int64  `json:"last_sequence"`
	LastRunID    string `json:"last_run_id,omitempty"`
}

// ValidationResponse is the body of GET /chain/validate.
type ValidationResponse struct {
	Valid       bool      `json:"valid"`
	Records     int       `json:"records"`
	Sequence    int64     `json:"sequence,omitempty"`
	ExecutionID string    `json:"execution_id,omitempty"`
	Error       string    `json:"error,omitempty"`
	CheckedAt   time.Time `json:"checked_at"`
}

// handlePing returns a simple health check response.
func (s *Server) handlePing(c *fiber.Ctx) error {
	return c.JSON("pong")
}

// handleListRecords returns the most recent records first.
// Query: limit (default 50, 0 for all).
func (s *Server) handleListRecords(c *fiber.Ctx) error {
	limit := defaultListLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "limit must be a non-negative integer"})
		}
		limit = n
	}

	records, err := s.driver.List(c.Context(), limit)
	if err != nil {
		s.logger.Error("failed to list records", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: "failed to list records"})
	}

	return c.JSON(RecordListResponse{Count: len(records), Records: records})
}

// handleGetRecord returns a single record by its execution id.
func (s *Server) handleGetRecord(c *fiber.Ctx) error {
	rec, status, err := s.lookup(c)
	if err != nil {
		return c.Status(status).JSON(ErrorResponse{Error: err.Error()})
	}
	return c.JSON(rec)
}

// handleVerifyRecord recomputes the digests and signature of one record.
func (s *Server) handleVerifyRecord(c *fiber.Ctx) error {
	rec, status, err := s.lookup(c)
	if err != nil {
		return c.Status(status).JSON(ErrorResponse{Error: err.Error()})
	}

	report, err := recorder.Verify(rec, s.config.SigningKey)
	if err != nil {
		if errors.Is(err, recorder.ErrNoRun) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(ErrorResponse{Error: err.Error()})
		}
		s.logger.Error("failed to verify record", "execution_id", rec.ExecutionID, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: "failed to verify record"})
	}

	return c.JSON(report)
}

// handleChainState returns the tip of the chain.
func (s *Server) handleChainState(c *fiber.Ctx) error {
	state, err := s.driver.LoadChainState(c.Context())
	if err != nil {
		s.logger.Error("failed to load chain state", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: "failed to load chain state"})
	}

	resp := ChainStateResponse{
		LastHash:     state.LastHash,
		LastSequence: state.LastSequence,
	}
	if state.LastRunSnapshot != nil {
		resp.LastRunID = state.LastRunSnapshot.RunID
	}

	return c.JSON(resp)
}

// handleValidateChain walks the whole chain. A broken chain is reported
// with 409 Conflict.
func (s *Server) handleValidateChain(c *fiber.Ctx) error {
	records, err := s.driver.List(c.Context(), 0)
	if err != nil {
		s.logger.Error("failed to list records", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: "failed to list records"})
	}

	// List is most recent first.
	slices.Reverse(records)

	resp := ValidationResponse{
		Valid:     true,
		Records:   len(records),
		CheckedAt: time.Now().UTC(),
	}

	if err := storage.ValidateRecords(records); err != nil {
		var cie *storage.ChainIntegrityError
		if !errors.As(err, &cie) {
			return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: "failed to validate chain"})
		}

		s.logger.Warn("chain integrity violation",
			"sequence", cie.Sequence,
			"execution_id", cie.ExecutionID,
			"reason", cie.Reason,
		)
		resp.Valid = false
		resp.Sequence = cie.Sequence
		resp.ExecutionID = cie.ExecutionID
		resp.Error = cie.Error()
		return c.Status(fiber.StatusConflict).JSON(resp)
	}

	return c.JSON(resp)
}

// lookup fetches the record named by the :id parameter and maps failures to
// an HTTP status.
func (s *Server) lookup(c *fiber.Ctx) (*lineage.Record, int, error) {
	id := c.Params("id")
	if id == "" {
		return nil, fiber.StatusBadRequest, errors.New("id parameter required")
	}

	rec, err := s.driver.Get(c.Context(), id)
	if err != nil {
		if storage.IsNotFound(err) {
			return nil, fiber.StatusNotFound, errors.New("record not found")
		}
		s.logger.Error("failed to get record", "execution_id", id, "error", err)
		return nil, fiber.StatusInternalServerError, errors.New("failed to get record")
	}

	return rec, fiber.StatusOK, nil
}
