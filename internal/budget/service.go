package budget

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ucad-dsi/gestion-budget/internal"
	"github.com/ucad-dsi/gestion-budget/internal/auth"
	"github.com/ucad-dsi/gestion-budget/internal/history"
)

type RepositoryAPI interface {
	Create(line *BudgetLine) error
	GetByID(id int64) (*BudgetLine, error)
	List(filters ListFilters) ([]*BudgetLine, error)
	Updates(id int64, fields map[string]any) error
	Delete(id int64) error
	// TransitionStatus applies fields only while the line still holds the
	// given status; it reports whether a row was hit.
	TransitionStatus(id int64, from Status, fields map[string]any) (bool, error)
}

type CategoryStore interface {
	Exists(id int64) (bool, error)
}

type HistoryAPI interface {
	Record(budgetLineID int64, action string, oldValues, newValues any, userID int64) error
	ForLine(budgetLineID int64) ([]*history.Entry, error)
}

// YearRange bounds the fiscal years lines may be proposed for.
type YearRange struct {
	Min int
	Max int
}

type Service struct {
	repo       RepositoryAPI
	categories CategoryStore
	history    HistoryAPI
	years      YearRange
	logger     *slog.Logger
}

func NewService(repo RepositoryAPI, categories CategoryStore, hist HistoryAPI, years YearRange, logger *slog.Logger) *Service {
	return &Service{
		repo:       repo,
		categories: categories,
		history:    hist,
		years:      years,
		logger:     logger,
	}
}

func (s *Service) validateYear(year int) error {
	if year < s.years.Min || year > s.years.Max {
		return internal.NewValidationFieldError("year",
			fmt.Sprintf("year must be between %d and %d", s.years.Min, s.years.Max),
			internal.ErrCodeInvalidYear)
	}
	return nil
}

func (s *Service) validateCategory(id int64) error {
	exists, err := s.categories.Exists(id)
	if err != nil {
		return err
	}
	if !exists {
		return internal.NewValidationFieldError("category_id", "unknown budget category", internal.ErrCodeUnknownCategory)
	}
	return nil
}

// record appends a history entry without failing the parent operation.
func (s *Service) record(lineID int64, action string, oldValues, newValues any, actorID int64) {
	if err := s.history.Record(lineID, action, oldValues, newValues, actorID); err != nil {
		s.logger.Error("failed to record budget history",
			"budget_line_id", lineID,
			"action", action,
			"error", err)
	}
}

// Create inserts a new line owned by the actor, always in draft.
func (s *Service) Create(actor auth.Actor, dto CreateBudgetLineDTO) (*BudgetLine, error) {
	amount, err := dto.Validate()
	if err != nil {
		return nil, err
	}
	if err := s.validateYear(dto.Year); err != nil {
		return nil, err
	}
	if err := s.validateCategory(dto.CategoryID); err != nil {
		return nil, err
	}

	line := &BudgetLine{
		UserID:         actor.ID,
		CategoryID:     dto.CategoryID,
		Year:           dto.Year,
		ProposedAmount: amount,
		Description:    dto.Description,
		Status:         StatusDraft,
	}

	if err := s.repo.Create(line); err != nil {
		s.logger.Error("failed to create budget line", "error", err, "user_id", actor.ID)
		return nil, err
	}

	s.record(line.ID, history.ActionCreated, nil, line, actor.ID)

	s.logger.Info("budget line created",
		"budget_line_id", line.ID,
		"user_id", actor.ID,
		"year", line.Year)
	return s.repo.GetByID(line.ID)
}

// Get returns one line with its owner, category and validator loaded.
func (s *Service) Get(actor auth.Actor, id int64) (*BudgetLine, error) {
	line, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if line.UserID != actor.ID && !actor.Role.Can(auth.ActionViewAllLines) {
		return nil, ErrNotOwner
	}
	return line, nil
}

// List returns lines matching the filters, newest first. Plain users are
// always constrained to their own lines regardless of the filters sent.
func (s *Service) List(actor auth.Actor, filters ListFilters) ([]*BudgetLine, error) {
	if !actor.Role.Can(auth.ActionViewAllLines) {
		filters.UserID = &actor.ID
	}
	return s.repo.List(filters)
}

// Update merges the non-nil fields into the line.
func (s *Service) Update(actor auth.Actor, id int64, dto UpdateBudgetLineDTO) (*BudgetLine, error) {
	line, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if line.UserID != actor.ID && !actor.Role.Can(auth.ActionViewAllLines) {
		return nil, ErrNotOwner
	}

	fields := map[string]any{}

	if dto.CategoryID != nil {
		if err := s.validateCategory(*dto.CategoryID); err != nil {
			return nil, err
		}
		fields["category_id"] = *dto.CategoryID
	}
	if dto.ProposedAmount != nil {
		amount, err := parseAmount("proposed_amount", *dto.ProposedAmount)
		if err != nil {
			return nil, err
		}
		fields["proposed_amount"] = amount
	}
	if dto.RealizedAmount != nil {
		amount, err := parseAmount("realized_amount", *dto.RealizedAmount)
		if err != nil {
			return nil, err
		}
		fields["realized_amount"] = amount
	}
	if dto.Year != nil {
		if err := s.validateYear(*dto.Year); err != nil {
			return nil, err
		}
		fields["year"] = *dto.Year
	}
	if dto.Description != nil {
		fields["description"] = *dto.Description
	}

	if len(fields) == 0 {
		return line, nil
	}
	fields["updated_at"] = time.Now()

	if err := s.repo.Updates(id, fields); err != nil {
		s.logger.Error("failed to update budget line", "budget_line_id", id, "error", err)
		return nil, err
	}

	updated, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	s.record(id, history.ActionUpdated, line, updated, actor.ID)
	return updated, nil
}

// Delete removes the line permanently.
func (s *Service) Delete(actor auth.Actor, id int64) error {
	line, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if line.UserID != actor.ID && !actor.Role.Can(auth.ActionViewAllLines) {
		return ErrNotOwner
	}

	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete budget line", "budget_line_id", id, "error", err)
		return err
	}

	s.record(id, history.ActionDeleted, line, nil, actor.ID)

	s.logger.Info("budget line deleted", "budget_line_id", id, "user_id", actor.ID)
	return nil
}

// Submit moves a draft line into the pending queue.
func (s *Service) Submit(actor auth.Actor, id int64) (*BudgetLine, error) {
	line, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if line.UserID != actor.ID && !actor.Role.Can(auth.ActionViewAllLines) {
		return nil, ErrNotOwner
	}
	if !line.CanSubmit() {
		return nil, internal.NewInvalidTransitionError(
			fmt.Sprintf("cannot submit budget line in status %q", line.Status))
	}

	ok, err := s.repo.TransitionStatus(id, StatusDraft, map[string]any{
		"status":     StatusPending,
		"updated_at": time.Now(),
	})
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, internal.NewInvalidTransitionError("budget line is no longer a draft")
	}

	updated, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	s.record(id, history.ActionSubmitted, line, updated, actor.ID)

	s.logger.Info("budget line submitted", "budget_line_id", id, "user_id", actor.ID)
	return updated, nil
}

// ListPending returns the consolidation queue, newest first.
func (s *Service) ListPending(actor auth.Actor, year *int) ([]*BudgetLine, error) {
	if !actor.Role.Can(auth.ActionModerateLines) {
		return nil, auth.ErrInsufficientRole
	}

	pending := StatusPending
	return s.repo.List(ListFilters{Year: year, Status: &pending})
}

// Validate approves or rejects one pending line.
func (s *Service) Validate(actor auth.Actor, id int64, dto ValidateLineDTO) (*BudgetLine, error) {
	if !actor.Role.Can(auth.ActionModerateLines) {
		return nil, auth.ErrInsufficientRole
	}

	line, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !line.CanModerate() {
		return nil, internal.NewInvalidTransitionError(
			fmt.Sprintf("cannot validate budget line in status %q", line.Status))
	}

	now := time.Now()
	var fields map[string]any
	action := history.ActionValidated

	if dto.Approved {
		fields = map[string]any{
			"status":       StatusValidated,
			"validated_by": actor.ID,
			"validated_at": now,
			"updated_at":   now,
		}
	} else {
		if strings.TrimSpace(dto.RejectionReason) == "" {
			return nil, internal.NewValidationFieldError("rejection_reason",
				"rejection reason is required", internal.ErrCodeReasonRequired)
		}
		action = history.ActionRejected
		fields = map[string]any{
			"status":           StatusRejected,
			"validated_by":     actor.ID,
			"validated_at":     now,
			"rejection_reason": dto.RejectionReason,
			"updated_at":       now,
		}
	}

	// The guard on pending makes concurrent double moderation lose
	// cleanly: whoever updates second hits zero rows.
	ok, err := s.repo.TransitionStatus(id, StatusPending, fields)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, internal.NewInvalidTransitionError("budget line is no longer pending")
	}

	updated, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	s.record(id, action, line, updated, actor.ID)

	s.logger.Info("budget line moderated",
		"budget_line_id", id,
		"approved", dto.Approved,
		"validated_by", actor.ID)
	return updated, nil
}

// History returns the line's audit trail, newest first, with the same
// visibility rule as Get.
func (s *Service) History(actor auth.Actor, id int64) ([]*history.Entry, error) {
	line, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if line.UserID != actor.ID && !actor.Role.Can(auth.ActionViewAllLines) {
		return nil, ErrNotOwner
	}
	return s.history.ForLine(id)
}

// BulkValidate moderates several lines in one call. Each line succeeds or
// fails on its own; there is no rollback across the batch.
func (s *Service) BulkValidate(actor auth.Actor, dto BulkValidateDTO) (*BulkValidateResult, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}
	if !actor.Role.Can(auth.ActionModerateLines) {
		return nil, auth.ErrInsufficientRole
	}

	result := &BulkValidateResult{
		Validated: []int64{},
		Failed:    []BulkFailedEntry{},
	}

	for _, id := range dto.IDs {
		_, err := s.Validate(actor, id, ValidateLineDTO{
			Approved:        dto.Approved,
			RejectionReason: dto.RejectionReason,
		})
		if err != nil {
			result.Failed = append(result.Failed, BulkFailedEntry{ID: id, Message: err.Error()})
			continue
		}
		result.Validated = append(result.Validated, id)
	}

	return result, nil
}
