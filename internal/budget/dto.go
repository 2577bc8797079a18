package budget

import (
	"strconv"
	"strings"

	"github.com/ucad-dsi/gestion-budget/internal"
)

// Amounts travel as JSON strings so clients never lose precision to
// float rounding on their side; parsing and sign checks happen here.
func parseAmount(field, raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, internal.NewValidationFieldError(field, field+" is required", internal.ErrCodeInvalidAmount)
	}

	amount, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, internal.NewValidationFieldError(field, field+" must be a decimal number", internal.ErrCodeInvalidAmount)
	}
	if amount < 0 {
		return 0, internal.NewValidationFieldError(field, field+" must not be negative", internal.ErrCodeInvalidAmount)
	}
	return amount, nil
}

type CreateBudgetLineDTO struct {
	CategoryID     int64   `json:"category_id"`
	ProposedAmount string  `json:"proposed_amount"`
	Year           int     `json:"year"`
	Description    *string `json:"description,omitempty"`
}

func (dto CreateBudgetLineDTO) Validate() (float64, error) {
	if dto.CategoryID <= 0 {
		return 0, internal.NewValidationFieldError("category_id", "category_id is required", internal.ErrCodeUnknownCategory)
	}
	return parseAmount("proposed_amount", dto.ProposedAmount)
}

type UpdateBudgetLineDTO struct {
	CategoryID     *int64  `json:"category_id,omitempty"`
	ProposedAmount *string `json:"proposed_amount,omitempty"`
	RealizedAmount *string `json:"realized_amount,omitempty"`
	Year           *int    `json:"year,omitempty"`
	Description    *string `json:"description,omitempty"`
}

type ValidateLineDTO struct {
	Approved        bool   `json:"approved"`
	RejectionReason string `json:"rejection_reason,omitempty"`
}

type BulkValidateDTO struct {
	IDs             []int64 `json:"ids"`
	Approved        bool    `json:"approved"`
	RejectionReason string  `json:"rejection_reason,omitempty"`
}

func (dto BulkValidateDTO) Validate() error {
	if len(dto.IDs) == 0 {
		return internal.NewValidationFieldError("ids", "ids must not be empty", internal.ErrCodeValidationFailed)
	}
	return nil
}

// BulkValidateResult reports the outcome per line; failures never roll
// back lines already moderated in the same request.
type BulkValidateResult struct {
	Validated []int64           `json:"validated"`
	Failed    []BulkFailedEntry `json:"failed"`
}

type BulkFailedEntry struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

// ListFilters are AND-composed; nil fields are ignored.
type ListFilters struct {
	Year   *int
	UserID *int64
	Status *Status
}
