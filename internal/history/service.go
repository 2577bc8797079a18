package history

import (
	"encoding/json"
	"fmt"
	"log/slog"
)

type RepositoryAPI interface {
	Insert(entry *Entry) error
	ListForLine(budgetLineID int64) ([]*Entry, error)
}

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Record appends one entry to the audit log. Nil snapshots stay NULL,
// anything else is stored as its JSON encoding.
func (s *Service) Record(budgetLineID int64, action string, oldValues, newValues any, userID int64) error {
	entry := &Entry{
		BudgetLineID: budgetLineID,
		Action:       action,
		UserID:       userID,
	}

	var err error
	if entry.OldValues, err = marshalSnapshot(oldValues); err != nil {
		return fmt.Errorf("marshal old values: %w", err)
	}
	if entry.NewValues, err = marshalSnapshot(newValues); err != nil {
		return fmt.Errorf("marshal new values: %w", err)
	}

	if err := s.repo.Insert(entry); err != nil {
		return err
	}

	s.logger.Debug("history entry recorded",
		"budget_line_id", budgetLineID,
		"action", action,
		"user_id", userID)
	return nil
}

// ForLine returns the line's audit trail, newest first.
func (s *Service) ForLine(budgetLineID int64) ([]*Entry, error) {
	return s.repo.ListForLine(budgetLineID)
}

func marshalSnapshot(v any) (*string, error) {
	if v == nil {
		return nil, nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	str := string(raw)
	return &str, nil
}
