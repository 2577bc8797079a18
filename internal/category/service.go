package category

import (
	"log/slog"
)

type RepositoryAPI interface {
	Count() (int64, error)
	BulkInsert(categories []*Category) error
	GetAll() ([]*Category, error)
	GetByID(id int64) (*Category, error)
	GetByCode(code string) (*Category, error)
}

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// EnsureSeeded loads the built-in chart of accounts into the categories
// table when it is empty. A non-empty table is left as is, so local edits
// survive restarts.
func (s *Service) EnsureSeeded() error {
	count, err := s.repo.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		s.logger.Debug("budget categories already seeded", "count", count)
		return nil
	}

	categories := make([]*Category, 0, len(Catalog))
	for _, entry := range Catalog {
		description := entry.Description
		categories = append(categories, &Category{
			Code:        entry.Code,
			Label:       entry.Label,
			Type:        entry.Type,
			Description: &description,
			IsActive:    true,
		})
	}

	if err := s.repo.BulkInsert(categories); err != nil {
		s.logger.Error("failed to seed budget categories", "error", err)
		return err
	}

	s.logger.Info("budget categories seeded", "count", len(categories))
	return nil
}

func (s *Service) GetAll() ([]*Category, error) {
	return s.repo.GetAll()
}

func (s *Service) GetByID(id int64) (*Category, error) {
	return s.repo.GetByID(id)
}

// Exists reports whether the category id refers to an active account.
func (s *Service) Exists(id int64) (bool, error) {
	_, err := s.repo.GetByID(id)
	if err != nil {
		if err == ErrNotFound {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
