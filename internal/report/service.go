package report

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/ucad-dsi/gestion-budget/internal/analysis"
	"github.com/ucad-dsi/gestion-budget/internal/auth"
)

type RepositoryAPI interface {
	Insert(report *Report) error
	GetByID(id int64) (*Report, error)
	ListForUser(userID int64) ([]*Report, error)
	Delete(id int64) error
}

type AnalysisAPI interface {
	Summary(year int) (*analysis.Summary, error)
	Variances(year int) ([]*analysis.Variance, error)
}

type Service struct {
	repo       RepositoryAPI
	analysis   AnalysisAPI
	reportsDir string
	logger     *slog.Logger
}

func NewService(repo RepositoryAPI, analysisSvc AnalysisAPI, reportsDir string, logger *slog.Logger) *Service {
	return &Service{
		repo:       repo,
		analysis:   analysisSvc,
		reportsDir: reportsDir,
		logger:     logger,
	}
}

// Generate builds the year's export on disk and records it.
func (s *Service) Generate(actor auth.Actor, dto GenerateReportDTO) (*Report, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	summary, err := s.analysis.Summary(dto.Year)
	if err != nil {
		return nil, err
	}
	variances, err := s.analysis.Variances(dto.Year)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(s.reportsDir, 0o755); err != nil {
		return nil, fmt.Errorf("create reports dir: %w", err)
	}

	reportType := dto.Type
	if reportType == "" {
		reportType = "budget"
	}

	filename := fmt.Sprintf("%s_%d_%s_%s.%s",
		reportType, dto.Year, time.Now().Format("20060102"), uuid.NewString()[:8], dto.Format)
	path := filepath.Join(s.reportsDir, filename)

	switch dto.Format {
	case FormatXLSX:
		err = writeXLSX(path, summary, variances)
	case FormatCSV:
		err = writeCSV(path, summary, variances)
	}
	if err != nil {
		s.logger.Error("failed to write report file", "path", path, "error", err)
		return nil, err
	}

	report := &Report{
		UserID:   actor.ID,
		Year:     dto.Year,
		Type:     reportType,
		Filename: filename,
		FilePath: path,
	}
	if info, statErr := os.Stat(path); statErr == nil {
		size := info.Size()
		report.FileSize = &size
	}

	if err := s.repo.Insert(report); err != nil {
		s.logger.Error("failed to record report", "filename", filename, "error", err)
		return nil, err
	}

	s.logger.Info("report generated",
		"report_id", report.ID,
		"year", report.Year,
		"format", dto.Format,
		"user_id", actor.ID)
	return report, nil
}

// List returns the actor's reports, newest first.
func (s *Service) List(actor auth.Actor) ([]*Report, error) {
	return s.repo.ListForUser(actor.ID)
}

// Get returns one report; plain users only see their own.
func (s *Service) Get(actor auth.Actor, id int64) (*Report, error) {
	report, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if report.UserID != actor.ID && !actor.Role.Can(auth.ActionViewAllLines) {
		return nil, ErrReportNotFound
	}
	return report, nil
}

// Delete removes the record and its file. A missing file is not an
// error, only the record matters.
func (s *Service) Delete(actor auth.Actor, id int64) error {
	report, err := s.Get(actor, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(report.ID); err != nil {
		return err
	}

	if err := os.Remove(report.FilePath); err != nil && !os.IsNotExist(err) {
		s.logger.Warn("failed to remove report file", "path", report.FilePath, "error", err)
	}

	s.logger.Info("report deleted", "report_id", id, "user_id", actor.ID)
	return nil
}
