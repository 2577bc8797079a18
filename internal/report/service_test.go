package report_test

import (
	"log/slog"
	"os"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ucad-dsi/gestion-budget/internal/analysis"
	"github.com/ucad-dsi/gestion-budget/internal/auth"
	"github.com/ucad-dsi/gestion-budget/internal/report"
)

func TestReport(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Report Module Suite")
}

type mockReportRepository struct {
	reports map[int64]*report.Report
	nextID  int64
}

func newMockReportRepository() *mockReportRepository {
	return &mockReportRepository{reports: make(map[int64]*report.Report), nextID: 1}
}

func (m *mockReportRepository) Insert(rep *report.Report) error {
	rep.ID = m.nextID
	m.nextID++
	m.reports[rep.ID] = rep
	return nil
}

func (m *mockReportRepository) GetByID(id int64) (*report.Report, error) {
	rep, ok := m.reports[id]
	if !ok {
		return nil, report.ErrReportNotFound
	}
	return rep, nil
}

func (m *mockReportRepository) ListForUser(userID int64) ([]*report.Report, error) {
	var out []*report.Report
	for _, rep := range m.reports {
		if rep.UserID == userID {
			out = append(out, rep)
		}
	}
	return out, nil
}

func (m *mockReportRepository) Delete(id int64) error {
	delete(m.reports, id)
	return nil
}

type mockAnalysis struct{}

func (mockAnalysis) Summary(year int) (*analysis.Summary, error) {
	return &analysis.Summary{
		Year:            year,
		TotalProposed:   400,
		TotalRealized:   420,
		TotalRecettes:   300,
		TotalDepenses:   100,
		RealizationRate: 105,
	}, nil
}

func (mockAnalysis) Variances(year int) ([]*analysis.Variance, error) {
	return []*analysis.Variance{
		{
			CategoryCode:    "6047",
			CategoryLabel:   "Fournitures de bureau",
			Proposed:        100,
			Realized:        90,
			Variance:        -10,
			VariancePercent: -10,
			Severity:        analysis.SeverityCompliant,
		},
	}, nil
}

var _ = Describe("Report Service", func() {
	var (
		repo    *mockReportRepository
		service *report.Service
		dir     string

		agent = auth.Actor{ID: 10, Email: "agent@ucad.sn", Name: "Agent", Role: auth.RoleUser}
		other = auth.Actor{ID: 11, Email: "other@ucad.sn", Name: "Other", Role: auth.RoleUser}
		chef  = auth.Actor{ID: 20, Email: "chef@ucad.sn", Name: "Chef", Role: auth.RoleChefDept}
	)

	BeforeEach(func() {
		repo = newMockReportRepository()
		dir = GinkgoT().TempDir()
		logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		service = report.NewService(repo, mockAnalysis{}, dir, logger)
	})

	Describe("Generate", func() {
		It("writes an xlsx file and records its size", func() {
			rep, err := service.Generate(agent, report.GenerateReportDTO{Year: 2025, Format: report.FormatXLSX})

			Expect(err).NotTo(HaveOccurred())
			Expect(rep.UserID).To(Equal(agent.ID))
			Expect(rep.Filename).To(HaveSuffix(".xlsx"))
			Expect(rep.FileSize).NotTo(BeNil())
			Expect(*rep.FileSize).To(BeNumerically(">", 0))
			Expect(rep.FilePath).To(BeAnExistingFile())
		})

		It("writes a csv file with the variance table", func() {
			rep, err := service.Generate(agent, report.GenerateReportDTO{Year: 2025, Format: report.FormatCSV})

			Expect(err).NotTo(HaveOccurred())
			Expect(rep.Filename).To(HaveSuffix(".csv"))

			content, err := os.ReadFile(rep.FilePath)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(content)).To(ContainSubstring("Fournitures de bureau"))
			Expect(string(content)).To(ContainSubstring("compliant"))
		})

		It("rejects an unknown format", func() {
			_, err := service.Generate(agent, report.GenerateReportDTO{Year: 2025, Format: "pdf"})
			Expect(err).To(HaveOccurred())
		})

		It("rejects a missing year", func() {
			_, err := service.Generate(agent, report.GenerateReportDTO{Format: report.FormatCSV})
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("Get and Delete", func() {
		It("hides other users' reports from plain users", func() {
			rep, err := service.Generate(agent, report.GenerateReportDTO{Year: 2025, Format: report.FormatCSV})
			Expect(err).NotTo(HaveOccurred())

			_, err = service.Get(other, rep.ID)
			Expect(err).To(Equal(report.ErrReportNotFound))
		})

		It("lets reviewer roles read any report", func() {
			rep, err := service.Generate(agent, report.GenerateReportDTO{Year: 2025, Format: report.FormatCSV})
			Expect(err).NotTo(HaveOccurred())

			got, err := service.Get(chef, rep.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(got.ID).To(Equal(rep.ID))
		})

		It("deletes the record and the file", func() {
			rep, err := service.Generate(agent, report.GenerateReportDTO{Year: 2025, Format: report.FormatCSV})
			Expect(err).NotTo(HaveOccurred())

			Expect(service.Delete(agent, rep.ID)).To(Succeed())
			Expect(rep.FilePath).NotTo(BeAnExistingFile())

			_, err = service.Get(agent, rep.ID)
			Expect(err).To(Equal(report.ErrReportNotFound))
		})

		It("survives a file already gone", func() {
			rep, err := service.Generate(agent, report.GenerateReportDTO{Year: 2025, Format: report.FormatCSV})
			Expect(err).NotTo(HaveOccurred())
			Expect(os.Remove(rep.FilePath)).To(Succeed())

			Expect(service.Delete(agent, rep.ID)).To(Succeed())
		})
	})
})
