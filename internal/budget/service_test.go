package budget_test

import (
	"fmt"
	"log/slog"
	"os"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ucad-dsi/gestion-budget/internal"
	"github.com/ucad-dsi/gestion-budget/internal/auth"
	"github.com/ucad-dsi/gestion-budget/internal/budget"
	"github.com/ucad-dsi/gestion-budget/internal/history"
)

func TestBudget(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Budget Module Suite")
}

type mockBudgetRepository struct {
	lines  map[int64]*budget.BudgetLine
	nextID int64
}

func newMockBudgetRepository() *mockBudgetRepository {
	return &mockBudgetRepository{
		lines:  make(map[int64]*budget.BudgetLine),
		nextID: 1,
	}
}

func (m *mockBudgetRepository) Create(line *budget.BudgetLine) error {
	line.ID = m.nextID
	m.nextID++
	line.CreatedAt = time.Now()
	line.UpdatedAt = line.CreatedAt
	copied := *line
	m.lines[line.ID] = &copied
	return nil
}

func (m *mockBudgetRepository) GetByID(id int64) (*budget.BudgetLine, error) {
	line, ok := m.lines[id]
	if !ok {
		return nil, budget.ErrLineNotFound
	}
	copied := *line
	return &copied, nil
}

func (m *mockBudgetRepository) List(filters budget.ListFilters) ([]*budget.BudgetLine, error) {
	var out []*budget.BudgetLine
	for _, line := range m.lines {
		if filters.Year != nil && line.Year != *filters.Year {
			continue
		}
		if filters.UserID != nil && line.UserID != *filters.UserID {
			continue
		}
		if filters.Status != nil && line.Status != *filters.Status {
			continue
		}
		copied := *line
		out = append(out, &copied)
	}
	return out, nil
}

func (m *mockBudgetRepository) Updates(id int64, fields map[string]any) error {
	line, ok := m.lines[id]
	if !ok {
		return budget.ErrLineNotFound
	}
	applyFields(line, fields)
	return nil
}

func (m *mockBudgetRepository) Delete(id int64) error {
	delete(m.lines, id)
	return nil
}

func (m *mockBudgetRepository) TransitionStatus(id int64, from budget.Status, fields map[string]any) (bool, error) {
	line, ok := m.lines[id]
	if !ok || line.Status != from {
		return false, nil
	}
	applyFields(line, fields)
	return true, nil
}

func applyFields(line *budget.BudgetLine, fields map[string]any) {
	for key, value := range fields {
		switch key {
		case "category_id":
			line.CategoryID = value.(int64)
		case "proposed_amount":
			line.ProposedAmount = value.(float64)
		case "realized_amount":
			amount := value.(float64)
			line.RealizedAmount = &amount
		case "year":
			line.Year = value.(int)
		case "description":
			desc := value.(string)
			line.Description = &desc
		case "status":
			line.Status = value.(budget.Status)
		case "validated_by":
			id := value.(int64)
			line.ValidatedBy = &id
		case "validated_at":
			at := value.(time.Time)
			line.ValidatedAt = &at
		case "rejection_reason":
			reason := value.(string)
			line.RejectionReason = &reason
		case "updated_at":
			line.UpdatedAt = value.(time.Time)
		}
	}
}

type mockCategoryStore struct {
	known map[int64]bool
}

func (m *mockCategoryStore) Exists(id int64) (bool, error) {
	return m.known[id], nil
}

type recordedEntry struct {
	LineID    int64
	Action    string
	OldValues any
	NewValues any
	UserID    int64
}

type mockHistory struct {
	entries   []recordedEntry
	recordErr error
}

func (m *mockHistory) Record(lineID int64, action string, oldValues, newValues any, userID int64) error {
	if m.recordErr != nil {
		return m.recordErr
	}
	m.entries = append(m.entries, recordedEntry{lineID, action, oldValues, newValues, userID})
	return nil
}

func (m *mockHistory) ForLine(lineID int64) ([]*history.Entry, error) {
	var out []*history.Entry
	for i := len(m.entries) - 1; i >= 0; i-- {
		if m.entries[i].LineID == lineID {
			out = append(out, &history.Entry{
				BudgetLineID: lineID,
				Action:       m.entries[i].Action,
				UserID:       m.entries[i].UserID,
			})
		}
	}
	return out, nil
}

var (
	agent = auth.Actor{ID: 10, Email: "agent@ucad.sn", Name: "Agent", Role: auth.RoleUser}
	other = auth.Actor{ID: 11, Email: "other@ucad.sn", Name: "Other Agent", Role: auth.RoleUser}
	chef  = auth.Actor{ID: 20, Email: "chef@ucad.sn", Name: "Chef", Role: auth.RoleChefDept}
	compt = auth.Actor{ID: 30, Email: "comptable@ucad.sn", Name: "Comptable", Role: auth.RoleComptable}
)

var _ = Describe("Budget Service", func() {
	var (
		repo    *mockBudgetRepository
		hist    *mockHistory
		service *budget.Service
	)

	newDraft := func(actor auth.Actor) *budget.BudgetLine {
		line, err := service.Create(actor, budget.CreateBudgetLineDTO{
			CategoryID:     1,
			ProposedAmount: "1500000.00",
			Year:           2025,
		})
		Expect(err).NotTo(HaveOccurred())
		return line
	}

	submit := func(actor auth.Actor, id int64) *budget.BudgetLine {
		line, err := service.Submit(actor, id)
		Expect(err).NotTo(HaveOccurred())
		return line
	}

	BeforeEach(func() {
		repo = newMockBudgetRepository()
		hist = &mockHistory{}
		categories := &mockCategoryStore{known: map[int64]bool{1: true, 2: true}}
		logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		service = budget.NewService(repo, categories, hist,
			budget.YearRange{Min: 2020, Max: 2035}, logger)
	})

	Describe("Create", func() {
		It("creates a draft owned by the actor", func() {
			line := newDraft(agent)

			Expect(line.Status).To(Equal(budget.StatusDraft))
			Expect(line.UserID).To(Equal(agent.ID))
			Expect(line.ProposedAmount).To(Equal(1500000.00))
		})

		It("records a created history entry", func() {
			line := newDraft(agent)

			Expect(hist.entries).To(HaveLen(1))
			Expect(hist.entries[0].Action).To(Equal(history.ActionCreated))
			Expect(hist.entries[0].LineID).To(Equal(line.ID))
			Expect(hist.entries[0].UserID).To(Equal(agent.ID))
		})

		It("rejects a negative amount", func() {
			_, err := service.Create(agent, budget.CreateBudgetLineDTO{
				CategoryID:     1,
				ProposedAmount: "-5",
				Year:           2025,
			})

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Type).To(Equal(internal.ErrorTypeValidation))
		})

		It("rejects a non-numeric amount", func() {
			_, err := service.Create(agent, budget.CreateBudgetLineDTO{
				CategoryID:     1,
				ProposedAmount: "beaucoup",
				Year:           2025,
			})
			Expect(err).To(HaveOccurred())
		})

		It("rejects a year outside the configured bounds", func() {
			_, err := service.Create(agent, budget.CreateBudgetLineDTO{
				CategoryID:     1,
				ProposedAmount: "100",
				Year:           1999,
			})

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Type).To(Equal(internal.ErrorTypeValidation))
		})

		It("rejects an unknown category", func() {
			_, err := service.Create(agent, budget.CreateBudgetLineDTO{
				CategoryID:     999,
				ProposedAmount: "100",
				Year:           2025,
			})
			Expect(err).To(HaveOccurred())
		})

		It("still creates the line when history recording fails", func() {
			hist.recordErr = fmt.Errorf("history table is on fire")

			line, err := service.Create(agent, budget.CreateBudgetLineDTO{
				CategoryID:     1,
				ProposedAmount: "100",
				Year:           2025,
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(line.ID).NotTo(BeZero())
		})
	})

	Describe("Get", func() {
		It("denies a plain user reading another user's line", func() {
			line := newDraft(agent)

			_, err := service.Get(other, line.ID)
			Expect(err).To(Equal(budget.ErrNotOwner))
		})

		It("lets reviewer roles read any line", func() {
			line := newDraft(agent)

			got, err := service.Get(compt, line.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(got.ID).To(Equal(line.ID))
		})

		It("returns not found for a missing id", func() {
			_, err := service.Get(agent, 404)
			Expect(err).To(Equal(budget.ErrLineNotFound))
		})
	})

	Describe("List", func() {
		It("constrains plain users to their own lines even with a user_id filter", func() {
			newDraft(agent)
			newDraft(other)

			lines, err := service.List(agent, budget.ListFilters{UserID: &other.ID})
			Expect(err).NotTo(HaveOccurred())
			Expect(lines).To(HaveLen(1))
			Expect(lines[0].UserID).To(Equal(agent.ID))
		})

		It("lets reviewers filter across users", func() {
			newDraft(agent)
			newDraft(other)

			lines, err := service.List(chef, budget.ListFilters{})
			Expect(err).NotTo(HaveOccurred())
			Expect(lines).To(HaveLen(2))
		})
	})

	Describe("Update", func() {
		It("merges only the provided fields", func() {
			line := newDraft(agent)

			amount := "2000000"
			updated, err := service.Update(agent, line.ID, budget.UpdateBudgetLineDTO{
				ProposedAmount: &amount,
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(updated.ProposedAmount).To(Equal(2000000.0))
			Expect(updated.Year).To(Equal(line.Year))
		})

		It("records an updated history entry with before and after", func() {
			line := newDraft(agent)

			amount := "42"
			_, err := service.Update(agent, line.ID, budget.UpdateBudgetLineDTO{ProposedAmount: &amount})
			Expect(err).NotTo(HaveOccurred())

			last := hist.entries[len(hist.entries)-1]
			Expect(last.Action).To(Equal(history.ActionUpdated))
			Expect(last.OldValues).NotTo(BeNil())
			Expect(last.NewValues).NotTo(BeNil())
		})

		It("denies a plain user updating another user's line", func() {
			line := newDraft(agent)

			amount := "42"
			_, err := service.Update(other, line.ID, budget.UpdateBudgetLineDTO{ProposedAmount: &amount})
			Expect(err).To(Equal(budget.ErrNotOwner))
		})

		It("parses realized amounts", func() {
			line := newDraft(agent)

			realized := "1350000.50"
			updated, err := service.Update(agent, line.ID, budget.UpdateBudgetLineDTO{RealizedAmount: &realized})

			Expect(err).NotTo(HaveOccurred())
			Expect(updated.RealizedAmount).NotTo(BeNil())
			Expect(*updated.RealizedAmount).To(Equal(1350000.50))
		})
	})

	Describe("Delete", func() {
		It("removes the line and records the deletion", func() {
			line := newDraft(agent)

			Expect(service.Delete(agent, line.ID)).To(Succeed())

			_, err := service.Get(agent, line.ID)
			Expect(err).To(Equal(budget.ErrLineNotFound))

			last := hist.entries[len(hist.entries)-1]
			Expect(last.Action).To(Equal(history.ActionDeleted))
		})

		It("denies a plain user deleting another user's line", func() {
			line := newDraft(agent)
			Expect(service.Delete(other, line.ID)).To(Equal(budget.ErrNotOwner))
		})
	})

	Describe("Submit", func() {
		It("moves a draft to pending", func() {
			line := newDraft(agent)

			submitted := submit(agent, line.ID)
			Expect(submitted.Status).To(Equal(budget.StatusPending))

			last := hist.entries[len(hist.entries)-1]
			Expect(last.Action).To(Equal(history.ActionSubmitted))
		})

		It("refuses to submit twice", func() {
			line := newDraft(agent)
			submit(agent, line.ID)

			_, err := service.Submit(agent, line.ID)
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Type).To(Equal(internal.ErrorTypeInvalidTransition))
		})

		It("refuses to submit a rejected line again", func() {
			line := newDraft(agent)
			submit(agent, line.ID)

			_, err := service.Validate(chef, line.ID, budget.ValidateLineDTO{
				Approved:        false,
				RejectionReason: "justification incomplète",
			})
			Expect(err).NotTo(HaveOccurred())

			_, err = service.Submit(agent, line.ID)
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Type).To(Equal(internal.ErrorTypeInvalidTransition))
		})
	})

	Describe("Validate", func() {
		It("approves a pending line and stamps the validator", func() {
			line := newDraft(agent)
			submit(agent, line.ID)

			validated, err := service.Validate(chef, line.ID, budget.ValidateLineDTO{Approved: true})
			Expect(err).NotTo(HaveOccurred())
			Expect(validated.Status).To(Equal(budget.StatusValidated))
			Expect(validated.ValidatedBy).To(HaveValue(Equal(chef.ID)))
			Expect(validated.ValidatedAt).NotTo(BeNil())

			last := hist.entries[len(hist.entries)-1]
			Expect(last.Action).To(Equal(history.ActionValidated))
		})

		It("rejects a pending line with a reason", func() {
			line := newDraft(agent)
			submit(agent, line.ID)

			rejected, err := service.Validate(compt, line.ID, budget.ValidateLineDTO{
				Approved:        false,
				RejectionReason: "justification incomplète",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(rejected.Status).To(Equal(budget.StatusRejected))
			Expect(rejected.RejectionReason).To(HaveValue(Equal("justification incomplète")))

			last := hist.entries[len(hist.entries)-1]
			Expect(last.Action).To(Equal(history.ActionRejected))
		})

		It("requires a reason to reject", func() {
			line := newDraft(agent)
			submit(agent, line.ID)

			_, err := service.Validate(chef, line.ID, budget.ValidateLineDTO{
				Approved:        false,
				RejectionReason: "   ",
			})

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Type).To(Equal(internal.ErrorTypeValidation))
		})

		It("denies plain users", func() {
			line := newDraft(agent)
			submit(agent, line.ID)

			_, err := service.Validate(agent, line.ID, budget.ValidateLineDTO{Approved: true})
			Expect(err).To(Equal(auth.ErrInsufficientRole))
		})

		It("refuses to moderate a draft", func() {
			line := newDraft(agent)

			_, err := service.Validate(chef, line.ID, budget.ValidateLineDTO{Approved: true})
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Type).To(Equal(internal.ErrorTypeInvalidTransition))
		})

		It("fails the second of two competing approvals", func() {
			line := newDraft(agent)
			submit(agent, line.ID)

			_, err := service.Validate(chef, line.ID, budget.ValidateLineDTO{Approved: true})
			Expect(err).NotTo(HaveOccurred())

			_, err = service.Validate(compt, line.ID, budget.ValidateLineDTO{Approved: true})
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Type).To(Equal(internal.ErrorTypeInvalidTransition))
		})
	})

	Describe("ListPending", func() {
		It("returns only pending lines", func() {
			first := newDraft(agent)
			newDraft(agent)
			submit(agent, first.ID)

			pending, err := service.ListPending(chef, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(pending).To(HaveLen(1))
			Expect(pending[0].ID).To(Equal(first.ID))
		})

		It("denies plain users", func() {
			_, err := service.ListPending(agent, nil)
			Expect(err).To(Equal(auth.ErrInsufficientRole))
		})
	})

	Describe("BulkValidate", func() {
		It("reports successes and failures independently", func() {
			pending := newDraft(agent)
			submit(agent, pending.ID)
			draft := newDraft(agent)

			result, err := service.BulkValidate(chef, budget.BulkValidateDTO{
				IDs:      []int64{pending.ID, draft.ID, 404},
				Approved: true,
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(result.Validated).To(Equal([]int64{pending.ID}))
			Expect(result.Failed).To(HaveLen(2))
		})

		It("rejects an empty id list", func() {
			_, err := service.BulkValidate(chef, budget.BulkValidateDTO{Approved: true})
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("History", func() {
		It("returns the audit trail newest first", func() {
			line := newDraft(agent)
			submit(agent, line.ID)

			entries, err := service.History(agent, line.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(entries).To(HaveLen(2))
			Expect(entries[0].Action).To(Equal(history.ActionSubmitted))
			Expect(entries[1].Action).To(Equal(history.ActionCreated))
		})

		It("denies a plain user reading another user's trail", func() {
			line := newDraft(agent)

			_, err := service.History(other, line.ID)
			Expect(err).To(Equal(budget.ErrNotOwner))
		})
	})
})
