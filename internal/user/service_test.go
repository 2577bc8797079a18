package user_test

import (
	"log/slog"
	"os"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ucad-dsi/gestion-budget/internal/auth"
	"github.com/ucad-dsi/gestion-budget/internal/user"
)

func TestUser(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "User Module Suite")
}

type mockUserRepository struct {
	byEmail map[string]*user.User
	nextID  int64
}

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{byEmail: make(map[string]*user.User), nextID: 1}
}

func (m *mockUserRepository) GetByID(id int64) (*user.User, error) {
	for _, u := range m.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, user.ErrNotFound
}

func (m *mockUserRepository) GetByEmail(email string) (*user.User, error) {
	u, ok := m.byEmail[email]
	if !ok {
		return nil, user.ErrNotFound
	}
	return u, nil
}

func (m *mockUserRepository) Create(u *user.User) error {
	u.ID = m.nextID
	m.nextID++
	m.byEmail[u.Email] = u
	return nil
}

func (m *mockUserRepository) List() ([]*user.User, error) {
	var out []*user.User
	for _, u := range m.byEmail {
		out = append(out, u)
	}
	return out, nil
}

var _ = Describe("User Service", func() {
	var (
		repo    *mockUserRepository
		service *user.Service
	)

	BeforeEach(func() {
		repo = newMockUserRepository()
		logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		service = user.NewService(repo, 10, logger)
	})

	Describe("Create", func() {
		It("hashes the password and stores the account", func() {
			u, err := service.Create(user.CreateUserDTO{
				Email:    "chef@ucad.sn",
				Password: "secret",
				Name:     "Chef",
				Role:     auth.RoleChefDept,
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(u.ID).NotTo(BeZero())
			Expect(u.PasswordHash).NotTo(Equal("secret"))
			Expect(auth.VerifyPassword(u.PasswordHash, "secret")).To(Succeed())
			Expect(u.IsActive).To(BeTrue())
		})

		It("returns the existing account for a duplicate email", func() {
			first, err := service.Create(user.CreateUserDTO{
				Email:    "chef@ucad.sn",
				Password: "secret",
				Name:     "Chef",
				Role:     auth.RoleChefDept,
			})
			Expect(err).NotTo(HaveOccurred())

			second, err := service.Create(user.CreateUserDTO{
				Email:    "chef@ucad.sn",
				Password: "other",
				Name:     "Chef Again",
				Role:     auth.RoleUser,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(second.ID).To(Equal(first.ID))
			Expect(second.Role).To(Equal(auth.RoleChefDept))
		})

		It("rejects an unknown role", func() {
			_, err := service.Create(user.CreateUserDTO{
				Email:    "x@ucad.sn",
				Password: "secret",
				Name:     "X",
				Role:     auth.Role("superadmin"),
			})
			Expect(err).To(HaveOccurred())
		})

		It("rejects missing required fields", func() {
			_, err := service.Create(user.CreateUserDTO{Role: auth.RoleUser})
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("ToActor", func() {
		It("projects the account without credentials", func() {
			u, err := service.Create(user.CreateUserDTO{
				Email:    "agent@ucad.sn",
				Password: "secret",
				Name:     "Agent",
				Role:     auth.RoleUser,
			})
			Expect(err).NotTo(HaveOccurred())

			actor := u.ToActor()
			Expect(actor.ID).To(Equal(u.ID))
			Expect(actor.Role).To(Equal(auth.RoleUser))
		})
	})
})
