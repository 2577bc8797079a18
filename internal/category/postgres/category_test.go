package postgres

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/ucad-dsi/gestion-budget/internal/category"
)

func TestCategoryPostgres(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Category Postgres Suite")
}

var _ = Describe("CategoryRepository", func() {
	var (
		db   *gorm.DB
		repo category.RepositoryAPI
	)

	BeforeEach(func() {
		var err error

		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&category.Category{})
		Expect(err).NotTo(HaveOccurred())

		repo = NewCategoryRepository(db)
	})

	AfterEach(func() {
		sqlDB, err := db.DB()
		Expect(err).NotTo(HaveOccurred())
		Expect(sqlDB.Close()).To(Succeed())
	})

	It("counts and bulk inserts", func() {
		count, err := repo.Count()
		Expect(err).NotTo(HaveOccurred())
		Expect(count).To(BeZero())

		Expect(repo.BulkInsert([]*category.Category{
			{Code: "6047", Label: "Fournitures de bureau", Type: category.TypeDepense, IsActive: true},
			{Code: "7002", Label: "Droits d'examen", Type: category.TypeRecette, IsActive: true},
		})).To(Succeed())

		count, err = repo.Count()
		Expect(err).NotTo(HaveOccurred())
		Expect(count).To(Equal(int64(2)))
	})

	It("lists active categories ordered by code", func() {
		Expect(repo.BulkInsert([]*category.Category{
			{Code: "7002", Label: "Droits d'examen", Type: category.TypeRecette, IsActive: true},
			{Code: "6047", Label: "Fournitures de bureau", Type: category.TypeDepense, IsActive: true},
			{Code: "0000", Label: "Désactivé", Type: category.TypeDepense, IsActive: false},
		})).To(Succeed())

		categories, err := repo.GetAll()
		Expect(err).NotTo(HaveOccurred())
		Expect(categories).To(HaveLen(2))
		Expect(categories[0].Code).To(Equal("6047"))
		Expect(categories[1].Code).To(Equal("7002"))
	})

	It("hides inactive categories from lookups", func() {
		Expect(repo.BulkInsert([]*category.Category{
			{Code: "0000", Label: "Désactivé", Type: category.TypeDepense, IsActive: false},
		})).To(Succeed())

		_, err := repo.GetByCode("0000")
		Expect(err).To(Equal(category.ErrNotFound))
	})

	It("finds categories by id and code", func() {
		Expect(repo.BulkInsert([]*category.Category{
			{Code: "6047", Label: "Fournitures de bureau", Type: category.TypeDepense, IsActive: true},
		})).To(Succeed())

		byCode, err := repo.GetByCode("6047")
		Expect(err).NotTo(HaveOccurred())

		byID, err := repo.GetByID(byCode.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(byID.Label).To(Equal("Fournitures de bureau"))
	})
})
