package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/ucad-dsi/gestion-budget/internal/category"
)

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) category.RepositoryAPI {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&category.Category{}).Count(&count).Error
	return count, err
}

func (r *CategoryRepository) BulkInsert(categories []*category.Category) error {
	return r.db.Create(&categories).Error
}

func (r *CategoryRepository) GetAll() ([]*category.Category, error) {
	var categories []*category.Category
	err := r.db.Where("is_active = ?", true).Order("code ASC").Find(&categories).Error
	return categories, err
}

func (r *CategoryRepository) GetByID(id int64) (*category.Category, error) {
	var c category.Category
	err := r.db.Where("id = ? AND is_active = ?", id, true).First(&c).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, category.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *CategoryRepository) GetByCode(code string) (*category.Category, error) {
	var c category.Category
	err := r.db.Where("code = ? AND is_active = ?", code, true).First(&c).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, category.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}
