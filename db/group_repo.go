package db

import (
	"github.com/plumehq/plume/models"
	"gorm.io/gorm"
)

type GroupRepository interface {
	FindGroupBySlug(slug string) (*models.Group, error)
	FindGroupByID(id uint) (*models.Group, error)
	GetAllGroups() ([]models.Group, error)
}

type groupRepo struct {
	DB *gorm.DB
}

func NewGroupRepo(db *GormDB) GroupRepository {
	return &groupRepo{db.DB}
}

func (r *groupRepo) FindGroupBySlug(slug string) (*models.Group, error) {
	var group models.Group
	err := r.DB.Where("slug = ?", slug).First(&group).Error
	if err != nil {
		return nil, err
	}
	return &group, nil
}

func (r *groupRepo) FindGroupByID(id uint) (*models.Group, error) {
	var group models.Group
	err := r.DB.First(&group, id).Error
	if err != nil {
		return nil, err
	}
	return &group, nil
}

func (r *groupRepo) GetAllGroups() ([]models.Group, error) {
	var groups []models.Group
	err := r.DB.Order("title ASC").Find(&groups).Error
	if err != nil {
		return nil, err
	}
	return groups, nil
}
