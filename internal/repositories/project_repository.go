package repositories

import (
	"errors"

	"gorm.io/gorm"

	"projectconnect/internal/models"
)

var (
	ErrProjectNotFound      = errors.New("project not found")
	ErrProjectAlreadyExists = errors.New("project already exists")
)

type ProjectRepository interface {
	FindByName(name string) (*models.Project, error)
	FindByNames(names []string) ([]models.Project, error)
	FindAll() ([]models.Project, error)
	FindInProgress() ([]models.Project, error)
	Search(query string) ([]models.Project, error)
	ExistsByName(name string) (bool, error)
	Create(project *models.Project) error
	Update(project *models.Project) error
}

type ProjectRepositoryImpl struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &ProjectRepositoryImpl{db: db}
}

func (r *ProjectRepositoryImpl) FindByName(name string) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, "name = ?", name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	return &project, nil
}

func (r *ProjectRepositoryImpl) FindByNames(names []string) ([]models.Project, error) {
	if len(names) == 0 {
		return nil, nil
	}
	var projects []models.Project
	if err := r.db.Where("name IN ?", names).Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *ProjectRepositoryImpl) FindAll() ([]models.Project, error) {
	var projects []models.Project
	if err := r.db.Order("name").Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *ProjectRepositoryImpl) FindInProgress() ([]models.Project, error) {
	var projects []models.Project
	if err := r.db.Where("is_in_progress = ?", true).Order("name").Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *ProjectRepositoryImpl) Search(query string) ([]models.Project, error) {
	var projects []models.Project
	pattern := "%" + query + "%"
	err := r.db.
		Where("name ILIKE ? OR description ILIKE ?", pattern, pattern).
		Order("name").
		Find(&projects).Error
	if err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *ProjectRepositoryImpl) ExistsByName(name string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Project{}).Where("name = ?", name).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *ProjectRepositoryImpl) Create(project *models.Project) error {
	err := r.db.Create(project).Error
	if err != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrProjectAlreadyExists
	}
	return err
}

func (r *ProjectRepositoryImpl) Update(project *models.Project) error {
	return r.db.Save(project).Error
}
