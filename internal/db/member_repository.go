package db

import (
	"github.com/terraincognita07/salasilah/internal/models"
	"gorm.io/gorm"
)

type MemberRepository struct {
	database *gorm.DB
}

func NewMemberRepository(database *gorm.DB) *MemberRepository {
	return &MemberRepository{database: database}
}

func (repo *MemberRepository) FindByID(memberID uint) (models.FamilyMember, error) {
	var member models.FamilyMember
	if err := repo.database.First(&member, memberID).Error; err != nil {
		return models.FamilyMember{}, err
	}
	return member, nil
}

// ListAll returns every member ordered by id so a single read yields a
// stable snapshot ordering.
func (repo *MemberRepository) ListAll() ([]models.FamilyMember, error) {
	members := make([]models.FamilyMember, 0)
	if err := repo.database.Order("id ASC").Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

// ListAllExcept feeds parent-selection lists, so a member is never
// offered as its own father or mother.
func (repo *MemberRepository) ListAllExcept(memberID uint) ([]models.FamilyMember, error) {
	members := make([]models.FamilyMember, 0)
	if err := repo.database.Where("id <> ?", memberID).Order("id ASC").Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

func (repo *MemberRepository) Create(member *models.FamilyMember) error {
	return repo.database.Create(member).Error
}

func (repo *MemberRepository) UpdateByID(memberID uint, updates map[string]any) error {
	result := repo.database.Model(&models.FamilyMember{}).Where("id = ?", memberID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
