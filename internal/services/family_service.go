package services

import (
	"errors"

	"github.com/terraincognita07/salasilah/internal/models"
	"gorm.io/gorm"
)

type FamilyMemberRepository interface {
	FindByID(memberID uint) (models.FamilyMember, error)
	ListAll() ([]models.FamilyMember, error)
	ListAllExcept(memberID uint) ([]models.FamilyMember, error)
	Create(member *models.FamilyMember) error
	UpdateByID(memberID uint, updates map[string]any) error
}

type FamilyService struct {
	members FamilyMemberRepository
}

func NewFamilyService(members FamilyMemberRepository) *FamilyService {
	return &FamilyService{members: members}
}

// Tree builds the dashboard partition from one member snapshot.
func (service *FamilyService) Tree() (FamilyTree, error) {
	members, err := service.members.ListAll()
	if err != nil {
		return FamilyTree{}, err
	}
	return BuildFamilyTree(members), nil
}

func (service *FamilyService) MemberByID(memberID uint) (models.FamilyMember, error) {
	return service.members.FindByID(memberID)
}

// ParentOptions lists the members selectable as a father or mother.
// excludeID keeps the member being edited out of its own parent lists;
// pass 0 when creating.
func (service *FamilyService) ParentOptions(excludeID uint) ([]models.FamilyMember, error) {
	if excludeID == 0 {
		return service.members.ListAll()
	}
	return service.members.ListAllExcept(excludeID)
}

func (service *FamilyService) CreateMember(input MemberInput) (models.FamilyMember, error) {
	if err := service.validateParentRefs(0, input); err != nil {
		return models.FamilyMember{}, err
	}

	member := models.FamilyMember{
		Name:      input.Name,
		BirthDate: input.BirthDate,
		FatherID:  input.FatherID,
		MotherID:  input.MotherID,
	}
	if err := service.members.Create(&member); err != nil {
		return models.FamilyMember{}, err
	}
	return member, nil
}

// UpdateMember replaces name, birth date and both parent references.
// A missing member id surfaces gorm.ErrRecordNotFound to the caller.
func (service *FamilyService) UpdateMember(memberID uint, input MemberInput) error {
	if _, err := service.members.FindByID(memberID); err != nil {
		return err
	}
	if err := service.validateParentRefs(memberID, input); err != nil {
		return err
	}

	return service.members.UpdateByID(memberID, map[string]any{
		"name":       input.Name,
		"birth_date": input.BirthDate,
		"father_id":  input.FatherID,
		"mother_id":  input.MotherID,
	})
}

// validateParentRefs enforces the write-time invariants: a parent id must
// reference an existing member and must not point back at the member itself.
func (service *FamilyService) validateParentRefs(selfID uint, input MemberInput) error {
	for _, parentID := range []*uint{input.FatherID, input.MotherID} {
		if parentID == nil {
			continue
		}
		if selfID != 0 && *parentID == selfID {
			return ErrSelfParent
		}
		if _, err := service.members.FindByID(*parentID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrParentNotFound
			}
			return err
		}
	}
	return nil
}
