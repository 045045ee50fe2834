package services

import (
	"errors"
	"testing"

	"github.com/terraincognita07/salasilah/internal/models"
	"gorm.io/gorm"
)

type fakeMemberRepository struct {
	members []models.FamilyMember
	nextID  uint
}

func newFakeMemberRepository() *fakeMemberRepository {
	return &fakeMemberRepository{nextID: 1}
}

func (repo *fakeMemberRepository) FindByID(memberID uint) (models.FamilyMember, error) {
	for _, member := range repo.members {
		if member.ID == memberID {
			return member, nil
		}
	}
	return models.FamilyMember{}, gorm.ErrRecordNotFound
}

func (repo *fakeMemberRepository) ListAll() ([]models.FamilyMember, error) {
	result := make([]models.FamilyMember, len(repo.members))
	copy(result, repo.members)
	return result, nil
}

func (repo *fakeMemberRepository) ListAllExcept(memberID uint) ([]models.FamilyMember, error) {
	result := make([]models.FamilyMember, 0, len(repo.members))
	for _, member := range repo.members {
		if member.ID != memberID {
			result = append(result, member)
		}
	}
	return result, nil
}

func (repo *fakeMemberRepository) Create(member *models.FamilyMember) error {
	member.ID = repo.nextID
	repo.nextID++
	repo.members = append(repo.members, *member)
	return nil
}

func (repo *fakeMemberRepository) UpdateByID(memberID uint, updates map[string]any) error {
	for index := range repo.members {
		if repo.members[index].ID != memberID {
			continue
		}
		if name, ok := updates["name"].(string); ok {
			repo.members[index].Name = name
		}
		if birthDate, ok := updates["birth_date"].(string); ok {
			repo.members[index].BirthDate = birthDate
		}
		if fatherID, ok := updates["father_id"].(*uint); ok {
			repo.members[index].FatherID = fatherID
		}
		if motherID, ok := updates["mother_id"].(*uint); ok {
			repo.members[index].MotherID = motherID
		}
		return nil
	}
	return gorm.ErrRecordNotFound
}

func TestCreateMemberRejectsUnknownParent(t *testing.T) {
	service := NewFamilyService(newFakeMemberRepository())

	input := MemberInput{Name: "Chandra", FatherID: memberID(42)}
	if _, err := service.CreateMember(input); !errors.Is(err, ErrParentNotFound) {
		t.Fatalf("expected ErrParentNotFound, got %v", err)
	}
}

func TestUpdateMemberRejectsSelfParent(t *testing.T) {
	repo := newFakeMemberRepository()
	service := NewFamilyService(repo)

	created, err := service.CreateMember(MemberInput{Name: "Aminah"})
	if err != nil {
		t.Fatalf("create member: %v", err)
	}

	input := MemberInput{Name: "Aminah", FatherID: memberID(created.ID)}
	if err := service.UpdateMember(created.ID, input); !errors.Is(err, ErrSelfParent) {
		t.Fatalf("expected ErrSelfParent, got %v", err)
	}
}

func TestUpdateMemberMissingIDReturnsNotFound(t *testing.T) {
	service := NewFamilyService(newFakeMemberRepository())

	err := service.UpdateMember(999, MemberInput{Name: "Tiada"})
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected record not found, got %v", err)
	}
}

func TestUpdateMemberReplacesAllEditableFields(t *testing.T) {
	repo := newFakeMemberRepository()
	service := NewFamilyService(repo)

	father, _ := service.CreateMember(MemberInput{Name: "Aminah"})
	mother, _ := service.CreateMember(MemberInput{Name: "Siti"})
	child, _ := service.CreateMember(MemberInput{Name: "Chandra"})

	input := MemberInput{
		Name:      "Chandra bin Aminah",
		BirthDate: "1988-02-01",
		FatherID:  memberID(father.ID),
		MotherID:  memberID(mother.ID),
	}
	if err := service.UpdateMember(child.ID, input); err != nil {
		t.Fatalf("update member: %v", err)
	}

	updated, err := service.MemberByID(child.ID)
	if err != nil {
		t.Fatalf("reload member: %v", err)
	}
	if updated.Name != "Chandra bin Aminah" || updated.BirthDate != "1988-02-01" {
		t.Fatalf("unexpected updated member: %+v", updated)
	}
	if updated.FatherID == nil || *updated.FatherID != father.ID {
		t.Fatalf("expected father %d, got %v", father.ID, updated.FatherID)
	}
	if updated.MotherID == nil || *updated.MotherID != mother.ID {
		t.Fatalf("expected mother %d, got %v", mother.ID, updated.MotherID)
	}
}

func TestParentOptionsExcludeTheMemberItself(t *testing.T) {
	repo := newFakeMemberRepository()
	service := NewFamilyService(repo)

	for _, name := range []string{"Aminah", "Siti", "Chandra"} {
		if _, err := service.CreateMember(MemberInput{Name: name}); err != nil {
			t.Fatalf("create member %s: %v", name, err)
		}
	}

	options, err := service.ParentOptions(2)
	if err != nil {
		t.Fatalf("parent options: %v", err)
	}
	if len(options) != 2 {
		t.Fatalf("expected 2 options, got %d", len(options))
	}
	for _, option := range options {
		if option.ID == 2 {
			t.Fatal("parent options must not contain the member being edited")
		}
	}
}
