package services

import (
	"errors"
	"strconv"
	"strings"
)

var (
	ErrNameRequired   = errors.New("member name is required")
	ErrSelfParent     = errors.New("member cannot be its own parent")
	ErrParentNotFound = errors.New("parent does not exist")
)

// MemberInput carries validated form values for creating or updating a
// family member. Nil parent ids mean the parent is not recorded; an empty
// birth date means unknown.
type MemberInput struct {
	Name      string
	BirthDate string
	FatherID  *uint
	MotherID  *uint
}

func ParseMemberInput(name string, birthDate string, fatherID string, motherID string) (MemberInput, error) {
	input := MemberInput{
		Name:      strings.TrimSpace(name),
		BirthDate: strings.TrimSpace(birthDate),
	}
	if input.Name == "" {
		return MemberInput{}, ErrNameRequired
	}

	father, err := parseOptionalMemberID(fatherID)
	if err != nil {
		return MemberInput{}, err
	}
	mother, err := parseOptionalMemberID(motherID)
	if err != nil {
		return MemberInput{}, err
	}

	input.FatherID = father
	input.MotherID = mother
	return input, nil
}

// parseOptionalMemberID treats an unparsable id the same as one that does
// not exist: the reference cannot resolve to a member either way.
func parseOptionalMemberID(raw string) (*uint, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, nil
	}

	parsed, err := strconv.ParseUint(trimmed, 10, 32)
	if err != nil || parsed == 0 {
		return nil, ErrParentNotFound
	}

	memberID := uint(parsed)
	return &memberID, nil
}
