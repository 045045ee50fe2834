package services

import "github.com/terraincognita07/salasilah/internal/models"

// FamilyGroup is one dashboard grouping: the resolved parents of a sibling
// set plus the children sharing that exact parent pair. A nil Father or
// Mother means the parent is unrecorded or no longer resolves.
type FamilyGroup struct {
	Father   *models.FamilyMember
	Mother   *models.FamilyMember
	Children []models.FamilyMember
}

// FamilyTree is the display-ready partition of one member snapshot.
type FamilyTree struct {
	Groups  []FamilyGroup
	Singles []models.FamilyMember
}

// parentKey canonicalizes the (father_id, mother_id) pair; absent parents
// map to 0, which row ids never use, so nil-vs-absent has one key form.
type parentKey struct {
	fatherID uint
	motherID uint
}

// BuildFamilyTree partitions members into singles (no recorded parents) and
// groups keyed by the exact (father, mother) pair. Both parent ids must
// match for two members to share a group; a child with only a father forms
// a different key than a full sibling pair or a mother-only child.
//
// Parents are resolved against the same snapshot the buckets were built
// from, so the whole transform is one consistent read. A parent id that no
// longer resolves degrades to an absent parent instead of failing the
// render. Groups and singles keep first-encounter order over the snapshot,
// and a member may appear both as a single and as a parent label.
func BuildFamilyTree(members []models.FamilyMember) FamilyTree {
	byID := make(map[uint]models.FamilyMember, len(members))
	for _, member := range members {
		byID[member.ID] = member
	}

	singles := make([]models.FamilyMember, 0)
	keyOrder := make([]parentKey, 0)
	buckets := make(map[parentKey][]models.FamilyMember)

	for _, member := range members {
		if member.FatherID == nil && member.MotherID == nil {
			singles = append(singles, member)
			continue
		}

		key := parentKey{
			fatherID: derefMemberID(member.FatherID),
			motherID: derefMemberID(member.MotherID),
		}
		if _, seen := buckets[key]; !seen {
			keyOrder = append(keyOrder, key)
		}
		buckets[key] = append(buckets[key], member)
	}

	groups := make([]FamilyGroup, 0, len(keyOrder))
	for _, key := range keyOrder {
		group := FamilyGroup{Children: buckets[key]}
		if key.fatherID != 0 {
			if father, ok := byID[key.fatherID]; ok {
				group.Father = &father
			}
		}
		if key.motherID != 0 {
			if mother, ok := byID[key.motherID]; ok {
				group.Mother = &mother
			}
		}
		groups = append(groups, group)
	}

	return FamilyTree{Groups: groups, Singles: singles}
}

func derefMemberID(id *uint) uint {
	if id == nil {
		return 0
	}
	return *id
}
