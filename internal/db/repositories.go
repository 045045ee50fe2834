package db

import "gorm.io/gorm"

type Repositories struct {
	Users   *UserRepository
	Members *MemberRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:   NewUserRepository(database),
		Members: NewMemberRepository(database),
	}
}
