package user

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ErrEmailTaken is the canonical duplicate-email signal. It is derived
// from the database's unique index on users.email, not from a prior
// read, so concurrent signups cannot both pass.
var ErrEmailTaken = errors.New("user with this email already exists")

// ErrNotFound is returned by lookups when no user matches.
var ErrNotFound = errors.New("user does not exist")

// Repository wraps the users table. It holds no state beyond the
// connection handle so it is safe for concurrent use.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) FindByEmail(email string) (*User, error) {
	var u User
	if err := r.db.Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &u, nil
}

func (r *Repository) FindByID(id uint) (*User, error) {
	var u User
	if err := r.db.First(&u, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return &u, nil
}

// Create inserts a new user. Uniqueness is left entirely to the store:
// a violated unique index surfaces as ErrEmailTaken.
func (r *Repository) Create(name, email, passwordHash string, role Role) (*User, error) {
	if role == "" {
		role = RoleUser
	}
	u := User{Name: name, Email: email, PasswordHash: passwordHash, Role: role}
	if err := r.db.Create(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return &u, nil
}

// List returns all users, most recent first.
func (r *Repository) List() ([]User, error) {
	var users []User
	if err := r.db.Order("created_at desc").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}
