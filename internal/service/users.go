package service

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"railbook/internal/domain"
	"railbook/internal/dto"
	"railbook/internal/mapper"
	"railbook/internal/repository"
)

// ErrInvalidCredentials is returned when an email and password do not match
// a stored user
var ErrInvalidCredentials = errors.New("invalid credentials")

// UserService manages users. Passwords are stored as bcrypt hashes.
type UserService struct {
	*Crud[domain.User, *domain.User, dto.UserDTO]
	cost int
}

var _ CrudService[*dto.UserDTO] = (*UserService)(nil)

// NewUserService creates the user service
func NewUserService(store *repository.UserStore, m *mapper.UserMapper, opts ...Option) *UserService {
	o := buildOptions(opts)
	s := &UserService{
		Crud: newCrud[domain.User, *domain.User, dto.UserDTO](store, m, (*dto.UserDTO).Identity, o),
		cost: o.passwordCost,
	}
	s.prepare = s.hashPassword
	return s
}

func (s *UserService) hashPassword(_ int, d *dto.UserDTO) (*dto.UserDTO, error) {
	hashed, err := hashPassword(d.Password, s.cost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	prepared := *d
	prepared.Password = hashed
	return &prepared, nil
}

// FindByEmail returns the user registered under email, ignoring case
func (s *UserService) FindByEmail(email string) (*dto.UserDTO, bool) {
	u := s.findByEmail(email)
	return s.mapper.ToDTOOptional(u, u != nil)
}

// Authenticate returns the user identified by email when password matches
// its stored hash
func (s *UserService) Authenticate(email, password string) (*dto.UserDTO, error) {
	u := s.findByEmail(email)
	if u == nil {
		s.logger.Debug("authentication failed", "reason", "unknown email")
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		s.logger.Debug("authentication failed", "id", u.ID, "reason", "password mismatch")
		return nil, ErrInvalidCredentials
	}
	return s.mapper.ToDTO(u), nil
}

func (s *UserService) findByEmail(email string) *domain.User {
	if email == "" {
		return nil
	}
	for _, u := range s.store.FindAll() {
		if strings.EqualFold(u.Email, email) {
			return u
		}
	}
	return nil
}

// hashPassword hashes password unless it is empty or already a bcrypt hash
func hashPassword(password string, cost int) (string, error) {
	if password == "" {
		return "", nil
	}
	if _, err := bcrypt.Cost([]byte(password)); err == nil {
		return password, nil
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}
