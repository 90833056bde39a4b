package mapper

import (
	"railbook/internal/domain"
	"railbook/internal/dto"
)

// UserMapper converts users
type UserMapper struct {
	base[domain.User, dto.UserDTO]
	linker
}

var _ Mapper[*domain.User, *dto.UserDTO] = (*UserMapper)(nil)

func newUserMapper(l linker) *UserMapper {
	m := &UserMapper{linker: l}
	m.base = base[domain.User, dto.UserDTO]{toDTO: m.toDTO, toEntity: m.toEntity}
	return m
}

func (m *UserMapper) toDTO(u *domain.User) *dto.UserDTO {
	d := userScalars(u)
	if t := u.Ticket(); t != nil {
		d.TicketID = t.ID
	}
	return d
}

func (m *UserMapper) toEntity(d *dto.UserDTO) *domain.User {
	u := userEntity(d)
	if d.TicketID > 0 {
		if t, ok := m.ticket(d.TicketID); ok {
			u.SetTicket(t)
		}
	}
	return u
}
