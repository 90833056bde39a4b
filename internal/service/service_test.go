package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"railbook/internal/domain"
	"railbook/internal/dto"
	"railbook/internal/repository"
)

func newTestCatalog(t *testing.T, opts ...Option) *Catalog {
	t.Helper()
	opts = append([]Option{WithPasswordCost(bcrypt.MinCost)}, opts...)
	return NewCatalog(repository.NewRegistry(), opts...)
}

func TestCrudService(t *testing.T) {
	t.Run("save and find", func(t *testing.T) {
		c := newTestCatalog(t)

		saved, err := c.Discounts.Save(&dto.DiscountDTO{TypeName: "Social", Percent: 0.4})
		require.NoError(t, err)
		assert.Equal(t, 1, saved.ID)

		found, ok := c.Discounts.FindByID(1)
		require.True(t, ok)
		assert.Equal(t, "Social", found.TypeName)
		assert.Equal(t, 0.4, found.Percent)
		assert.True(t, c.Discounts.ExistByID(1))
	})

	t.Run("save nil", func(t *testing.T) {
		c := newTestCatalog(t)

		_, err := c.Discounts.Save(nil)

		assert.ErrorIs(t, err, ErrNilDTO)
		assert.Zero(t, c.Discounts.Count())
	})

	t.Run("zero dto is a blank entity", func(t *testing.T) {
		c := newTestCatalog(t)

		saved, err := c.Trains.Save(&dto.TrainDTO{})

		require.NoError(t, err)
		assert.Equal(t, 1, saved.ID)
	})

	t.Run("update id", func(t *testing.T) {
		c := newTestCatalog(t)
		_, err := c.Discounts.Save(&dto.DiscountDTO{TypeName: "Social", Percent: 0.4})
		require.NoError(t, err)

		assert.True(t, c.Discounts.UpdateID(1, &dto.DiscountDTO{ID: 1, TypeName: "Military", Percent: 0.5}))
		found, _ := c.Discounts.FindByID(1)
		assert.Equal(t, "Military", found.TypeName)

		assert.False(t, c.Discounts.UpdateID(0, &dto.DiscountDTO{TypeName: "X"}))
		assert.False(t, c.Discounts.UpdateID(1, nil))
		found, _ = c.Discounts.FindByID(1)
		assert.Equal(t, "Military", found.TypeName)
	})

	t.Run("save all skips nil", func(t *testing.T) {
		c := newTestCatalog(t)

		saved := c.Discounts.SaveAll([]*dto.DiscountDTO{nil, {TypeName: "X"}})

		require.Len(t, saved, 1)
		assert.Equal(t, 1, c.Discounts.Count())
	})

	t.Run("missing lookups are absent", func(t *testing.T) {
		c := newTestCatalog(t)

		for _, id := range []int{0, -3, 1, 77} {
			d, ok := c.Stations.FindByID(id)
			assert.False(t, ok)
			assert.Nil(t, d)
		}
		assert.NotNil(t, c.Stations.FindAll())
	})

	t.Run("delete subset", func(t *testing.T) {
		c := newTestCatalog(t)
		saved := c.Stations.SaveAll([]*dto.StationDTO{{Name: "A"}, {Name: "B"}, {Name: "C"}})
		require.Len(t, saved, 3)

		c.Stations.DeleteEntities([]*dto.StationDTO{saved[0], saved[1], nil})

		assert.False(t, c.Stations.ExistByID(saved[0].ID))
		assert.False(t, c.Stations.ExistByID(saved[1].ID))
		assert.True(t, c.Stations.ExistByID(saved[2].ID))

		c.Stations.Delete(nil)
		c.Stations.DeleteByID(42)
		assert.Equal(t, 1, c.Stations.Count())
	})
}

// bookTicket stores a ticket from Kyiv to Lviv with one discount
func bookTicket(t *testing.T, c *Catalog) (*dto.TicketDTO, *dto.StationDTO, *dto.StationDTO) {
	t.Helper()
	kyiv, err := c.Stations.Save(&dto.StationDTO{Name: "Kyiv", Address: "Vokzalna 1"})
	require.NoError(t, err)
	lviv, err := c.Stations.Save(&dto.StationDTO{Name: "Lviv", Address: "Dvirtseva 1"})
	require.NoError(t, err)
	social, err := c.Discounts.Save(&dto.DiscountDTO{TypeName: "Social", Percent: 0.4})
	require.NoError(t, err)

	ticket, err := c.Tickets.Save(&dto.TicketDTO{
		DepartDateBooking:      domain.Date(2024, 7, 1),
		RegistrationDateTicket: domain.Date(2024, 6, 1),
		Price:                  100,
		StartStation:           &dto.StationDTO{ID: kyiv.ID},
		EndStation:             &dto.StationDTO{ID: lviv.ID},
		Discounts:              []dto.DiscountDTO{{ID: social.ID}},
	})
	require.NoError(t, err)
	return ticket, kyiv, lviv
}

func TestTicketLinksStoredEntities(t *testing.T) {
	c := newTestCatalog(t)
	ticket, kyiv, lviv := bookTicket(t, c)

	assert.Equal(t, "Kyiv", ticket.StartStation.Name)
	assert.Equal(t, "Lviv", ticket.EndStation.Name)

	station, _ := c.Stations.FindByID(kyiv.ID)
	assert.Equal(t, []int{ticket.ID}, station.DepartureTicketIDs)
	station, _ = c.Stations.FindByID(lviv.ID)
	assert.Equal(t, []int{ticket.ID}, station.ArrivalTicketIDs)
}

func TestSaveDropsUnknownTicketIDs(t *testing.T) {
	c := newTestCatalog(t)

	station, err := c.Stations.Save(&dto.StationDTO{Name: "Kyiv", DepartureTicketIDs: []int{42}, ArrivalTicketIDs: []int{43}})
	require.NoError(t, err)
	assert.Empty(t, station.DepartureTicketIDs)
	assert.Empty(t, station.ArrivalTicketIDs)

	train, err := c.Trains.Save(&dto.TrainDTO{SeatCount: 3, TicketIDs: []int{7, 8, 9}})
	require.NoError(t, err)
	assert.Empty(t, train.TicketIDs)

	user, err := c.Users.Save(&dto.UserDTO{Email: "olena@example.com", Password: "secret", TicketID: 5})
	require.NoError(t, err)
	assert.Zero(t, user.TicketID)

	ticket, err := c.Tickets.Save(&dto.TicketDTO{
		Price:        100,
		StartStation: &dto.StationDTO{ID: station.ID},
		Train:        &dto.TrainDTO{ID: train.ID},
		User:         &dto.UserDTO{ID: user.ID},
	})
	require.NoError(t, err)

	found, _ := c.Stations.FindByID(station.ID)
	assert.Equal(t, []int{ticket.ID}, found.DepartureTicketIDs)
	assert.Empty(t, found.ArrivalTicketIDs)
	foundTrain, _ := c.Trains.FindByID(train.ID)
	assert.Equal(t, []int{ticket.ID}, foundTrain.TicketIDs)
	foundUser, _ := c.Users.FindByID(user.ID)
	assert.Equal(t, ticket.ID, foundUser.TicketID)
}

func TestDeleteDetaches(t *testing.T) {
	c := newTestCatalog(t)
	ticket, kyiv, _ := bookTicket(t, c)

	c.Stations.DeleteByID(kyiv.ID)

	found, ok := c.Tickets.FindByID(ticket.ID)
	require.True(t, ok)
	assert.Nil(t, found.StartStation)
	assert.NotNil(t, found.EndStation)

	c.Tickets.DeleteAll()
	discounts := c.Discounts.FindAll()
	require.Len(t, discounts, 1)
	assert.Empty(t, discounts[0].TicketIDs)
}

func TestUpdateIDDetachesReplaced(t *testing.T) {
	c := newTestCatalog(t)
	ticket, kyiv, _ := bookTicket(t, c)

	t.Run("replacement without tickets", func(t *testing.T) {
		require.True(t, c.Stations.UpdateID(kyiv.ID, &dto.StationDTO{Name: "Kyiv-Pas"}))

		found, _ := c.Tickets.FindByID(ticket.ID)
		assert.Nil(t, found.StartStation)
	})

	t.Run("replacement claiming the ticket", func(t *testing.T) {
		require.True(t, c.Stations.UpdateID(kyiv.ID, &dto.StationDTO{
			Name:               "Kyiv-Central",
			DepartureTicketIDs: []int{ticket.ID},
		}))

		found, _ := c.Tickets.FindByID(ticket.ID)
		require.NotNil(t, found.StartStation)
		assert.Equal(t, kyiv.ID, found.StartStation.ID)
		assert.Equal(t, "Kyiv-Central", found.StartStation.Name)
	})
}

func TestEventsPublished(t *testing.T) {
	bus := NewEventBus()
	events := make(chan Event, 10)
	bus.Subscribe(events)
	c := newTestCatalog(t, WithEventBus(bus))

	saved, err := c.Economies.Save(&dto.EconomyDTO{FareClass: "First"})
	require.NoError(t, err)
	c.Economies.DeleteByID(saved.ID)

	created := <-events
	assert.Equal(t, EventEntityCreated, created.Type)
	assert.Equal(t, repository.EntityEconomy, created.Entity)
	assert.Equal(t, saved.ID, created.EntityID)
	_, err = uuid.Parse(created.ID)
	assert.NoError(t, err)

	deleted := <-events
	assert.Equal(t, EventEntityDeleted, deleted.Type)
	assert.NotEqual(t, created.ID, deleted.ID)
}

func TestEventBusSkipsSlowSubscribers(t *testing.T) {
	bus := NewEventBus()
	full := make(chan Event)
	bus.Subscribe(full)

	done := make(chan struct{})
	go func() {
		bus.Publish(Event{Type: EventEntityCreated})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked on a slow subscriber")
	}
}

func TestUserService(t *testing.T) {
	c := newTestCatalog(t)
	saved, err := c.Users.Save(&dto.UserDTO{
		FirstName: "Olena",
		LastName:  "Shevchenko",
		Email:     "olena@example.com",
		Password:  "correct horse",
	})
	require.NoError(t, err)

	t.Run("password is hashed", func(t *testing.T) {
		assert.NotEqual(t, "correct horse", saved.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(saved.Password), []byte("correct horse")))
	})

	t.Run("hash is kept on update", func(t *testing.T) {
		update := *saved
		update.PhoneNumber = "+380501234567"
		require.True(t, c.Users.UpdateID(saved.ID, &update))

		found, _ := c.Users.FindByID(saved.ID)
		assert.Equal(t, saved.Password, found.Password)
	})

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{name: "valid credentials", email: "olena@example.com", password: "correct horse"},
		{name: "email ignores case", email: "OLENA@example.com", password: "correct horse"},
		{name: "wrong password", email: "olena@example.com", password: "battery staple", wantErr: ErrInvalidCredentials},
		{name: "unknown email", email: "nobody@example.com", password: "correct horse", wantErr: ErrInvalidCredentials},
		{name: "empty email", password: "correct horse", wantErr: ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := c.Users.Authenticate(tt.email, tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, u)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, saved.ID, u.ID)
		})
	}

	t.Run("find by email", func(t *testing.T) {
		u, ok := c.Users.FindByEmail("olena@example.com")
		require.True(t, ok)
		assert.Equal(t, "Olena", u.FirstName)

		_, ok = c.Users.FindByEmail("missing@example.com")
		assert.False(t, ok)
	})
}

func TestTicketService(t *testing.T) {
	c := newTestCatalog(t)
	ticket, _, _ := bookTicket(t, c)

	t.Run("reference is issued", func(t *testing.T) {
		_, err := uuid.Parse(ticket.Reference)
		assert.NoError(t, err)

		found, ok := c.Tickets.FindByReference(ticket.Reference)
		require.True(t, ok)
		assert.Equal(t, ticket.ID, found.ID)

		_, ok = c.Tickets.FindByReference("")
		assert.False(t, ok)
	})

	t.Run("reference survives update", func(t *testing.T) {
		update := *ticket
		update.Reference = ""
		update.Price = 120
		require.True(t, c.Tickets.UpdateID(ticket.ID, &update))

		found, _ := c.Tickets.FindByID(ticket.ID)
		assert.Equal(t, ticket.Reference, found.Reference)
		assert.Equal(t, 120.0, found.Price)
	})

	t.Run("saving a stored ticket again issues a new reference", func(t *testing.T) {
		found, ok := c.Tickets.FindByID(ticket.ID)
		require.True(t, ok)

		copied, err := c.Tickets.Save(found)
		require.NoError(t, err)

		assert.NotEqual(t, ticket.ID, copied.ID)
		assert.NotEqual(t, ticket.Reference, copied.Reference)
		_, err = uuid.Parse(copied.Reference)
		assert.NoError(t, err)

		byRef, ok := c.Tickets.FindByReference(copied.Reference)
		require.True(t, ok)
		assert.Equal(t, copied.ID, byRef.ID)

		c.Tickets.DeleteByID(copied.ID)
	})

	t.Run("update cannot take another ticket's reference", func(t *testing.T) {
		other, err := c.Tickets.Save(&dto.TicketDTO{Price: 10, Reference: "own-ref"})
		require.NoError(t, err)
		assert.Equal(t, "own-ref", other.Reference)

		update := *other
		update.Reference = ticket.Reference
		require.True(t, c.Tickets.UpdateID(other.ID, &update))

		found, _ := c.Tickets.FindByID(other.ID)
		assert.Equal(t, "own-ref", found.Reference)
		byRef, _ := c.Tickets.FindByReference(ticket.Reference)
		assert.Equal(t, ticket.ID, byRef.ID)

		c.Tickets.DeleteByID(other.ID)
	})

	t.Run("quote applies discounts", func(t *testing.T) {
		price, err := c.Tickets.Quote(ticket.ID, domain.Date(2024, 7, 1))
		require.NoError(t, err)
		assert.InDelta(t, 72.0, price, 0.001)
	})

	t.Run("quote missing ticket", func(t *testing.T) {
		_, err := c.Tickets.Quote(999, time.Now())
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestCatalogSnapshotImport(t *testing.T) {
	source := newTestCatalog(t)
	// burn ids so the import has to remap them
	_, _ = source.Stations.Save(&dto.StationDTO{Name: "Temporary"})
	source.Stations.DeleteByID(1)
	ticket, _, _ := bookTicket(t, source)
	_, err := source.Users.Save(&dto.UserDTO{FirstName: "Taras", Email: "taras@example.com", Password: "pw"})
	require.NoError(t, err)

	snap := source.Snapshot()
	assert.Equal(t, dto.SnapshotVersion, snap.Version)
	assert.Equal(t, 5, snap.Len())

	target := newTestCatalog(t)
	result, err := target.Import(snap)
	require.NoError(t, err)

	assert.Equal(t, source.Counts(), target.Counts())
	assert.Equal(t, 2, result.Created[repository.EntityStation])
	assert.Equal(t, 1, result.IDs[repository.EntityStation][2])
	assert.Zero(t, result.Dropped)

	imported, ok := target.Tickets.FindByReference(ticket.Reference)
	require.True(t, ok)
	assert.Equal(t, "Kyiv", imported.StartStation.Name)
	assert.Equal(t, 1, imported.StartStation.ID)
	require.Len(t, imported.Discounts, 1)

	station, _ := target.Stations.FindByID(imported.StartStation.ID)
	assert.Equal(t, []int{imported.ID}, station.DepartureTicketIDs)

	_, err = target.Users.Authenticate("taras@example.com", "pw")
	assert.NoError(t, err)
}

func TestCatalogImportDropsUnknownReferences(t *testing.T) {
	c := newTestCatalog(t)
	snap := dto.NewSnapshot()
	snap.Tickets = []dto.TicketDTO{{
		ID:           1,
		Price:        10,
		StartStation: &dto.StationDTO{ID: 5, Name: "Ghost"},
		Discounts:    []dto.DiscountDTO{{ID: 9}},
	}}

	result, err := c.Import(snap)

	require.NoError(t, err)
	assert.Equal(t, 2, result.Dropped)
	assert.Zero(t, c.Stations.Count())
	tickets := c.Tickets.FindAll()
	require.Len(t, tickets, 1)
	assert.Nil(t, tickets[0].StartStation)
	assert.Empty(t, tickets[0].Discounts)
}

func TestCatalogImportNil(t *testing.T) {
	c := newTestCatalog(t)

	_, err := c.Import(nil)

	assert.ErrorIs(t, err, ErrNilSnapshot)
}

func TestCatalogClear(t *testing.T) {
	c := newTestCatalog(t)
	bookTicket(t, c)

	c.Clear()

	for entity, n := range c.Counts() {
		assert.Zero(t, n, entity)
	}
}
