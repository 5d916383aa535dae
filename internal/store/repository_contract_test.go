package store

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-calendar/internal/logger"
	"github.com/MKhiriev/go-calendar/internal/utils"
	"github.com/MKhiriev/go-calendar/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runRepositoryContract exercises the repositories against a real, migrated
// database. It is shared by the SQLite tests and the PostgreSQL integration test.
func runRepositoryContract(t *testing.T, db *DB) {
	t.Helper()

	ctx := context.Background()
	storages := newStorages(db, logger.Nop())
	ids := utils.NewUUIDGenerator()
	now := utils.NormalizeTime(time.Now())

	newUser := func(email string) models.User {
		user, err := storages.UserRepository.CreateUser(ctx, models.User{
			UserID:       ids.Generate(),
			Email:        email,
			FirstName:    "First",
			LastName:     "Last",
			PasswordHash: "$2a$10$hash",
			IsActive:     true,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		require.NoError(t, err)
		return user
	}

	newEvent := func(owner string, title string, start time.Time) models.Event {
		event, err := storages.EventRepository.CreateEvent(ctx, models.Event{
			ID:        ids.Generate(),
			Title:     title,
			StartDate: start,
			Color:     models.DefaultEventColor,
			UserID:    owner,
			CreatedAt: now,
			UpdatedAt: now,
		})
		require.NoError(t, err)
		return event
	}

	alice := newUser("alice@example.com")
	bob := newUser("bob@example.com")

	t.Run("duplicate email", func(t *testing.T) {
		_, err := storages.UserRepository.CreateUser(ctx, models.User{
			UserID:       ids.Generate(),
			Email:        "alice@example.com",
			PasswordHash: "x",
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		assert.ErrorIs(t, err, ErrEmailAlreadyExists)
	})

	t.Run("find user", func(t *testing.T) {
		found, err := storages.UserRepository.FindUserByEmail(ctx, "alice@example.com")
		require.NoError(t, err)
		assert.Equal(t, alice.UserID, found.UserID)
		assert.Equal(t, alice.PasswordHash, found.PasswordHash)
		assert.True(t, found.IsActive)
		assert.True(t, found.CreatedAt.Equal(now))

		byID, err := storages.UserRepository.FindUserByID(ctx, bob.UserID)
		require.NoError(t, err)
		assert.Equal(t, "bob@example.com", byID.Email)

		_, err = storages.UserRepository.FindUserByEmail(ctx, "nobody@example.com")
		assert.ErrorIs(t, err, ErrNoUserWasFound)
	})

	base := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	late := newEvent(alice.UserID, "late", base.Add(48*time.Hour))
	early := newEvent(alice.UserID, "early", base)
	middle := newEvent(alice.UserID, "middle", base.Add(24*time.Hour))
	foreign := newEvent(bob.UserID, "bob's", base.Add(time.Hour))

	t.Run("list is owner scoped and ordered", func(t *testing.T) {
		events, err := storages.EventRepository.FindEvents(ctx, models.EventFilter{UserID: alice.UserID})
		require.NoError(t, err)
		require.Len(t, events, 3)
		assert.Equal(t, []string{early.ID, middle.ID, late.ID}, []string{events[0].ID, events[1].ID, events[2].ID})
	})

	t.Run("range bounds are inclusive", func(t *testing.T) {
		from := early.StartDate
		to := middle.StartDate
		events, err := storages.EventRepository.FindEvents(ctx, models.EventFilter{UserID: alice.UserID, From: &from, To: &to})
		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, early.ID, events[0].ID)
		assert.Equal(t, middle.ID, events[1].ID)
	})

	t.Run("limit", func(t *testing.T) {
		from := base.Add(time.Minute)
		events, err := storages.EventRepository.FindEvents(ctx, models.EventFilter{UserID: alice.UserID, From: &from, Limit: 1})
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, middle.ID, events[0].ID)
	})

	t.Run("foreign event is not found", func(t *testing.T) {
		_, err := storages.EventRepository.FindEventByID(ctx, foreign.ID, alice.UserID)
		assert.ErrorIs(t, err, ErrEventNotFound)

		foreign.Title = "hijacked"
		foreign.UserID = alice.UserID
		_, err = storages.EventRepository.UpdateEvent(ctx, foreign)
		assert.ErrorIs(t, err, ErrEventNotFound)

		assert.ErrorIs(t, storages.EventRepository.DeleteEvent(ctx, foreign.ID, alice.UserID), ErrEventNotFound)

		stored, err := storages.EventRepository.FindEventByID(ctx, foreign.ID, bob.UserID)
		require.NoError(t, err)
		assert.Equal(t, "bob's", stored.Title)
	})

	t.Run("update round trips optional fields", func(t *testing.T) {
		end := early.StartDate.Add(90 * time.Minute)
		early.Title = "early, renamed"
		early.Description = ptr("agenda")
		early.Location = ptr("Room 1")
		early.EndDate = &end
		early.Reminders = models.Reminders{models.OneWeek, models.FiveMinutes}
		early.IsAllDay = true
		early.Color = "#ff0000"
		early.UpdatedAt = now.Add(time.Minute)

		_, err := storages.EventRepository.UpdateEvent(ctx, early)
		require.NoError(t, err)

		stored, err := storages.EventRepository.FindEventByID(ctx, early.ID, alice.UserID)
		require.NoError(t, err)
		assert.Equal(t, "early, renamed", stored.Title)
		assert.Equal(t, "agenda", *stored.Description)
		assert.Equal(t, "Room 1", *stored.Location)
		require.NotNil(t, stored.EndDate)
		assert.True(t, stored.EndDate.Equal(end))
		assert.Equal(t, models.Reminders{models.OneWeek, models.FiveMinutes}, stored.Reminders)
		assert.True(t, stored.IsAllDay)
		assert.Equal(t, "#ff0000", stored.Color)
		assert.True(t, stored.CreatedAt.Equal(now))
		assert.True(t, stored.UpdatedAt.Equal(now.Add(time.Minute)))
	})

	t.Run("update clears optional fields", func(t *testing.T) {
		early.Description = nil
		early.EndDate = nil
		early.Reminders = nil

		_, err := storages.EventRepository.UpdateEvent(ctx, early)
		require.NoError(t, err)

		stored, err := storages.EventRepository.FindEventByID(ctx, early.ID, alice.UserID)
		require.NoError(t, err)
		assert.Nil(t, stored.Description)
		assert.Nil(t, stored.EndDate)
		assert.Nil(t, stored.Reminders)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, storages.EventRepository.DeleteEvent(ctx, late.ID, alice.UserID))

		_, err := storages.EventRepository.FindEventByID(ctx, late.ID, alice.UserID)
		assert.ErrorIs(t, err, ErrEventNotFound)

		assert.ErrorIs(t, storages.EventRepository.DeleteEvent(ctx, late.ID, alice.UserID), ErrEventNotFound)
	})
}
