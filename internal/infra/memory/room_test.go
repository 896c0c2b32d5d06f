package infra_memory_room

import (
	"context"
	"sync"
	"testing"

	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/picparty/core/internal/model"
	"github.com/picparty/core/internal/store"
	"github.com/stretchr/testify/assert"
)

type MemoryDriverSuite struct {
	suite.Suite
}

type resources struct {
	driver *Driver
	ctx    context.Context
}

func initResources(t provider.T) *resources {
	return &resources{
		driver: New(),
		ctx:    context.Background(),
	}
}

func seedRoom(t provider.T, r *resources, code model.RoomCode, names ...string) {
	assert.NoError(t, r.driver.CreateRoom(r.ctx, model.Room{
		Code:         code,
		CurrentRound: 1,
		RoundLimit:   3,
		Joinable:     true,
	}))
	for _, name := range names {
		assert.NoError(t, r.driver.PutUser(r.ctx, code, model.User{Name: name}))
	}
}

func (suite *MemoryDriverSuite) TestRoomLifecycle(t provider.T) {
	t.Parallel()

	t.Run("Should reject duplicate codes", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		seedRoom(t, r, "AAAA22")

		err := r.driver.CreateRoom(r.ctx, model.Room{Code: "AAAA22"})

		assert.ErrorIs(t, err, store.ErrCodeConflict)
	})

	t.Run("Should apply only the set update fields", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		seedRoom(t, r, "AAAA22")

		err := r.driver.UpdateRoom(r.ctx, "AAAA22", store.RoomUpdate{
			Joinable: store.Bool(false),
		})
		assert.NoError(t, err)

		room, err := r.driver.Room(r.ctx, "AAAA22")
		assert.NoError(t, err)
		assert.False(t, room.Joinable)
		assert.False(t, room.GameStarted)
		assert.Equal(t, 1, room.CurrentRound)
	})

	t.Run("Should fail lookups after deletion", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		seedRoom(t, r, "AAAA22")

		assert.NoError(t, r.driver.DeleteRoom(r.ctx, "AAAA22"))

		_, err := r.driver.Room(r.ctx, "AAAA22")
		assert.ErrorIs(t, err, store.ErrRoomNotFound)
	})
}

func (suite *MemoryDriverSuite) TestUsers(t provider.T) {
	t.Parallel()

	t.Run("Should keep insertion order", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		seedRoom(t, r, "AAAA22", "carol", "alice", "bob")

		users, err := r.driver.Users(r.ctx, "AAAA22")

		assert.NoError(t, err)
		assert.Equal(t, "carol", users[0].Name)
		assert.Equal(t, "alice", users[1].Name)
		assert.Equal(t, "bob", users[2].Name)
	})

	t.Run("Should overwrite a user on name reuse", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		seedRoom(t, r, "AAAA22", "alice")

		assert.NoError(t, r.driver.PutUser(r.ctx, "AAAA22", model.User{Name: "alice", IsHost: true}))

		users, err := r.driver.Users(r.ctx, "AAAA22")
		assert.NoError(t, err)
		assert.Len(t, users, 1)
		assert.True(t, users[0].IsHost)
	})

	t.Run("Should tolerate deleting an absent user", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		seedRoom(t, r, "AAAA22", "alice")

		assert.NoError(t, r.driver.DeleteUser(r.ctx, "AAAA22", "ghost"))
	})
}

func (suite *MemoryDriverSuite) TestWaiting(t provider.T) {
	t.Parallel()

	t.Run("Should count distinct names once", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		seedRoom(t, r, "AAAA22", "alice", "bob")

		assert.NoError(t, r.driver.AddWaiting(r.ctx, "AAAA22", "alice"))
		assert.NoError(t, r.driver.AddWaiting(r.ctx, "AAAA22", "alice"))
		assert.NoError(t, r.driver.AddWaiting(r.ctx, "AAAA22", "bob"))

		count, err := r.driver.WaitingCount(r.ctx, "AAAA22")
		assert.NoError(t, err)
		assert.Equal(t, 2, count)

		assert.NoError(t, r.driver.ClearWaiting(r.ctx, "AAAA22"))

		count, err = r.driver.WaitingCount(r.ctx, "AAAA22")
		assert.NoError(t, err)
		assert.Zero(t, count)
	})
}

func (suite *MemoryDriverSuite) TestScores(t provider.T) {
	t.Parallel()

	t.Run("Should reset round scores but keep overall", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		seedRoom(t, r, "AAAA22", "alice")

		assert.NoError(t, r.driver.AwardPoint(r.ctx, "AAAA22", "alice"))
		assert.NoError(t, r.driver.AwardPoint(r.ctx, "AAAA22", "alice"))
		assert.NoError(t, r.driver.ResetRoundScores(r.ctx, "AAAA22"))

		user, err := r.driver.User(r.ctx, "AAAA22", "alice")
		assert.NoError(t, err)
		assert.Zero(t, user.RoundScore)
		assert.Equal(t, 2, user.OverallScore)
	})

	t.Run("Should fail for an unknown user", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		seedRoom(t, r, "AAAA22")

		err := r.driver.AwardPoint(r.ctx, "AAAA22", "ghost")

		assert.ErrorIs(t, err, store.ErrUserNotFound)
	})
}

func (suite *MemoryDriverSuite) TestConcurrentIncrements(t provider.T) {
	t.Parallel()

	const voters = 50

	r := initResources(t)
	seedRoom(t, r, "AAAA22", "alice")

	var wg sync.WaitGroup
	wg.Add(voters * 2)
	for i := 0; i < voters; i++ {
		go func() {
			defer wg.Done()
			assert.NoError(t, r.driver.AwardPoint(r.ctx, "AAAA22", "alice"))
		}()
		go func() {
			defer wg.Done()
			_, err := r.driver.IncrementRound(r.ctx, "AAAA22")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	user, err := r.driver.User(r.ctx, "AAAA22", "alice")
	assert.NoError(t, err)
	assert.Equal(t, voters, user.RoundScore)
	assert.Equal(t, voters, user.OverallScore)

	room, err := r.driver.Room(r.ctx, "AAAA22")
	assert.NoError(t, err)
	assert.Equal(t, 1+voters, room.CurrentRound)
}

func TestMemoryDriverSuite(t *testing.T) {
	suite.RunSuite(t, new(MemoryDriverSuite))
}
