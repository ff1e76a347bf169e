package mongo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/vaishnavi000000000000000011/Fit-Plan-Hub/internal/repository"
)

// newMockT returns an mtest harness whose clients talk to a scripted deployment.
func newMockT(t *testing.T) *mtest.T {
	return mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
}

func ns(mt *mtest.T, collection string) string {
	return mt.DB.Name() + "." + collection
}

func userDoc(id, email string, following ...string) bson.D {
	followingArr := bson.A{}
	for _, f := range following {
		followingArr = append(followingArr, f)
	}
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "name", Value: "Jordan Lee"},
		{Key: "email", Value: email},
		{Key: "role", Value: "user"},
		{Key: "following", Value: followingArr},
	}
}

func updateOK() bson.D {
	return mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1})
}

func TestMongoUserRepository_Lookups(t *testing.T) {
	mt := newMockT(t)
	ctx := context.Background()

	mt.Run("unknown email is ErrNotFound", func(mt *mtest.T) {
		repo := NewMongoUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt, userCollectionName), mtest.FirstBatch))

		user, err := repo.GetByEmail(ctx, "ghost@fit.com")
		assert.Nil(mt, user)
		assert.ErrorIs(mt, err, repository.ErrNotFound)
	})

	mt.Run("unknown id is ErrNotFound", func(mt *mtest.T) {
		repo := NewMongoUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt, userCollectionName), mtest.FirstBatch))

		user, err := repo.GetByID(ctx, "nobody")
		assert.Nil(mt, user)
		assert.ErrorIs(mt, err, repository.ErrNotFound)
	})

	mt.Run("first match in natural order", func(mt *mtest.T) {
		repo := NewMongoUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt, userCollectionName), mtest.FirstBatch,
			userDoc("u1", "jordan@user.com", "t1")))

		user, err := repo.GetByEmail(ctx, "jordan@user.com")
		require.NoError(mt, err)
		assert.Equal(mt, "u1", user.ID)
		assert.Equal(mt, []string{"t1"}, user.Following)

		evt := mt.GetStartedEvent()
		require.NotNil(mt, evt)
		assert.Equal(mt, "find", evt.CommandName)
		assert.Equal(mt, "jordan@user.com", evt.Command.Lookup("filter", "email").StringValue())
		assert.EqualValues(mt, 1, evt.Command.Lookup("sort", "$natural").AsInt64())
	})
}

func TestMongoUserRepository_ToggleFollow(t *testing.T) {
	mt := newMockT(t)
	ctx := context.Background()

	mt.Run("followed trainer is pulled", func(mt *mtest.T) {
		repo := NewMongoUserRepository(mt.DB)
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, ns(mt, userCollectionName), mtest.FirstBatch, userDoc("u1", "jordan@user.com", "t1")),
			updateOK(),
		)

		require.NoError(mt, repo.ToggleFollow(ctx, "u1", "t1"))

		events := mt.GetAllStartedEvents()
		require.Len(mt, events, 2)
		assert.Equal(mt, "update", events[1].CommandName)
		assert.Equal(mt, "u1", events[1].Command.Lookup("updates", "0", "q", "_id").StringValue())
		assert.Equal(mt, "t1", events[1].Command.Lookup("updates", "0", "u", "$pull", "following").StringValue())
	})

	mt.Run("unfollowed trainer is added", func(mt *mtest.T) {
		repo := NewMongoUserRepository(mt.DB)
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, ns(mt, userCollectionName), mtest.FirstBatch, userDoc("u1", "jordan@user.com", "t1")),
			updateOK(),
		)

		require.NoError(mt, repo.ToggleFollow(ctx, "u1", "t2"))

		events := mt.GetAllStartedEvents()
		require.Len(mt, events, 2)
		assert.Equal(mt, "t2", events[1].Command.Lookup("updates", "0", "u", "$addToSet", "following").StringValue())
	})

	mt.Run("unknown user is a no-op", func(mt *mtest.T) {
		repo := NewMongoUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt, userCollectionName), mtest.FirstBatch))

		require.NoError(mt, repo.ToggleFollow(ctx, "nobody", "t1"))
		assert.Len(mt, mt.GetAllStartedEvents(), 1)
	})
}
