package mongo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func subscriptionDoc(userID, planID string) bson.D {
	return bson.D{
		{Key: "userId", Value: userID},
		{Key: "planId", Value: planID},
		{Key: "startDate", Value: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)},
	}
}

func TestMongoSubscriptionRepository_GetPlansByUserID(t *testing.T) {
	mt := newMockT(t)
	ctx := context.Background()

	mt.Run("joins in subscription order, keeps repeats, drops deleted plans", func(mt *mtest.T) {
		repo := NewMongoSubscriptionRepository(mt.DB)
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, ns(mt, subscriptionCollectionName), mtest.FirstBatch,
				subscriptionDoc("u1", "p2"),
				subscriptionDoc("u1", "gone"),
				subscriptionDoc("u1", "p1"),
				subscriptionDoc("u1", "p2"),
			),
			// The plan lookup returns in natural order, not subscription order
			mtest.CreateCursorResponse(0, ns(mt, planCollectionName), mtest.FirstBatch,
				planDoc("p1", "t1", "30-Day Shred"),
				planDoc("p2", "t1", "Muscle Builder Pro"),
			),
		)

		plans, err := repo.GetPlansByUserID(ctx, "u1")
		require.NoError(mt, err)

		ids := make([]string, len(plans))
		for i, p := range plans {
			ids[i] = p.ID
		}
		assert.Equal(mt, []string{"p2", "p1", "p2"}, ids)

		events := mt.GetAllStartedEvents()
		require.Len(mt, events, 2)
		assert.Equal(mt, "u1", events[0].Command.Lookup("filter", "userId").StringValue())
		assert.Equal(mt, planCollectionName, events[1].Command.Lookup("find").StringValue())
		_, ok := events[1].Command.Lookup("filter", "_id", "$in").ArrayOK()
		assert.True(mt, ok)
	})

	mt.Run("no subscriptions skips the plan lookup", func(mt *mtest.T) {
		repo := NewMongoSubscriptionRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt, subscriptionCollectionName), mtest.FirstBatch))

		plans, err := repo.GetPlansByUserID(ctx, "u1")
		require.NoError(mt, err)
		assert.NotNil(mt, plans)
		assert.Empty(mt, plans)
		assert.Len(mt, mt.GetAllStartedEvents(), 1)
	})
}

func TestMongoSubscriptionRepository_Exists(t *testing.T) {
	mt := newMockT(t)
	ctx := context.Background()

	mt.Run("counted subscription exists", func(mt *mtest.T) {
		repo := NewMongoSubscriptionRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt, subscriptionCollectionName), mtest.FirstBatch,
			bson.D{{Key: "n", Value: 1}}))

		ok, err := repo.Exists(ctx, "u1", "p1")
		require.NoError(mt, err)
		assert.True(mt, ok)
	})

	mt.Run("no match", func(mt *mtest.T) {
		repo := NewMongoSubscriptionRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt, subscriptionCollectionName), mtest.FirstBatch))

		ok, err := repo.Exists(ctx, "u1", "p3")
		require.NoError(mt, err)
		assert.False(mt, ok)
	})
}
