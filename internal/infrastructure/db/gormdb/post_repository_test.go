package gormdb

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/GitPiyusha/flask-microblog/internal/domain/entities"
)

func createTestPost(t *testing.T, db *gorm.DB, authorId uint, body string, at time.Time) *entities.Post {
	t.Helper()

	post := &entities.Post{Body: body, CreatedAt: at, AuthorId: authorId}
	validated, err := entities.NewValidatedPost(post)
	require.NoError(t, err)

	created, err := NewPostRepository(db).Create(context.Background(), validated)
	require.NoError(t, err)
	return created
}

func postBodies(posts []*entities.Post) []string {
	bodies := make([]string, 0, len(posts))
	for _, post := range posts {
		bodies = append(bodies, post.Body)
	}
	return bodies
}

func TestPostRepositoryCreateAndFind(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	john := createTestUser(t, db, "john")
	created := createTestPost(t, db, john.Id, "Beautiful day!", time.Now().UTC())

	found, err := repo.FindById(ctx, created.Id)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Beautiful day!", found.Body)
	assert.Equal(t, john.Id, found.AuthorId)

	missing, err := repo.FindById(ctx, 999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestListFeedScenario(t *testing.T) {
	db := newTestDB(t)
	postRepo := NewPostRepository(db)
	followRepo := NewFollowRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	createTestPost(t, db, bob.Id, "P1", base.Add(10*time.Second))
	createTestPost(t, db, bob.Id, "P2", base.Add(20*time.Second))
	createTestPost(t, db, alice.Id, "P3", base.Add(15*time.Second))

	require.NoError(t, followRepo.Follow(ctx, alice.Id, bob.Id))

	feed, err := postRepo.ListFeed(ctx, alice.Id)
	require.NoError(t, err)
	assert.Equal(t, []string{"P2", "P3", "P1"}, postBodies(feed))
}

func TestListFeedExcludesUnfollowedAuthors(t *testing.T) {
	db := newTestDB(t)
	postRepo := NewPostRepository(db)
	followRepo := NewFollowRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	carol := createTestUser(t, db, "carol")

	now := time.Now().UTC()
	createTestPost(t, db, bob.Id, "from bob", now)
	createTestPost(t, db, carol.Id, "from carol", now.Add(time.Second))

	require.NoError(t, followRepo.Follow(ctx, alice.Id, bob.Id))

	feed, err := postRepo.ListFeed(ctx, alice.Id)
	require.NoError(t, err)
	assert.Equal(t, []string{"from bob"}, postBodies(feed))
}

func TestListFeedOwnPostsOnly(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	now := time.Now().UTC()
	createTestPost(t, db, alice.Id, "first", now)
	createTestPost(t, db, alice.Id, "second", now.Add(time.Second))

	feed, err := repo.ListFeed(ctx, alice.Id)
	require.NoError(t, err)
	assert.Equal(t, []string{"second", "first"}, postBodies(feed))
}

func TestListFeedEmpty(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRepository(db)

	alice := createTestUser(t, db, "alice")

	feed, err := repo.ListFeed(context.Background(), alice.Id)
	require.NoError(t, err)
	assert.Empty(t, feed)
}

func TestListFeedTimestampTieBreaksOnId(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRepository(db)

	alice := createTestUser(t, db, "alice")
	at := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	older := createTestPost(t, db, alice.Id, "older", at)
	newer := createTestPost(t, db, alice.Id, "newer", at)
	require.Greater(t, newer.Id, older.Id)

	feed, err := repo.ListFeed(context.Background(), alice.Id)
	require.NoError(t, err)
	assert.Equal(t, []string{"newer", "older"}, postBodies(feed))
}

func TestListByAuthor(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	now := time.Now().UTC()
	createTestPost(t, db, alice.Id, "mine", now)
	createTestPost(t, db, bob.Id, "not mine", now.Add(time.Second))

	posts, err := repo.ListByAuthor(ctx, alice.Id)
	require.NoError(t, err)
	assert.Equal(t, []string{"mine"}, postBodies(posts))
}
