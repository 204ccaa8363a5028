package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bloom-api/models"
)

func TestCreateAllocatesSlugFromContent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	user := createTestUser(t, db, "jane")

	post := createTestPost(t, db, repo, user.ID, "Hello World!")
	assert.Equal(t, "hello-world", post.Slug)
}

func TestCreateSuffixesCollidingSlugs(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	user := createTestUser(t, db, "jane")

	first := createTestPost(t, db, repo, user.ID, "Hello World!")
	second := createTestPost(t, db, repo, user.ID, "Hello World!")
	third := createTestPost(t, db, repo, user.ID, "Hello World!")

	assert.Equal(t, "hello-world", first.Slug)
	assert.Equal(t, "hello-world-1", second.Slug)
	assert.Equal(t, "hello-world-2", third.Slug)
}

func TestCreateSlugsAreUniqueAcrossManyPosts(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	user := createTestUser(t, db, "jane")

	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		post := createTestPost(t, db, repo, user.ID, "study group at the library tonight")
		require.False(t, seen[post.Slug], "slug %q allocated twice", post.Slug)
		seen[post.Slug] = true
	}
}

func TestCreateWithPunctuationOnlyContent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	user := createTestUser(t, db, "jane")

	post := createTestPost(t, db, repo, user.ID, "!?!?")
	assert.Equal(t, "post", post.Slug)
}

func TestToggleLikeRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	user := createTestUser(t, db, "jane")
	post := createTestPost(t, db, repo, user.ID, "Hello World!")

	liked, count, err := repo.ToggleLike(user.ID, post)
	require.NoError(t, err)
	assert.True(t, liked)
	assert.EqualValues(t, 1, count)

	liked, count, err = repo.ToggleLike(user.ID, post)
	require.NoError(t, err)
	assert.False(t, liked)
	assert.EqualValues(t, 0, count)
}

func TestToggleLikeCountsOtherUsers(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	author := createTestUser(t, db, "jane")
	other := createTestUser(t, db, "john")
	post := createTestPost(t, db, repo, author.ID, "Hello World!")

	_, _, err := repo.ToggleLike(other.ID, post)
	require.NoError(t, err)

	liked, count, err := repo.ToggleLike(author.ID, post)
	require.NoError(t, err)
	assert.True(t, liked)
	assert.EqualValues(t, 2, count)
}

func TestDuplicateLikeRowRejectedByConstraint(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	user := createTestUser(t, db, "jane")
	post := createTestPost(t, db, repo, user.ID, "Hello World!")

	require.NoError(t, db.Create(&models.Like{PostID: post.ID, UserID: user.ID}).Error)
	err := db.Create(&models.Like{PostID: post.ID, UserID: user.ID}).Error
	require.Error(t, err, "the (post, user) unique index must reject a second like")
}

func TestListCommentsOldestFirst(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	user := createTestUser(t, db, "jane")
	post := createTestPost(t, db, repo, user.ID, "Hello World!")

	base := time.Now().Add(-time.Hour)
	for i := 2; i >= 0; i-- {
		comment := models.Comment{
			ID:        uuid.New().String(),
			PostID:    post.ID,
			UserID:    user.ID,
			Content:   fmt.Sprintf("comment %d", i),
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, db.Create(&comment).Error)
	}

	comments, err := repo.ListComments(post.ID)
	require.NoError(t, err)
	require.Len(t, comments, 3)
	assert.Equal(t, "comment 0", comments[0].Content)
	assert.Equal(t, "comment 2", comments[2].Content)
}

func TestCreateCommentLoadsAuthorAndBumpsCount(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	user := createTestUser(t, db, "jane")
	post := createTestPost(t, db, repo, user.ID, "Hello World!")

	comment := models.Comment{
		ID:      uuid.New().String(),
		PostID:  post.ID,
		UserID:  user.ID,
		Content: "nice one",
	}
	require.NoError(t, repo.CreateComment(&comment))
	assert.Equal(t, "jane", comment.User.Username)

	count, err := repo.CommentCount(post.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestFeedNewestFirstAndPaginated(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	user := createTestUser(t, db, "jane")

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		post := models.Post{
			ID:        uuid.New().String(),
			UserID:    user.ID,
			Content:   fmt.Sprintf("post number %d", i),
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, repo.Create(&post))
	}

	posts, total, err := repo.Feed(nil, nil, 0, 3)
	require.NoError(t, err)
	assert.EqualValues(t, 5, total)
	require.Len(t, posts, 3)
	assert.Equal(t, "post number 4", posts[0].Content)
	assert.Equal(t, "post number 2", posts[2].Content)
}

func TestFeedFiltersByClubAndMembership(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	clubs := NewClubRepository(db)
	profiles := NewProfileRepository(db)
	user := createTestUser(t, db, "jane")

	chess, err := clubs.Create("Chess Club", "")
	require.NoError(t, err)
	art, err := clubs.Create("Art Club", "")
	require.NoError(t, err)

	chessPost := models.Post{ID: uuid.New().String(), UserID: user.ID, Content: "chess tonight", ClubID: &chess.ID}
	require.NoError(t, repo.Create(&chessPost))
	artPost := models.Post{ID: uuid.New().String(), UserID: user.ID, Content: "gallery visit", ClubID: &art.ID}
	require.NoError(t, repo.Create(&artPost))
	unscoped := models.Post{ID: uuid.New().String(), UserID: user.ID, Content: "general update"}
	require.NoError(t, repo.Create(&unscoped))

	// Scoped to one club
	posts, total, err := repo.Feed(&chess.ID, nil, 0, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, posts, 1)
	assert.Equal(t, "chess tonight", posts[0].Content)

	// Scoped to the user's memberships
	profile, err := profiles.GetOrCreate(user.ID)
	require.NoError(t, err)
	_, err = clubs.ToggleMembership(profile, art)
	require.NoError(t, err)

	posts, total, err = repo.Feed(nil, &profile.ID, 0, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, posts, 1)
	assert.Equal(t, "gallery visit", posts[0].Content)
}
