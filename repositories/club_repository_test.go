package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateClubRejectsCaseInsensitiveDuplicate(t *testing.T) {
	db := setupTestDB(t)
	repo := NewClubRepository(db)

	_, err := repo.Create("Chess Club", "weekly games")
	require.NoError(t, err)

	_, err = repo.Create("chess club", "")
	assert.ErrorIs(t, err, ErrNameTaken)

	_, err = repo.Create("CHESS CLUB", "")
	assert.ErrorIs(t, err, ErrNameTaken)
}

func TestCreateClub(t *testing.T) {
	db := setupTestDB(t)
	repo := NewClubRepository(db)

	club, err := repo.Create("Book Club", "reading together")
	require.NoError(t, err)
	assert.Equal(t, "Book Club", club.Name)
	assert.NotZero(t, club.ID)
}

func TestSearchClubsCaseInsensitiveSubstring(t *testing.T) {
	db := setupTestDB(t)
	repo := NewClubRepository(db)

	for _, name := range []string{"Chess Club", "Art Club", "Lunch"} {
		_, err := repo.Create(name, "")
		require.NoError(t, err)
	}

	results, err := repo.Search("cl", 10)
	require.NoError(t, err)
	require.Len(t, results, 2)
	// Storage (insertion) order is preserved
	assert.Equal(t, "Chess Club", results[0].Name)
	assert.Equal(t, "Art Club", results[1].Name)
}

func TestSearchClubsEmptyQueryReturnsFirstClubs(t *testing.T) {
	db := setupTestDB(t)
	repo := NewClubRepository(db)

	for _, name := range []string{"Chess Club", "Art Club", "Lunch"} {
		_, err := repo.Create(name, "")
		require.NoError(t, err)
	}

	results, err := repo.Search("", 2)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "Chess Club", results[0].Name)
}

func TestToggleMembershipRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	clubs := NewClubRepository(db)
	profiles := NewProfileRepository(db)
	user := createTestUser(t, db, "jane")

	club, err := clubs.Create("Chess Club", "")
	require.NoError(t, err)
	profile, err := profiles.GetOrCreate(user.ID)
	require.NoError(t, err)

	joined, err := clubs.ToggleMembership(profile, club)
	require.NoError(t, err)
	assert.True(t, joined)

	member, err := clubs.IsMember(profile.ID, club.ID)
	require.NoError(t, err)
	assert.True(t, member)

	joined, err = clubs.ToggleMembership(profile, club)
	require.NoError(t, err)
	assert.False(t, joined)

	member, err = clubs.IsMember(profile.ID, club.ID)
	require.NoError(t, err)
	assert.False(t, member)
}
