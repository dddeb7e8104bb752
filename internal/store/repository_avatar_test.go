package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/aivahq/aiva/internal/logger"
	"github.com/aivahq/aiva/models"
	"github.com/google/uuid"
)

func newTestAvatarRepo(t *testing.T) (*avatarRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	repo := &avatarRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func avatarRows(avatars ...models.Avatar) *sqlmock.Rows {
	rows := sqlmock.NewRows(avatarColumns)
	now := time.Now()
	for _, a := range avatars {
		rows.AddRow(a.ID, a.Name, a.Creator, a.Likes, a.Downloads,
			a.Price, a.Category, a.Description, a.ImageURL, now, now)
	}
	return rows
}

func TestCreateAvatar_Success(t *testing.T) {
	repo, mock, db := newTestAvatarRepo(t)
	defer db.Close()

	ctx := context.Background()
	avatar := models.Avatar{
		ID:       uuid.New(),
		Name:     "Celestial Muse",
		Creator:  "ArtistPro",
		Likes:    1234,
		Price:    "Free",
		Category: models.CategoryAnime,
	}

	mock.ExpectQuery("INSERT INTO avatars").
		WithArgs(avatar.ID, avatar.Name, avatar.Creator, avatar.Likes, avatar.Downloads,
			avatar.Price, avatar.Category, avatar.Description, avatar.ImageURL).
		WillReturnRows(avatarRows(avatar))

	created, err := repo.CreateAvatar(ctx, avatar)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Name != avatar.Name {
		t.Errorf("expected name %s, got %s", avatar.Name, created.Name)
	}
}

func TestGetAvatars_NoFilter(t *testing.T) {
	repo, mock, db := newTestAvatarRepo(t)
	defer db.Close()

	ctx := context.Background()
	first := models.Avatar{ID: uuid.New(), Name: "Neon Phantom", Creator: "CyberQueen", Category: models.CategoryRealistic}
	second := models.Avatar{ID: uuid.New(), Name: "Dream Weaver", Creator: "FantasyKing", Category: models.CategoryAnime}

	mock.ExpectQuery("SELECT (.+) FROM avatars").
		WillReturnRows(avatarRows(first, second))

	avatars, err := repo.GetAvatars(ctx, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(avatars) != 2 {
		t.Fatalf("expected 2 avatars, got %d", len(avatars))
	}
	if avatars[0].Name != first.Name {
		t.Errorf("expected first avatar %s, got %s", first.Name, avatars[0].Name)
	}
}

func TestGetAvatars_CategoryFilter(t *testing.T) {
	repo, mock, db := newTestAvatarRepo(t)
	defer db.Close()

	ctx := context.Background()
	avatar := models.Avatar{ID: uuid.New(), Name: "Cyber Warrior", Creator: "TechMaster", Category: models.CategoryRealistic}

	mock.ExpectQuery("SELECT (.+) FROM avatars WHERE category").
		WithArgs(models.CategoryRealistic).
		WillReturnRows(avatarRows(avatar))

	avatars, err := repo.GetAvatars(ctx, models.CategoryRealistic)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(avatars) != 1 {
		t.Fatalf("expected 1 avatar, got %d", len(avatars))
	}
}

func TestGetAvatars_Empty(t *testing.T) {
	repo, mock, db := newTestAvatarRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT (.+) FROM avatars").
		WillReturnRows(avatarRows())

	avatars, err := repo.GetAvatars(ctx, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if avatars == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(avatars) != 0 {
		t.Fatalf("expected no avatars, got %d", len(avatars))
	}
}

func TestGetAvatars_QueryError(t *testing.T) {
	repo, mock, db := newTestAvatarRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT (.+) FROM avatars").
		WillReturnError(errors.New("db network error"))

	_, err := repo.GetAvatars(ctx, "")
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestCountAvatars(t *testing.T) {
	repo, mock, db := newTestAvatarRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT count").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	count, err := repo.CountAvatars(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 4 {
		t.Errorf("expected count=4, got %d", count)
	}
}
