package store

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/aivahq/aiva/models"
)

const (
	createUser = `INSERT INTO users (id, name, email, password, plan, credits, avatar_count)
    VALUES ($1, $2, $3, $4, $5, $6, $7)
    RETURNING id, name, email, password, plan, credits, avatar_count, created_at, updated_at;`

	findUserByEmail = `SELECT id, name, email, password, plan, credits, avatar_count, created_at, updated_at
    FROM users
    WHERE lower(email) = lower($1);`

	findUserByID = `SELECT id, name, email, password, plan, credits, avatar_count, created_at, updated_at
    FROM users
    WHERE id = $1;`

	createAvatar = `INSERT INTO avatars (id, name, creator, likes, downloads, price, category, description, image_url)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    RETURNING id, name, creator, likes, downloads, price, category, description, image_url, created_at, updated_at;`

	countAvatars = `SELECT count(*) FROM avatars;`
)

var avatarColumns = []string{
	"id", "name", "creator", "likes", "downloads",
	"price", "category", "description", "image_url", "created_at", "updated_at",
}

// buildGetAvatarsQuery builds the listing SELECT. An empty category means no
// filter; listings always come back newest first.
func buildGetAvatarsQuery(category models.Category) (string, []any, error) {
	builder := sq.
		Select(avatarColumns...).
		From(models.Avatar{}.TableName()).
		OrderBy("created_at DESC").
		PlaceholderFormat(sq.Dollar)

	if category != "" {
		builder = builder.Where(sq.Eq{"category": category})
	}

	return builder.ToSql()
}
