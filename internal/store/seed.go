package store

import (
	"context"
	"fmt"

	"github.com/aivahq/aiva/internal/logger"
	"github.com/aivahq/aiva/models"
)

// seedItems are the starter listings inserted into an empty marketplace so a
// fresh deployment has something to show.
var seedItems = []models.Avatar{
	{
		Name:        "Celestial Muse",
		Creator:     "ArtistPro",
		Likes:       1234,
		Downloads:   567,
		Price:       "Free",
		Category:    models.CategoryAnime,
		Description: "Ethereal avatar infused with cosmic energy and graceful motion.",
	},
	{
		Name:        "Cyber Warrior",
		Creator:     "TechMaster",
		Likes:       2341,
		Downloads:   892,
		Price:       "50 Credits",
		Category:    models.CategoryRealistic,
		Description: "Futuristic combat avatar built for immersive storytelling.",
	},
	{
		Name:        "Dream Weaver",
		Creator:     "FantasyKing",
		Likes:       987,
		Downloads:   432,
		Price:       "Free",
		Category:    models.CategoryAnime,
		Description: "Whimsical avatar known for imaginative narratives.",
	},
	{
		Name:        "Neon Phantom",
		Creator:     "CyberQueen",
		Likes:       3456,
		Downloads:   1234,
		Price:       "100 Credits",
		Category:    models.CategoryRealistic,
		Description: "High-energy avatar wrapped in neon motion trails.",
	},
}

// SeedAvatars populates the avatars table with the starter listings if, and
// only if, the table is empty.
func (r *Repositories) SeedAvatars(ctx context.Context, logger *logger.Logger) error {
	count, err := r.AvatarRepository.CountAvatars(ctx)
	if err != nil {
		return fmt.Errorf("counting avatars before seeding: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, item := range seedItems {
		if _, err := r.AvatarRepository.CreateAvatar(ctx, item); err != nil {
			return fmt.Errorf("seeding avatar %q: %w", item.Name, err)
		}
	}
	logger.Info().Int("count", len(seedItems)).Msg("seeded avatars table")

	return nil
}
