// Copyright (c) 2025 tor-iv.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package catalog

import "github.com/tor-iv/foe-finder-sub000/models"

const (
	labelStronglyDisagree = "Strongly Disagree"
	labelStronglyAgree    = "Strongly Agree"
)

func statement(id int, text, category string) models.Question {
	return models.Question{
		ID:            id,
		Text:          text,
		Category:      category,
		ScaleMinLabel: labelStronglyDisagree,
		ScaleMaxLabel: labelStronglyAgree,
		Order:         id,
	}
}

var defaultQuestions = []models.Question{
	statement(1, "Typing \"...\" is more threatening than a period", models.CategorySocial),
	statement(2, "I've screenshot texts to send to the group chat", models.CategorySocial),
	statement(3, "Couples who share a social media account are hiding something", models.CategoryOpinions),
	statement(4, "People who back into parking spots are trying too hard", models.CategoryOpinions),
	statement(5, "I've rewatched the same show 5+ times instead of starting something new", models.CategoryLifestyle),
	statement(6, "Watching someone's story without following them is research, not stalking", models.CategorySocial),
	statement(7, "I've rehearsed a conversation in the shower", models.CategoryLifestyle),
	statement(8, "Leaving someone on 'delivered' is a power move", models.CategorySocial),
	statement(9, "I've judged someone's bookshelf", models.CategoryOpinions),
	statement(10, "People who say 'let's hang soon!' never mean it", models.CategorySocial),
	statement(11, "I've pretended my phone died to avoid a situation", models.CategoryLifestyle),
	statement(12, "Eating alone in public is underrated", models.CategoryOpinions),
	statement(13, "I've bought something just because the packaging was cute", models.CategoryLifestyle),
	statement(14, "Main character syndrome is fine actually", models.CategoryOpinions),
	statement(15, "Read receipts should be illegal", models.CategorySocial),
	statement(16, "I think about texts I sent 3 years ago", models.CategoryLifestyle),
	statement(17, "I've deleted an app just to avoid someone", models.CategorySocial),
	statement(18, "Watching TV on 1.5x speed is valid", models.CategoryOpinions),
	statement(19, "I've said 'let's do this again' knowing I never would", models.CategoryLifestyle),
	statement(20, "Standing at concerts is overrated", models.CategoryOpinions),
	statement(21, "Dating apps have actually improved dating", models.CategoryOpinions),
	statement(22, "It's okay to end things over text", models.CategorySocial),
	statement(23, "Going to bed before 11pm is peak adulthood", models.CategoryLifestyle),
	statement(24, "Voice notes over 30 seconds are inconsiderate", models.CategorySocial),
	statement(25, "Brunch is just expensive breakfast with permission to drink", models.CategoryOpinions),
	statement(26, "Therapy speak has ruined normal conversations", models.CategorySocial),
	statement(27, "You should be embarrassed if you can't cook by 25", models.CategoryOpinions),
	statement(28, "Remote work is making us worse at being people", models.CategoryOpinions),
	statement(29, "Being single in your late 20s is underrated", models.CategoryLifestyle),
	statement(30, "LinkedIn is just Facebook for people in denial", models.CategorySocial),
}

// Reference vectors are (progressive, artistic, social)
var defaultNeighborhoods = []models.NeighborhoodProfile{
	{
		ID:          "williamsburg",
		Name:        "Williamsburg",
		Description: "You're a creative soul who values authenticity and self-expression. You appreciate both the old and new, mixing vintage finds with cutting-edge trends.",
		Traits:      []string{"Creative", "Trendy", "Independent", "Artistic"},
		Vibe:        "Artisanal coffee, vinyl records, and rooftop views",
		Reference:   models.TraitVector{Progressive: 70, Artistic: 85, Social: 65},
	},
	{
		ID:          "upper-east-side",
		Name:        "Upper East Side",
		Description: "You appreciate tradition, refinement, and the finer things in life. You value stability and have high standards for quality.",
		Traits:      []string{"Traditional", "Refined", "Ambitious", "Cultured"},
		Vibe:        "Museum Mile, classic architecture, and elegant brunches",
		Reference:   models.TraitVector{Progressive: 30, Artistic: 50, Social: 60},
	},
	{
		ID:          "east-village",
		Name:        "East Village",
		Description: "You're a free spirit who values individuality and isn't afraid to challenge conventions. Night owl energy with a rebellious streak.",
		Traits:      []string{"Rebellious", "Artistic", "Night Owl", "Eclectic"},
		Vibe:        "Live music, dive bars, and late-night pizza",
		Reference:   models.TraitVector{Progressive: 80, Artistic: 90, Social: 80},
	},
	{
		ID:          "park-slope",
		Name:        "Park Slope",
		Description: "You value community, family, and quality of life. Progressive values meet practical living in your world.",
		Traits:      []string{"Family-oriented", "Progressive", "Foodie", "Community-minded"},
		Vibe:        "Farmers markets, stroller-friendly streets, and co-ops",
		Reference:   models.TraitVector{Progressive: 75, Artistic: 55, Social: 50},
	},
	{
		ID:          "soho",
		Name:        "SoHo",
		Description: "You have an eye for style and appreciate luxury and aesthetics. You're drawn to beautiful things and curated experiences.",
		Traits:      []string{"Fashion-forward", "Luxury-loving", "Aesthetic", "Trendsetting"},
		Vibe:        "Designer boutiques, art galleries, and cobblestone streets",
		Reference:   models.TraitVector{Progressive: 50, Artistic: 80, Social: 70},
	},
	{
		ID:          "astoria",
		Name:        "Astoria",
		Description: "You're practical, community-minded, and appreciate diversity. You value genuine connections and good food over flash.",
		Traits:      []string{"Diverse", "Community-minded", "Practical", "Food-loving"},
		Vibe:        "International cuisines, beer gardens, and neighborhood pride",
		Reference:   models.TraitVector{Progressive: 60, Artistic: 45, Social: 75},
	},
	{
		ID:          "bushwick",
		Name:        "Bushwick",
		Description: "You're avant-garde and resourceful, making something from nothing. DIY spirit meets creative ambition.",
		Traits:      []string{"Avant-garde", "Budget-conscious", "DIY", "Experimental"},
		Vibe:        "Street art, warehouse parties, and creative collectives",
		Reference:   models.TraitVector{Progressive: 85, Artistic: 95, Social: 60},
	},
	{
		ID:          "financial-district",
		Name:        "Financial District",
		Description: "You're driven, efficient, and value your time. Career-focused with an appreciation for urban convenience.",
		Traits:      []string{"Career-driven", "Efficient", "Urban", "Ambitious"},
		Vibe:        "Skyscrapers, power lunches, and waterfront views",
		Reference:   models.TraitVector{Progressive: 35, Artistic: 25, Social: 55},
	},
}
