package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/SandeepaMuthukumari/Recipe-Sharing-Platform/internal/crypto"
	"github.com/SandeepaMuthukumari/Recipe-Sharing-Platform/internal/model"
)

// seedPassword is the credential for both fixture accounts.
const seedPassword = "password123"

func seedUsers() ([]model.User, error) {
	hash, err := crypto.HashPassword(seedPassword)
	if err != nil {
		return nil, err
	}

	return []model.User{
		{
			ID:        "user1",
			Username:  "ChefJohn",
			Email:     "john@example.com",
			AuthHash:  hash,
			CreatedAt: time.Date(2023, 1, 10, 9, 0, 0, 0, time.UTC),
		},
		{
			ID:        "user2",
			Username:  "BakingQueen",
			Email:     "sarah@example.com",
			AuthHash:  hash,
			CreatedAt: time.Date(2023, 2, 14, 12, 0, 0, 0, time.UTC),
		},
	}, nil
}

func seedRecipes() []model.Recipe {
	return []model.Recipe{
		{
			ID:          "recipe1",
			Title:       "Creamy Garlic Parmesan Pasta",
			Description: "A quick and delicious pasta dish with a creamy garlic parmesan sauce.",
			Ingredients: []string{
				"8 oz fettuccine pasta",
				"2 tbsp butter",
				"4 cloves garlic, minced",
				"1 cup heavy cream",
				"1 cup grated parmesan cheese",
				"Salt and pepper to taste",
				"Fresh parsley for garnish",
			},
			Instructions: []string{
				"Cook pasta according to package instructions. Drain and set aside.",
				"In a large skillet, melt butter over medium heat. Add minced garlic and saute for 1-2 minutes until fragrant.",
				"Pour in heavy cream and bring to a simmer. Cook for 2-3 minutes until slightly thickened.",
				"Stir in parmesan cheese until melted and smooth.",
				"Add cooked pasta to the sauce and toss until well coated.",
				"Season with salt and pepper to taste.",
				"Garnish with fresh parsley before serving.",
			},
			CookingTime: 20,
			Servings:    4,
			Difficulty:  model.DifficultyEasy,
			Image:       "https://images.unsplash.com/photo-1645112411341-6c4fd023714a",
			Rating:      4.8,
			Tags:        []string{"pasta", "italian", "quick", "vegetarian"},
			UserID:      "user1",
			CreatedAt:   time.Date(2023, 1, 15, 10, 30, 0, 0, time.UTC),
		},
		{
			ID:          "recipe2",
			Title:       "Chocolate Chip Cookies",
			Description: "Classic chocolate chip cookies that are crispy on the outside and chewy on the inside.",
			Ingredients: []string{
				"1 cup unsalted butter, softened",
				"1 cup white sugar",
				"1 cup packed brown sugar",
				"2 eggs",
				"2 tsp vanilla extract",
				"3 cups all-purpose flour",
				"1 tsp baking soda",
				"2 tsp hot water",
				"1/2 tsp salt",
				"2 cups semisweet chocolate chips",
			},
			Instructions: []string{
				"Preheat oven to 350F (175C).",
				"Cream together butter and sugars until smooth.",
				"Beat in eggs one at a time, then stir in vanilla.",
				"Dissolve baking soda in hot water. Add to batter along with salt.",
				"Stir in flour and chocolate chips.",
				"Drop by large spoonfuls onto ungreased pans.",
				"Bake for about 10 minutes or until edges are nicely browned.",
			},
			CookingTime: 25,
			Servings:    24,
			Difficulty:  model.DifficultyEasy,
			Image:       "https://images.unsplash.com/photo-1499636136210-6f4ee915583e",
			Rating:      4.9,
			Tags:        []string{"dessert", "cookies", "baking"},
			UserID:      "user2",
			CreatedAt:   time.Date(2023, 2, 20, 15, 45, 0, 0, time.UTC),
		},
		{
			ID:          "recipe3",
			Title:       "Spicy Thai Red Curry",
			Description: "A flavorful and aromatic Thai curry with vegetables and your choice of protein.",
			Ingredients: []string{
				"2 tbsp vegetable oil",
				"1 onion, thinly sliced",
				"3 tbsp Thai red curry paste",
				"1 can (14 oz) coconut milk",
				"1 lb chicken or tofu",
				"2 bell peppers, sliced",
				"1 cup snap peas",
				"1 tbsp fish sauce",
				"1 tbsp brown sugar",
				"Fresh basil leaves",
				"Lime wedges for serving",
				"Steamed rice for serving",
			},
			Instructions: []string{
				"Heat oil in a large pan over medium heat. Add onion and saute until softened.",
				"Add curry paste and cook for 1 minute until fragrant.",
				"Pour in coconut milk and bring to a simmer.",
				"Add chicken or tofu and cook for 5-7 minutes.",
				"Add bell peppers and snap peas, simmer for 3-4 minutes until vegetables are tender-crisp.",
				"Season with fish sauce and brown sugar. Adjust to taste.",
				"Stir in fresh basil leaves before serving.",
				"Serve hot over steamed rice with lime wedges on the side.",
			},
			CookingTime: 30,
			Servings:    4,
			Difficulty:  model.DifficultyMedium,
			Image:       "https://images.unsplash.com/photo-1455619452474-d2be8b1e70cd",
			Rating:      4.7,
			Tags:        []string{"thai", "spicy", "curry", "dinner"},
			UserID:      "user1",
			CreatedAt:   time.Date(2023, 3, 5, 18, 20, 0, 0, time.UTC),
		},
	}
}

// Seed writes fixture data into any collection that has never been
// written: two users, three recipes and an empty favorites map.
// Collections that already exist are left untouched.
func Seed(ctx context.Context, s Store) error {
	if missing, err := collectionMissing(ctx, s, CollectionUsers); err != nil {
		return err
	} else if missing {
		users, err := seedUsers()
		if err != nil {
			return fmt.Errorf("seeding users: %w", err)
		}
		if err := writeJSON(ctx, s, CollectionUsers, users); err != nil {
			return err
		}
	}

	if missing, err := collectionMissing(ctx, s, CollectionRecipes); err != nil {
		return err
	} else if missing {
		if err := writeJSON(ctx, s, CollectionRecipes, seedRecipes()); err != nil {
			return err
		}
	}

	if missing, err := collectionMissing(ctx, s, CollectionFavorites); err != nil {
		return err
	} else if missing {
		if err := writeJSON(ctx, s, CollectionFavorites, map[string][]string{}); err != nil {
			return err
		}
	}

	return nil
}

func collectionMissing(ctx context.Context, s Store, name string) (bool, error) {
	_, err := s.Read(ctx, name)
	if errors.Is(err, ErrCollectionMissing) {
		return true, nil
	}
	return false, err
}

func writeJSON(ctx context.Context, s Store, name string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", name, err)
	}
	return s.Write(ctx, name, data)
}
