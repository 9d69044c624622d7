package service

import (
	"FoundLink/internal/model"
	"context"
	"time"
)

// SeedDemo создаёт несколько демонстрационных заявок через обычный Create,
// так что подбор совпадений для них отрабатывает как для живых данных.
// Включается флагом -seed / переменной SEED_DEMO.
func (s *ItemService) SeedDemo(ctx context.Context) error {
	now := time.Now().UTC()
	reward100 := 100.0
	reward50 := 50.0
	dateLost2d := now.Add(-2 * 24 * time.Hour)
	dateFound1d := now.Add(-1 * 24 * time.Hour)
	dateLost3d := now.Add(-3 * 24 * time.Hour)

	demo := []model.Item{
		{
			Type:        model.TypeLost,
			Title:       "iPhone 14 Pro in Blue Case",
			Description: "Lost my iPhone 14 Pro in a blue protective case. Has a crack on the screen protector.",
			Category:    model.CategoryElectronics,
			Location: model.Location{
				Address:  "123 Main St",
				City:     "San Francisco",
				State:    "CA",
				ZipCode:  "94105",
				Landmark: "Near Starbucks",
			},
			Contact: model.ContactInfo{
				Name:             "John Doe",
				Email:            "john.doe@email.com",
				Phone:            "+1-555-0123",
				PreferredContact: "email",
			},
			Tags:     model.StringList{"phone", "apple", "blue", "cracked"},
			DateLost: &dateLost2d,
			Reward:   &reward100,
		},
		{
			Type:        model.TypeFound,
			Title:       "Black Leather Wallet",
			Description: "Found a black leather wallet with multiple cards inside. No cash visible.",
			Category:    model.CategoryBags,
			Location: model.Location{
				Address:  "456 Market St",
				City:     "San Francisco",
				State:    "CA",
				ZipCode:  "94102",
				Landmark: "Bus stop on Market Street",
			},
			CurrentLocation: model.Location{
				Address:  "SFPD Station",
				City:     "San Francisco",
				State:    "CA",
				Landmark: "Police station front desk",
			},
			Contact: model.ContactInfo{
				Name:             "Jane Smith",
				Email:            "jane.smith@email.com",
				PreferredContact: "email",
			},
			Tags:              model.StringList{"wallet", "black", "leather", "cards"},
			DateFound:         &dateFound1d,
			HandedToAuthority: true,
			AuthorityContact:  "SFPD (415) 553-0123",
		},
		{
			Type:        model.TypeLost,
			Title:       "Silver Car Keys with Honda Keychain",
			Description: "Lost my car keys with a Honda keychain and a small flashlight attachment.",
			Category:    model.CategoryKeys,
			Location: model.Location{
				Address:  "789 Golden Gate Park",
				City:     "San Francisco",
				State:    "CA",
				Landmark: "Near the playground",
			},
			Contact: model.ContactInfo{
				Name:             "Mike Johnson",
				Email:            "mike.j@email.com",
				Phone:            "+1-555-0456",
				PreferredContact: "phone",
			},
			Tags:     model.StringList{"keys", "honda", "silver", "flashlight"},
			DateLost: &dateLost3d,
			Reward:   &reward50,
		},
	}

	for i := range demo {
		if _, err := s.Create(ctx, &demo[i]); err != nil {
			return err
		}
	}
	return nil
}
