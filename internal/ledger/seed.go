package ledger

import (
	"github.com/shopspring/decimal"

	"gitlab.com/donate4khmer/donationflow/internal/models"
)

// SeedProjects returns the built-in fundraising projects in display order.
// The ledger resets to this list on every session; totals are never
// persisted.
func SeedProjects() []models.Project {
	return []models.Project{
		{
			ID:            "medical-care",
			Title:         "Kantha Bopha Hospital Fund",
			Description:   "Supports free medical treatment for children and mothers at the Kantha Bopha children's hospitals.",
			CurrentAmount: decimal.NewFromInt(12500),
			GoalAmount:    decimal.NewFromInt(20000),
			Image:         "https://images.unsplash.com/photo-1576091160550-fd42a8b007fb",
			FallbackImage: "https://placehold.co/400x300/A7F3D0/047857?text=Medical+Care",
		},
		{
			ID:            "education",
			Title:         "Rising Strength Education Fund",
			Description:   "Backs scholarships and school supplies so students from low-income families can stay in class.",
			CurrentAmount: decimal.NewFromInt(8500),
			GoalAmount:    decimal.NewFromInt(15000),
			Image:         "https://images.unsplash.com/photo-1546410531-bb4486241bba",
			FallbackImage: "https://placehold.co/400x300/93C5FD/1D4ED8?text=Education",
		},
		{
			ID:            "community-development",
			Title:         "National Children's Hospital Fund",
			Description:   "Helps the national children's hospital expand its capacity and raise the quality of care.",
			CurrentAmount: decimal.NewFromInt(18000),
			GoalAmount:    decimal.NewFromInt(25000),
			Image:         "https://images.unsplash.com/photo-1582213782179-e0d53f9ef1d2",
			FallbackImage: "https://placehold.co/400x300/FDBA74/C2410C?text=Community+Dev",
		},
		{
			ID:            "animal-welfare",
			Title:         "Animal Welfare Fund",
			Description:   "Supports shelters caring for abandoned and mistreated animals across Cambodia.",
			CurrentAmount: decimal.NewFromInt(4200),
			GoalAmount:    decimal.NewFromInt(7000),
			Image:         "https://images.unsplash.com/photo-1587300003388-59208cc9ff0e",
			FallbackImage: "https://placehold.co/400x300/D8B4FE/7E22CE?text=Animal+Welfare",
		},
		{
			ID:            "clean-water",
			Title:         "Student Support Fund",
			Description:   "Provides clean water, meals and study materials for students in remote villages.",
			CurrentAmount: decimal.NewFromInt(9800),
			GoalAmount:    decimal.NewFromInt(12000),
			Image:         "https://images.unsplash.com/photo-1508210339908-410a803f2604",
			FallbackImage: "https://placehold.co/400x300/FECACA/EF4444?text=Clean+Water",
		},
		{
			ID:            "disaster-relief",
			Title:         "Orphan Children Fund",
			Description:   "Delivers food, clothing, schooling and safe shelter for orphaned children.",
			CurrentAmount: decimal.NewFromInt(25000),
			GoalAmount:    decimal.NewFromInt(30000),
			Image:         "/img/10000.jpg",
			FallbackImage: "https://placehold.co/400x300/A8A29E/44403C?text=Disaster+Relief",
		},
	}
}
