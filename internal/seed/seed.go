package seed

import (
	"context"
	"errors"
	"time"

	"portfolio_backend/internal/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ErrDataExists is returned by Import when any collection already holds
// records and force was not given.
var ErrDataExists = errors.New("collections already contain data, use --force to overwrite")

var collections = []interface{}{
	&models.User{},
	&models.Project{},
	&models.Experience{},
	&models.Education{},
	&models.Achievement{},
	&models.Review{},
}

// Import wipes every collection and loads the starter content. The
// admin user is created separately by the caller so password hashing
// stays in the auth service.
func Import(ctx context.Context, db *gorm.DB, force bool) error {
	if !force {
		empty, err := isEmpty(ctx, db)
		if err != nil {
			return err
		}
		if !empty {
			return ErrDataExists
		}
	}

	if err := wipe(ctx, db); err != nil {
		return err
	}

	data := starterData()
	if err := db.WithContext(ctx).Create(&data.Projects).Error; err != nil {
		return err
	}
	if err := db.WithContext(ctx).Create(&data.Experience).Error; err != nil {
		return err
	}
	if err := db.WithContext(ctx).Create(&data.Education).Error; err != nil {
		return err
	}
	if err := db.WithContext(ctx).Create(&data.Achievements).Error; err != nil {
		return err
	}
	if err := db.WithContext(ctx).Create(&data.Reviews).Error; err != nil {
		return err
	}

	return nil
}

// Destroy wipes every collection, admin included.
func Destroy(ctx context.Context, db *gorm.DB) error {
	return wipe(ctx, db)
}

func isEmpty(ctx context.Context, db *gorm.DB) (bool, error) {
	for _, model := range collections {
		var count int64
		if err := db.WithContext(ctx).Model(model).Count(&count).Error; err != nil {
			return false, err
		}
		if count > 0 {
			return false, nil
		}
	}
	return true, nil
}

func wipe(ctx context.Context, db *gorm.DB) error {
	for _, model := range collections {
		if err := db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
			return err
		}
	}
	return nil
}

// Data groups the starter records.
type Data struct {
	Projects     []models.Project
	Experience   []models.Experience
	Education    []models.Education
	Achievements []models.Achievement
	Reviews      []models.Review
}

func starterData() Data {
	awardDate := time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC)

	return Data{
		Projects: []models.Project{
			{
				Title:       "E-Commerce Platform",
				Description: "A full-stack e-commerce solution with payment integration.",
				Image:       "https://via.placeholder.com/600x400",
				Tags:        datatypes.NewJSONSlice([]string{"React", "Go", "Postgres", "Stripe"}),
				LiveLink:    "https://example.com",
				Featured:    true,
			},
			{
				Title:       "Portfolio Website",
				Description: "Interactive personal portfolio with admin dashboard.",
				Image:       "https://via.placeholder.com/600x400",
				Tags:        datatypes.NewJSONSlice([]string{"React", "Vite", "CSS3"}),
				LiveLink:    "https://example.com",
				Featured:    true,
			},
		},
		Experience: []models.Experience{
			{
				Company:     "Tech Solutions Inc.",
				Role:        "Senior Frontend Developer",
				Duration:    "2022 - Present",
				Description: "Leading the frontend team and architecting scalable UI solutions.",
				Order:       1,
			},
			{
				Company:     "Digital Agency",
				Role:        "Web Developer",
				Duration:    "2020 - 2022",
				Description: "Developed responsive websites for various clients.",
				Order:       2,
			},
		},
		Education: []models.Education{
			{
				Institution: "University of Technology",
				Degree:      "B.S. Computer Science",
				Duration:    "2016 - 2020",
				Description: "Graduated with honors. Specialized in Software Engineering.",
				Order:       1,
			},
		},
		Achievements: []models.Achievement{
			{
				Title:       "Best Developer Award",
				Description: "Recognized for outstanding contribution to open source.",
				Date:        &awardDate,
				Icon:        "trophy",
			},
		},
		Reviews: []models.Review{
			{
				ClientName: "John Doe",
				Company:    "Startup Inc.",
				Review:     "Amazing work! Delivered on time and exceeded expectations.",
				Rating:     5,
			},
		},
	}
}
