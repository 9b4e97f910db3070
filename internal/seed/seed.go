// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"barterly/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumBarters  int
	ShouldClean bool
}

var barterTitleVerbs = []string{
	"Teaching", "Offering", "Sharing", "Trading",
}

// DemoPassword is the login password of every seeded account.
const DemoPassword = "SecurePass12!@"

// Seed populates the database with demo data
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("Seeding %d users and %d barters...", opts.NumUsers, opts.NumBarters)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("Warning: could not clear all existing data, continuing anyway")
		}
	}

	if err := Taxonomy(db); err != nil {
		return fmt.Errorf("taxonomy seeding failed: %w", err)
	}

	var skills []models.Skill
	if err := db.Find(&skills).Error; err != nil {
		return err
	}
	if len(skills) < 2 {
		return fmt.Errorf("skill catalog is empty after taxonomy seeding")
	}

	gofakeit.Seed(time.Now().UnixNano())
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	// One hash shared by every demo account keeps seeding fast.
	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.MinCost)
	if err != nil {
		return err
	}

	users, err := seedUsers(db, r, skills, opts.NumUsers, string(hash))
	if err != nil {
		return fmt.Errorf("user seeding failed: %w", err)
	}

	barters, err := seedBarters(db, r, users, skills, opts.NumBarters)
	if err != nil {
		return fmt.Errorf("barter seeding failed: %w", err)
	}

	if err := seedActivity(db, r, users, barters); err != nil {
		return fmt.Errorf("activity seeding failed: %w", err)
	}

	log.Printf("Seeding complete: %d users, %d barters", len(users), len(barters))
	return nil
}

func seedUsers(db *gorm.DB, r *rand.Rand, skills []models.Skill, count int, passwordHash string) ([]models.User, error) {
	users := make([]models.User, 0, count)
	for i := 0; i < count; i++ {
		username := fmt.Sprintf("%s_%s%d",
			strings.ToLower(gofakeit.FirstName()),
			strings.ToLower(gofakeit.LastName()),
			r.Intn(1000))

		user := models.User{
			Username: username,
			Email:    fmt.Sprintf("%s@example.com", username),
			Password: passwordHash,
			Bio:      gofakeit.Sentence(8),
		}
		if err := db.Create(&user).Error; err != nil {
			return nil, err
		}

		// Most users finish onboarding with 1-3 skills.
		if r.Intn(10) < 8 {
			picked := r.Perm(len(skills))[:1+r.Intn(models.MaxUserSkills)]
			for _, idx := range picked {
				userSkill := models.UserSkill{UserID: user.ID, SkillID: skills[idx].ID}
				if err := db.Create(&userSkill).Error; err != nil {
					return nil, err
				}
			}
			user.SkillsSelected = true
			if err := db.Model(&user).Update("skills_selected", true).Error; err != nil {
				return nil, err
			}
		}

		users = append(users, user)
	}
	return users, nil
}

func seedBarters(db *gorm.DB, r *rand.Rand, users []models.User, skills []models.Skill, count int) ([]models.Barter, error) {
	barters := make([]models.Barter, 0, count)
	for i := 0; i < count; i++ {
		owner := users[r.Intn(len(users))]
		teach := skills[r.Intn(len(skills))]
		learn := skills[r.Intn(len(skills))]
		for learn.ID == teach.ID {
			learn = skills[r.Intn(len(skills))]
		}

		mode := models.BarterModeOnline
		if r.Intn(3) == 0 {
			mode = models.BarterModeOffline
		}

		barter := models.Barter{
			OwnerID:      owner.ID,
			Title:        fmt.Sprintf("%s %s for %s", barterTitleVerbs[r.Intn(len(barterTitleVerbs))], teach.Name, learn.Name),
			Description:  gofakeit.Sentence(10),
			Mode:         mode,
			TeachSkillID: teach.ID,
			LearnSkillID: learn.ID,
			SkillRating:  1 + r.Intn(5),
			// Spread across 40 days so some postings are already expired.
			CreatedAt: time.Now().Add(-time.Duration(r.Intn(40*24)) * time.Hour),
		}
		if err := db.Create(&barter).Error; err != nil {
			return nil, err
		}
		barters = append(barters, barter)
	}
	return barters, nil
}

// seedActivity adds bookmarks and exchange requests between the seeded users,
// respecting the no-self-request and one-active-request rules.
func seedActivity(db *gorm.DB, r *rand.Rand, users []models.User, barters []models.Barter) error {
	for _, barter := range barters {
		for tries := 0; tries < 2; tries++ {
			user := users[r.Intn(len(users))]
			if user.ID == barter.OwnerID {
				continue
			}

			if r.Intn(2) == 0 {
				bookmark := models.Bookmark{UserID: user.ID, BarterID: barter.ID}
				if err := db.Where(&bookmark).FirstOrCreate(&bookmark).Error; err != nil {
					return err
				}
			}

			if r.Intn(3) == 0 {
				var existing int64
				db.Model(&models.BarterRequest{}).
					Where("barter_id = ? AND requester_id = ? AND status IN ?",
						barter.ID, user.ID,
						[]models.RequestStatus{models.RequestStatusPending, models.RequestStatusAccepted}).
					Count(&existing)
				if existing > 0 {
					continue
				}

				statuses := []models.RequestStatus{
					models.RequestStatusPending,
					models.RequestStatusPending,
					models.RequestStatusAccepted,
					models.RequestStatusDeclined,
				}
				request := models.BarterRequest{
					BarterID:    barter.ID,
					RequesterID: user.ID,
					OwnerID:     barter.OwnerID,
					Status:      statuses[r.Intn(len(statuses))],
				}
				if err := db.Create(&request).Error; err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// clearData removes mutable rows; the skill catalog is left in place.
func clearData(db *gorm.DB) error {
	tables := []string{"barter_requests", "bookmarks", "user_skills", "barters", "users"}
	for _, table := range tables {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			return err
		}
	}
	return nil
}
