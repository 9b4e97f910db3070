package repository

import (
	"fmt"
	"testing"
	"time"

	"barterly/internal/models"

	"github.com/stretchr/testify/require"
)

// newTestUser inserts a user with a unique username/email.
func newTestUser(t *testing.T, prefix string) *models.User {
	t.Helper()
	ts := time.Now().UnixNano()
	u := &models.User{
		Username: fmt.Sprintf("%s_%d", prefix, ts),
		Email:    fmt.Sprintf("%s_%d@example.com", prefix, ts),
		Password: "hashed",
	}
	require.NoError(t, testDB.Create(u).Error)
	return u
}

// newTestTaxonomy inserts a category/subcategory pair and two skills in it.
func newTestTaxonomy(t *testing.T, categoryName string) (models.Skill, models.Skill) {
	t.Helper()
	cat := models.Category{Name: fmt.Sprintf("%s_%d", categoryName, time.Now().UnixNano())}
	require.NoError(t, testDB.Create(&cat).Error)
	sub := models.Subcategory{Name: categoryName + " General", CategoryID: cat.ID}
	require.NoError(t, testDB.Create(&sub).Error)

	teach := models.Skill{Name: categoryName + " Teach", CategoryID: cat.ID, SubcategoryID: sub.ID}
	learn := models.Skill{Name: categoryName + " Learn", CategoryID: cat.ID, SubcategoryID: sub.ID}
	require.NoError(t, testDB.Create(&teach).Error)
	require.NoError(t, testDB.Create(&learn).Error)
	return teach, learn
}

// newTestBarter inserts a barter owned by owner exchanging the two skills.
func newTestBarter(t *testing.T, owner *models.User, teach, learn models.Skill) *models.Barter {
	t.Helper()
	b := &models.Barter{
		OwnerID:      owner.ID,
		Title:        "Test exchange",
		Description:  "Swap skills",
		Mode:         models.BarterModeOnline,
		TeachSkillID: teach.ID,
		LearnSkillID: learn.ID,
		SkillRating:  4,
	}
	require.NoError(t, testDB.Create(b).Error)
	return b
}
