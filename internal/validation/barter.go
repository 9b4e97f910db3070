package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"barterly/internal/models"
)

// ValidateBarterInput checks the user-supplied fields of a new barter.
// Skill existence is checked against the catalog by the service layer.
func ValidateBarterInput(title, description string, mode models.BarterMode, teachSkillID, learnSkillID uint, rating int) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return fmt.Errorf("title is required")
	}
	// Limits count characters, not bytes, so multibyte titles fit.
	if utf8.RuneCountInString(title) > models.TitleMaxLen {
		return fmt.Errorf("title must not exceed %d characters", models.TitleMaxLen)
	}

	description = strings.TrimSpace(description)
	if description == "" {
		return fmt.Errorf("description is required")
	}
	if utf8.RuneCountInString(description) > models.DescriptionMaxLen {
		return fmt.Errorf("description must not exceed %d characters", models.DescriptionMaxLen)
	}

	if !mode.Valid() {
		return fmt.Errorf("mode must be %q or %q", models.BarterModeOnline, models.BarterModeOffline)
	}

	if teachSkillID == 0 {
		return fmt.Errorf("a skill to teach is required")
	}
	if learnSkillID == 0 {
		return fmt.Errorf("a skill to learn is required")
	}
	if teachSkillID == learnSkillID {
		return fmt.Errorf("the skill you teach must differ from the skill you want to learn")
	}

	return ValidateSkillRating(rating)
}

// ValidateSkillRating checks a 1-5 self-assessment.
func ValidateSkillRating(rating int) error {
	if rating < 1 || rating > 5 {
		return fmt.Errorf("skill rating must be between 1 and 5")
	}
	return nil
}

// ValidateSkillSelection checks an onboarding skill pick.
func ValidateSkillSelection(skillIDs []uint) error {
	if len(skillIDs) == 0 {
		return fmt.Errorf("select at least one skill")
	}
	if len(skillIDs) > models.MaxUserSkills {
		return fmt.Errorf("select at most %d skills", models.MaxUserSkills)
	}
	seen := make(map[uint]struct{}, len(skillIDs))
	for _, id := range skillIDs {
		if id == 0 {
			return fmt.Errorf("invalid skill selection")
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("duplicate skill selection")
		}
		seen[id] = struct{}{}
	}
	return nil
}
