package services

import (
	"skillswap-api/models"
	"skillswap-api/repositories"
)

// buildProfile flattens a user's approved skill names into the profile shape
// shared by auth and user responses.
func buildProfile(userSkillRepo repositories.UserSkillRepository, user *models.User) (*models.Profile, error) {
	offered, err := userSkillRepo.ApprovedSkillNames(user.ID, models.SkillOffered)
	if err != nil {
		return nil, err
	}

	wanted, err := userSkillRepo.ApprovedSkillNames(user.ID, models.SkillWanted)
	if err != nil {
		return nil, err
	}

	if offered == nil {
		offered = []string{}
	}
	if wanted == nil {
		wanted = []string{}
	}

	return &models.Profile{
		User:          *user,
		FullName:      user.FullName(),
		SkillsOffered: offered,
		SkillsWanted:  wanted,
	}, nil
}
