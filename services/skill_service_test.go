package services

import (
	"testing"

	"skillswap-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSkillService(t *testing.T) (SkillService, *fakeSkillRepo, *fakeUserSkillRepo) {
	t.Helper()
	skills := newFakeSkillRepo()
	userSkills := newFakeUserSkillRepo(skills)
	return NewSkillService(skills, userSkills), skills, userSkills
}

func TestAddUserSkillCreatesUnknownSkill(t *testing.T) {
	service, skills, _ := newSkillService(t)

	view, err := service.AddUserSkill(1, models.CreateUserSkillRequest{
		SkillName:        "Rust",
		SkillType:        models.SkillOffered,
		ProficiencyLevel: "advanced",
	})
	require.NoError(t, err)

	// First mention creates the catalog entry under the catch-all category
	// and the association starts in moderation.
	assert.Equal(t, "Rust", view.SkillName)
	assert.Equal(t, models.CategoryOther, view.SkillCategory)
	assert.Equal(t, models.StatusPending, view.Status)
	assert.Equal(t, "advanced", view.ProficiencyLevel)

	skill, err := skills.GetByName("Rust")
	require.NoError(t, err)
	assert.Equal(t, models.CategoryOther, skill.Category)
}

func TestAddUserSkillReusesExistingSkill(t *testing.T) {
	service, skills, _ := newSkillService(t)

	existing := &models.Skill{Name: "Photoshop", Category: models.CategoryDesign}
	require.NoError(t, skills.Create(existing))

	view, err := service.AddUserSkill(1, models.CreateUserSkillRequest{
		SkillName: "Photoshop",
		SkillType: models.SkillWanted,
	})
	require.NoError(t, err)
	assert.Equal(t, existing.ID, view.SkillID)
	assert.Equal(t, models.CategoryDesign, view.SkillCategory)
}

func TestAddUserSkillSurvivesConcurrentSkillCreate(t *testing.T) {
	service, skills, _ := newSkillService(t)
	skills.raceOnCreate = true

	// The insert loses the race but the retried lookup finds the row the
	// other writer planted.
	view, err := service.AddUserSkill(1, models.CreateUserSkillRequest{
		SkillName: "Rust",
		SkillType: models.SkillOffered,
	})
	require.NoError(t, err)
	assert.Equal(t, "Rust", view.SkillName)
	assert.Equal(t, models.CategoryOther, view.SkillCategory)

	skill, err := skills.GetByName("Rust")
	require.NoError(t, err)
	assert.Equal(t, skill.ID, view.SkillID)
}

func TestAddUserSkillRejectsDuplicateListing(t *testing.T) {
	service, _, _ := newSkillService(t)

	_, err := service.AddUserSkill(1, models.CreateUserSkillRequest{SkillName: "Go", SkillType: models.SkillOffered})
	require.NoError(t, err)

	_, err = service.AddUserSkill(1, models.CreateUserSkillRequest{SkillName: "Go", SkillType: models.SkillOffered})
	assert.ErrorIs(t, err, models.ErrDuplicate)

	// Same skill with the other type is a separate listing.
	_, err = service.AddUserSkill(1, models.CreateUserSkillRequest{SkillName: "Go", SkillType: models.SkillWanted})
	assert.NoError(t, err)

	// As is the same listing by another user.
	_, err = service.AddUserSkill(2, models.CreateUserSkillRequest{SkillName: "Go", SkillType: models.SkillOffered})
	assert.NoError(t, err)
}

func TestListUserSkillsModerationVisibility(t *testing.T) {
	service, _, userSkills := newSkillService(t)

	approved, err := service.AddUserSkill(1, models.CreateUserSkillRequest{SkillName: "Go", SkillType: models.SkillOffered})
	require.NoError(t, err)
	_, err = service.AddUserSkill(1, models.CreateUserSkillRequest{SkillName: "Rust", SkillType: models.SkillOffered})
	require.NoError(t, err)
	_, err = service.AddUserSkill(1, models.CreateUserSkillRequest{SkillName: "Figma", SkillType: models.SkillWanted})
	require.NoError(t, err)

	stored, err := userSkills.GetByID(approved.ID)
	require.NoError(t, err)
	stored.Status = models.StatusApproved
	require.NoError(t, userSkills.Update(stored))

	visible, err := service.ListUserSkills(1, false)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, "Go", visible[0].SkillName)

	all, err := service.ListUserSkills(1, true)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	offered, err := service.ListUserSkillsByType(1, false, models.SkillOffered)
	require.NoError(t, err)
	assert.Len(t, offered, 1)

	wantedAdmin, err := service.ListUserSkillsByType(1, true, models.SkillWanted)
	require.NoError(t, err)
	assert.Len(t, wantedAdmin, 1)
	assert.Equal(t, "Figma", wantedAdmin[0].SkillName)
}

func TestDeleteUserSkillOwnership(t *testing.T) {
	service, _, _ := newSkillService(t)

	view, err := service.AddUserSkill(1, models.CreateUserSkillRequest{SkillName: "Go", SkillType: models.SkillOffered})
	require.NoError(t, err)

	// Someone else's listing and a missing id look the same.
	assert.ErrorIs(t, service.DeleteUserSkill(2, view.ID), models.ErrNotFound)
	assert.ErrorIs(t, service.DeleteUserSkill(1, 999), models.ErrNotFound)

	require.NoError(t, service.DeleteUserSkill(1, view.ID))
	assert.ErrorIs(t, service.DeleteUserSkill(1, view.ID), models.ErrNotFound)
}

func TestListSkillsSortedByName(t *testing.T) {
	service, skills, _ := newSkillService(t)

	for _, name := range []string{"Welding", "Baking", "Go"} {
		require.NoError(t, skills.Create(&models.Skill{Name: name, Category: models.CategoryOther}))
	}

	all, err := service.ListSkills()
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Baking", all[0].Name)
	assert.Equal(t, "Go", all[1].Name)
	assert.Equal(t, "Welding", all[2].Name)
}
