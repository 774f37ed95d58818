package services_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/tupyy/achievement-tracker/internal/models"
	"github.com/tupyy/achievement-tracker/internal/services"
)

var _ = Describe("Merge", func() {
	// Given one definition and no player state
	// When we merge
	// Then the achievement is locked and shows the gray icon
	It("should default missing state to locked", func() {
		// Arrange
		defs := []models.AchievementDefinition{{APIName: "a1", DisplayName: "A", IconRef: "iconA", IconGrayRef: "grayA"}}

		// Act
		merged := services.Merge(10, defs, nil)

		// Assert
		Expect(merged).To(Equal([]models.MergedAchievement{
			{AppID: 10, APIName: "a1", DisplayName: "A", Icon: "grayA", Achieved: 0},
		}))
	})

	It("should keep definition order and length regardless of state order", func() {
		defs := []models.AchievementDefinition{def("c", "C"), def("a", "A"), def("b", "B")}
		states := []models.PlayerAchievementState{
			{APIName: "b", Achieved: 1, UnlockTime: 5},
			{APIName: "zzz", Achieved: 1},
			{APIName: "c", Achieved: 0},
		}

		merged := services.Merge(1, defs, states)

		Expect(merged).To(HaveLen(len(defs)))
		Expect(merged[0].APIName).To(Equal("c"))
		Expect(merged[1].APIName).To(Equal("a"))
		Expect(merged[2].APIName).To(Equal("b"))
	})

	It("should resolve the icon from the unlocked state", func() {
		defs := []models.AchievementDefinition{def("a", "A"), def("b", "B")}
		states := []models.PlayerAchievementState{{APIName: "a", Achieved: 1, UnlockTime: 42}}

		merged := services.Merge(1, defs, states)

		Expect(merged[0].Achieved).To(Equal(1))
		Expect(merged[0].Icon).To(Equal("icon-a"))
		Expect(merged[0].UnlockTime).To(BeEquivalentTo(42))
		Expect(merged[1].Achieved).To(Equal(0))
		Expect(merged[1].Icon).To(Equal("gray-b"))
		Expect(merged[1].UnlockTime).To(BeZero())
	})

	It("should return an empty list for a game without definitions", func() {
		merged := services.Merge(1, nil, []models.PlayerAchievementState{{APIName: "a", Achieved: 1}})

		Expect(merged).To(BeEmpty())
	})

	It("should treat unexpected achieved values as locked", func() {
		merged := services.Merge(1, []models.AchievementDefinition{def("a", "A")}, []models.PlayerAchievementState{{APIName: "a", Achieved: 7}})

		Expect(merged[0].Achieved).To(Equal(0))
		Expect(merged[0].Icon).To(Equal("gray-a"))
	})
})

var _ = Describe("ResolveIcon", func() {
	It("should expand a hash into a media url", func() {
		url := services.ResolveIcon(models.MergedAchievement{AppID: 440, Icon: "abc"})

		Expect(url).To(Equal("https://media.steampowered.com/steamcommunity/public/images/apps/440/abc.jpg"))
	})

	It("should keep absolute urls", func() {
		url := services.ResolveIcon(models.MergedAchievement{AppID: 440, Icon: "https://cdn.example.com/a.jpg"})

		Expect(url).To(Equal("https://cdn.example.com/a.jpg"))
	})

	It("should resolve game icons", func() {
		Expect(services.ResolveGameIcon(models.Game{AppID: 10, IconRef: "h"})).To(HaveSuffix("/10/h.jpg"))
		Expect(services.ResolveGameIcon(models.Game{AppID: 10})).To(BeEmpty())
	})
})
