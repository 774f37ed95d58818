package steam_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/tupyy/achievement-tracker/pkg/steam"
)

var _ = Describe("IconURL", func() {
	It("should expand a hash into a media url", func() {
		Expect(steam.IconURL(440, "e3f595a92552da3d664ad00277fad2107345f743")).
			To(Equal("https://media.steampowered.com/steamcommunity/public/images/apps/440/e3f595a92552da3d664ad00277fad2107345f743.jpg"))
	})

	It("should keep absolute urls", func() {
		Expect(steam.IconURL(440, "https://cdn/icon.jpg")).To(Equal("https://cdn/icon.jpg"))
	})

	It("should return empty for an empty ref", func() {
		Expect(steam.IconURL(440, "")).To(BeEmpty())
	})
})
