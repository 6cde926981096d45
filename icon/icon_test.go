package icon

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/vidstrip/vidstrip/key"
)

func TestGet(t *testing.T) {
	Convey("Given every registered icon", t, func() {
		Convey("Each renders for each variant", func() {
			for _, variant := range AvailableVariants() {
				Convey("variant="+variant, func() {
					viper.Set(key.IconsVariant, variant)
					for _, i := range All() {
						So(Get(i), ShouldNotBeEmpty)
					}
				})
			}
		})

		Convey("Play and pause should be told apart in plain mode", func() {
			viper.Set(key.IconsVariant, plain)
			So(Get(Play), ShouldNotEqual, Get(Pause))
		})

		Convey("It returns empty for an unknown variant", func() {
			viper.Set(key.IconsVariant, "")
			So(Get(Play), ShouldBeEmpty)
		})
	})
}
