package style

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	. "github.com/smartystreets/goconvey/convey"
)

func TestRenderers(t *testing.T) {
	Convey("Renderers should keep the text and its width", t, func() {
		for name, render := range map[string]func(string) string{
			"Fg":    Fg(AccentColor),
			"Bg":    Bg(BorderColor),
			"Faint": Faint,
			"Bold":  Bold,
		} {
			Convey(name, func() {
				out := render("1:23")
				So(out, ShouldContainSubstring, "1:23")
				So(lipgloss.Width(out), ShouldEqual, 4)
			})
		}
	})

	Convey("Banners should pad one cell on each side", t, func() {
		So(lipgloss.Width(Title("vidstrip")), ShouldEqual, 10)
		So(lipgloss.Width(Tag(Text, Base)("CC")), ShouldEqual, 4)
		So(lipgloss.Width(ErrorTitle("Error")), ShouldEqual, 7)
	})
}
