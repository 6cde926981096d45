package cmd

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/vidstrip/vidstrip/config"
	"github.com/vidstrip/vidstrip/key"
	"github.com/vidstrip/vidstrip/where"
)

func TestParseValue(t *testing.T) {
	Convey("Raw values should follow the type of the default", t, func() {
		v, err := parseValue(config.Default[key.PlayerSkipSeconds], []string{"10"})
		So(err, ShouldBeNil)
		So(v, ShouldEqual, 10)

		v, err = parseValue(config.Default[key.FeaturesTheater], []string{"false"})
		So(err, ShouldBeNil)
		So(v, ShouldEqual, false)

		v, err = parseValue(config.Default[key.IconsVariant], []string{"nerd"})
		So(err, ShouldBeNil)
		So(v, ShouldEqual, "nerd")

		v, err = parseValue(config.Default[key.PlayerExtraArgs], []string{"--hwdec=auto", "--mute=no"})
		So(err, ShouldBeNil)
		So(v, ShouldResemble, []string{"--hwdec=auto", "--mute=no"})

		Convey("Malformed numbers and booleans are rejected", func() {
			_, err := parseValue(config.Default[key.PlayerSkipSeconds], []string{"ten"})
			So(err, ShouldNotBeNil)

			_, err = parseValue(config.Default[key.FeaturesTheater], []string{"maybe"})
			So(err, ShouldNotBeNil)
		})
	})
}

func TestEnvName(t *testing.T) {
	Convey("Config keys should map to prefixed variables", t, func() {
		So(envName(key.FeaturesMiniPlayer), ShouldEqual, "VIDSTRIP_FEATURES_MINI_PLAYER")
		So(envName(where.EnvConfigPath), ShouldEqual, where.EnvConfigPath)
	})
}

func TestCompletion(t *testing.T) {
	Convey("Key completion should match fuzzily", t, func() {
		keys, _ := completionConfigKeys(nil, nil, "fscreen")
		So(keys, ShouldContain, key.FeaturesFullScreen)
		So(keys, ShouldNotContain, key.LogsLevel)
	})
}
