package config

import (
	"encoding/json"
	"testing"

	"github.com/invopop/jsonschema"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/vidstrip/vidstrip/filesystem"
	"github.com/vidstrip/vidstrip/key"
	"github.com/vidstrip/vidstrip/playback"
)

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		filesystem.SetMemMapFs()

		Convey("Should initialize without error", func() {
			So(Setup(), ShouldBeNil)
		})

		Convey("Should have default values populated", func() {
			So(Setup(), ShouldBeNil)
			for name := range Default {
				So(viper.IsSet(name), ShouldBeTrue)
			}
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			So(EnvKeyReplacer.Replace("features.mini_player"), ShouldEqual, "features_mini_player")
		})

		Convey("Env names should carry the application prefix once", func() {
			field := Default[key.FeaturesCaptions]
			So(field.Env(), ShouldEqual, "VIDSTRIP_FEATURES_CAPTIONS")
		})
	})
}

func TestFeatures(t *testing.T) {
	Convey("Given the default configuration", t, func() {
		filesystem.SetMemMapFs()
		So(Setup(), ShouldBeNil)

		Convey("Every feature should be enabled", func() {
			So(Features(), ShouldResemble, playback.AllFeatures())
		})

		Convey("Skip and bucket widths should match the playback defaults", func() {
			So(SkipSeconds(), ShouldEqual, playback.DefaultSkipSeconds)
			So(BucketSeconds(), ShouldEqual, playback.DefaultBucketSeconds)
		})

		Convey("When a feature is switched off", func() {
			viper.Set(key.FeaturesTheater, false)
			defer viper.Set(key.FeaturesTheater, true)

			Convey("Only that flag should be disabled", func() {
				f := Features()
				So(f.Theater, ShouldBeFalse)
				So(f.Captions, ShouldBeTrue)
				So(f.FullScreen, ShouldBeTrue)
			})
		})

		Convey("A non-positive skip distance should fall back to the default", func() {
			viper.Set(key.PlayerSkipSeconds, 0)
			defer viper.Set(key.PlayerSkipSeconds, 5)
			So(SkipSeconds(), ShouldEqual, playback.DefaultSkipSeconds)
		})
	})
}

func TestSchema(t *testing.T) {
	Convey("Given the config schema", t, func() {
		schema := Schema()

		Convey("Every section should be a closed table", func() {
			features, ok := schema.Properties.Get("features")
			So(ok, ShouldBeTrue)
			So(features.Type, ShouldEqual, "object")
			So(features.AdditionalProperties, ShouldEqual, jsonschema.FalseSchema)
		})

		Convey("Leaves should carry the type and default", func() {
			player, ok := schema.Properties.Get("player")
			So(ok, ShouldBeTrue)

			scale, ok := player.Properties.Get("mini_scale")
			So(ok, ShouldBeTrue)
			So(scale.Type, ShouldEqual, "integer")
			So(scale.Default, ShouldEqual, 40)

			args, ok := player.Properties.Get("extra_args")
			So(ok, ShouldBeTrue)
			So(args.Type, ShouldEqual, "array")
			So(args.Items.Type, ShouldEqual, "string")
		})

		Convey("Enumerated keys should list their choices", func() {
			icons, ok := schema.Properties.Get("icons")
			So(ok, ShouldBeTrue)
			variant, ok := icons.Properties.Get("variant")
			So(ok, ShouldBeTrue)
			So(variant.Enum, ShouldContain, "nerd")
		})

		Convey("The schema should encode to JSON", func() {
			_, err := json.Marshal(schema)
			So(err, ShouldBeNil)
		})
	})
}
