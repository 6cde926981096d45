package config

import (
	"github.com/spf13/viper"
	"github.com/vidstrip/vidstrip/key"
	"github.com/vidstrip/vidstrip/playback"
)

// Features reads the enabled feature flags from the configuration.
func Features() playback.Features {
	return playback.Features{
		Captions:      viper.GetBool(key.FeaturesCaptions),
		PlaybackSpeed: viper.GetBool(key.FeaturesPlaybackSpeed),
		MiniPlayer:    viper.GetBool(key.FeaturesMiniPlayer),
		Theater:       viper.GetBool(key.FeaturesTheater),
		FullScreen:    viper.GetBool(key.FeaturesFullScreen),
	}
}

// SkipSeconds returns the configured skip distance, falling back to the default for non-positive values.
func SkipSeconds() float64 {
	if s := viper.GetInt(key.PlayerSkipSeconds); s > 0 {
		return float64(s)
	}
	return playback.DefaultSkipSeconds
}

// BucketSeconds returns the configured preview bucket width.
func BucketSeconds() float64 {
	if s := viper.GetInt(key.PreviewsBucketSeconds); s > 0 {
		return float64(s)
	}
	return playback.DefaultBucketSeconds
}
