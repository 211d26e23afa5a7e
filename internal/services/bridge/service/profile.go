package service

import (
	dom "snapbridge/internal/services/bridge/domain"

	"github.com/go-viper/mapstructure/v2"
)

type profileResources struct {
	Data *struct {
		Me *profileMe `mapstructure:"me"`
	} `mapstructure:"data"`
}

type profileMe struct {
	ExternalID  *string `mapstructure:"externalId"`
	DisplayName *string `mapstructure:"displayName"`
	Bitmoji     *struct {
		Selfie *string `mapstructure:"selfie"`
	} `mapstructure:"bitmoji"`
}

// parseProfile reads data.me from a profile query result
// ok is false when data.me is absent or not an object
func parseProfile(resources map[string]any) (dom.UserProfile, bool) {
	var out profileResources
	if err := mapstructure.Decode(resources, &out); err != nil {
		return dom.UserProfile{}, false
	}
	if out.Data == nil || out.Data.Me == nil {
		return dom.UserProfile{}, false
	}
	me := out.Data.Me
	p := dom.UserProfile{ExternalID: me.ExternalID, DisplayName: me.DisplayName}
	if me.Bitmoji != nil {
		p.BitmojiAvatarURL = me.Bitmoji.Selfie
	}
	return p, true
}
