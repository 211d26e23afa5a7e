package service

import (
	"context"

	"snapbridge/internal/platform/logger"
	"snapbridge/internal/services/bridge/completion"
	"snapbridge/internal/services/bridge/decode"
	dom "snapbridge/internal/services/bridge/domain"
	"snapbridge/internal/services/bridge/media"
	"snapbridge/internal/services/bridge/translate"
)

// ProfileQuery is the profile selection sent with getUser
const ProfileQuery = "{me{externalId, displayName, bitmoji{selfie}}}"

// ProfileVariables accompany ProfileQuery
func ProfileVariables() map[string]string { return map[string]string{"page": "bitmoji"} }

func (s *Service) login(ctx context.Context, _ map[string]any, c *completion.Completer) {
	id := s.Providers.Identity
	if id == nil {
		c.Reject(translate.Unavailable(translate.Login, "identity"))
		return
	}
	id.Login(ctx, func(ok bool, err error) {
		if err == nil && ok {
			c.Succeed(dom.LoginSuccess)
			return
		}
		c.Fail(translate.ProviderFailure{Err: err})
	})
}

func (s *Service) getUser(ctx context.Context, _ map[string]any, c *completion.Completer) {
	id := s.Providers.Identity
	if id == nil {
		c.Reject(translate.Unavailable(translate.FetchProfile, "identity"))
		return
	}
	id.FetchProfile(ctx, ProfileQuery, ProfileVariables(),
		func(resources map[string]any) {
			p, ok := parseProfile(resources)
			if !ok {
				logger.C(ctx).Info().Msg("profile response carried no data.me")
				c.Fail(translate.ProviderFailure{})
				return
			}
			c.Succeed(p.Tuple())
		},
		func(err error, unauthenticated bool) {
			c.Fail(translate.ProviderFailure{Err: err, Unauthenticated: unauthenticated})
		},
	)
}

func (s *Service) logout(_ context.Context, _ map[string]any, c *completion.Completer) {
	if id := s.Providers.Identity; id != nil {
		id.ClearSession()
	}
	c.Succeed(dom.LogoutSuccess)
}

func (s *Service) verifyNumber(ctx context.Context, payload map[string]any, c *completion.Completer) {
	req, err := decode.Decode[dom.VerificationRequest](payload)
	if err != nil {
		c.Reject(translate.Args(translate.VerifyPhone, err))
		return
	}
	v := s.Providers.Verifier
	if v == nil {
		c.Reject(translate.Unavailable(translate.VerifyPhone, "verification"))
		return
	}
	v.Verify(ctx, req.PhoneNumber, req.Region, func(phoneID, verifyID string, err error) {
		if err != nil {
			c.Fail(translate.ProviderFailure{Err: err})
			return
		}
		c.Succeed([]any{emptyToNil(phoneID), emptyToNil(verifyID)})
	})
}

func (s *Service) sendMedia(ctx context.Context, payload map[string]any, c *completion.Completer) {
	req, err := decode.Decode[dom.SendMediaRequest](payload)
	if err != nil {
		c.Reject(translate.Args(translate.SendMedia, err))
		return
	}
	content, err := media.Build(req)
	if err != nil {
		c.Reject(translate.Args(translate.SendMedia, err))
		return
	}
	sharer, err := s.sharerClient()
	if err != nil {
		c.Reject(err)
		return
	}
	sharer.Submit(ctx, content, func(err error) {
		if err != nil {
			c.Fail(translate.ProviderFailure{Err: err})
			return
		}
		c.Succeed(dom.SendMediaSuccess)
	})
}

func (s *Service) isInstalled(_ context.Context, _ map[string]any, c *completion.Completer) {
	probe := s.Providers.Probe
	c.Succeed(probe != nil && probe.IsAppInstalled(s.Cfg.AppScheme))
}

func (s *Service) platformVersion(_ context.Context, _ map[string]any, c *completion.Completer) {
	if p := s.Providers.Platform; p != nil {
		c.Succeed(p.Version())
		return
	}
	c.Succeed(translate.MsgUnknown)
}

func emptyToNil(s string) any {
	if s == "" {
		return nil
	}
	return s
}
