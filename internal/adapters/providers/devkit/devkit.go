package devkit

import (
	"context"
	"errors"
	"sync"
	"time"

	"snapbridge/internal/core/version"
	"snapbridge/internal/platform/logger"
	dom "snapbridge/internal/services/bridge/domain"

	"github.com/google/uuid"
)

// Failure keys in Fixture.Failures
const (
	FailLogin   = "login"
	FailProfile = "profile"
	FailVerify  = "verify"
	FailShare   = "share"
)

// ErrNotLoggedIn is reported by FetchProfile without a session
var ErrNotLoggedIn = errors.New("no active session")

// Kit implements every bridge provider port in memory
type Kit struct {
	set Settings
	fx  Fixture
	log *logger.Logger

	mu       sync.Mutex
	loggedIn bool
	shared   []dom.ShareContent
}

// New builds a Kit
func New(s Settings, fx Fixture) *Kit {
	return &Kit{
		set:      s,
		fx:       fx,
		log:      logger.Named("devkit"),
		loggedIn: s.LoggedIn,
	}
}

// FromEnv loads Settings and the optional fixture, nil without error when DEVKIT_ENABLED is false
func FromEnv() (*Kit, error) {
	s, err := LoadSettings()
	if err != nil || !s.Enabled {
		return nil, err
	}
	fx, err := LoadFixture(s.Fixture)
	if err != nil {
		return nil, err
	}
	return New(s, fx), nil
}

// Providers exposes the kit through the bridge ports
func (k *Kit) Providers() dom.Providers {
	return dom.Providers{
		Identity:  k,
		Verifier:  k,
		NewSharer: k.newSharer,
		Probe:     k,
		Platform:  version.Platform{},
	}
}

// later runs fn off the caller's goroutine after the configured latency, twice when Duplicate is set
func (k *Kit) later(fn func()) {
	fire := func() {
		fn()
		if k.set.Duplicate {
			fn()
		}
	}
	if k.set.Latency <= 0 {
		go fire()
		return
	}
	time.AfterFunc(k.set.Latency, fire)
}

func (k *Kit) failure(key string) error {
	if msg, ok := k.fx.Failures[key]; ok && msg != "" {
		return errors.New(msg)
	}
	return nil
}

// Login implements domain.Identity
func (k *Kit) Login(_ context.Context, done func(ok bool, err error)) {
	outcome := k.set.Login
	injected := k.failure(FailLogin)
	k.later(func() {
		switch {
		case injected != nil:
			done(false, injected)
		case outcome == LoginDeclined:
			done(false, nil)
		case outcome == LoginError:
			done(false, errors.New("login was cancelled"))
		default:
			k.mu.Lock()
			k.loggedIn = true
			k.mu.Unlock()
			done(true, nil)
		}
	})
}

// FetchProfile implements domain.Identity
func (k *Kit) FetchProfile(_ context.Context, query string, vars map[string]string,
	onSuccess func(resources map[string]any), onFailure func(err error, unauthenticated bool)) {
	k.log.Debug().Str("query", query).Interface("vars", vars).Msg("profile query")

	k.mu.Lock()
	loggedIn := k.loggedIn
	k.mu.Unlock()
	injected := k.failure(FailProfile)

	k.later(func() {
		switch {
		case !loggedIn:
			onFailure(ErrNotLoggedIn, true)
		case injected != nil:
			onFailure(injected, false)
		case k.fx.Profile.Missing:
			onSuccess(map[string]any{"data": map[string]any{}})
		default:
			onSuccess(k.profileResources())
		}
	})
}

func (k *Kit) profileResources() map[string]any {
	p := k.fx.Profile
	me := map[string]any{}
	if p.ExternalID != "" {
		me["externalId"] = p.ExternalID
	}
	if p.DisplayName != "" {
		me["displayName"] = p.DisplayName
	}
	if p.Selfie != "" {
		me["bitmoji"] = map[string]any{"selfie": p.Selfie}
	}
	return map[string]any{"data": map[string]any{"me": me}}
}

// ClearSession implements domain.Identity
func (k *Kit) ClearSession() {
	k.mu.Lock()
	k.loggedIn = false
	k.mu.Unlock()
}

// LoggedIn reports the session state
func (k *Kit) LoggedIn() bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.loggedIn
}

// Verify implements domain.Verifier
func (k *Kit) Verify(_ context.Context, phone, region string, done func(phoneID, verifyID string, err error)) {
	injected := k.failure(FailVerify)
	phoneID, verifyID := k.fx.Verification.PhoneID, k.fx.Verification.VerifyID
	if phoneID == "" {
		phoneID = uuid.NewSHA1(uuid.NameSpaceURL, []byte("tel:"+region+phone)).String()
	}
	if verifyID == "" {
		verifyID = uuid.NewString()
	}
	k.later(func() {
		if injected != nil {
			done("", "", injected)
			return
		}
		done(phoneID, verifyID, nil)
	})
}

// IsAppInstalled implements domain.AppProbe
func (k *Kit) IsAppInstalled(scheme string) bool { return k.set.Installed && scheme != "" }

// Shared returns a copy of everything submitted for sharing
func (k *Kit) Shared() []dom.ShareContent {
	k.mu.Lock()
	defer k.mu.Unlock()
	return append([]dom.ShareContent(nil), k.shared...)
}

type sharer struct{ k *Kit }

func (k *Kit) newSharer() (dom.Sharer, error) {
	if k.set.SharerError != "" {
		return nil, errors.New(k.set.SharerError)
	}
	return sharer{k: k}, nil
}

// Submit implements domain.Sharer
func (s sharer) Submit(_ context.Context, content dom.ShareContent, done func(err error)) {
	injected := s.k.failure(FailShare)
	if injected == nil {
		s.k.mu.Lock()
		s.k.shared = append(s.k.shared, content)
		s.k.mu.Unlock()
		s.k.log.Info().
			Str("kind", content.Kind.String()).
			Bool("sticker", content.Sticker != nil).
			Msg("content shared")
	}
	s.k.later(func() { done(injected) })
}
