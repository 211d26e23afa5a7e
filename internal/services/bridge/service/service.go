// Package service routes bridge commands to their per command flows
package service

import (
	"context"
	"slices"
	"sync"

	"snapbridge/internal/platform/logger"
	"snapbridge/internal/services/bridge/completion"
	dom "snapbridge/internal/services/bridge/domain"
	"snapbridge/internal/services/bridge/translate"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// DefaultAppScheme is probed by isInstalled
const DefaultAppScheme = "snapchat://app"

const tracerName = "snapbridge/internal/services/bridge"

// Config for the bridge service
type Config struct {
	AppScheme string
}

// handler runs one command flow; it must complete c exactly once on every path
type handler struct {
	domain translate.Domain
	run    func(ctx context.Context, payload map[string]any, c *completion.Completer)
}

// Service implements domain.RouterPort over the configured providers
type Service struct {
	Providers dom.Providers
	Cfg       Config

	handlers map[string]handler
	tracer   trace.Tracer

	sharerOnce sync.Once
	sharer     dom.Sharer
	sharerErr  error
}

// New constructs the bridge service
func New(p dom.Providers, cfg Config) *Service {
	if cfg.AppScheme == "" {
		cfg.AppScheme = DefaultAppScheme
	}
	s := &Service{
		Providers: p,
		Cfg:       cfg,
		tracer:    otel.Tracer(tracerName),
	}
	s.handlers = map[string]handler{
		dom.MethodLogin:           {translate.Login, s.login},
		dom.MethodGetUser:         {translate.FetchProfile, s.getUser},
		dom.MethodLogout:          {translate.Logout, s.logout},
		dom.MethodVerifyNumber:    {translate.VerifyPhone, s.verifyNumber},
		dom.MethodSendMedia:       {translate.SendMedia, s.sendMedia},
		dom.MethodIsInstalled:     {translate.AppProbe, s.isInstalled},
		dom.MethodPlatformVersion: {translate.PlatformVersion, s.platformVersion},
	}
	return s
}

// Methods implements domain.RouterPort
func (s *Service) Methods() []string {
	names := make([]string, 0, len(s.handlers))
	for name := range s.handlers {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Dispatch implements domain.RouterPort
// Input validation runs on the calling goroutine; provider completion may arrive on any goroutine
func (s *Service) Dispatch(ctx context.Context, cmd dom.Command, reply func(dom.Response)) {
	if cmd.ID == "" {
		cmd.ID = uuid.NewString()
	}
	ctx = logger.WithCommand(ctx, cmd.ID, cmd.Name)
	log := logger.C(ctx)

	ctx, span := s.tracer.Start(ctx, "bridge."+cmd.Name, trace.WithAttributes(
		attribute.String("bridge.command", cmd.Name),
		attribute.String("bridge.command_id", cmd.ID),
	))
	traced := func(r dom.Response) {
		span.SetAttributes(attribute.String("bridge.status", r.Status.String()))
		if r.Status == dom.StatusFailure {
			span.SetStatus(codes.Error, r.Code())
		}
		span.End()
		reply(r)
	}

	h, ok := s.handlers[cmd.Name]
	if !ok {
		log.Debug().Msg("command not implemented")
		traced(dom.NotImplemented())
		return
	}

	// provider calls are never cancelled once issued
	ctx = context.WithoutCancel(ctx)
	c := completion.New(ctx, h.domain, traced)

	defer func() {
		if rec := recover(); rec != nil {
			log.Error().Interface("panic", rec).Msg("command handler panicked")
			c.Reject(translate.Panic(h.domain, rec))
		}
	}()
	h.run(ctx, cmd.Payload, c)
}

// Call implements domain.RouterPort
// A late Response after ctx ends is dropped into the buffered channel and discarded
func (s *Service) Call(ctx context.Context, cmd dom.Command) (dom.Response, error) {
	ch := make(chan dom.Response, 1)
	s.Dispatch(ctx, cmd, func(r dom.Response) { ch <- r })
	select {
	case r := <-ch:
		return r, nil
	case <-ctx.Done():
		return dom.Response{}, ctx.Err()
	}
}

// sharerClient constructs the sharing client on first use and caches the outcome
func (s *Service) sharerClient() (dom.Sharer, error) {
	s.sharerOnce.Do(func() {
		if s.Providers.NewSharer == nil {
			s.sharerErr = translate.Unavailable(translate.SendMedia, "sharing")
			return
		}
		sh, err := s.Providers.NewSharer()
		if err != nil {
			logger.Named("bridge").Error().Err(err).Msg("sharing client construction failed")
			s.sharerErr = translate.Translate(translate.SendMedia, translate.ProviderFailure{Err: err})
			return
		}
		if sh == nil {
			s.sharerErr = translate.Unavailable(translate.SendMedia, "sharing")
			return
		}
		s.sharer = sh
	})
	return s.sharer, s.sharerErr
}

// Capability is one provider readiness check; Check is nil when the provider is absent
type Capability struct {
	Name  string
	Check func(context.Context) error
}

// Capabilities reports which providers are configured
// the sharing check constructs the sharing client if nothing has yet
func (s *Service) Capabilities() []Capability {
	present := func(ok bool) func(context.Context) error {
		if !ok {
			return nil
		}
		return func(context.Context) error { return nil }
	}
	caps := []Capability{
		{Name: "identity", Check: present(s.Providers.Identity != nil)},
		{Name: "verification", Check: present(s.Providers.Verifier != nil)},
		{Name: "sharing"},
		{Name: "app-probe", Check: present(s.Providers.Probe != nil)},
		{Name: "platform", Check: present(s.Providers.Platform != nil)},
	}
	if s.Providers.NewSharer != nil {
		caps[2].Check = func(context.Context) error {
			_, err := s.sharerClient()
			return err
		}
	}
	return caps
}
