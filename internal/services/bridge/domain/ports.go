package domain

import "context"

// Identity is the login and profile capability provider
// Callbacks may fire on any goroutine and, for untrusted providers, more than once
type Identity interface {
	Login(ctx context.Context, done func(ok bool, err error))
	FetchProfile(ctx context.Context, query string, vars map[string]string,
		onSuccess func(resources map[string]any), onFailure func(err error, unauthenticated bool))
	// ClearSession is synchronous and assumed non-failing
	ClearSession()
}

// Verifier is the phone verification capability provider
type Verifier interface {
	Verify(ctx context.Context, phone, region string, done func(phoneID, verifyID string, err error))
}

// Sharer is the content sharing capability provider
type Sharer interface {
	Submit(ctx context.Context, content ShareContent, done func(err error))
}

// SharerFactory lazily constructs the sharing client; called at most once per process
type SharerFactory func() (Sharer, error)

// AppProbe reports whether an app handling scheme is installed
type AppProbe interface {
	IsAppInstalled(scheme string) bool
}

// Platform reports the host platform name and version, e.g. "Linux 6.8.0"
type Platform interface {
	Version() string
}

// Providers bundles the capability providers the bridge calls through
// Nil members are reported to the host as unavailable for the commands that need them
type Providers struct {
	Identity  Identity
	Verifier  Verifier
	NewSharer SharerFactory
	Probe     AppProbe
	Platform  Platform
}

// RouterPort is what the host channel talks to
type RouterPort interface {
	// Dispatch routes cmd and returns without waiting; reply fires exactly once
	Dispatch(ctx context.Context, cmd Command, reply func(Response))
	// Call dispatches cmd and waits for its Response or for ctx to end
	Call(ctx context.Context, cmd Command) (Response, error)
	// Methods lists the recognised command names
	Methods() []string
}
