// Package completion wraps callback style provider operations into single fire responses
package completion

import (
	"context"
	"sync"
	"sync/atomic"

	"snapbridge/internal/platform/logger"
	"snapbridge/internal/services/bridge/domain"
	"snapbridge/internal/services/bridge/translate"

	"github.com/rs/zerolog"
)

// Reply receives the terminal Response of a command exactly once
type Reply func(domain.Response)

var discarded atomic.Int64

// Discarded returns the process wide count of duplicate completions dropped so far
func Discarded() int64 { return discarded.Load() }

// Completer delivers at most one Response to its Reply
// It is safe to call from any goroutine; only the first call wins
type Completer struct {
	domain translate.Domain
	reply  Reply
	log    zerolog.Logger

	once sync.Once
	done atomic.Bool
	dups atomic.Int64
}

// New returns a Completer for domain d that forwards the first outcome to reply
func New(ctx context.Context, d translate.Domain, reply Reply) *Completer {
	return &Completer{
		domain: d,
		reply:  reply,
		log:    logger.C(ctx).With().Str("component", "completion").Str("domain", d.String()).Logger(),
	}
}

// Succeed emits a success carrying v
func (c *Completer) Succeed(v any) bool { return c.Respond(domain.Success(v)) }

// Fail translates a provider failure and emits it
func (c *Completer) Fail(f translate.ProviderFailure) bool {
	if c.done.Load() {
		c.discard()
		return false
	}
	err := translate.Translate(c.domain, f)
	c.log.Info().Err(err).Msg("provider reported failure")
	return c.Respond(domain.Failure(err))
}

// Reject emits an already translated failure
func (c *Completer) Reject(err error) bool { return c.Respond(domain.Failure(err)) }

// Respond emits r if nothing was emitted yet and reports whether it did
func (c *Completer) Respond(r domain.Response) bool {
	emitted := false
	c.once.Do(func() {
		emitted = true
		c.done.Store(true)
		c.reply(r)
	})
	if !emitted {
		c.discard()
	}
	return emitted
}

func (c *Completer) discard() {
	n := c.dups.Add(1)
	total := discarded.Add(1)
	c.log.Warn().
		Int64("duplicates", n).
		Int64("duplicates_total", total).
		Msg("discarding duplicate completion")
}
