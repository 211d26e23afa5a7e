// Package translate maps provider and input failures to the channel codes the host switches on
package translate

import (
	"fmt"

	perr "snapbridge/internal/platform/errors"
)

// Domain identifies the operation family a failure belongs to
type Domain uint8

const (
	// Login is callLogin
	Login Domain = iota
	// FetchProfile is getUser
	FetchProfile
	// VerifyPhone is verifyNumber
	VerifyPhone
	// SendMedia is sendMedia
	SendMedia
	// Logout is callLogout
	Logout
	// AppProbe is isInstalled
	AppProbe
	// PlatformVersion is getPlatformVersion
	PlatformVersion
)

func (d Domain) String() string {
	switch d {
	case Login:
		return "login"
	case FetchProfile:
		return "fetch-profile"
	case VerifyPhone:
		return "verify-phone"
	case SendMedia:
		return "send-media"
	case Logout:
		return "logout"
	case AppProbe:
		return "app-probe"
	case PlatformVersion:
		return "platform-version"
	default:
		return "unknown"
	}
}

// Channel codes
const (
	CodeLogin          = "LoginError"
	CodeGetUser        = "GetUserError"
	CodeUnknownGetUser = "UnknownGetUserError"
	CodeVerifyNumber   = "VerifyNumberError"
	CodeSendMediaArgs  = "SendMediaArgsError"
	CodeSendMediaSend  = "SendMediaSendError"
	// CodeBridge covers domains with no failure code of their own
	CodeBridge = "BridgeError"
)

// Fixed messages
const (
	MsgLoginNoError      = "Login failed without specific error"
	MsgLoginNoProvider   = "No login provider available"
	MsgProfileNoProvider = "No identity provider available"
	MsgNotLoggedIn       = "User Not Logged In"
	MsgUnknown           = "Unknown"
	MsgVerifyFailed      = "Error while verifying phone number"
	MsgVerifyNoProvider  = "No verification provider available"
	MsgSendNoProvider    = "No sharing provider available"
	MsgImageNotFound     = "Image could not be found in filesystem"
	MsgImageNotDecodable = "Image could not be loaded"
	MsgVideoNotFound     = "Video could not be found in filesystem"
)

// ProviderFailure is the raw failure reported by a provider callback
// Err may be nil when the provider signals failure without an error object
type ProviderFailure struct {
	Err             error
	Unauthenticated bool
}

// Translate maps a provider failure to its channel error
func Translate(d Domain, f ProviderFailure) error {
	switch d {
	case Login:
		if f.Err == nil {
			return reasoned(perr.New(perr.ErrorCodeUnknown, MsgLoginNoError),
				CodeLogin, "Success was false but no error object was provided")
		}
		return reasoned(perr.Wrapf(f.Err, perr.ErrorCodeProvider, "Login failed: %v", f.Err),
			CodeLogin, f.Err.Error())

	case FetchProfile:
		switch {
		case f.Unauthenticated:
			return reasoned(perr.Wrap(f.Err, perr.ErrorCodeUnauthenticated, MsgNotLoggedIn), CodeGetUser, nil)
		case f.Err != nil:
			return reasoned(perr.Wrap(f.Err, perr.ErrorCodeProvider, f.Err.Error()), CodeGetUser, nil)
		default:
			return reasoned(perr.New(perr.ErrorCodeUnknown, MsgUnknown), CodeUnknownGetUser, nil)
		}

	case VerifyPhone:
		return reasoned(perr.Wrap(f.Err, perr.ErrorCodeProvider, MsgVerifyFailed), CodeVerifyNumber, errText(f.Err))

	case SendMedia:
		if f.Err == nil {
			return reasoned(perr.New(perr.ErrorCodeUnknown, MsgUnknown), CodeSendMediaSend, nil)
		}
		return reasoned(perr.Wrap(f.Err, perr.ErrorCodeProvider, f.Err.Error()), CodeSendMediaSend, nil)

	default:
		return reasoned(perr.Wrap(f.Err, perr.ErrorCodeUnknown, MsgUnknown), CodeBridge, errText(f.Err))
	}
}

// Args maps a local input failure (decode, validation, file checks) to its channel error
// The incoming code and field are kept; details default to the offending field
func Args(d Domain, err error) error {
	if err == nil {
		return nil
	}
	if _, ok := perr.As(err); !ok {
		err = perr.Wrap(err, perr.ErrorCodeInvalidArgument, err.Error())
	}
	var details any
	if e, _ := perr.As(err); e.Details() != nil {
		details = e.Details()
	} else if f := e.Field(); f != "" {
		details = f
	}
	switch d {
	case SendMedia:
		return reasoned(err, CodeSendMediaArgs, details)
	case VerifyPhone:
		return reasoned(err, CodeVerifyNumber, details)
	case Login:
		return reasoned(err, CodeLogin, details)
	case FetchProfile:
		return reasoned(err, CodeGetUser, details)
	default:
		return reasoned(err, CodeBridge, details)
	}
}

// Unavailable reports a missing provider for domain d
func Unavailable(d Domain, what string) error {
	details := what + " provider is not configured"
	switch d {
	case Login:
		return reasoned(perr.New(perr.ErrorCodeUnavailable, MsgLoginNoProvider), CodeLogin, details)
	case FetchProfile:
		return reasoned(perr.New(perr.ErrorCodeUnavailable, MsgProfileNoProvider), CodeGetUser, details)
	case VerifyPhone:
		return reasoned(perr.New(perr.ErrorCodeUnavailable, MsgVerifyNoProvider), CodeVerifyNumber, details)
	case SendMedia:
		return reasoned(perr.New(perr.ErrorCodeUnavailable, MsgSendNoProvider), CodeSendMediaSend, details)
	default:
		return reasoned(perr.Newf(perr.ErrorCodeUnavailable, "No %s provider available", what), CodeBridge, details)
	}
}

// Panic reports a recovered panic as the generic failure code of domain d
func Panic(d Domain, v any) error {
	msg := fmt.Sprintf("%v", v)
	base := perr.Newf(perr.ErrorCodePanic, "internal failure in %s", d)
	switch d {
	case Login:
		return reasoned(base, CodeLogin, msg)
	case FetchProfile:
		return reasoned(base, CodeUnknownGetUser, msg)
	case VerifyPhone:
		return reasoned(base, CodeVerifyNumber, msg)
	case SendMedia:
		return reasoned(base, CodeSendMediaSend, msg)
	default:
		return reasoned(base, CodeBridge, msg)
	}
}

func reasoned(err error, reason string, details any) error {
	err = perr.WithReason(err, reason)
	if details != nil {
		err = perr.WithDetails(err, details)
	}
	return err
}

func errText(err error) any {
	if err == nil {
		return nil
	}
	return err.Error()
}
