// Package domain defines the command, response and content types of the bridge
package domain

import (
	perr "snapbridge/internal/platform/errors"
)

// Recognised command names
const (
	MethodLogin           = "callLogin"
	MethodGetUser         = "getUser"
	MethodLogout          = "callLogout"
	MethodVerifyNumber    = "verifyNumber"
	MethodSendMedia       = "sendMedia"
	MethodIsInstalled     = "isInstalled"
	MethodPlatformVersion = "getPlatformVersion"
)

// Literal success markers returned to the host
const (
	LoginSuccess     = "Login Success"
	LogoutSuccess    = "Logout Success"
	SendMediaSuccess = "SendMedia Success"
)

// Command is a named request with an untyped payload issued by the host
type Command struct {
	ID      string         `json:"id,omitempty"`
	Name    string         `json:"method"`
	Payload map[string]any `json:"arguments,omitempty"`
}

// Status tags a Response
type Status uint8

const (
	// StatusSuccess carries Value
	StatusSuccess Status = iota
	// StatusFailure carries Err
	StatusFailure
	// StatusNotImplemented means no handler exists for the command name
	StatusNotImplemented
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusFailure:
		return "failure"
	case StatusNotImplemented:
		return "not_implemented"
	default:
		return "invalid"
	}
}

// Response is the single terminal outcome of a Command
type Response struct {
	Status Status
	Value  any
	Err    error
}

// Success builds a success response
func Success(v any) Response { return Response{Status: StatusSuccess, Value: v} }

// Failure builds a failure response; err should carry a channel reason
func Failure(err error) Response { return Response{Status: StatusFailure, Err: err} }

// NotImplemented is the sentinel response for unknown command names
func NotImplemented() Response { return Response{Status: StatusNotImplemented} }

// OK reports whether the response is a success
func (r Response) OK() bool { return r.Status == StatusSuccess }

// Code returns the channel code of a failure, "NotImplemented" for the sentinel, empty otherwise
func (r Response) Code() string {
	switch r.Status {
	case StatusFailure:
		return perr.ReasonOf(r.Err)
	case StatusNotImplemented:
		return "NotImplemented"
	default:
		return ""
	}
}

// Message returns the failure message without wrapped causes
func (r Response) Message() string {
	if e, ok := perr.As(r.Err); ok {
		return e.Message()
	}
	if r.Err != nil {
		return r.Err.Error()
	}
	return ""
}

// Details returns the failure details, if any
func (r Response) Details() any {
	if e, ok := perr.As(r.Err); ok {
		return e.Details()
	}
	return nil
}

// MediaKind is the kind of media attached to a share
type MediaKind uint8

const (
	// MediaNone shares caption, attachment and sticker only
	MediaNone MediaKind = iota
	// MediaPhoto shares a still image
	MediaPhoto
	// MediaVideo shares a video file
	MediaVideo
)

// ParseMediaKind maps the wire value; anything unrecognised is MediaNone
func ParseMediaKind(s string) MediaKind {
	switch s {
	case "PHOTO":
		return MediaPhoto
	case "VIDEO":
		return MediaVideo
	default:
		return MediaNone
	}
}

func (k MediaKind) String() string {
	switch k {
	case MediaPhoto:
		return "PHOTO"
	case MediaVideo:
		return "VIDEO"
	default:
		return "NONE"
	}
}

// Image is a decoded still image loaded from disk
type Image struct {
	Path   string
	MIME   string
	Width  int
	Height int
	Bytes  []byte
}

// Video is a file backed video reference
type Video struct {
	Path string
	MIME string
	Size int64
}

// Sticker is an image overlay with geometry passed through verbatim
type Sticker struct {
	Image    Image
	Width    float64
	Height   float64
	PosX     float64
	PosY     float64
	Rotation float64
}

// ShareContent is the assembled description of media and text handed to the sharing provider
type ShareContent struct {
	Kind          MediaKind
	Image         *Image
	Video         *Video
	Caption       *string
	AttachmentURL *string
	Sticker       *Sticker
}

// UserProfile is the subset of the signed in user exposed to the host
type UserProfile struct {
	ExternalID       *string
	DisplayName      *string
	BitmojiAvatarURL *string
}

// Tuple renders the profile as the host facing [externalId, displayName, bitmojiAvatarUrl]
func (p UserProfile) Tuple() []any {
	return []any{strOrNil(p.ExternalID), strOrNil(p.DisplayName), strOrNil(p.BitmojiAvatarURL)}
}

func strOrNil(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}
