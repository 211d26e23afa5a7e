// Package media assembles share content from a decoded sendMedia request
package media

import (
	"bytes"
	"image"
	_ "image/gif"  // register decoder
	_ "image/jpeg" // register decoder
	_ "image/png"  // register decoder
	"os"

	perr "snapbridge/internal/platform/errors"
	"snapbridge/internal/services/bridge/domain"
	"snapbridge/internal/services/bridge/translate"

	"github.com/gabriel-vasile/mimetype"
)

// Build resolves files and assembles the ShareContent for req
// Failures are invalid argument errors whose details carry the offending path
func Build(req domain.SendMediaRequest) (domain.ShareContent, error) {
	content := domain.ShareContent{
		Kind:          req.Kind(),
		Caption:       req.Caption,
		AttachmentURL: req.AttachmentURL,
	}

	switch content.Kind {
	case domain.MediaPhoto:
		img, err := LoadImage(deref(req.ImagePath))
		if err != nil {
			return domain.ShareContent{}, perr.WithField(err, "imagePath")
		}
		content.Image = &img
	case domain.MediaVideo:
		vid, err := LoadVideo(deref(req.VideoPath))
		if err != nil {
			return domain.ShareContent{}, perr.WithField(err, "videoPath")
		}
		content.Video = &vid
	}

	if s := req.Sticker; s != nil {
		img, err := LoadImage(s.ImagePath)
		if err != nil {
			return domain.ShareContent{}, perr.WithField(err, "sticker.imagePath")
		}
		content.Sticker = &domain.Sticker{
			Image:    img,
			Width:    *s.Width,
			Height:   *s.Height,
			PosX:     *s.OffsetX,
			PosY:     *s.OffsetY,
			Rotation: *s.Rotation,
		}
	}
	return content, nil
}

// LoadImage reads and decodes the still image at path
func LoadImage(path string) (domain.Image, error) {
	if !isFile(path) {
		return domain.Image{}, notFound(translate.MsgImageNotFound, path, nil)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Image{}, notFound(translate.MsgImageNotFound, path, err)
	}
	decoded, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return domain.Image{}, perr.WithDetails(
			perr.Wrap(err, perr.ErrorCodeInvalidArgument, translate.MsgImageNotDecodable), path)
	}
	b := decoded.Bounds()
	return domain.Image{
		Path:   path,
		MIME:   mimetype.Detect(data).String(),
		Width:  b.Dx(),
		Height: b.Dy(),
		Bytes:  data,
	}, nil
}

// LoadVideo resolves the video at path to a file backed reference
func LoadVideo(path string) (domain.Video, error) {
	fi, err := os.Stat(path)
	if err != nil || !fi.Mode().IsRegular() {
		return domain.Video{}, notFound(translate.MsgVideoNotFound, path, err)
	}
	mt, err := mimetype.DetectFile(path)
	if err != nil {
		return domain.Video{}, notFound(translate.MsgVideoNotFound, path, err)
	}
	return domain.Video{Path: path, MIME: mt.String(), Size: fi.Size()}, nil
}

func notFound(msg, path string, cause error) error {
	return perr.WithDetails(perr.Wrap(cause, perr.ErrorCodeInvalidArgument, msg), path)
}

func isFile(path string) bool {
	if path == "" {
		return false
	}
	fi, err := os.Stat(path)
	return err == nil && fi.Mode().IsRegular()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
