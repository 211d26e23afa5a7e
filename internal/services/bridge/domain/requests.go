package domain

// Payload schemas: mapstructure names the payload key, validate holds the rules

// VerificationRequest is the verifyNumber payload
type VerificationRequest struct {
	PhoneNumber string `mapstructure:"phoneNumber" json:"phoneNumber" validate:"required"`
	Region      string `mapstructure:"region" json:"region" validate:"required"`
}

// StickerArgs is the optional sticker block of a sendMedia payload
type StickerArgs struct {
	ImagePath string   `mapstructure:"imagePath" json:"imagePath" validate:"required"`
	Width     *float64 `mapstructure:"width" json:"width" validate:"required"`
	Height    *float64 `mapstructure:"height" json:"height" validate:"required"`
	OffsetX   *float64 `mapstructure:"offsetX" json:"offsetX" validate:"required"`
	OffsetY   *float64 `mapstructure:"offsetY" json:"offsetY" validate:"required"`
	Rotation  *float64 `mapstructure:"rotation" json:"rotation" validate:"required"`
}

// SendMediaRequest is the sendMedia payload
type SendMediaRequest struct {
	MediaType     string       `mapstructure:"mediaType" json:"mediaType" validate:"required"`
	ImagePath     *string      `mapstructure:"imagePath" json:"imagePath" validate:"required_if=MediaType PHOTO"`
	VideoPath     *string      `mapstructure:"videoPath" json:"videoPath" validate:"required_if=MediaType VIDEO"`
	Caption       *string      `mapstructure:"caption" json:"caption"`
	AttachmentURL *string      `mapstructure:"attachmentUrl" json:"attachmentUrl"`
	Sticker       *StickerArgs `mapstructure:"sticker" json:"sticker"`
}

// Kind returns the parsed media kind
func (r SendMediaRequest) Kind() MediaKind { return ParseMediaKind(r.MediaType) }
