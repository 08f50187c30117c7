package usecase

// Audio MIME types accepted for upload. Declared content type only,
// no sniffing.
var allowedAudioTypes = map[string]struct{}{
	"audio/mpeg":  {},
	"audio/wav":   {},
	"audio/ogg":   {},
	"audio/x-wav": {},
}

// IsSupportedAudioType reports whether the declared content type is on
// the allow-list.
func IsSupportedAudioType(contentType string) bool {
	_, ok := allowedAudioTypes[contentType]
	return ok
}
