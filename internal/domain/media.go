package domain

// AllowedImageExtensions lists the file extensions accepted for media uploads.
var AllowedImageExtensions = map[string]bool{
	"png":  true,
	"jpg":  true,
	"jpeg": true,
	"gif":  true,
	"webp": true,
}

// AllowedImageContentTypes lists the sniffed content types accepted for
// media uploads.
var AllowedImageContentTypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/gif":  true,
	"image/webp": true,
}
