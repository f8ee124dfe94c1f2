package constants

import (
	"path/filepath"
	"strings"
)

// Tipos de anexo aceitos nas parcelas (comprovantes e boletos digitalizados).
var AllowedAttachmentExts = map[string]struct{}{
	".pdf":  {},
	".jpg":  {},
	".jpeg": {},
	".png":  {},
}

// ContentTypeFromExt resolve o Content-Type pela extensão do arquivo.
func ContentTypeFromExt(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))

	switch ext {
	case ".pdf":
		return "application/pdf"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	default:
		return "application/octet-stream"
	}
}

func IsAllowedAttachment(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	_, ok := AllowedAttachmentExts[ext]
	return ok
}

func IsImageAttachment(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg", ".png":
		return true
	default:
		return false
	}
}
