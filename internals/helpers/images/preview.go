// file: internals/helpers/images/preview.go
//
// Geração de preview WebP para comprovantes em imagem (jpg/png). O preview
// é gravado ao lado do original com sufixo "_thumb.webp" e serve a listagem
// de parcelas sem baixar o arquivo cheio.
package images

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

const (
	previewMaxWidth = 480
	previewQuality  = 75
)

// PreviewPathFor deriva o path do preview a partir do path original.
func PreviewPathFor(originalPath string) string {
	if idx := strings.LastIndex(originalPath, "."); idx > 0 {
		return originalPath[:idx] + "_thumb.webp"
	}
	return originalPath + "_thumb.webp"
}

// EncodePreview decodifica a imagem, reduz para no máximo previewMaxWidth
// de largura e devolve o WebP comprimido.
func EncodePreview(data []byte) (*bytes.Buffer, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("falha ao decodificar imagem: %w", err)
	}

	if img.Bounds().Dx() > previewMaxWidth {
		img = imaging.Resize(img, previewMaxWidth, 0, imaging.Lanczos)
	}

	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, &webp.Options{Quality: previewQuality}); err != nil {
		return nil, fmt.Errorf("falha ao codificar webp: %w", err)
	}
	return buf, nil
}
