package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContentTypeFromExt(t *testing.T) {
	assert.Equal(t, "application/pdf", ContentTypeFromExt("boleto.pdf"))
	assert.Equal(t, "image/jpeg", ContentTypeFromExt("comprovante.jpg"))
	assert.Equal(t, "image/jpeg", ContentTypeFromExt("comprovante.JPEG"))
	assert.Equal(t, "image/png", ContentTypeFromExt("recibo.png"))
	assert.Equal(t, "application/octet-stream", ContentTypeFromExt("planilha.xlsx"))
	assert.Equal(t, "application/octet-stream", ContentTypeFromExt("sem_extensao"))
}

func TestIsAllowedAttachment(t *testing.T) {
	assert.True(t, IsAllowedAttachment("a.pdf"))
	assert.True(t, IsAllowedAttachment("b.JPG"))
	assert.True(t, IsAllowedAttachment("c.jpeg"))
	assert.True(t, IsAllowedAttachment("d.png"))
	assert.False(t, IsAllowedAttachment("e.gif"))
	assert.False(t, IsAllowedAttachment("f.exe"))
}

func TestIsImageAttachment(t *testing.T) {
	assert.True(t, IsImageAttachment("a.jpg"))
	assert.True(t, IsImageAttachment("b.png"))
	assert.False(t, IsImageAttachment("c.pdf"))
}
