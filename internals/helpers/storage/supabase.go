// file: internals/helpers/storage/supabase.go
//
// Cliente HTTP do Supabase Storage: upload, download e exclusão de objetos
// no bucket de anexos. Os paths sempre começam com o user_id do dono
// (ex. "<user_id>/20240115-uuid-comprovante.pdf"); o proxy de download
// usa esse prefixo para checar a propriedade do arquivo.
package storage

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"time"

	"github.com/google/uuid"

	"contaspagar_backend/internals/configs"
)

const AttachmentBucket = "bill-attachments"

var httpClient = &http.Client{Timeout: 30 * time.Second}

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)

func sanitizeFilename(filename string) string {
	return unsafeChars.ReplaceAllString(filename, "_")
}

// GenerateUniqueFilename monta "<folder>/<data>-<uuid>-<nome-sanitizado>".
func GenerateUniqueFilename(folder, originalFilename string) string {
	timestamp := time.Now().Format("20060102")
	return fmt.Sprintf("%s/%s-%s-%s", folder, timestamp, uuid.New().String(), sanitizeFilename(originalFilename))
}

func objectURL(bucket, path string) string {
	return fmt.Sprintf("%s/storage/v1/object/%s/%s", configs.SupabaseProjectURL, bucket, path)
}

// Upload envia o objeto para o bucket via PUT autenticado.
func Upload(bucket, path, contentType string, data *bytes.Buffer) error {
	if configs.SupabaseProjectURL == "" || configs.SupabaseServiceKey == "" {
		return fmt.Errorf("SUPABASE_PROJECT_URL ou SUPABASE_SERVICE_ROLE_KEY não definidos")
	}

	req, err := http.NewRequest(http.MethodPut, objectURL(bucket, path), data)
	if err != nil {
		return fmt.Errorf("falha ao montar request de upload: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+configs.SupabaseServiceKey)
	req.Header.Set("Content-Type", contentType)

	resp, err := httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("falha ao enviar upload: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("upload falhou com status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}

// ErrObjectNotFound sinaliza blob inexistente no bucket (vira 404 no proxy).
var ErrObjectNotFound = fmt.Errorf("objeto não encontrado no storage")

// Download baixa o objeto inteiro. Retorna ErrObjectNotFound para 404/400
// do storage (o Supabase responde 400 para key inexistente em alguns casos).
func Download(bucket, path string) ([]byte, error) {
	if configs.SupabaseProjectURL == "" || configs.SupabaseServiceKey == "" {
		return nil, fmt.Errorf("SUPABASE_PROJECT_URL ou SUPABASE_SERVICE_ROLE_KEY não definidos")
	}

	req, err := http.NewRequest(http.MethodGet, objectURL(bucket, path), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+configs.SupabaseServiceKey)

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusBadRequest {
		return nil, ErrObjectNotFound
	}
	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("download falhou com status %d: %s", resp.StatusCode, string(body))
	}

	return io.ReadAll(resp.Body)
}

// Delete remove o objeto do bucket. 404 não é erro (exclusão idempotente).
func Delete(bucket, path string) error {
	req, err := http.NewRequest(http.MethodDelete, objectURL(bucket, path), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+configs.SupabaseServiceKey)

	resp, err := httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 && resp.StatusCode != http.StatusNotFound {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("delete falhou com status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}
