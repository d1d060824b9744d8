// Package storage espeja las fotos originales en un bucket S3 compatible.
// La fila de Postgres sigue siendo la copia canónica; el espejo existe para
// respaldos y está apagado si no hay bucket configurado.
package storage

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/armariolabs/armario-api/internal/config"
)

type Mirror struct {
	client *s3.Client
	bucket string
}

// NewMirror devuelve nil si la configuración de S3 está vacía; los handlers
// tratan el espejo nil como desactivado.
func NewMirror(cfg *config.Config) *Mirror {
	if cfg.S3Bucket == "" {
		return nil
	}

	awsCfg := aws.Config{
		Region: cfg.S3Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey, cfg.S3SecretKey, "",
		),
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			o.UsePathStyle = true
		}
	})

	return &Mirror{client: client, bucket: cfg.S3Bucket}
}

// Upload sube los bytes bajo garments/<uuid> y devuelve la clave.
func (m *Mirror) Upload(ctx context.Context, data []byte, mimeType string) (string, error) {
	key := fmt.Sprintf("garments/%s", uuid.NewString())

	_, err := m.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(m.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(mimeType),
	})
	if err != nil {
		return "", err
	}
	return key, nil
}

func (m *Mirror) Delete(ctx context.Context, key string) error {
	_, err := m.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(m.bucket),
		Key:    aws.String(key),
	})
	return err
}
