package service

import (
	"context"

	"cropadvisor/entities"
)

type DiagnosisService interface {
	Diagnose(ctx context.Context, image []byte, contentType string) (*entities.Diagnosis, error)
}
