package serviceImp

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"cropadvisor/entities"
	"cropadvisor/pkg/diagnosis/client"
	"cropadvisor/pkg/diagnosis/service"
)

type diagnosisSvc struct {
	primary  client.Classifier
	fallback client.Classifier
	log      *zap.Logger
}

// NewDiagnosisService uses primary when set and falls back to the mock
// classifier when primary is nil or fails.
func NewDiagnosisService(primary client.Classifier, log *zap.Logger) service.DiagnosisService {
	return &diagnosisSvc{primary: primary, fallback: client.NewMock(), log: log}
}

func (s *diagnosisSvc) Diagnose(ctx context.Context, image []byte, contentType string) (*entities.Diagnosis, error) {
	if len(image) == 0 {
		return nil, fmt.Errorf("%w: image is empty", entities.ErrInvalidInput)
	}
	sum := sha256.Sum256(image)
	hash := hex.EncodeToString(sum[:])

	var preds []client.Prediction
	src := s.primary
	if src != nil {
		p, err := src.Classify(ctx, image, contentType)
		if err == nil && len(p) == 0 {
			err = fmt.Errorf("%w: no predictions", entities.ErrUpstream)
		}
		if err != nil {
			s.log.Warn("classifier failed, using mock", zap.String("image_sha256", hash), zap.Error(err))
			src = nil
		}
		preds = p
	}
	if src == nil {
		src = s.fallback
		p, err := src.Classify(ctx, image, contentType)
		if err != nil {
			return nil, fmt.Errorf("mock classify: %w", err)
		}
		preds = p
	}

	top := preds[0]
	return &entities.Diagnosis{
		DiagnosisID: uuid.NewString(),
		Disease:     top.Label,
		Confidence:  min(max(top.Score, 0), 1),
		Source:      src.Name(),
		Treatment:   treatmentFor(top.Label),
		ImageSHA256: hash,
	}, nil
}
