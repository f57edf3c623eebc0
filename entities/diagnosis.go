package entities

const (
	SourceModel = "model"
	SourceMock  = "mock"
)

type Diagnosis struct {
	DiagnosisID string   `json:"diagnosis_id"`
	Disease     string   `json:"disease"`
	Confidence  float64  `json:"confidence"`
	Source      string   `json:"source"`
	Treatment   []string `json:"treatment"`
	ImageSHA256 string   `json:"image_sha256"`
}
