package models

// AlertType determina solo la severidad visual de una alerta
type AlertType string

const (
	AlertWarning AlertType = "warning"
	AlertError   AlertType = "error"
	AlertInfo    AlertType = "info"
)

// Severity retorna un rango numérico: error > warning > info
func (t AlertType) Severity() int {
	switch t {
	case AlertError:
		return 2
	case AlertWarning:
		return 1
	default:
		return 0
	}
}

// Alert es una alerta con recomendación estilo IA
type Alert struct {
	ID             string    `json:"id" yaml:"id"`
	Type           AlertType `json:"type" yaml:"type"`
	Message        string    `json:"message" yaml:"message"`
	Timestamp      string    `json:"timestamp" yaml:"timestamp"`
	Recommendation string    `json:"recommendation" yaml:"recommendation"`
}
