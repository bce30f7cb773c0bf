package application

import (
	_ "embed"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed samples.yaml
var samplesYAML []byte

// Sample is a canned receipt offered to the browser form for demo runs.
// Amounts stay plain numbers here so the form can echo them back verbatim.
type Sample struct {
	ID          string  `json:"id"          yaml:"id"`
	Name        string  `json:"name"        yaml:"name"`
	OrderID     string  `json:"orderId"     yaml:"orderId"`
	Amount      float64 `json:"amount"      yaml:"amount"`
	Currency    string  `json:"currency"    yaml:"currency"`
	Payer       string  `json:"payer"       yaml:"payer"`
	Description string  `json:"description" yaml:"description"`
	Timestamp   string  `json:"timestamp"   yaml:"timestamp"`
	Source      string  `json:"source"      yaml:"source"`
}

// Samples returns the embedded sample catalog, stamping each entry with the
// current time.
func Samples() ([]Sample, error) {
	var samples []Sample
	if err := yaml.Unmarshal(samplesYAML, &samples); err != nil {
		return nil, fmt.Errorf("parsing sample catalog: %w", err)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	for i := range samples {
		if samples[i].Timestamp == "" {
			samples[i].Timestamp = now
		}
	}
	return samples, nil
}
