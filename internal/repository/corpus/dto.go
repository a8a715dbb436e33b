package corpus

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/kailas-cloud/designdex/internal/domain"
)

// corpusFile is the YAML-serializable shape of one domain corpus.
type corpusFile struct {
	Records []map[string]string `yaml:"records"`
}

// recordsFromYAML hydrates domain Records from corpus file bytes.
func recordsFromYAML(data []byte) ([]domain.Record, error) {
	var file corpusFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("unmarshal records: %w", err)
	}

	records := make([]domain.Record, len(file.Records))
	for i, row := range file.Records {
		records[i] = domain.Record(row)
	}
	return records, nil
}
