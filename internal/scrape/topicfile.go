// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scrape

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// TopicFile is the on-disk vocabulary for the topic filter, so the keyword
// lists can be adjusted without a rebuild.
type TopicFile struct {
	Primary   string   `yaml:"primary"`
	Secondary []string `yaml:"secondary"`
}

// LoadTopicFile reads a YAML vocabulary file and returns the filter it
// describes. The file must name a primary term and at least one secondary
// term; an empty vocabulary would accept nothing and is rejected up front.
func LoadTopicFile(path string) (TopicFilter, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return TopicFilter{}, fmt.Errorf("reading topics file: %w", err)
	}

	var tf TopicFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return TopicFilter{}, fmt.Errorf("parsing topics file: %w", err)
	}

	if tf.Primary == "" {
		return TopicFilter{}, fmt.Errorf("topics file %s: primary term is required", path)
	}
	if len(tf.Secondary) == 0 {
		return TopicFilter{}, fmt.Errorf("topics file %s: at least one secondary term is required", path)
	}

	return TopicFilter{Primary: tf.Primary, Secondary: tf.Secondary}, nil
}
