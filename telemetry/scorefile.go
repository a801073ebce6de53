package telemetry

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ScoreFile persists the best score as a small YAML document.
type ScoreFile struct {
	path string
}

type scoreDoc struct {
	HighScore int `yaml:"high_score"`
}

// NewScoreFile returns a store at path. An empty path resolves to
// riverraid/highscore.yaml under the user config directory.
func NewScoreFile(path string) (*ScoreFile, error) {
	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("locating config dir: %w", err)
		}
		path = filepath.Join(dir, "riverraid", "highscore.yaml")
	}
	return &ScoreFile{path: path}, nil
}

// Path returns the file location.
func (s *ScoreFile) Path() string {
	return s.path
}

// Load returns the stored score. A missing file is a score of zero.
func (s *ScoreFile) Load() (int, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("reading high score: %w", err)
	}

	var doc scoreDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return 0, fmt.Errorf("parsing high score: %w", err)
	}
	if doc.HighScore < 0 {
		return 0, fmt.Errorf("parsing high score: negative value %d", doc.HighScore)
	}
	return doc.HighScore, nil
}

// Save writes the score, creating the parent directory if needed.
func (s *ScoreFile) Save(score int) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("creating high score dir: %w", err)
	}
	data, err := yaml.Marshal(scoreDoc{HighScore: score})
	if err != nil {
		return fmt.Errorf("marshaling high score: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("writing high score: %w", err)
	}
	return nil
}
