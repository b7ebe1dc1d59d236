// internal/app/highscore.go
package app

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// HighScore is the persisted best result.
type HighScore struct {
	Score int `yaml:"score"`
	Wave  int `yaml:"wave"`
}

const (
	scoreObject   = "progress"
	scoreProperty = "highscore"
)

// HighScoreManager persists the best score through gdata. A nil gdata
// manager degrades to in-memory only; that is not an error.
type HighScoreManager struct {
	gdataManager *gdata.Manager
	best         HighScore
}

// NewHighScoreManager loads the saved best score if one exists. A load
// failure falls back to a zero score and is reported, not fatal.
func NewHighScoreManager(gdataManager *gdata.Manager) *HighScoreManager {
	m := &HighScoreManager{gdataManager: gdataManager}
	if err := m.load(); err != nil {
		log.Printf("high score load failed: %v (starting fresh)", err)
	}
	return m
}

// Best returns the current best result.
func (m *HighScoreManager) Best() HighScore { return m.best }

// Record keeps the result if it beats the saved best, persisting it.
// Reports whether it was an improvement.
func (m *HighScoreManager) Record(score, wave int) (bool, error) {
	if score <= m.best.Score {
		return false, nil
	}
	m.best = HighScore{Score: score, Wave: wave}
	return true, m.save()
}

func (m *HighScoreManager) load() error {
	if m.gdataManager == nil {
		return nil
	}
	if !m.gdataManager.ObjectPropExists(scoreObject, scoreProperty) {
		return nil
	}
	data, err := m.gdataManager.LoadObjectProp(scoreObject, scoreProperty)
	if err != nil {
		return fmt.Errorf("load high score: %w", err)
	}
	var best HighScore
	if err := yaml.Unmarshal(data, &best); err != nil {
		return fmt.Errorf("unmarshal high score: %w", err)
	}
	m.best = best
	return nil
}

func (m *HighScoreManager) save() error {
	if m.gdataManager == nil {
		return nil
	}
	data, err := yaml.Marshal(m.best)
	if err != nil {
		return fmt.Errorf("marshal high score: %w", err)
	}
	if err := m.gdataManager.SaveObjectProp(scoreObject, scoreProperty, data); err != nil {
		return fmt.Errorf("save high score: %w", err)
	}
	return nil
}
