package projects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategory(t *testing.T) {
	tests := []struct {
		name     string
		repo     string
		language string
		want     string
	}{
		{"audio keyword", "Voice-Spoof-Detector", "Python", "Audio Security · ML"},
		{"eye keyword", "eye-disease-classifier", "Python", "Healthcare · Deep Learning"},
		{"health keyword", "medicine-overdose-alert", "", "Healthcare · ML"},
		{"agriculture keyword", "crop-yield", "R", "Agriculture · Deep Learning"},
		{"environment keyword", "forest-fire-risk", "Python", "Environment · ML"},
		{"heritage keyword", "tamil-paintings", "", "Cultural Heritage · CV"},
		{"nlp keyword", "campus-chatbot", "JavaScript", "NLP · Chatbot"},
		{"shop keyword", "ecommerce-site", "HTML", "Web · JavaScript"},
		{"portfolio keyword", "portfolio", "CSS", "Web · Personal"},
		{"python fallback", "sorting", "Python", "Python · ML"},
		{"javascript fallback", "todo", "JavaScript", "Web · JavaScript"},
		{"r fallback", "analysis", "R", "Data Analysis · R"},
		{"notebook fallback", "eda", "Jupyter Notebook", "Data Science · Notebook"},
		{"other language", "kernel", "Go", "Go · Project"},
		{"no language", "notes", "", "Project"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Category(tt.repo, tt.language))
		})
	}
}

func TestCategory_KeywordPriority(t *testing.T) {
	// "voice" outranks "health" even though both match
	assert.Equal(t, "Audio Security · ML", Category("health-voice", "Python"))
	// "eye" is checked before "fire"
	assert.Equal(t, "Healthcare · Deep Learning", Category("fire-eye", ""))
}

func TestCategory_Deterministic(t *testing.T) {
	for i := 0; i < 10; i++ {
		assert.Equal(t, Category("crop-disease", "Python"), Category("crop-disease", "Python"))
	}
}
