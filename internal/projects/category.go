package projects

import "strings"

// keywordRule maps name keywords to a category label
type keywordRule struct {
	keywords []string
	label    string
}

// keywordRules are checked in order; the first match wins.
var keywordRules = []keywordRule{
	{[]string{"voice", "spoof", "audio"}, "Audio Security · ML"},
	{[]string{"eye", "disease"}, "Healthcare · Deep Learning"},
	{[]string{"medicine", "overdose", "health"}, "Healthcare · ML"},
	{[]string{"agriculture", "crop", "farm"}, "Agriculture · Deep Learning"},
	{[]string{"forest", "fire"}, "Environment · ML"},
	{[]string{"paint", "tamil", "heritage"}, "Cultural Heritage · CV"},
	{[]string{"chatbot", "qa", "nlp", "question"}, "NLP · Chatbot"},
	{[]string{"ecommerce", "shop", "store"}, "Web · JavaScript"},
	{[]string{"portfolio"}, "Web · Personal"},
}

var languageLabels = map[string]string{
	"python":           "Python · ML",
	"javascript":       "Web · JavaScript",
	"r":                "Data Analysis · R",
	"jupyter notebook": "Data Science · Notebook",
}

// Category derives a card's category label from a repository name and
// primary language. Name keywords take precedence over the language.
func Category(name, language string) string {
	lower := strings.ToLower(name)
	for _, rule := range keywordRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.label
			}
		}
	}

	if label, ok := languageLabels[strings.ToLower(language)]; ok {
		return label
	}
	if language != "" {
		return language + " · Project"
	}
	return "Project"
}
