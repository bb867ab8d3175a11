// Package intent detects a current mood and desired feeling from a free-text
// chat message.
package intent

import "strings"

// Defaults used when no keyword matches.
const (
	DefaultMood    = "bored"
	DefaultFeeling = "feel-good"
)

type keywordSet struct {
	name     string
	keywords []string
}

// Keyword tables in priority order; earlier entries win ties.
var moodKeywords = []keywordSet{
	{"stressed", []string{"stressed", "stress", "overwhelmed", "anxious", "anxiety", "tense", "pressure"}},
	{"sad", []string{"sad", "depressed", "down", "unhappy", "lonely", "melancholy", "blue", "crying"}},
	{"bored", []string{"bored", "boring", "nothing to do", "uninterested", "dull"}},
	{"happy", []string{"happy", "good", "great", "excited", "joyful", "cheerful"}},
	{"tired", []string{"tired", "exhausted", "sleepy", "worn out", "fatigued"}},
	{"angry", []string{"angry", "frustrated", "annoyed", "mad", "furious"}},
	{"lonely", []string{"lonely", "alone", "isolated", "single"}},
	{"romantic", []string{"romantic", "love", "date night", "partner", "couple"}},
	{"curious", []string{"curious", "interesting", "learn", "documentary", "educational"}},
	{"adventurous", []string{"adventurous", "adventure", "explore", "exciting"}},
}

var feelingKeywords = []keywordSet{
	{"feel-good", []string{"feel good", "feel-good", "uplifting", "positive", "happy ending", "light", "cheerful"}},
	{"thrilled", []string{"thrilling", "thriller", "exciting", "action", "edge of seat", "adrenaline", "intense"}},
	{"inspired", []string{"inspired", "inspiring", "motivating", "motivation", "uplifting", "triumphant"}},
	{"cry", []string{"cry", "crying", "emotional", "tearjerker", "sad movie", "cathartic"}},
	{"laugh", []string{"laugh", "funny", "comedy", "hilarious", "humor"}},
	{"think", []string{"think", "thought-provoking", "mind-bending", "intellectual", "smart", "clever"}},
	{"scared", []string{"scared", "scary", "horror", "frightening", "terrifying", "creepy"}},
	{"romantic", []string{"romantic", "romance", "love story", "relationship"}},
	{"relaxed", []string{"relaxed", "relaxing", "calm", "peaceful", "cozy", "comfort"}},
	{"amazed", []string{"amazed", "amazing", "spectacular", "epic", "visually stunning"}},
}

// Intent is the mood pair read from a message.
type Intent struct {
	CurrentMood    string `json:"detected_mood"`
	DesiredFeeling string `json:"detected_feeling"`
}

// Detect reads the message case-insensitively. Keywords match as substrings;
// the entry with the most matched keywords wins.
func Detect(message string) Intent {
	text := strings.ToLower(message)

	in := Intent{
		CurrentMood:    bestMatch(text, moodKeywords, DefaultMood),
		DesiredFeeling: bestMatch(text, feelingKeywords, DefaultFeeling),
	}

	// Situational phrases override keyword counts
	if strings.Contains(text, "sunday") && (strings.Contains(text, "rainy") || strings.Contains(text, "lazy")) {
		in.DesiredFeeling = "relaxed"
	}
	if strings.Contains(text, "date") {
		in.DesiredFeeling = "romantic"
	}
	if strings.Contains(text, "can't sleep") || strings.Contains(text, "insomnia") {
		in.CurrentMood = "anxious"
		in.DesiredFeeling = "relaxed"
	}
	return in
}

func bestMatch(text string, table []keywordSet, fallback string) string {
	best, bestCount := fallback, 0
	for _, set := range table {
		count := 0
		for _, kw := range set.keywords {
			if strings.Contains(text, kw) {
				count++
			}
		}
		if count > bestCount {
			best, bestCount = set.name, count
		}
	}
	return best
}

var replies = map[string]string{
	"feel-good": "I sense you could use some positivity! Here are some uplifting films that'll brighten your day:",
	"thrilled":  "Looking for excitement? These heart-pounding picks will get your adrenaline pumping:",
	"inspired":  "Ready to be motivated? These inspiring films will lift your spirits:",
	"cry":       "Sometimes we all need a good cry. These emotional gems will help you release those feelings:",
	"laugh":     "Laughter is the best medicine! Here are some comedies guaranteed to make you smile:",
	"think":     "Ready for a mental workout? These thought-provoking films will keep your mind engaged:",
	"scared":    "In the mood for some safe scares? These films will thrill without traumatizing:",
	"romantic":  "Love is in the air! These romantic picks are perfect for the mood:",
	"relaxed":   "Time to unwind! These cozy films are perfect for relaxation:",
	"amazed":    "Prepare to be amazed! These visually stunning films will blow your mind:",
}

const genericReply = "Based on what you're looking for, here are my top picks:"

// FallbackReply is sent when a message cannot be answered.
const FallbackReply = "I had trouble understanding that. Could you tell me more about what kind of movie experience you're looking for?"

// Reply returns the canned response line for a desired feeling.
func Reply(feeling string) string {
	if r, ok := replies[strings.ToLower(strings.TrimSpace(feeling))]; ok {
		return r
	}
	return genericReply
}
