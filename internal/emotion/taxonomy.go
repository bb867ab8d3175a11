// Package emotion turns classifier output and genre metadata into emotion
// profiles over a fixed 12-category taxonomy.
package emotion

import (
	"fmt"
	"strings"
)

// Category identifies one of the 12 emotional experiences a movie can offer.
type Category string

// Taxonomy members in declaration order. The order is used to break ties.
const (
	CatharticSadness        Category = "cathartic_sadness"
	ThrillingTension        Category = "thrilling_tension"
	MindBlown               Category = "mind_blown"
	PureJoy                 Category = "pure_joy"
	BittersweetHope         Category = "bittersweet_hope"
	RighteousAnger          Category = "righteous_anger"
	CozyComfort             Category = "cozy_comfort"
	ControlledFear          Category = "controlled_fear"
	IntellectualStimulation Category = "intellectual_stimulation"
	RomanticWarmth          Category = "romantic_warmth"
	TriumphantInspired      Category = "triumphant_inspired"
	AweWonder               Category = "awe_wonder"
)

// CategoryInfo is the descriptive metadata attached to a taxonomy member.
type CategoryInfo struct {
	ID            Category `json:"id"`
	DisplayName   string   `json:"display_name"`
	Emoji         string   `json:"emoji"`
	Description   string   `json:"description"`
	Valence       float64  `json:"valence"`   // -1 (negative) to 1 (positive)
	Arousal       float64  `json:"arousal"`   // 0 (calm) to 1 (excited)
	Dominance     float64  `json:"dominance"` // 0 (powerless) to 1 (in control)
	Group         string   `json:"group"`
	Color         string   `json:"color"`
	ExampleMovies []string `json:"example_movies"`
}

var taxonomy = []CategoryInfo{
	{CatharticSadness, "Cathartic Sadness", "😢", "Deep emotional release through tears", -0.3, 0.4, 0.3, "release", "#6B7FD7", []string{"The Notebook", "Schindler's List", "CODA"}},
	{ThrillingTension, "Thrilling Tension", "😰", "Edge-of-seat excitement and suspense", 0.2, 0.9, 0.4, "excitement", "#FF6B6B", []string{"Sicario", "No Country for Old Men", "Se7en"}},
	{MindBlown, "Mind-Blown", "🤯", "Intellectual surprise and revelation", 0.7, 0.8, 0.6, "stimulation", "#9B59B6", []string{"Inception", "The Prestige", "Memento"}},
	{PureJoy, "Pure Joy", "😂", "Laughter and feel-good happiness", 0.9, 0.7, 0.7, "positive", "#F1C40F", []string{"The Hangover", "Superbad", "Bridesmaids"}},
	{BittersweetHope, "Bittersweet Hope", "🥹", "Melancholy mixed with optimism", 0.3, 0.5, 0.5, "complex", "#1ABC9C", []string{"CODA", "The Pursuit of Happyness", "Life is Beautiful"}},
	{RighteousAnger, "Righteous Anger", "😤", "Satisfying justice and vindication", 0.4, 0.8, 0.9, "empowerment", "#E74C3C", []string{"John Wick", "Kill Bill", "Django Unchained"}},
	{CozyComfort, "Cozy Comfort", "🫠", "Warm, safe, and relaxing", 0.8, 0.2, 0.6, "calm", "#FFB347", []string{"Paddington", "The Holiday", "Julie & Julia"}},
	{ControlledFear, "Controlled Fear", "😱", "Safe thrills and scary fun", 0.1, 0.85, 0.3, "excitement", "#2C3E50", []string{"A Quiet Place", "Get Out", "The Conjuring"}},
	{IntellectualStimulation, "Intellectual Stimulation", "🤔", "Deep thinking and contemplation", 0.5, 0.5, 0.6, "stimulation", "#3498DB", []string{"Arrival", "Ex Machina", "Blade Runner 2049"}},
	{RomanticWarmth, "Romantic Warmth", "❤️‍🔥", "Love, passion, and connection", 0.85, 0.6, 0.5, "positive", "#FF69B4", []string{"Before Sunrise", "The Notebook", "Pride and Prejudice"}},
	{TriumphantInspired, "Triumphant & Inspired", "🏆", "Motivation and empowerment", 0.9, 0.75, 0.9, "empowerment", "#27AE60", []string{"Rocky", "The Shawshank Redemption", "Whiplash"}},
	{AweWonder, "Awe & Wonder", "🌌", "Beautiful vastness and amazement", 0.8, 0.6, 0.4, "transcendent", "#8E44AD", []string{"Interstellar", "Avatar", "Planet Earth"}},
}

var categoryIndex = func() map[Category]int {
	idx := make(map[Category]int, len(taxonomy))
	for i, info := range taxonomy {
		idx[info.ID] = i
	}
	return idx
}()

// All returns the taxonomy identifiers in declaration order.
func All() []Category {
	out := make([]Category, len(taxonomy))
	for i, info := range taxonomy {
		out[i] = info.ID
	}
	return out
}

// Categories returns the full taxonomy metadata in declaration order.
func Categories() []CategoryInfo {
	out := make([]CategoryInfo, len(taxonomy))
	for i, info := range taxonomy {
		info.ExampleMovies = append([]string(nil), info.ExampleMovies...)
		out[i] = info
	}
	return out
}

// Info returns the metadata for c.
func Info(c Category) (CategoryInfo, bool) {
	i, ok := categoryIndex[c]
	if !ok {
		return CategoryInfo{}, false
	}
	return taxonomy[i], true
}

// Index returns the declaration position of c, or -1 if c is not a member.
func (c Category) Index() int {
	if i, ok := categoryIndex[c]; ok {
		return i
	}
	return -1
}

// Valid reports whether c is a taxonomy member.
func (c Category) Valid() bool {
	_, ok := categoryIndex[c]
	return ok
}

// Phrase renders c for prose: "cozy_comfort" becomes "cozy comfort".
func (c Category) Phrase() string {
	return strings.ReplaceAll(string(c), "_", " ")
}

// DisplayName returns the human-facing name, falling back to Phrase.
func (c Category) DisplayName() string {
	if info, ok := Info(c); ok {
		return info.DisplayName
	}
	return c.Phrase()
}

// ParseCategory validates a raw identifier such as "pure_joy".
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", fmt.Errorf("unknown emotion category %q", s)
	}
	return c, nil
}

// Scores maps taxonomy categories to strengths in [0,1].
type Scores map[Category]float64
