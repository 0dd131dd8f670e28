package mood

import (
	"math"
	"strings"

	"github.com/zhouzirui/mood-mirror/backend/internal/model/mood"
	"github.com/zhouzirui/mood-mirror/backend/internal/random"
)

// WeakDefaultConfidence marks a calm result that was not actually inferred.
const WeakDefaultConfidence = 0.60

// keywordBucket maps a synonym group onto the mood it votes for.
type keywordBucket struct {
	mood       mood.Mood
	confidence float64
	keywords   []string
}

// keywordBuckets are checked in order; the first bucket with a hit wins.
var keywordBuckets = []keywordBucket{
	{mood: mood.Tired, confidence: 0.85, keywords: []string{"tired", "sleepy", "exhausted", "drained"}},
	{mood: mood.Happy, confidence: 0.92, keywords: []string{"happy", "good", "great", "joy", "awesome"}},
	{mood: mood.Anxious, confidence: 0.78, keywords: []string{"anxious", "worried", "stress", "nervous", "tense"}},
	{mood: mood.Energized, confidence: 0.88, keywords: []string{"excited", "energy", "pumped", "ready"}},
	// sadness is served restful content
	{mood: mood.Tired, confidence: 0.80, keywords: []string{"sad", "down", "depressed", "blue"}},
	// anger is served calming content
	{mood: mood.Anxious, confidence: 0.75, keywords: []string{"angry", "mad", "frustrated"}},
	{mood: mood.Calm, confidence: 0.90, keywords: []string{"calm", "chill", "relax", "peace"}},
}

// faceMoods is the pool the face-scan stand-in draws from.
var faceMoods = []mood.Mood{mood.Calm, mood.Energized, mood.Happy, mood.Tired, mood.Anxious}

const (
	faceConfidenceMin  = 0.70
	faceConfidenceSpan = 0.25
)

// Classifier is the deterministic local fallback for mood detection.
type Classifier struct {
	rnd random.Source
}

// NewClassifier returns a Classifier that draws face-scan results from rnd.
func NewClassifier(rnd random.Source) *Classifier {
	return &Classifier{rnd: rnd}
}

// Classify infers a mood and confidence. Energy and Intent are left empty.
//
// The face method has no image model behind it: it returns a uniformly random
// mood with a confidence in [0.70, 0.95]. The result is not a real signal.
func (c *Classifier) Classify(method mood.Method, text string) mood.Assessment {
	if method == mood.MethodFace {
		return c.simulateFaceScan()
	}
	return ClassifyText(text)
}

// ClassifyText runs the keyword buckets over text.
func ClassifyText(text string) mood.Assessment {
	normalized := strings.ToLower(strings.TrimSpace(text))
	if normalized == "" {
		return mood.Assessment{Mood: mood.Calm, Confidence: WeakDefaultConfidence}
	}

	for _, bucket := range keywordBuckets {
		for _, word := range bucket.keywords {
			if strings.Contains(normalized, word) {
				return mood.Assessment{Mood: bucket.mood, Confidence: bucket.confidence}
			}
		}
	}

	return mood.Assessment{Mood: mood.Calm, Confidence: WeakDefaultConfidence}
}

func (c *Classifier) simulateFaceScan() mood.Assessment {
	picked := faceMoods[c.rnd.IntN(len(faceMoods))]
	confidence := faceConfidenceMin + c.rnd.Float64()*faceConfidenceSpan
	return mood.Assessment{
		Mood:       picked,
		Confidence: math.Round(confidence*100) / 100,
	}
}
