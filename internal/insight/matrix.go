// Package insight selects personalized advisory messages from a static
// matrix keyed by category, status level, and demographic condition tag.
package insight

import (
	"github.com/rotisserie/eris"

	"github.com/gulfwise/finclinic/internal/model"
)

// ConditionTag identifies which demographic rule an advisory text
// variant applies to.
type ConditionTag string

const (
	TagIncomeAbove30k    ConditionTag = "income_above_30k"
	TagIncomeBelow30k    ConditionTag = "income_below_30k"
	TagEmiratiWoman      ConditionTag = "emirati_woman"
	TagChildrenZero      ConditionTag = "children_zero"
	TagChildrenAboveZero ConditionTag = "children_above_zero"
	TagElse              ConditionTag = "else"
	TagDefault           ConditionTag = "default"
)

// tagPriority is the fixed evaluation order for condition tags. Income
// framing deliberately precedes family and nationality framing; the
// order is product policy and must not be reordered or made data-driven.
var tagPriority = [...]ConditionTag{
	TagIncomeAbove30k,
	TagIncomeBelow30k,
	TagEmiratiWoman,
	TagChildrenZero,
	TagChildrenAboveZero,
	TagElse,
	TagDefault,
}

var knownTags = func() map[ConditionTag]bool {
	m := make(map[ConditionTag]bool, len(tagPriority))
	for _, t := range tagPriority {
		m[t] = true
	}
	return m
}()

// Entry is one conditional text variant inside a matrix bucket.
type Entry struct {
	Tag    ConditionTag `json:"tag"`
	Text   string       `json:"text"`
	TextAr string       `json:"text_ar"`
}

// BucketKey addresses one matrix bucket.
type BucketKey struct {
	Category model.Category
	Level    model.StatusLevel
}

// Matrix is the immutable insight lookup table. Buckets are sparse: not
// every (category, level) pair defines every tag, but every populated
// bucket must carry a default entry.
type Matrix struct {
	buckets map[BucketKey][]Entry
}

// NewMatrix validates bucket contents and builds a Matrix. Validation
// failures are startup errors; a matrix that could strand a respondent
// without a fallback must never serve requests.
func NewMatrix(buckets map[BucketKey][]Entry) (*Matrix, error) {
	m := &Matrix{buckets: make(map[BucketKey][]Entry, len(buckets))}

	for key, entries := range buckets {
		if !model.ValidCategory(key.Category) {
			return nil, eris.Errorf("insight: bucket has unknown category %q", key.Category)
		}
		if len(entries) == 0 {
			continue // empty bucket contributes nothing; skip rather than store
		}

		seen := make(map[ConditionTag]bool, len(entries))
		hasDefault := false
		for _, e := range entries {
			if !knownTags[e.Tag] {
				return nil, eris.Errorf("insight: bucket %s/%s has unknown tag %q", key.Category, key.Level, e.Tag)
			}
			if seen[e.Tag] {
				return nil, eris.Errorf("insight: bucket %s/%s has duplicate tag %q", key.Category, key.Level, e.Tag)
			}
			if e.Text == "" {
				return nil, eris.Errorf("insight: bucket %s/%s tag %q has empty text", key.Category, key.Level, e.Tag)
			}
			seen[e.Tag] = true
			if e.Tag == TagDefault {
				hasDefault = true
			}
		}
		if !hasDefault {
			return nil, eris.Errorf("insight: bucket %s/%s lacks a default entry", key.Category, key.Level)
		}

		copied := make([]Entry, len(entries))
		copy(copied, entries)
		m.buckets[key] = copied
	}

	return m, nil
}

// Bucket returns the entries for a (category, level) pair; nil when the
// bucket is empty or undefined.
func (m *Matrix) Bucket(cat model.Category, level model.StatusLevel) []Entry {
	return m.buckets[BucketKey{Category: cat, Level: level}]
}

// Resolve walks the fixed tag priority and returns the first entry
// whose condition matches the profile and is present in the bucket.
// ok is false when the bucket is empty or no tag applies.
func (m *Matrix) Resolve(cat model.Category, level model.StatusLevel, p model.Profile) (Entry, bool) {
	entries := m.Bucket(cat, level)
	if len(entries) == 0 {
		return Entry{}, false
	}

	byTag := make(map[ConditionTag]Entry, len(entries))
	for _, e := range entries {
		byTag[e.Tag] = e
	}

	for _, tag := range tagPriority {
		e, present := byTag[tag]
		if !present {
			continue
		}
		if tagMatches(tag, p) {
			return e, true
		}
	}
	return Entry{}, false
}

// tagMatches evaluates a single condition tag against a profile.
func tagMatches(tag ConditionTag, p model.Profile) bool {
	switch tag {
	case TagIncomeAbove30k:
		return p.IncomeBracket.IsHigh()
	case TagIncomeBelow30k:
		return p.IncomeBracket.IsLow()
	case TagEmiratiWoman:
		return p.Nationality == model.NationalityEmirati && p.Gender == model.GenderFemale
	case TagChildrenZero:
		return p.Children == 0
	case TagChildrenAboveZero:
		return p.Children > 0
	case TagElse, TagDefault:
		return true
	default:
		return false
	}
}
