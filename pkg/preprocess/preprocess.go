// Package preprocess prepares numeric datasets for model training:
// missing-value imputation, outlier clamping, normalization and
// train/test splitting.
package preprocess

import (
	"errors"
	"math"
	"math/rand"
	"sort"
)

// DataPoint is one row of a dataset. A nil feature value means missing.
type DataPoint struct {
	ID       string
	Features map[string]*float64
	Label    *float64
}

// Strategy selects how missing feature values are replaced
type Strategy string

const (
	StrategyMean   Strategy = "mean"
	StrategyMedian Strategy = "median"
	StrategyMode   Strategy = "mode"
	StrategyDrop   Strategy = "drop"
)

var (
	// ErrEmptyDataset is returned when a transform receives no data points
	ErrEmptyDataset = errors.New("preprocess: empty dataset")

	// ErrUnknownStrategy is returned for strategies other than
	// mean, median, mode, drop
	ErrUnknownStrategy = errors.New("preprocess: unknown strategy")
)

// clone deep-copies the dataset so transforms never mutate their input
func clone(data []DataPoint) []DataPoint {
	out := make([]DataPoint, len(data))
	for i, point := range data {
		features := make(map[string]*float64, len(point.Features))
		for name, value := range point.Features {
			if value == nil {
				features[name] = nil
				continue
			}
			v := *value
			features[name] = &v
		}
		out[i] = DataPoint{ID: point.ID, Features: features, Label: point.Label}
	}
	return out
}

// featureNames returns the feature names of the first point, sorted for
// deterministic iteration
func featureNames(data []DataPoint) []string {
	names := make([]string, 0, len(data[0].Features))
	for name := range data[0].Features {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// HandleMissingValues fills (or drops) missing feature values.
// Mean, median and mode are computed per feature over the present values.
func HandleMissingValues(data []DataPoint, strategy Strategy) ([]DataPoint, error) {
	if len(data) == 0 {
		return nil, ErrEmptyDataset
	}

	if strategy == StrategyDrop {
		out := make([]DataPoint, 0, len(data))
		for _, point := range clone(data) {
			complete := true
			for _, value := range point.Features {
				if value == nil {
					complete = false
					break
				}
			}
			if complete {
				out = append(out, point)
			}
		}
		return out, nil
	}

	if strategy != StrategyMean && strategy != StrategyMedian && strategy != StrategyMode {
		return nil, ErrUnknownStrategy
	}

	processed := clone(data)
	for _, feature := range featureNames(data) {
		var valid []float64
		for _, point := range processed {
			if value := point.Features[feature]; value != nil {
				valid = append(valid, *value)
			}
		}
		if len(valid) == 0 {
			continue
		}

		var replacement float64
		switch strategy {
		case StrategyMean:
			sum := 0.0
			for _, v := range valid {
				sum += v
			}
			replacement = sum / float64(len(valid))
		case StrategyMedian:
			sorted := append([]float64(nil), valid...)
			sort.Float64s(sorted)
			replacement = sorted[len(sorted)/2]
		case StrategyMode:
			replacement = mode(valid)
		}

		for _, point := range processed {
			if point.Features[feature] == nil {
				v := replacement
				point.Features[feature] = &v
			}
		}
	}

	return processed, nil
}

// mode returns the most frequent value; ties go to the smallest value
func mode(values []float64) float64 {
	counts := make(map[float64]int)
	for _, v := range values {
		counts[v]++
	}

	best := values[0]
	bestCount := 0
	for v, count := range counts {
		if count > bestCount || (count == bestCount && v < best) {
			best = v
			bestCount = count
		}
	}
	return best
}

// HandleOutliers clamps each feature into [Q1 - t*IQR, Q3 + t*IQR] using the
// interquartile range. Missing values are left untouched; impute first.
func HandleOutliers(data []DataPoint, threshold float64) ([]DataPoint, error) {
	if len(data) == 0 {
		return nil, ErrEmptyDataset
	}

	processed := clone(data)
	for _, feature := range featureNames(data) {
		var values []float64
		for _, point := range processed {
			if value := point.Features[feature]; value != nil {
				values = append(values, *value)
			}
		}
		if len(values) == 0 {
			continue
		}

		sorted := append([]float64(nil), values...)
		sort.Float64s(sorted)

		q1 := sorted[int(float64(len(sorted))*0.25)]
		q3 := sorted[int(float64(len(sorted))*0.75)]
		iqr := q3 - q1

		lower := q1 - threshold*iqr
		upper := q3 + threshold*iqr

		for _, point := range processed {
			value := point.Features[feature]
			if value == nil {
				continue
			}
			if *value < lower {
				*value = lower
			} else if *value > upper {
				*value = upper
			}
		}
	}

	return processed, nil
}

// NormalizeFeatures scales each feature to [0, 1] with min-max scaling.
// A feature with zero range maps to 0.
func NormalizeFeatures(data []DataPoint) ([]DataPoint, error) {
	if len(data) == 0 {
		return nil, ErrEmptyDataset
	}

	processed := clone(data)
	for _, feature := range featureNames(data) {
		min := math.Inf(1)
		max := math.Inf(-1)
		found := false
		for _, point := range processed {
			if value := point.Features[feature]; value != nil {
				min = math.Min(min, *value)
				max = math.Max(max, *value)
				found = true
			}
		}
		if !found {
			continue
		}

		span := max - min
		for _, point := range processed {
			value := point.Features[feature]
			if value == nil {
				continue
			}
			if span == 0 {
				*value = 0
				continue
			}
			*value = (*value - min) / span
		}
	}

	return processed, nil
}

// Split shuffles the dataset and divides it into train and test subsets,
// with testSize as the test fraction (0..1)
func Split(data []DataPoint, testSize float64, rng *rand.Rand) (train, test []DataPoint) {
	shuffled := clone(data)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	splitIndex := int(float64(len(shuffled)) * (1 - testSize))
	return shuffled[:splitIndex], shuffled[splitIndex:]
}
