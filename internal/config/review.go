package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/online-go/movereview/internal/common"
	"github.com/online-go/movereview/internal/model"
	"github.com/online-go/movereview/internal/review"
	"github.com/spf13/viper"
)

// DefaultWatchDebounce coalesces bursts of writes to a streaming review file.
const DefaultWatchDebounce = 500 * time.Millisecond

var settingsValidate = validator.New()

// ReviewSettings controls how reviews are categorized.
type ReviewSettings struct {
	Engine                string             `validate:"required"`
	Method                model.Method       `validate:"oneof=old new"`
	Thresholds            model.ThresholdSet
	IncludeNegativeScores bool
}

// SetDefaults registers default values for every review setting.
func SetDefaults() {
	defaults := model.DefaultThresholds()

	viper.SetDefault("database.path", DefaultDatabasePath)
	viper.SetDefault("review.engine", review.RecognizedEngine)
	viper.SetDefault("review.method", string(model.MethodOld))
	viper.SetDefault("review.include_negative_scores", false)
	viper.SetDefault("thresholds.excellent", defaults.Excellent)
	viper.SetDefault("thresholds.great", defaults.Great)
	viper.SetDefault("thresholds.good", defaults.Good)
	viper.SetDefault("thresholds.inaccuracy", defaults.Inaccuracy)
	viper.SetDefault("thresholds.mistake", defaults.Mistake)
	viper.SetDefault("watch.debounce", DefaultWatchDebounce)
}

// LoadReviewSettings reads review settings from Viper (config file or
// MOVEREVIEW_ env vars), falling back to the defaults.
func LoadReviewSettings() (ReviewSettings, error) {
	method, ok := model.ParseMethod(viper.GetString("review.method"))
	if !ok {
		return ReviewSettings{}, fmt.Errorf("%w: review.method %q", common.ErrInvalidConfig, viper.GetString("review.method"))
	}

	thresholds, err := LoadThresholds()
	if err != nil {
		return ReviewSettings{}, err
	}

	settings := ReviewSettings{
		Engine:                viper.GetString("review.engine"),
		Method:                method,
		Thresholds:            thresholds,
		IncludeNegativeScores: viper.GetBool("review.include_negative_scores"),
	}
	if settings.Engine == "" {
		settings.Engine = review.RecognizedEngine
	}

	if err := settingsValidate.Struct(settings); err != nil {
		return ReviewSettings{}, fmt.Errorf("%w: %v", common.ErrInvalidConfig, err)
	}

	return settings, nil
}

// LoadThresholds reads the thresholds section. Unset keys keep their defaults.
func LoadThresholds() (model.ThresholdSet, error) {
	thresholds := model.DefaultThresholds()
	for key, bound := range map[string]*float64{
		"thresholds.excellent":  &thresholds.Excellent,
		"thresholds.great":      &thresholds.Great,
		"thresholds.good":       &thresholds.Good,
		"thresholds.inaccuracy": &thresholds.Inaccuracy,
		"thresholds.mistake":    &thresholds.Mistake,
	} {
		if viper.IsSet(key) {
			*bound = viper.GetFloat64(key)
		}
	}

	if err := ValidateThresholds(thresholds); err != nil {
		return model.ThresholdSet{}, err
	}

	return thresholds, nil
}

// ValidateThresholds rejects negative bounds. Bounds that do not increase
// are allowed but produce odd tables, so they are only logged.
func ValidateThresholds(t model.ThresholdSet) error {
	if err := settingsValidate.Struct(t); err != nil {
		return fmt.Errorf("%w: thresholds: %v", common.ErrInvalidConfig, err)
	}

	if !t.IsMonotonic() {
		slog.Warn("Thresholds do not increase from excellent to mistake",
			"excellent", t.Excellent,
			"great", t.Great,
			"good", t.Good,
			"inaccuracy", t.Inaccuracy,
			"mistake", t.Mistake)
	}

	return nil
}

// WatchDebounce returns the configured debounce window for watch mode.
func WatchDebounce() time.Duration {
	if d := viper.GetDuration("watch.debounce"); d > 0 {
		return d
	}
	return DefaultWatchDebounce
}
