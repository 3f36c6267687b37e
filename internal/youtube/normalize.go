package youtube

import (
	"errors"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// candidate is the record assembled from a provider response before it is normalized.
type candidate struct {
	ID           string `json:"id" validate:"required"`
	Title        string `json:"title" validate:"required"`
	ThumbnailURL string `json:"thumbnailUrl" validate:"omitempty,url"`
	ChannelName  string `json:"channelName" validate:"required"`
	ViewsCount   int64  `json:"viewsCount" validate:"gte=0"`
	PublishedAt  string `json:"publishedAt" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	Duration     string `json:"duration"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return v
}

func validateCandidate(c candidate) error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	verr := &ValidationError{VideoID: c.ID}
	for _, fe := range fieldErrs {
		verr.Fields = append(verr.Fields, FieldError{Field: fe.Field(), Rule: fe.Tag(), Value: fe.Value()})
	}
	return verr
}

// resolveThumbnail returns the highest resolution URL available.
func resolveThumbnail(t Thumbnails) string {
	for _, u := range []string{t.Maxres, t.Standard, t.High, t.Medium, t.Default} {
		if u != "" {
			return u
		}
	}
	return ""
}

// parseViewCount parses a base-10 view count. Missing or malformed values count as zero.
func parseViewCount(raw string) int64 {
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

var (
	durationPattern  = regexp.MustCompile(`^PT(\d+H)?(\d+M)?(\d+S)?$`)
	durationReplacer = strings.NewReplacer("H", ":", "M", ":", "S", "")
)

// normalizeDuration turns "PT1H2M3S" into "1:2:3". Units are substituted as written, so
// absent units leave no placeholder ("PT1H3S" becomes "1:3"). Only the PT[nH][nM][nS]
// form is accepted; day, week and fractional-second durations report false.
func normalizeDuration(raw string) (string, bool) {
	if raw == "PT" || !durationPattern.MatchString(raw) {
		return "", false
	}
	clock := durationReplacer.Replace(strings.TrimPrefix(raw, "PT"))
	return strings.TrimSuffix(clock, ":"), true
}
