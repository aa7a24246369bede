package cli

import (
	"strings"

	"github.com/spf13/pflag"

	"github.com/jmylchreest/inclusive/internal/config"
	"github.com/jmylchreest/inclusive/internal/report"
	"github.com/jmylchreest/inclusive/pkg/cvd"
)

// typeValue is a pflag.Value for a single BlindnessType.
type typeValue struct {
	target *cvd.BlindnessType
}

var _ pflag.Value = (*typeValue)(nil)

func newTypeValue(target *cvd.BlindnessType) *typeValue {
	return &typeValue{target: target}
}

func (v *typeValue) String() string {
	if v.target == nil {
		return ""
	}
	return v.target.String()
}

func (v *typeValue) Set(s string) error {
	t, err := cvd.ParseBlindnessType(s)
	if err != nil {
		return err
	}
	*v.target = t
	return nil
}

func (v *typeValue) Type() string { return "type" }

// typeListValue is a pflag.SliceValue collecting BlindnessTypes from
// repeated or comma-separated flags.
type typeListValue struct {
	target  *[]cvd.BlindnessType
	changed bool
}

var _ pflag.SliceValue = (*typeListValue)(nil)

func newTypeListValue(target *[]cvd.BlindnessType) *typeListValue {
	return &typeListValue{target: target}
}

func (v *typeListValue) String() string {
	return "[" + strings.Join(v.GetSlice(), ",") + "]"
}

func (v *typeListValue) Set(s string) error {
	var parsed []cvd.BlindnessType
	for _, name := range strings.Split(s, ",") {
		t, err := cvd.ParseBlindnessType(name)
		if err != nil {
			return err
		}
		parsed = append(parsed, t)
	}
	if !v.changed {
		*v.target = parsed
		v.changed = true
	} else {
		*v.target = append(*v.target, parsed...)
	}
	return nil
}

func (v *typeListValue) Type() string { return "types" }

func (v *typeListValue) Append(s string) error {
	t, err := cvd.ParseBlindnessType(s)
	if err != nil {
		return err
	}
	*v.target = append(*v.target, t)
	return nil
}

func (v *typeListValue) Replace(names []string) error {
	types := make([]cvd.BlindnessType, 0, len(names))
	for _, name := range names {
		t, err := cvd.ParseBlindnessType(name)
		if err != nil {
			return err
		}
		types = append(types, t)
	}
	*v.target = types
	return nil
}

func (v *typeListValue) GetSlice() []string {
	names := make([]string, len(*v.target))
	for i, t := range *v.target {
		names[i] = t.String()
	}
	return names
}

// formatValue is a pflag.Value for an output format.
type formatValue struct {
	target *report.Format
}

func newFormatValue(target *report.Format) *formatValue {
	return &formatValue{target: target}
}

func (v *formatValue) String() string { return string(*v.target) }

func (v *formatValue) Set(s string) error {
	f, err := report.ParseFormat(s)
	if err != nil {
		return err
	}
	*v.target = f
	return nil
}

func (v *formatValue) Type() string { return "format" }

// previewValue is a pflag.Value for a preview mode.
type previewValue struct {
	target *config.PreviewMode
}

func newPreviewValue(target *config.PreviewMode) *previewValue {
	return &previewValue{target: target}
}

func (v *previewValue) String() string { return string(*v.target) }

func (v *previewValue) Set(s string) error {
	m, err := config.ParsePreviewMode(s)
	if err != nil {
		return err
	}
	*v.target = m
	return nil
}

func (v *previewValue) Type() string { return "mode" }
