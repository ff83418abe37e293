package mapper

import (
	"time"

	"github.com/roguepikachu/petshop/pkg"
)

func formatTime(t time.Time) *string {
	if t.IsZero() {
		return nil
	}
	v := t.UTC().Format(pkg.TimeFormat)
	return &v
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	return formatTime(*t)
}
