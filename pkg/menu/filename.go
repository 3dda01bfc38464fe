package menu

import (
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/hazyhaar/stanfood-menus/pkg/text"
)

// DateLayout is the MM-DD-YYYY form used in file names and output.
const DateLayout = "01-02-2006"

var fileNamePattern = regexp.MustCompile(`^(.+)_(\d{1,2}-\d{1,2}-\d{4})_(.+)\.(?i:csv)$`)

// ParseFilename decodes "<location>_<M-D-YYYY>_<meal>.csv". Underscores in
// the location become spaces. ok is false when the name does not match; an
// unparseable date leaves Date empty but keeps the other fields.
func ParseFilename(name string) (o Origin, ok bool) {
	o, _, ok = parseFilename(name)
	return o, ok
}

// parseFilename also returns the date as written, for diagnostics.
func parseFilename(name string) (o Origin, rawDate string, ok bool) {
	m := fileNamePattern.FindStringSubmatch(filepath.Base(name))
	if m == nil {
		return Origin{}, "", false
	}

	o.Location = text.Normalize(strings.ReplaceAll(m[1], "_", " "))
	o.MealTime = text.Normalize(m[3])

	if d, err := time.Parse("1-2-2006", m[2]); err == nil {
		o.Date = d.Format(DateLayout)
	}
	return o, m[2], true
}
