package geometry

import "fmt"

// Mode selects how the photograph is reconciled with the passepartout window
// when their aspect ratios differ.
type Mode int

const (
	// AspectFill scales the photograph so it covers the whole window; the
	// matte hides the overflow.
	AspectFill Mode = iota
	// AspectFit scales the photograph so all of it is visible; the slack shows
	// as white border inside the window.
	AspectFit
)

// Mode names as accepted on the command line and in the config file.
const (
	AspectFillName = "aspectFill"
	AspectFitName  = "aspectFit"
)

// ParseMode converts a mode name into a Mode. Only the exact names are
// accepted; there is no fallback.
func ParseMode(name string) (Mode, error) {
	switch name {
	case AspectFillName:
		return AspectFill, nil
	case AspectFitName:
		return AspectFit, nil
	default:
		return 0, fmt.Errorf("%w: %q (want %q or %q)", ErrInvalidMode, name, AspectFillName, AspectFitName)
	}
}

func (m Mode) String() string {
	switch m {
	case AspectFill:
		return AspectFillName
	case AspectFit:
		return AspectFitName
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}
