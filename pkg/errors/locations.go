package errors

// LocationType represents if the location is the source of the error or a helpful hint
type LocationType uint8

const (
	LocError LocationType = iota
	LocHelp
)

// SrcLocation marks the part of an expression that caused the error,
// or that a hint to the end user refers to.
//
// Start and End are byte offsets into the expression the error was raised
// for, with End being exclusive.
type SrcLocation struct {
	LocType LocationType
	Text    string
	Start   int
	End     int
}

// Len reports the number of bytes covered by the location.
func (l SrcLocation) Len() int {
	return l.End - l.Start
}

type LocationOption func(*SrcLocation)

// AsHelp allows you to set a SrcLocation's text and mark it as a a helpful hint
//
// Pass this option in when you give the error [Template] a src location
func AsHelp(helpText string) LocationOption {
	return func(loc *SrcLocation) {
		loc.LocType = LocHelp
		loc.Text = helpText
	}
}
