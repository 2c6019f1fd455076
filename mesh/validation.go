package mesh

import "strings"

// ErrorCode collects the geometric defects found by Element.Validate
type ErrorCode uint8

const (
	ZeroVolume ErrorCode = 1 << iota
	NonCoplanar
	NonConvex
	NodeOrder
)

var errorCodeNames = []struct {
	flag ErrorCode
	name string
}{
	{ZeroVolume, "ZeroVolume"},
	{NonCoplanar, "NonCoplanar"},
	{NonConvex, "NonConvex"},
	{NodeOrder, "NodeOrder"},
}

func (ec ErrorCode) Has(flag ErrorCode) bool { return ec&flag != 0 }
func (ec ErrorCode) Valid() bool             { return ec == 0 }

func (ec ErrorCode) String() string {
	if ec == 0 {
		return "Valid"
	}
	var names []string
	for _, f := range errorCodeNames {
		if ec.Has(f.flag) {
			names = append(names, f.name)
		}
	}
	return strings.Join(names, "|")
}

// ErrorCodeFlags lists the individual flags in a fixed order
func ErrorCodeFlags() []ErrorCode {
	flags := make([]ErrorCode, len(errorCodeNames))
	for i, f := range errorCodeNames {
		flags[i] = f.flag
	}
	return flags
}
