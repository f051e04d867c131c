package header

import (
	"fmt"
	"strconv"
	"strings"
)

// FileType selects the payload category stored behind a header.
type FileType int32

// Authorized payload categories. The numbering is sparse on purpose:
// the gaps are reserved for future categories of the family.
const (
	Unknown              FileType = 0
	Carts                FileType = 100
	DirectedGraph        FileType = 110
	Units                FileType = 200
	ListenerUnits        FileType = 225
	UnitFeats            FileType = 300
	HalfphoneUnitFeats   FileType = 301
	ListenerFeats        FileType = 325
	JoinFeats            FileType = 400
	SCost                FileType = 445
	PrecomputedJoinCosts FileType = 450
	Timeline             FileType = 500

	// maxKnownType bounds the legal range; see Legal.
	maxKnownType = Timeline
)

var typeNames = map[FileType]string{
	Unknown:              "unknown",
	Carts:                "carts",
	DirectedGraph:        "directed-graph",
	Units:                "units",
	ListenerUnits:        "listener-units",
	UnitFeats:            "unit-feats",
	HalfphoneUnitFeats:   "halfphone-unit-feats",
	ListenerFeats:        "listener-feats",
	JoinFeats:            "join-feats",
	SCost:                "scost",
	PrecomputedJoinCosts: "precomputed-joincosts",
	Timeline:             "timeline",
}

// Legal reports whether t lies in the authorized range (Unknown, Timeline].
// Unassigned codes inside the range are legal: files written by newer
// tools may carry categories this build does not name yet.
func (t FileType) Legal() bool {
	return t > Unknown && t <= maxKnownType
}

// Known reports whether t is one of the named categories, not merely
// inside the legal range. The read path never uses this; it exists for
// callers that want strict membership instead of the range check.
func (t FileType) Known() bool {
	_, ok := typeNames[t]
	return ok && t != Unknown
}

// String returns the category name, or the numeric code for legal but
// unassigned values.
func (t FileType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("type(%d)", int32(t))
}

// ParseType maps a category name or numeric code to a FileType.
func ParseType(s string) (FileType, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for t, name := range typeNames {
		if name == needle {
			return t, nil
		}
	}
	if code, err := strconv.ParseInt(needle, 10, 32); err == nil {
		return FileType(code), nil
	}
	return Unknown, fmt.Errorf("unknown file type %q", s)
}
