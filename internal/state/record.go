package state

import (
	"strconv"
	"strings"

	"github.com/ryanthedev/cycle-cli/internal/types"
)

// CycleState is the record persisted between invocations.
//
// On disk it is a single comma-delimited line:
//
//	index,timestamp,alignment[,processName,x,y,width,height]
//
// The trailing process/geometry fields are an advisory cache and may be
// absent. There is no version field; readers degrade on anything they
// cannot parse.
type CycleState struct {
	Index             int             // 1-based position in the active ratio sequence
	Timestamp         float64         // seconds since epoch at last successful run
	Alignment         types.Alignment // last-used alignment mode
	CachedProcessName string          // last resolved frontmost process, optional
	CachedGeometry    *types.Rect     // last-known window geometry, optional
}

// Field counts accepted by ParseRecord. Anything else is treated as
// corruption, not an error.
const (
	fieldsBare     = 3 // index, timestamp, alignment
	fieldsWithName = 4 // + processName
	fieldsWithGeom = 8 // + x, y, width, height
)

// ParseRecord decodes a state line. It returns nil for any malformed
// input: wrong field count, non-numeric index or timestamp, an index
// below 1, or an unknown alignment. Callers treat nil as "no prior
// state".
func ParseRecord(line string) *CycleState {
	fields := strings.Split(strings.TrimSpace(line), ",")
	switch len(fields) {
	case fieldsBare, fieldsWithName, fieldsWithGeom:
	default:
		return nil
	}

	index, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil || index < 1 {
		return nil
	}

	timestamp, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
	if err != nil {
		return nil
	}

	alignment, ok := types.ParseAlignment(strings.TrimSpace(fields[2]))
	if !ok {
		return nil
	}

	st := &CycleState{
		Index:     index,
		Timestamp: timestamp,
		Alignment: alignment,
	}

	if len(fields) >= fieldsWithName {
		st.CachedProcessName = strings.TrimSpace(fields[3])
	}

	if len(fields) == fieldsWithGeom {
		vals := make([]float64, 4)
		for i := 0; i < 4; i++ {
			v, err := strconv.ParseFloat(strings.TrimSpace(fields[4+i]), 64)
			if err != nil {
				// Keep the cycling fields, drop the broken cache.
				return st
			}
			vals[i] = v
		}
		st.CachedGeometry = &types.Rect{X: vals[0], Y: vals[1], Width: vals[2], Height: vals[3]}
	}

	return st
}

// Encode renders the record as its on-disk line (without trailing newline).
// Cached geometry is only written when a cached process name is present;
// a geometry with no owning process is meaningless to later readers.
func (st CycleState) Encode() string {
	parts := []string{
		strconv.Itoa(st.Index),
		strconv.FormatFloat(st.Timestamp, 'f', -1, 64),
		string(st.Alignment),
	}

	if st.CachedProcessName != "" {
		parts = append(parts, st.CachedProcessName)
		if g := st.CachedGeometry; g != nil {
			parts = append(parts,
				strconv.FormatFloat(g.X, 'f', -1, 64),
				strconv.FormatFloat(g.Y, 'f', -1, 64),
				strconv.FormatFloat(g.Width, 'f', -1, 64),
				strconv.FormatFloat(g.Height, 'f', -1, 64),
			)
		}
	}

	return strings.Join(parts, ",")
}
