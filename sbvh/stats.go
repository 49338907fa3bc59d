package sbvh

import (
	"bytes"
	"fmt"
	"time"

	"github.com/olekukonko/tablewriter"
)

// Stats accumulates build counters. It is never guarded by a mutex: the
// builder is single-threaded, so a plain struct field is enough.
type Stats struct {
	Nodes         int
	Leafs         int
	ObjectSplits  int
	SpatialSplits int
	InitialRefs   int
	TotalRefs     int
	MaxDepth      int
	Duration      time.Duration
}

// Table renders the stats as a two-column table.
func (s Stats) Table() string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Metric", "Value"})
	table.Append([]string{"Build time", s.Duration.String()})
	table.Append([]string{"Max depth", fmt.Sprintf("%d", s.MaxDepth)})
	table.Append([]string{"Nodes", fmt.Sprintf("%d", s.Nodes)})
	table.Append([]string{"Leafs", fmt.Sprintf("%d", s.Leafs)})
	table.Append([]string{"Object splits", fmt.Sprintf("%d", s.ObjectSplits)})
	table.Append([]string{"Spatial splits", fmt.Sprintf("%d", s.SpatialSplits)})
	table.Append([]string{"Initial refs", fmt.Sprintf("%d", s.InitialRefs)})
	table.Append([]string{"Total refs", fmt.Sprintf("%d", s.TotalRefs)})
	table.SetFooter([]string{"Duplication", fmt.Sprintf("%.1f%%", s.duplicationPct())})

	table.Render()
	return buf.String()
}

func (s Stats) duplicationPct() float64 {
	if s.InitialRefs == 0 {
		return 0
	}
	return float64(s.TotalRefs-s.InitialRefs) / float64(s.InitialRefs) * 100
}
