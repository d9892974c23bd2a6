package analysis

import (
	"fmt"
	"io"

	"github.com/philipparndt/fencemeasure/pkg/fence"
	"github.com/philipparndt/fencemeasure/pkg/units"
)

// WriteReport prints a human readable project report
func WriteReport(w io.Writer, r *ProjectReport) {
	p := r.Project
	s := r.Summary

	fmt.Fprintln(w, "Fence Project Information")
	fmt.Fprintln(w, "=========================")
	if p.ProjectName != "" {
		fmt.Fprintf(w, "Project: %s\n", p.ProjectName)
	}
	if p.ClientName != "" {
		fmt.Fprintf(w, "Client: %s\n", p.ClientName)
	}
	if p.SiteAddress != "" {
		fmt.Fprintf(w, "Site: %s\n", p.SiteAddress)
	}
	fmt.Fprintln(w)

	WriteSummary(w, s)

	if len(r.Corners) > 0 {
		fmt.Fprintln(w, "Corners:")
		for _, c := range r.Corners {
			fmt.Fprintf(w, "  #%d at %s: %.2f° (%s, snaps to %.0f°)\n",
				c.Index+1, FormatVector(c.Vertex), c.Angle, c.Kind, c.Snapped)
		}
		fmt.Fprintln(w)
	}

	WriteMaterials(w, r.Materials)

	if len(r.Violations) > 0 {
		fmt.Fprintln(w, "\nWarnings:")
		for _, v := range r.Violations {
			fmt.Fprintf(w, "  - %s\n", v)
		}
	}
}

// WriteSummary prints the length, area and accuracy statistics
func WriteSummary(w io.Writer, s fence.Summary) {
	fmt.Fprintln(w, "Measurements:")
	fmt.Fprintf(w, "  Segments: %d\n", s.SegmentCount)
	fmt.Fprintf(w, "  Total Length: %s (%s)\n", units.FormatFeet(s.TotalLinearFeet), units.FormatFeetInches(s.TotalLinearFeet))
	if s.ClosedLoop {
		fmt.Fprintf(w, "  Perimeter: %s\n", units.FormatFeet(s.PerimeterFeet))
		fmt.Fprintf(w, "  Enclosed Area: %s\n", units.FormatSquareFeet(s.TotalAreaSqft))
	} else {
		fmt.Fprintln(w, "  Perimeter: open run")
	}
	fmt.Fprintf(w, "  Average Confidence: %.2f\n", s.AvgConfidence)
	fmt.Fprintf(w, "  Estimated Accuracy: ±%.1f cm\n\n", s.EstimatedAccuracyCm)

	if b := s.BoundingBox; b != nil {
		fmt.Fprintln(w, "Bounding Box:")
		fmt.Fprintf(w, "  Min: %s\n", FormatVector(b.Min))
		fmt.Fprintf(w, "  Max: %s\n", FormatVector(b.Max))
		fmt.Fprintf(w, "  Center: %s\n", FormatVector(b.Center))
		fmt.Fprintf(w, "  Width (X): %s\n", units.FormatMeters(b.Width))
		fmt.Fprintf(w, "  Height (Y): %s\n", units.FormatMeters(b.Height))
		fmt.Fprintf(w, "  Depth (Z): %s\n\n", units.FormatMeters(b.Depth))
	}
}

// WriteMaterials prints a material estimate
func WriteMaterials(w io.Writer, m fence.MaterialEstimate) {
	fmt.Fprintln(w, "Materials:")
	fmt.Fprintf(w, "  Sections: %d\n", m.Sections)
	fmt.Fprintf(w, "  Posts: %d\n", m.Posts)
	fmt.Fprintf(w, "  Pickets: %d\n", m.Pickets)
	fmt.Fprintf(w, "  Rails: %d\n", m.Rails)
	fmt.Fprintf(w, "  Concrete Bags: %d\n", m.ConcreteBags)
	fmt.Fprintf(w, "  Gate Hardware Sets: %d\n", m.GateHardwareSets)
}
