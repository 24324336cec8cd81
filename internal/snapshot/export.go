package snapshot

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	sexa "github.com/soniakeys/sexagesimal"
	"github.com/soniakeys/unit"

	"github.com/flazor/galactic-compass/internal/astro"
)

// SchemaVersion identifies the export format for downstream consumers.
const SchemaVersion = "1.0"

// Export is the JSON snapshot schema.
type Export struct {
	SchemaVersion string         `json:"schema_version"`
	GeneratedAt   time.Time      `json:"generated_at"`
	Observer      ExportObserver `json:"observer"`
	Instant       time.Time      `json:"instant"`
	MaxLevel      int            `json:"max_level"`
	Sun           ExportDir      `json:"sun"`
	Moon          ExportDir      `json:"moon"`
	Galactic      ExportGalactic `json:"galactic_alignment"`
	Vectors       []ExportVector `json:"motion_vectors"`
	Resultant     *ExportResult  `json:"resultant,omitempty"`
	Reference     *ExportVector  `json:"reference,omitempty"`
}

// ExportObserver is the observer location.
type ExportObserver struct {
	LatDeg float64 `json:"latitude_deg"`
	LonDeg float64 `json:"longitude_deg"`
}

// ExportDir is a horizon direction in both radians and degrees.
type ExportDir struct {
	AzRad  float64 `json:"azimuth_rad"`
	AltRad float64 `json:"altitude_rad"`
	AzDeg  float64 `json:"azimuth_deg"`
	AltDeg float64 `json:"altitude_deg"`
}

// ExportGalactic is the skybox orientation triple.
type ExportGalactic struct {
	AzDeg   float64 `json:"azimuth_deg"`
	AltDeg  float64 `json:"altitude_deg"`
	RollDeg float64 `json:"roll_deg"`
}

// ExportVector is one motion level's contribution.
type ExportVector struct {
	Level       int        `json:"level"`
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	VelocityKmS float64    `json:"velocity_km_s"`
	Direction   *ExportDir `json:"direction,omitempty"`
	Cartesian   *ExportXYZ `json:"cartesian,omitempty"`
	Error       string     `json:"error,omitempty"`
}

// ExportXYZ is an East-North-Up Cartesian triple in km/s.
type ExportXYZ struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// ExportResult is the combined velocity vector.
type ExportResult struct {
	MagnitudeKmS float64   `json:"magnitude_km_s"`
	Direction    ExportDir `json:"direction"`
	Cartesian    ExportXYZ `json:"cartesian"`
}

// BuildExport converts a snapshot to the export schema.
func BuildExport(s *Snapshot) Export {
	e := Export{
		SchemaVersion: SchemaVersion,
		GeneratedAt:   time.Now().UTC(),
		Observer:      ExportObserver{LatDeg: s.Observer.LatDeg, LonDeg: s.Observer.LonDeg},
		Instant:       s.Time,
		MaxLevel:      s.MaxLevel,
		Sun:           exportDir(s.Sun),
		Moon:          exportDir(s.Moon),
		Galactic: ExportGalactic{
			AzDeg:   s.Galactic.AzDeg,
			AltDeg:  s.Galactic.AltDeg,
			RollDeg: s.Galactic.RollDeg,
		},
		Vectors: make([]ExportVector, 0, len(s.Vectors)),
	}

	for _, v := range s.Vectors {
		e.Vectors = append(e.Vectors, exportVector(v))
	}
	if s.Resultant != nil {
		e.Resultant = &ExportResult{
			MagnitudeKmS: s.Resultant.MagnitudeKmS,
			Direction:    exportDir(s.Resultant.Direction),
			Cartesian:    ExportXYZ{s.Resultant.Cartesian.X, s.Resultant.Cartesian.Y, s.Resultant.Cartesian.Z},
		}
	}
	if s.Reference != nil {
		ref := exportVector(*s.Reference)
		e.Reference = &ref
	}
	return e
}

// WriteJSON writes the export as indented JSON.
func (e Export) WriteJSON(w io.Writer) error {
	j, err := json.MarshalIndent(e, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	j = append(j, '\n')
	_, err = w.Write(j)
	return err
}

func exportVector(v LevelVector) ExportVector {
	out := ExportVector{
		Level:       v.Number,
		ID:          v.ID,
		Name:        v.Name,
		VelocityKmS: v.VelocityKmS,
		Error:       v.Err,
	}
	if !v.Failed() {
		d := exportDir(v.Direction)
		out.Direction = &d
		out.Cartesian = &ExportXYZ{v.Cartesian.X, v.Cartesian.Y, v.Cartesian.Z}
	}
	return out
}

func exportDir(d astro.HorizonDirection) ExportDir {
	return ExportDir{
		AzRad:  d.AzRad,
		AltRad: d.AltRad,
		AzDeg:  d.AzDeg(),
		AltDeg: d.AltDeg(),
	}
}

// WriteSummary prints an aligned text table of the snapshot: one row per
// level with sexagesimal az/alt, then the resultant and the CMB
// reference for comparison.
func WriteSummary(w io.Writer, s *Snapshot) {
	fmt.Fprintf(w, "Observer %.4f°, %.4f°  at %s  (levels 1-%d)\n",
		s.Observer.LatDeg, s.Observer.LonDeg, s.Time.Format(time.RFC3339), s.MaxLevel)
	fmt.Fprintf(w, "Sun  az %6.2f° alt %6.2f°   Moon az %6.2f° alt %6.2f°\n",
		s.Sun.AzDeg(), s.Sun.AltDeg(), s.Moon.AzDeg(), s.Moon.AltDeg())
	fmt.Fprintf(w, "Galactic center az %.2f° alt %.2f° roll %.2f°\n\n",
		s.Galactic.AzDeg, s.Galactic.AltDeg, s.Galactic.RollDeg)

	tw := tabwriter.NewWriter(w, 2, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "LV\tID\tKM/S\tAZIMUTH\tALTITUDE\t")
	for _, v := range s.Vectors {
		if v.Failed() {
			fmt.Fprintf(tw, "%d\t%s\terror: %s\t\t\t\n", v.Number, v.ID, v.Err)
			continue
		}
		fmt.Fprintf(tw, "%d\t%s\t%.3f\t%0.1j\t%0.1j\t\n",
			v.Number, v.ID, v.VelocityKmS,
			sexa.FmtAngle(unit.AngleFromDeg(v.Direction.AzDeg())),
			sexa.FmtAngle(unit.AngleFromDeg(v.Direction.AltDeg())))
	}
	tw.Flush()

	fmt.Fprintln(w)
	if s.Resultant == nil {
		fmt.Fprintln(w, "Resultant: none (no contributing vectors)")
	} else {
		fmt.Fprintf(w, "Resultant: %.1f km/s toward az %.2f° alt %.2f°\n",
			s.Resultant.MagnitudeKmS, s.Resultant.Direction.AzDeg(), s.Resultant.Direction.AltDeg())
	}
	if s.Reference != nil && !s.Reference.Failed() {
		fmt.Fprintf(w, "CMB dipole (expected total): %.1f km/s toward az %.2f° alt %.2f°\n",
			s.Reference.VelocityKmS, s.Reference.Direction.AzDeg(), s.Reference.Direction.AltDeg())
	}
}
