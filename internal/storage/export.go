package storage

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/san-kum/geodesim/internal/geodesic"
)

// ExportCSV streams every particle of a run as one CSV with a leading
// particle index column, suitable for external plotting tools.
func (s *Store) ExportCSV(runID string, w io.Writer) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(append([]string{"particle"}, csvHeader...)); err != nil {
		return err
	}

	row := make([]string, geodesic.StateDim+1)
	for i := 0; i < meta.Particles; i++ {
		traj, err := s.LoadTrajectory(runID, i)
		if err != nil {
			return err
		}
		row[0] = strconv.Itoa(i)
		for _, state := range traj.States {
			for j, v := range state {
				row[j+1] = strconv.FormatFloat(v, 'g', 17, 64)
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}

	cw.Flush()
	return cw.Error()
}
