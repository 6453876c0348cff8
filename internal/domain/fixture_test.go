package domain_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/subway-planner/internal/domain"
)

var (
	lineID = uuid.MustParse("00000000-0000-0000-0000-0000000000a2")

	jamsil    = station("JAMSIL")
	yuksam    = station("YUKSAM")
	gangnam   = station("GANGNAM")
	seonleung = station("SEONLEUNG")
	jangji    = station("JANGJI")
)

// station returns a Station whose ID is derived from name, so fixtures are
// stable across test runs.
func station(name string) domain.Station {
	return domain.Station{ID: uuid.NewSHA1(uuid.NameSpaceOID, []byte(name)), Name: name}
}

func section(up, down domain.Station, d int) domain.Section {
	return domain.Section{LineID: lineID, Up: up, Down: down, Distance: domain.Distance(d)}
}

// chain builds a Sections snapshot from the given sections.
func chain(items ...domain.Section) domain.Sections {
	return domain.NewSections(lineID, items)
}

// stationNames returns the ordered station names of s, failing the test if
// s is not a single simple path.
func stationNames(t *testing.T, s domain.Sections) []string {
	t.Helper()
	stations, err := s.Stations()
	require.NoError(t, err)
	names := make([]string, len(stations))
	for i, st := range stations {
		names[i] = st.Name
	}
	return names
}
