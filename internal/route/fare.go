package route

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// FareBand charges Amount for every started Per kilometres travelled beyond
// the previous band, up to UpTo kilometres. UpTo of zero means the band has
// no upper bound; only the last band may be open.
type FareBand struct {
	UpTo   int `yaml:"up_to" validate:"gte=0"`
	Per    int `yaml:"per" validate:"gt=0"`
	Amount int `yaml:"amount" validate:"gte=0"`
}

// FareTable is a tiered fare schedule. Trips up to BaseDistance cost
// BaseFare; each band then adds its surcharge on top.
type FareTable struct {
	BaseFare     int        `yaml:"base_fare" validate:"gte=0"`
	BaseDistance int        `yaml:"base_distance" validate:"gte=0"`
	Bands        []FareBand `yaml:"bands" validate:"dive"`
}

// DefaultFareTable is the standard schedule: 1250 up to 10 km, then 100 per
// started 5 km up to 50 km, then 100 per started 8 km.
func DefaultFareTable() FareTable {
	return FareTable{
		BaseFare:     1250,
		BaseDistance: 10,
		Bands: []FareBand{
			{UpTo: 50, Per: 5, Amount: 100},
			{UpTo: 0, Per: 8, Amount: 100},
		},
	}
}

// Fare prices a trip of distance kilometres. It is total over every input;
// negative distances are treated as zero.
func (t FareTable) Fare(distance int) int {
	fare := t.BaseFare
	lower := t.BaseDistance
	for _, b := range t.Bands {
		if distance <= lower {
			break
		}
		upper := b.UpTo
		if upper == 0 || distance < upper {
			upper = distance
		}
		fare += ceilDiv(upper-lower, b.Per) * b.Amount
		lower = upper
	}
	return fare
}

func ceilDiv(n, d int) int {
	return (n + d - 1) / d
}

// Validate checks field ranges and that band bounds strictly increase, with
// only the last band left open.
func (t FareTable) Validate() error {
	if err := validator.New().Struct(t); err != nil {
		return fmt.Errorf("route.FareTable.Validate: %w", err)
	}
	lower := t.BaseDistance
	for i, b := range t.Bands {
		last := i == len(t.Bands)-1
		if b.UpTo == 0 {
			if !last {
				return fmt.Errorf("route.FareTable.Validate: band %d is open but is not the last band", i)
			}
			continue
		}
		if b.UpTo <= lower {
			return fmt.Errorf("route.FareTable.Validate: band %d ends at %d, not after %d", i, b.UpTo, lower)
		}
		lower = b.UpTo
	}
	return nil
}

// LoadFareTable reads a YAML fare schedule from path and validates it.
func LoadFareTable(path string) (FareTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return FareTable{}, fmt.Errorf("route.LoadFareTable: %w", err)
	}
	var t FareTable
	if err := yaml.Unmarshal(data, &t); err != nil {
		return FareTable{}, fmt.Errorf("route.LoadFareTable: parse %s: %w", path, err)
	}
	if err := t.Validate(); err != nil {
		return FareTable{}, err
	}
	return t, nil
}
