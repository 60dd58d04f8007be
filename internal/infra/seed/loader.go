package seed

import (
	"log/slog"
	"strings"
	"time"

	"boothly/config"
	"boothly/internal/domain/entity"
	"boothly/internal/errors"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"go.uber.org/fx"
)

// Params defines the parameters required to build the seed
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// New returns the seed selected by configuration: the YAML file at
// seed.path when set, the built-in sample otherwise.
func New(params Params) (entity.Seed, error) {
	if params.Config.Seed == nil || strings.TrimSpace(params.Config.Seed.Path) == "" {
		params.Logger.Info("Using built-in sample seed")

		return Sample(), nil
	}

	path := params.Config.Seed.Path
	seed, err := Load(path)
	if err != nil {
		return entity.Seed{}, err
	}
	params.Logger.Info("Loaded seed file", slog.String("path", path))

	return seed, nil
}

// Load reads a YAML seed file. Keys use the JSON field names of the entities.
func Load(path string) (entity.Seed, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return entity.Seed{}, errors.Wrapf(err, "read seed file %s failed", path)
	}

	var seed entity.Seed
	if err := k.UnmarshalWithConf("", &seed, koanf.UnmarshalConf{
		Tag: "json",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &seed,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeHookFunc(time.RFC3339),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return entity.Seed{}, errors.Wrapf(err, "unmarshal seed file %s failed", path)
	}

	if err := Validate(seed); err != nil {
		return entity.Seed{}, errors.Wrapf(err, "invalid seed file %s", path)
	}

	return seed, nil
}

// Validate checks the invariants a seed must hold before a store is built from it.
func Validate(seed entity.Seed) error {
	var errs []error

	if strings.TrimSpace(seed.User.ID) == "" {
		errs = append(errs, errors.New("user.id is required"))
	}
	if strings.TrimSpace(seed.User.Username) == "" {
		errs = append(errs, errors.New("user.username is required"))
	}

	errs = append(errs, uniqueIDs("portfolio", seed.Portfolio, func(i entity.PortfolioImage) string { return i.ID })...)
	errs = append(errs, uniqueIDs("services", seed.Services, func(s entity.Service) string { return s.ID })...)
	errs = append(errs, uniqueIDs("bookings", seed.Bookings, func(b entity.Booking) string { return b.ID })...)
	errs = append(errs, uniqueIDs("availability.timeSlots", seed.Availability.TimeSlots, func(s entity.TimeSlot) string { return s.ID })...)

	for _, service := range seed.Services {
		if service.Price < 0 {
			errs = append(errs, errors.Errorf("service %s: price must not be negative", service.ID))
		}
		if service.Duration <= 0 {
			errs = append(errs, errors.Errorf("service %s: duration must be positive", service.ID))
		}
	}

	for _, booking := range seed.Bookings {
		if !booking.Status.Valid() {
			errs = append(errs, errors.Errorf("booking %s: unknown status %q", booking.ID, booking.Status))
		}
	}

	return errors.Join(errs...)
}

func uniqueIDs[T any](collection string, items []T, id func(T) string) []error {
	var errs []error
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		key := id(item)
		if key == "" {
			errs = append(errs, errors.Errorf("%s: empty id", collection))

			continue
		}
		if _, dup := seen[key]; dup {
			errs = append(errs, errors.Errorf("%s: duplicate id %s", collection, key))

			continue
		}
		seen[key] = struct{}{}
	}

	return errs
}
