// Package ephem provides Sun and Moon positions for an observer.
package ephem

import (
	"time"

	"github.com/flazor/galactic-compass/internal/astro"
)

// Provider is the ephemeris collaborator the calculation layer depends
// on. Implementations return horizon directions in the classical
// south-referenced convention (azimuth measured westward from South);
// the caller converts to the north-based convention by adding π.
type Provider interface {
	// Name returns the provider name for display/logging.
	Name() string

	// Sun returns the apparent position of the Sun at t.
	Sun(t time.Time, obs astro.Observer) (astro.HorizonDirection, error)

	// Moon returns the apparent position of the Moon at t.
	Moon(t time.Time, obs astro.Observer) (astro.HorizonDirection, error)
}
