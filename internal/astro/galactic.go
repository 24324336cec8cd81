package astro

import "time"

// SgrA is the galactic center, Sagittarius A*.
var SgrA = Target{RAHours: 17.7611, DecDeg: -28.992}

// galacticRollAnchor is a reference star near the north galactic pole
// region, used only to disambiguate skybox roll.
var galacticRollAnchor = Target{RAHours: 12.81, DecDeg: 27.4}

// GalacticAlignment is the three-axis rotation (yaw, pitch, roll) that
// orients a galactic skybox for an observer: the apparent azimuth and
// altitude of the galactic center plus a roll angle about that axis.
// All values in degrees. Consumed read-only by the rendering layer.
type GalacticAlignment struct {
	AzDeg   float64
	AltDeg  float64
	RollDeg float64
}

// GalacticCenterAlignment locates Sagittarius A* for the observer and
// derives the skybox orientation triple.
//
// The apparent galactic pole is approximated as the point 90° from the
// center along its vertical circle; which side of the zenith it lands on
// depends on the sign of the center's altitude. The roll angle is then the
// great-circle distance from that derived pole to the anchor star.
func GalacticCenterAlignment(obs Observer, t time.Time) GalacticAlignment {
	center := Locate(obs, SgrA, t)
	anchor := Locate(obs, galacticRollAnchor, t)

	poleAz, poleAlt := apparentPole(center.AzDeg(), center.AltDeg())
	roll := AngleBetweenPointsDeg(poleAz, poleAlt, anchor.AzDeg(), anchor.AltDeg())

	return GalacticAlignment{
		AzDeg:   center.AzDeg(),
		AltDeg:  center.AltDeg(),
		RollDeg: roll,
	}
}

// apparentPole returns the point 90° above a direction along its vertical
// circle, in degrees. Crossing the zenith flips the azimuth.
func apparentPole(azDeg, altDeg float64) (poleAz, poleAlt float64) {
	if altDeg >= 0 {
		poleAz = azDeg + 180
		if poleAz >= 360 {
			poleAz -= 360
		}
		return poleAz, 90 - altDeg
	}
	return azDeg, 90 + altDeg
}
