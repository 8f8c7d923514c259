package geo

import "slices"

// Candidate is the minimal projection of a record eligible for a radius scan.
// A candidate is geotagged only when both coordinates are present.
type Candidate[K comparable] struct {
	ID        K
	Latitude  *float64
	Longitude *float64
}

// Geotagged reports whether both coordinates are set.
func (c Candidate[K]) Geotagged() bool {
	return c.Latitude != nil && c.Longitude != nil
}

// Ranked is a candidate ID with its distance from the query center.
// Its rank is its position in the slice returned by FindWithinRadius.
type Ranked[K comparable] struct {
	ID         K
	DistanceKm float64
}

// FindWithinRadius returns the geotagged candidates whose distance from the
// center is at most radiusKm, nearest first. Equal distances keep the input
// order. A limit <= 0 returns every match. The result is never nil.
func FindWithinRadius[K comparable](centerLat, centerLng, radiusKm float64, candidates []Candidate[K], limit int) []Ranked[K] {
	results := make([]Ranked[K], 0, len(candidates))

	for _, candidate := range candidates {
		if !candidate.Geotagged() {
			continue
		}

		distance := Distance(centerLat, centerLng, *candidate.Latitude, *candidate.Longitude)
		if distance <= radiusKm {
			results = append(results, Ranked[K]{ID: candidate.ID, DistanceKm: distance})
		}
	}

	slices.SortStableFunc(results, func(a, b Ranked[K]) int {
		switch {
		case a.DistanceKm < b.DistanceKm:
			return -1
		case a.DistanceKm > b.DistanceKm:
			return 1
		default:
			return 0
		}
	})

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}

	return results
}

// IDs returns the ranked IDs in rank order.
func IDs[K comparable](ranked []Ranked[K]) []K {
	ids := make([]K, 0, len(ranked))
	for _, r := range ranked {
		ids = append(ids, r.ID)
	}

	return ids
}
