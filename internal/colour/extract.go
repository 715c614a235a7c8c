package colour

import (
	"fmt"
	"image"
	"math"
	"math/rand"
	"sort"
)

const (
	// extractSeed fixes the clustering RNG so a given image always yields
	// the same anchors.
	extractSeed = 333

	// extractMaxSamples caps how many pixels are fed into clustering.
	extractMaxSamples = 4000

	// extractMaxIterations bounds the clustering loop.
	extractMaxIterations = 20

	// extractConvergence is the average centroid movement below which
	// clustering stops early.
	extractConvergence = 2.0
)

// AnchorsFromImage extracts count representative anchor colours from an
// image by clustering a pixel sample, returning them ordered dark to light
// so they form a smooth ramp. Extraction is deterministic per image.
func AnchorsFromImage(img image.Image, count int) ([]RGB, error) {
	if img == nil {
		return nil, fmt.Errorf("image cannot be nil")
	}
	if count < 2 {
		return nil, fmt.Errorf("anchor count must be at least 2, got %d", count)
	}

	pixels := samplePixels(img)
	if len(pixels) == 0 {
		return nil, fmt.Errorf("no pixels found in image")
	}

	unique := uniqueColours(pixels)
	if len(unique) < 2 {
		return nil, fmt.Errorf("image contains a single colour, cannot build a ramp")
	}
	if count >= len(unique) {
		anchors := unique
		sortByLuminance(anchors)
		return anchors, nil
	}

	rng := rand.New(rand.NewSource(extractSeed))
	anchors := cluster(pixels, count, rng)
	sortByLuminance(anchors)
	return anchors, nil
}

// samplePixels samples pixels from the image on a grid, capped at
// extractMaxSamples for large images.
func samplePixels(img image.Image) []RGB {
	bounds := img.Bounds()
	total := bounds.Dx() * bounds.Dy()
	if total <= 0 {
		return nil
	}

	step := 1
	if total > extractMaxSamples {
		step = max(int(math.Sqrt(float64(total)/float64(extractMaxSamples))), 1)
	}

	pixels := make([]RGB, 0, min(total, extractMaxSamples))
	for y := bounds.Min.Y; y < bounds.Max.Y; y += step {
		for x := bounds.Min.X; x < bounds.Max.X; x += step {
			r, g, b, _ := img.At(x, y).RGBA()
			pixels = append(pixels, RGB{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)})
			if len(pixels) >= extractMaxSamples {
				return pixels
			}
		}
	}
	return pixels
}

// uniqueColours deduplicates a pixel sample preserving first-seen order.
func uniqueColours(pixels []RGB) []RGB {
	seen := make(map[RGB]bool, len(pixels))
	unique := make([]RGB, 0, len(pixels))
	for _, p := range pixels {
		if !seen[p] {
			seen[p] = true
			unique = append(unique, p)
		}
	}
	return unique
}

// sortByLuminance orders colours dark to light.
func sortByLuminance(colours []RGB) {
	sort.SliceStable(colours, func(i, j int) bool {
		return Luminance(colours[i]) < Luminance(colours[j])
	})
}

// point3 is a point in RGB space used during clustering.
type point3 struct {
	R, G, B float64
}

func (p point3) distance(q point3) float64 {
	dr, dg, db := p.R-q.R, p.G-q.G, p.B-q.B
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

func toPoint(c RGB) point3 {
	return point3{R: float64(c.R), G: float64(c.G), B: float64(c.B)}
}

// cluster runs k-means over the pixel sample and returns the k centroid
// colours. Centroid seeding follows k-means++ for stable, well-spread
// starting points.
func cluster(pixels []RGB, k int, rng *rand.Rand) []RGB {
	points := make([]point3, len(pixels))
	for i, p := range pixels {
		points[i] = toPoint(p)
	}

	centroids := seedCentroids(points, k, rng)
	assignments := make([]int, len(points))

	for iter := 0; iter < extractMaxIterations; iter++ {
		changed := 0
		for i, p := range points {
			nearest := nearestCentroid(p, centroids)
			if assignments[i] != nearest {
				assignments[i] = nearest
				changed++
			}
		}
		if float64(changed)/float64(len(points)) < 0.01 {
			break
		}

		next := recomputeCentroids(points, assignments, k, rng)
		movement := 0.0
		for i := range centroids {
			movement += centroids[i].distance(next[i])
		}
		centroids = next
		if movement/float64(k) < extractConvergence {
			break
		}
	}

	anchors := make([]RGB, len(centroids))
	for i, c := range centroids {
		anchors[i] = RGB{R: uint8(c.R), G: uint8(c.G), B: uint8(c.B)}
	}
	return anchors
}

// seedCentroids picks k starting centroids with probability proportional to
// squared distance from the already-chosen set.
func seedCentroids(points []point3, k int, rng *rand.Rand) []point3 {
	centroids := make([]point3, 0, k)
	centroids = append(centroids, points[rng.Intn(len(points))])

	for len(centroids) < k {
		distances := make([]float64, len(points))
		total := 0.0
		for i, p := range points {
			minDist := math.MaxFloat64
			for _, c := range centroids {
				if d := p.distance(c); d < minDist {
					minDist = d
				}
			}
			distances[i] = minDist * minDist
			total += distances[i]
		}

		if total == 0 {
			// Remaining points coincide with existing centroids; nudge a
			// duplicate so the count still comes out to k.
			last := centroids[len(centroids)-1]
			centroids = append(centroids, point3{R: last.R + 0.1, G: last.G + 0.1, B: last.B + 0.1})
			continue
		}

		target := rng.Float64() * total
		cumulative := 0.0
		for i, d := range distances {
			cumulative += d
			if cumulative >= target {
				centroids = append(centroids, points[i])
				break
			}
		}
	}
	return centroids
}

func nearestCentroid(p point3, centroids []point3) int {
	minDist := math.MaxFloat64
	nearest := 0
	for i, c := range centroids {
		if d := p.distance(c); d < minDist {
			minDist = d
			nearest = i
		}
	}
	return nearest
}

func recomputeCentroids(points []point3, assignments []int, k int, rng *rand.Rand) []point3 {
	sums := make([]point3, k)
	counts := make([]int, k)
	for i, p := range points {
		c := assignments[i]
		sums[c].R += p.R
		sums[c].G += p.G
		sums[c].B += p.B
		counts[c]++
	}

	centroids := make([]point3, k)
	for i := 0; i < k; i++ {
		if counts[i] > 0 {
			n := float64(counts[i])
			centroids[i] = point3{R: sums[i].R / n, G: sums[i].G / n, B: sums[i].B / n}
		} else {
			centroids[i] = points[rng.Intn(len(points))]
		}
	}
	return centroids
}
